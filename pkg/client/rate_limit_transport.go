package client

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// RateLimitTransport retries requests answered with 429 Too Many Requests,
// waiting for the delay advertised by the server through Retry-After or
// X-RateLimit-Reset, DefaultWait otherwise. Waits are capped to MaxWait
// when set.
type RateLimitTransport struct {
	Base        http.RoundTripper
	MaxRetries  int
	DefaultWait time.Duration
	MaxWait     time.Duration

	// OnRetry is called before waiting for a new attempt
	OnRetry func(req *http.Request, attempt int, wait time.Duration)
}

func (t *RateLimitTransport) base() http.RoundTripper {
	if t.Base == nil {
		return http.DefaultTransport
	}

	return t.Base
}

func (t *RateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	for attempt := 1; ; attempt++ {
		res, err := t.base().RoundTrip(req)
		if err != nil {
			return nil, err
		}

		if res.StatusCode != http.StatusTooManyRequests || attempt > t.MaxRetries {
			return res, nil
		}

		body, err := rewind(req)
		if err != nil {
			// The 429 response is returned as is
			slog.DebugContext(ctx, "request cannot be retried", slog.String("url", req.URL.String()), slog.Any("error", err))
			return res, nil
		}

		wait := t.wait(res)

		_, _ = io.Copy(io.Discard, res.Body)
		_ = res.Body.Close()

		slog.WarnContext(ctx, "api rate limit reached, retrying", slog.Duration("wait", wait), slog.Int("attempt", attempt), slog.Int("maxRetries", t.MaxRetries))

		if t.OnRetry != nil {
			t.OnRetry(req, attempt, wait)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, errors.WithStack(ctx.Err())
		case <-timer.C:
		}

		req.Body = body
	}
}

func rewind(req *http.Request) (io.ReadCloser, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return req.Body, nil
	}

	if req.GetBody == nil {
		return nil, errors.New("request body cannot be read twice")
	}

	body, err := req.GetBody()
	if err != nil {
		return nil, errors.Wrap(err, "could not rewind request body")
	}

	return body, nil
}

func (t *RateLimitTransport) wait(res *http.Response) time.Duration {
	wait, ok := retryAfter(res.Header.Get("Retry-After"))
	if !ok {
		wait, ok = rateLimitReset(res.Header.Get("X-RateLimit-Reset"))
	}
	if !ok {
		wait = t.DefaultWait
	}

	if wait < 0 {
		return 0
	}

	if t.MaxWait > 0 && wait > t.MaxWait {
		return t.MaxWait
	}

	return wait
}

// retryAfter parses a Retry-After header, either a delay in seconds or an
// HTTP date. Delays get up to 10% of jitter.
func retryAfter(value string) (time.Duration, bool) {
	if value == "" {
		return 0, false
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		wait := time.Duration(seconds) * time.Second
		return wait + time.Duration(rand.Float64()*float64(wait)/10), true
	}

	if date, err := http.ParseTime(value); err == nil {
		return time.Until(date), true
	}

	return 0, false
}

// rateLimitReset parses a X-RateLimit-Reset header holding a unix
// timestamp. Timestamps in the past are ignored.
func rateLimitReset(value string) (time.Duration, bool) {
	if value == "" {
		return 0, false
	}

	timestamp, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false
	}

	wait := time.Until(time.Unix(timestamp, 0))
	if wait <= 0 {
		return 0, false
	}

	return wait, true
}

var _ http.RoundTripper = &RateLimitTransport{}
