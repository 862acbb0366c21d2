package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

func (c *Client) request(ctx context.Context, api API, method string, path string, header http.Header, body io.Reader, result io.Writer) error {
	endpoint, err := url.Parse(path)
	if err != nil {
		return errors.WithStack(err)
	}

	baseURL := c.baseURL(api)

	url := baseURL.JoinPath(endpoint.Path)
	url.RawQuery = endpoint.RawQuery

	requestID := xid.New().String()

	ctx = slogx.WithAttrs(ctx,
		slog.String("api", string(api)),
		slog.String("requestID", requestID),
	)

	slogAttrs := []any{
		slog.String("method", method),
		slog.String("path", url.Path),
		slog.String("host", url.Host),
	}
	if url.User != nil {
		slogAttrs = append(slogAttrs, slog.String("username", url.User.Username()))
	}

	slog.DebugContext(ctx, "new client request", slogAttrs...)

	if err := c.limiter.Wait(ctx); err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url.String(), body)
	if err != nil {
		return errors.WithStack(err)
	}

	for k, v := range header {
		req.Header[k] = v
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()

	res, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(api, method, 0, start)
		return errors.WithStack(err)
	}

	defer res.Body.Close()

	c.observe(api, method, res.StatusCode, start)

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		data, _ := io.ReadAll(io.LimitReader(res.Body, 1<<20))
		apiErr := parseAPIError(res.StatusCode, res.Status, data)

		slog.DebugContext(ctx, "unexpected response", slog.Int("status", res.StatusCode), slog.String("message", apiErr.Message))

		return errors.WithStack(apiErr)
	}

	if result == nil {
		result = io.Discard
	}

	if _, err := io.Copy(result, res.Body); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (c *Client) observe(api API, method string, statusCode int, start time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveRequest(api, method, statusCode, time.Since(start))
}

// envelope is the wrapper some backend routes put around their payload.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (c *Client) jsonRequest(ctx context.Context, api API, method string, path string, payload any, result any) error {
	var (
		body   io.Reader
		header http.Header
	)

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.WithStack(err)
		}

		body = bytes.NewReader(data)
		header = http.Header{
			"Content-Type": []string{"application/json"},
		}
	}

	return c.doJSON(ctx, api, method, path, header, body, result)
}

func (c *Client) doJSON(ctx context.Context, api API, method string, path string, header http.Header, body io.Reader, result any) error {
	var buff bytes.Buffer

	if err := c.request(ctx, api, method, path, header, body, &buff); err != nil {
		return errors.WithStack(err)
	}

	data, err := unwrapEnvelope(buff.Bytes())
	if err != nil {
		return errors.WithStack(err)
	}

	if result == nil || len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, result); err != nil {
		return errors.Wrapf(err, "could not decode response of %s %s", method, path)
	}

	return nil
}

// unwrapEnvelope returns the "data" member of an envelope response, or the
// raw payload when the response is not enveloped.
func unwrapEnvelope(raw []byte) ([]byte, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return raw, nil
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil, errors.WithStack(err)
	}

	if _, hasData := members["data"]; !hasData {
		if _, hasSuccess := members["success"]; !hasSuccess {
			return raw, nil
		}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errors.WithStack(err)
	}

	if env.Success != nil && !*env.Success {
		return nil, errors.WithStack(&APIError{
			StatusCode: http.StatusOK,
			Message:    env.Message,
		})
	}

	if bytes.Equal(env.Data, []byte("null")) {
		return nil, nil
	}

	return env.Data, nil
}
