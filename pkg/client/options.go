package client

import (
	"net/http"
	"net/url"
	"time"

	"github.com/bornholm/civicadmin/internal/build"
	"golang.org/x/time/rate"
)

// Observer is notified after each completed request. A zero status code
// means the request did not get a response.
type Observer interface {
	ObserveRequest(api API, method string, statusCode int, duration time.Duration)
}

type Options struct {
	AdminURL    *url.URL
	LearningURL *url.URL
	HTTPClient  *http.Client
	Token       string
	UserAgent   string
	RateLimit   rate.Limit
	RateBurst   int
	Observer    Observer
}

type OptionFunc func(opts *Options)

func WithAdminURL(adminURL *url.URL) OptionFunc {
	return func(opts *Options) {
		opts.AdminURL = adminURL
	}
}

func WithLearningURL(learningURL *url.URL) OptionFunc {
	return func(opts *Options) {
		opts.LearningURL = learningURL
	}
}

func WithHTTPClient(httpClient *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = httpClient
	}
}

func WithToken(token string) OptionFunc {
	return func(opts *Options) {
		opts.Token = token
	}
}

func WithUserAgent(userAgent string) OptionFunc {
	return func(opts *Options) {
		opts.UserAgent = userAgent
	}
}

// WithRateLimit caps the number of requests per second. A zero limit
// disables throttling.
func WithRateLimit(limit float64, burst int) OptionFunc {
	return func(opts *Options) {
		if limit <= 0 {
			opts.RateLimit = rate.Inf
		} else {
			opts.RateLimit = rate.Limit(limit)
		}
		opts.RateBurst = max(burst, 1)
	}
}

func WithObserver(observer Observer) OptionFunc {
	return func(opts *Options) {
		opts.Observer = observer
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		AdminURL: &url.URL{
			Scheme: "http",
			Host:   "localhost:5000",
		},
		LearningURL: &url.URL{
			Scheme: "http",
			Host:   "localhost:3000",
		},
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &RateLimitTransport{
				Base:        http.DefaultTransport,
				MaxRetries:  5,
				DefaultWait: time.Second,
			},
		},
		UserAgent: "civicadmin/" + build.ShortVersion,
		RateLimit: rate.Inf,
		RateBurst: 1,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}
