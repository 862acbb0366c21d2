package client

import (
	"net/http"
	"net/url"
	"sync"

	"github.com/bornholm/civicadmin/internal/core/port"
	"golang.org/x/time/rate"
)

// API identifies one of the two backends the client talks to.
type API string

const (
	APIAdmin    API = "admin"
	APILearning API = "learning"
)

type Client struct {
	adminURL    *url.URL
	learningURL *url.URL
	httpClient  *http.Client
	userAgent   string
	limiter     *rate.Limiter
	observer    Observer

	tokenMutex sync.RWMutex
	token      string
}

func New(funcs ...OptionFunc) *Client {
	opts := NewOptions(funcs...)
	return &Client{
		adminURL:    opts.AdminURL,
		learningURL: opts.LearningURL,
		httpClient:  opts.HTTPClient,
		userAgent:   opts.UserAgent,
		limiter:     rate.NewLimiter(opts.RateLimit, opts.RateBurst),
		observer:    opts.Observer,
		token:       opts.Token,
	}
}

// SetToken replaces the bearer token sent with every request.
func (c *Client) SetToken(token string) {
	c.tokenMutex.Lock()
	defer c.tokenMutex.Unlock()
	c.token = token
}

func (c *Client) Token() string {
	c.tokenMutex.RLock()
	defer c.tokenMutex.RUnlock()
	return c.token
}

func (c *Client) baseURL(api API) *url.URL {
	if api == APILearning {
		return c.learningURL
	}
	return c.adminURL
}

var (
	_ port.AuthAPI     = &Client{}
	_ port.AdminAPI    = &Client{}
	_ port.LearningAPI = &Client{}
)
