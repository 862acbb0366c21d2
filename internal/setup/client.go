package setup

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/bornholm/civicadmin/internal/config"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/bornholm/civicadmin/internal/metrics"
	"github.com/bornholm/civicadmin/pkg/client"
	"github.com/pkg/errors"
)

var getClientFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*client.Client, error) {
	adminURL, err := url.Parse(conf.API.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse admin api url '%s'", conf.API.BaseURL)
	}

	learningURL, err := url.Parse(conf.Learning.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse learning api url '%s'", conf.Learning.BaseURL)
	}

	token, err := resolveToken(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	httpClient := &http.Client{
		Timeout: conf.API.Timeout,
		Transport: &client.RateLimitTransport{
			Base:        http.DefaultTransport,
			MaxRetries:  conf.API.MaxRetries,
			DefaultWait: conf.API.DefaultWait,
			MaxWait:     conf.API.MaxWait,
			OnRetry:     metrics.ObserveRetry,
		},
	}

	slog.DebugContext(ctx, "using api", slog.String("admin", adminURL.String()), slog.String("learning", learningURL.String()), slog.Bool("authenticated", token != ""))

	return client.New(
		client.WithAdminURL(adminURL),
		client.WithLearningURL(learningURL),
		client.WithHTTPClient(httpClient),
		client.WithToken(token),
		client.WithRateLimit(conf.API.RateLimit, conf.API.RateBurst),
		client.WithObserver(metrics.APIObserver{}),
	), nil
})

func NewClientFromConfig(ctx context.Context, conf *config.Config) (*client.Client, error) {
	return getClientFromConfig(ctx, conf)
}

// resolveToken returns the explicit token of the configuration, then the
// stored token of the active profile. Being logged out is not an error.
func resolveToken(ctx context.Context, conf *config.Config) (string, error) {
	if conf.Auth.Token != "" {
		return conf.Auth.Token, nil
	}

	store, err := getCredentialStoreFromConfig(ctx, conf)
	if err != nil {
		return "", errors.WithStack(err)
	}

	token, err := store.GetToken(ctx, conf.Auth.Profile)
	if err != nil {
		if errors.Is(err, port.ErrNotLoggedIn) {
			return "", nil
		}

		return "", errors.Wrapf(err, "could not retrieve token of profile '%s'", conf.Auth.Profile)
	}

	return token, nil
}
