package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const Prefix = "CIVICADMIN_"

type Config struct {
	Logger   Logger   `envPrefix:"LOGGER_"`
	API      API      `envPrefix:"API_"`
	Learning Learning `envPrefix:"LEARNING_"`
	Auth     Auth     `envPrefix:"AUTH_"`
	Cache    Cache    `envPrefix:"CACHE_"`
	Report   Report   `envPrefix:"REPORT_"`
	Document Document `envPrefix:"DOCUMENT_"`
	Snapshot Snapshot `envPrefix:"SNAPSHOT_"`
	Metrics  Metrics  `envPrefix:"METRICS_"`
	Sentry   Sentry   `envPrefix:"SENTRY_"`
}

// Parse loads the optional dotenv files then reads the configuration from
// the environment. Variables already set in the environment take precedence.
func Parse(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}

	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(err, "could not load '%s'", f)
		}
	}

	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: Prefix,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &conf, nil
}
