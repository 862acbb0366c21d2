package config

import (
	"time"

	"github.com/docker/go-units"
	"github.com/pkg/errors"
)

type Cache struct {
	Size int           `env:"SIZE,expand" envDefault:"256"`
	TTL  time.Duration `env:"TTL,expand" envDefault:"5m"`
}

type Report struct {
	Concurrency int    `env:"CONCURRENCY,expand" envDefault:"4"`
	Destination string `env:"DESTINATION,expand" envDefault:"local://."`
}

type Document struct {
	MaxSize      ByteSize `env:"MAX_SIZE,expand" envDefault:"10MB"`
	AllowedTypes []string `env:"ALLOWED_TYPES,expand" envSeparator:"," envDefault:"application/pdf,image/png,image/jpeg,image/webp,application/vnd.openxmlformats-officedocument.wordprocessingml.document,application/vnd.oasis.opendocument.text,text/plain"`
}

type Snapshot struct {
	DSN string `env:"DSN,expand" envDefault:"civicadmin-snapshot.sqlite"`
}

type Metrics struct {
	Textfile string `env:"TEXTFILE,expand"`
}

type Sentry struct {
	DSN         string `env:"DSN,expand"`
	Environment string `env:"ENVIRONMENT,expand" envDefault:"production"`
}

// ByteSize is a size expressed in human units, e.g. "10MB".
type ByteSize int64

func (s *ByteSize) UnmarshalText(text []byte) error {
	size, err := units.FromHumanSize(string(text))
	if err != nil {
		return errors.Wrapf(err, "invalid size '%s'", text)
	}

	*s = ByteSize(size)

	return nil
}

func (s ByteSize) String() string {
	return units.HumanSize(float64(s))
}
