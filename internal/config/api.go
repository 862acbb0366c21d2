package config

import "time"

type API struct {
	BaseURL     string        `env:"BASE_URL,expand" envDefault:"http://localhost:5000"`
	Timeout     time.Duration `env:"TIMEOUT,expand" envDefault:"30s"`
	RateLimit   float64       `env:"RATE_LIMIT,expand" envDefault:"10"`
	RateBurst   int           `env:"RATE_BURST,expand" envDefault:"5"`
	MaxRetries  int           `env:"MAX_RETRIES,expand" envDefault:"5"`
	DefaultWait time.Duration `env:"DEFAULT_WAIT,expand" envDefault:"1s"`
	MaxWait     time.Duration `env:"MAX_WAIT,expand" envDefault:"1m"`
}

type Learning struct {
	BaseURL string `env:"BASE_URL,expand" envDefault:"http://localhost:3000"`
}

type Auth struct {
	Token   string `env:"TOKEN,expand"`
	Profile string `env:"PROFILE,expand" envDefault:"default"`
	// Keyring disables the OS keyring when false, tokens are then kept in
	// the settings file
	Keyring bool `env:"KEYRING,expand" envDefault:"true"`
}
