package config

import (
	"log/slog"
	"strings"
)

type Logger struct {
	Level  string `env:"LEVEL,expand" envDefault:"warn"`
	Format string `env:"FORMAT,expand" envDefault:"text"`
}

// SlogLevel returns the configured level, or slog.LevelWarn when it is not
// recognized.
func (l Logger) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(l.Level))); err != nil {
		return slog.LevelWarn
	}
	return level
}
