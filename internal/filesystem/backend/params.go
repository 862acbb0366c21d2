package backend

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Params reads the query parameters of a destination DSN. Each parameter
// can be read once; Err reports the first parse error and the parameters
// that were never read.
type Params struct {
	dsn   *url.URL
	query url.Values
	err   error
}

func NewParams(dsn *url.URL) *Params {
	return &Params{
		dsn:   dsn,
		query: dsn.Query(),
	}
}

func (p *Params) take(name string) (string, bool) {
	if !p.query.Has(name) {
		return "", false
	}

	value := p.query.Get(name)
	p.query.Del(name)

	return value, true
}

func (p *Params) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

// String returns the parameter value, or defaultValue when absent.
func (p *Params) String(name string, defaultValue string) string {
	value, exists := p.take(name)
	if !exists {
		return defaultValue
	}

	return value
}

func (p *Params) Required(name string) string {
	value, exists := p.take(name)
	if !exists || value == "" {
		p.fail(errors.Wrapf(ErrInvalidParameter, "'%s' is required", name))
		return ""
	}

	return value
}

// Bool is true when the parameter is present without a value or with a
// true value.
func (p *Params) Bool(name string) bool {
	value, exists := p.take(name)
	if !exists {
		return false
	}

	if value == "" {
		return true
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		p.fail(errors.Wrapf(ErrInvalidParameter, "'%s': could not parse '%s' as boolean", name, value))
		return false
	}

	return b
}

func (p *Params) Duration(name string, defaultValue time.Duration) time.Duration {
	value, exists := p.take(name)
	if !exists {
		return defaultValue
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		p.fail(errors.Wrapf(ErrInvalidParameter, "'%s': could not parse '%s' as duration", name, value))
		return defaultValue
	}

	return d
}

// User returns the credentials of the DSN, empty when absent.
func (p *Params) User() (username string, password string) {
	if p.dsn.User == nil {
		return "", ""
	}

	password, _ = p.dsn.User.Password()

	return p.dsn.User.Username(), password
}

// BasePath returns the DSN path without its leading slash.
func (p *Params) BasePath() string {
	return strings.TrimPrefix(p.dsn.Path, "/")
}

func (p *Params) Err() error {
	if p.err != nil {
		return errors.WithStack(p.err)
	}

	if len(p.query) == 0 {
		return nil
	}

	unknown := make([]string, 0, len(p.query))
	for name := range p.query {
		unknown = append(unknown, name)
	}

	slices.Sort(unknown)

	return errors.Wrapf(ErrInvalidParameter, "unknown parameters for scheme '%s': %s", p.dsn.Scheme, strings.Join(unknown, ", "))
}
