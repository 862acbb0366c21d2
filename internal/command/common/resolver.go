package common

import (
	"context"
	"io"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Bornholm/amatl/pkg/resolver"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
	"gopkg.in/yaml.v2"

	// Register resolver schemes

	_ "github.com/Bornholm/amatl/pkg/resolver/file"
	_ "github.com/Bornholm/amatl/pkg/resolver/http"
	_ "github.com/Bornholm/amatl/pkg/resolver/stdin"
)

func NewResolverSourceFromFlagFunc(flag string) func(cCtx *cli.Context) (altsrc.InputSourceContext, error) {
	return func(cCtx *cli.Context) (altsrc.InputSourceContext, error) {
		if urlStr := cCtx.String(flag); urlStr != "" {
			return NewResolvedInputSource(cCtx.Context, urlStr)
		}

		return altsrc.NewMapInputSource("", map[any]any{}), nil
	}
}

func NewResolvedInputSource(ctx context.Context, urlStr string) (altsrc.InputSourceContext, error) {
	url, err := ParseLocation(urlStr)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	data, err := ReadLocation(ctx, urlStr)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	ext := filepath.Ext(url.Path)
	switch ext {
	case ".json", ".yaml", ".yml":
		var values map[any]any

		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, errors.WithStack(err)
		}

		values, err = rewriteRelativeURL(url, values)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return altsrc.NewMapInputSource(urlStr, values), nil

	default:
		return nil, errors.Errorf("no parser associated with '%s' file extension", ext)
	}
}

// ParseLocation accepts an url, a file path or "-" for the standard input.
func ParseLocation(location string) (*url.URL, error) {
	if location == "-" {
		return &url.URL{Scheme: "stdin"}, nil
	}

	if isURL(location) && strings.Contains(location, "://") {
		u, err := url.Parse(location)
		if err != nil {
			return nil, errors.Wrapf(err, "could not parse url '%s'", location)
		}
		return u, nil
	}

	absPath, err := filepath.Abs(location)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &url.URL{Scheme: "file", Path: filepath.ToSlash(absPath)}, nil
}

// ReadLocation returns the content behind a location accepted by
// ParseLocation.
func ReadLocation(ctx context.Context, location string) ([]byte, error) {
	url, err := ParseLocation(location)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	reader, err := resolver.Resolve(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "could not resolve '%s'", location)
	}

	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read '%s'", location)
	}

	return data, nil
}

func rewriteRelativeURL(fromURL *url.URL, values map[any]any) (map[any]any, error) {
	base := *fromURL
	base.Path = filepath.Dir(fromURL.Path)

	absPath, err := filepath.Abs(base.Path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	base.Path = absPath

	for key, rawValue := range values {
		value, ok := rawValue.(string)
		if !ok {
			continue
		}

		// Tokens are dotted strings but never paths
		if key == ParamToken {
			continue
		}

		switch {
		case isURL(value):
			continue

		case isPath(value):
			if filepath.IsAbs(value) {
				continue
			}

			values[key] = base.JoinPath(value).String()
			continue
		}
	}

	return values, nil
}

var filepathRegExp = regexp.MustCompile(`^(?i)(?:\/[^\/]+)+\/?[^\s]+(?:\.[^\s]+)+|[^\s]+(?:\.[^\s]+)+$`)

func isPath(str string) bool {
	return filepathRegExp.MatchString(str)
}

func isURL(str string) bool {
	_, err := url.ParseRequestURI(str)
	return err == nil
}
