package common

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var ErrMissingArgument = errors.New("missing argument")

// Arg returns the positional argument at idx, named name in errors.
func Arg(ctx *cli.Context, idx int, name string) (string, error) {
	value := strings.TrimSpace(ctx.Args().Get(idx))
	if value == "" {
		return "", errors.Wrapf(ErrMissingArgument, "expected <%s>", name)
	}

	return value, nil
}

// ID returns the positional argument at idx as an identifier.
func ID[T ~string](ctx *cli.Context, idx int, name string) (T, error) {
	value, err := Arg(ctx, idx, name)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return T(value), nil
}
