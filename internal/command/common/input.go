package common

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const (
	ParamFrom = "from"
	ParamSet  = "set"
)

func WithInputFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{
			Name:    ParamFrom,
			Aliases: []string{"f"},
			Usage:   "Read the record from a yaml or json file or url ('-' for stdin)",
		},
		&cli.StringSliceFlag{
			Name:  ParamSet,
			Usage: "Set a field of the record, e.g. --set party=Green --set social.twitter=@jane",
		},
	}, flags...)
}

// HasInput reports whether the command was given a record through --from
// or --set.
func HasInput(ctx *cli.Context) bool {
	return ctx.String(ParamFrom) != "" || len(ctx.StringSlice(ParamSet)) > 0
}

// DecodeInput overlays the --from document then the --set fields onto
// target. Fields absent from the input keep their current value.
func DecodeInput(ctx *cli.Context, target any) error {
	if from := ctx.String(ParamFrom); from != "" {
		data, err := ReadLocation(ctx.Context, from)
		if err != nil {
			return errors.WithStack(err)
		}

		if err := yaml.Unmarshal(data, target); err != nil {
			return errors.Wrapf(err, "could not decode '%s'", from)
		}
	}

	if sets := ctx.StringSlice(ParamSet); len(sets) > 0 {
		if err := ApplySets(target, sets); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

var ErrInvalidSet = errors.New("invalid set expression")

// ApplySets decodes "path.to.field=value" expressions onto target. Values
// are resolved against the type of the targeted field.
func ApplySets(target any, sets []string) error {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for _, expr := range sets {
		path, value, found := strings.Cut(expr, "=")
		path = strings.TrimSpace(path)
		if !found || path == "" {
			return errors.Wrapf(ErrInvalidSet, "'%s', expected field=value", expr)
		}

		keys := strings.Split(path, ".")
		node := root

		for _, key := range keys[:len(keys)-1] {
			node = childMapping(node, key)
		}

		setScalar(node, keys[len(keys)-1], value)
	}

	if err := root.Decode(target); err != nil {
		return errors.Wrap(err, "could not apply fields")
	}

	return nil
}

func childMapping(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key && node.Content[i+1].Kind == yaml.MappingNode {
			return node.Content[i+1]
		}
	}

	child := &yaml.Node{Kind: yaml.MappingNode}
	node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, child)

	return child
}

func setScalar(node *yaml.Node, key string, value string) {
	scalar := &yaml.Node{Kind: yaml.ScalarNode, Value: value}
	if value == "" {
		// An empty plain scalar would be read as null and leave the field untouched
		scalar.Style = yaml.DoubleQuotedStyle
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			node.Content[i+1] = scalar
			return
		}
	}

	node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, scalar)
}
