package common

import (
	"fmt"
	"io"
	"strings"

	"github.com/bornholm/civicadmin/internal/core/listing"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/bornholm/civicadmin/internal/core/service"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const ParamYes = "yes"

// Resource describes how a resource is exposed as list, show, add, edit
// and delete commands.
type Resource[T any, K ~string] struct {
	// Name is the singular name of the resource, as used in usages
	Name string
	// Parent is the name of the positional argument preceding the
	// identifier, empty for top level resources
	Parent string

	Manager  func(ctx *cli.Context) (*service.ResourceManager[T, K], error)
	SortKeys []string

	// ListFlags and Predicates add resource specific filters to list
	ListFlags  []cli.Flag
	Predicates func(ctx *cli.Context) []listing.Predicate[T]

	Columns []string
	Row     func(item T) []any
	Details func(item T) []string

	ID  func(item T) K
	New func(ctx *cli.Context) (T, error)
}

func (r Resource[T, K]) usage(args ...string) string {
	all := make([]string, 0, len(args)+1)
	if r.Parent != "" {
		all = append(all, "<"+r.Parent+">")
	}
	for _, a := range args {
		all = append(all, "<"+a+">")
	}
	return strings.Join(all, " ")
}

func (r Resource[T, K]) idIndex() int {
	if r.Parent != "" {
		return 1
	}
	return 0
}

// Find returns the item identified by the positional argument.
func (r Resource[T, K]) Find(ctx *cli.Context) (*service.ResourceManager[T, K], *T, error) {
	id, err := ID[K](ctx, r.idIndex(), r.Name+"-id")
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	manager, err := r.Manager(ctx)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	items, err := manager.Items(ctx.Context)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	for _, item := range items {
		if r.ID(item) == id {
			return manager, &item, nil
		}
	}

	return nil, nil, errors.Wrapf(port.ErrNotFound, "%s '%s'", r.Name, id)
}

func (r Resource[T, K]) ListCommand() *cli.Command {
	flags := WithCommonFlags(WithListFlags(r.SortKeys, r.ListFlags...)...)

	return &cli.Command{
		Name:      "list",
		Usage:     fmt.Sprintf("List %ss", r.Name),
		ArgsUsage: r.usage(),
		Flags:     flags,
		Before:    Before(flags),
		Action: func(ctx *cli.Context) error {
			manager, err := r.Manager(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			var predicates []listing.Predicate[T]
			if r.Predicates != nil {
				predicates = r.Predicates(ctx)
			}

			items, page, err := manager.List(ctx.Context, GetListOptions(ctx), predicates...)
			if err != nil {
				return errors.WithStack(err)
			}

			return Print(ctx, items, func(w io.Writer) error {
				table := NewTable(w, r.Columns...)
				for _, item := range items {
					table.Row(r.Row(item)...)
				}

				if err := table.Flush(); err != nil {
					return errors.WithStack(err)
				}

				PageFooter(w, page)

				return nil
			})
		},
	}
}

func (r Resource[T, K]) ShowCommand() *cli.Command {
	flags := WithCommonFlags()

	return &cli.Command{
		Name:      "show",
		Usage:     fmt.Sprintf("Show a %s", r.Name),
		ArgsUsage: r.usage(r.Name + "-id"),
		Flags:     flags,
		Before:    Before(flags),
		Action: func(ctx *cli.Context) error {
			_, item, err := r.Find(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			return r.print(ctx, item)
		},
	}
}

func (r Resource[T, K]) print(ctx *cli.Context, item *T) error {
	return Print(ctx, item, func(w io.Writer) error {
		return Fields(w, r.Details(*item)...)
	})
}

func (r Resource[T, K]) AddCommand() *cli.Command {
	flags := WithCommonFlags(WithInputFlags()...)

	return &cli.Command{
		Name:      "add",
		Aliases:   []string{"create"},
		Usage:     fmt.Sprintf("Create a %s from a YAML file and --set expressions", r.Name),
		ArgsUsage: r.usage(),
		Flags:     flags,
		Before:    Before(flags),
		Action: func(ctx *cli.Context) error {
			if !HasInput(ctx) {
				return errors.Errorf("nothing to create, use --%s or --%s", ParamFrom, ParamSet)
			}

			manager, err := r.Manager(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			var item T
			if r.New != nil {
				item, err = r.New(ctx)
				if err != nil {
					return errors.WithStack(err)
				}
			}

			if err := DecodeInput(ctx, &item); err != nil {
				return errors.WithStack(err)
			}

			created, err := manager.Create(ctx.Context, item)
			if err != nil {
				return errors.WithStack(err)
			}

			return r.print(ctx, created)
		},
	}
}

func (r Resource[T, K]) EditCommand() *cli.Command {
	flags := WithCommonFlags(WithInputFlags()...)

	return &cli.Command{
		Name:      "edit",
		Usage:     fmt.Sprintf("Update a %s from a YAML file and --set expressions", r.Name),
		ArgsUsage: r.usage(r.Name + "-id"),
		Flags:     flags,
		Before:    Before(flags),
		Action: func(ctx *cli.Context) error {
			if !HasInput(ctx) {
				return errors.Errorf("nothing to change, use --%s or --%s", ParamFrom, ParamSet)
			}

			manager, item, err := r.Find(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			id := r.ID(*item)

			if err := DecodeInput(ctx, item); err != nil {
				return errors.WithStack(err)
			}

			if r.ID(*item) != id {
				return errors.Errorf("the identifier of a %s cannot be changed", r.Name)
			}

			updated, err := manager.Update(ctx.Context, *item)
			if err != nil {
				return errors.WithStack(err)
			}

			return r.print(ctx, updated)
		},
	}
}

func (r Resource[T, K]) DeleteCommand() *cli.Command {
	flags := WithCommonFlags(
		&cli.BoolFlag{
			Name:    ParamYes,
			Aliases: []string{"y"},
			Usage:   "Do not ask for confirmation",
		},
	)

	return &cli.Command{
		Name:      "delete",
		Usage:     fmt.Sprintf("Delete a %s", r.Name),
		ArgsUsage: r.usage(r.Name + "-id"),
		Flags:     flags,
		Before:    Before(flags),
		Action: func(ctx *cli.Context) error {
			manager, item, err := r.Find(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			id := r.ID(*item)

			confirmed, err := ConfirmDeletion(ctx, fmt.Sprintf("%s '%s'", r.Name, id))
			if err != nil {
				return errors.WithStack(err)
			}

			if !confirmed {
				return nil
			}

			if err := manager.Delete(ctx.Context, id); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}

// ConfirmDeletion asks for confirmation unless --yes is set.
func ConfirmDeletion(ctx *cli.Context, what string) (bool, error) {
	if ctx.Bool(ParamYes) {
		return true, nil
	}

	confirmed, err := NewStdPrompter().Confirm(fmt.Sprintf("Delete %s? This cannot be undone", what))
	if err != nil {
		return false, errors.WithStack(err)
	}

	return confirmed, nil
}

// Commands returns the list, show, add, edit and delete commands.
func (r Resource[T, K]) Commands() []*cli.Command {
	return []*cli.Command{
		r.ListCommand(),
		r.ShowCommand(),
		r.AddCommand(),
		r.EditCommand(),
		r.DeleteCommand(),
	}
}
