package learning

import (
	"fmt"
	"io"

	"github.com/bornholm/civicadmin/internal/command/common"
	"github.com/bornholm/civicadmin/internal/core/listing"
	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/service"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var modules = common.Resource[model.Module, model.ModuleID]{
	Name: "module",
	Manager: func(ctx *cli.Context) (*service.ResourceManager[model.Module, model.ModuleID], error) {
		manager, err := common.GetLearningManager(ctx)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return manager.Modules(), nil
	},
	SortKeys: listing.ModuleSortKeys.Names(),
	Columns:  []string{"id", "order", "title", "difficulty", "minutes", "published"},
	Row: func(m model.Module) []any {
		return []any{m.ID, m.Order, common.Truncate(m.Title, 50), m.Difficulty, m.EstimatedMinutes, common.YesNo(m.IsPublished)}
	},
	Details: moduleDetails,
	ID:      func(m model.Module) model.ModuleID { return m.ID },
	New: func(ctx *cli.Context) (model.Module, error) {
		return model.Module{Difficulty: model.DifficultyBeginner}, nil
	},
}

func moduleDetails(m model.Module) []string {
	return []string{
		"ID", string(m.ID),
		"Title", m.Title,
		"Category", m.Category,
		"Difficulty", string(m.Difficulty),
		"Estimated", fmt.Sprintf("%d min", m.EstimatedMinutes),
		"Order", fmt.Sprint(m.Order),
		"Image", m.ImageURL,
		"Published", common.YesNo(m.IsPublished),
		"Lessons", lessonCount(m),
		"Description", common.Truncate(m.Description, 120),
	}
}

func lessonCount(m model.Module) string {
	if len(m.Lessons) == 0 {
		return ""
	}
	return fmt.Sprint(len(m.Lessons))
}

func printModule(ctx *cli.Context, module *model.Module) error {
	return common.Print(ctx, module, func(w io.Writer) error {
		if err := common.Fields(w, moduleDetails(*module)...); err != nil {
			return errors.WithStack(err)
		}

		if len(module.Lessons) == 0 {
			return nil
		}

		fmt.Fprintln(w)

		table := common.NewTable(w, "lesson", "order", "title", "minutes")
		for _, l := range module.Lessons {
			table.Row(l.ID, l.Order, common.Truncate(l.Title, 50), l.DurationMinutes)
		}

		return table.Flush()
	})
}

func moduleShowCommand() *cli.Command {
	flags := common.WithCommonFlags()

	return &cli.Command{
		Name:      "show",
		Usage:     "Show a module and its lessons",
		ArgsUsage: "<module-id>",
		Flags:     flags,
		Before:    common.Before(flags),
		Action: func(ctx *cli.Context) error {
			id, err := common.ID[model.ModuleID](ctx, 0, "module-id")
			if err != nil {
				return errors.WithStack(err)
			}

			manager, err := common.GetLearningManager(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			module, err := manager.GetModule(ctx.Context, id)
			if err != nil {
				return errors.WithStack(err)
			}

			return printModule(ctx, module)
		},
	}
}

func modulePublishCommand(name string, usage string, published bool) *cli.Command {
	flags := common.WithCommonFlags()

	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<module-id>",
		Flags:     flags,
		Before:    common.Before(flags),
		Action: func(ctx *cli.Context) error {
			id, err := common.ID[model.ModuleID](ctx, 0, "module-id")
			if err != nil {
				return errors.WithStack(err)
			}

			manager, err := common.GetLearningManager(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			module, err := manager.SetModulePublished(ctx.Context, id, published)
			if err != nil {
				return errors.WithStack(err)
			}

			return printModule(ctx, module)
		},
	}
}

func ModuleCommand() *cli.Command {
	return &cli.Command{
		Name:    "module",
		Aliases: []string{"modules"},
		Usage:   "Manage learning modules",
		Subcommands: []*cli.Command{
			modules.ListCommand(),
			moduleShowCommand(),
			modules.AddCommand(),
			modules.EditCommand(),
			modules.DeleteCommand(),
			modulePublishCommand("publish", "Make a module visible to learners", true),
			modulePublishCommand("unpublish", "Hide a module from learners", false),
		},
	}
}
