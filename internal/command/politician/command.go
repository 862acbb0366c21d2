package politician

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bornholm/civicadmin/internal/command/common"
	"github.com/bornholm/civicadmin/internal/core/listing"
	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/service"
	"github.com/bornholm/civicadmin/internal/core/wizard"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	paramParty     = "party"
	paramPublished = "published"
	paramFeatured  = "featured"
)

var resource = common.Resource[model.Politician, model.PoliticianID]{
	Name: "politician",
	Manager: func(ctx *cli.Context) (*service.ResourceManager[model.Politician, model.PoliticianID], error) {
		manager, err := common.GetPoliticianManager(ctx)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return manager.ResourceManager, nil
	},
	SortKeys: listing.PoliticianSortKeys.Names(),
	ListFlags: []cli.Flag{
		&cli.StringFlag{
			Name:  paramParty,
			Usage: "Only show politicians of the given party (case insensitive)",
		},
		&cli.StringFlag{
			Name:  paramPublished,
			Usage: "Only show published ('true') or unpublished ('false') politicians",
		},
		&cli.StringFlag{
			Name:  paramFeatured,
			Usage: "Only show featured ('true') or not featured ('false') politicians",
		},
	},
	Predicates: func(ctx *cli.Context) []listing.Predicate[model.Politician] {
		filter := service.PoliticianFilter{
			Party:     ctx.String(paramParty),
			Published: boolFilter(ctx, paramPublished),
			Featured:  boolFilter(ctx, paramFeatured),
		}
		return filter.Predicates()
	},
	Columns: []string{"id", "name", "party", "position", "published", "featured"},
	Row: func(p model.Politician) []any {
		return []any{p.ID, p.Name, p.Party, p.Position, common.YesNo(p.IsPublished), common.YesNo(p.IsFeatured)}
	},
	Details: details,
	ID:      func(p model.Politician) model.PoliticianID { return p.ID },
}

func boolFilter(ctx *cli.Context, name string) *bool {
	raw := ctx.String(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}

	return &value
}

func details(p model.Politician) []string {
	return []string{
		"ID", string(p.ID),
		"Name", p.Name,
		"Party", p.Party,
		"Position", p.Position,
		"Constituency", p.Constituency,
		"Region", p.Region,
		"Email", p.Email,
		"Phone", p.Phone,
		"Website", p.Website,
		"Date of birth", p.DateOfBirth.String(),
		"Term", term(p),
		"Photo", p.PhotoURL,
		"Twitter", p.Social.Twitter,
		"Facebook", p.Social.Facebook,
		"Instagram", p.Social.Instagram,
		"Published", common.YesNo(p.IsPublished),
		"Featured", common.YesNo(p.IsFeatured),
		"Bio", common.Truncate(p.Bio, 120),
	}
}

func term(p model.Politician) string {
	if p.TermStart.IsZero() && p.TermEnd.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s - %s", p.TermStart, p.TermEnd)
}

func ShowCommand() *cli.Command {
	flags := common.WithCommonFlags()

	return &cli.Command{
		Name:      "show",
		Usage:     "Show a politician",
		ArgsUsage: "<politician-id>",
		Flags:     flags,
		Before:    common.Before(flags),
		Action: func(ctx *cli.Context) error {
			id, err := common.ID[model.PoliticianID](ctx, 0, "politician-id")
			if err != nil {
				return errors.WithStack(err)
			}

			manager, err := common.GetPoliticianManager(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			politician, err := manager.Get(ctx.Context, id)
			if err != nil {
				return errors.WithStack(err)
			}

			return printPolitician(ctx, politician)
		},
	}
}

func printPolitician(ctx *cli.Context, politician *model.Politician) error {
	return common.Print(ctx, politician, func(w io.Writer) error {
		return common.Fields(w, details(*politician)...)
	})
}

func CreateCommand() *cli.Command {
	flags := common.WithCommonFlags(common.WithInputFlags()...)

	return &cli.Command{
		Name:    "create",
		Aliases: []string{"add"},
		Usage:   "Create a politician, interactively when neither --from nor --set is given",
		Flags:   flags,
		Before:  common.Before(flags),
		Action: func(ctx *cli.Context) error {
			manager, err := common.GetPoliticianManager(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			draft := &model.Politician{}

			if common.HasInput(ctx) {
				if err := common.DecodeInput(ctx, draft); err != nil {
					return errors.WithStack(err)
				}
			} else {
				prompter := common.NewStdPrompter()
				prompter.Println("Press enter to keep a value, '-' to clear it.")

				draft, err = common.RunWizard(prompter, wizard.NewPolitician(draft))
				if err != nil {
					return errors.WithStack(err)
				}
			}

			created, err := manager.Create(ctx.Context, *draft)
			if err != nil {
				return errors.WithStack(err)
			}

			return printPolitician(ctx, created)
		},
	}
}

func EditCommand() *cli.Command {
	flags := common.WithCommonFlags(common.WithInputFlags()...)

	return &cli.Command{
		Name:      "edit",
		Usage:     "Update a politician, interactively when neither --from nor --set is given",
		ArgsUsage: "<politician-id>",
		Flags:     flags,
		Before:    common.Before(flags),
		Action: func(ctx *cli.Context) error {
			id, err := common.ID[model.PoliticianID](ctx, 0, "politician-id")
			if err != nil {
				return errors.WithStack(err)
			}

			manager, err := common.GetPoliticianManager(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			draft, err := manager.Get(ctx.Context, id)
			if err != nil {
				return errors.WithStack(err)
			}

			if common.HasInput(ctx) {
				if err := common.DecodeInput(ctx, draft); err != nil {
					return errors.WithStack(err)
				}
			} else {
				prompter := common.NewStdPrompter()
				prompter.Println("Press enter to keep a value, '-' to clear it.")

				draft, err = common.RunWizard(prompter, wizard.NewPolitician(draft))
				if err != nil {
					return errors.WithStack(err)
				}
			}

			draft.ID = id

			updated, err := manager.Update(ctx.Context, *draft)
			if err != nil {
				return errors.WithStack(err)
			}

			return printPolitician(ctx, updated)
		},
	}
}

func toggleCommand(name string, usage string, toggle func(ctx *cli.Context, manager *service.PoliticianManager, id model.PoliticianID) (*model.Politician, error)) *cli.Command {
	flags := common.WithCommonFlags()

	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<politician-id>",
		Flags:     flags,
		Before:    common.Before(flags),
		Action: func(ctx *cli.Context) error {
			id, err := common.ID[model.PoliticianID](ctx, 0, "politician-id")
			if err != nil {
				return errors.WithStack(err)
			}

			manager, err := common.GetPoliticianManager(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			politician, err := toggle(ctx, manager, id)
			if err != nil {
				return errors.WithStack(err)
			}

			return printPolitician(ctx, politician)
		},
	}
}

func Command() *cli.Command {
	return &cli.Command{
		Name:    "politician",
		Aliases: []string{"politicians", "pol"},
		Usage:   "Manage politician profiles",
		Subcommands: []*cli.Command{
			resource.ListCommand(),
			ShowCommand(),
			CreateCommand(),
			EditCommand(),
			resource.DeleteCommand(),
			toggleCommand("publish", "Make a politician visible to the public", func(ctx *cli.Context, m *service.PoliticianManager, id model.PoliticianID) (*model.Politician, error) {
				return m.SetPublished(ctx.Context, id, true)
			}),
			toggleCommand("unpublish", "Hide a politician from the public", func(ctx *cli.Context, m *service.PoliticianManager, id model.PoliticianID) (*model.Politician, error) {
				return m.SetPublished(ctx.Context, id, false)
			}),
			toggleCommand("feature", "Feature a politician on the home page", func(ctx *cli.Context, m *service.PoliticianManager, id model.PoliticianID) (*model.Politician, error) {
				return m.SetFeatured(ctx.Context, id, true)
			}),
			toggleCommand("unfeature", "Remove a politician from the featured list", func(ctx *cli.Context, m *service.PoliticianManager, id model.PoliticianID) (*model.Politician, error) {
				return m.SetFeatured(ctx.Context, id, false)
			}),
			toggleCommand("toggle-featured", "Flip the featured flag of a politician", func(ctx *cli.Context, m *service.PoliticianManager, id model.PoliticianID) (*model.Politician, error) {
				return m.ToggleFeatured(ctx.Context, id)
			}),
		},
	}
}
