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

const paramActive = "active"

var challenges = common.Resource[model.Challenge, model.ChallengeID]{
	Name: "challenge",
	Manager: func(ctx *cli.Context) (*service.ResourceManager[model.Challenge, model.ChallengeID], error) {
		manager, err := common.GetLearningManager(ctx)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return manager.Challenges(), nil
	},
	SortKeys: listing.ChallengeSortKeys.Names(),
	ListFlags: []cli.Flag{
		&cli.BoolFlag{
			Name:  paramActive,
			Usage: "Only show active challenges",
		},
	},
	Predicates: func(ctx *cli.Context) []listing.Predicate[model.Challenge] {
		if !ctx.Bool(paramActive) {
			return nil
		}
		return []listing.Predicate[model.Challenge]{
			listing.Equal(true, func(c model.Challenge) bool { return c.IsActive }),
		}
	},
	Columns: []string{"id", "title", "type", "points", "start", "end", "active"},
	Row: func(c model.Challenge) []any {
		return []any{c.ID, common.Truncate(c.Title, 40), c.Type, c.Points, c.StartDate, c.EndDate, common.YesNo(c.IsActive)}
	},
	Details: challengeDetails,
	ID:      func(c model.Challenge) model.ChallengeID { return c.ID },
	New: func(ctx *cli.Context) (model.Challenge, error) {
		return model.Challenge{Type: model.ChallengeTypeDaily}, nil
	},
}

func challengeDetails(c model.Challenge) []string {
	return []string{
		"ID", string(c.ID),
		"Title", c.Title,
		"Type", string(c.Type),
		"Module", string(c.ModuleID),
		"Points", fmt.Sprint(c.Points),
		"Start", c.StartDate.String(),
		"End", c.EndDate.String(),
		"Active", common.YesNo(c.IsActive),
		"Description", common.Truncate(c.Description, 120),
	}
}

func challengeActivateCommand(name string, usage string, active bool) *cli.Command {
	flags := common.WithCommonFlags()

	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<challenge-id>",
		Flags:     flags,
		Before:    common.Before(flags),
		Action: func(ctx *cli.Context) error {
			id, err := common.ID[model.ChallengeID](ctx, 0, "challenge-id")
			if err != nil {
				return errors.WithStack(err)
			}

			manager, err := common.GetLearningManager(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			challenge, err := manager.SetChallengeActive(ctx.Context, id, active)
			if err != nil {
				return errors.WithStack(err)
			}

			return common.Print(ctx, challenge, func(w io.Writer) error {
				return common.Fields(w, challengeDetails(*challenge)...)
			})
		},
	}
}

func ChallengeCommand() *cli.Command {
	return &cli.Command{
		Name:    "challenge",
		Aliases: []string{"challenges"},
		Usage:   "Manage learning challenges",
		Subcommands: append(challenges.Commands(),
			challengeActivateCommand("activate", "Activate a challenge", true),
			challengeActivateCommand("deactivate", "Deactivate a challenge", false),
		),
	}
}
