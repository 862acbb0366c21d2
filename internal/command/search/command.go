package search

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/bornholm/civicadmin/internal/command/common"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/bornholm/civicadmin/internal/core/service"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	paramKind = "kind"
	paramMax  = "max"
)

var kinds = []port.IndexedKind{
	port.IndexedKindPolitician,
	port.IndexedKindModule,
	port.IndexedKindLesson,
	port.IndexedKindChallenge,
}

func Command() *cli.Command {
	flags := common.WithCommonFlags(
		&cli.StringSliceFlag{
			Name:    paramKind,
			Aliases: []string{"k"},
			Usage:   fmt.Sprintf("Only search records of the given kinds (available: %v)", kinds),
		},
		&cli.IntFlag{
			Name:  paramMax,
			Value: 20,
			Usage: "Maximum number of results",
		},
	)

	return &cli.Command{
		Name:      "search",
		Usage:     "Full text search across politicians, modules, lessons and challenges",
		ArgsUsage: "<query>",
		Flags:     flags,
		Before:    common.Before(flags),
		Action: func(ctx *cli.Context) error {
			query := strings.TrimSpace(strings.Join(ctx.Args().Slice(), " "))
			if query == "" {
				return errors.Wrap(common.ErrMissingArgument, "expected <query>")
			}

			opts := service.SearchOptions{
				MaxResults: ctx.Int(paramMax),
			}

			for _, raw := range ctx.StringSlice(paramKind) {
				kind := port.IndexedKind(strings.ToLower(strings.TrimSpace(raw)))
				if !slices.Contains(kinds, kind) {
					return errors.Errorf("unknown kind '%s', expected one of %v", raw, kinds)
				}
				opts.Kinds = append(opts.Kinds, kind)
			}

			manager, err := common.GetSearchManager(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			results, err := manager.Search(ctx.Context, query, opts)
			if err != nil {
				return errors.WithStack(err)
			}

			return common.Print(ctx, results, func(w io.Writer) error {
				if len(results) == 0 {
					fmt.Fprintln(w, "No result.")
					return nil
				}

				table := common.NewTable(w, "kind", "id", "label", "score")
				for _, r := range results {
					table.Row(r.Kind, r.ID, common.Truncate(r.Label, 60), fmt.Sprintf("%.2f", r.Score))
				}

				return table.Flush()
			})
		},
	}
}
