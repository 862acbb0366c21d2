package snapshot

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/bornholm/civicadmin/internal/command/common"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func printInfo(ctx *cli.Context, info *port.SnapshotInfo) error {
	return common.Print(ctx, info, func(w io.Writer) error {
		if info.PulledAt.IsZero() {
			fmt.Fprintln(w, "No snapshot, run 'snapshot pull' first.")
			return nil
		}

		fmt.Fprintf(w, "Pulled at %s (%s)\n\n", info.PulledAt.Format(time.RFC3339), humanize.Time(info.PulledAt))

		names := make([]string, 0, len(info.Counts))
		for name := range info.Counts {
			names = append(names, name)
		}
		slices.Sort(names)

		table := common.NewTable(w, "records", "count")
		for _, name := range names {
			table.Row(name, humanize.Comma(info.Counts[name]))
		}

		return table.Flush()
	})
}

func pullCommand() *cli.Command {
	flags := common.WithCommonFlags(common.FlagSnapshotDSN)

	return &cli.Command{
		Name:   "pull",
		Usage:  "Copy every admin and learning record to the local snapshot database",
		Flags:  flags,
		Before: common.Before(flags),
		Action: func(ctx *cli.Context) error {
			manager, err := common.GetSnapshotManager(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			info, err := manager.Pull(ctx.Context)
			if err != nil {
				return errors.WithStack(err)
			}

			return printInfo(ctx, info)
		},
	}
}

func infoCommand() *cli.Command {
	flags := common.WithCommonFlags(common.FlagSnapshotDSN)

	return &cli.Command{
		Name:   "info",
		Usage:  "Show the date and the content of the local snapshot",
		Flags:  flags,
		Before: common.Before(flags),
		Action: func(ctx *cli.Context) error {
			manager, err := common.GetSnapshotManager(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			info, err := manager.Info(ctx.Context)
			if err != nil {
				if !errors.Is(err, port.ErrNotFound) {
					return errors.WithStack(err)
				}
				info = &port.SnapshotInfo{}
			}

			return printInfo(ctx, info)
		},
	}
}

func Command() *cli.Command {
	return &cli.Command{
		Name:  "snapshot",
		Usage: "Manage the local snapshot used by offline reports",
		Subcommands: []*cli.Command{
			pullCommand(),
			infoCommand(),
		},
	}
}
