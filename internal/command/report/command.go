package report

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/bornholm/civicadmin/internal/command/common"
	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/bornholm/civicadmin/internal/core/service"
	"github.com/bornholm/civicadmin/internal/report"
	"github.com/bornholm/civicadmin/internal/setup"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	paramFormat      = "format"
	paramDestination = "destination"
	paramName        = "name"
	paramOffline     = "offline"
	paramSort        = "sort"
)

func withReportFlags(flags ...cli.Flag) []cli.Flag {
	return common.WithCommonFlags(append([]cli.Flag{
		&cli.StringFlag{
			Name:    paramFormat,
			Aliases: []string{"F"},
			Value:   string(report.FormatText),
			Usage:   fmt.Sprintf("Report format (available: %v)", report.Formats),
		},
		&cli.StringFlag{
			Name:    paramDestination,
			Aliases: []string{"d"},
			Usage:   "Publish the report to the given destination, e.g. 'local://./reports', 'minio://...', 'sftp://...', 'webdav://...'",
		},
		&cli.BoolFlag{
			Name:  paramOffline,
			Usage: "Build the report from the local snapshot instead of the API",
		},
		&cli.StringFlag{
			Name:  paramName,
			Usage: "File name of the published report, derived from the report title by default",
		},
		common.FlagSnapshotDSN,
	}, flags...)...)
}

// loadSnapshot returns the local snapshot with --offline, or freshly
// collected records otherwise.
func loadSnapshot(ctx *cli.Context, funcs ...service.CollectOptionFunc) (*port.Snapshot, error) {
	if ctx.Bool(paramOffline) {
		manager, err := common.GetSnapshotManager(ctx)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		snapshot, err := manager.Load(ctx.Context)
		if err != nil {
			return nil, errors.Wrap(err, "could not load snapshot, run 'snapshot pull' first")
		}

		slog.InfoContext(ctx.Context, "using local snapshot", slog.String("pulledAt", humanize.Time(snapshot.PulledAt)))

		return snapshot, nil
	}

	conf, err := common.GetConfig(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	collector, err := common.GetCollector(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	funcs = append([]service.CollectOptionFunc{service.WithCollectConcurrency(conf.Report.Concurrency)}, funcs...)

	snapshot, err := collector.Collect(ctx.Context, funcs...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return snapshot, nil
}

// output renders r to the standard output or publishes it to the
// destination.
func output(ctx *cli.Context, r *report.Report) error {
	format, err := report.ParseFormat(ctx.String(paramFormat))
	if err != nil {
		return errors.WithStack(err)
	}

	destination := ctx.String(paramDestination)

	if destination == "" {
		if format.Binary() {
			return errors.Errorf("the %s format can only be published, use --%s", format, paramDestination)
		}

		var buff bytes.Buffer
		if err := report.Render(&buff, r, format); err != nil {
			return errors.WithStack(err)
		}

		if _, err := buff.WriteTo(os.Stdout); err != nil {
			return errors.WithStack(err)
		}

		return nil
	}

	conf, err := common.GetConfig(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	backend, scheme, err := setup.NewReportBackendFromConfig(ctx.Context, conf, destination)
	if err != nil {
		return errors.WithStack(err)
	}

	name := ctx.String(paramName)
	if name == "" {
		name = report.FileName(r)
	}

	path, err := report.Publish(ctx.Context, backend, scheme, name, r, format)
	if err != nil {
		return errors.WithStack(err)
	}

	fmt.Fprintf(os.Stderr, "Report published to '%s'.\n", path)

	return nil
}

func politicianCommand() *cli.Command {
	flags := withReportFlags()

	return &cli.Command{
		Name:      "politician",
		Usage:     "Scorecard of a politician: commitments, attendance and timeline",
		ArgsUsage: "<politician-id>",
		Flags:     flags,
		Before:    common.Before(flags),
		Action: func(ctx *cli.Context) error {
			id, err := common.ID[model.PoliticianID](ctx, 0, "politician-id")
			if err != nil {
				return errors.WithStack(err)
			}

			snapshot, err := loadSnapshot(ctx,
				service.WithCollectPoliticians(id),
				service.WithCollectLearning(false),
			)
			if err != nil {
				return errors.WithStack(err)
			}

			scorecard, err := report.BuildScorecard(snapshot, id)
			if err != nil {
				return errors.WithStack(err)
			}

			return output(ctx, scorecard.Report())
		},
	}
}

func politiciansCommand() *cli.Command {
	flags := withReportFlags(
		&cli.StringFlag{
			Name:  paramSort,
			Usage: "Sort key of the overview, prefixed with '-' for descending order",
		},
	)

	return &cli.Command{
		Name:   "politicians",
		Usage:  "Overview of every politician with fulfilment and attendance rates",
		Flags:  flags,
		Before: common.Before(flags),
		Action: func(ctx *cli.Context) error {
			snapshot, err := loadSnapshot(ctx, service.WithCollectLearning(false))
			if err != nil {
				return errors.WithStack(err)
			}

			overview, err := report.BuildPoliticiansOverview(snapshot, ctx.String(paramSort))
			if err != nil {
				return errors.WithStack(err)
			}

			return output(ctx, overview.Report())
		},
	}
}

func learningCommand() *cli.Command {
	flags := withReportFlags()

	return &cli.Command{
		Name:   "learning",
		Usage:  "Overview of the learning modules, lessons, quizzes and challenges",
		Flags:  flags,
		Before: common.Before(flags),
		Action: func(ctx *cli.Context) error {
			snapshot, err := loadSnapshot(ctx,
				service.WithCollectAdmin(false),
				service.WithCollectQuizzes(true),
			)
			if err != nil {
				return errors.WithStack(err)
			}

			overview, err := report.BuildLearningOverview(snapshot)
			if err != nil {
				return errors.WithStack(err)
			}

			return output(ctx, overview.Report())
		},
	}
}

func Command() *cli.Command {
	return &cli.Command{
		Name:    "report",
		Aliases: []string{"reports"},
		Usage:   "Build and publish reports",
		Subcommands: []*cli.Command{
			politicianCommand(),
			politiciansCommand(),
			learningCommand(),
		},
	}
}
