package command

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/bornholm/civicadmin/internal/build"
	"github.com/bornholm/civicadmin/internal/command/common"
	"github.com/bornholm/civicadmin/internal/config"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/bornholm/civicadmin/internal/core/service"
	"github.com/bornholm/civicadmin/internal/metrics"
	"github.com/bornholm/go-x/slogx"
	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Main(name string, usage string, commands ...*cli.Command) {
	app := &cli.App{
		Name:     name,
		Usage:    usage,
		Commands: commands,
		Version:  build.LongVersion,
		Before: func(ctx *cli.Context) error {
			workdir := ctx.String(common.ParamWorkdir)
			// Switch to new working directory if defined
			if workdir != "" {
				if err := os.Chdir(workdir); err != nil {
					return errors.Wrap(err, "could not change working directory")
				}
			}

			conf, err := common.GetConfig(ctx)
			if err != nil {
				return errors.Wrap(err, "could not load configuration")
			}

			handlerOptions := &slog.HandlerOptions{
				Level:     conf.Logger.SlogLevel(),
				AddSource: true,
			}

			var handler slog.Handler
			if conf.Logger.Format == "json" {
				handler = slog.NewJSONHandler(os.Stderr, handlerOptions)
			} else {
				handler = slog.NewTextHandler(os.Stderr, handlerOptions)
			}

			slog.SetDefault(slog.New(slogx.ContextHandler{
				Handler: handler,
			}))

			if conf.Sentry.DSN != "" {
				err := sentry.Init(sentry.ClientOptions{
					Dsn:         conf.Sentry.DSN,
					Environment: conf.Sentry.Environment,
					Release:     name + "@" + build.ShortVersion,
				})
				if err != nil {
					slog.WarnContext(ctx.Context, "could not initialize sentry", slogx.Error(errors.WithStack(err)))
				}
			}

			return nil
		},
		After: func(ctx *cli.Context) error {
			conf, err := common.GetConfig(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			if err := metrics.WriteTextfile(conf.Metrics.Textfile); err != nil {
				slog.WarnContext(ctx.Context, "could not write metrics", slogx.Error(err))
			}

			sentry.Flush(2 * time.Second)

			return nil
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    common.ParamConfig,
				EnvVars: []string{config.Prefix + "CLI_CONFIG"},
				Aliases: []string{"c"},
				Usage:   "configuration file to use (file path, http(s):// or stdin:// url)",
			},
			&cli.BoolFlag{
				Name:    common.ParamDebug,
				Value:   false,
				EnvVars: []string{config.Prefix + "CLI_DEBUG"},
				Usage:   "Toggle debug mode",
			},
			&cli.StringFlag{
				Name:    common.ParamWorkdir,
				Value:   "",
				EnvVars: []string{config.Prefix + "CLI_WORKDIR"},
				Usage:   "The working directory",
			},
			&cli.StringFlag{
				Name:  common.ParamLogLevel,
				Usage: "Set logging level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:    common.ParamProfile,
				Aliases: []string{"p"},
				Usage:   "Connection profile to use",
			},
		},
	}

	app.ExitErrHandler = func(ctx *cli.Context, err error) {
		if err == nil {
			return
		}

		// The operator has already been told
		if service.IsAlerted(err) {
			return
		}

		if !errors.Is(err, port.ErrInvalid) {
			sentry.CaptureException(err)
		}

		debug := ctx.Bool(common.ParamDebug)

		if !debug {
			slog.ErrorContext(ctx.Context, err.Error())
		} else {
			slog.ErrorContext(ctx.Context, fmt.Sprintf("%+v", err))
		}
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	if err := app.Run(os.Args); err != nil {
		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}
}
