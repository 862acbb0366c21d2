package update

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/bornholm/civicadmin/internal/build"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	paramCheck = "check"

	repository = "bornholm/civicadmin"
)

func newUpdater() (*selfupdate.Updater, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	updater, err := selfupdate.NewUpdater(selfupdate.Config{
		Source:    source,
		Validator: &selfupdate.ChecksumValidator{UniqueFilename: "checksums.txt"},
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return updater, nil
}

// latest returns the latest release when it is newer than version.
func latest(ctx context.Context, updater *selfupdate.Updater, version string) (*selfupdate.Release, error) {
	release, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repository))
	if err != nil {
		return nil, errors.Wrap(err, "could not detect latest version")
	}

	if !found {
		return nil, errors.Errorf("no release found for %s/%s", runtime.GOOS, runtime.GOARCH)
	}

	slog.DebugContext(ctx, "latest stable version", slog.String("version", release.Version()))

	if release.LessOrEqual(version) {
		return nil, nil
	}

	return release, nil
}

func Command() *cli.Command {
	return &cli.Command{
		Name:  "self-update",
		Usage: "Replace the running binary with the latest release",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  paramCheck,
				Usage: "Only report whether a newer release exists",
			},
		},
		Action: func(ctx *cli.Context) error {
			updater, err := newUpdater()
			if err != nil {
				return errors.WithStack(err)
			}

			release, err := latest(ctx.Context, updater, build.ShortVersion)
			if err != nil {
				return errors.WithStack(err)
			}

			if release == nil {
				fmt.Fprintf(os.Stderr, "Version %s is the latest.\n", build.ShortVersion)
				return nil
			}

			if ctx.Bool(paramCheck) {
				fmt.Fprintf(os.Stderr, "Version %s is available (current: %s).\n", release.Version(), build.ShortVersion)
				return nil
			}

			exe, err := selfupdate.ExecutablePath()
			if err != nil {
				return errors.Wrap(err, "could not locate executable path")
			}

			if err := selfupdate.UpdateTo(ctx.Context, release.AssetURL, release.AssetName, exe); err != nil {
				return errors.Wrap(err, "could not update binary")
			}

			fmt.Fprintf(os.Stderr, "Updated to version %s.\n", release.Version())

			return nil
		},
	}
}
