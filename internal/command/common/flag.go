package common

import (
	"os"
	"sync"

	"github.com/bornholm/civicadmin/internal/config"
	"github.com/bornholm/civicadmin/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	ParamConfig         = "config"
	ParamDebug          = "debug"
	ParamWorkdir        = "workdir"
	ParamLogLevel       = "log-level"
	ParamProfile        = "profile"
	ParamServer         = "server"
	ParamLearningServer = "learning-server"
	ParamToken          = "token"
	ParamOutput         = "output"
	ParamSnapshotDSN    = "snapshot-dsn"
)

var (
	flagServer = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    ParamServer,
		Aliases: []string{"s"},
		Usage:   "Admin API base url",
	})
	flagLearningServer = altsrc.NewStringFlag(&cli.StringFlag{
		Name:  ParamLearningServer,
		Usage: "Learning API base url",
	})
	flagToken = altsrc.NewStringFlag(&cli.StringFlag{
		Name:  ParamToken,
		Usage: "API token, takes precedence over the token of the profile",
	})
	flagOutput = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    ParamOutput,
		Aliases: []string{"o"},
		Value:   string(OutputText),
		Usage:   "Output format (text, json, yaml)",
	})
	// FlagSnapshotDSN is only added to the commands using the local snapshot
	FlagSnapshotDSN = altsrc.NewStringFlag(&cli.StringFlag{
		Name:  ParamSnapshotDSN,
		Usage: "Path of the local snapshot database",
	})
)

func WithCommonFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagServer,
		flagLearningServer,
		flagToken,
		flagOutput,
	}, flags...)
}

// Before returns a cli.BeforeFunc loading the values of the given flags
// from the file or url of the --config flag.
func Before(flags []cli.Flag) cli.BeforeFunc {
	return altsrc.InitInputSourceWithContext(flags, NewResolverSourceFromFlagFunc(ParamConfig))
}

var (
	configMutex sync.Mutex
	baseConfig  *config.Config
)

// GetConfig returns the configuration of the running command: environment
// and dotenv values, then the active profile, then the command line flags.
func GetConfig(ctx *cli.Context) (*config.Config, error) {
	base, err := getBaseConfig(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	conf := *base

	if value := ctx.String(ParamServer); value != "" {
		conf.API.BaseURL = value
	}

	if value := ctx.String(ParamLearningServer); value != "" {
		conf.Learning.BaseURL = value
	}

	if value := ctx.String(ParamToken); value != "" {
		conf.Auth.Token = value
	}

	if value := ctx.String(ParamSnapshotDSN); value != "" {
		conf.Snapshot.DSN = value
	}

	return &conf, nil
}

func getBaseConfig(ctx *cli.Context) (*config.Config, error) {
	configMutex.Lock()
	defer configMutex.Unlock()

	if baseConfig != nil {
		return baseConfig, nil
	}

	conf, err := config.Parse()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if value := ctx.String(ParamProfile); value != "" {
		conf.Auth.Profile = value
	}

	if value := ctx.String(ParamLogLevel); value != "" {
		conf.Logger.Level = value
	}

	if ctx.Bool(ParamDebug) {
		conf.Logger.Level = "debug"
	}

	profiles, err := setup.NewProfileStoreFromConfig(ctx.Context, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	profile, err := profiles.Get(conf.Auth.Profile)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load profile '%s'", conf.Auth.Profile)
	}

	if _, exists := os.LookupEnv(config.Prefix + "API_BASE_URL"); !exists && profile.Server != "" {
		conf.API.BaseURL = profile.Server
	}

	if _, exists := os.LookupEnv(config.Prefix + "LEARNING_BASE_URL"); !exists && profile.LearningServer != "" {
		conf.Learning.BaseURL = profile.LearningServer
	}

	baseConfig = conf

	return conf, nil
}
