package auth

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bornholm/civicadmin/internal/adapter/settings"
	"github.com/bornholm/civicadmin/internal/command/common"
	"github.com/bornholm/civicadmin/internal/config"
	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/setup"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	paramEmail         = "email"
	paramPassword      = "password"
	paramPasswordStdin = "password-stdin"
)

func LoginCommand() *cli.Command {
	flags := common.WithCommonFlags(
		&cli.StringFlag{
			Name:    paramEmail,
			Aliases: []string{"e"},
			Usage:   "Staff account email, asked when missing",
		},
		&cli.StringFlag{
			Name:    paramPassword,
			EnvVars: []string{config.Prefix + "PASSWORD"},
			Usage:   "Staff account password, prefer --password-stdin",
		},
		&cli.BoolFlag{
			Name:  paramPasswordStdin,
			Usage: "Read the password from the standard input",
		},
	)

	return &cli.Command{
		Name:   "login",
		Usage:  "Log in and store the API token of the profile",
		Flags:  flags,
		Before: common.Before(flags),
		Action: func(ctx *cli.Context) error {
			conf, err := common.GetConfig(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			profiles, err := setup.NewProfileStoreFromConfig(ctx.Context, conf)
			if err != nil {
				return errors.WithStack(err)
			}

			profile, err := profiles.Get(conf.Auth.Profile)
			if err != nil {
				return errors.WithStack(err)
			}

			prompter := common.NewStdPrompter()

			email := ctx.String(paramEmail)
			if email == "" {
				email, err = prompter.Ask("Email", profile.Email)
				if err != nil {
					return errors.WithStack(err)
				}
			}

			password, err := readPassword(ctx, prompter)
			if err != nil {
				return errors.WithStack(err)
			}

			manager, err := common.GetAuthManager(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			if _, err := manager.Login(ctx.Context, email, password); err != nil {
				return errors.WithStack(err)
			}

			err = profiles.Update(conf.Auth.Profile, func(p *settings.Profile) {
				p.Server = conf.API.BaseURL
				p.LearningServer = conf.Learning.BaseURL
				p.Email = email
			})
			if err != nil {
				return errors.Wrap(err, "could not save profile")
			}

			return nil
		},
	}
}

func readPassword(ctx *cli.Context, prompter *common.Prompter) (string, error) {
	if password := ctx.String(paramPassword); password != "" {
		return password, nil
	}

	if ctx.Bool(paramPasswordStdin) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.WithStack(err)
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}

	prompter.Println("The password will be visible while typing, use --password-stdin to avoid it.")

	password, err := prompter.Ask("Password", "")
	if err != nil {
		return "", errors.WithStack(err)
	}

	return password, nil
}

func LogoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Forget the API token of the profile",
		Action: func(ctx *cli.Context) error {
			manager, err := common.GetAuthManager(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			if err := manager.Logout(ctx.Context); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}

type whoami struct {
	Profile   string          `json:"profile" yaml:"profile"`
	Server    string          `json:"server" yaml:"server"`
	User      model.AdminUser `json:"user" yaml:"user"`
	Subject   string          `json:"subject,omitempty" yaml:"subject,omitempty"`
	ExpiresAt *time.Time      `json:"expiresAt,omitempty" yaml:"expiresAt,omitempty"`
}

func WhoamiCommand() *cli.Command {
	flags := common.WithCommonFlags()

	return &cli.Command{
		Name:   "whoami",
		Usage:  "Show the staff account behind the current token",
		Flags:  flags,
		Before: common.Before(flags),
		Action: func(ctx *cli.Context) error {
			conf, err := common.GetConfig(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			manager, err := common.GetAuthManager(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			user, err := manager.Whoami(ctx.Context)
			if err != nil {
				return errors.WithStack(err)
			}

			client, err := common.GetClient(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			result := whoami{
				Profile: conf.Auth.Profile,
				Server:  conf.API.BaseURL,
				User:    *user,
			}

			// Opaque tokens are not an error
			if info, err := InspectToken(client.Token()); err == nil {
				result.Subject = info.Subject
				result.ExpiresAt = info.ExpiresAt
			}

			return common.Print(ctx, result, func(w io.Writer) error {
				expires := ""
				if result.ExpiresAt != nil {
					expires = fmt.Sprintf("%s (%s)", result.ExpiresAt.Format(time.RFC3339), humanize.Time(*result.ExpiresAt))
				}

				return common.Fields(w,
					"Profile", result.Profile,
					"Server", result.Server,
					"Name", result.User.Name,
					"Email", result.User.Email,
					"Roles", strings.Join(result.User.Roles, ", "),
					"Subject", result.Subject,
					"Expires", expires,
				)
			})
		},
	}
}

func ProfileCommand() *cli.Command {
	flags := common.WithCommonFlags()

	return &cli.Command{
		Name:  "profile",
		Usage: "Manage connection profiles",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List the known profiles",
				Flags:  flags,
				Before: common.Before(flags),
				Action: func(ctx *cli.Context) error {
					conf, err := common.GetConfig(ctx)
					if err != nil {
						return errors.WithStack(err)
					}

					profiles, err := setup.NewProfileStoreFromConfig(ctx.Context, conf)
					if err != nil {
						return errors.WithStack(err)
					}

					names, err := profiles.Names()
					if err != nil {
						return errors.WithStack(err)
					}

					all := make(map[string]settings.Profile, len(names))
					for _, name := range names {
						profile, err := profiles.Get(name)
						if err != nil {
							return errors.WithStack(err)
						}
						// Never print tokens
						profile.Token = ""
						all[name] = profile
					}

					return common.Print(ctx, all, func(w io.Writer) error {
						table := common.NewTable(w, "", "name", "server", "learning server", "email")
						for _, name := range names {
							current := ""
							if name == conf.Auth.Profile {
								current = "*"
							}
							p := all[name]
							table.Row(current, name, p.Server, p.LearningServer, p.Email)
						}
						return table.Flush()
					})
				},
			},
		},
	}
}
