package learning

import (
	"fmt"
	"io"
	"os"

	"github.com/bornholm/civicadmin/internal/command/common"
	"github.com/bornholm/civicadmin/internal/core/listing"
	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/service"
	"github.com/bornholm/civicadmin/internal/markdown"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const (
	paramQuiz = "quiz"
	paramTo   = "to"
)

const moduleArg = "module-id"

var lessons = common.Resource[model.Lesson, model.LessonID]{
	Name:   "lesson",
	Parent: moduleArg,
	Manager: func(ctx *cli.Context) (*service.ResourceManager[model.Lesson, model.LessonID], error) {
		moduleID, err := common.ID[model.ModuleID](ctx, 0, moduleArg)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		manager, err := common.GetLearningManager(ctx)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return manager.Lessons(moduleID), nil
	},
	SortKeys: listing.LessonSortKeys.Names(),
	Columns:  []string{"id", "order", "title", "minutes", "language"},
	Row: func(l model.Lesson) []any {
		return []any{l.ID, l.Order, common.Truncate(l.Title, 50), l.DurationMinutes, l.Language}
	},
	Details: lessonDetails,
	ID:      func(l model.Lesson) model.LessonID { return l.ID },
}

func lessonDetails(l model.Lesson) []string {
	quiz := ""
	if l.Quiz != nil {
		quiz = fmt.Sprintf("%s (%d questions)", l.Quiz.Title, len(l.Quiz.Questions))
	}

	return []string{
		"ID", string(l.ID),
		"Module", string(l.ModuleID),
		"Title", l.Title,
		"Order", fmt.Sprint(l.Order),
		"Duration", fmt.Sprintf("%d min", l.DurationMinutes),
		"Language", l.Language,
		"Video", l.VideoURL,
		"Quiz", quiz,
		"Content", common.Truncate(l.Content, 200),
	}
}

// readLesson parses a markdown lesson file.
func readLesson(ctx *cli.Context, location string) (*markdown.Lesson, error) {
	data, err := common.ReadLocation(ctx.Context, location)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	lesson, err := markdown.ParseLesson(data)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse lesson '%s'", location)
	}

	return lesson, nil
}

// readQuiz decodes a YAML or JSON quiz file.
func readQuiz(ctx *cli.Context, location string) (*model.Quiz, error) {
	data, err := common.ReadLocation(ctx.Context, location)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	quiz := &model.Quiz{}
	if err := yaml.Unmarshal(data, quiz); err != nil {
		return nil, errors.Wrapf(err, "could not parse quiz '%s'", location)
	}

	return quiz, nil
}

func lessonImportCommand() *cli.Command {
	flags := common.WithCommonFlags(
		&cli.StringFlag{
			Name:  paramQuiz,
			Usage: "YAML or JSON quiz file to attach to the lesson",
		},
	)

	return &cli.Command{
		Name:      "import",
		Usage:     "Create a lesson from a markdown file with a YAML front matter",
		ArgsUsage: "<module-id> <file>",
		Flags:     flags,
		Before:    common.Before(flags),
		Action: func(ctx *cli.Context) error {
			moduleID, err := common.ID[model.ModuleID](ctx, 0, moduleArg)
			if err != nil {
				return errors.WithStack(err)
			}

			location, err := common.Arg(ctx, 1, "file")
			if err != nil {
				return errors.WithStack(err)
			}

			parsed, err := readLesson(ctx, location)
			if err != nil {
				return errors.WithStack(err)
			}

			var quiz *model.Quiz
			if quizLocation := ctx.String(paramQuiz); quizLocation != "" {
				quiz, err = readQuiz(ctx, quizLocation)
				if err != nil {
					return errors.WithStack(err)
				}
			}

			manager, err := common.GetLearningManager(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			lesson, err := manager.ImportLesson(ctx.Context, moduleID, model.Lesson{
				Title:           parsed.Title,
				Content:         parsed.Content,
				Language:        parsed.Language,
				Order:           parsed.Order,
				DurationMinutes: parsed.DurationMinutes,
				VideoURL:        parsed.VideoURL,
			}, quiz)
			if err != nil {
				return errors.WithStack(err)
			}

			return common.Print(ctx, lesson, func(w io.Writer) error {
				return common.Fields(w, lessonDetails(*lesson)...)
			})
		},
	}
}

func lessonPreviewCommand() *cli.Command {
	flags := common.WithCommonFlags(
		&cli.StringFlag{
			Name:  paramTo,
			Usage: "Write the HTML page to the given file instead of the standard output",
		},
	)

	return &cli.Command{
		Name:      "preview",
		Usage:     "Render a markdown lesson file as a standalone HTML page",
		ArgsUsage: "<file>",
		Flags:     flags,
		Before:    common.Before(flags),
		Action: func(ctx *cli.Context) error {
			location, err := common.Arg(ctx, 0, "file")
			if err != nil {
				return errors.WithStack(err)
			}

			lesson, err := readLesson(ctx, location)
			if err != nil {
				return errors.WithStack(err)
			}

			page, err := markdown.PreviewLesson(lesson)
			if err != nil {
				return errors.WithStack(err)
			}

			to := ctx.String(paramTo)
			if to == "" {
				if _, err := os.Stdout.Write(page); err != nil {
					return errors.WithStack(err)
				}
				return nil
			}

			if err := os.WriteFile(to, page, 0o644); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}

func LessonCommand() *cli.Command {
	return &cli.Command{
		Name:    "lesson",
		Aliases: []string{"lessons"},
		Usage:   "Manage the lessons of a learning module",
		Subcommands: append(lessons.Commands(),
			lessonImportCommand(),
			lessonPreviewCommand(),
		),
	}
}
