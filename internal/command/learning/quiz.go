package learning

import (
	"fmt"
	"io"

	"github.com/bornholm/civicadmin/internal/command/common"
	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/bornholm/civicadmin/internal/core/service"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const lessonArg = "lesson-id"

func printQuiz(ctx *cli.Context, quiz *model.Quiz) error {
	return common.Print(ctx, quiz, func(w io.Writer) error {
		err := common.Fields(w,
			"ID", string(quiz.ID),
			"Lesson", string(quiz.LessonID),
			"Title", quiz.Title,
			"Passing score", fmt.Sprintf("%d%%", quiz.PassingScore),
			"Total points", fmt.Sprint(quiz.TotalPoints()),
		)
		if err != nil {
			return errors.WithStack(err)
		}

		for idx, q := range quiz.Questions {
			fmt.Fprintf(w, "\n%d. %s [%s, %d pt(s), id %s]\n", idx+1, q.Text, q.Type, q.Points, q.ID)
			for optIdx, option := range q.Options {
				marker := " "
				if optIdx == q.CorrectAnswer {
					marker = "*"
				}
				fmt.Fprintf(w, "   %s %s\n", marker, option)
			}
			if q.Explanation != "" {
				fmt.Fprintf(w, "   %s\n", common.Truncate(q.Explanation, 120))
			}
		}

		return nil
	})
}

// loadQuiz returns the learning manager and the existing quiz of the lesson
// given as first argument.
func loadQuiz(ctx *cli.Context) (*service.LearningManager, *model.Quiz, error) {
	lessonID, err := common.ID[model.LessonID](ctx, 0, lessonArg)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	manager, err := common.GetLearningManager(ctx)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	quiz, err := manager.GetQuiz(ctx.Context, lessonID)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	if quiz == nil {
		return manager, nil, errors.Wrapf(port.ErrNotFound, "lesson '%s' has no quiz", lessonID)
	}

	return manager, quiz, nil
}

func quizShowCommand() *cli.Command {
	flags := common.WithCommonFlags()

	return &cli.Command{
		Name:      "show",
		Usage:     "Show the quiz of a lesson",
		ArgsUsage: "<lesson-id>",
		Flags:     flags,
		Before:    common.Before(flags),
		Action: func(ctx *cli.Context) error {
			_, quiz, err := loadQuiz(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			return printQuiz(ctx, quiz)
		},
	}
}

func quizSetCommand() *cli.Command {
	flags := common.WithCommonFlags(common.WithInputFlags()...)

	return &cli.Command{
		Name:      "set",
		Usage:     "Create or replace the quiz of a lesson with its questions",
		ArgsUsage: "<lesson-id>",
		Flags:     flags,
		Before:    common.Before(flags),
		Action: func(ctx *cli.Context) error {
			if !common.HasInput(ctx) {
				return errors.Errorf("nothing to save, use --%s or --%s", common.ParamFrom, common.ParamSet)
			}

			lessonID, err := common.ID[model.LessonID](ctx, 0, lessonArg)
			if err != nil {
				return errors.WithStack(err)
			}

			manager, err := common.GetLearningManager(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			quiz, err := manager.GetQuiz(ctx.Context, lessonID)
			if err != nil {
				return errors.WithStack(err)
			}

			if quiz == nil {
				quiz = &model.Quiz{}
			} else {
				// Questions are replaced as a whole
				quiz.Questions = nil
			}

			if err := common.DecodeInput(ctx, quiz); err != nil {
				return errors.WithStack(err)
			}

			quiz.LessonID = lessonID

			saved, err := manager.SaveQuiz(ctx.Context, *quiz)
			if err != nil {
				return errors.WithStack(err)
			}

			return printQuiz(ctx, saved)
		},
	}
}

func quizDeleteCommand() *cli.Command {
	flags := common.WithCommonFlags(
		&cli.BoolFlag{
			Name:    common.ParamYes,
			Aliases: []string{"y"},
			Usage:   "Do not ask for confirmation",
		},
	)

	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete the quiz of a lesson",
		ArgsUsage: "<lesson-id>",
		Flags:     flags,
		Before:    common.Before(flags),
		Action: func(ctx *cli.Context) error {
			manager, quiz, err := loadQuiz(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			confirmed, err := common.ConfirmDeletion(ctx, fmt.Sprintf("quiz '%s'", quiz.Title))
			if err != nil {
				return errors.WithStack(err)
			}

			if !confirmed {
				return nil
			}

			if _, err := manager.DeleteQuiz(ctx.Context, *quiz); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}

func QuizCommand() *cli.Command {
	return &cli.Command{
		Name:    "quiz",
		Aliases: []string{"quizzes"},
		Usage:   "Manage the quiz of a lesson",
		Subcommands: []*cli.Command{
			quizShowCommand(),
			quizSetCommand(),
			quizDeleteCommand(),
		},
	}
}

func findQuestion(quiz *model.Quiz, id model.QuestionID) (*model.Question, error) {
	for _, q := range quiz.Questions {
		if q.ID == id {
			return &q, nil
		}
	}

	return nil, errors.Wrapf(port.ErrNotFound, "question '%s'", id)
}

func questionAddCommand() *cli.Command {
	flags := common.WithCommonFlags(common.WithInputFlags()...)

	return &cli.Command{
		Name:      "add",
		Usage:     "Add a question to the quiz of a lesson",
		ArgsUsage: "<lesson-id>",
		Flags:     flags,
		Before:    common.Before(flags),
		Action: func(ctx *cli.Context) error {
			if !common.HasInput(ctx) {
				return errors.Errorf("nothing to create, use --%s or --%s", common.ParamFrom, common.ParamSet)
			}

			manager, quiz, err := loadQuiz(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			question := model.Question{
				Type:   model.QuestionTypeMultipleChoice,
				Points: 1,
			}

			if err := common.DecodeInput(ctx, &question); err != nil {
				return errors.WithStack(err)
			}

			question.QuizID = quiz.ID

			updated, err := manager.AddQuestion(ctx.Context, *quiz, question)
			if err != nil {
				return errors.WithStack(err)
			}

			return printQuiz(ctx, updated)
		},
	}
}

func questionEditCommand() *cli.Command {
	flags := common.WithCommonFlags(common.WithInputFlags()...)

	return &cli.Command{
		Name:      "edit",
		Usage:     "Update a question of the quiz of a lesson",
		ArgsUsage: "<lesson-id> <question-id>",
		Flags:     flags,
		Before:    common.Before(flags),
		Action: func(ctx *cli.Context) error {
			if !common.HasInput(ctx) {
				return errors.Errorf("nothing to change, use --%s or --%s", common.ParamFrom, common.ParamSet)
			}

			questionID, err := common.ID[model.QuestionID](ctx, 1, "question-id")
			if err != nil {
				return errors.WithStack(err)
			}

			manager, quiz, err := loadQuiz(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			question, err := findQuestion(quiz, questionID)
			if err != nil {
				return errors.WithStack(err)
			}

			if err := common.DecodeInput(ctx, question); err != nil {
				return errors.WithStack(err)
			}

			question.ID = questionID
			question.QuizID = quiz.ID

			updated, err := manager.UpdateQuestion(ctx.Context, *quiz, *question)
			if err != nil {
				return errors.WithStack(err)
			}

			return printQuiz(ctx, updated)
		},
	}
}

func questionDeleteCommand() *cli.Command {
	flags := common.WithCommonFlags(
		&cli.BoolFlag{
			Name:    common.ParamYes,
			Aliases: []string{"y"},
			Usage:   "Do not ask for confirmation",
		},
	)

	return &cli.Command{
		Name:      "delete",
		Usage:     "Remove a question from the quiz of a lesson",
		ArgsUsage: "<lesson-id> <question-id>",
		Flags:     flags,
		Before:    common.Before(flags),
		Action: func(ctx *cli.Context) error {
			questionID, err := common.ID[model.QuestionID](ctx, 1, "question-id")
			if err != nil {
				return errors.WithStack(err)
			}

			manager, quiz, err := loadQuiz(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			question, err := findQuestion(quiz, questionID)
			if err != nil {
				return errors.WithStack(err)
			}

			confirmed, err := common.ConfirmDeletion(ctx, fmt.Sprintf("question '%s'", common.Truncate(question.Text, 40)))
			if err != nil {
				return errors.WithStack(err)
			}

			if !confirmed {
				return nil
			}

			updated, err := manager.RemoveQuestion(ctx.Context, *quiz, questionID)
			if err != nil {
				return errors.WithStack(err)
			}

			return printQuiz(ctx, updated)
		},
	}
}

func QuestionCommand() *cli.Command {
	return &cli.Command{
		Name:    "question",
		Aliases: []string{"questions"},
		Usage:   "Manage the questions of a lesson quiz",
		Subcommands: []*cli.Command{
			questionAddCommand(),
			questionEditCommand(),
			questionDeleteCommand(),
		},
	}
}
