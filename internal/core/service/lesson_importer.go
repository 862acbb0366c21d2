package service

import (
	"context"
	"fmt"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/validate"
	"github.com/bornholm/civicadmin/internal/workflow"
	"github.com/pkg/errors"
)

// ImportLesson creates a lesson and, when given, its quiz. If the quiz
// cannot be saved the lesson is deleted again.
func (m *LearningManager) ImportLesson(ctx context.Context, moduleID model.ModuleID, lesson model.Lesson, quiz *model.Quiz) (*model.Lesson, error) {
	const title = "Import lesson"

	lesson.ModuleID = moduleID

	errs := validate.Lesson(&lesson)

	if quiz != nil {
		validate.NormalizeQuiz(quiz)

		quizErrs := validate.Quiz(quiz)
		for _, field := range quizErrs.Fields() {
			if field == "lessonId" {
				continue
			}
			errs.Add("quiz."+field, quizErrs[field])
		}
	}

	if !errs.Empty() {
		return nil, m.fail(ctx, title, errs)
	}

	var created *model.Lesson

	steps := []workflow.Step{
		{
			Name: "create lesson",
			Do: func(ctx context.Context) error {
				var err error
				created, err = m.api.CreateLesson(ctx, lesson)
				return errors.WithStack(err)
			},
			Undo: func(ctx context.Context) error {
				return errors.WithStack(m.api.DeleteLesson(ctx, created.ID))
			},
		},
	}

	if quiz != nil {
		steps = append(steps, workflow.Step{
			Name: "save quiz",
			Do: func(ctx context.Context) error {
				q := *quiz
				q.LessonID = created.ID

				saved, err := m.api.SaveLessonQuiz(ctx, q)
				if err != nil {
					return errors.WithStack(err)
				}

				created.Quiz = saved

				return nil
			},
		})
	}

	if err := workflow.Run(ctx, steps...); err != nil {
		return nil, m.fail(ctx, title, errors.WithStack(err))
	}

	m.Lessons(moduleID).refreshQuietly(ctx)

	message := fmt.Sprintf("Lesson '%s' imported.", created.Title)
	if created.Quiz != nil {
		message = fmt.Sprintf("Lesson '%s' imported with a quiz of %d questions.", created.Title, len(created.Quiz.Questions))
	}

	m.succeed(ctx, title, message)

	return created, nil
}
