package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bornholm/civicadmin/internal/core/listing"
	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/bornholm/civicadmin/internal/core/validate"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

type LearningManager struct {
	alerts
	api     port.LearningAPI
	alerter port.Alerter

	modules    *ResourceManager[model.Module, model.ModuleID]
	challenges *ResourceManager[model.Challenge, model.ChallengeID]

	mutex   sync.Mutex
	lessons map[model.ModuleID]*ResourceManager[model.Lesson, model.LessonID]
}

func (m *LearningManager) Modules() *ResourceManager[model.Module, model.ModuleID] {
	return m.modules
}

func (m *LearningManager) Challenges() *ResourceManager[model.Challenge, model.ChallengeID] {
	return m.challenges
}

func (m *LearningManager) GetModule(ctx context.Context, id model.ModuleID) (*model.Module, error) {
	module, err := m.api.GetModule(ctx, id)
	if err != nil {
		return nil, m.fail(ctx, "Load module", errors.WithStack(err))
	}

	return module, nil
}

func (m *LearningManager) SetModulePublished(ctx context.Context, id model.ModuleID, published bool) (*model.Module, error) {
	title, success := "Unpublish module", "Module unpublished successfully."
	if published {
		title, success = "Publish module", "Module published successfully."
	}

	var updated *model.Module

	err := m.modules.Perform(ctx, title, success, nil, func(ctx context.Context) error {
		var err error
		updated, err = m.api.SetModulePublished(ctx, id, published)
		return err
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return updated, nil
}

func (m *LearningManager) Lessons(moduleID model.ModuleID) *ResourceManager[model.Lesson, model.LessonID] {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if manager, exists := m.lessons[moduleID]; exists {
		return manager
	}

	manager := NewResourceManager(m.alerter, Resource[model.Lesson, model.LessonID]{
		Name: "lesson",
		List: func(ctx context.Context) ([]model.Lesson, error) {
			return m.api.ListLessons(ctx, moduleID)
		},
		Create:   m.api.CreateLesson,
		Update:   m.api.UpdateLesson,
		Delete:   m.api.DeleteLesson,
		SortKeys: listing.LessonSortKeys,
		Normalize: func(l *model.Lesson) {
			l.ModuleID = moduleID
		},
		Validate: validate.Lesson,
		SearchFields: []func(model.Lesson) string{
			func(l model.Lesson) string { return l.Title },
			func(l model.Lesson) string { return l.Content },
		},
		GlobField: func(l model.Lesson) string { return l.Title },
	})

	m.lessons[moduleID] = manager

	return manager
}

func (m *LearningManager) GetLesson(ctx context.Context, id model.LessonID) (*model.Lesson, error) {
	lesson, err := m.api.GetLesson(ctx, id)
	if err != nil {
		return nil, m.fail(ctx, "Load lesson", errors.WithStack(err))
	}

	return lesson, nil
}

// GetQuiz returns the quiz of a lesson, or nil when the lesson has none.
func (m *LearningManager) GetQuiz(ctx context.Context, lessonID model.LessonID) (*model.Quiz, error) {
	quiz, err := m.api.GetLessonQuiz(ctx, lessonID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, nil
		}
		return nil, m.fail(ctx, "Load quiz", errors.WithStack(err))
	}

	return quiz, nil
}

// SaveQuiz creates or replaces the quiz of a lesson with its questions and
// returns the refetched quiz.
func (m *LearningManager) SaveQuiz(ctx context.Context, quiz model.Quiz) (*model.Quiz, error) {
	const title = "Save quiz"

	validate.NormalizeQuiz(&quiz)

	if errs := validate.Quiz(&quiz); !errs.Empty() {
		return nil, m.fail(ctx, title, errs)
	}

	saved, err := m.api.SaveLessonQuiz(ctx, quiz)
	if err != nil {
		return nil, m.fail(ctx, title, errors.WithStack(err))
	}

	saved = m.refetchQuiz(ctx, quiz.LessonID, saved)

	m.succeed(ctx, title, "Quiz saved successfully.")

	return saved, nil
}

// DeleteQuiz deletes the quiz of a lesson and returns the quiz the lesson
// holds afterwards, nil once it is gone.
func (m *LearningManager) DeleteQuiz(ctx context.Context, quiz model.Quiz) (*model.Quiz, error) {
	const title = "Delete quiz"

	if err := m.api.DeleteQuiz(ctx, quiz.ID); err != nil {
		return nil, m.fail(ctx, title, errors.WithStack(err))
	}

	var remaining *model.Quiz

	refreshed, err := m.api.GetLessonQuiz(ctx, quiz.LessonID)
	switch {
	case err == nil:
		remaining = refreshed
	case !errors.Is(err, port.ErrNotFound):
		slog.WarnContext(ctx, "could not refresh quiz after mutation", slog.String("lessonID", string(quiz.LessonID)), slogx.Error(errors.WithStack(err)))
	}

	m.succeed(ctx, title, "Quiz deleted successfully.")

	return remaining, nil
}

func (m *LearningManager) AddQuestion(ctx context.Context, quiz model.Quiz, question model.Question) (*model.Quiz, error) {
	const title = "Add question"

	validate.NormalizeQuestion(&question)

	if errs := validate.Question(&question); !errs.Empty() {
		return nil, m.fail(ctx, title, errs)
	}

	if _, err := m.api.AddQuestion(ctx, quiz.ID, question); err != nil {
		return nil, m.fail(ctx, title, errors.WithStack(err))
	}

	refreshed := m.refetchQuiz(ctx, quiz.LessonID, &quiz)

	m.succeed(ctx, title, "Question added successfully.")

	return refreshed, nil
}

func (m *LearningManager) UpdateQuestion(ctx context.Context, quiz model.Quiz, question model.Question) (*model.Quiz, error) {
	const title = "Update question"

	validate.NormalizeQuestion(&question)

	if errs := validate.Question(&question); !errs.Empty() {
		return nil, m.fail(ctx, title, errs)
	}

	if _, err := m.api.UpdateQuestion(ctx, question); err != nil {
		return nil, m.fail(ctx, title, errors.WithStack(err))
	}

	refreshed := m.refetchQuiz(ctx, quiz.LessonID, &quiz)

	m.succeed(ctx, title, "Question updated successfully.")

	return refreshed, nil
}

func (m *LearningManager) RemoveQuestion(ctx context.Context, quiz model.Quiz, id model.QuestionID) (*model.Quiz, error) {
	const title = "Remove question"

	if err := m.api.DeleteQuestion(ctx, id); err != nil {
		return nil, m.fail(ctx, title, errors.WithStack(err))
	}

	refreshed := m.refetchQuiz(ctx, quiz.LessonID, &quiz)

	m.succeed(ctx, title, "Question removed successfully.")

	return refreshed, nil
}

func (m *LearningManager) refetchQuiz(ctx context.Context, lessonID model.LessonID, fallback *model.Quiz) *model.Quiz {
	quiz, err := m.api.GetLessonQuiz(ctx, lessonID)
	if err != nil {
		slog.WarnContext(ctx, "could not refresh quiz after mutation", slog.String("lessonID", string(lessonID)), slogx.Error(errors.WithStack(err)))
		return fallback
	}

	return quiz
}

// SetChallengeActive toggles a challenge through a full update, the
// backend has no dedicated route for it.
func (m *LearningManager) SetChallengeActive(ctx context.Context, id model.ChallengeID, active bool) (*model.Challenge, error) {
	challenges, err := m.challenges.Items(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	for _, c := range challenges {
		if c.ID != id {
			continue
		}

		c.IsActive = active

		title, success := "Deactivate challenge", "Challenge deactivated successfully."
		if active {
			title, success = "Activate challenge", "Challenge activated successfully."
		}

		var updated *model.Challenge

		err := m.challenges.Perform(ctx, title, success, &c, func(ctx context.Context) error {
			var err error
			updated, err = m.api.UpdateChallenge(ctx, c)
			return err
		})
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return updated, nil
	}

	return nil, m.fail(ctx, "Activate challenge", errors.Wrapf(port.ErrNotFound, "challenge '%s'", id))
}

func NewLearningManager(api port.LearningAPI, alerter port.Alerter) *LearningManager {
	return &LearningManager{
		alerts:  alerts{alerter},
		api:     api,
		alerter: alerter,
		modules: NewResourceManager(alerter, Resource[model.Module, model.ModuleID]{
			Name:      "module",
			List:      api.ListModules,
			Create:    api.CreateModule,
			Update:    api.UpdateModule,
			Delete:    api.DeleteModule,
			Normalize: validate.NormalizeModule,
			Validate:  validate.Module,
			SortKeys:  listing.ModuleSortKeys,
			SearchFields: []func(model.Module) string{
				func(m model.Module) string { return m.Title },
				func(m model.Module) string { return m.Description },
				func(m model.Module) string { return m.Category },
			},
			GlobField: func(m model.Module) string { return m.Title },
		}),
		challenges: NewResourceManager(alerter, Resource[model.Challenge, model.ChallengeID]{
			Name:     "challenge",
			List:     api.ListChallenges,
			Create:   api.CreateChallenge,
			Update:   api.UpdateChallenge,
			Delete:   api.DeleteChallenge,
			Validate: validate.Challenge,
			SortKeys: listing.ChallengeSortKeys,
			SearchFields: []func(model.Challenge) string{
				func(c model.Challenge) string { return c.Title },
				func(c model.Challenge) string { return c.Description },
			},
			GlobField: func(c model.Challenge) string { return c.Title },
		}),
		lessons: make(map[model.ModuleID]*ResourceManager[model.Lesson, model.LessonID]),
	}
}
