package port

import (
	"context"

	"github.com/bornholm/civicadmin/internal/core/model"
)

type ModuleStore interface {
	ListModules(ctx context.Context) ([]model.Module, error)
	GetModule(ctx context.Context, id model.ModuleID) (*model.Module, error)
	CreateModule(ctx context.Context, module model.Module) (*model.Module, error)
	UpdateModule(ctx context.Context, module model.Module) (*model.Module, error)
	DeleteModule(ctx context.Context, id model.ModuleID) error
	SetModulePublished(ctx context.Context, id model.ModuleID, published bool) (*model.Module, error)
}

type LessonStore interface {
	ListLessons(ctx context.Context, moduleID model.ModuleID) ([]model.Lesson, error)
	GetLesson(ctx context.Context, id model.LessonID) (*model.Lesson, error)
	CreateLesson(ctx context.Context, lesson model.Lesson) (*model.Lesson, error)
	UpdateLesson(ctx context.Context, lesson model.Lesson) (*model.Lesson, error)
	DeleteLesson(ctx context.Context, id model.LessonID) error
}

type QuizStore interface {
	// GetLessonQuiz returns the quiz of a lesson, or ErrNotFound if the lesson has none
	GetLessonQuiz(ctx context.Context, lessonID model.LessonID) (*model.Quiz, error)
	// SaveLessonQuiz creates or replaces the quiz of a lesson
	SaveLessonQuiz(ctx context.Context, quiz model.Quiz) (*model.Quiz, error)
	DeleteQuiz(ctx context.Context, id model.QuizID) error

	AddQuestion(ctx context.Context, quizID model.QuizID, question model.Question) (*model.Question, error)
	UpdateQuestion(ctx context.Context, question model.Question) (*model.Question, error)
	DeleteQuestion(ctx context.Context, id model.QuestionID) error
}

type ChallengeStore interface {
	ListChallenges(ctx context.Context) ([]model.Challenge, error)
	CreateChallenge(ctx context.Context, challenge model.Challenge) (*model.Challenge, error)
	UpdateChallenge(ctx context.Context, challenge model.Challenge) (*model.Challenge, error)
	DeleteChallenge(ctx context.Context, id model.ChallengeID) error
}

// LearningAPI groups every store exposed by the learning backend.
type LearningAPI interface {
	ModuleStore
	LessonStore
	QuizStore
	ChallengeStore
}
