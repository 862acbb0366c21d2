package service

import (
	"context"
	"slices"
	"testing"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/pkg/errors"
)

func newTestLearningManager() (*LearningManager, *fakeBackend, *recordingAlerter) {
	backend := newFakeBackend()
	backend.modules = []model.Module{
		{ID: "m1", Title: "How elections work", Difficulty: model.DifficultyBeginner, Order: 1},
		{ID: "m2", Title: "Budgets and taxes", Difficulty: model.DifficultyAdvanced, Order: 2},
	}
	backend.lessons = []model.Lesson{
		{ID: "l1", ModuleID: "m1", Title: "Registering to vote", Order: 1},
	}
	backend.challenges = []model.Challenge{
		{ID: "ch1", Title: "Quiz streak", Type: model.ChallengeTypeDaily, Points: 10},
	}
	alerter := &recordingAlerter{}
	return NewLearningManager(backend, alerter), backend, alerter
}

func TestCreateModuleDefaultsDifficulty(t *testing.T) {
	manager, backend, _ := newTestLearningManager()

	created, err := manager.Modules().Create(context.Background(), model.Module{Title: "Local government"})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := model.DifficultyBeginner, created.Difficulty; e != g {
		t.Errorf("created.Difficulty: expected '%s', got '%s'", e, g)
	}

	if e, g := 1, backend.Calls("ListModules"); e != g {
		t.Errorf("ListModules calls: expected %d, got %d", e, g)
	}
}

func TestSaveQuiz(t *testing.T) {
	manager, backend, alerter := newTestLearningManager()
	ctx := context.Background()

	quiz, err := manager.SaveQuiz(ctx, model.Quiz{
		LessonID:     "l1",
		Title:        "Registration check",
		PassingScore: 70,
		Questions: []model.Question{
			{Text: "You can register online.", Type: model.QuestionTypeTrueFalse, CorrectAnswer: 0},
		},
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := model.TrueFalseOptions, quiz.Questions[0].Options; !slices.Equal(e, g) {
		t.Errorf("quiz.Questions[0].Options: expected %v, got %v", e, g)
	}

	if e, g := 1, quiz.Questions[0].Points; e != g {
		t.Errorf("quiz.Questions[0].Points: expected %d, got %d", e, g)
	}

	quiz, err = manager.AddQuestion(ctx, *quiz, model.Question{
		Text:    "Who organises elections?",
		Type:    model.QuestionTypeMultipleChoice,
		Options: []string{"The electoral commission", "The police"},
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, len(quiz.Questions); e != g {
		t.Errorf("len(quiz.Questions): expected %d, got %d", e, g)
	}

	_, err = manager.AddQuestion(ctx, *quiz, model.Question{
		Text:    "Only one option",
		Type:    model.QuestionTypeMultipleChoice,
		Options: []string{"Lonely"},
	})
	if !errors.Is(err, port.ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}

	if e, g := 1, backend.Calls("AddQuestion"); e != g {
		t.Errorf("AddQuestion calls: expected %d, got %d", e, g)
	}

	if alerter.Last().Success {
		t.Errorf("expected a failure alert")
	}
}

func TestDeleteQuiz(t *testing.T) {
	manager, backend, alerter := newTestLearningManager()
	ctx := context.Background()

	backend.quizzes = []model.Quiz{{ID: "q1", LessonID: "l1", Title: "Registration check"}}

	remaining, err := manager.DeleteQuiz(ctx, backend.quizzes[0])
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if remaining != nil {
		t.Errorf("expected no remaining quiz, got %+v", remaining)
	}

	if e, g := 1, backend.Calls("DeleteQuiz"); e != g {
		t.Errorf("DeleteQuiz calls: expected %d, got %d", e, g)
	}

	if e, g := 1, backend.Calls("GetLessonQuiz"); e != g {
		t.Errorf("GetLessonQuiz calls: expected %d, got %d", e, g)
	}

	if !alerter.Last().Success {
		t.Errorf("expected a success alert")
	}

	backend.failures["GetLessonQuiz"] = errors.New("connection reset")
	backend.quizzes = []model.Quiz{{ID: "q2", LessonID: "l1", Title: "Registration check"}}

	if _, err := manager.DeleteQuiz(ctx, backend.quizzes[0]); err != nil {
		t.Fatalf("a failed refresh should not fail the deletion: %+v", errors.WithStack(err))
	}

	if !alerter.Last().Success {
		t.Errorf("expected a success alert")
	}
}

func TestGetQuizWithoutQuiz(t *testing.T) {
	manager, _, _ := newTestLearningManager()

	quiz, err := manager.GetQuiz(context.Background(), "l1")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if quiz != nil {
		t.Errorf("expected no quiz, got %+v", quiz)
	}
}

func TestSetChallengeActive(t *testing.T) {
	manager, backend, _ := newTestLearningManager()
	ctx := context.Background()

	updated, err := manager.SetChallengeActive(ctx, "ch1", true)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !updated.IsActive {
		t.Errorf("updated.IsActive: expected true")
	}

	if !backend.challenges[0].IsActive {
		t.Errorf("backend challenge should be active")
	}
}

func TestLessonsAreScopedToModule(t *testing.T) {
	manager, backend, _ := newTestLearningManager()
	ctx := context.Background()

	lesson, err := manager.Lessons("m2").Create(ctx, model.Lesson{Title: "Reading a budget", Content: "# Budgets"})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := model.ModuleID("m2"), lesson.ModuleID; e != g {
		t.Errorf("lesson.ModuleID: expected '%s', got '%s'", e, g)
	}

	lessons, err := manager.Lessons("m1").Items(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(lessons); e != g {
		t.Errorf("len(lessons): expected %d, got %d", e, g)
	}

	if e, g := 2, len(backend.lessons); e != g {
		t.Errorf("len(backend.lessons): expected %d, got %d", e, g)
	}
}

func TestCollector(t *testing.T) {
	backend := newFakeBackend()
	backend.politicians = []model.Politician{{ID: "p1", Name: "Amina Okafor"}, {ID: "p2", Name: "Daniel Mensah"}}
	backend.commitments = []model.Commitment{{ID: "c2", PoliticianID: "p2"}, {ID: "c1", PoliticianID: "p1"}}
	backend.votes = []model.VotingRecord{{ID: "v1", PoliticianID: "p1", Vote: model.VoteYes}}
	backend.modules = []model.Module{{ID: "m1"}}
	backend.lessons = []model.Lesson{{ID: "l1", ModuleID: "m1"}, {ID: "l2", ModuleID: "m1"}}
	backend.quizzes = []model.Quiz{{ID: "q1", LessonID: "l2"}}

	collector := NewCollector(backend, backend)

	snapshot, err := collector.Collect(context.Background(), WithCollectConcurrency(2))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, len(snapshot.Commitments); e != g {
		t.Fatalf("len(snapshot.Commitments): expected %d, got %d", e, g)
	}

	if e, g := model.CommitmentID("c1"), snapshot.Commitments[0].ID; e != g {
		t.Errorf("snapshot.Commitments[0].ID: expected '%s', got '%s'", e, g)
	}

	if e, g := 1, len(snapshot.VotingRecords); e != g {
		t.Errorf("len(snapshot.VotingRecords): expected %d, got %d", e, g)
	}

	if e, g := 2, len(snapshot.Lessons); e != g {
		t.Errorf("len(snapshot.Lessons): expected %d, got %d", e, g)
	}

	if e, g := 1, len(snapshot.Quizzes); e != g {
		t.Errorf("len(snapshot.Quizzes): expected %d, got %d", e, g)
	}

	snapshot, err = collector.Collect(context.Background(), WithCollectPoliticians("p2"), WithCollectLearning(false))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(snapshot.Politicians); e != g {
		t.Errorf("len(snapshot.Politicians): expected %d, got %d", e, g)
	}

	if e, g := 0, len(snapshot.Modules); e != g {
		t.Errorf("len(snapshot.Modules): expected %d, got %d", e, g)
	}
}

// nestedRouteBackend drops parent identifiers from nested listings,
// as some backend routes do.
type nestedRouteBackend struct {
	*fakeBackend
}

func (b *nestedRouteBackend) ListCommitments(ctx context.Context, politicianID model.PoliticianID) ([]model.Commitment, error) {
	commitments, err := b.fakeBackend.ListCommitments(ctx, politicianID)
	for i := range commitments {
		commitments[i].PoliticianID = ""
	}
	return commitments, err
}

func (b *nestedRouteBackend) ListLessons(ctx context.Context, moduleID model.ModuleID) ([]model.Lesson, error) {
	lessons, err := b.fakeBackend.ListLessons(ctx, moduleID)
	for i := range lessons {
		lessons[i].ModuleID = ""
	}
	return lessons, err
}

func TestCollectorSetsParentIdentifiers(t *testing.T) {
	backend := &nestedRouteBackend{newFakeBackend()}
	backend.politicians = []model.Politician{{ID: "p1", Name: "Amina Okafor"}}
	backend.commitments = []model.Commitment{{ID: "c1", PoliticianID: "p1"}, {ID: "c2", PoliticianID: "p1"}}
	backend.modules = []model.Module{{ID: "m1"}}
	backend.lessons = []model.Lesson{{ID: "l1", ModuleID: "m1"}}

	collector := NewCollector(backend, backend)

	snapshot, err := collector.Collect(context.Background())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, len(snapshot.Commitments); e != g {
		t.Fatalf("len(snapshot.Commitments): expected %d, got %d", e, g)
	}

	for _, c := range snapshot.Commitments {
		if e, g := model.PoliticianID("p1"), c.PoliticianID; e != g {
			t.Errorf("commitment '%s' PoliticianID: expected '%s', got '%s'", c.ID, e, g)
		}
	}

	if e, g := 1, len(snapshot.Lessons); e != g {
		t.Fatalf("len(snapshot.Lessons): expected %d, got %d", e, g)
	}

	if e, g := model.ModuleID("m1"), snapshot.Lessons[0].ModuleID; e != g {
		t.Errorf("snapshot.Lessons[0].ModuleID: expected '%s', got '%s'", e, g)
	}
}

func TestImportLesson(t *testing.T) {
	manager, backend, alerter := newTestLearningManager()
	ctx := context.Background()

	lesson, err := manager.ImportLesson(ctx, "m1", model.Lesson{Title: "Ballots", Content: "# Ballots"}, &model.Quiz{
		Title: "Ballots quiz",
		Questions: []model.Question{
			{Text: "Is voting secret?", Type: model.QuestionTypeTrueFalse},
		},
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if lesson.Quiz == nil {
		t.Fatalf("lesson.Quiz should not be nil")
	}

	if e, g := lesson.ID, lesson.Quiz.LessonID; e != g {
		t.Errorf("lesson.Quiz.LessonID: expected '%s', got '%s'", e, g)
	}

	if e, g := "Lesson 'Ballots' imported with a quiz of 1 questions.", alerter.Last().Message; e != g {
		t.Errorf("alerter.Last().Message: expected '%s', got '%s'", e, g)
	}

	if e, g := 0, backend.Calls("DeleteLesson"); e != g {
		t.Errorf("DeleteLesson calls: expected %d, got %d", e, g)
	}
}

func TestImportLessonRollsBackOnQuizFailure(t *testing.T) {
	manager, backend, alerter := newTestLearningManager()
	ctx := context.Background()

	lessonsBefore := len(backend.lessons)

	backend.failures["SaveLessonQuiz"] = errors.WithStack(port.ErrInvalid)

	_, err := manager.ImportLesson(ctx, "m1", model.Lesson{Title: "Ballots"}, &model.Quiz{
		Title: "Ballots quiz",
	})
	if err == nil {
		t.Fatal("expected an error, got nil")
	}

	if !IsAlerted(err) {
		t.Errorf("expected an alerted error, got %+v", err)
	}

	if e, g := 1, backend.Calls("DeleteLesson"); e != g {
		t.Errorf("DeleteLesson calls: expected %d, got %d", e, g)
	}

	if e, g := lessonsBefore, len(backend.lessons); e != g {
		t.Errorf("len(backend.lessons): expected %d, got %d", e, g)
	}

	if alerter.Last().Success {
		t.Errorf("expected a failure alert")
	}
}

func TestImportLessonInvalidQuiz(t *testing.T) {
	manager, backend, alerter := newTestLearningManager()
	ctx := context.Background()

	_, err := manager.ImportLesson(ctx, "m1", model.Lesson{Title: "Ballots"}, &model.Quiz{})
	if !errors.Is(err, port.ErrInvalid) {
		t.Fatalf("err: expected port.ErrInvalid, got '%v'", err)
	}

	if e, g := 0, backend.Calls("CreateLesson"); e != g {
		t.Errorf("CreateLesson calls: expected %d, got %d", e, g)
	}

	if e, g := "quiz.title: is required", alerter.Last().Message; e != g {
		t.Errorf("alerter.Last().Message: expected '%s', got '%s'", e, g)
	}
}
