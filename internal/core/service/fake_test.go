package service

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/pkg/errors"
)

type alert struct {
	Success bool
	Title   string
	Message string
	Err     error
}

type recordingAlerter struct {
	mutex  sync.Mutex
	alerts []alert
}

func (a *recordingAlerter) Success(ctx context.Context, title string, message string) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.alerts = append(a.alerts, alert{Success: true, Title: title, Message: message})
}

func (a *recordingAlerter) Failure(ctx context.Context, title string, err error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.alerts = append(a.alerts, alert{Success: false, Title: title, Message: UserMessage(err), Err: err})
}

func (a *recordingAlerter) Last() alert {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	if len(a.alerts) == 0 {
		return alert{}
	}
	return a.alerts[len(a.alerts)-1]
}

var _ port.Alerter = &recordingAlerter{}

// fakeBackend is an in-memory admin and learning backend.
type fakeBackend struct {
	mutex sync.Mutex

	calls map[string]int

	// failures maps a method name to the error it returns
	failures map[string]error

	nextID      int
	politicians []model.Politician
	commitments []model.Commitment
	timeline    []model.TimelineEvent
	votes       []model.VotingRecord
	documents   []model.Document
	uploads     []port.DocumentUpload

	modules    []model.Module
	lessons    []model.Lesson
	quizzes    []model.Quiz
	challenges []model.Challenge
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		calls:    map[string]int{},
		failures: map[string]error{},
	}
}

func (b *fakeBackend) call(name string) error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.calls[name]++
	return b.failures[name]
}

func (b *fakeBackend) Calls(name string) int {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.calls[name]
}

func (b *fakeBackend) id(prefix string) string {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.nextID++
	return fmt.Sprintf("%s%d", prefix, b.nextID)
}

func (b *fakeBackend) ListPoliticians(ctx context.Context) ([]model.Politician, error) {
	if err := b.call("ListPoliticians"); err != nil {
		return nil, err
	}
	return append([]model.Politician{}, b.politicians...), nil
}

func (b *fakeBackend) GetPolitician(ctx context.Context, id model.PoliticianID) (*model.Politician, error) {
	if err := b.call("GetPolitician"); err != nil {
		return nil, err
	}
	for _, p := range b.politicians {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, errors.WithStack(port.ErrNotFound)
}

func (b *fakeBackend) CreatePolitician(ctx context.Context, politician model.Politician) (*model.Politician, error) {
	if err := b.call("CreatePolitician"); err != nil {
		return nil, err
	}
	politician.ID = model.PoliticianID(b.id("p"))
	b.politicians = append(b.politicians, politician)
	return &politician, nil
}

func (b *fakeBackend) UpdatePolitician(ctx context.Context, politician model.Politician) (*model.Politician, error) {
	if err := b.call("UpdatePolitician"); err != nil {
		return nil, err
	}
	for i, p := range b.politicians {
		if p.ID == politician.ID {
			b.politicians[i] = politician
			return &politician, nil
		}
	}
	return nil, errors.WithStack(port.ErrNotFound)
}

func (b *fakeBackend) DeletePolitician(ctx context.Context, id model.PoliticianID) error {
	if err := b.call("DeletePolitician"); err != nil {
		return err
	}
	for i, p := range b.politicians {
		if p.ID == id {
			b.politicians = append(b.politicians[:i], b.politicians[i+1:]...)
			return nil
		}
	}
	return errors.WithStack(port.ErrNotFound)
}

func (b *fakeBackend) setPolitician(id model.PoliticianID, fn func(p *model.Politician)) (*model.Politician, error) {
	for i := range b.politicians {
		if b.politicians[i].ID == id {
			fn(&b.politicians[i])
			p := b.politicians[i]
			return &p, nil
		}
	}
	return nil, errors.WithStack(port.ErrNotFound)
}

func (b *fakeBackend) SetPoliticianPublished(ctx context.Context, id model.PoliticianID, published bool) (*model.Politician, error) {
	if err := b.call("SetPoliticianPublished"); err != nil {
		return nil, err
	}
	return b.setPolitician(id, func(p *model.Politician) { p.IsPublished = published })
}

func (b *fakeBackend) SetPoliticianFeatured(ctx context.Context, id model.PoliticianID, featured bool) (*model.Politician, error) {
	if err := b.call("SetPoliticianFeatured"); err != nil {
		return nil, err
	}
	return b.setPolitician(id, func(p *model.Politician) { p.IsFeatured = featured })
}

func (b *fakeBackend) ListCommitments(ctx context.Context, politicianID model.PoliticianID) ([]model.Commitment, error) {
	if err := b.call("ListCommitments"); err != nil {
		return nil, err
	}
	result := []model.Commitment{}
	for _, c := range b.commitments {
		if c.PoliticianID == politicianID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (b *fakeBackend) CreateCommitment(ctx context.Context, commitment model.Commitment) (*model.Commitment, error) {
	if err := b.call("CreateCommitment"); err != nil {
		return nil, err
	}
	commitment.ID = model.CommitmentID(b.id("c"))
	b.commitments = append(b.commitments, commitment)
	return &commitment, nil
}

func (b *fakeBackend) UpdateCommitment(ctx context.Context, commitment model.Commitment) (*model.Commitment, error) {
	if err := b.call("UpdateCommitment"); err != nil {
		return nil, err
	}
	return &commitment, nil
}

func (b *fakeBackend) DeleteCommitment(ctx context.Context, id model.CommitmentID) error {
	return b.call("DeleteCommitment")
}

func (b *fakeBackend) ListTimelineEvents(ctx context.Context, politicianID model.PoliticianID) ([]model.TimelineEvent, error) {
	if err := b.call("ListTimelineEvents"); err != nil {
		return nil, err
	}
	result := []model.TimelineEvent{}
	for _, e := range b.timeline {
		if e.PoliticianID == politicianID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (b *fakeBackend) CreateTimelineEvent(ctx context.Context, event model.TimelineEvent) (*model.TimelineEvent, error) {
	if err := b.call("CreateTimelineEvent"); err != nil {
		return nil, err
	}
	event.ID = model.TimelineEventID(b.id("e"))
	b.timeline = append(b.timeline, event)
	return &event, nil
}

func (b *fakeBackend) UpdateTimelineEvent(ctx context.Context, event model.TimelineEvent) (*model.TimelineEvent, error) {
	if err := b.call("UpdateTimelineEvent"); err != nil {
		return nil, err
	}
	return &event, nil
}

func (b *fakeBackend) DeleteTimelineEvent(ctx context.Context, id model.TimelineEventID) error {
	return b.call("DeleteTimelineEvent")
}

func (b *fakeBackend) ListVotingRecords(ctx context.Context, politicianID model.PoliticianID) ([]model.VotingRecord, error) {
	if err := b.call("ListVotingRecords"); err != nil {
		return nil, err
	}
	result := []model.VotingRecord{}
	for _, v := range b.votes {
		if v.PoliticianID == politicianID {
			result = append(result, v)
		}
	}
	return result, nil
}

func (b *fakeBackend) CreateVotingRecord(ctx context.Context, record model.VotingRecord) (*model.VotingRecord, error) {
	if err := b.call("CreateVotingRecord"); err != nil {
		return nil, err
	}
	record.ID = model.VotingRecordID(b.id("v"))
	b.votes = append(b.votes, record)
	return &record, nil
}

func (b *fakeBackend) UpdateVotingRecord(ctx context.Context, record model.VotingRecord) (*model.VotingRecord, error) {
	if err := b.call("UpdateVotingRecord"); err != nil {
		return nil, err
	}
	return &record, nil
}

func (b *fakeBackend) DeleteVotingRecord(ctx context.Context, id model.VotingRecordID) error {
	return b.call("DeleteVotingRecord")
}

func (b *fakeBackend) ListDocuments(ctx context.Context, politicianID model.PoliticianID) ([]model.Document, error) {
	if err := b.call("ListDocuments"); err != nil {
		return nil, err
	}
	result := []model.Document{}
	for _, d := range b.documents {
		if d.PoliticianID == politicianID {
			result = append(result, d)
		}
	}
	return result, nil
}

func (b *fakeBackend) UploadDocument(ctx context.Context, politicianID model.PoliticianID, upload port.DocumentUpload) (*model.Document, error) {
	if err := b.call("UploadDocument"); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(upload.Content)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	b.uploads = append(b.uploads, upload)

	document := model.Document{
		ID:           model.DocumentID(b.id("d")),
		PoliticianID: politicianID,
		Title:        upload.Title,
		Type:         upload.Type,
		FileName:     upload.FileName,
		MimeType:     upload.MimeType,
		Size:         int64(len(data)),
	}
	b.documents = append(b.documents, document)

	return &document, nil
}

func (b *fakeBackend) DeleteDocument(ctx context.Context, id model.DocumentID) error {
	return b.call("DeleteDocument")
}

func (b *fakeBackend) ListModules(ctx context.Context) ([]model.Module, error) {
	if err := b.call("ListModules"); err != nil {
		return nil, err
	}
	return append([]model.Module{}, b.modules...), nil
}

func (b *fakeBackend) GetModule(ctx context.Context, id model.ModuleID) (*model.Module, error) {
	if err := b.call("GetModule"); err != nil {
		return nil, err
	}
	for _, m := range b.modules {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, errors.WithStack(port.ErrNotFound)
}

func (b *fakeBackend) CreateModule(ctx context.Context, module model.Module) (*model.Module, error) {
	if err := b.call("CreateModule"); err != nil {
		return nil, err
	}
	module.ID = model.ModuleID(b.id("m"))
	b.modules = append(b.modules, module)
	return &module, nil
}

func (b *fakeBackend) UpdateModule(ctx context.Context, module model.Module) (*model.Module, error) {
	if err := b.call("UpdateModule"); err != nil {
		return nil, err
	}
	return &module, nil
}

func (b *fakeBackend) DeleteModule(ctx context.Context, id model.ModuleID) error {
	return b.call("DeleteModule")
}

func (b *fakeBackend) SetModulePublished(ctx context.Context, id model.ModuleID, published bool) (*model.Module, error) {
	if err := b.call("SetModulePublished"); err != nil {
		return nil, err
	}
	for i := range b.modules {
		if b.modules[i].ID == id {
			b.modules[i].IsPublished = published
			m := b.modules[i]
			return &m, nil
		}
	}
	return nil, errors.WithStack(port.ErrNotFound)
}

func (b *fakeBackend) ListLessons(ctx context.Context, moduleID model.ModuleID) ([]model.Lesson, error) {
	if err := b.call("ListLessons"); err != nil {
		return nil, err
	}
	result := []model.Lesson{}
	for _, l := range b.lessons {
		if l.ModuleID == moduleID {
			result = append(result, l)
		}
	}
	return result, nil
}

func (b *fakeBackend) GetLesson(ctx context.Context, id model.LessonID) (*model.Lesson, error) {
	if err := b.call("GetLesson"); err != nil {
		return nil, err
	}
	for _, l := range b.lessons {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, errors.WithStack(port.ErrNotFound)
}

func (b *fakeBackend) CreateLesson(ctx context.Context, lesson model.Lesson) (*model.Lesson, error) {
	if err := b.call("CreateLesson"); err != nil {
		return nil, err
	}
	lesson.ID = model.LessonID(b.id("l"))
	b.lessons = append(b.lessons, lesson)
	return &lesson, nil
}

func (b *fakeBackend) UpdateLesson(ctx context.Context, lesson model.Lesson) (*model.Lesson, error) {
	if err := b.call("UpdateLesson"); err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (b *fakeBackend) DeleteLesson(ctx context.Context, id model.LessonID) error {
	if err := b.call("DeleteLesson"); err != nil {
		return err
	}
	for i, l := range b.lessons {
		if l.ID == id {
			b.lessons = append(b.lessons[:i], b.lessons[i+1:]...)
			return nil
		}
	}
	return errors.WithStack(port.ErrNotFound)
}

func (b *fakeBackend) GetLessonQuiz(ctx context.Context, lessonID model.LessonID) (*model.Quiz, error) {
	if err := b.call("GetLessonQuiz"); err != nil {
		return nil, err
	}
	for _, q := range b.quizzes {
		if q.LessonID == lessonID {
			return &q, nil
		}
	}
	return nil, errors.WithStack(port.ErrNotFound)
}

func (b *fakeBackend) SaveLessonQuiz(ctx context.Context, quiz model.Quiz) (*model.Quiz, error) {
	if err := b.call("SaveLessonQuiz"); err != nil {
		return nil, err
	}
	for i, q := range b.quizzes {
		if q.LessonID == quiz.LessonID {
			quiz.ID = q.ID
			b.quizzes[i] = quiz
			return &quiz, nil
		}
	}
	quiz.ID = model.QuizID(b.id("q"))
	b.quizzes = append(b.quizzes, quiz)
	return &quiz, nil
}

func (b *fakeBackend) DeleteQuiz(ctx context.Context, id model.QuizID) error {
	if err := b.call("DeleteQuiz"); err != nil {
		return err
	}
	for i, q := range b.quizzes {
		if q.ID == id {
			b.quizzes = append(b.quizzes[:i], b.quizzes[i+1:]...)
			return nil
		}
	}
	return errors.WithStack(port.ErrNotFound)
}

func (b *fakeBackend) AddQuestion(ctx context.Context, quizID model.QuizID, question model.Question) (*model.Question, error) {
	if err := b.call("AddQuestion"); err != nil {
		return nil, err
	}
	for i := range b.quizzes {
		if b.quizzes[i].ID == quizID {
			question.ID = model.QuestionID(b.id("qu"))
			question.QuizID = quizID
			b.quizzes[i].Questions = append(b.quizzes[i].Questions, question)
			return &question, nil
		}
	}
	return nil, errors.WithStack(port.ErrNotFound)
}

func (b *fakeBackend) UpdateQuestion(ctx context.Context, question model.Question) (*model.Question, error) {
	if err := b.call("UpdateQuestion"); err != nil {
		return nil, err
	}
	return &question, nil
}

func (b *fakeBackend) DeleteQuestion(ctx context.Context, id model.QuestionID) error {
	return b.call("DeleteQuestion")
}

func (b *fakeBackend) ListChallenges(ctx context.Context) ([]model.Challenge, error) {
	if err := b.call("ListChallenges"); err != nil {
		return nil, err
	}
	return append([]model.Challenge{}, b.challenges...), nil
}

func (b *fakeBackend) CreateChallenge(ctx context.Context, challenge model.Challenge) (*model.Challenge, error) {
	if err := b.call("CreateChallenge"); err != nil {
		return nil, err
	}
	challenge.ID = model.ChallengeID(b.id("ch"))
	b.challenges = append(b.challenges, challenge)
	return &challenge, nil
}

func (b *fakeBackend) UpdateChallenge(ctx context.Context, challenge model.Challenge) (*model.Challenge, error) {
	if err := b.call("UpdateChallenge"); err != nil {
		return nil, err
	}
	for i := range b.challenges {
		if b.challenges[i].ID == challenge.ID {
			b.challenges[i] = challenge
			return &challenge, nil
		}
	}
	return nil, errors.WithStack(port.ErrNotFound)
}

func (b *fakeBackend) DeleteChallenge(ctx context.Context, id model.ChallengeID) error {
	return b.call("DeleteChallenge")
}

var (
	_ port.AdminAPI    = &fakeBackend{}
	_ port.LearningAPI = &fakeBackend{}
)
