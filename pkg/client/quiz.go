package client

import (
	"context"
	"net/http"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/pkg/errors"
)

const (
	quizzesPath   = "/api/admin/learning/quizzes"
	questionsPath = "/api/admin/learning/questions"
)

// GetLessonQuiz implements port.QuizStore.
func (c *Client) GetLessonQuiz(ctx context.Context, lessonID model.LessonID) (*model.Quiz, error) {
	path, err := resourcePath(lessonsPath, lessonID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var quiz *model.Quiz
	if err := c.jsonRequest(ctx, APILearning, http.MethodGet, path+"/quiz", nil, &quiz); err != nil {
		return nil, errors.WithStack(err)
	}

	// Some routes answer 200 with a null payload for lessons without quiz
	if quiz == nil {
		return nil, errors.WithStack(&APIError{StatusCode: http.StatusNotFound, Message: "lesson has no quiz"})
	}

	quiz.LessonID = lessonID

	return quiz, nil
}

// SaveLessonQuiz implements port.QuizStore.
func (c *Client) SaveLessonQuiz(ctx context.Context, quiz model.Quiz) (*model.Quiz, error) {
	path, err := resourcePath(lessonsPath, quiz.LessonID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return sendResource(ctx, c, APILearning, http.MethodPut, path+"/quiz", quiz)
}

// DeleteQuiz implements port.QuizStore.
func (c *Client) DeleteQuiz(ctx context.Context, id model.QuizID) error {
	path, err := resourcePath(quizzesPath, id)
	if err != nil {
		return errors.WithStack(err)
	}
	return deleteResource(ctx, c, APILearning, path)
}

// AddQuestion implements port.QuizStore.
func (c *Client) AddQuestion(ctx context.Context, quizID model.QuizID, question model.Question) (*model.Question, error) {
	path, err := resourcePath(quizzesPath, quizID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	question.ID = ""
	question.QuizID = quizID
	return sendResource(ctx, c, APILearning, http.MethodPost, path+"/questions", question)
}

// UpdateQuestion implements port.QuizStore.
func (c *Client) UpdateQuestion(ctx context.Context, question model.Question) (*model.Question, error) {
	path, err := resourcePath(questionsPath, question.ID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return sendResource(ctx, c, APILearning, http.MethodPut, path, question)
}

// DeleteQuestion implements port.QuizStore.
func (c *Client) DeleteQuestion(ctx context.Context, id model.QuestionID) error {
	path, err := resourcePath(questionsPath, id)
	if err != nil {
		return errors.WithStack(err)
	}
	return deleteResource(ctx, c, APILearning, path)
}
