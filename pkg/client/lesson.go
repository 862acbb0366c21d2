package client

import (
	"context"
	"net/http"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/pkg/errors"
)

const lessonsPath = "/api/admin/learning/lessons"

// ListLessons implements port.LessonStore.
func (c *Client) ListLessons(ctx context.Context, moduleID model.ModuleID) ([]model.Lesson, error) {
	path, err := resourcePath(modulesPath, moduleID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	lessons, err := listResource[model.Lesson](ctx, c, APILearning, path+"/lessons")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return setParent(lessons, func(lesson *model.Lesson) { lesson.ModuleID = moduleID }), nil
}

// GetLesson implements port.LessonStore.
func (c *Client) GetLesson(ctx context.Context, id model.LessonID) (*model.Lesson, error) {
	path, err := resourcePath(lessonsPath, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var lesson model.Lesson
	if err := c.jsonRequest(ctx, APILearning, http.MethodGet, path, nil, &lesson); err != nil {
		return nil, errors.WithStack(err)
	}

	return &lesson, nil
}

// CreateLesson implements port.LessonStore.
func (c *Client) CreateLesson(ctx context.Context, lesson model.Lesson) (*model.Lesson, error) {
	path, err := resourcePath(modulesPath, lesson.ModuleID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	lesson.ID = ""
	lesson.Quiz = nil
	return sendResource(ctx, c, APILearning, http.MethodPost, path+"/lessons", lesson)
}

// UpdateLesson implements port.LessonStore.
func (c *Client) UpdateLesson(ctx context.Context, lesson model.Lesson) (*model.Lesson, error) {
	path, err := resourcePath(lessonsPath, lesson.ID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	lesson.Quiz = nil
	return sendResource(ctx, c, APILearning, http.MethodPut, path, lesson)
}

// DeleteLesson implements port.LessonStore.
func (c *Client) DeleteLesson(ctx context.Context, id model.LessonID) error {
	path, err := resourcePath(lessonsPath, id)
	if err != nil {
		return errors.WithStack(err)
	}
	return deleteResource(ctx, c, APILearning, path)
}
