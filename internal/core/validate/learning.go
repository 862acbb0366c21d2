package validate

import (
	"fmt"
	"slices"

	"github.com/bornholm/civicadmin/internal/core/model"
)

func Module(m *model.Module) Errors {
	errs := Errors{}
	Required(errs, "title", m.Title)
	OneOf(errs, "difficulty", m.Difficulty, model.Difficulties)
	IntMin(errs, "estimatedMinutes", m.EstimatedMinutes, 0)
	IntMin(errs, "order", m.Order, 0)
	URL(errs, "imageUrl", m.ImageURL)
	return errs
}

func NormalizeModule(m *model.Module) {
	if m.Difficulty == "" {
		m.Difficulty = model.DifficultyBeginner
	}
}

func Lesson(l *model.Lesson) Errors {
	errs := Errors{}
	Required(errs, "moduleId", string(l.ModuleID))
	Required(errs, "title", l.Title)
	IntMin(errs, "order", l.Order, 0)
	IntMin(errs, "durationMinutes", l.DurationMinutes, 0)
	URL(errs, "videoUrl", l.VideoURL)
	return errs
}

func Quiz(q *model.Quiz) Errors {
	errs := Errors{}
	Required(errs, "lessonId", string(q.LessonID))
	Required(errs, "title", q.Title)
	IntRange(errs, "passingScore", q.PassingScore, 0, 100)

	for idx := range q.Questions {
		questionErrs := Question(&q.Questions[idx])
		for _, field := range questionErrs.Fields() {
			errs.Add(fmt.Sprintf("questions[%d].%s", idx, field), questionErrs[field])
		}
	}

	return errs
}

// NormalizeQuestion applies the implicit rules of each question type.
func NormalizeQuestion(q *model.Question) {
	if q.Type == "" {
		q.Type = model.QuestionTypeMultipleChoice
	}
	if q.Type == model.QuestionTypeTrueFalse {
		q.Options = slices.Clone(model.TrueFalseOptions)
	}
	if q.Points == 0 {
		q.Points = 1
	}
}

func NormalizeQuiz(q *model.Quiz) {
	for idx := range q.Questions {
		NormalizeQuestion(&q.Questions[idx])
	}
}

func Question(q *model.Question) Errors {
	errs := Errors{}
	Required(errs, "text", q.Text)

	if !OneOf(errs, "type", q.Type, model.QuestionTypes) {
		return errs
	}

	if q.Type == model.QuestionTypeMultipleChoice {
		MinItems(errs, "options", q.Options, 2)
		for idx, o := range q.Options {
			Required(errs, fmt.Sprintf("options[%d]", idx), o)
		}
	}

	if len(q.Options) > 0 {
		IntRange(errs, "correctAnswer", q.CorrectAnswer, 0, len(q.Options)-1)
	}

	IntMin(errs, "points", q.Points, 1)

	return errs
}

func Challenge(c *model.Challenge) Errors {
	errs := Errors{}
	Required(errs, "title", c.Title)
	OneOf(errs, "type", c.Type, model.ChallengeTypes)
	IntMin(errs, "points", c.Points, 0)
	DateOrder(errs, "endDate", c.StartDate, c.EndDate)
	return errs
}
