package model

type QuizID string

type QuestionID string

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeTrueFalse      QuestionType = "true_false"
)

var QuestionTypes = []QuestionType{
	QuestionTypeMultipleChoice,
	QuestionTypeTrueFalse,
}

var TrueFalseOptions = []string{"True", "False"}

// Quiz closes a lesson. A lesson has at most one quiz.
type Quiz struct {
	ID           QuizID     `json:"id,omitempty" yaml:"id,omitempty"`
	LessonID     LessonID   `json:"lessonId" yaml:"lessonId"`
	Title        string     `json:"title" yaml:"title"`
	PassingScore int        `json:"passingScore" yaml:"passingScore"`
	Questions    []Question `json:"questions" yaml:"questions"`
}

type Question struct {
	ID            QuestionID   `json:"id,omitempty" yaml:"id,omitempty"`
	QuizID        QuizID       `json:"quizId,omitempty" yaml:"quizId,omitempty"`
	Text          string       `json:"text" yaml:"text"`
	Type          QuestionType `json:"type" yaml:"type"`
	Options       []string     `json:"options" yaml:"options"`
	CorrectAnswer int          `json:"correctAnswer" yaml:"correctAnswer"`
	Explanation   string       `json:"explanation,omitempty" yaml:"explanation,omitempty"`
	Points        int          `json:"points" yaml:"points"`
}

// TotalPoints returns the sum of the points of every question.
func (q *Quiz) TotalPoints() int {
	total := 0
	for _, question := range q.Questions {
		total += question.Points
	}
	return total
}
