package model

import "time"

type ModuleID string

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

var Difficulties = []Difficulty{
	DifficultyBeginner,
	DifficultyIntermediate,
	DifficultyAdvanced,
}

// Module is a learning module grouping ordered lessons.
type Module struct {
	ID               ModuleID   `json:"id,omitempty" yaml:"id,omitempty"`
	Title            string     `json:"title" yaml:"title"`
	Description      string     `json:"description,omitempty" yaml:"description,omitempty"`
	Category         string     `json:"category,omitempty" yaml:"category,omitempty"`
	Difficulty       Difficulty `json:"difficulty" yaml:"difficulty"`
	EstimatedMinutes int        `json:"estimatedMinutes" yaml:"estimatedMinutes"`
	Order            int        `json:"order" yaml:"order"`
	ImageURL         string     `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	IsPublished      bool       `json:"isPublished" yaml:"isPublished"`
	Lessons          []Lesson   `json:"lessons,omitempty" yaml:"lessons,omitempty"`
	CreatedAt        time.Time  `json:"createdAt,omitzero" yaml:"createdAt,omitempty"`
	UpdatedAt        time.Time  `json:"updatedAt,omitzero" yaml:"updatedAt,omitempty"`
}
