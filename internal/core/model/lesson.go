package model

import "time"

type LessonID string

type Lesson struct {
	ID              LessonID  `json:"id,omitempty" yaml:"id,omitempty"`
	ModuleID        ModuleID  `json:"moduleId" yaml:"moduleId"`
	Title           string    `json:"title" yaml:"title"`
	Content         string    `json:"content" yaml:"content"`
	Language        string    `json:"language,omitempty" yaml:"language,omitempty"`
	Order           int       `json:"order" yaml:"order"`
	DurationMinutes int       `json:"durationMinutes" yaml:"durationMinutes"`
	VideoURL        string    `json:"videoUrl,omitempty" yaml:"videoUrl,omitempty"`
	Quiz            *Quiz     `json:"quiz,omitempty" yaml:"quiz,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitzero" yaml:"createdAt,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt,omitzero" yaml:"updatedAt,omitempty"`
}
