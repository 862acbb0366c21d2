package model

import "time"

type CommitmentID string

type CommitmentStatus string

const (
	CommitmentStatusNotStarted         CommitmentStatus = "not_started"
	CommitmentStatusInProgress         CommitmentStatus = "in_progress"
	CommitmentStatusFulfilled          CommitmentStatus = "fulfilled"
	CommitmentStatusPartiallyFulfilled CommitmentStatus = "partially_fulfilled"
	CommitmentStatusBroken             CommitmentStatus = "broken"
)

var CommitmentStatuses = []CommitmentStatus{
	CommitmentStatusNotStarted,
	CommitmentStatusInProgress,
	CommitmentStatusFulfilled,
	CommitmentStatusPartiallyFulfilled,
	CommitmentStatusBroken,
}

// Commitment is a campaign promise tracked against a politician.
type Commitment struct {
	ID           CommitmentID     `json:"id,omitempty" yaml:"id,omitempty"`
	PoliticianID PoliticianID     `json:"politicianId" yaml:"politicianId"`
	Title        string           `json:"title" yaml:"title"`
	Description  string           `json:"description,omitempty" yaml:"description,omitempty"`
	Category     string           `json:"category,omitempty" yaml:"category,omitempty"`
	Status       CommitmentStatus `json:"status" yaml:"status"`
	Progress     int              `json:"progress" yaml:"progress"`
	PromisedAt   Date             `json:"promisedAt" yaml:"promisedAt,omitempty"`
	Deadline     Date             `json:"deadline" yaml:"deadline,omitempty"`
	SourceURL    string           `json:"sourceUrl,omitempty" yaml:"sourceUrl,omitempty"`
	Evidence     string           `json:"evidence,omitempty" yaml:"evidence,omitempty"`
	CreatedAt    time.Time        `json:"createdAt,omitzero" yaml:"createdAt,omitempty"`
	UpdatedAt    time.Time        `json:"updatedAt,omitzero" yaml:"updatedAt,omitempty"`
}
