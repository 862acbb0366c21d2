package port

import (
	"context"
	"time"

	"github.com/bornholm/civicadmin/internal/core/model"
)

// Snapshot is a point-in-time copy of every admin record.
type Snapshot struct {
	PulledAt       time.Time
	Politicians    []model.Politician
	Commitments    []model.Commitment
	TimelineEvents []model.TimelineEvent
	VotingRecords  []model.VotingRecord
	Documents      []model.Document
	Modules        []model.Module
	Lessons        []model.Lesson
	Quizzes        []model.Quiz
	Challenges     []model.Challenge
}

type SnapshotInfo struct {
	PulledAt time.Time
	Counts   map[string]int64
}

type SnapshotStore interface {
	// ReplaceSnapshot atomically replaces the stored snapshot
	ReplaceSnapshot(ctx context.Context, snapshot *Snapshot) error
	LoadSnapshot(ctx context.Context) (*Snapshot, error)
	SnapshotInfo(ctx context.Context) (*SnapshotInfo, error)
}
