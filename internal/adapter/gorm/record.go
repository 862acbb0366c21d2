package gorm

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

const (
	KindPolitician    = "politician"
	KindCommitment    = "commitment"
	KindTimelineEvent = "timeline_event"
	KindVotingRecord  = "voting_record"
	KindDocument      = "document"
	KindModule        = "module"
	KindLesson        = "lesson"
	KindQuiz          = "quiz"
	KindChallenge     = "challenge"
)

var Kinds = []string{
	KindPolitician,
	KindCommitment,
	KindTimelineEvent,
	KindVotingRecord,
	KindDocument,
	KindModule,
	KindLesson,
	KindQuiz,
	KindChallenge,
}

// Record is a snapshotted entity, stored as its JSON representation.
type Record struct {
	Kind     string `gorm:"primaryKey"`
	ID       string `gorm:"primaryKey"`
	Position int    `gorm:"not null"`
	ParentID string `gorm:"index"`
	Data     []byte `gorm:"not null"`
}

func (Record) TableName() string {
	return "snapshot_records"
}

// Pull holds the metadata of the stored snapshot. There is at most one row.
type Pull struct {
	ID       uint `gorm:"primarykey"`
	PulledAt time.Time
}

func (Pull) TableName() string {
	return "snapshot_pulls"
}

func toRecords[T any](kind string, items []T, identify func(item T) (id string, parentID string)) ([]*Record, error) {
	records := make([]*Record, 0, len(items))

	for idx, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		id, parentID := identify(item)
		if id == "" {
			id = fmt.Sprintf("#%d", idx)
		}

		records = append(records, &Record{
			Kind:     kind,
			ID:       id,
			Position: idx,
			ParentID: parentID,
			Data:     data,
		})
	}

	return records, nil
}

func fromRecords[T any](records []*Record) ([]T, error) {
	items := make([]T, 0, len(records))

	for _, r := range records {
		var item T
		if err := json.Unmarshal(r.Data, &item); err != nil {
			return nil, errors.Wrapf(err, "could not decode %s '%s'", r.Kind, r.ID)
		}

		items = append(items, item)
	}

	return items, nil
}
