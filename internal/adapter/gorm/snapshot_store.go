package gorm

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const batchSize = 100

type SnapshotStore struct {
	getDatabase func(ctx context.Context) (*gorm.DB, error)
}

// ReplaceSnapshot implements port.SnapshotStore.
func (s *SnapshotStore) ReplaceSnapshot(ctx context.Context, snapshot *port.Snapshot) error {
	if snapshot == nil {
		return errors.New("snapshot is nil")
	}

	records, err := snapshotRecords(snapshot)
	if err != nil {
		return errors.WithStack(err)
	}

	db, err := s.getDatabase(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Record{}).Error; err != nil {
			return errors.WithStack(err)
		}

		if err := tx.Where("1 = 1").Delete(&Pull{}).Error; err != nil {
			return errors.WithStack(err)
		}

		if len(records) > 0 {
			if err := tx.CreateInBatches(records, batchSize).Error; err != nil {
				return errors.WithStack(err)
			}
		}

		if err := tx.Create(&Pull{ID: 1, PulledAt: snapshot.PulledAt.UTC()}).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	})
	if err != nil {
		return errors.WithStack(err)
	}

	slog.DebugContext(ctx, "snapshot replaced", slog.Int("records", len(records)))

	return nil
}

// LoadSnapshot implements port.SnapshotStore.
func (s *SnapshotStore) LoadSnapshot(ctx context.Context) (*port.Snapshot, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	db = db.WithContext(ctx)

	var pull Pull
	if err := db.First(&pull).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(port.ErrNotFound)
		}

		return nil, errors.WithStack(err)
	}

	var records []*Record
	if err := db.Order("kind, position").Find(&records).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	byKind := map[string][]*Record{}
	for _, r := range records {
		byKind[r.Kind] = append(byKind[r.Kind], r)
	}

	snapshot := &port.Snapshot{
		PulledAt: pull.PulledAt,
	}

	if snapshot.Politicians, err = fromRecords[model.Politician](byKind[KindPolitician]); err != nil {
		return nil, errors.WithStack(err)
	}

	if snapshot.Commitments, err = fromRecords[model.Commitment](byKind[KindCommitment]); err != nil {
		return nil, errors.WithStack(err)
	}

	if snapshot.TimelineEvents, err = fromRecords[model.TimelineEvent](byKind[KindTimelineEvent]); err != nil {
		return nil, errors.WithStack(err)
	}

	if snapshot.VotingRecords, err = fromRecords[model.VotingRecord](byKind[KindVotingRecord]); err != nil {
		return nil, errors.WithStack(err)
	}

	if snapshot.Documents, err = fromRecords[model.Document](byKind[KindDocument]); err != nil {
		return nil, errors.WithStack(err)
	}

	if snapshot.Modules, err = fromRecords[model.Module](byKind[KindModule]); err != nil {
		return nil, errors.WithStack(err)
	}

	if snapshot.Lessons, err = fromRecords[model.Lesson](byKind[KindLesson]); err != nil {
		return nil, errors.WithStack(err)
	}

	if snapshot.Quizzes, err = fromRecords[model.Quiz](byKind[KindQuiz]); err != nil {
		return nil, errors.WithStack(err)
	}

	if snapshot.Challenges, err = fromRecords[model.Challenge](byKind[KindChallenge]); err != nil {
		return nil, errors.WithStack(err)
	}

	return snapshot, nil
}

// SnapshotInfo implements port.SnapshotStore.
func (s *SnapshotStore) SnapshotInfo(ctx context.Context) (*port.SnapshotInfo, error) {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	db = db.WithContext(ctx)

	var pull Pull
	if err := db.First(&pull).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(port.ErrNotFound)
		}

		return nil, errors.WithStack(err)
	}

	type kindCount struct {
		Kind  string
		Total int64
	}

	var counts []kindCount

	err = db.Model(&Record{}).
		Select("kind, count(*) as total").
		Group("kind").
		Scan(&counts).Error
	if err != nil {
		return nil, errors.WithStack(err)
	}

	info := &port.SnapshotInfo{
		PulledAt: pull.PulledAt,
		Counts:   make(map[string]int64, len(Kinds)),
	}

	for _, k := range Kinds {
		info.Counts[k] = 0
	}

	for _, c := range counts {
		info.Counts[c.Kind] = c.Total
	}

	return info, nil
}

func snapshotRecords(snapshot *port.Snapshot) ([]*Record, error) {
	var records []*Record

	appendRecords := func(batch []*Record, err error) error {
		if err != nil {
			return errors.WithStack(err)
		}
		records = append(records, batch...)
		return nil
	}

	err := appendRecords(toRecords(KindPolitician, snapshot.Politicians, func(p model.Politician) (string, string) {
		return string(p.ID), ""
	}))
	if err != nil {
		return nil, err
	}

	err = appendRecords(toRecords(KindCommitment, snapshot.Commitments, func(c model.Commitment) (string, string) {
		return string(c.ID), string(c.PoliticianID)
	}))
	if err != nil {
		return nil, err
	}

	err = appendRecords(toRecords(KindTimelineEvent, snapshot.TimelineEvents, func(e model.TimelineEvent) (string, string) {
		return string(e.ID), string(e.PoliticianID)
	}))
	if err != nil {
		return nil, err
	}

	err = appendRecords(toRecords(KindVotingRecord, snapshot.VotingRecords, func(v model.VotingRecord) (string, string) {
		return string(v.ID), string(v.PoliticianID)
	}))
	if err != nil {
		return nil, err
	}

	err = appendRecords(toRecords(KindDocument, snapshot.Documents, func(d model.Document) (string, string) {
		return string(d.ID), string(d.PoliticianID)
	}))
	if err != nil {
		return nil, err
	}

	err = appendRecords(toRecords(KindModule, snapshot.Modules, func(m model.Module) (string, string) {
		return string(m.ID), ""
	}))
	if err != nil {
		return nil, err
	}

	err = appendRecords(toRecords(KindLesson, snapshot.Lessons, func(l model.Lesson) (string, string) {
		return string(l.ID), string(l.ModuleID)
	}))
	if err != nil {
		return nil, err
	}

	err = appendRecords(toRecords(KindQuiz, snapshot.Quizzes, func(q model.Quiz) (string, string) {
		return string(q.ID), string(q.LessonID)
	}))
	if err != nil {
		return nil, err
	}

	err = appendRecords(toRecords(KindChallenge, snapshot.Challenges, func(c model.Challenge) (string, string) {
		return string(c.ID), string(c.ModuleID)
	}))
	if err != nil {
		return nil, err
	}

	return records, nil
}

func NewSnapshotStore(db *gorm.DB) *SnapshotStore {
	return &SnapshotStore{
		getDatabase: createGetDatabase(db),
	}
}

var _ port.SnapshotStore = &SnapshotStore{}

func createGetDatabase(db *gorm.DB) func(ctx context.Context) (*gorm.DB, error) {
	var (
		migrateOnce sync.Once
		migrateErr  error
	)

	return func(ctx context.Context) (*gorm.DB, error) {
		migrateOnce.Do(func() {
			models := []any{
				&Record{},
				&Pull{},
			}

			if err := db.AutoMigrate(models...); err != nil {
				migrateErr = errors.WithStack(err)
				return
			}
		})
		if migrateErr != nil {
			return nil, errors.WithStack(migrateErr)
		}

		return db, nil
	}
}
