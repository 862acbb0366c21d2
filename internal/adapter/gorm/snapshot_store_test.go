package gorm

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
)

func newTestStore(t *testing.T) *SnapshotStore {
	dsn := filepath.Join(t.TempDir(), "snapshot.sqlite")

	db, err := gorm.Open(gormlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		sqlDB.Close()
	})

	return NewSnapshotStore(db)
}

func TestSnapshotStore(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if _, err := store.LoadSnapshot(ctx); !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("LoadSnapshot: expected port.ErrNotFound, got '%v'", err)
	}

	pulledAt := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	first := &port.Snapshot{
		PulledAt: pulledAt,
		Politicians: []model.Politician{
			{ID: "p2", Name: "Daniel Mensah", Party: "Progressive Party", TermStart: model.NewDate(2021, time.January, 7)},
			{ID: "p1", Name: "Amina Okafor", Party: "Green Alliance", IsPublished: true},
		},
		Commitments: []model.Commitment{
			{ID: "c1", PoliticianID: "p1", Title: "Clean water", Status: model.CommitmentStatusFulfilled, Progress: 100},
		},
		Modules: []model.Module{
			{ID: "m1", Title: "How elections work", Difficulty: model.DifficultyBeginner},
		},
		Quizzes: []model.Quiz{
			{
				ID:       "q1",
				LessonID: "l1",
				Title:    "Elections quiz",
				Questions: []model.Question{
					{ID: "qq1", Text: "Is voting secret?", Type: model.QuestionTypeTrueFalse, Options: model.TrueFalseOptions},
				},
			},
		},
	}

	if err := store.ReplaceSnapshot(ctx, first); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	loaded, err := store.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !loaded.PulledAt.Equal(pulledAt) {
		t.Errorf("loaded.PulledAt: expected '%v', got '%v'", pulledAt, loaded.PulledAt)
	}

	if e, g := 2, len(loaded.Politicians); e != g {
		t.Fatalf("len(loaded.Politicians): expected %d, got %d", e, g)
	}

	// Order is preserved
	if e, g := model.PoliticianID("p2"), loaded.Politicians[0].ID; e != g {
		t.Errorf("loaded.Politicians[0].ID: expected '%s', got '%s'", e, g)
	}

	if e, g := "2021-01-07", loaded.Politicians[0].TermStart.String(); e != g {
		t.Errorf("loaded.Politicians[0].TermStart: expected '%s', got '%s'", e, g)
	}

	if e, g := true, loaded.Politicians[1].IsPublished; e != g {
		t.Errorf("loaded.Politicians[1].IsPublished: expected '%v', got '%v'", e, g)
	}

	if e, g := 1, len(loaded.Quizzes); e != g {
		t.Fatalf("len(loaded.Quizzes): expected %d, got %d", e, g)
	}

	if e, g := 1, len(loaded.Quizzes[0].Questions); e != g {
		t.Errorf("len(loaded.Quizzes[0].Questions): expected %d, got %d", e, g)
	}

	second := &port.Snapshot{
		PulledAt: pulledAt.Add(time.Hour),
		Politicians: []model.Politician{
			{ID: "p3", Name: "Grace Boateng"},
		},
	}

	if err := store.ReplaceSnapshot(ctx, second); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	info, err := store.SnapshotInfo(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !info.PulledAt.Equal(second.PulledAt) {
		t.Errorf("info.PulledAt: expected '%v', got '%v'", second.PulledAt, info.PulledAt)
	}

	expectedCounts := map[string]int64{
		KindPolitician: 1,
		KindCommitment: 0,
		KindModule:     0,
		KindQuiz:       0,
	}

	for kind, expected := range expectedCounts {
		if e, g := expected, info.Counts[kind]; e != g {
			t.Errorf("info.Counts[%s]: expected %d, got %d", kind, e, g)
		}
	}
}
