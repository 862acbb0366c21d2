package service

import (
	"context"
	"log/slog"

	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/pkg/errors"
)

type SnapshotManager struct {
	collector   *Collector
	store       port.SnapshotStore
	concurrency int
}

// Pull replaces the stored snapshot with the current backend content.
func (m *SnapshotManager) Pull(ctx context.Context) (*port.SnapshotInfo, error) {
	snapshot, err := m.collector.Collect(ctx, WithCollectConcurrency(m.concurrency))
	if err != nil {
		return nil, errors.Wrap(err, "could not collect records")
	}

	slog.InfoContext(ctx, "storing snapshot", slog.Time("pulledAt", snapshot.PulledAt))

	if err := m.store.ReplaceSnapshot(ctx, snapshot); err != nil {
		return nil, errors.Wrap(err, "could not store snapshot")
	}

	info, err := m.store.SnapshotInfo(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return info, nil
}

func (m *SnapshotManager) Info(ctx context.Context) (*port.SnapshotInfo, error) {
	info, err := m.store.SnapshotInfo(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return info, nil
}

func (m *SnapshotManager) Load(ctx context.Context) (*port.Snapshot, error) {
	snapshot, err := m.store.LoadSnapshot(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return snapshot, nil
}

func NewSnapshotManager(collector *Collector, store port.SnapshotStore, concurrency int) *SnapshotManager {
	return &SnapshotManager{
		collector:   collector,
		store:       store,
		concurrency: concurrency,
	}
}
