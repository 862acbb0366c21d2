package service

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type CollectOptions struct {
	Concurrency int
	// Politicians restricts the collected profiles, all profiles are
	// collected when empty
	Politicians       []model.PoliticianID
	PoliticianDetails bool
	SkipAdmin         bool
	SkipLearning      bool
	Quizzes           bool
}

type CollectOptionFunc func(opts *CollectOptions)

func WithCollectConcurrency(concurrency int) CollectOptionFunc {
	return func(opts *CollectOptions) {
		opts.Concurrency = concurrency
	}
}

func WithCollectPoliticians(ids ...model.PoliticianID) CollectOptionFunc {
	return func(opts *CollectOptions) {
		opts.Politicians = ids
	}
}

func WithCollectPoliticianDetails(enabled bool) CollectOptionFunc {
	return func(opts *CollectOptions) {
		opts.PoliticianDetails = enabled
	}
}

func WithCollectQuizzes(enabled bool) CollectOptionFunc {
	return func(opts *CollectOptions) {
		opts.Quizzes = enabled
	}
}

func WithCollectAdmin(enabled bool) CollectOptionFunc {
	return func(opts *CollectOptions) {
		opts.SkipAdmin = !enabled
	}
}

func WithCollectLearning(enabled bool) CollectOptionFunc {
	return func(opts *CollectOptions) {
		opts.SkipLearning = !enabled
	}
}

func NewCollectOptions(funcs ...CollectOptionFunc) *CollectOptions {
	opts := &CollectOptions{
		Concurrency:       4,
		PoliticianDetails: true,
		Quizzes:           true,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// Collector fetches every record of both backends, fanning out the
// per-parent requests.
type Collector struct {
	admin    port.AdminAPI
	learning port.LearningAPI
}

func (c *Collector) Collect(ctx context.Context, funcs ...CollectOptionFunc) (*port.Snapshot, error) {
	opts := NewCollectOptions(funcs...)

	snapshot := &port.Snapshot{
		PulledAt: time.Now().UTC(),
	}

	var mutex sync.Mutex

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(max(opts.Concurrency, 1))

	if !opts.SkipAdmin {
		politicians, err := c.collectPoliticians(ctx, opts.Politicians)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		snapshot.Politicians = politicians

		if opts.PoliticianDetails {
			for _, p := range politicians {
				collectInto(ctx, group, &mutex, &snapshot.Commitments, func(ctx context.Context) ([]model.Commitment, error) {
					items, err := c.admin.ListCommitments(ctx, p.ID)
					return withParent(items, err, func(item *model.Commitment) { item.PoliticianID = p.ID })
				})
				collectInto(ctx, group, &mutex, &snapshot.TimelineEvents, func(ctx context.Context) ([]model.TimelineEvent, error) {
					items, err := c.admin.ListTimelineEvents(ctx, p.ID)
					return withParent(items, err, func(item *model.TimelineEvent) { item.PoliticianID = p.ID })
				})
				collectInto(ctx, group, &mutex, &snapshot.VotingRecords, func(ctx context.Context) ([]model.VotingRecord, error) {
					items, err := c.admin.ListVotingRecords(ctx, p.ID)
					return withParent(items, err, func(item *model.VotingRecord) { item.PoliticianID = p.ID })
				})
				collectInto(ctx, group, &mutex, &snapshot.Documents, func(ctx context.Context) ([]model.Document, error) {
					items, err := c.admin.ListDocuments(ctx, p.ID)
					return withParent(items, err, func(item *model.Document) { item.PoliticianID = p.ID })
				})
			}
		}
	}

	if !opts.SkipLearning {
		modules, err := c.learning.ListModules(ctx)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		snapshot.Modules = modules

		collectInto(ctx, group, &mutex, &snapshot.Challenges, c.learning.ListChallenges)

		for _, m := range modules {
			group.Go(func() error {
				lessons, err := c.learning.ListLessons(ctx, m.ID)
				lessons, err = withParent(lessons, err, func(lesson *model.Lesson) { lesson.ModuleID = m.ID })
				if err != nil {
					return errors.Wrapf(err, "could not list lessons of module '%s'", m.ID)
				}

				mutex.Lock()
				snapshot.Lessons = append(snapshot.Lessons, lessons...)
				mutex.Unlock()

				if !opts.Quizzes {
					return nil
				}

				for _, l := range lessons {
					quiz, err := c.learning.GetLessonQuiz(ctx, l.ID)
					if err != nil {
						if errors.Is(err, port.ErrNotFound) {
							continue
						}
						return errors.Wrapf(err, "could not get quiz of lesson '%s'", l.ID)
					}

					quiz.LessonID = l.ID

					mutex.Lock()
					snapshot.Quizzes = append(snapshot.Quizzes, *quiz)
					mutex.Unlock()
				}

				return nil
			})
		}
	}

	if err := group.Wait(); err != nil {
		return nil, errors.WithStack(err)
	}

	sortSnapshot(snapshot)

	slog.DebugContext(ctx, "collected records",
		slog.Int("politicians", len(snapshot.Politicians)),
		slog.Int("modules", len(snapshot.Modules)),
		slog.Int("lessons", len(snapshot.Lessons)),
	)

	return snapshot, nil
}

func (c *Collector) collectPoliticians(ctx context.Context, ids []model.PoliticianID) ([]model.Politician, error) {
	if len(ids) == 0 {
		politicians, err := c.admin.ListPoliticians(ctx)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return politicians, nil
	}

	politicians := make([]model.Politician, 0, len(ids))
	for _, id := range ids {
		p, err := c.admin.GetPolitician(ctx, id)
		if err != nil {
			return nil, errors.Wrapf(err, "could not get politician '%s'", id)
		}
		politicians = append(politicians, *p)
	}

	return politicians, nil
}

func collectInto[T any](ctx context.Context, group *errgroup.Group, mutex *sync.Mutex, target *[]T, fetch func(ctx context.Context) ([]T, error)) {
	group.Go(func() error {
		items, err := fetch(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		mutex.Lock()
		defer mutex.Unlock()

		*target = append(*target, items...)

		return nil
	})
}

// withParent sets the parent identifier of records fetched through their
// parent, which nested routes may omit.
func withParent[T any](items []T, err error, set func(item *T)) ([]T, error) {
	if err != nil {
		return nil, errors.WithStack(err)
	}

	for i := range items {
		set(&items[i])
	}

	return items, nil
}

// sortSnapshot orders records by identifier since concurrent fetches
// append in arbitrary order.
func sortSnapshot(s *port.Snapshot) {
	slices.SortStableFunc(s.Commitments, func(a, b model.Commitment) int { return compareIDs(a.ID, b.ID) })
	slices.SortStableFunc(s.TimelineEvents, func(a, b model.TimelineEvent) int { return compareIDs(a.ID, b.ID) })
	slices.SortStableFunc(s.VotingRecords, func(a, b model.VotingRecord) int { return compareIDs(a.ID, b.ID) })
	slices.SortStableFunc(s.Documents, func(a, b model.Document) int { return compareIDs(a.ID, b.ID) })
	slices.SortStableFunc(s.Lessons, func(a, b model.Lesson) int { return compareIDs(a.ID, b.ID) })
	slices.SortStableFunc(s.Quizzes, func(a, b model.Quiz) int { return compareIDs(a.ID, b.ID) })
	slices.SortStableFunc(s.Challenges, func(a, b model.Challenge) int { return compareIDs(a.ID, b.ID) })
}

func compareIDs[ID ~string](a, b ID) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func NewCollector(admin port.AdminAPI, learning port.LearningAPI) *Collector {
	return &Collector{
		admin:    admin,
		learning: learning,
	}
}
