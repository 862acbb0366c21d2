package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/pkg/errors"
)

type SearchManager struct {
	collector *Collector
	newIndex  func(ctx context.Context) (port.Index, error)
}

type SearchOptions struct {
	MaxResults int
	Kinds      []port.IndexedKind
}

// Search indexes freshly fetched records then queries them.
func (m *SearchManager) Search(ctx context.Context, query string, opts SearchOptions) ([]*port.IndexSearchResult, error) {
	snapshot, err := m.collector.Collect(ctx,
		WithCollectPoliticianDetails(false),
		WithCollectQuizzes(false),
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	index, err := m.newIndex(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := index.Index(ctx, IndexedItems(snapshot)...); err != nil {
		return nil, errors.WithStack(err)
	}

	if opts.MaxResults <= 0 {
		opts.MaxResults = 10
	}

	results, err := index.Search(ctx, query, port.IndexSearchOptions{
		MaxResults: opts.MaxResults,
		Kinds:      opts.Kinds,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return results, nil
}

// IndexedItems projects the searchable records of a snapshot.
func IndexedItems(s *port.Snapshot) []port.IndexedItem {
	items := make([]port.IndexedItem, 0, len(s.Politicians)+len(s.Modules)+len(s.Lessons)+len(s.Challenges))

	for _, p := range s.Politicians {
		items = append(items, port.IndexedItem{
			Kind:  port.IndexedKindPolitician,
			ID:    string(p.ID),
			Label: p.Name,
			Text:  join(p.Name, p.Party, p.Position, p.Constituency, p.Region, p.Bio),
		})
	}

	for _, m := range s.Modules {
		items = append(items, port.IndexedItem{
			Kind:  port.IndexedKindModule,
			ID:    string(m.ID),
			Label: m.Title,
			Text:  join(m.Title, m.Description, m.Category, string(m.Difficulty)),
		})
	}

	for _, l := range s.Lessons {
		items = append(items, port.IndexedItem{
			Kind:  port.IndexedKindLesson,
			ID:    string(l.ID),
			Label: l.Title,
			Text:  join(l.Title, l.Content),
		})
	}

	for _, c := range s.Challenges {
		items = append(items, port.IndexedItem{
			Kind:  port.IndexedKindChallenge,
			ID:    string(c.ID),
			Label: c.Title,
			Text:  join(c.Title, c.Description, fmt.Sprintf("%s challenge", c.Type)),
		})
	}

	return items
}

func join(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "\n")
}

func NewSearchManager(collector *Collector, newIndex func(ctx context.Context) (port.Index, error)) *SearchManager {
	return &SearchManager{
		collector: collector,
		newIndex:  newIndex,
	}
}
