package bleve

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blevesearch/bleve/v2"
	bleveQuery "github.com/blevesearch/bleve/v2/search/query"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/pkg/errors"
)

type Index struct {
	index bleve.Index
}

// Index implements port.Index.
func (i *Index) Index(ctx context.Context, items ...port.IndexedItem) error {
	batch := i.index.NewBatch()

	for _, item := range items {
		data := map[string]any{
			"_type":    "item",
			fieldKind:  string(item.Kind),
			fieldID:    item.ID,
			fieldLabel: item.Label,
			fieldText:  item.Text,
		}

		if err := batch.Index(documentID(item.Kind, item.ID), data); err != nil {
			return errors.WithStack(err)
		}
	}

	slog.DebugContext(ctx, "indexing items", slog.Int("total", batch.Size()))

	if err := i.index.Batch(batch); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Search implements port.Index.
func (i *Index) Search(ctx context.Context, query string, opts port.IndexSearchOptions) ([]*port.IndexSearchResult, error) {
	labelQuery := bleve.NewMatchQuery(query)
	labelQuery.SetField(fieldLabel)
	labelQuery.SetBoost(2)

	textQuery := bleve.NewMatchQuery(query)
	textQuery.SetField(fieldText)

	queries := []bleveQuery.Query{
		bleve.NewDisjunctionQuery(labelQuery, textQuery),
	}

	if len(opts.Kinds) > 0 {
		kindQueries := make([]bleveQuery.Query, 0, len(opts.Kinds))
		for _, k := range opts.Kinds {
			termQuery := bleve.NewTermQuery(string(k))
			termQuery.SetField(fieldKind)
			kindQueries = append(kindQueries, termQuery)
		}
		queries = append(queries, bleve.NewDisjunctionQuery(kindQueries...))
	}

	req := bleve.NewSearchRequest(bleve.NewConjunctionQuery(queries...))

	req.From = 0
	req.Fields = []string{fieldKind, fieldID, fieldLabel}

	if opts.MaxResults > 0 {
		req.Size = opts.MaxResults
	}

	result, err := i.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	searchResults := make([]*port.IndexSearchResult, 0, len(result.Hits))

	for _, hit := range result.Hits {
		searchResults = append(searchResults, &port.IndexSearchResult{
			Kind:  port.IndexedKind(stringField(hit.Fields, fieldKind)),
			ID:    stringField(hit.Fields, fieldID),
			Label: stringField(hit.Fields, fieldLabel),
			Score: hit.Score,
		})
	}

	return searchResults, nil
}

func (i *Index) Close() error {
	return errors.WithStack(i.index.Close())
}

func documentID(kind port.IndexedKind, id string) string {
	return fmt.Sprintf("%s:%s", kind, id)
}

func stringField(fields map[string]any, name string) string {
	value, exists := fields[name]
	if !exists {
		return ""
	}

	str, ok := value.(string)
	if !ok {
		return fmt.Sprintf("%v", value)
	}

	return str
}

func NewIndex(index bleve.Index) *Index {
	return &Index{
		index: index,
	}
}

// NewMemoryIndex returns an index living only in memory.
func NewMemoryIndex() (*Index, error) {
	index, err := bleve.NewMemOnly(IndexMapping())
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return NewIndex(index), nil
}

var _ port.Index = &Index{}
