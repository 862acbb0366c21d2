package port

import (
	"context"
)

type IndexedKind string

const (
	IndexedKindPolitician IndexedKind = "politician"
	IndexedKindModule     IndexedKind = "module"
	IndexedKindLesson     IndexedKind = "lesson"
	IndexedKindChallenge  IndexedKind = "challenge"
)

// IndexedItem is the searchable projection of an admin record.
type IndexedItem struct {
	Kind  IndexedKind
	ID    string
	Label string
	Text  string
}

type Index interface {
	Index(ctx context.Context, items ...IndexedItem) error
	Search(ctx context.Context, query string, opts IndexSearchOptions) ([]*IndexSearchResult, error)
}

type IndexSearchOptions struct {
	MaxResults int
	Kinds      []IndexedKind
}

type IndexSearchResult struct {
	Kind  IndexedKind
	ID    string
	Label string
	Score float64
}
