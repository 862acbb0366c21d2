package testsuite

import (
	"context"
	"testing"

	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/pkg/errors"
)

var testItems = []port.IndexedItem{
	{
		Kind:  port.IndexedKindPolitician,
		ID:    "p1",
		Label: "Amina Okafor",
		Text:  "Amina Okafor Green Alliance Senator Lagos East environmental protection and clean water",
	},
	{
		Kind:  port.IndexedKindPolitician,
		ID:    "p2",
		Label: "Daniel Mensah",
		Text:  "Daniel Mensah Progressive Party Governor Accra infrastructure roads and housing",
	},
	{
		Kind:  port.IndexedKindModule,
		ID:    "m1",
		Label: "How elections work",
		Text:  "How elections work voting registration ballots and electoral commissions",
	},
	{
		Kind:  port.IndexedKindLesson,
		ID:    "l1",
		Label: "Clean water policy",
		Text:  "Clean water policy explained how governments regulate water quality",
	},
}

func TestIndex(t *testing.T, factory func(t *testing.T) (port.Index, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, index port.Index) error
	}

	testCases := []testCase{
		{
			Name: "SimpleQuery",
			Run: func(t *testing.T, ctx context.Context, index port.Index) error {
				results, err := index.Search(ctx, "elections", port.IndexSearchOptions{})
				if err != nil {
					return errors.WithStack(err)
				}

				if len(results) == 0 {
					t.Fatalf("len(results): no results")
				}

				if e, g := "m1", results[0].ID; e != g {
					t.Errorf("results[0].ID: expected '%s', got '%s'", e, g)
				}

				if e, g := port.IndexedKindModule, results[0].Kind; e != g {
					t.Errorf("results[0].Kind: expected '%s', got '%s'", e, g)
				}

				return nil
			},
		},
		{
			Name: "KindFilter",
			Run: func(t *testing.T, ctx context.Context, index port.Index) error {
				results, err := index.Search(ctx, "water", port.IndexSearchOptions{
					Kinds: []port.IndexedKind{port.IndexedKindLesson},
				})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 1, len(results); e != g {
					t.Fatalf("len(results): expected %d, got %d", e, g)
				}

				if e, g := "Clean water policy", results[0].Label; e != g {
					t.Errorf("results[0].Label: expected '%s', got '%s'", e, g)
				}

				return nil
			},
		},
		{
			Name: "MaxResults",
			Run: func(t *testing.T, ctx context.Context, index port.Index) error {
				results, err := index.Search(ctx, "water", port.IndexSearchOptions{
					MaxResults: 1,
				})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 1, len(results); e != g {
					t.Errorf("len(results): expected %d, got %d", e, g)
				}

				return nil
			},
		},
		{
			Name: "NoMatch",
			Run: func(t *testing.T, ctx context.Context, index port.Index) error {
				results, err := index.Search(ctx, "zeppelin", port.IndexSearchOptions{})
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 0, len(results); e != g {
					t.Errorf("len(results): expected %d, got %d", e, g)
				}

				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			index, err := factory(t)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			ctx := context.Background()

			if err := index.Index(ctx, testItems...); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if err := tc.Run(t, ctx, index); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}
		})
	}
}
