package report

import (
	"slices"
	"strconv"
	"time"

	"github.com/bornholm/civicadmin/internal/core/listing"
	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/pkg/errors"
)

type PoliticianRow struct {
	ID             model.PoliticianID `json:"id"`
	Name           string             `json:"name"`
	Party          string             `json:"party"`
	Position       string             `json:"position"`
	IsPublished    bool               `json:"isPublished"`
	IsFeatured     bool               `json:"isFeatured"`
	Commitments    int                `json:"commitments"`
	FulfilmentRate float64            `json:"fulfilmentRate"`
	Votes          int                `json:"votes"`
	AttendanceRate float64            `json:"attendanceRate"`
}

type PoliticiansOverview struct {
	Rows        []PoliticianRow `json:"politicians"`
	GeneratedAt time.Time       `json:"generatedAt"`
}

// BuildPoliticiansOverview summarizes every politician of the snapshot,
// ordered by the given sort expression ("name", "-party", ...).
func BuildPoliticiansOverview(snapshot *port.Snapshot, sort string) (*PoliticiansOverview, error) {
	politicians := slices.Clone(snapshot.Politicians)

	name, descending := listing.ParseSort(sort)
	if name == "" {
		name = "name"
	}

	if err := listing.Sort(politicians, listing.PoliticianSortKeys, name, descending); err != nil {
		return nil, errors.WithStack(err)
	}

	commitments := groupBy(snapshot.Commitments, func(c model.Commitment) model.PoliticianID { return c.PoliticianID })
	votes := groupBy(snapshot.VotingRecords, func(v model.VotingRecord) model.PoliticianID { return v.PoliticianID })

	overview := &PoliticiansOverview{
		Rows:        make([]PoliticianRow, 0, len(politicians)),
		GeneratedAt: snapshot.PulledAt,
	}

	for _, p := range politicians {
		overview.Rows = append(overview.Rows, PoliticianRow{
			ID:             p.ID,
			Name:           p.Name,
			Party:          p.Party,
			Position:       p.Position,
			IsPublished:    p.IsPublished,
			IsFeatured:     p.IsFeatured,
			Commitments:    len(commitments[p.ID]),
			FulfilmentRate: FulfilmentRate(commitments[p.ID]),
			Votes:          len(votes[p.ID]),
			AttendanceRate: AttendanceRate(votes[p.ID]),
		})
	}

	return overview, nil
}

func (o *PoliticiansOverview) Report() *Report {
	table := NewTable("Politicians", "Name", "Party", "Position", "Published", "Featured", "Commitments", "Fulfilment", "Votes", "Attendance")

	published := 0
	for _, r := range o.Rows {
		if r.IsPublished {
			published++
		}

		table.Append(
			r.Name,
			r.Party,
			r.Position,
			yesNo(r.IsPublished),
			yesNo(r.IsFeatured),
			strconv.Itoa(r.Commitments),
			percent(r.FulfilmentRate),
			strconv.Itoa(r.Votes),
			percent(r.AttendanceRate),
		)
	}

	return &Report{
		Title:       "Politicians overview",
		GeneratedAt: o.GeneratedAt,
		Facts: []Fact{
			{Label: "Politicians", Value: strconv.Itoa(len(o.Rows))},
			{Label: "Published", Value: strconv.Itoa(published)},
		},
		Tables: []*Table{table},
		Data:   o,
	}
}

func groupBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}
