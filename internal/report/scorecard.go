package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bornholm/civicadmin/internal/core/listing"
	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/pkg/errors"
)

type Scorecard struct {
	Politician        model.Politician               `json:"politician"`
	CommitmentsTotal  int                            `json:"commitmentsTotal"`
	CommitmentsStatus map[model.CommitmentStatus]int `json:"commitmentsByStatus"`
	FulfilmentRate    float64                        `json:"fulfilmentRate"`
	AverageProgress   float64                        `json:"averageProgress"`
	VotesTotal        int                            `json:"votesTotal"`
	Votes             map[model.VoteChoice]int       `json:"votesByChoice"`
	AttendanceRate    float64                        `json:"attendanceRate"`
	TimelineEvents    int                            `json:"timelineEvents"`
	LatestEvent       *model.TimelineEvent           `json:"latestEvent,omitempty"`
	Documents         int                            `json:"documents"`
	Commitments       []model.Commitment             `json:"commitments"`
	GeneratedAt       time.Time                      `json:"generatedAt"`
}

// BuildScorecard computes the accountability scorecard of a politician
// from a snapshot.
func BuildScorecard(snapshot *port.Snapshot, politicianID model.PoliticianID) (*Scorecard, error) {
	var politician *model.Politician
	for _, p := range snapshot.Politicians {
		if p.ID == politicianID {
			politician = &p
			break
		}
	}

	if politician == nil {
		return nil, errors.Wrapf(port.ErrNotFound, "politician '%s'", politicianID)
	}

	commitments := filterBy(snapshot.Commitments, func(c model.Commitment) bool { return c.PoliticianID == politicianID })
	votes := filterBy(snapshot.VotingRecords, func(v model.VotingRecord) bool { return v.PoliticianID == politicianID })
	events := filterBy(snapshot.TimelineEvents, func(e model.TimelineEvent) bool { return e.PoliticianID == politicianID })
	documents := filterBy(snapshot.Documents, func(d model.Document) bool { return d.PoliticianID == politicianID })

	scorecard := &Scorecard{
		Politician:        *politician,
		CommitmentsTotal:  len(commitments),
		CommitmentsStatus: make(map[model.CommitmentStatus]int, len(model.CommitmentStatuses)),
		FulfilmentRate:    FulfilmentRate(commitments),
		AverageProgress:   AverageProgress(commitments),
		VotesTotal:        len(votes),
		Votes:             make(map[model.VoteChoice]int, len(model.VoteChoices)),
		AttendanceRate:    AttendanceRate(votes),
		TimelineEvents:    len(events),
		Documents:         len(documents),
		Commitments:       commitments,
		GeneratedAt:       snapshot.PulledAt,
	}

	for _, s := range model.CommitmentStatuses {
		scorecard.CommitmentsStatus[s] = 0
	}

	for _, c := range commitments {
		scorecard.CommitmentsStatus[c.Status]++
	}

	for _, v := range model.VoteChoices {
		scorecard.Votes[v] = 0
	}

	for _, v := range votes {
		scorecard.Votes[v.Vote]++
	}

	// Undated events sort first in descending order and never count as the latest one
	dated := filterBy(events, func(e model.TimelineEvent) bool { return !e.Date.IsZero() })
	if len(dated) > 0 {
		if err := listing.Sort(dated, listing.TimelineSortKeys, "date", true); err != nil {
			return nil, errors.WithStack(err)
		}
		latest := dated[0]
		scorecard.LatestEvent = &latest
	}

	if err := listing.Sort(scorecard.Commitments, listing.CommitmentSortKeys, "deadline", false); err != nil {
		return nil, errors.WithStack(err)
	}

	return scorecard, nil
}

func (s *Scorecard) Report() *Report {
	r := &Report{
		Title:       fmt.Sprintf("Scorecard: %s", s.Politician.Name),
		GeneratedAt: s.GeneratedAt,
		Data:        s,
	}

	r.Facts = []Fact{
		{Label: "Party", Value: s.Politician.Party},
		{Label: "Position", Value: s.Politician.Position},
		{Label: "Commitments", Value: strconv.Itoa(s.CommitmentsTotal)},
		{Label: "Fulfilment rate", Value: percent(s.FulfilmentRate)},
		{Label: "Average progress", Value: fmt.Sprintf("%.1f%%", s.AverageProgress)},
		{Label: "Votes", Value: strconv.Itoa(s.VotesTotal)},
		{Label: "Attendance rate", Value: percent(s.AttendanceRate)},
		{Label: "Timeline events", Value: strconv.Itoa(s.TimelineEvents)},
		{Label: "Documents", Value: strconv.Itoa(s.Documents)},
	}

	if s.LatestEvent != nil {
		r.Facts = append(r.Facts, Fact{
			Label: "Latest event",
			Value: fmt.Sprintf("%s (%s)", s.LatestEvent.Title, s.LatestEvent.Date),
		})
	}

	statuses := NewTable("Commitments by status", "Status", "Count")
	for _, status := range model.CommitmentStatuses {
		statuses.Append(string(status), strconv.Itoa(s.CommitmentsStatus[status]))
	}

	votes := NewTable("Votes", "Vote", "Count")
	for _, v := range model.VoteChoices {
		votes.Append(string(v), strconv.Itoa(s.Votes[v]))
	}

	commitments := NewTable("Commitments", "Title", "Status", "Progress", "Deadline")
	for _, c := range s.Commitments {
		commitments.Append(c.Title, string(c.Status), strconv.Itoa(c.Progress)+"%", c.Deadline.String())
	}

	r.Tables = []*Table{statuses, votes, commitments}

	return r
}

func filterBy[T any](items []T, keep func(T) bool) []T {
	filtered := make([]T, 0)
	for _, item := range items {
		if keep(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
