package report

import (
	"time"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/port"
)

var pulledAt = time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)

func newTestSnapshot() *port.Snapshot {
	return &port.Snapshot{
		PulledAt: pulledAt,
		Politicians: []model.Politician{
			{ID: "p1", Name: "Jane Doe", Party: "Green", Position: "Mayor", IsPublished: true},
			{ID: "p2", Name: "Alan Smith", Party: "Blue | Red", Position: "Senator"},
		},
		Commitments: []model.Commitment{
			{ID: "c1", PoliticianID: "p1", Title: "Bike lanes", Status: model.CommitmentStatusFulfilled, Progress: 100, Deadline: model.NewDate(2024, time.June, 1)},
			{ID: "c2", PoliticianID: "p1", Title: "New library", Status: model.CommitmentStatusPartiallyFulfilled, Progress: 60, Deadline: model.NewDate(2023, time.January, 1)},
			{ID: "c3", PoliticianID: "p1", Title: "Lower taxes", Status: model.CommitmentStatusBroken, Progress: 0, Deadline: model.NewDate(2025, time.March, 1)},
			{ID: "c4", PoliticianID: "p1", Title: "Park", Status: model.CommitmentStatusInProgress, Progress: 40, Deadline: model.NewDate(2024, time.December, 1)},
			{ID: "c5", PoliticianID: "p2", Title: "Rail", Status: model.CommitmentStatusNotStarted},
		},
		VotingRecords: []model.VotingRecord{
			{ID: "v1", PoliticianID: "p1", BillName: "Budget", Vote: model.VoteYes, Date: model.NewDate(2024, time.February, 1)},
			{ID: "v2", PoliticianID: "p1", BillName: "Housing", Vote: model.VoteAbsent, Date: model.NewDate(2024, time.March, 1)},
			{ID: "v3", PoliticianID: "p2", BillName: "Budget", Vote: model.VoteNo, Date: model.NewDate(2024, time.February, 1)},
		},
		TimelineEvents: []model.TimelineEvent{
			{ID: "e1", PoliticianID: "p1", Title: "Elected", Date: model.NewDate(2020, time.March, 15)},
			{ID: "e2", PoliticianID: "p1", Title: "Budget speech", Date: model.NewDate(2024, time.January, 10)},
		},
	}
}
