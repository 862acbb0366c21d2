package report

import (
	"fmt"
	"math"

	"github.com/bornholm/civicadmin/internal/core/model"
)

// FulfilmentRate weights partially fulfilled commitments by half. It is 0
// when there are no commitments.
func FulfilmentRate(commitments []model.Commitment) float64 {
	if len(commitments) == 0 {
		return 0
	}

	var score float64
	for _, c := range commitments {
		switch c.Status {
		case model.CommitmentStatusFulfilled:
			score += 1
		case model.CommitmentStatusPartiallyFulfilled:
			score += 0.5
		}
	}

	return score / float64(len(commitments))
}

// AttendanceRate is the share of votes where the politician was present.
func AttendanceRate(votes []model.VotingRecord) float64 {
	if len(votes) == 0 {
		return 0
	}

	present := 0
	for _, v := range votes {
		if v.Vote != model.VoteAbsent {
			present++
		}
	}

	return float64(present) / float64(len(votes))
}

func AverageProgress(commitments []model.Commitment) float64 {
	if len(commitments) == 0 {
		return 0
	}

	total := 0
	for _, c := range commitments {
		total += c.Progress
	}

	return float64(total) / float64(len(commitments))
}

func percent(rate float64) string {
	return fmt.Sprintf("%.1f%%", math.Round(rate*1000)/10)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
