package listing

import (
	"time"

	"github.com/bornholm/civicadmin/internal/core/model"
)

var PoliticianSortKeys = SortKeys[model.Politician]{
	ByString("name", func(p model.Politician) string { return p.Name }),
	ByString("party", func(p model.Politician) string { return p.Party }),
	ByString("position", func(p model.Politician) string { return p.Position }),
	ByOrdered("updated", func(p model.Politician) int64 { return unix(p.UpdatedAt) }),
}

var CommitmentSortKeys = SortKeys[model.Commitment]{
	ByString("title", func(c model.Commitment) string { return c.Title }),
	ByOrdered("status", func(c model.Commitment) string { return string(c.Status) }),
	ByDate("deadline", func(c model.Commitment) model.Date { return c.Deadline }),
	ByOrdered("progress", func(c model.Commitment) int { return c.Progress }),
}

var TimelineSortKeys = SortKeys[model.TimelineEvent]{
	ByDate("date", func(e model.TimelineEvent) model.Date { return e.Date }),
	ByString("title", func(e model.TimelineEvent) string { return e.Title }),
}

var VotingRecordSortKeys = SortKeys[model.VotingRecord]{
	ByDate("date", func(v model.VotingRecord) model.Date { return v.Date }),
	ByString("bill", func(v model.VotingRecord) string { return v.BillName }),
	ByOrdered("vote", func(v model.VotingRecord) string { return string(v.Vote) }),
}

var ModuleSortKeys = SortKeys[model.Module]{
	ByOrdered("order", func(m model.Module) int { return m.Order }),
	ByString("title", func(m model.Module) string { return m.Title }),
	ByOrdered("difficulty", func(m model.Module) int { return difficultyRank(m.Difficulty) }),
}

var LessonSortKeys = SortKeys[model.Lesson]{
	ByOrdered("order", func(l model.Lesson) int { return l.Order }),
	ByString("title", func(l model.Lesson) string { return l.Title }),
}

var ChallengeSortKeys = SortKeys[model.Challenge]{
	ByDate("start", func(c model.Challenge) model.Date { return c.StartDate }),
	ByString("title", func(c model.Challenge) string { return c.Title }),
	ByOrdered("points", func(c model.Challenge) int { return c.Points }),
}

func unix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func difficultyRank(d model.Difficulty) int {
	for i, candidate := range model.Difficulties {
		if candidate == d {
			return i
		}
	}
	return len(model.Difficulties)
}
