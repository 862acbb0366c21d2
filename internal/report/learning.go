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

type ModuleRow struct {
	ID            model.ModuleID   `json:"id"`
	Title         string           `json:"title"`
	Difficulty    model.Difficulty `json:"difficulty"`
	IsPublished   bool             `json:"isPublished"`
	Lessons       int              `json:"lessons"`
	Quizzes       int              `json:"quizzes"`
	Questions     int              `json:"questions"`
	LessonMinutes int              `json:"lessonMinutes"`
}

type LearningOverview struct {
	Rows             []ModuleRow       `json:"modules"`
	TotalLessons     int               `json:"totalLessons"`
	TotalQuizzes     int               `json:"totalQuizzes"`
	TotalQuestions   int               `json:"totalQuestions"`
	TotalMinutes     int               `json:"totalMinutes"`
	ActiveChallenges []model.Challenge `json:"activeChallenges"`
	GeneratedAt      time.Time         `json:"generatedAt"`
}

// BuildLearningOverview summarizes every module of the snapshot in module
// order.
func BuildLearningOverview(snapshot *port.Snapshot) (*LearningOverview, error) {
	modules := slices.Clone(snapshot.Modules)

	if err := listing.Sort(modules, listing.ModuleSortKeys, "order", false); err != nil {
		return nil, errors.WithStack(err)
	}

	lessons := groupBy(snapshot.Lessons, func(l model.Lesson) model.ModuleID { return l.ModuleID })

	quizzes := make(map[model.LessonID]model.Quiz, len(snapshot.Quizzes))
	for _, q := range snapshot.Quizzes {
		quizzes[q.LessonID] = q
	}

	overview := &LearningOverview{
		Rows:             make([]ModuleRow, 0, len(modules)),
		ActiveChallenges: make([]model.Challenge, 0),
		GeneratedAt:      snapshot.PulledAt,
	}

	for _, m := range modules {
		row := ModuleRow{
			ID:          m.ID,
			Title:       m.Title,
			Difficulty:  m.Difficulty,
			IsPublished: m.IsPublished,
			Lessons:     len(lessons[m.ID]),
		}

		for _, l := range lessons[m.ID] {
			row.LessonMinutes += l.DurationMinutes

			quiz, exists := quizzes[l.ID]
			if !exists && l.Quiz != nil {
				quiz, exists = *l.Quiz, true
			}

			if !exists {
				continue
			}

			row.Quizzes++
			row.Questions += len(quiz.Questions)
		}

		overview.TotalLessons += row.Lessons
		overview.TotalQuizzes += row.Quizzes
		overview.TotalQuestions += row.Questions
		overview.TotalMinutes += row.LessonMinutes

		overview.Rows = append(overview.Rows, row)
	}

	for _, c := range snapshot.Challenges {
		if c.IsActive {
			overview.ActiveChallenges = append(overview.ActiveChallenges, c)
		}
	}

	if err := listing.Sort(overview.ActiveChallenges, listing.ChallengeSortKeys, "start", false); err != nil {
		return nil, errors.WithStack(err)
	}

	return overview, nil
}

func (o *LearningOverview) Report() *Report {
	modules := NewTable("Modules", "Title", "Difficulty", "Published", "Lessons", "Quizzes", "Questions", "Minutes")
	for _, r := range o.Rows {
		modules.Append(
			r.Title,
			string(r.Difficulty),
			yesNo(r.IsPublished),
			strconv.Itoa(r.Lessons),
			strconv.Itoa(r.Quizzes),
			strconv.Itoa(r.Questions),
			strconv.Itoa(r.LessonMinutes),
		)
	}

	challenges := NewTable("Active challenges", "Title", "Type", "Points", "Start", "End")
	for _, c := range o.ActiveChallenges {
		challenges.Append(c.Title, string(c.Type), strconv.Itoa(c.Points), c.StartDate.String(), c.EndDate.String())
	}

	return &Report{
		Title:       "Learning overview",
		GeneratedAt: o.GeneratedAt,
		Facts: []Fact{
			{Label: "Modules", Value: strconv.Itoa(len(o.Rows))},
			{Label: "Lessons", Value: strconv.Itoa(o.TotalLessons)},
			{Label: "Quizzes", Value: strconv.Itoa(o.TotalQuizzes)},
			{Label: "Questions", Value: strconv.Itoa(o.TotalQuestions)},
			{Label: "Lesson minutes", Value: strconv.Itoa(o.TotalMinutes)},
			{Label: "Active challenges", Value: strconv.Itoa(len(o.ActiveChallenges))},
		},
		Tables: []*Table{modules, challenges},
		Data:   o,
	}
}
