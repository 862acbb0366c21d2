package validate

import (
	"errors"
	"testing"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/port"
)

func TestPolitician(t *testing.T) {
	type testCase struct {
		Name           string
		Politician     model.Politician
		ExpectedFields []string
	}

	valid := model.Politician{
		Name:     "Amina Okafor",
		Party:    "Green Alliance",
		Position: "Senator",
	}

	withContact := valid
	withContact.Email = "amina@example.org"
	withContact.Phone = "+234 (0) 803-555-0101"
	withContact.Website = "https://okafor.example.org"
	withContact.TermStart = model.MustParseDate("2023-06-01")
	withContact.TermEnd = model.MustParseDate("2027-05-31")

	badContact := valid
	badContact.Email = "not-an-email"
	badContact.Phone = "12ab"
	badContact.Website = "okafor.example.org"
	badContact.TermStart = model.MustParseDate("2027-06-01")
	badContact.TermEnd = model.MustParseDate("2023-05-31")

	badSocial := valid
	badSocial.Social.Twitter = "@amina"

	dottedPhone := valid
	dottedPhone.Phone = "803.555.0101"

	testCases := []testCase{
		{Name: "Empty", Politician: model.Politician{}, ExpectedFields: []string{FieldName, FieldParty, FieldPosition}},
		{Name: "BasicInfo", Politician: valid, ExpectedFields: []string{}},
		{Name: "WithContact", Politician: withContact, ExpectedFields: []string{}},
		{Name: "BadContact", Politician: badContact, ExpectedFields: []string{FieldEmail, FieldPhone, FieldTermEnd, FieldWebsite}},
		{Name: "BadSocial", Politician: badSocial, ExpectedFields: []string{FieldTwitter}},
		{Name: "DottedPhone", Politician: dottedPhone, ExpectedFields: []string{FieldPhone}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			errs := Politician(&tc.Politician)

			fields := errs.Fields()

			if e, g := len(tc.ExpectedFields), len(fields); e != g {
				t.Fatalf("len(fields): expected %d, got %d (%v)", e, g, errs)
			}

			for i := range fields {
				if e, g := tc.ExpectedFields[i], fields[i]; e != g {
					t.Errorf("fields[%d]: expected '%s', got '%s'", i, e, g)
				}
			}
		})
	}
}

func TestErrorsIsInvalid(t *testing.T) {
	errs := Errors{}
	Required(errs, "title", "")

	err := errs.Err()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}

	if !errors.Is(err, port.ErrInvalid) {
		t.Errorf("errors.Is(err, port.ErrInvalid): expected true, got false")
	}

	if e, g := "title: is required", err.Error(); e != g {
		t.Errorf("err.Error(): expected '%s', got '%s'", e, g)
	}

	if (Errors{}).Err() != nil {
		t.Errorf("empty errors should not be an error")
	}
}

func TestCommitmentNormalization(t *testing.T) {
	c := model.Commitment{
		PoliticianID: "p1",
		Title:        "Build 200 km of roads",
		Status:       model.CommitmentStatusFulfilled,
		Progress:     40,
	}

	NormalizeCommitment(&c)

	if e, g := 100, c.Progress; e != g {
		t.Errorf("c.Progress: expected %d, got %d", e, g)
	}

	if errs := Commitment(&c); !errs.Empty() {
		t.Errorf("unexpected errors: %v", errs)
	}

	c.Status = "forgotten"
	if errs := Commitment(&c); errs["status"] == "" {
		t.Errorf("expected a status error")
	}

	empty := model.Commitment{PoliticianID: "p1", Title: "Untracked"}
	NormalizeCommitment(&empty)

	if e, g := model.CommitmentStatusNotStarted, empty.Status; e != g {
		t.Errorf("empty.Status: expected '%s', got '%s'", e, g)
	}
}

func TestQuestion(t *testing.T) {
	type testCase struct {
		Name           string
		Question       model.Question
		ExpectedFields []string
	}

	testCases := []testCase{
		{
			Name: "ValidMultipleChoice",
			Question: model.Question{
				Text:          "Who appoints ministers?",
				Type:          model.QuestionTypeMultipleChoice,
				Options:       []string{"The president", "The courts", "The voters"},
				CorrectAnswer: 0,
			},
			ExpectedFields: []string{},
		},
		{
			Name: "TooFewOptions",
			Question: model.Question{
				Text:    "Who appoints ministers?",
				Type:    model.QuestionTypeMultipleChoice,
				Options: []string{"The president"},
			},
			ExpectedFields: []string{"options"},
		},
		{
			Name: "AnswerOutOfRange",
			Question: model.Question{
				Text:          "Who appoints ministers?",
				Type:          model.QuestionTypeMultipleChoice,
				Options:       []string{"The president", "The courts"},
				CorrectAnswer: 4,
			},
			ExpectedFields: []string{"correctAnswer"},
		},
		{
			Name: "TrueFalseForcesOptions",
			Question: model.Question{
				Text:          "Senators serve six-year terms.",
				Type:          model.QuestionTypeTrueFalse,
				Options:       []string{"Yes"},
				CorrectAnswer: 1,
			},
			ExpectedFields: []string{},
		},
		{
			Name:           "MissingText",
			Question:       model.Question{Type: model.QuestionTypeTrueFalse},
			ExpectedFields: []string{"text"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			NormalizeQuestion(&tc.Question)

			fields := Question(&tc.Question).Fields()

			if e, g := len(tc.ExpectedFields), len(fields); e != g {
				t.Fatalf("len(fields): expected %d, got %d (%v)", e, g, fields)
			}

			for i := range fields {
				if e, g := tc.ExpectedFields[i], fields[i]; e != g {
					t.Errorf("fields[%d]: expected '%s', got '%s'", i, e, g)
				}
			}
		})
	}
}

func TestQuizPrefixesQuestionFields(t *testing.T) {
	quiz := model.Quiz{
		LessonID:     "l1",
		Title:        "Checkpoint",
		PassingScore: 120,
		Questions: []model.Question{
			{Text: "", Type: model.QuestionTypeTrueFalse, Options: model.TrueFalseOptions, Points: 1},
		},
	}

	errs := Quiz(&quiz)

	if _, exists := errs["passingScore"]; !exists {
		t.Errorf("expected a passingScore error")
	}

	if _, exists := errs["questions[0].text"]; !exists {
		t.Errorf("expected a questions[0].text error, got %v", errs)
	}
}

func TestChallengeDates(t *testing.T) {
	c := model.Challenge{
		Title:     "Know your representatives",
		Type:      model.ChallengeTypeWeekly,
		StartDate: model.MustParseDate("2025-02-10"),
		EndDate:   model.MustParseDate("2025-02-03"),
	}

	errs := Challenge(&c)

	if _, exists := errs["endDate"]; !exists {
		t.Errorf("expected an endDate error, got %v", errs)
	}
}
