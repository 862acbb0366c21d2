package common

import (
	"bytes"
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func TestApplySets(t *testing.T) {
	politician := model.Politician{
		Name:  "Jane Doe",
		Party: "Green",
	}

	sets := []string{
		"party=Blue",
		"social.twitter=@jane",
		"isPublished=true",
		"position=Mayor",
	}

	if err := ApplySets(&politician, sets); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Jane Doe", politician.Name; e != g {
		t.Errorf("politician.Name: expected '%v', got '%v'", e, g)
	}

	if e, g := "Blue", politician.Party; e != g {
		t.Errorf("politician.Party: expected '%v', got '%v'", e, g)
	}

	if e, g := "@jane", politician.Social.Twitter; e != g {
		t.Errorf("politician.Social.Twitter: expected '%v', got '%v'", e, g)
	}

	if e, g := true, politician.IsPublished; e != g {
		t.Errorf("politician.IsPublished: expected '%v', got '%v'", e, g)
	}

	if e, g := "Mayor", politician.Position; e != g {
		t.Errorf("politician.Position: expected '%v', got '%v'", e, g)
	}

	if err := ApplySets(&politician, []string{"party"}); !errors.Is(err, ErrInvalidSet) {
		t.Errorf("ApplySets: expected ErrInvalidSet, got '%v'", err)
	}
}

func TestApplySetsInt(t *testing.T) {
	commitment := model.Commitment{Title: "Bike lanes"}

	if err := ApplySets(&commitment, []string{"progress=40", "status=in_progress"}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 40, commitment.Progress; e != g {
		t.Errorf("commitment.Progress: expected '%v', got '%v'", e, g)
	}

	if e, g := model.CommitmentStatusInProgress, commitment.Status; e != g {
		t.Errorf("commitment.Status: expected '%v', got '%v'", e, g)
	}
}

func TestPrompter(t *testing.T) {
	var output bytes.Buffer

	prompter := NewPrompter(strings.NewReader("\nNew value\n-\ny\n"), &output)

	type testCase struct {
		Current  string
		Expected string
	}

	testCases := []testCase{
		{Current: "kept", Expected: "kept"},
		{Current: "old", Expected: "New value"},
		{Current: "cleared", Expected: ""},
	}

	for _, tc := range testCases {
		value, err := prompter.Ask("Field", tc.Current)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := tc.Expected, value; e != g {
			t.Errorf("value: expected '%v', got '%v'", e, g)
		}
	}

	confirmed, err := prompter.Confirm("Sure?")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !confirmed {
		t.Errorf("confirmed: expected true, got false")
	}

	if !strings.Contains(output.String(), "Field [kept]: ") {
		t.Errorf("unexpected prompt output: %s", output.String())
	}
}

func newTestContext(output string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String(ParamOutput, output, "")
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestFprint(t *testing.T) {
	value := struct {
		Name string `json:"name" yaml:"name"`
	}{Name: "Jane"}

	type testCase struct {
		Output   string
		Expected string
	}

	testCases := []testCase{
		{Output: "text", Expected: "Jane\n"},
		{Output: "json", Expected: "{\n  \"name\": \"Jane\"\n}\n"},
		{Output: "yaml", Expected: "name: Jane\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.Output, func(t *testing.T) {
			var buf bytes.Buffer

			err := Fprint(newTestContext(tc.Output), &buf, value, func(w io.Writer) error {
				_, err := io.WriteString(w, value.Name+"\n")
				return err
			})
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.Expected, buf.String(); e != g {
				t.Errorf("output: expected '%v', got '%v'", e, g)
			}
		})
	}

	if err := Fprint(newTestContext("xml"), &bytes.Buffer{}, value, nil); !errors.Is(err, ErrUnknownOutput) {
		t.Errorf("Fprint: expected ErrUnknownOutput, got '%v'", err)
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer

	table := NewTable(&buf, "id", "name")
	table.Row("1", "Jane Doe")
	table.Row("22", "Alan")

	if err := table.Flush(); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	expected := "ID  NAME\n1   Jane Doe\n22  Alan\n"

	if e, g := expected, buf.String(); e != g {
		t.Errorf("table: expected '%v', got '%v'", e, g)
	}
}

func TestParseLocation(t *testing.T) {
	type testCase struct {
		Location       string
		ExpectedScheme string
	}

	testCases := []testCase{
		{Location: "-", ExpectedScheme: "stdin"},
		{Location: "https://example.org/politician.yaml", ExpectedScheme: "https"},
		{Location: "testdata/politician.yaml", ExpectedScheme: "file"},
	}

	for _, tc := range testCases {
		t.Run(tc.Location, func(t *testing.T) {
			u, err := ParseLocation(tc.Location)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.ExpectedScheme, u.Scheme; e != g {
				t.Errorf("u.Scheme: expected '%v', got '%v'", e, g)
			}
		})
	}
}
