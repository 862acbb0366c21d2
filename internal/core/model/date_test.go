package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestDateJSON(t *testing.T) {
	type testCase struct {
		Raw      string
		Expected string
	}

	testCases := []testCase{
		{Raw: `"2024-03-15"`, Expected: "2024-03-15"},
		{Raw: `"2024-03-15T10:30:00Z"`, Expected: "2024-03-15"},
		{Raw: `null`, Expected: ""},
		{Raw: `""`, Expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.Raw, func(t *testing.T) {
			var d Date
			if err := json.Unmarshal([]byte(tc.Raw), &d); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.Expected, d.String(); e != g {
				t.Errorf("d.String(): expected '%s', got '%s'", e, g)
			}
		})
	}
}

func TestDateMarshalZero(t *testing.T) {
	data, err := json.Marshal(struct {
		Start Date `json:"start"`
		End   Date `json:"end"`
	}{
		End: NewDate(2025, time.January, 2),
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := `{"start":null,"end":"2025-01-02"}`, string(data); e != g {
		t.Errorf("json: expected '%s', got '%s'", e, g)
	}
}

func TestParseDateInvalid(t *testing.T) {
	if _, err := ParseDate("15/03/2024"); err == nil {
		t.Errorf("expected an error, got nil")
	}
}
