package workflow

import (
	"context"
	"slices"
	"strconv"
	"testing"

	"github.com/pkg/errors"
)

func TestRun(t *testing.T) {
	errDo := errors.New("create failed")
	errUndo := errors.New("delete failed")

	type testCase struct {
		Name               string
		FailAt             int
		FailUndo           bool
		ExpectedCalls      []string
		ExpectedStep       string
		ExpectedRolledBack bool
	}

	testCases := []testCase{
		{
			Name:          "AllStepsSucceed",
			FailAt:        -1,
			ExpectedCalls: []string{"do-0", "do-1", "do-2"},
		},
		{
			Name:               "ThirdStepFails",
			FailAt:             2,
			ExpectedCalls:      []string{"do-0", "do-1", "do-2", "undo-1", "undo-0"},
			ExpectedStep:       "step-2",
			ExpectedRolledBack: true,
		},
		{
			Name:               "FirstStepFails",
			FailAt:             0,
			ExpectedCalls:      []string{"do-0"},
			ExpectedStep:       "step-0",
			ExpectedRolledBack: true,
		},
		{
			Name:               "UndoFails",
			FailAt:             1,
			FailUndo:           true,
			ExpectedCalls:      []string{"do-0", "do-1", "undo-0"},
			ExpectedStep:       "step-1",
			ExpectedRolledBack: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			calls := make([]string, 0)

			steps := make([]Step, 0, 3)
			for idx := range 3 {
				steps = append(steps, Step{
					Name: "step-" + strconv.Itoa(idx),
					Do: func(ctx context.Context) error {
						calls = append(calls, "do-"+strconv.Itoa(idx))
						if idx == tc.FailAt {
							return errDo
						}
						return nil
					},
					Undo: func(ctx context.Context) error {
						calls = append(calls, "undo-"+strconv.Itoa(idx))
						if tc.FailUndo {
							return errUndo
						}
						return nil
					},
				})
			}

			err := Run(context.Background(), steps...)

			if !slices.Equal(tc.ExpectedCalls, calls) {
				t.Errorf("calls: expected %v, got %v", tc.ExpectedCalls, calls)
			}

			if tc.FailAt < 0 {
				if err != nil {
					t.Fatalf("%+v", errors.WithStack(err))
				}
				return
			}

			if !errors.Is(err, errDo) {
				t.Errorf("err: expected step error, got '%v'", err)
			}

			var stepErr *StepError
			if !errors.As(err, &stepErr) {
				t.Fatalf("errors.As(err, *StepError): expected true, got false")
			}

			if e, g := tc.ExpectedStep, stepErr.Step; e != g {
				t.Errorf("stepErr.Step: expected '%s', got '%s'", e, g)
			}

			if e, g := tc.ExpectedRolledBack, stepErr.RolledBack(); e != g {
				t.Errorf("stepErr.RolledBack(): expected %v, got %v", e, g)
			}
		})
	}
}

func TestRunWithoutUndo(t *testing.T) {
	errDo := errors.New("save quiz failed")

	created := false

	err := Run(context.Background(),
		Step{
			Name: "create",
			Do: func(ctx context.Context) error {
				created = true
				return nil
			},
		},
		Step{
			Name: "save",
			Do: func(ctx context.Context) error {
				return errDo
			},
		},
	)

	if !created {
		t.Errorf("created: expected true, got false")
	}

	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("errors.As(err, *StepError): expected true, got false")
	}

	if e, g := "step 'save' failed: save quiz failed", stepErr.Error(); e != g {
		t.Errorf("stepErr.Error(): expected '%s', got '%s'", e, g)
	}
}
