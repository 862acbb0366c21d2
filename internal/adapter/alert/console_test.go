package alert

import (
	"bytes"
	"context"
	"testing"

	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/bornholm/civicadmin/internal/core/service"
	"github.com/bornholm/civicadmin/internal/core/validate"
	"github.com/pkg/errors"
)

func TestConsole(t *testing.T) {
	type testCase struct {
		Name            string
		Run             func(ctx context.Context, console *Console)
		ExpectedSuccess string
		ExpectedFailure string
	}

	testCases := []testCase{
		{
			Name: "Success",
			Run: func(ctx context.Context, console *Console) {
				console.Success(ctx, "Create politician", "Amina Okafor was created.")
			},
			ExpectedSuccess: "✓ Create politician: Amina Okafor was created.\n",
		},
		{
			Name: "SuccessWithoutMessage",
			Run: func(ctx context.Context, console *Console) {
				console.Success(ctx, "Delete politician", "")
			},
			ExpectedSuccess: "✓ Delete politician\n",
		},
		{
			Name: "GenericFailure",
			Run: func(ctx context.Context, console *Console) {
				console.Failure(ctx, "Load politicians", errors.New("dial tcp: connection refused"))
			},
			ExpectedFailure: "✗ Load politicians: " + service.MessageGeneric + "\n",
		},
		{
			Name: "ExpiredSession",
			Run: func(ctx context.Context, console *Console) {
				console.Failure(ctx, "Load politicians", errors.WithStack(port.ErrUnauthorized))
			},
			ExpectedFailure: "✗ Load politicians: " + service.MessageSessionExpired + "\n",
		},
		{
			Name: "ValidationFailure",
			Run: func(ctx context.Context, console *Console) {
				console.Failure(ctx, "Create politician", validate.Errors{
					validate.FieldName: "is required",
				})
			},
			ExpectedFailure: "✗ Create politician: name: is required\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var success, failure bytes.Buffer

			console := NewConsole(&success, &failure)

			tc.Run(context.Background(), console)

			if e, g := tc.ExpectedSuccess, success.String(); e != g {
				t.Errorf("success output: expected '%s', got '%s'", e, g)
			}

			if e, g := tc.ExpectedFailure, failure.String(); e != g {
				t.Errorf("failure output: expected '%s', got '%s'", e, g)
			}
		})
	}
}
