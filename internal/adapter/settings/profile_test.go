package settings

import (
	"context"
	"os"
	"testing"

	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/pkg/errors"
)

func TestProfileStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	profiles := NewProfileStore(NewStoreAt(dir, Defaults))

	names, err := profiles.Names()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 0, len(names); e != g {
		t.Errorf("len(names): expected %d, got %d", e, g)
	}

	err = profiles.Update("staging", func(p *Profile) {
		p.Server = "https://admin.staging.example.org"
		p.Email = "staff@example.org"
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := profiles.SetToken(ctx, "staging", "staging-token"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := os.Stat(dir + "/settings.json"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	// Read back through a fresh store
	reloaded := NewProfileStore(NewStoreAt(dir, Defaults))

	profile, err := reloaded.Get("staging")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "https://admin.staging.example.org", profile.Server; e != g {
		t.Errorf("profile.Server: expected '%s', got '%s'", e, g)
	}

	if e, g := "staff@example.org", profile.Email; e != g {
		t.Errorf("profile.Email: expected '%s', got '%s'", e, g)
	}

	token, err := reloaded.GetToken(ctx, "staging")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "staging-token", token; e != g {
		t.Errorf("token: expected '%s', got '%s'", e, g)
	}

	if err := reloaded.DeleteToken(ctx, "staging"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := reloaded.GetToken(ctx, "staging"); !errors.Is(err, port.ErrNotLoggedIn) {
		t.Errorf("GetToken: expected port.ErrNotLoggedIn, got '%v'", err)
	}

	names, err = reloaded.Names()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(names); e != g {
		t.Fatalf("len(names): expected %d, got %d", e, g)
	}

	if e, g := "staging", names[0]; e != g {
		t.Errorf("names[0]: expected '%s', got '%s'", e, g)
	}
}
