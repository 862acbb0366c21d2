package settings

import (
	"context"
	"maps"
	"slices"

	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/pkg/errors"
)

const DefaultProfile = "default"

var Defaults = Settings{
	Profiles: map[string]Profile{},
}

type Settings struct {
	Profiles map[string]Profile `json:"profiles"`
}

// Profile holds the connection details of a named deployment.
type Profile struct {
	Server         string `json:"server,omitempty"`
	LearningServer string `json:"learningServer,omitempty"`
	Email          string `json:"email,omitempty"`
	// Token is only filled when the operating system keyring is disabled
	Token string `json:"token,omitempty"`
}

type ProfileStore struct {
	store *Store[Settings]
}

func (s *ProfileStore) Names() ([]string, error) {
	settings, err := s.store.Get(false)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return slices.Sorted(maps.Keys(settings.Profiles)), nil
}

// Get returns the named profile. A missing profile is returned empty.
func (s *ProfileStore) Get(name string) (Profile, error) {
	settings, err := s.store.Get(false)
	if err != nil {
		return Profile{}, errors.WithStack(err)
	}

	return settings.Profiles[name], nil
}

func (s *ProfileStore) Update(name string, fn func(p *Profile)) error {
	settings, err := s.store.Get(true)
	if err != nil {
		return errors.WithStack(err)
	}

	profiles := make(map[string]Profile, len(settings.Profiles)+1)
	maps.Copy(profiles, settings.Profiles)

	profile := profiles[name]
	fn(&profile)
	profiles[name] = profile

	settings.Profiles = profiles

	if err := s.store.Save(settings); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// GetToken implements port.CredentialStore.
func (s *ProfileStore) GetToken(ctx context.Context, profile string) (string, error) {
	p, err := s.Get(profile)
	if err != nil {
		return "", errors.WithStack(err)
	}

	if p.Token == "" {
		return "", errors.WithStack(port.ErrNotLoggedIn)
	}

	return p.Token, nil
}

// SetToken implements port.CredentialStore.
func (s *ProfileStore) SetToken(ctx context.Context, profile string, token string) error {
	return s.Update(profile, func(p *Profile) {
		p.Token = token
	})
}

// DeleteToken implements port.CredentialStore.
func (s *ProfileStore) DeleteToken(ctx context.Context, profile string) error {
	return s.Update(profile, func(p *Profile) {
		p.Token = ""
	})
}

func NewProfileStore(store *Store[Settings]) *ProfileStore {
	return &ProfileStore{
		store: store,
	}
}

var _ port.CredentialStore = &ProfileStore{}
