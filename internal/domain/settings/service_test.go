package settings

import (
	"context"
	"errors"
	"testing"
)

type testRepo struct {
	byUser map[string]Settings
}

func newTestRepo() *testRepo {
	return &testRepo{byUser: map[string]Settings{}}
}

func (r *testRepo) Get(ctx context.Context, userID string) (Settings, bool, error) {
	s, ok := r.byUser[userID]
	return s, ok, nil
}

func (r *testRepo) Put(ctx context.Context, userID string, s Settings) error {
	r.byUser[userID] = s
	return nil
}

func TestService_Get_ReturnsDefaultsWhenAbsent(t *testing.T) {
	svc := NewService(newTestRepo())

	got, err := svc.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Preferences.Language != "en" || got.Preferences.Theme != "system" {
		t.Fatalf("expected defaults, got %#v", got.Preferences)
	}
	if !got.Preferences.Notifications.Reminders {
		t.Fatalf("expected reminder notifications on by default")
	}
}

func TestService_Get_RejectsBlankUser(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Get(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Apply_MergesSectionWise(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	// Seed a profile.
	if _, err := svc.Apply(context.Background(), "user-1", Update{
		Profile: &Profile{Name: "Amina", Email: "amina@example.com"},
	}); err != nil {
		t.Fatalf("Apply #1 error: %v", err)
	}

	// Update only preferences; the profile must survive.
	got, err := svc.Apply(context.Background(), "user-1", Update{
		Preferences: &Preferences{Language: "ar", Country: "EG", Theme: "dark"},
	})
	if err != nil {
		t.Fatalf("Apply #2 error: %v", err)
	}

	if got.Profile.Name != "Amina" {
		t.Fatalf("expected profile preserved, got %#v", got.Profile)
	}
	if got.Preferences.Language != "ar" || got.Preferences.Country != "EG" {
		t.Fatalf("expected preferences replaced, got %#v", got.Preferences)
	}
	// Privacy was never sent: still the default.
	if !got.Privacy.Analytics {
		t.Fatalf("expected default privacy untouched, got %#v", got.Privacy)
	}

	stored := repo.byUser["user-1"]
	if stored.Profile.Name != "Amina" || stored.Preferences.Theme != "dark" {
		t.Fatalf("expected merged document persisted, got %#v", stored)
	}
}

func TestService_Apply_ReplacesWholeSection(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Apply(context.Background(), "user-1", Update{
		Profile: &Profile{Name: "Amina", Phone: "+201234567"},
	}); err != nil {
		t.Fatalf("Apply #1 error: %v", err)
	}

	// Sending a section replaces it in full, not field by field.
	got, err := svc.Apply(context.Background(), "user-1", Update{
		Profile: &Profile{Name: "Amina Hassan"},
	})
	if err != nil {
		t.Fatalf("Apply #2 error: %v", err)
	}
	if got.Profile.Phone != "" {
		t.Fatalf("expected phone cleared by section replace, got %q", got.Profile.Phone)
	}
}
