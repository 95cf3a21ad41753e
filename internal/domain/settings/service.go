package settings

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, userID string) (Settings, error) {
	if strings.TrimSpace(userID) == "" {
		return Settings{}, ErrInvalidInput
	}
	stored, ok, err := s.repo.Get(ctx, userID)
	if err != nil {
		return Settings{}, err
	}
	if !ok {
		return Defaults(), nil
	}
	return stored, nil
}

// Update merges the provided sections into the stored document.
// Sections absent from the request stay untouched.
type Update struct {
	Profile     *Profile
	Preferences *Preferences
	Privacy     *Privacy
}

func (s *Service) Apply(ctx context.Context, userID string, up Update) (Settings, error) {
	current, err := s.Get(ctx, userID)
	if err != nil {
		return Settings{}, err
	}

	if up.Profile != nil {
		current.Profile = *up.Profile
	}
	if up.Preferences != nil {
		current.Preferences = *up.Preferences
	}
	if up.Privacy != nil {
		current.Privacy = *up.Privacy
	}

	if err := s.repo.Put(ctx, userID, current); err != nil {
		return Settings{}, err
	}
	return current, nil
}
