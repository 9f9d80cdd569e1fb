package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"conferencecentral/internal/domain"
)

type conferenceService struct {
	conferenceRepo domain.ConferenceRepository
	contextTimeout time.Duration
}

// NewConferenceService creates a ConferenceService with the given repository.
func NewConferenceService(conferenceRepo domain.ConferenceRepository, timeout time.Duration) domain.ConferenceService {
	return &conferenceService{
		conferenceRepo: conferenceRepo,
		contextTimeout: timeout,
	}
}

func (s *conferenceService) CreateConference(ctx context.Context, userID, name string) (*domain.Conference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("conference name is required: %w", domain.ErrInvalidInput)
	}

	now := time.Now()
	conf := domain.NewConference(name, userID, now, now)
	if err := s.conferenceRepo.Create(ctx, conf); err != nil {
		return nil, fmt.Errorf("create conference: %w", err)
	}
	return conf, nil
}
