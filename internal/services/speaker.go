package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"conferencecentral/internal/domain"
)

type speakerService struct {
	speakerRepo    domain.SpeakerRepository
	contextTimeout time.Duration
}

// NewSpeakerService creates a SpeakerService with the given repository.
func NewSpeakerService(speakerRepo domain.SpeakerRepository, timeout time.Duration) domain.SpeakerService {
	return &speakerService{
		speakerRepo:    speakerRepo,
		contextTimeout: timeout,
	}
}

func (s *speakerService) CreateSpeaker(ctx context.Context, userID, name string) (*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("speaker name is required: %w", domain.ErrInvalidInput)
	}

	// Uniqueness is deliberately not enforced; name-based session lookups
	// resolve duplicates first-match-wins.
	speaker := domain.NewSpeaker(name, time.Now())
	if err := s.speakerRepo.Create(ctx, speaker); err != nil {
		return nil, fmt.Errorf("create speaker: %w", err)
	}
	return speaker, nil
}

func (s *speakerService) QuerySpeakers(ctx context.Context, name string) ([]*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var (
		speakers []*domain.Speaker
		err      error
	)
	if name == "" {
		speakers, err = s.speakerRepo.List(ctx)
	} else {
		speakers, err = s.speakerRepo.ListByName(ctx, name)
	}
	if err != nil {
		return nil, fmt.Errorf("list speakers: %w", err)
	}
	if speakers == nil {
		speakers = []*domain.Speaker{}
	}
	return speakers, nil
}
