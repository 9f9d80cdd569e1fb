package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"conferencecentral/internal/domain"
)

// sessionKeyRegex matches a canonical UUID string, the repository's key
// format. Only syntax is checked before the append; existence is not.
var sessionKeyRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

type wishlistService struct {
	profileRepo    domain.ProfileRepository
	sessionRepo    domain.SessionRepository
	contextTimeout time.Duration
}

// NewWishlistService creates a WishlistService with the given repositories.
func NewWishlistService(profileRepo domain.ProfileRepository, sessionRepo domain.SessionRepository, timeout time.Duration) domain.WishlistService {
	return &wishlistService{
		profileRepo:    profileRepo,
		sessionRepo:    sessionRepo,
		contextTimeout: timeout,
	}
}

func (s *wishlistService) AddToWishlist(ctx context.Context, userID, sessionKey string) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is required: %w", domain.ErrInvalidInput)
	}
	if !sessionKeyRegex.MatchString(sessionKey) {
		return nil, fmt.Errorf("malformed session key %q: %w", sessionKey, domain.ErrInvalidInput)
	}

	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("no profile exists for user: %w", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	// Appended unconditionally: duplicates are allowed and the key is not
	// checked against the store first.
	if err := s.profileRepo.AddFavorite(ctx, profile.ID, sessionKey); err != nil {
		return nil, fmt.Errorf("add favorite: %w", err)
	}

	// The reference is only resolved now, for the response; a dangling key
	// surfaces here, after the append.
	sess, err := s.sessionRepo.GetByID(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("session %s: %w", sessionKey, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

func (s *wishlistService) ListWishlist(ctx context.Context, userID string) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("no profile exists for user: %w", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if len(profile.FavoriteSessionIDs) == 0 {
		return []*domain.Session{}, nil
	}

	// Stored order; sessions that no longer exist are silently omitted by
	// the batch fetch.
	sessions, err := s.sessionRepo.GetByIDs(ctx, profile.FavoriteSessionIDs)
	if err != nil {
		return nil, fmt.Errorf("get favorite sessions: %w", err)
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}
	return sessions, nil
}
