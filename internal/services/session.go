package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"conferencecentral/internal/domain"
)

// eveningCutoff is the start-of-evening boundary for the non-workshop
// evening query.
const eveningCutoff = "19:00"

type sessionService struct {
	conferenceRepo domain.ConferenceRepository
	speakerRepo    domain.SpeakerRepository
	sessionRepo    domain.SessionRepository
	profileRepo    domain.ProfileRepository
	cache          domain.NoticeCache
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewSessionService creates a SessionService with the given repositories, the
// ephemeral notice cache, and an optional email service for organizer
// notifications.
func NewSessionService(
	conferenceRepo domain.ConferenceRepository,
	speakerRepo domain.SpeakerRepository,
	sessionRepo domain.SessionRepository,
	profileRepo domain.ProfileRepository,
	cache domain.NoticeCache,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.SessionService {
	return &sessionService{
		conferenceRepo: conferenceRepo,
		speakerRepo:    speakerRepo,
		sessionRepo:    sessionRepo,
		profileRepo:    profileRepo,
		cache:          cache,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, userID, conferenceID string, draft *domain.SessionDraft) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if draft == nil || draft.Name == "" || conferenceID == "" {
		return nil, fmt.Errorf("session name and conference key are required: %w", domain.ErrInvalidInput)
	}

	conf, err := s.conferenceRepo.GetByID(ctx, conferenceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("unknown conference: %w", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}
	if conf.OrganizerUserID != userID {
		return nil, fmt.Errorf("sessions can only be added to your own conferences: %w", domain.ErrForbidden)
	}

	speaker, err := s.resolveSpeaker(ctx, draft.SpeakerName)
	if err != nil {
		return nil, err
	}

	sess := &domain.Session{
		ConferenceID:    conf.ID,
		SpeakerID:       speaker.ID,
		SpeakerName:     speaker.Name,
		Name:            draft.Name,
		Highlights:      draft.Highlights,
		DurationMinutes: draft.DurationMinutes,
	}
	if draft.Date != "" {
		d, err := time.Parse(domain.SessionDateFormat, draft.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", draft.Date, domain.ErrInvalidInput)
		}
		sess.Date = &d
	}
	if draft.StartTime != "" {
		t, err := time.Parse(domain.SessionStartTimeFormat, draft.StartTime)
		if err != nil {
			return nil, fmt.Errorf("invalid start time %q, want HH:MM: %w", draft.StartTime, domain.ErrInvalidInput)
		}
		sess.StartTime = &t
	}
	sessionType := draft.SessionType
	if sessionType == "" {
		sessionType = domain.SessionTypeNotSpecified
	}
	if !domain.ValidSessionType(sessionType) {
		return nil, fmt.Errorf("invalid session type %q: %w", draft.SessionType, domain.ErrInvalidInput)
	}
	sess.SessionType = sessionType

	// The speaker's existing sessions at this conference, captured before the
	// new one is persisted. Two concurrent creations for the same speaker can
	// each observe a stale set; the last cache write wins. Accepted.
	existing, err := s.sessionRepo.ListByConferenceAndSpeaker(ctx, conf.ID, speaker.ID)
	if err != nil {
		return nil, fmt.Errorf("list sessions for speaker: %w", err)
	}

	now := time.Now()
	sess.CreatedAt = now
	sess.UpdatedAt = now
	if err := s.sessionRepo.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	// Any existing session means the speaker now has at least two.
	if len(existing) > 0 {
		s.publishFeaturedSpeaker(ctx, conf, speaker, existing, sess.Name)
	}
	return sess, nil
}

func (s *sessionService) resolveSpeaker(ctx context.Context, name string) (*domain.Speaker, error) {
	if name == "" {
		sp, err := s.speakerRepo.GetByName(ctx, domain.UndefinedSpeakerName)
		if err != nil {
			// The store must be seeded with the sentinel record; this is a
			// configuration fault, not a caller error.
			return nil, fmt.Errorf("sentinel speaker %q missing from store: %v", domain.UndefinedSpeakerName, err)
		}
		return sp, nil
	}
	sp, err := s.speakerRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("unknown speaker %q: %w", name, domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("get speaker: %w", err)
	}
	return sp, nil
}

// publishFeaturedSpeaker overwrites the featured speaker notice and emails the
// conference organizer. Both are best-effort: the persisted session is already
// authoritative, so failures are logged and never surfaced.
func (s *sessionService) publishFeaturedSpeaker(ctx context.Context, conf *domain.Conference, speaker *domain.Speaker, existing []*domain.Session, newSessionName string) {
	names := make([]string, 0, len(existing)+1)
	for _, e := range existing {
		names = append(names, e.Name)
	}
	names = append(names, newSessionName)

	notice := &domain.FeaturedSpeakerNotice{
		SpeakerName:  speaker.Name,
		SessionNames: names,
	}
	if err := s.cache.Set(domain.FeaturedSpeakerKey, notice, 0); err != nil {
		s.logger.Warn("featured speaker cache write failed", "speaker", speaker.Name, "err", err)
	}

	if s.emailService == nil {
		return
	}
	organizer, err := s.profileRepo.GetByID(ctx, conf.OrganizerUserID)
	if err != nil {
		s.logger.Warn("featured speaker email skipped, organizer profile lookup failed",
			"conference", conf.ID, "err", err)
		return
	}
	data := &domain.FeaturedSpeakerEmailData{
		OrganizerEmail: organizer.MainEmail,
		ConferenceName: conf.Name,
		SpeakerName:    speaker.Name,
		SessionNames:   names,
	}
	if err := s.emailService.SendFeaturedSpeakerNotice(ctx, data); err != nil {
		s.logger.Warn("featured speaker email failed", "conference", conf.ID, "err", err)
	}
}

func (s *sessionService) SessionsBySpeaker(ctx context.Context, speakerName, speakerKey string) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if speakerName == "" && speakerKey == "" {
		return nil, fmt.Errorf("speaker name or key is required: %w", domain.ErrInvalidInput)
	}
	var speakerID string
	if speakerName != "" {
		sp, err := s.speakerRepo.GetByName(ctx, speakerName)
		if err == nil {
			speakerID = sp.ID
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get speaker: %w", err)
		}
	}
	// Fall through to the key when the name was absent or not found.
	if speakerID == "" && speakerKey != "" {
		speakerID = speakerKey
	}
	if speakerID == "" {
		return nil, fmt.Errorf("unknown speaker name and no key given: %w", domain.ErrInvalidInput)
	}

	sessions, err := s.sessionRepo.ListBySpeaker(ctx, speakerID)
	if err != nil {
		return nil, fmt.Errorf("list sessions by speaker: %w", err)
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}
	return sessions, nil
}

func (s *sessionService) SessionsByConference(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if conferenceID == "" {
		return nil, fmt.Errorf("conference key is required: %w", domain.ErrInvalidInput)
	}
	sessions, err := s.sessionRepo.ListByConference(ctx, conferenceID)
	if err != nil {
		return nil, fmt.Errorf("list sessions by conference: %w", err)
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}
	return sessions, nil
}

func (s *sessionService) SessionsByType(ctx context.Context, conferenceID, sessionType string) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if conferenceID == "" || sessionType == "" {
		return nil, fmt.Errorf("conference key and session type are required: %w", domain.ErrInvalidInput)
	}
	// Validated before any store access.
	if !domain.ValidSessionType(sessionType) {
		return nil, fmt.Errorf("invalid session type %q: %w", sessionType, domain.ErrInvalidInput)
	}
	sessions, err := s.sessionRepo.ListByConferenceAndType(ctx, conferenceID, sessionType)
	if err != nil {
		return nil, fmt.Errorf("list sessions by type: %w", err)
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}
	return sessions, nil
}

func (s *sessionService) NonWorkshopEveningSessions(ctx context.Context) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	// The store only takes one inequality; the workshop exclusion is applied
	// here instead.
	candidates, err := s.sessionRepo.ListStartingAtOrAfter(ctx, eveningCutoff)
	if err != nil {
		return nil, fmt.Errorf("list evening sessions: %w", err)
	}
	sessions := make([]*domain.Session, 0, len(candidates))
	for _, sess := range candidates {
		if sess.SessionType != domain.SessionTypeWorkshop {
			sessions = append(sessions, sess)
		}
	}
	return sessions, nil
}

func (s *sessionService) FeaturedSpeaker(ctx context.Context) (*domain.FeaturedSpeakerNotice, error) {
	notice, ok := s.cache.Get(domain.FeaturedSpeakerKey)
	if !ok {
		return nil, fmt.Errorf("no featured speaker notice: %w", domain.ErrNotFound)
	}
	return notice, nil
}
