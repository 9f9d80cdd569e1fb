package domain

import (
	"context"
	"time"
)

// Session type enumerants, stored as strings.
const (
	SessionTypeNotSpecified = "NOT_SPECIFIED"
	SessionTypeWorkshop     = "WORKSHOP"
	SessionTypeLecture      = "LECTURE"
)

// ValidSessionType reports whether s is a recognized session type enumerant.
func ValidSessionType(s string) bool {
	switch s {
	case SessionTypeNotSpecified, SessionTypeWorkshop, SessionTypeLecture:
		return true
	}
	return false
}

// Textual formats used on the wire for session date and start time.
const (
	SessionDateFormat      = "2006-01-02"
	SessionStartTimeFormat = "15:04"
)

// Session represents a talk or workshop. It belongs to exactly one conference
// and references exactly one speaker.
type Session struct {
	ID              string     `json:"id"`
	ConferenceID    string     `json:"conference_id"`
	SpeakerID       string     `json:"speaker_id"`
	SpeakerName     string     `json:"speaker_name"` // populated by query joins
	Name            string     `json:"name"`
	Highlights      string     `json:"highlights"`
	DurationMinutes int        `json:"duration_minutes"`
	SessionType     string     `json:"session_type"`
	Date            *time.Time `json:"date"`
	StartTime       *time.Time `json:"start_time"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// SessionDraft is the caller-supplied input for creating a session. Date and
// StartTime are textual, in SessionDateFormat and SessionStartTimeFormat.
type SessionDraft struct {
	Name            string
	Highlights      string
	SpeakerName     string
	DurationMinutes int
	SessionType     string
	Date            string
	StartTime       string
}

// SessionForm is the outward representation of a session. Its shaping rules
// are a compatibility contract: date and start time render textually, speaker
// renders as the referenced speaker's display name, and websafe_key carries
// the session's own key.
// swagger:model SessionForm
type SessionForm struct {
	Name          string `json:"name"`
	Highlights    string `json:"highlights,omitempty"`
	Speaker       string `json:"speaker"`
	Duration      int    `json:"duration,omitempty"`
	TypeOfSession string `json:"type_of_session"`
	Date          string `json:"date,omitempty"`
	StartTime     string `json:"start_time,omitempty"`
	WebsafeKey    string `json:"websafe_key"`
}

// NewSessionForm maps a Session to its outward form. The mapping is explicit
// and static; no field is derived by reflection.
func NewSessionForm(s *Session) *SessionForm {
	f := &SessionForm{
		Name:          s.Name,
		Highlights:    s.Highlights,
		Speaker:       s.SpeakerName,
		Duration:      s.DurationMinutes,
		TypeOfSession: s.SessionType,
		WebsafeKey:    s.ID,
	}
	if s.Date != nil {
		f.Date = s.Date.Format(SessionDateFormat)
	}
	if s.StartTime != nil {
		f.StartTime = s.StartTime.Format(SessionStartTimeFormat)
	}
	return f
}

// NewSessionForms maps a slice of sessions, preserving order.
func NewSessionForms(sessions []*Session) []*SessionForm {
	forms := make([]*SessionForm, 0, len(sessions))
	for _, s := range sessions {
		forms = append(forms, NewSessionForm(s))
	}
	return forms
}

// SessionRepository defines the interface for session storage. List queries
// populate SpeakerName by joining the speakers table.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	// GetByIDs batch-fetches sessions, preserving the requested order and
	// duplicates. Keys that no longer resolve are omitted, not errors.
	GetByIDs(ctx context.Context, ids []string) ([]*Session, error)
	ListByConference(ctx context.Context, conferenceID string) ([]*Session, error)
	ListByConferenceAndType(ctx context.Context, conferenceID, sessionType string) ([]*Session, error)
	ListByConferenceAndSpeaker(ctx context.Context, conferenceID, speakerID string) ([]*Session, error)
	ListBySpeaker(ctx context.Context, speakerID string) ([]*Session, error)
	// ListStartingAtOrAfter returns sessions across all conferences whose
	// start time is set and at or after the given time of day ("HH:MM").
	ListStartingAtOrAfter(ctx context.Context, timeOfDay string) ([]*Session, error)
}

// SessionService defines the session creation workflow and its derived
// read queries.
type SessionService interface {
	CreateSession(ctx context.Context, userID, conferenceID string, draft *SessionDraft) (*Session, error)
	// SessionsBySpeaker resolves the speaker by display name first and falls
	// back to the key when the name is absent or unknown.
	SessionsBySpeaker(ctx context.Context, speakerName, speakerKey string) ([]*Session, error)
	SessionsByConference(ctx context.Context, conferenceID string) ([]*Session, error)
	SessionsByType(ctx context.Context, conferenceID, sessionType string) ([]*Session, error)
	NonWorkshopEveningSessions(ctx context.Context) ([]*Session, error)
	FeaturedSpeaker(ctx context.Context) (*FeaturedSpeakerNotice, error)
}
