package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"conferencecentral/internal/domain"
)

// sessionColumns is the select list shared by all session queries. Every read
// joins speakers so the outward form can render the speaker's display name.
const sessionColumns = `
	s.id, s.conference_id, s.speaker_id, sp.name, s.name, s.highlights,
	s.duration_minutes, s.session_type, s.date, s.start_time, s.created_at, s.updated_at
`

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{
		DB: db,
	}
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO sessions (conference_id, speaker_id, name, highlights, duration_minutes, session_type, date, start_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		s.ConferenceID, s.SpeakerID, s.Name, s.Highlights, s.DurationMinutes,
		s.SessionType, s.Date, s.StartTime, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions s
		INNER JOIN speakers sp ON sp.id = s.speaker_id
		WHERE s.id = $1
	`
	row := r.DB.QueryRowContext(ctx, query, id)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Session, error) {
	if len(ids) == 0 {
		return []*domain.Session{}, nil
	}
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions s
		INNER JOIN speakers sp ON sp.id = s.speaker_id
		WHERE s.id = ANY($1)
	`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	fetched, err := scanSessions(rows)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.Session, len(fetched))
	for _, s := range fetched {
		byID[s.ID] = s
	}
	// Requested order, duplicates included; vanished keys are dropped.
	result := make([]*domain.Session, 0, len(ids))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *sessionRepository) ListByConference(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions s
		INNER JOIN speakers sp ON sp.id = s.speaker_id
		WHERE s.conference_id = $1
		ORDER BY s.created_at, s.id
	`
	return r.list(ctx, query, conferenceID)
}

func (r *sessionRepository) ListByConferenceAndType(ctx context.Context, conferenceID, sessionType string) ([]*domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions s
		INNER JOIN speakers sp ON sp.id = s.speaker_id
		WHERE s.conference_id = $1 AND s.session_type = $2
		ORDER BY s.created_at, s.id
	`
	return r.list(ctx, query, conferenceID, sessionType)
}

func (r *sessionRepository) ListByConferenceAndSpeaker(ctx context.Context, conferenceID, speakerID string) ([]*domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions s
		INNER JOIN speakers sp ON sp.id = s.speaker_id
		WHERE s.conference_id = $1 AND s.speaker_id = $2
		ORDER BY s.created_at, s.id
	`
	return r.list(ctx, query, conferenceID, speakerID)
}

func (r *sessionRepository) ListBySpeaker(ctx context.Context, speakerID string) ([]*domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions s
		INNER JOIN speakers sp ON sp.id = s.speaker_id
		WHERE s.speaker_id = $1
		ORDER BY s.created_at, s.id
	`
	return r.list(ctx, query, speakerID)
}

func (r *sessionRepository) ListStartingAtOrAfter(ctx context.Context, timeOfDay string) ([]*domain.Session, error) {
	// Only the start time inequality is pushed to the store; callers apply
	// any further filtering on other properties.
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions s
		INNER JOIN speakers sp ON sp.id = s.speaker_id
		WHERE s.start_time IS NOT NULL AND s.start_time >= $1::time
		ORDER BY s.start_time, s.id
	`
	return r.list(ctx, query, timeOfDay)
}

func (r *sessionRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Session, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSessions(rows)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSession(row rowScanner) (*domain.Session, error) {
	s := &domain.Session{}
	var dateNull, startNull sql.NullTime
	err := row.Scan(
		&s.ID, &s.ConferenceID, &s.SpeakerID, &s.SpeakerName, &s.Name, &s.Highlights,
		&s.DurationMinutes, &s.SessionType, &dateNull, &startNull, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if dateNull.Valid {
		s.Date = &dateNull.Time
	}
	if startNull.Valid {
		s.StartTime = &startNull.Time
	}
	return s, nil
}

func scanSessions(rows *sql.Rows) ([]*domain.Session, error) {
	var sessions []*domain.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
