package postgres

import (
	"context"
	"database/sql"
	"errors"

	"conferencecentral/internal/domain"
)

type speakerRepository struct {
	DB *sql.DB
}

func NewSpeakerRepository(db *sql.DB) domain.SpeakerRepository {
	return &speakerRepository{
		DB: db,
	}
}

func (r *speakerRepository) Create(ctx context.Context, s *domain.Speaker) error {
	query := `
		INSERT INTO speakers (name, created_at)
		VALUES ($1, $2)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, s.Name, s.CreatedAt).Scan(&s.ID)
}

func (r *speakerRepository) GetByID(ctx context.Context, id string) (*domain.Speaker, error) {
	query := `
		SELECT id, name, created_at
		FROM speakers
		WHERE id = $1
	`
	s := &domain.Speaker{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *speakerRepository) GetByName(ctx context.Context, name string) (*domain.Speaker, error) {
	// Names are not unique; the oldest row wins so repeated lookups stay stable.
	query := `
		SELECT id, name, created_at
		FROM speakers
		WHERE name = $1
		ORDER BY created_at, id
		LIMIT 1
	`
	s := &domain.Speaker{}
	err := r.DB.QueryRowContext(ctx, query, name).Scan(&s.ID, &s.Name, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *speakerRepository) List(ctx context.Context) ([]*domain.Speaker, error) {
	query := `
		SELECT id, name, created_at
		FROM speakers
		ORDER BY created_at, id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSpeakers(rows)
}

func (r *speakerRepository) ListByName(ctx context.Context, name string) ([]*domain.Speaker, error) {
	query := `
		SELECT id, name, created_at
		FROM speakers
		WHERE name = $1
		ORDER BY created_at, id
	`
	rows, err := r.DB.QueryContext(ctx, query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSpeakers(rows)
}

func scanSpeakers(rows *sql.Rows) ([]*domain.Speaker, error) {
	var speakers []*domain.Speaker
	for rows.Next() {
		s := &domain.Speaker{}
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		speakers = append(speakers, s)
	}
	return speakers, rows.Err()
}
