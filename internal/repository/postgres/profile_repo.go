package postgres

import (
	"context"
	"database/sql"
	"errors"

	"conferencecentral/internal/domain"
)

type profileRepository struct {
	DB *sql.DB
}

func NewProfileRepository(db *sql.DB) domain.ProfileRepository {
	return &profileRepository{
		DB: db,
	}
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `
		SELECT id, display_name, main_email
		FROM profiles
		WHERE id = $1
	`
	p := &domain.Profile{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.DisplayName, &p.MainEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	// Insertion order, duplicates included.
	favQuery := `
		SELECT session_id
		FROM profile_favorites
		WHERE profile_id = $1
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, favQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var sessionID string
		if err := rows.Scan(&sessionID); err != nil {
			return nil, err
		}
		p.FavoriteSessionIDs = append(p.FavoriteSessionIDs, sessionID)
	}
	return p, rows.Err()
}

func (r *profileRepository) AddFavorite(ctx context.Context, profileID, sessionID string) error {
	query := `
		INSERT INTO profile_favorites (profile_id, session_id)
		VALUES ($1, $2)
	`
	_, err := r.DB.ExecContext(ctx, query, profileID, sessionID)
	return err
}
