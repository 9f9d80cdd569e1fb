package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"conferencecentral/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestConferenceRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO conferences`).
		WithArgs("GopherCon", "user-1", now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("conf-uuid-1"))

	repo := NewConferenceRepository(db)
	conf := domain.NewConference("GopherCon", "user-1", now, now)
	require.NoError(t, repo.Create(ctx, conf))
	require.Equal(t, "conf-uuid-1", conf.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConferenceRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM conferences`).
			WithArgs("conf-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "organizer_user_id", "created_at", "updated_at"}).
				AddRow("conf-1", "GopherCon", "user-1", now, now))

		repo := NewConferenceRepository(db)
		conf, err := repo.GetByID(ctx, "conf-1")
		require.NoError(t, err)
		require.Equal(t, "GopherCon", conf.Name)
		require.Equal(t, "user-1", conf.OrganizerUserID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found maps to ErrNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM conferences`).
			WithArgs("conf-99").
			WillReturnError(sql.ErrNoRows)

		repo := NewConferenceRepository(db)
		_, err = repo.GetByID(ctx, "conf-99")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
