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

func TestSpeakerRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		speaker *domain.Speaker
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name:    "success",
			speaker: &domain.Speaker{Name: "Alice", CreatedAt: createdAt},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO speakers`).
					WithArgs("Alice", createdAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("spk-uuid-1"))
			},
			wantID: "spk-uuid-1",
		},
		{
			name:    "db error",
			speaker: &domain.Speaker{Name: "Alice", CreatedAt: createdAt},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO speakers`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewSpeakerRepository(db)
			err = repo.Create(ctx, tt.speaker)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.speaker.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSpeakerRepository_GetByName(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("oldest row wins", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`ORDER BY created_at, id\s+LIMIT 1`).
			WithArgs("Alice").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
				AddRow("spk-1", "Alice", createdAt))

		repo := NewSpeakerRepository(db)
		s, err := repo.GetByName(ctx, "Alice")
		require.NoError(t, err)
		require.Equal(t, "spk-1", s.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found maps to ErrNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM speakers`).
			WithArgs("Nobody").
			WillReturnError(sql.ErrNoRows)

		repo := NewSpeakerRepository(db)
		_, err = repo.GetByName(ctx, "Nobody")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSpeakerRepository_ListByName(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`WHERE name = \$1`).
		WithArgs("Alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow("spk-1", "Alice", createdAt).
			AddRow("spk-3", "Alice", createdAt.Add(time.Hour)))

	repo := NewSpeakerRepository(db)
	speakers, err := repo.ListByName(ctx, "Alice")
	require.NoError(t, err)
	require.Len(t, speakers, 2)
	require.Equal(t, "spk-1", speakers[0].ID)
	require.Equal(t, "spk-3", speakers[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
