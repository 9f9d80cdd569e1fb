package services

import (
	"context"
	"testing"
	"time"

	"conferencecentral/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateConference(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := newFakeConferenceRepo()
		svc := NewConferenceService(repo, 5*time.Second)

		conf, err := svc.CreateConference(ctx, "user-1", "GopherCon")
		require.NoError(t, err)
		assert.NotEmpty(t, conf.ID)
		assert.Equal(t, "GopherCon", conf.Name)
		assert.Equal(t, "user-1", conf.OrganizerUserID)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		svc := NewConferenceService(newFakeConferenceRepo(), 5*time.Second)
		_, err := svc.CreateConference(ctx, "", "GopherCon")
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("blank name", func(t *testing.T) {
		svc := NewConferenceService(newFakeConferenceRepo(), 5*time.Second)
		_, err := svc.CreateConference(ctx, "user-1", " ")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
