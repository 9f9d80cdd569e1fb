package cache

import (
	"testing"
	"time"

	"conferencecentral/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoticeCache(t *testing.T) {
	notice := &domain.FeaturedSpeakerNotice{
		SpeakerName:  "Alice",
		SessionNames: []string{"Keynote", "Panel"},
	}

	t.Run("set then get", func(t *testing.T) {
		c := NewNoticeCache(0)
		require.NoError(t, c.Set(domain.FeaturedSpeakerKey, notice, 0))
		got, ok := c.Get(domain.FeaturedSpeakerKey)
		require.True(t, ok)
		assert.Equal(t, notice, got)
	})

	t.Run("miss", func(t *testing.T) {
		c := NewNoticeCache(0)
		_, ok := c.Get(domain.FeaturedSpeakerKey)
		assert.False(t, ok)
	})

	t.Run("overwrite replaces the notice", func(t *testing.T) {
		c := NewNoticeCache(0)
		require.NoError(t, c.Set(domain.FeaturedSpeakerKey, notice, 0))
		later := &domain.FeaturedSpeakerNotice{SpeakerName: "Bob", SessionNames: []string{"Q&A", "Demo"}}
		require.NoError(t, c.Set(domain.FeaturedSpeakerKey, later, 0))
		got, ok := c.Get(domain.FeaturedSpeakerKey)
		require.True(t, ok)
		assert.Equal(t, "Bob", got.SpeakerName)
	})

	t.Run("entry expires after its ttl", func(t *testing.T) {
		c := NewNoticeCache(0)
		require.NoError(t, c.Set(domain.FeaturedSpeakerKey, notice, 10*time.Millisecond))
		time.Sleep(30 * time.Millisecond)
		_, ok := c.Get(domain.FeaturedSpeakerKey)
		assert.False(t, ok)
	})
}
