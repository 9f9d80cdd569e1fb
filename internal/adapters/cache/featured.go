package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"conferencecentral/internal/domain"
)

type noticeCache struct {
	c *gocache.Cache
}

// NewNoticeCache returns an in-process NoticeCache. defaultTTL of zero or
// less means entries never expire, matching the best-effort, advisory role of
// the featured speaker notice.
func NewNoticeCache(defaultTTL time.Duration) domain.NoticeCache {
	if defaultTTL <= 0 {
		defaultTTL = gocache.NoExpiration
	}
	return &noticeCache{
		c: gocache.New(defaultTTL, 10*time.Minute),
	}
}

func (n *noticeCache) Get(key string) (*domain.FeaturedSpeakerNotice, bool) {
	v, found := n.c.Get(key)
	if !found {
		return nil, false
	}
	notice, ok := v.(*domain.FeaturedSpeakerNotice)
	if !ok {
		return nil, false
	}
	return notice, true
}

func (n *noticeCache) Set(key string, notice *domain.FeaturedSpeakerNotice, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	n.c.Set(key, notice, ttl)
	return nil
}
