package domain

import "time"

// FeaturedSpeakerKey is the fixed cache key the featured speaker notice is
// published under. Each derivation overwrites the previous notice.
const FeaturedSpeakerKey = "featured_speaker"

// FeaturedSpeakerNotice announces that a speaker has two or more sessions at
// the same conference. It lives only in the ephemeral cache; absence means
// there is no current notice.
// swagger:model FeaturedSpeakerNotice
type FeaturedSpeakerNotice struct {
	SpeakerName  string   `json:"speaker_name"`
	SessionNames []string `json:"session_names"`
}

// NoticeCache is a process-wide best-effort cache with no durability
// guarantee. A ttl of zero or less means the entry never expires.
type NoticeCache interface {
	Get(key string) (*FeaturedSpeakerNotice, bool)
	Set(key string, notice *FeaturedSpeakerNotice, ttl time.Duration) error
}
