package domain

import (
	"context"
	"time"
)

// UndefinedSpeakerName is the display name of the sentinel speaker that
// sessions fall back to when no speaker is given. The record must be seeded
// in the store; its absence is a configuration fault.
const UndefinedSpeakerName = "Undefined"

// Speaker represents a speaker that sessions reference. Names are not
// required to be unique.
// swagger:model Speaker
type Speaker struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSpeaker returns a new Speaker with the given name. ID is set by the
// repository on create.
func NewSpeaker(name string, createdAt time.Time) *Speaker {
	return &Speaker{
		Name:      name,
		CreatedAt: createdAt,
	}
}

// SpeakerForm is the outward representation of a speaker.
// swagger:model SpeakerForm
type SpeakerForm struct {
	Name       string `json:"name"`
	WebsafeKey string `json:"websafe_key"`
}

// NewSpeakerForm maps a Speaker to its outward form.
func NewSpeakerForm(s *Speaker) *SpeakerForm {
	return &SpeakerForm{
		Name:       s.Name,
		WebsafeKey: s.ID,
	}
}

// NewSpeakerForms maps a slice of speakers, preserving order.
func NewSpeakerForms(speakers []*Speaker) []*SpeakerForm {
	forms := make([]*SpeakerForm, 0, len(speakers))
	for _, s := range speakers {
		forms = append(forms, NewSpeakerForm(s))
	}
	return forms
}

// SpeakerRepository defines the interface for speaker storage.
type SpeakerRepository interface {
	Create(ctx context.Context, speaker *Speaker) error
	GetByID(ctx context.Context, id string) (*Speaker, error)
	// GetByName returns the oldest speaker with the given display name.
	// Names are not unique; first match wins.
	GetByName(ctx context.Context, name string) (*Speaker, error)
	List(ctx context.Context) ([]*Speaker, error)
	ListByName(ctx context.Context, name string) ([]*Speaker, error)
}

// SpeakerService defines speaker registration and lookup.
type SpeakerService interface {
	CreateSpeaker(ctx context.Context, userID, name string) (*Speaker, error)
	// QuerySpeakers returns all speakers when name is empty, otherwise the
	// speakers whose display name matches exactly.
	QuerySpeakers(ctx context.Context, name string) ([]*Speaker, error)
}
