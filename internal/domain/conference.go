package domain

import (
	"context"
	"time"
)

// Conference represents a conference that sessions are attached to.
// swagger:model Conference
type Conference struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	OrganizerUserID string    `json:"organizer_user_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewConference returns a new Conference with the given fields. ID is set by
// the repository on create.
func NewConference(name, organizerUserID string, createdAt, updatedAt time.Time) *Conference {
	return &Conference{
		Name:            name,
		OrganizerUserID: organizerUserID,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}

// ConferenceRepository defines the interface for conference storage.
type ConferenceRepository interface {
	Create(ctx context.Context, conference *Conference) error
	GetByID(ctx context.Context, id string) (*Conference, error)
}

// ConferenceService defines the business logic for conferences. Only creation
// is in scope; sessions are managed by SessionService.
type ConferenceService interface {
	CreateConference(ctx context.Context, userID, name string) (*Conference, error)
}
