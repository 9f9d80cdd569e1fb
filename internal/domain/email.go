package domain

import "context"

// FeaturedSpeakerEmailData carries the fields for the organizer's featured
// speaker notice email.
type FeaturedSpeakerEmailData struct {
	OrganizerEmail string
	ConferenceName string
	SpeakerName    string
	SessionNames   []string
}

// Mailer sends a single email message.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailService defines the application-facing email operations.
type EmailService interface {
	SendFeaturedSpeakerNotice(ctx context.Context, data *FeaturedSpeakerEmailData) error
}
