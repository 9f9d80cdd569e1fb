package services

import (
	"context"
	"fmt"
	"strings"

	"conferencecentral/internal/domain"
)

type emailService struct {
	mailer domain.Mailer
}

// NewEmailService creates an EmailService backed by the given mailer.
func NewEmailService(mailer domain.Mailer) domain.EmailService {
	return &emailService{mailer: mailer}
}

func (s *emailService) SendFeaturedSpeakerNotice(_ context.Context, data *domain.FeaturedSpeakerEmailData) error {
	if data.OrganizerEmail == "" {
		// Nothing to deliver to; not an error for a best-effort notice.
		return nil
	}
	subject := fmt.Sprintf("Featured speaker at %s: %s", data.ConferenceName, data.SpeakerName)
	text := fmt.Sprintf(
		"%s now has %d sessions at %s:\n\n%s\n",
		data.SpeakerName, len(data.SessionNames), data.ConferenceName,
		strings.Join(data.SessionNames, "\n"),
	)
	if err := s.mailer.Send(data.OrganizerEmail, subject, "", text); err != nil {
		return fmt.Errorf("send featured speaker notice: %w", err)
	}
	return nil
}
