package services

import (
	"context"
	"fmt"
	"log"

	"globoticket/internal/domain"
)

type emailService struct {
	mailer        domain.Mailer
	renderer      domain.EmailTemplateRenderer
	notifyAddress string
}

// NewEmailService returns an EmailService that renders templates and sends
// them through the given Mailer. notifyAddress is the fixed operations inbox
// for event notifications.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, notifyAddress string) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, notifyAddress: notifyAddress}
}

// SendEventCreated sends the event-created notification using the
// "event_created" template and the given data.
func (s *emailService) SendEventCreated(ctx context.Context, data *domain.EventCreatedEmailData) error {
	if data == nil {
		return fmt.Errorf("event created data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("event_created", data)
	if err != nil {
		return fmt.Errorf("failed to render event_created template: %w", err)
	}
	if err := s.mailer.Send(ctx, s.notifyAddress, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send event created email: %w", err)
	}
	log.Printf("[EMAIL] Event created notification sent to %s", s.notifyAddress)
	return nil
}
