package domain

import (
	"context"
	"time"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// EventCreatedEmailData holds data for the event-created notification sent
// to the operations address.
type EventCreatedEmailData struct {
	EventName string
	EventDate time.Time
	Price     float64
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendEventCreated(ctx context.Context, data *EventCreatedEmailData) error
}
