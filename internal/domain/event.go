package domain

import (
	"context"
	"time"
)

// Event represents a ticketed event.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Artist      string    `json:"artist,omitempty"`
	Date        time.Time `json:"date"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CategoryID  string    `json:"category_id,omitempty"`
	AuditFields
}

// Audit exposes the event's audit fields for save-time stamping.
func (e *Event) Audit() *AuditFields { return &e.AuditFields }

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	// ExistsWithNameAndDate reports whether a persisted event other than
	// excludeID already uses the given name and date. Pass an empty
	// excludeID when creating.
	ExistsWithNameAndDate(ctx context.Context, name string, date time.Time, excludeID string) (bool, error)
}

// CreateEventRequest carries every field of a new event.
type CreateEventRequest struct {
	Name        string    `json:"name"`
	Artist      string    `json:"artist,omitempty"`
	Date        time.Time `json:"date"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CategoryID  string    `json:"category_id,omitempty"`
}

// UpdateEventRequest replaces every descriptive field of an existing event.
// Updates are full-replace: fields left zero in the request end up zero on
// the entity.
type UpdateEventRequest struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Artist      string    `json:"artist,omitempty"`
	Date        time.Time `json:"date"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CategoryID  string    `json:"category_id,omitempty"`
}

// CreatedEvent is the view returned from a successful create.
type CreatedEvent struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// EventSummary is the list view of an event.
type EventSummary struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	ImageURL string    `json:"image_url,omitempty"`
}

// EventDetail is the full view of an event with its category embedded when
// the event is bound to one.
type EventDetail struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Artist      string           `json:"artist,omitempty"`
	Date        time.Time        `json:"date"`
	Price       float64          `json:"price"`
	Description string           `json:"description,omitempty"`
	ImageURL    string           `json:"image_url,omitempty"`
	Category    *CategorySummary `json:"category,omitempty"`
}

// EventService defines the command and query operations for events.
type EventService interface {
	CreateEvent(ctx context.Context, req *CreateEventRequest) (*CreatedEvent, error)
	UpdateEvent(ctx context.Context, req *UpdateEventRequest) (*EventDetail, error)
	DeleteEvent(ctx context.Context, id string) error
	GetEventDetail(ctx context.Context, id string) (*EventDetail, error)
	ListEvents(ctx context.Context) ([]*EventSummary, error)
}
