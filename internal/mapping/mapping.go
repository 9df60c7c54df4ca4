// Package mapping holds the pure projections between request objects,
// entities, and view objects. No business logic lives here; absent
// collaborators map to absent target fields, never to an error.
package mapping

import "globoticket/internal/domain"

// EventFromCreateRequest projects a create request onto a new, unsaved event.
// Identity and audit fields are left unset; the repository assigns them.
func EventFromCreateRequest(req *domain.CreateEventRequest) *domain.Event {
	return &domain.Event{
		Name:        req.Name,
		Artist:      req.Artist,
		Date:        req.Date,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
	}
}

// ApplyUpdateRequest overwrites every descriptive field of the event with
// values from the request. Identity and audit fields are preserved; this is
// full-replace, not a patch.
func ApplyUpdateRequest(event *domain.Event, req *domain.UpdateEventRequest) {
	event.Name = req.Name
	event.Artist = req.Artist
	event.Date = req.Date
	event.Price = req.Price
	event.Description = req.Description
	event.ImageURL = req.ImageURL
	event.CategoryID = req.CategoryID
}

// EventToCreated projects a persisted event to the create response view.
func EventToCreated(e *domain.Event) *domain.CreatedEvent {
	return &domain.CreatedEvent{
		ID:    e.ID,
		Name:  e.Name,
		Date:  e.Date,
		Price: e.Price,
	}
}

// EventToSummary projects an event to its list view.
func EventToSummary(e *domain.Event) *domain.EventSummary {
	return &domain.EventSummary{
		ID:       e.ID,
		Name:     e.Name,
		Date:     e.Date,
		ImageURL: e.ImageURL,
	}
}

// EventsToSummaries projects a slice of events, always returning a non-nil
// slice.
func EventsToSummaries(events []*domain.Event) []*domain.EventSummary {
	out := make([]*domain.EventSummary, 0, len(events))
	for _, e := range events {
		out = append(out, EventToSummary(e))
	}
	return out
}

// EventToDetail projects an event and its (possibly absent) category to the
// detail view. A nil category maps to a nil Category field.
func EventToDetail(e *domain.Event, category *domain.Category) *domain.EventDetail {
	detail := &domain.EventDetail{
		ID:          e.ID,
		Name:        e.Name,
		Artist:      e.Artist,
		Date:        e.Date,
		Price:       e.Price,
		Description: e.Description,
		ImageURL:    e.ImageURL,
	}
	if category != nil {
		detail.Category = CategoryToSummary(category)
	}
	return detail
}

// CategoryToSummary projects a category to its plain view.
func CategoryToSummary(c *domain.Category) *domain.CategorySummary {
	return &domain.CategorySummary{ID: c.ID, Name: c.Name}
}

// CategoryToWithEvents projects a category and its loaded events to the
// combined view.
func CategoryToWithEvents(c *domain.Category) *domain.CategoryWithEvents {
	return &domain.CategoryWithEvents{
		ID:     c.ID,
		Name:   c.Name,
		Events: EventsToSummaries(c.Events),
	}
}
