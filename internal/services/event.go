package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"globoticket/internal/clock"
	"globoticket/internal/domain"
	"globoticket/internal/mapping"
	"globoticket/internal/validation"
)

type eventService struct {
	eventRepo      domain.EventRepository
	categoryRepo   domain.CategoryRepository
	emailService   domain.EmailService
	clk            clock.Clock
	contextTimeout time.Duration
}

// NewEventService creates an EventService with the given repositories, the
// email service used for create notifications, and a clock.
func NewEventService(eventRepo domain.EventRepository,
	categoryRepo domain.CategoryRepository,
	emailService domain.EmailService,
	clk clock.Clock,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		categoryRepo:   categoryRepo,
		emailService:   emailService,
		clk:            clk,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, req *domain.CreateEventRequest) (*domain.CreatedEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event := mapping.EventFromCreateRequest(req)

	violations, err := validation.Evaluate(ctx, validation.CreateEventRules(s.eventRepo, req, s.clk))
	if err != nil {
		return nil, fmt.Errorf("validate event: %w", err)
	}
	if len(violations) > 0 {
		return nil, &domain.ValidationError{Violations: violations}
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	created := mapping.EventToCreated(event)

	// The notification is best effort: the write already succeeded, so a
	// mailer failure is logged and deliberately dropped right here. One
	// attempt, no retry, and the response above is returned unchanged.
	data := &domain.EventCreatedEmailData{
		EventName: event.Name,
		EventDate: event.Date,
		Price:     event.Price,
	}
	if err := s.emailService.SendEventCreated(ctx, data); err != nil {
		log.Printf("[EVENT] Created notification for event %s failed: %v", event.ID, err)
	}

	return created, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, req *domain.UpdateEventRequest) (*domain.EventDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.NotFoundError{Entity: "Event", ID: req.ID}
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	violations, err := validation.Evaluate(ctx, validation.UpdateEventRules(s.eventRepo, req, s.clk))
	if err != nil {
		return nil, fmt.Errorf("validate event: %w", err)
	}
	if len(violations) > 0 {
		return nil, &domain.ValidationError{Violations: violations}
	}

	mapping.ApplyUpdateRequest(event, req)
	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.NotFoundError{Entity: "Event", ID: req.ID}
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return mapping.EventToDetail(event, nil), nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.NotFoundError{Entity: "Event", ID: id}
		}
		return fmt.Errorf("get event: %w", err)
	}
	if err := s.eventRepo.Delete(ctx, event.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.NotFoundError{Entity: "Event", ID: id}
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) GetEventDetail(ctx context.Context, id string) (*domain.EventDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.NotFoundError{Entity: "Event", ID: id}
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	var category *domain.Category
	if event.CategoryID != "" {
		category, err = s.categoryRepo.GetByID(ctx, event.CategoryID)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("get category: %w", err)
			}
			// A dangling category reference renders as no category.
			category = nil
		}
	}
	return mapping.EventToDetail(event, category), nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.EventSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return mapping.EventsToSummaries(events), nil
}
