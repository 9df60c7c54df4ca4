// Package audited wraps repositories so every write stamps audit metadata
// before it reaches the underlying store. Handlers never invoke audit logic
// directly; wiring the decorator at construction time is what turns it on.
package audited

import (
	"context"
	"fmt"
	"time"

	"globoticket/internal/clock"
	"globoticket/internal/domain"
)

type eventRepository struct {
	inner     domain.EventRepository
	principal domain.CurrentPrincipal
	clk       clock.Clock
}

// NewEventRepository decorates an EventRepository so creates stamp the
// creator fields and updates stamp the modifier fields, using the acting
// principal's id and the clock's current instant. Reads pass through.
func NewEventRepository(inner domain.EventRepository, principal domain.CurrentPrincipal, clk clock.Clock) domain.EventRepository {
	return &eventRepository{
		inner:     inner,
		principal: principal,
		clk:       clk,
	}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	if err := stampCreate(ctx, event, r.principal, r.clk); err != nil {
		return err
	}
	return r.inner.Create(ctx, event)
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	if err := stampUpdate(ctx, event, r.principal, r.clk); err != nil {
		return err
	}
	return r.inner.Update(ctx, event)
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	return r.inner.Delete(ctx, id)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return r.inner.GetByID(ctx, id)
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	return r.inner.List(ctx)
}

func (r *eventRepository) ExistsWithNameAndDate(ctx context.Context, name string, date time.Time, excludeID string) (bool, error) {
	return r.inner.ExistsWithNameAndDate(ctx, name, date, excludeID)
}

func stampCreate(ctx context.Context, entity domain.Auditable, principal domain.CurrentPrincipal, clk clock.Clock) error {
	id, err := principal.ID(ctx)
	if err != nil {
		return fmt.Errorf("resolve principal: %w", err)
	}
	a := entity.Audit()
	a.CreatedBy = id
	a.CreatedAt = clk.Now()
	a.LastModifiedBy = nil
	a.LastModifiedAt = nil
	return nil
}

func stampUpdate(ctx context.Context, entity domain.Auditable, principal domain.CurrentPrincipal, clk clock.Clock) error {
	id, err := principal.ID(ctx)
	if err != nil {
		return fmt.Errorf("resolve principal: %w", err)
	}
	// Creator fields are immutable once set; only the modifier pair changes.
	a := entity.Audit()
	now := clk.Now()
	a.LastModifiedBy = &id
	a.LastModifiedAt = &now
	return nil
}
