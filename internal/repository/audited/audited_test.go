package audited

import (
	"context"
	"testing"
	"time"

	"globoticket/internal/adapters/principal"
	"globoticket/internal/clock"
	"globoticket/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingEventRepo captures the entity state at the moment of each write.
type recordingEventRepo struct {
	created *domain.Event
	updated *domain.Event
}

func (r *recordingEventRepo) Create(ctx context.Context, e *domain.Event) error {
	copied := *e
	r.created = &copied
	return nil
}

func (r *recordingEventRepo) Update(ctx context.Context, e *domain.Event) error {
	copied := *e
	r.updated = &copied
	return nil
}

func (r *recordingEventRepo) Delete(ctx context.Context, id string) error { return nil }

func (r *recordingEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return nil, domain.ErrNotFound
}

func (r *recordingEventRepo) List(ctx context.Context) ([]*domain.Event, error) { return nil, nil }

func (r *recordingEventRepo) ExistsWithNameAndDate(ctx context.Context, name string, date time.Time, excludeID string) (bool, error) {
	return false, nil
}

func TestEventRepository_CreateStampsCreatorFields(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	inner := &recordingEventRepo{}
	repo := NewEventRepository(inner, principal.Static("user-1"), clock.NewFixed(now))

	event := &domain.Event{Name: "Rock Night"}
	require.NoError(t, repo.Create(ctx, event))

	require.NotNil(t, inner.created)
	assert.Equal(t, "user-1", inner.created.CreatedBy)
	assert.Equal(t, now, inner.created.CreatedAt)
	assert.Nil(t, inner.created.LastModifiedBy)
	assert.Nil(t, inner.created.LastModifiedAt)
}

func TestEventRepository_UpdateStampsModifierFields(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	inner := &recordingEventRepo{}
	repo := NewEventRepository(inner, principal.Static("user-2"), clock.NewFixed(now))

	event := &domain.Event{
		ID:   "ev-1",
		Name: "Rock Night",
		AuditFields: domain.AuditFields{
			CreatedBy: "user-1",
			CreatedAt: createdAt,
		},
	}
	require.NoError(t, repo.Update(ctx, event))

	require.NotNil(t, inner.updated)
	// Creator fields stay exactly as first stamped.
	assert.Equal(t, "user-1", inner.updated.CreatedBy)
	assert.Equal(t, createdAt, inner.updated.CreatedAt)
	require.NotNil(t, inner.updated.LastModifiedBy)
	assert.Equal(t, "user-2", *inner.updated.LastModifiedBy)
	require.NotNil(t, inner.updated.LastModifiedAt)
	assert.Equal(t, now, *inner.updated.LastModifiedAt)
}

func TestEventRepository_NoPrincipalFailsBeforeWrite(t *testing.T) {
	ctx := context.Background()
	inner := &recordingEventRepo{}
	repo := NewEventRepository(inner, principal.Static(""), clock.NewFixed(time.Now()))

	err := repo.Create(ctx, &domain.Event{Name: "Rock Night"})
	require.ErrorIs(t, err, principal.ErrNoPrincipal)
	assert.Nil(t, inner.created)

	err = repo.Update(ctx, &domain.Event{ID: "ev-1"})
	require.ErrorIs(t, err, principal.ErrNoPrincipal)
	assert.Nil(t, inner.updated)
}
