package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"globoticket/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository returns an EventRepository backed by PostgreSQL.
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventColumns = `id, name, artist, date, price, description, image_url, category_id, created_by, created_at, last_modified_by, last_modified_at`

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	query := `
		INSERT INTO events (id, name, artist, date, price, description, image_url, category_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Name, nullString(e.Artist), e.Date, e.Price,
		nullString(e.Description), nullString(e.ImageURL), nullString(e.CategoryID),
		e.CreatedBy, e.CreatedAt,
	)
	return err
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET name = $2, artist = $3, date = $4, price = $5, description = $6,
		    image_url = $7, category_id = $8, last_modified_by = $9, last_modified_at = $10
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Name, nullString(e.Artist), e.Date, e.Price,
		nullString(e.Description), nullString(e.ImageURL), nullString(e.CategoryID),
		nullStringPtr(e.LastModifiedBy), nullTimePtr(e.LastModifiedAt),
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY date ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) ExistsWithNameAndDate(ctx context.Context, name string, date time.Time, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM events
			WHERE name = $1 AND date = $2 AND ($3 = '' OR id <> $3)
		)
	`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, name, date, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var artist, desc, imageURL, categoryID, modifiedBy sql.NullString
	var modifiedAt sql.NullTime
	err := row.Scan(
		&e.ID, &e.Name, &artist, &e.Date, &e.Price, &desc, &imageURL, &categoryID,
		&e.CreatedBy, &e.CreatedAt, &modifiedBy, &modifiedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Artist = artist.String
	e.Description = desc.String
	e.ImageURL = imageURL.String
	e.CategoryID = categoryID.String
	if modifiedBy.Valid {
		e.LastModifiedBy = &modifiedBy.String
	}
	if modifiedAt.Valid {
		e.LastModifiedAt = &modifiedAt.Time
	}
	return e, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullStringPtr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullTimePtr(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
