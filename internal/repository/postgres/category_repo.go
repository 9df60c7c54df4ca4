package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"globoticket/internal/domain"
)

type categoryRepository struct {
	DB *sql.DB
}

// NewCategoryRepository returns a CategoryRepository backed by PostgreSQL.
func NewCategoryRepository(db *sql.DB) domain.CategoryRepository {
	return &categoryRepository{
		DB: db,
	}
}

func (r *categoryRepository) Create(ctx context.Context, c *domain.Category) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	query := `INSERT INTO categories (id, name) VALUES ($1, $2)`
	_, err := r.DB.ExecContext(ctx, query, c.ID, c.Name)
	return err
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	c := &domain.Category{}
	err := r.DB.QueryRowContext(ctx, `SELECT id, name FROM categories WHERE id = $1`, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	categories := make([]*domain.Category, 0)
	for rows.Next() {
		c := &domain.Category{}
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) ListWithEvents(ctx context.Context) ([]*domain.Category, error) {
	query := `
		SELECT c.id, c.name, e.id, e.name, e.date, e.image_url
		FROM categories c
		LEFT JOIN events e ON e.category_id = c.id
		ORDER BY c.name ASC, e.date ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	byID := make(map[string]*domain.Category)
	for rows.Next() {
		var catID, catName string
		var eventID, eventName, imageURL sql.NullString
		var eventDate sql.NullTime
		if err := rows.Scan(&catID, &catName, &eventID, &eventName, &eventDate, &imageURL); err != nil {
			return nil, err
		}
		c, ok := byID[catID]
		if !ok {
			c = &domain.Category{ID: catID, Name: catName, Events: []*domain.Event{}}
			byID[catID] = c
			categories = append(categories, c)
		}
		if eventID.Valid {
			c.Events = append(c.Events, &domain.Event{
				ID:         eventID.String,
				Name:       eventName.String,
				Date:       eventDate.Time,
				ImageURL:   imageURL.String,
				CategoryID: catID,
			})
		}
	}
	return categories, rows.Err()
}
