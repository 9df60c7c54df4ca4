package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"globoticket/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_Create(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO categories \(id, name\)`).
		WithArgs(sqlmock.AnyArg(), "Concerts").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewCategoryRepository(db)
	c := &domain.Category{Name: "Concerts"}
	require.NoError(t, repo.Create(ctx, c))
	require.NotEmpty(t, c.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, name FROM categories`).
			WithArgs("cat-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("cat-1", "Concerts"))

		repo := NewCategoryRepository(db)
		got, err := repo.GetByID(ctx, "cat-1")
		require.NoError(t, err)
		require.Equal(t, "Concerts", got.Name)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, name FROM categories`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewCategoryRepository(db)
		_, err = repo.GetByID(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCategoryRepository_ListWithEvents(t *testing.T) {
	ctx := context.Background()
	date1 := time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC)
	date2 := time.Date(2026, 7, 1, 20, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "id", "name", "date", "image_url"}).
		AddRow("cat-1", "Concerts", "ev-1", "Rock Night", date1, "https://img.example.com/rock.png").
		AddRow("cat-1", "Concerts", "ev-2", "Jazz Eve", date2, nil).
		AddRow("cat-2", "Musicals", nil, nil, nil, nil)
	mock.ExpectQuery(`LEFT JOIN events e ON e.category_id = c.id`).
		WillReturnRows(rows)

	repo := NewCategoryRepository(db)
	categories, err := repo.ListWithEvents(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)

	concerts := categories[0]
	require.Equal(t, "Concerts", concerts.Name)
	require.Len(t, concerts.Events, 2)
	require.Equal(t, "Rock Night", concerts.Events[0].Name)
	require.Equal(t, "cat-1", concerts.Events[0].CategoryID)

	musicals := categories[1]
	require.Equal(t, "Musicals", musicals.Name)
	require.Empty(t, musicals.Events)

	require.NoError(t, mock.ExpectationsWereMet())
}
