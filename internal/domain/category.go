package domain

import "context"

// Category groups events. The back-reference to events is not owned:
// deleting a category never cascades to its events.
// swagger:model Category
type Category struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Events []*Event `json:"events,omitempty"`
}

// CategoryRepository defines the interface for category storage.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	// ListWithEvents returns all categories with their associated events
	// loaded, events ordered by date.
	ListWithEvents(ctx context.Context) ([]*Category, error)
}

// CreateCategoryRequest carries the fields for a new category.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CreatedCategory is the view returned from a successful create.
type CreatedCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategorySummary is the plain view of a category without its events.
type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryWithEvents is a category view carrying its event list.
type CategoryWithEvents struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Events []*EventSummary `json:"events"`
}

// CategoryService defines the command and query operations for categories.
type CategoryService interface {
	CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*CreatedCategory, error)
	GetCategory(ctx context.Context, id string) (*CategorySummary, error)
	ListCategories(ctx context.Context) ([]*CategorySummary, error)
	// ListCategoriesWithEvents returns every category with its events; when
	// includePassedEvents is false, events dated before now are left out.
	ListCategoriesWithEvents(ctx context.Context, includePassedEvents bool) ([]*CategoryWithEvents, error)
}
