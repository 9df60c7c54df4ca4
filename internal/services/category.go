package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"globoticket/internal/clock"
	"globoticket/internal/domain"
	"globoticket/internal/mapping"
	"globoticket/internal/validation"
)

type categoryService struct {
	categoryRepo   domain.CategoryRepository
	clk            clock.Clock
	contextTimeout time.Duration
}

// NewCategoryService creates a CategoryService backed by the given repository.
func NewCategoryService(categoryRepo domain.CategoryRepository, clk clock.Clock, timeout time.Duration) domain.CategoryService {
	return &categoryService{
		categoryRepo:   categoryRepo,
		clk:            clk,
		contextTimeout: timeout,
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, req *domain.CreateCategoryRequest) (*domain.CreatedCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	violations, err := validation.Evaluate(ctx, validation.CreateCategoryRules(req))
	if err != nil {
		return nil, fmt.Errorf("validate category: %w", err)
	}
	if len(violations) > 0 {
		return nil, &domain.ValidationError{Violations: violations}
	}

	category := &domain.Category{Name: req.Name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &domain.CreatedCategory{ID: category.ID, Name: category.Name}, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id string) (*domain.CategorySummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.NotFoundError{Entity: "Category", ID: id}
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return mapping.CategoryToSummary(category), nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*domain.CategorySummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]*domain.CategorySummary, 0, len(categories))
	for _, c := range categories {
		out = append(out, mapping.CategoryToSummary(c))
	}
	return out, nil
}

func (s *categoryService) ListCategoriesWithEvents(ctx context.Context, includePassedEvents bool) ([]*domain.CategoryWithEvents, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	categories, err := s.categoryRepo.ListWithEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories with events: %w", err)
	}
	now := s.clk.Now()
	out := make([]*domain.CategoryWithEvents, 0, len(categories))
	for _, c := range categories {
		if !includePassedEvents {
			upcoming := make([]*domain.Event, 0, len(c.Events))
			for _, e := range c.Events {
				if e.Date.After(now) {
					upcoming = append(upcoming, e)
				}
			}
			c.Events = upcoming
		}
		out = append(out, mapping.CategoryToWithEvents(c))
	}
	return out, nil
}
