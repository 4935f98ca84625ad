// Package service provides the business logic layer (use cases):
// catalog, category taxonomy, staff directory, invites, brand profile,
// auth, and the dashboard aggregate.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/localstyle/brand-admin-go/internal/domain"
	"github.com/localstyle/brand-admin-go/internal/infra/memstore"
	"github.com/localstyle/brand-admin-go/internal/infra/observability"
	"github.com/localstyle/brand-admin-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var categoryTracer = otel.Tracer("service/category")

// CategoryService manages the two-level category taxonomy.
type CategoryService struct {
	store   port.CategoryStore
	cache   port.Cache[*domain.CategoryListResponse]
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewCategoryService creates a new category service.
func NewCategoryService(store port.CategoryStore, cache port.Cache[*domain.CategoryListResponse], metrics *observability.Metrics, logger *zap.Logger) *CategoryService {
	return &CategoryService{store: store, cache: cache, metrics: metrics, logger: logger}
}

// Slugify derives a URL slug from a category name: lowercase, whitespace
// runs become single hyphens, everything outside [a-z0-9-] is dropped.
func Slugify(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	fields := strings.Fields(lower)
	joined := strings.Join(fields, "-")

	var b strings.Builder
	b.Grow(len(joined))
	for _, r := range joined {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// computeLevel derives a category's depth from its parent chain. Roots are
// level 0; a dangling parent id also yields 0 rather than failing the write.
func (s *CategoryService) computeLevel(ctx context.Context, parentID *string) int {
	if parentID == nil || *parentID == "" {
		return 0
	}
	parent, err := s.store.FindByID(ctx, *parentID)
	if err != nil {
		return 0
	}
	return parent.Level + 1
}

// ============================================================
// List / Get
// ============================================================

func (s *CategoryService) List(ctx context.Context, filter domain.CategoryFilter, page, limit int) (*domain.CategoryListResponse, error) {
	ctx, span := categoryTracer.Start(ctx, "CategoryService.List")
	defer span.End()

	cacheKey := fmt.Sprintf("categories:%+v:p%d:l%d", filter, page, limit)
	if cached, ok := s.cache.Get(cacheKey); ok {
		s.metrics.IncrCacheHit("categories")
		return cached, nil
	}
	s.metrics.IncrCacheMiss("categories")

	all, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	filtered := make([]domain.Category, 0, len(all))
	for _, c := range all {
		if filter.FilterByParent {
			if filter.RootsOnly {
				if c.ParentID != nil {
					continue
				}
			} else if c.ParentID == nil || *c.ParentID != filter.ParentID {
				continue
			}
		}
		filtered = append(filtered, c)
	}

	total := len(filtered)
	paged := paginate(filtered, page, limit)

	if filter.IncludeChildren {
		for i := range paged {
			paged[i].Children = childrenOf(all, paged[i].ID)
		}
	}

	resp := &domain.CategoryListResponse{
		Categories: paged,
		Total:      total,
		Page:       page,
		Limit:      limit,
	}
	s.cache.Set(cacheKey, resp)
	span.SetAttributes(attribute.Int("categories.total", total))
	return resp, nil
}

// Get returns one category with its direct children attached.
func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	ctx, span := categoryTracer.Start(ctx, "CategoryService.Get")
	defer span.End()
	span.SetAttributes(attribute.String("category.id", id))

	c, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	all, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load category children: %w", err)
	}
	c.Children = childrenOf(all, c.ID)
	return c, nil
}

func childrenOf(all []domain.Category, parentID string) []domain.Category {
	var children []domain.Category
	for _, c := range all {
		if c.ParentID != nil && *c.ParentID == parentID {
			children = append(children, c)
		}
	}
	return children
}

// ============================================================
// Create / Update / Delete
// ============================================================

func (s *CategoryService) Create(ctx context.Context, req *domain.CategoryCreateRequest) (*domain.Category, error) {
	ctx, span := categoryTracer.Start(ctx, "CategoryService.Create")
	defer span.End()

	if strings.TrimSpace(req.Name) == "" {
		return nil, &domain.ErrValidation{Field: "name", Message: "name is required"}
	}

	now := time.Now()
	c := &domain.Category{
		ID:              memstore.NewID("cat"),
		Name:            req.Name,
		Description:     req.Description,
		Slug:            Slugify(req.Name),
		ParentID:        req.ParentID,
		Level:           s.computeLevel(ctx, req.ParentID),
		IsActive:        true,
		SortOrder:       1,
		ImageURL:        req.ImageURL,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		CreatedAt:       now,
		UpdatedAt:       now,
		ProductCount:    0,
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		c.SortOrder = *req.SortOrder
	}

	if err := s.store.Insert(ctx, c); err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}

	s.cache.DeleteByPrefix("categories:")
	s.metrics.IncrMutation("categories")
	s.logger.Info("category created",
		zap.String("category_id", c.ID),
		zap.String("slug", c.Slug),
		zap.Int("level", c.Level),
	)
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, req *domain.CategoryUpdateRequest) (*domain.Category, error) {
	ctx, span := categoryTracer.Start(ctx, "CategoryService.Update")
	defer span.End()
	span.SetAttributes(attribute.String("category.id", id))

	c, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != c.Name {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, &domain.ErrValidation{Field: "name", Message: "name cannot be empty"}
		}
		c.Name = *req.Name
		c.Slug = Slugify(*req.Name)
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.ParentID.Present {
		newParent := req.ParentID.Value
		if newParent != nil && *newParent == id {
			return nil, &domain.ErrValidation{Field: "parentId", Message: "category cannot be its own parent"}
		}
		c.ParentID = newParent
		c.Level = s.computeLevel(ctx, newParent)
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		c.SortOrder = *req.SortOrder
	}
	if req.ImageURL != nil {
		c.ImageURL = *req.ImageURL
	}
	if req.MetaTitle != nil {
		c.MetaTitle = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		c.MetaDescription = *req.MetaDescription
	}
	c.UpdatedAt = time.Now()

	if err := s.store.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	s.cache.DeleteByPrefix("categories:")
	s.metrics.IncrMutation("categories")
	return c, nil
}

// Delete removes a category. Categories with children or with products still
// assigned refuse deletion.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	ctx, span := categoryTracer.Start(ctx, "CategoryService.Delete")
	defer span.End()
	span.SetAttributes(attribute.String("category.id", id))

	c, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}

	all, err := s.store.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("check category children: %w", err)
	}
	if len(childrenOf(all, id)) > 0 {
		return &domain.ErrConflict{Message: "cannot delete category with subcategories"}
	}
	if c.ProductCount > 0 {
		return &domain.ErrConflict{Message: "cannot delete category with products"}
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.DeleteByPrefix("categories:")
	s.metrics.IncrMutation("categories")
	s.logger.Info("category deleted", zap.String("category_id", id))
	return nil
}

// paginate slices items to the requested page. Page numbers start at 1; a
// limit of 0 means no pagination.
func paginate[T any](items []T, page, limit int) []T {
	if limit <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
