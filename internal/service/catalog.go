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

var catalogTracer = otel.Tracer("service/catalog")

// CatalogService manages the product catalog.
type CatalogService struct {
	store   port.ProductStore
	cache   port.Cache[*domain.ProductListResponse]
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store port.ProductStore, cache port.Cache[*domain.ProductListResponse], metrics *observability.Metrics, logger *zap.Logger) *CatalogService {
	return &CatalogService{store: store, cache: cache, metrics: metrics, logger: logger}
}

// ============================================================
// List / Get
// ============================================================

func (s *CatalogService) List(ctx context.Context, filter domain.ProductFilter, page, limit int) (*domain.ProductListResponse, error) {
	ctx, span := catalogTracer.Start(ctx, "CatalogService.List")
	defer span.End()

	cacheKey := fmt.Sprintf("products:%+v:p%d:l%d", filter, page, limit)
	if cached, ok := s.cache.Get(cacheKey); ok {
		s.metrics.IncrCacheHit("products")
		return cached, nil
	}
	s.metrics.IncrCacheMiss("products")

	all, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	filtered := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if matchesProductFilter(&p, filter) {
			filtered = append(filtered, p)
		}
	}

	total := len(filtered)
	resp := &domain.ProductListResponse{
		Products: paginate(filtered, page, limit),
		Total:    total,
		Page:     page,
		Limit:    limit,
	}
	s.cache.Set(cacheKey, resp)
	span.SetAttributes(attribute.Int("products.total", total))
	return resp, nil
}

func matchesProductFilter(p *domain.Product, f domain.ProductFilter) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		haystack := strings.ToLower(p.Name + " " + p.Description + " " + p.SKU)
		if !strings.Contains(haystack, q) {
			return false
		}
	}
	return true
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	ctx, span := catalogTracer.Start(ctx, "CatalogService.Get")
	defer span.End()
	span.SetAttributes(attribute.String("product.id", id))

	return s.store.FindByID(ctx, id)
}

// ============================================================
// Create / Update / Delete
// ============================================================

func (s *CatalogService) Create(ctx context.Context, req *domain.ProductCreateRequest) (*domain.Product, error) {
	ctx, span := catalogTracer.Start(ctx, "CatalogService.Create")
	defer span.End()

	if err := validateProductCreate(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.ProductDraft
	}

	p := &domain.Product{
		ID:             memstore.NewID("prod"),
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		IsPriceVisible: req.IsPriceVisible,
		SKU:            req.SKU,
		Category:       req.Category,
		Colors:         req.Colors,
		Sizes:          req.Sizes,
		Status:         status,
		Tags:           req.Tags,
		ImageURLs:      req.ImageURLs,
		DateAdded:      time.Now(),
	}

	if err := s.store.Insert(ctx, p); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	s.cache.DeleteByPrefix("products:")
	s.metrics.IncrMutation("products")
	s.logger.Info("product created",
		zap.String("product_id", p.ID),
		zap.String("sku", p.SKU),
	)
	return p, nil
}

func validateProductCreate(req *domain.ProductCreateRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return &domain.ErrValidation{Field: "name", Message: "name is required"}
	}
	if req.Price < 0 {
		return &domain.ErrValidation{Field: "price", Message: "price cannot be negative"}
	}
	if req.Status != "" && !req.Status.Valid() {
		return &domain.ErrValidation{Field: "status", Message: "unknown status"}
	}
	if len(req.ImageURLs) > domain.MaxProductImages {
		return &domain.ErrValidation{
			Field:   "imageUrls",
			Message: fmt.Sprintf("at most %d images allowed", domain.MaxProductImages),
		}
	}
	return nil
}

func (s *CatalogService) Update(ctx context.Context, id string, req *domain.ProductUpdateRequest) (*domain.Product, error) {
	ctx, span := catalogTracer.Start(ctx, "CatalogService.Update")
	defer span.End()
	span.SetAttributes(attribute.String("product.id", id))

	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, &domain.ErrValidation{Field: "name", Message: "name cannot be empty"}
		}
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, &domain.ErrValidation{Field: "price", Message: "price cannot be negative"}
		}
		p.Price = *req.Price
	}
	if req.IsPriceVisible != nil {
		p.IsPriceVisible = *req.IsPriceVisible
	}
	if req.SKU != nil {
		p.SKU = *req.SKU
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Colors != nil {
		p.Colors = req.Colors
	}
	if req.Sizes != nil {
		p.Sizes = req.Sizes
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, &domain.ErrValidation{Field: "status", Message: "unknown status"}
		}
		p.Status = *req.Status
	}
	if req.Tags != nil {
		p.Tags = req.Tags
	}
	if req.ImageURLs != nil {
		if len(req.ImageURLs) > domain.MaxProductImages {
			return nil, &domain.ErrValidation{
				Field:   "imageUrls",
				Message: fmt.Sprintf("at most %d images allowed", domain.MaxProductImages),
			}
		}
		p.ImageURLs = req.ImageURLs
	}

	if err := s.store.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.cache.DeleteByPrefix("products:")
	s.metrics.IncrMutation("products")
	return p, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	ctx, span := catalogTracer.Start(ctx, "CatalogService.Delete")
	defer span.End()
	span.SetAttributes(attribute.String("product.id", id))

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.DeleteByPrefix("products:")
	s.metrics.IncrMutation("products")
	s.logger.Info("product deleted", zap.String("product_id", id))
	return nil
}
