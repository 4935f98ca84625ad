package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/localstyle/brand-admin-go/internal/domain"
	"github.com/localstyle/brand-admin-go/internal/infra/observability"
	"github.com/localstyle/brand-admin-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var brandTracer = otel.Tracer("service/brand")

// BrandService manages the single brand profile.
type BrandService struct {
	store   port.BrandStore
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewBrandService creates a new brand service.
func NewBrandService(store port.BrandStore, metrics *observability.Metrics, logger *zap.Logger) *BrandService {
	return &BrandService{store: store, metrics: metrics, logger: logger}
}

func (s *BrandService) Get(ctx context.Context) (*domain.Brand, error) {
	ctx, span := brandTracer.Start(ctx, "BrandService.Get")
	defer span.End()

	return s.store.Get(ctx)
}

// Update applies a partial update to the brand profile.
func (s *BrandService) Update(ctx context.Context, req *domain.BrandUpdateRequest) (*domain.Brand, error) {
	ctx, span := brandTracer.Start(ctx, "BrandService.Update")
	defer span.End()

	b, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, &domain.ErrValidation{Field: "name", Message: "name cannot be empty"}
		}
		b.Name = *req.Name
	}
	if req.LogoURL != nil {
		b.LogoURL = *req.LogoURL
	}
	if req.Bio != nil {
		b.Bio = *req.Bio
	}
	if req.ContactInfo != nil {
		b.ContactInfo = *req.ContactInfo
	}

	if err := s.store.Save(ctx, b); err != nil {
		return nil, fmt.Errorf("save brand: %w", err)
	}

	s.metrics.IncrMutation("brand")
	s.logger.Info("brand updated", zap.String("brand_id", b.ID))
	return b, nil
}
