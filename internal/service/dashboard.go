package service

import (
	"context"
	"fmt"
	"time"

	"github.com/localstyle/brand-admin-go/internal/domain"
	"github.com/localstyle/brand-admin-go/internal/infra/observability"
	"github.com/localstyle/brand-admin-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var dashboardTracer = otel.Tracer("service/dashboard")

// DashboardService assembles the landing-page overview by fanning out to
// every store concurrently.
type DashboardService struct {
	products   port.ProductStore
	categories port.CategoryStore
	staff      port.StaffStore
	invites    port.InviteStore
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	products port.ProductStore,
	categories port.CategoryStore,
	staff port.StaffStore,
	invites port.InviteStore,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		products:   products,
		categories: categories,
		staff:      staff,
		invites:    invites,
		metrics:    metrics,
		logger:     logger,
	}
}

// Overview gathers counts across all collections. The four store reads run
// in parallel; the first error cancels the rest.
func (s *DashboardService) Overview(ctx context.Context) (*domain.DashboardOverview, error) {
	ctx, span := dashboardTracer.Start(ctx, "DashboardService.Overview")
	defer span.End()

	start := time.Now()
	overview := &domain.DashboardOverview{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		products, err := s.products.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("overview: products: %w", err)
		}
		overview.TotalProducts = len(products)
		for i := range products {
			if products[i].Status == domain.ProductPublished {
				overview.PublishedProducts++
			}
		}
		return nil
	})

	g.Go(func() error {
		categories, err := s.categories.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("overview: categories: %w", err)
		}
		overview.TotalCategories = len(categories)
		for i := range categories {
			if categories[i].ParentID == nil {
				overview.RootCategories++
			}
		}
		return nil
	})

	g.Go(func() error {
		staff, err := s.staff.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("overview: staff: %w", err)
		}
		overview.TotalStaff = len(staff)
		for i := range staff {
			if staff[i].Status == domain.StaffActive {
				overview.ActiveStaff++
			}
		}
		return nil
	})

	g.Go(func() error {
		invites, err := s.invites.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("overview: invites: %w", err)
		}
		now := time.Now()
		for i := range invites {
			if invites[i].Status == domain.InvitePending && !invites[i].IsExpired(now) {
				overview.PendingInvites++
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.metrics.RecordRequestDuration("dashboard.overview", time.Since(start))
	s.logger.Debug("dashboard overview assembled",
		zap.Duration("elapsed", time.Since(start)),
	)
	return overview, nil
}
