package service_test

import (
	"context"
	"testing"

	"github.com/localstyle/brand-admin-go/internal/infra/memstore"
	"github.com/localstyle/brand-admin-go/internal/infra/observability"
	"github.com/localstyle/brand-admin-go/internal/service"

	"go.uber.org/zap"
)

func TestDashboardOverview_SeededDataset(t *testing.T) {
	ctx := context.Background()
	stores := memstore.NewStores()
	if err := memstore.Seed(ctx, stores); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc := service.NewDashboardService(
		stores.Products, stores.Categories, stores.Staff, stores.Invites,
		observability.NewMetrics(), zap.NewNop(),
	)

	overview, err := svc.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}

	if overview.TotalProducts != 3 || overview.PublishedProducts != 2 {
		t.Errorf("products = %d/%d published, want 3/2", overview.TotalProducts, overview.PublishedProducts)
	}
	if overview.TotalCategories != 6 || overview.RootCategories != 2 {
		t.Errorf("categories = %d/%d roots, want 6/2", overview.TotalCategories, overview.RootCategories)
	}
	if overview.TotalStaff != 5 || overview.ActiveStaff != 4 {
		t.Errorf("staff = %d/%d active, want 5/4", overview.TotalStaff, overview.ActiveStaff)
	}
	if overview.PendingInvites != 0 {
		t.Errorf("pendingInvites = %d, want 0 in the seed", overview.PendingInvites)
	}
}
