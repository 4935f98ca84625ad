package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/localstyle/brand-admin-go/internal/domain"
	"github.com/localstyle/brand-admin-go/internal/infra/cache"
	"github.com/localstyle/brand-admin-go/internal/infra/memstore"
	"github.com/localstyle/brand-admin-go/internal/infra/observability"
	"github.com/localstyle/brand-admin-go/internal/service"

	"go.uber.org/zap"
)

func newCatalogService() *service.CatalogService {
	return service.NewCatalogService(
		memstore.NewProductStore(),
		cache.New[*domain.ProductListResponse](time.Minute),
		observability.NewMetrics(), zap.NewNop(),
	)
}

func TestProductCreate_ImageCap(t *testing.T) {
	svc := newCatalogService()

	images := make([]string, domain.MaxProductImages+1)
	for i := range images {
		images[i] = "https://img.example/p.jpg"
	}
	_, err := svc.Create(context.Background(), &domain.ProductCreateRequest{
		Name:      "Overloaded Jacket",
		Price:     99,
		ImageURLs: images,
	})
	var validation *domain.ErrValidation
	if !errors.As(err, &validation) {
		t.Fatalf("expected ErrValidation for %d images, got %v", len(images), err)
	}

	// Exactly the cap is fine.
	p, err := svc.Create(context.Background(), &domain.ProductCreateRequest{
		Name:      "Jacket",
		Price:     99,
		ImageURLs: images[:domain.MaxProductImages],
	})
	if err != nil {
		t.Fatalf("Create at cap failed: %v", err)
	}
	if p.Status != domain.ProductDraft {
		t.Errorf("status = %s, want default draft", p.Status)
	}
}

func TestProductUpdate_PartialMerge(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	p, err := svc.Create(ctx, &domain.ProductCreateRequest{
		Name: "Silk Scarf", Price: 39.99, SKU: "LS-SCF-001",
		Status: domain.ProductDraft,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	published := domain.ProductPublished
	price := 44.99
	updated, err := svc.Update(ctx, p.ID, &domain.ProductUpdateRequest{
		Status: &published,
		Price:  &price,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Status != domain.ProductPublished || updated.Price != 44.99 {
		t.Errorf("status/price = %s/%.2f, want published/44.99", updated.Status, updated.Price)
	}
	if updated.Name != "Silk Scarf" || updated.SKU != "LS-SCF-001" {
		t.Errorf("untouched fields changed: %+v", updated)
	}

	negative := -1.0
	if _, err := svc.Update(ctx, p.ID, &domain.ProductUpdateRequest{Price: &negative}); err == nil {
		t.Error("expected validation error for negative price")
	}
}

func TestProductList_Filters(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	seed := []domain.ProductCreateRequest{
		{Name: "Cotton Tee", Price: 29, Category: "T-Shirts", Status: domain.ProductPublished},
		{Name: "Linen Tee", Price: 35, Category: "T-Shirts", Status: domain.ProductDraft},
		{Name: "Leather Belt", Price: 49, Category: "Accessories", Status: domain.ProductPublished},
	}
	for i := range seed {
		if _, err := svc.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	published, err := svc.List(ctx, domain.ProductFilter{Status: domain.ProductPublished}, 1, 20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if published.Total != 2 {
		t.Errorf("published total = %d, want 2", published.Total)
	}

	tees, err := svc.List(ctx, domain.ProductFilter{Category: "t-shirts", Search: "linen"}, 1, 20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if tees.Total != 1 || tees.Products[0].Name != "Linen Tee" {
		t.Errorf("filtered = %+v, want just Linen Tee", tees.Products)
	}
}

func TestProductList_Pagination(t *testing.T) {
	svc := newCatalogService()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := svc.Create(ctx, &domain.ProductCreateRequest{Name: "Item", Price: 10}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	page2, err := svc.List(ctx, domain.ProductFilter{}, 2, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page2.Products) != 2 || page2.Total != 5 {
		t.Errorf("page 2: len=%d total=%d, want 2/5", len(page2.Products), page2.Total)
	}

	page4, err := svc.List(ctx, domain.ProductFilter{}, 4, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page4.Products) != 0 {
		t.Errorf("page past the end should be empty, got %d items", len(page4.Products))
	}
}
