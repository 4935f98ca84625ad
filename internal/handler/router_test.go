package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/localstyle/brand-admin-go/internal/domain"
	"github.com/localstyle/brand-admin-go/internal/handler"
	"github.com/localstyle/brand-admin-go/internal/infra/cache"
	"github.com/localstyle/brand-admin-go/internal/infra/memstore"
	"github.com/localstyle/brand-admin-go/internal/infra/notify"
	"github.com/localstyle/brand-admin-go/internal/infra/observability"
	"github.com/localstyle/brand-admin-go/internal/infra/resilience"
	"github.com/localstyle/brand-admin-go/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const testJWTSecret = "router-test-secret"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := zap.NewNop()
	metrics := observability.NewMetrics()

	stores := memstore.NewStores()
	if err := memstore.Seed(context.Background(), stores); err != nil {
		t.Fatalf("seed: %v", err)
	}

	resCfg := resilience.Config{MaxRetries: 1, InitialBackoff: time.Millisecond, MaxConcurrency: 2}
	notifier := notify.NewEmailNotifier(notify.NewLogSender(logger), resCfg, metrics, logger)

	authSvc, err := service.NewAuthService(
		stores.Tokens, metrics, logger,
		testJWTSecret, 15*time.Minute, 7*24*time.Hour, true,
	)
	if err != nil {
		t.Fatalf("auth service: %v", err)
	}

	services := &handler.Services{
		Auth:       authSvc,
		Brand:      service.NewBrandService(stores.Brand, metrics, logger),
		Catalog:    service.NewCatalogService(stores.Products, cache.New[*domain.ProductListResponse](time.Minute), metrics, logger),
		Categories: service.NewCategoryService(stores.Categories, cache.New[*domain.CategoryListResponse](time.Minute), metrics, logger),
		Staff: service.NewStaffService(
			stores.Staff, stores.Invites, stores.Branches,
			notifier, cache.New[*domain.StaffListResponse](time.Minute), metrics, logger,
		),
		Dashboard: service.NewDashboardService(
			stores.Products, stores.Categories, stores.Staff, stores.Invites, metrics, logger,
		),
	}

	return handler.NewRouter(services, metrics, []string{"*"}, logger)
}

func doRequest(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, router http.Handler) string {
	t.Helper()
	rec := doRequest(t, router, http.MethodPost, "/v1/auth/login", "",
		`{"username":"owner@novastyle.com","password":"secret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", rec.Code, rec.Body.String())
	}
	var resp domain.AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return resp.Tokens.AccessToken
}

// signTokenWithRole forges a valid access token for a given role, for
// exercising the permission middleware with non-owner roles.
func signTokenWithRole(t *testing.T, role domain.Role) string {
	t.Helper()
	now := time.Now()
	claims := service.JWTClaims{
		Sub:  "user_test",
		Role: string(role),
		Type: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestOperationalEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/healthz", "/readyz", "/ping", "/metrics"} {
		rec := doRequest(t, router, http.MethodGet, path, "", "")
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
		}
	}
}

func TestPublicReads(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/categories", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /v1/categories = %d", rec.Code)
	}
	var categories domain.CategoryListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &categories); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if categories.Total != 6 {
		t.Errorf("seeded categories total = %d, want 6", categories.Total)
	}

	for _, path := range []string{"/v1/products", "/v1/staff", "/v1/staff/stats", "/v1/brand", "/v1/dashboard/overview", "/v1/metrics/admin"} {
		rec := doRequest(t, router, http.MethodGet, path, "", "")
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
		}
	}
}

func TestMutationsRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method, path string
	}{
		{http.MethodPost, "/v1/categories"},
		{http.MethodPut, "/v1/categories/1"},
		{http.MethodDelete, "/v1/products/prod_001"},
		{http.MethodPost, "/v1/staff"},
		{http.MethodPut, "/v1/brand"},
		{http.MethodPost, "/v1/staff/invites"},
	}
	for _, tt := range tests {
		rec := doRequest(t, router, tt.method, tt.path, "", `{}`)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token = %d, want 401", tt.method, tt.path, rec.Code)
		}
	}
}

func TestPermissionMiddleware(t *testing.T) {
	router := newTestRouter(t)

	// A staff-role token can't create categories.
	staffToken := signTokenWithRole(t, domain.RoleStaff)
	rec := doRequest(t, router, http.MethodPost, "/v1/categories", staffToken,
		`{"name":"Blocked"}`)
	if rec.Code != http.StatusForbidden {
		t.Errorf("staff creating category = %d, want 403", rec.Code)
	}

	// A branch manager may edit staff but not delete them.
	managerToken := signTokenWithRole(t, domain.RoleBranchManager)
	rec = doRequest(t, router, http.MethodDelete, "/v1/staff/staff_003", managerToken, "")
	if rec.Code != http.StatusForbidden {
		t.Errorf("branch_manager deleting staff = %d, want 403", rec.Code)
	}
}

func TestCategoryLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	// Create a child under the seeded Bags category.
	rec := doRequest(t, router, http.MethodPost, "/v1/categories", token,
		`{"name":"Totes","parentId":"5"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create category = %d: %s", rec.Code, rec.Body.String())
	}
	var created domain.Category
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Slug != "totes" || created.Level != 2 {
		t.Errorf("created slug/level = %q/%d, want totes/2", created.Slug, created.Level)
	}

	// Bags now has a child, so deleting it conflicts.
	rec = doRequest(t, router, http.MethodDelete, "/v1/categories/5", token, "")
	if rec.Code != http.StatusConflict {
		t.Errorf("delete parent with child = %d, want 409", rec.Code)
	}

	// Delete the leaf, then fetching it 404s.
	rec = doRequest(t, router, http.MethodDelete, "/v1/categories/"+created.ID, token, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete leaf = %d", rec.Code)
	}
	rec = doRequest(t, router, http.MethodGet, "/v1/categories/"+created.ID, "", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("get deleted category = %d, want 404", rec.Code)
	}
}

func TestCategoryReparentToRootOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	// Shirts is seeded under Clothing at level 1. An explicit null parent
	// moves it back to the root, which must survive JSON decoding as a
	// state distinct from simply omitting the field.
	rec := doRequest(t, router, http.MethodPut, "/v1/categories/2", token, `{"parentId":null}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("reparent to root = %d: %s", rec.Code, rec.Body.String())
	}
	var moved domain.Category
	if err := json.Unmarshal(rec.Body.Bytes(), &moved); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if moved.ParentID != nil || moved.Level != 0 {
		t.Errorf("after null parent: parentID=%v level=%d, want nil/0", moved.ParentID, moved.Level)
	}

	// Omitting parentId leaves the placement alone.
	rec = doRequest(t, router, http.MethodPut, "/v1/categories/3", token, `{"description":"Occasion wear"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("description-only update = %d: %s", rec.Code, rec.Body.String())
	}
	var untouched domain.Category
	if err := json.Unmarshal(rec.Body.Bytes(), &untouched); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if untouched.ParentID == nil || *untouched.ParentID != "1" || untouched.Level != 1 {
		t.Errorf("after unrelated update: parentID=%v level=%d, want 1/1", untouched.ParentID, untouched.Level)
	}
}

func TestInviteLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	rec := doRequest(t, router, http.MethodPost, "/v1/staff/invites", token,
		`{"email":"fresh@localstyle.com","firstName":"Fresh","lastName":"Face","role":"staff"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create invite = %d: %s", rec.Code, rec.Body.String())
	}
	var inv domain.StaffInvite
	if err := json.Unmarshal(rec.Body.Bytes(), &inv); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// Duplicate pending invite conflicts.
	rec = doRequest(t, router, http.MethodPost, "/v1/staff/invites", token,
		`{"email":"fresh@localstyle.com","firstName":"Fresh","lastName":"Face","role":"staff"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate invite = %d, want 409", rec.Code)
	}

	// Accept it.
	rec = doRequest(t, router, http.MethodPut, "/v1/staff/invites/"+inv.ID, token, `{"accept":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("respond invite = %d: %s", rec.Code, rec.Body.String())
	}
	var accepted domain.StaffInvite
	if err := json.Unmarshal(rec.Body.Bytes(), &accepted); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if accepted.Status != domain.InviteAccepted || accepted.AcceptedAt == nil {
		t.Errorf("accepted invite = %+v, want status accepted with acceptedAt", accepted)
	}
}

func TestAuthRefreshAndLogoutOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/auth/login", "",
		`{"username":"owner@novastyle.com","password":"secret"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login = %d", rec.Code)
	}
	var loginResp domain.AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/auth/refresh", "",
		`{"refreshToken":"`+loginResp.Tokens.RefreshToken+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/auth/logout", loginResp.Tokens.AccessToken, "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("logout = %d, want 204", rec.Code)
	}
}
