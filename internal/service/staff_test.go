package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/localstyle/brand-admin-go/internal/domain"
	"github.com/localstyle/brand-admin-go/internal/infra/cache"
	"github.com/localstyle/brand-admin-go/internal/infra/memstore"
	"github.com/localstyle/brand-admin-go/internal/infra/observability"
	"github.com/localstyle/brand-admin-go/internal/service"

	"go.uber.org/zap"
)

// --- Mocks ---

type mockNotifier struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (m *mockNotifier) SendInvite(_ context.Context, inv *domain.StaffInvite) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, inv.Email)
	return nil
}

func (m *mockNotifier) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type staffFixture struct {
	svc      *service.StaffService
	staff    *memstore.StaffStore
	invites  *memstore.InviteStore
	notifier *mockNotifier
}

func newStaffFixture() *staffFixture {
	f := &staffFixture{
		staff:    memstore.NewStaffStore(),
		invites:  memstore.NewInviteStore(),
		notifier: &mockNotifier{},
	}
	branches := memstore.NewBranchDirectory(map[string]string{
		"branch_001": "Downtown LA Store",
	})
	f.svc = service.NewStaffService(
		f.staff, f.invites, branches, f.notifier,
		cache.New[*domain.StaffListResponse](time.Minute),
		observability.NewMetrics(), zap.NewNop(),
	)
	return f
}

// --- Tests ---

func TestStaffCreate_DefaultsAndSnapshot(t *testing.T) {
	f := newStaffFixture()

	p, err := f.svc.Create(context.Background(), &domain.StaffCreateRequest{
		Email:     "ana.silva@localstyle.com",
		FirstName: "Ana",
		LastName:  "Silva",
		Role:      domain.RoleBranchManager,
		BranchID:  "branch_001",
	}, "user_001")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if p.Status != domain.StaffPending {
		t.Errorf("status = %s, want pending", p.Status)
	}
	if p.Name != "Ana Silva" {
		t.Errorf("name = %q, want %q", p.Name, "Ana Silva")
	}
	if p.BranchName != "Downtown LA Store" {
		t.Errorf("branchName = %q, want resolved name", p.BranchName)
	}
	if len(p.Permissions) != len(domain.PermissionsFor(domain.RoleBranchManager)) {
		t.Errorf("permissions not snapshotted from role table: got %d", len(p.Permissions))
	}
	if p.CreatedBy != "user_001" || p.UpdatedBy != "user_001" {
		t.Errorf("createdBy/updatedBy = %q/%q, want user_001", p.CreatedBy, p.UpdatedBy)
	}
}

func TestStaffCreate_ExplicitPermissionsOverride(t *testing.T) {
	f := newStaffFixture()

	custom := []domain.Permission{domain.PermProductsView}
	p, err := f.svc.Create(context.Background(), &domain.StaffCreateRequest{
		Email:       "b@localstyle.com",
		FirstName:   "Bo",
		LastName:    "Lee",
		Role:        domain.RoleStaff,
		Permissions: custom,
	}, "user_001")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(p.Permissions) != 1 || p.Permissions[0] != domain.PermProductsView {
		t.Errorf("permissions = %v, want the explicit override", p.Permissions)
	}
}

func TestStaffCreate_Validation(t *testing.T) {
	f := newStaffFixture()

	tests := []struct {
		name string
		req  domain.StaffCreateRequest
	}{
		{"missing email", domain.StaffCreateRequest{FirstName: "A", LastName: "B", Role: domain.RoleStaff}},
		{"missing first name", domain.StaffCreateRequest{Email: "a@b.com", LastName: "B", Role: domain.RoleStaff}},
		{"unknown role", domain.StaffCreateRequest{Email: "a@b.com", FirstName: "A", LastName: "B", Role: "superuser"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Create(context.Background(), &tt.req, "user_001")
			var validation *domain.ErrValidation
			if !errors.As(err, &validation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestStaffUpdate_NestedMerge(t *testing.T) {
	f := newStaffFixture()
	ctx := context.Background()

	p, _ := f.svc.Create(ctx, &domain.StaffCreateRequest{
		Email: "c@localstyle.com", FirstName: "Cleo", LastName: "Park", Role: domain.RoleStaff,
	}, "user_001")

	// Seed a full address, then update only the city.
	_, err := f.svc.Update(ctx, p.ID, &domain.StaffUpdateRequest{
		Address: &domain.Address{Street: "1 Main St", City: "Austin", State: "TX"},
	}, "user_001")
	if err != nil {
		t.Fatalf("seed address: %v", err)
	}

	updated, err := f.svc.Update(ctx, p.ID, &domain.StaffUpdateRequest{
		Address: &domain.Address{City: "Dallas"},
	}, "user_002")
	if err != nil {
		t.Fatalf("update city: %v", err)
	}

	if updated.Address.City != "Dallas" {
		t.Errorf("city = %q, want Dallas", updated.Address.City)
	}
	if updated.Address.Street != "1 Main St" || updated.Address.State != "TX" {
		t.Errorf("street/state overwritten by partial address update: %+v", updated.Address)
	}
	if updated.UpdatedBy != "user_002" {
		t.Errorf("updatedBy = %q, want user_002", updated.UpdatedBy)
	}
}

func TestStaffUpdate_RenameRebuildsFullName(t *testing.T) {
	f := newStaffFixture()
	ctx := context.Background()

	p, _ := f.svc.Create(ctx, &domain.StaffCreateRequest{
		Email: "d@localstyle.com", FirstName: "Dana", LastName: "Wu", Role: domain.RoleStaff,
	}, "user_001")

	last := "Wu-Chen"
	updated, err := f.svc.Update(ctx, p.ID, &domain.StaffUpdateRequest{LastName: &last}, "user_001")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Dana Wu-Chen" {
		t.Errorf("name = %q, want Dana Wu-Chen", updated.Name)
	}
}

func TestStaffDelete_ActiveBlocked(t *testing.T) {
	f := newStaffFixture()
	ctx := context.Background()

	p, _ := f.svc.Create(ctx, &domain.StaffCreateRequest{
		Email: "e@localstyle.com", FirstName: "Eli", LastName: "Ng", Role: domain.RoleStaff,
	}, "user_001")

	// pending → active
	active := domain.StaffActive
	if _, err := f.svc.Update(ctx, p.ID, &domain.StaffUpdateRequest{Status: &active}, "user_001"); err != nil {
		t.Fatalf("activate: %v", err)
	}

	var conflict *domain.ErrConflict
	if err := f.svc.Delete(ctx, p.ID); !errors.As(err, &conflict) {
		t.Fatalf("expected ErrConflict deleting active staff, got %v", err)
	}

	// active → inactive, then delete succeeds
	inactive := domain.StaffInactive
	if _, err := f.svc.Update(ctx, p.ID, &domain.StaffUpdateRequest{Status: &inactive}, "user_001"); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if err := f.svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete inactive: %v", err)
	}

	var notFound *domain.ErrNotFound
	if _, err := f.svc.Get(ctx, p.ID); !errors.As(err, &notFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestStaffList_Filters(t *testing.T) {
	f := newStaffFixture()
	ctx := context.Background()

	seed := []domain.StaffProfile{
		{ID: "s1", Name: "Sarah Johnson", Email: "sarah@x.com", Role: domain.RoleBrandOwner, Status: domain.StaffActive, Department: "Executive", EmployeeID: "EMP001"},
		{ID: "s2", Name: "Marcus Chen", Email: "marcus@x.com", Role: domain.RoleBranchManager, Status: domain.StaffActive, BranchID: "branch_001", Department: "Operations", EmployeeID: "EMP002"},
		{ID: "s3", Name: "Emma Rodriguez", Email: "emma@x.com", Role: domain.RoleStaff, Status: domain.StaffPending, BranchID: "branch_001", Department: "Sales", EmployeeID: "EMP003", Position: "Sales Associate"},
	}
	for i := range seed {
		if err := f.staff.Insert(ctx, &seed[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	tests := []struct {
		name   string
		filter domain.StaffFilter
		want   int
	}{
		{"no filter", domain.StaffFilter{}, 3},
		{"by role", domain.StaffFilter{Role: domain.RoleBranchManager}, 1},
		{"by status", domain.StaffFilter{Status: domain.StaffActive}, 2},
		{"by branch", domain.StaffFilter{BranchID: "branch_001"}, 2},
		{"role AND branch", domain.StaffFilter{Role: domain.RoleStaff, BranchID: "branch_001"}, 1},
		{"search by name", domain.StaffFilter{Search: "marcus"}, 1},
		{"search by employee id", domain.StaffFilter{Search: "emp003"}, 1},
		{"search by position", domain.StaffFilter{Search: "associate"}, 1},
		{"department substring", domain.StaffFilter{Department: "oper"}, 1},
		{"no match", domain.StaffFilter{Search: "nobody"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := f.svc.List(ctx, tt.filter, 1, 20)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if resp.Total != tt.want {
				t.Errorf("total = %d, want %d", resp.Total, tt.want)
			}
		})
	}
}

func TestStaffStats(t *testing.T) {
	f := newStaffFixture()
	ctx := context.Background()

	old := time.Now().AddDate(0, -6, 0)
	recent := time.Now().AddDate(0, 0, -5)
	seed := []domain.StaffProfile{
		{ID: "s1", Role: domain.RoleBrandOwner, Status: domain.StaffActive, HireDate: old},
		{ID: "s2", Role: domain.RoleStaff, Status: domain.StaffActive, BranchID: "branch_001", HireDate: recent},
		{ID: "s3", Role: domain.RoleStaff, Status: domain.StaffPending, BranchID: "branch_001", HireDate: recent},
	}
	for i := range seed {
		if err := f.staff.Insert(ctx, &seed[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	_ = f.invites.Insert(ctx, &domain.StaffInvite{
		ID: "inv1", Email: "x@y.com", Status: domain.InvitePending,
		ExpiresAt: time.Now().Add(time.Hour),
	})
	_ = f.invites.Insert(ctx, &domain.StaffInvite{
		ID: "inv2", Email: "z@y.com", Status: domain.InvitePending,
		ExpiresAt: time.Now().Add(-time.Hour), // expired, must not count
	})

	stats, err := f.svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.TotalStaff != 3 || stats.ActiveStaff != 2 {
		t.Errorf("total/active = %d/%d, want 3/2", stats.TotalStaff, stats.ActiveStaff)
	}
	if stats.ByRole[domain.RoleStaff] != 2 {
		t.Errorf("byRole[staff] = %d, want 2", stats.ByRole[domain.RoleStaff])
	}
	if stats.ByBranch["branch_001"] != 2 || stats.ByBranch["none"] != 1 {
		t.Errorf("byBranch = %v, want branch_001:2 none:1", stats.ByBranch)
	}
	if stats.RecentHires != 2 {
		t.Errorf("recentHires = %d, want 2", stats.RecentHires)
	}
	if stats.PendingInvites != 1 {
		t.Errorf("pendingInvites = %d, want 1 (expired excluded)", stats.PendingInvites)
	}
}
