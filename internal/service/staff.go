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

var staffTracer = otel.Tracer("service/staff")

// StaffService manages the staff directory and the invite flow.
type StaffService struct {
	store    port.StaffStore
	invites  port.InviteStore
	branches port.BranchDirectory
	notifier port.InviteNotifier
	cache    port.Cache[*domain.StaffListResponse]
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewStaffService creates a new staff service.
func NewStaffService(
	store port.StaffStore,
	invites port.InviteStore,
	branches port.BranchDirectory,
	notifier port.InviteNotifier,
	cache port.Cache[*domain.StaffListResponse],
	metrics *observability.Metrics,
	logger *zap.Logger,
) *StaffService {
	return &StaffService{
		store:    store,
		invites:  invites,
		branches: branches,
		notifier: notifier,
		cache:    cache,
		metrics:  metrics,
		logger:   logger,
	}
}

// ============================================================
// List / Get
// ============================================================

func (s *StaffService) List(ctx context.Context, filter domain.StaffFilter, page, limit int) (*domain.StaffListResponse, error) {
	ctx, span := staffTracer.Start(ctx, "StaffService.List")
	defer span.End()

	cacheKey := fmt.Sprintf("staff:%+v:p%d:l%d", filter, page, limit)
	if cached, ok := s.cache.Get(cacheKey); ok {
		s.metrics.IncrCacheHit("staff")
		return cached, nil
	}
	s.metrics.IncrCacheMiss("staff")

	all, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}

	filtered := make([]domain.StaffProfile, 0, len(all))
	for _, p := range all {
		if matchesStaffFilter(&p, filter) {
			filtered = append(filtered, p)
		}
	}

	total := len(filtered)
	resp := &domain.StaffListResponse{
		Staff: paginate(filtered, page, limit),
		Total: total,
		Page:  page,
		Limit: limit,
	}
	s.cache.Set(cacheKey, resp)
	span.SetAttributes(attribute.Int("staff.total", total))
	return resp, nil
}

// matchesStaffFilter AND-combines the filter criteria. Search matches
// case-insensitively against name, email, employee id, and position.
func matchesStaffFilter(p *domain.StaffProfile, f domain.StaffFilter) bool {
	if f.Role != "" && p.Role != f.Role {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.BranchID != "" && p.BranchID != f.BranchID {
		return false
	}
	if f.Department != "" && !strings.Contains(strings.ToLower(p.Department), strings.ToLower(f.Department)) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		haystack := strings.ToLower(p.Name + " " + p.Email + " " + p.EmployeeID + " " + p.Position)
		if !strings.Contains(haystack, q) {
			return false
		}
	}
	return true
}

func (s *StaffService) Get(ctx context.Context, id string) (*domain.StaffProfile, error) {
	ctx, span := staffTracer.Start(ctx, "StaffService.Get")
	defer span.End()
	span.SetAttributes(attribute.String("staff.id", id))

	return s.store.FindByID(ctx, id)
}

// ============================================================
// Create / Update / Delete
// ============================================================

// Create adds a staff member in pending status. Permissions are snapshotted
// from the role table unless the request supplies an explicit set.
func (s *StaffService) Create(ctx context.Context, req *domain.StaffCreateRequest, actorID string) (*domain.StaffProfile, error) {
	ctx, span := staffTracer.Start(ctx, "StaffService.Create")
	defer span.End()

	if err := validateStaffCreate(req); err != nil {
		return nil, err
	}

	permissions := req.Permissions
	if len(permissions) == 0 {
		permissions = domain.PermissionsFor(req.Role)
	}

	now := time.Now()
	p := &domain.StaffProfile{
		ID:          memstore.NewID("staff"),
		Email:       req.Email,
		Name:        req.FirstName + " " + req.LastName,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Role:        req.Role,
		PhoneNumber: req.PhoneNumber,
		Status:      domain.StaffPending,
		Department:  req.Department,
		Position:    req.Position,
		BranchID:    req.BranchID,
		EmployeeID:  req.EmployeeID,
		HireDate:    req.HireDate,
		Salary:      req.Salary,
		Permissions: permissions,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   actorID,
		UpdatedBy:   actorID,
	}
	if p.HireDate.IsZero() {
		p.HireDate = now
	}
	s.resolveBranch(ctx, p)
	s.resolveManager(ctx, p, req.ManagerID)

	if err := s.store.Insert(ctx, p); err != nil {
		return nil, fmt.Errorf("insert staff: %w", err)
	}

	s.cache.DeleteByPrefix("staff:")
	s.metrics.IncrMutation("staff")
	s.logger.Info("staff created",
		zap.String("staff_id", p.ID),
		zap.String("role", string(p.Role)),
	)

	if req.SendInviteEmail {
		_, err := s.Invite(ctx, &domain.StaffInviteRequest{
			Email:      req.Email,
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Role:       req.Role,
			BranchID:   req.BranchID,
			Position:   req.Position,
			Department: req.Department,
		}, actorID)
		if err != nil {
			// The profile exists either way; the invite can be re-sent.
			s.logger.Warn("staff created but invite failed",
				zap.String("staff_id", p.ID),
				zap.Error(err),
			)
		}
	}
	return p, nil
}

func validateStaffCreate(req *domain.StaffCreateRequest) error {
	if strings.TrimSpace(req.Email) == "" {
		return &domain.ErrValidation{Field: "email", Message: "email is required"}
	}
	if strings.TrimSpace(req.FirstName) == "" {
		return &domain.ErrValidation{Field: "firstName", Message: "first name is required"}
	}
	if strings.TrimSpace(req.LastName) == "" {
		return &domain.ErrValidation{Field: "lastName", Message: "last name is required"}
	}
	if !req.Role.Valid() {
		return &domain.ErrValidation{Field: "role", Message: "unknown role"}
	}
	return nil
}

// Update applies a partial update. Top-level fields merge shallowly; address
// and emergency contact merge field-by-field.
func (s *StaffService) Update(ctx context.Context, id string, req *domain.StaffUpdateRequest, actorID string) (*domain.StaffProfile, error) {
	ctx, span := staffTracer.Start(ctx, "StaffService.Update")
	defer span.End()
	span.SetAttributes(attribute.String("staff.id", id))

	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.FirstName != nil {
		p.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		p.LastName = *req.LastName
	}
	if req.FirstName != nil || req.LastName != nil {
		p.Name = p.FirstName + " " + p.LastName
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, &domain.ErrValidation{Field: "role", Message: "unknown role"}
		}
		p.Role = *req.Role
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, &domain.ErrValidation{Field: "status", Message: "unknown status"}
		}
		p.Status = *req.Status
	}
	if req.PhoneNumber != nil {
		p.PhoneNumber = *req.PhoneNumber
	}
	if req.Department != nil {
		p.Department = *req.Department
	}
	if req.Position != nil {
		p.Position = *req.Position
	}
	if req.BranchID != nil {
		p.BranchID = *req.BranchID
		p.BranchName = ""
		s.resolveBranch(ctx, p)
	}
	if req.ManagerID != nil {
		p.Manager = domain.ManagerRef{}
		s.resolveManager(ctx, p, *req.ManagerID)
	}
	if req.EmployeeID != nil {
		p.EmployeeID = *req.EmployeeID
	}
	if req.Salary != nil {
		p.Salary = *req.Salary
	}
	if req.TerminationDate != nil {
		p.TerminationDate = req.TerminationDate
	}
	if req.Address != nil {
		mergeAddress(&p.Address, req.Address)
	}
	if req.EmergencyContact != nil {
		mergeEmergencyContact(&p.EmergencyContact, req.EmergencyContact)
	}
	p.UpdatedAt = time.Now()
	p.UpdatedBy = actorID

	if err := s.store.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update staff: %w", err)
	}

	s.cache.DeleteByPrefix("staff:")
	s.metrics.IncrMutation("staff")
	return p, nil
}

func mergeAddress(dst *domain.Address, src *domain.Address) {
	if src.Street != "" {
		dst.Street = src.Street
	}
	if src.City != "" {
		dst.City = src.City
	}
	if src.State != "" {
		dst.State = src.State
	}
	if src.ZipCode != "" {
		dst.ZipCode = src.ZipCode
	}
	if src.Country != "" {
		dst.Country = src.Country
	}
}

func mergeEmergencyContact(dst *domain.EmergencyContact, src *domain.EmergencyContact) {
	if src.Name != "" {
		dst.Name = src.Name
	}
	if src.PhoneNumber != "" {
		dst.PhoneNumber = src.PhoneNumber
	}
	if src.Relationship != "" {
		dst.Relationship = src.Relationship
	}
}

// Delete removes a staff member. Active members must be deactivated first.
func (s *StaffService) Delete(ctx context.Context, id string) error {
	ctx, span := staffTracer.Start(ctx, "StaffService.Delete")
	defer span.End()
	span.SetAttributes(attribute.String("staff.id", id))

	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p.Status == domain.StaffActive {
		return &domain.ErrConflict{Message: "cannot delete active staff member; deactivate first"}
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.DeleteByPrefix("staff:")
	s.metrics.IncrMutation("staff")
	s.logger.Info("staff deleted", zap.String("staff_id", id))
	return nil
}

// ============================================================
// Stats
// ============================================================

// Stats aggregates the directory: counts by role, status, and branch, hires
// in the last 30 days, and currently pending invites.
func (s *StaffService) Stats(ctx context.Context) (*domain.StaffStatsResponse, error) {
	ctx, span := staffTracer.Start(ctx, "StaffService.Stats")
	defer span.End()

	all, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: list staff: %w", err)
	}
	invites, err := s.invites.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: list invites: %w", err)
	}

	stats := &domain.StaffStatsResponse{
		TotalStaff: len(all),
		ByRole:     make(map[domain.Role]int),
		ByStatus:   make(map[domain.StaffStatus]int),
		ByBranch:   make(map[string]int),
	}

	cutoff := time.Now().AddDate(0, 0, -30)
	for _, p := range all {
		stats.ByRole[p.Role]++
		stats.ByStatus[p.Status]++
		branch := p.BranchID
		if branch == "" {
			branch = "none"
		}
		stats.ByBranch[branch]++
		if p.Status == domain.StaffActive {
			stats.ActiveStaff++
		}
		if p.HireDate.After(cutoff) {
			stats.RecentHires++
		}
	}

	now := time.Now()
	for i := range invites {
		if invites[i].Status == domain.InvitePending && !invites[i].IsExpired(now) {
			stats.PendingInvites++
		}
	}
	return stats, nil
}

// ============================================================
// Internal lookups
// ============================================================

// resolveBranch fills BranchName from the directory. Unknown branches are
// left unnamed rather than failing the write.
func (s *StaffService) resolveBranch(ctx context.Context, p *domain.StaffProfile) {
	if p.BranchID == "" {
		return
	}
	name, err := s.branches.BranchName(ctx, p.BranchID)
	if err != nil {
		s.logger.Warn("unknown branch on staff record",
			zap.String("staff_id", p.ID),
			zap.String("branch_id", p.BranchID),
		)
		return
	}
	p.BranchName = name
}

func (s *StaffService) resolveManager(ctx context.Context, p *domain.StaffProfile, managerID string) {
	if managerID == "" {
		return
	}
	manager, err := s.store.FindByID(ctx, managerID)
	if err != nil {
		s.logger.Warn("unknown manager on staff record",
			zap.String("staff_id", p.ID),
			zap.String("manager_id", managerID),
		)
		return
	}
	p.Manager = domain.ManagerRef{ID: manager.ID, Name: manager.Name}
}
