package domain

import "testing"

func TestRoleRanks(t *testing.T) {
	tests := []struct {
		role Role
		rank int
	}{
		{RoleAdmin, 4},
		{RoleBrandOwner, 3},
		{RoleBranchManager, 2},
		{RoleStaff, 1},
	}
	for _, tt := range tests {
		if got := tt.role.Rank(); got != tt.rank {
			t.Errorf("Rank(%s) = %d, want %d", tt.role, got, tt.rank)
		}
	}
}

func TestCanManage(t *testing.T) {
	tests := []struct {
		actor  Role
		target Role
		want   bool
	}{
		{RoleAdmin, RoleBrandOwner, true},
		{RoleAdmin, RoleAdmin, false},
		{RoleBrandOwner, RoleBranchManager, true},
		{RoleBranchManager, RoleStaff, true},
		{RoleBranchManager, RoleBranchManager, false},
		{RoleStaff, RoleStaff, false},
		{RoleStaff, RoleAdmin, false},
	}
	for _, tt := range tests {
		if got := CanManage(tt.actor, tt.target); got != tt.want {
			t.Errorf("CanManage(%s, %s) = %v, want %v", tt.actor, tt.target, got, tt.want)
		}
	}
}

func TestRolePermissions(t *testing.T) {
	// Admin and brand_owner hold the full permission set.
	for _, role := range []Role{RoleAdmin, RoleBrandOwner} {
		perms := PermissionsFor(role)
		if len(perms) != 26 {
			t.Errorf("PermissionsFor(%s) has %d permissions, want 26", role, len(perms))
		}
	}

	// Branch managers can manage staff but not delete them.
	if !HasPermission(RoleBranchManager, PermStaffEdit) {
		t.Error("branch_manager should have staff.edit")
	}
	if HasPermission(RoleBranchManager, PermStaffDelete) {
		t.Error("branch_manager should not have staff.delete")
	}
	if HasPermission(RoleBranchManager, PermBrandEdit) {
		t.Error("branch_manager should not have brand.edit")
	}

	// Staff is read-mostly.
	if !HasPermission(RoleStaff, PermProductsView) {
		t.Error("staff should have products.view")
	}
	if HasPermission(RoleStaff, PermProductsDelete) {
		t.Error("staff should not have products.delete")
	}
	if HasPermission(RoleStaff, PermStaffCreate) {
		t.Error("staff should not have staff.create")
	}

	// Unknown roles have nothing.
	if HasPermission(Role("intern"), PermProductsView) {
		t.Error("unknown role should have no permissions")
	}
}

func TestPermissionsForReturnsCopy(t *testing.T) {
	perms := PermissionsFor(RoleStaff)
	if len(perms) == 0 {
		t.Fatal("expected staff permissions")
	}
	perms[0] = Permission("tampered")

	if PermissionsFor(RoleStaff)[0] == Permission("tampered") {
		t.Error("mutating the returned slice must not affect the role table")
	}
}

func TestRoleValid(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleBrandOwner, RoleBranchManager, RoleStaff} {
		if !role.Valid() {
			t.Errorf("%s should be valid", role)
		}
	}
	if Role("superuser").Valid() {
		t.Error("superuser should not be valid")
	}
}
