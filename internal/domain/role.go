package domain

// Role classifies a staff member and fully determines their permission set.
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleBrandOwner    Role = "brand_owner"
	RoleBranchManager Role = "branch_manager"
	RoleStaff         Role = "staff"
)

// Permission is an atomic capability string gating one action on one entity type.
type Permission string

const (
	PermProductsView     Permission = "products.view"
	PermProductsCreate   Permission = "products.create"
	PermProductsEdit     Permission = "products.edit"
	PermProductsDelete   Permission = "products.delete"
	PermCategoriesView   Permission = "categories.view"
	PermCategoriesCreate Permission = "categories.create"
	PermCategoriesEdit   Permission = "categories.edit"
	PermCategoriesDelete Permission = "categories.delete"
	PermOrdersView       Permission = "orders.view"
	PermOrdersCreate     Permission = "orders.create"
	PermOrdersEdit       Permission = "orders.edit"
	PermOrdersDelete     Permission = "orders.delete"
	PermStaffView        Permission = "staff.view"
	PermStaffCreate      Permission = "staff.create"
	PermStaffEdit        Permission = "staff.edit"
	PermStaffDelete      Permission = "staff.delete"
	PermBranchesView     Permission = "branches.view"
	PermBranchesCreate   Permission = "branches.create"
	PermBranchesEdit     Permission = "branches.edit"
	PermBranchesDelete   Permission = "branches.delete"
	PermBrandView        Permission = "brand.view"
	PermBrandEdit        Permission = "brand.edit"
	PermReportsView      Permission = "reports.view"
	PermReportsExport    Permission = "reports.export"
	PermSettingsView     Permission = "settings.view"
	PermSettingsEdit     Permission = "settings.edit"
)

// roleRanks orders roles for management checks. Higher outranks lower.
var roleRanks = map[Role]int{
	RoleAdmin:         4,
	RoleBrandOwner:    3,
	RoleBranchManager: 2,
	RoleStaff:         1,
}

// RolePermissions maps each role to its fixed permission set. There are no
// per-user overrides; staff records copy this table at creation time.
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermProductsView, PermProductsCreate, PermProductsEdit, PermProductsDelete,
		PermCategoriesView, PermCategoriesCreate, PermCategoriesEdit, PermCategoriesDelete,
		PermOrdersView, PermOrdersCreate, PermOrdersEdit, PermOrdersDelete,
		PermStaffView, PermStaffCreate, PermStaffEdit, PermStaffDelete,
		PermBranchesView, PermBranchesCreate, PermBranchesEdit, PermBranchesDelete,
		PermBrandView, PermBrandEdit,
		PermReportsView, PermReportsExport,
		PermSettingsView, PermSettingsEdit,
	},
	RoleBrandOwner: {
		PermProductsView, PermProductsCreate, PermProductsEdit, PermProductsDelete,
		PermCategoriesView, PermCategoriesCreate, PermCategoriesEdit, PermCategoriesDelete,
		PermOrdersView, PermOrdersCreate, PermOrdersEdit, PermOrdersDelete,
		PermStaffView, PermStaffCreate, PermStaffEdit, PermStaffDelete,
		PermBranchesView, PermBranchesCreate, PermBranchesEdit, PermBranchesDelete,
		PermBrandView, PermBrandEdit,
		PermReportsView, PermReportsExport,
		PermSettingsView, PermSettingsEdit,
	},
	RoleBranchManager: {
		PermProductsView, PermProductsCreate, PermProductsEdit,
		PermCategoriesView,
		PermOrdersView, PermOrdersCreate, PermOrdersEdit, PermOrdersDelete,
		PermStaffView, PermStaffCreate, PermStaffEdit,
		PermBranchesView,
		PermReportsView,
		PermSettingsView,
	},
	RoleStaff: {
		PermProductsView,
		PermCategoriesView,
		PermOrdersView, PermOrdersCreate, PermOrdersEdit,
		PermReportsView,
	},
}

var roleDisplayNames = map[Role]string{
	RoleAdmin:         "Administrator",
	RoleBrandOwner:    "Brand Owner",
	RoleBranchManager: "Branch Manager",
	RoleStaff:         "Staff Member",
}

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	_, ok := roleRanks[r]
	return ok
}

// Rank returns the hierarchy rank of r (admin=4 .. staff=1), 0 if unknown.
func (r Role) Rank() int {
	return roleRanks[r]
}

// DisplayName returns the human-readable role name.
func (r Role) DisplayName() string {
	return roleDisplayNames[r]
}

// ParseRole validates a raw role string from a request.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

// PermissionsFor returns a copy of the permission set for role.
// It is a total function over valid roles; an unknown role yields nil.
func PermissionsFor(role Role) []Permission {
	perms, ok := RolePermissions[role]
	if !ok {
		return nil
	}
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// HasPermission reports whether role's permission set contains p.
func HasPermission(role Role, p Permission) bool {
	for _, granted := range RolePermissions[role] {
		if granted == p {
			return true
		}
	}
	return false
}

// CanManage reports whether actor may assign or administer target.
// Strictly greater rank is required: a role never manages its own peers,
// including itself.
func CanManage(actor, target Role) bool {
	return roleRanks[actor] > roleRanks[target]
}
