package domain

import "time"

// StaffStatus tracks the employment lifecycle of a staff member.
type StaffStatus string

const (
	StaffActive    StaffStatus = "active"
	StaffInactive  StaffStatus = "inactive"
	StaffPending   StaffStatus = "pending"
	StaffSuspended StaffStatus = "suspended"
)

var staffStatusDisplayNames = map[StaffStatus]string{
	StaffActive:    "Active",
	StaffInactive:  "Inactive",
	StaffPending:   "Pending",
	StaffSuspended: "Suspended",
}

// Valid reports whether s is a known staff status.
func (s StaffStatus) Valid() bool {
	_, ok := staffStatusDisplayNames[s]
	return ok
}

// DisplayName returns the human-readable status name.
func (s StaffStatus) DisplayName() string {
	return staffStatusDisplayNames[s]
}

// Address is a staff member's postal address. Updates merge field-by-field.
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

// EmergencyContact is a staff member's emergency contact.
type EmergencyContact struct {
	Name         string `json:"name,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	Relationship string `json:"relationship,omitempty"`
}

// ManagerRef points at a staff member's manager.
type ManagerRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// StaffProfile represents one employee record.
//
// Permissions are a snapshot copied from RolePermissions at creation time,
// not recomputed from the role on read.
type StaffProfile struct {
	ID               string           `json:"id"`
	Email            string           `json:"email"`
	Name             string           `json:"name"`
	FirstName        string           `json:"firstName"`
	LastName         string           `json:"lastName"`
	Role             Role             `json:"role"`
	PhoneNumber      string           `json:"phoneNumber,omitempty"`
	Avatar           string           `json:"avatar,omitempty"`
	DateOfBirth      string           `json:"dateOfBirth,omitempty"`
	Address          Address          `json:"address"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
	Status           StaffStatus      `json:"status"`
	Department       string           `json:"department,omitempty"`
	Position         string           `json:"position,omitempty"`
	BranchID         string           `json:"branchId,omitempty"`
	BranchName       string           `json:"branchName,omitempty"`
	Manager          ManagerRef       `json:"manager"`
	EmployeeID       string           `json:"employeeId,omitempty"`
	HireDate         time.Time        `json:"hireDate"`
	TerminationDate  *time.Time       `json:"terminationDate,omitempty"`
	Salary           float64          `json:"salary,omitempty"`
	IsEmailVerified  bool             `json:"isEmailVerified"`
	IsPhoneVerified  bool             `json:"isPhoneVerified"`
	LastLogin        *time.Time       `json:"lastLogin,omitempty"`
	Permissions      []Permission     `json:"permissions"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
	CreatedBy        string           `json:"createdBy"`
	UpdatedBy        string           `json:"updatedBy"`
}

// StaffCreateRequest is the payload for creating a staff member.
type StaffCreateRequest struct {
	Email           string       `json:"email"`
	FirstName       string       `json:"firstName"`
	LastName        string       `json:"lastName"`
	Role            Role         `json:"role"`
	PhoneNumber     string       `json:"phoneNumber,omitempty"`
	Department      string       `json:"department,omitempty"`
	Position        string       `json:"position,omitempty"`
	BranchID        string       `json:"branchId,omitempty"`
	ManagerID       string       `json:"managerId,omitempty"`
	EmployeeID      string       `json:"employeeId,omitempty"`
	HireDate        time.Time    `json:"hireDate"`
	Salary          float64      `json:"salary,omitempty"`
	Permissions     []Permission `json:"permissions,omitempty"`
	SendInviteEmail bool         `json:"sendInviteEmail,omitempty"`
}

// StaffUpdateRequest is a partial update. Nil fields are left untouched;
// Address and EmergencyContact merge field-by-field rather than replacing
// the whole nested object.
type StaffUpdateRequest struct {
	Email            *string           `json:"email,omitempty"`
	FirstName        *string           `json:"firstName,omitempty"`
	LastName         *string           `json:"lastName,omitempty"`
	Role             *Role             `json:"role,omitempty"`
	Status           *StaffStatus      `json:"status,omitempty"`
	PhoneNumber      *string           `json:"phoneNumber,omitempty"`
	Department       *string           `json:"department,omitempty"`
	Position         *string           `json:"position,omitempty"`
	BranchID         *string           `json:"branchId,omitempty"`
	ManagerID        *string           `json:"managerId,omitempty"`
	EmployeeID       *string           `json:"employeeId,omitempty"`
	Salary           *float64          `json:"salary,omitempty"`
	Address          *Address          `json:"address,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
	TerminationDate  *time.Time        `json:"terminationDate,omitempty"`
}

// StaffFilter narrows staff list queries. Criteria are AND-combined.
type StaffFilter struct {
	Role       Role
	Status     StaffStatus
	BranchID   string
	Department string
	Search     string
}

// StaffListResponse is the envelope for staff list queries.
type StaffListResponse struct {
	Staff []StaffProfile `json:"staff"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// StaffStatsResponse aggregates the staff directory.
type StaffStatsResponse struct {
	TotalStaff     int                 `json:"totalStaff"`
	ActiveStaff    int                 `json:"activeStaff"`
	PendingInvites int                 `json:"pendingInvites"`
	ByRole         map[Role]int        `json:"byRole"`
	ByStatus       map[StaffStatus]int `json:"byStatus"`
	ByBranch       map[string]int      `json:"byBranch"`
	RecentHires    int                 `json:"recentHires"`
}

// InviteStatus tracks the lifecycle of a staff invite.
type InviteStatus string

const (
	InvitePending   InviteStatus = "pending"
	InviteAccepted  InviteStatus = "accepted"
	InviteExpired   InviteStatus = "expired"
	InviteCancelled InviteStatus = "cancelled"
)

// StaffInvite is a time-boxed offer for a prospective staff member to join.
type StaffInvite struct {
	ID         string       `json:"id"`
	Email      string       `json:"email"`
	FirstName  string       `json:"firstName"`
	LastName   string       `json:"lastName"`
	Role       Role         `json:"role"`
	BranchID   string       `json:"branchId,omitempty"`
	BranchName string       `json:"branchName,omitempty"`
	Position   string       `json:"position,omitempty"`
	Department string       `json:"department,omitempty"`
	InvitedBy  string       `json:"invitedBy"`
	Message    string       `json:"message,omitempty"`
	Status     InviteStatus `json:"status"`
	SentAt     time.Time    `json:"sentAt"`
	ExpiresAt  time.Time    `json:"expiresAt"`
	CreatedAt  time.Time    `json:"createdAt"`
	AcceptedAt *time.Time   `json:"acceptedAt,omitempty"`
}

// IsExpired reports whether the invite is past its expiry at the given
// instant. Expiry is derived, never stored, so it cannot drift out of sync
// with ExpiresAt.
func (i *StaffInvite) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// StaffInviteRequest is the payload for inviting a prospective staff member.
type StaffInviteRequest struct {
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Role       Role   `json:"role"`
	BranchID   string `json:"branchId,omitempty"`
	ManagerID  string `json:"managerId,omitempty"`
	Position   string `json:"position,omitempty"`
	Department string `json:"department,omitempty"`
	Message    string `json:"message,omitempty"`
}

// InviteFilter narrows invite list queries.
type InviteFilter struct {
	Status InviteStatus
	Email  string
}
