package domain

import "time"

// UserRole enumerates supported roles.
type UserRole string

const (
	RoleBuyer     UserRole = "buyer"
	RoleSeller    UserRole = "seller"
	RoleUndecided UserRole = "undecided"
)

// Valid reports whether the role is one of the known values.
func (r UserRole) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleUndecided:
		return true
	}
	return false
}

// Plan enumerates subscription tiers.
type Plan string

const (
	PlanFree       Plan = "free"
	PlanStarter    Plan = "starter"
	PlanPro        Plan = "pro"
	PlanEnterprise Plan = "enterprise"
	PlanTeam       Plan = "team"
)

// SellerProfile carries the KYC data collected during seller onboarding.
// Entitlement logic treats it as opaque beyond presence.
type SellerProfile struct {
	TaxID             string `json:"tax_id"`
	BankAccountName   string `json:"bank_account_name"`
	BankAccountNumber string `json:"bank_account_number"`
	RoutingCode       string `json:"routing_code"`
	Address           string `json:"address"`
}

// User is the stored account record, including the credential hash. It never
// leaves the service; callers see the derived Session.
type User struct {
	ID             string
	Email          string
	Mobile         string
	DisplayName    string
	Role           UserRole
	Plan           Plan
	PasswordHash   []byte
	EmailVerified  bool
	SellerVerified bool
	SellerProfile  *SellerProfile
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Session is the authenticated view of a user for the lifetime of a browsing
// session.
type Session struct {
	UserID         string         `json:"user_id"`
	Email          string         `json:"email"`
	DisplayName    string         `json:"display_name"`
	Role           UserRole       `json:"role"`
	Plan           Plan           `json:"plan"`
	EmailVerified  bool           `json:"email_verified"`
	SellerVerified bool           `json:"seller_verified"`
	SellerProfile  *SellerProfile `json:"seller_profile,omitempty"`
}

// Session derives the external session view from the stored record.
func (u *User) Session() *Session {
	return &Session{
		UserID:         u.ID,
		Email:          u.Email,
		DisplayName:    u.DisplayName,
		Role:           u.Role,
		Plan:           u.Plan,
		EmailVerified:  u.EmailVerified,
		SellerVerified: u.SellerVerified,
		SellerProfile:  u.SellerProfile,
	}
}
