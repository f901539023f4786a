// Package authz evaluates role/permission predicates over the session
// principal. Every gated operation consults these functions before touching a
// repository; the admin bypass lives here and nowhere else.
package authz

import (
	"github.com/Saad200724/ZnPOS/internal/apierror"
	"github.com/Saad200724/ZnPOS/internal/model"
)

// Capability names a permission flag.
type Capability string

const (
	CapabilityPOS       Capability = "pos"
	CapabilityInventory Capability = "inventory"
	CapabilityCustomers Capability = "customers"
	CapabilityReports   Capability = "reports"
	CapabilityEmployees Capability = "employees"
	CapabilitySettings  Capability = "settings"
)

// Principal is the authenticated caller attached to every request by the
// boundary. It is hydrated from the stored User at authentication time —
// role and permission fields are never trusted from request payloads.
type Principal struct {
	UserID      int64             `json:"userId"`
	BusinessID  int64             `json:"businessId"`
	Role        string            `json:"role"`
	Permissions model.Permissions `json:"permissions"`
}

// FromUser projects a stored user into a principal.
func FromUser(u *model.User) *Principal {
	return &Principal{
		UserID:      u.ID,
		BusinessID:  u.BusinessID,
		Role:        u.Role,
		Permissions: u.Permissions,
	}
}

// RequireAuthenticated fails with Unauthorized when no principal exists.
func RequireAuthenticated(p *Principal) error {
	if p == nil || p.UserID == 0 {
		return apierror.Unauthorized("authentication required")
	}
	return nil
}

// RequirePermission fails with Forbidden unless the principal is an admin or
// carries the capability flag.
func RequirePermission(p *Principal, c Capability) error {
	if err := RequireAuthenticated(p); err != nil {
		return err
	}
	if p.Role == model.RoleAdmin {
		return nil
	}
	if !p.Permissions.Allows(string(c)) {
		return apierror.Forbidden("insufficient permissions")
	}
	return nil
}

// RequireAdmin fails with Forbidden unless the principal's role is admin.
func RequireAdmin(p *Principal) error {
	if err := RequireAuthenticated(p); err != nil {
		return err
	}
	if p.Role != model.RoleAdmin {
		return apierror.Forbidden("admin access required")
	}
	return nil
}
