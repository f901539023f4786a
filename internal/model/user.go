package model

import "strings"

// Role: "admin" | "manager" | "employee"
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// Permissions are the per-user capability flags. An admin role satisfies every
// capability check regardless of these flags (see authz).
type Permissions struct {
	POS       bool `bson:"pos" json:"pos"`
	Inventory bool `bson:"inventory" json:"inventory"`
	Customers bool `bson:"customers" json:"customers"`
	Reports   bool `bson:"reports" json:"reports"`
	Employees bool `bson:"employees" json:"employees"`
	Settings  bool `bson:"settings" json:"settings"`
}

// Allows reports whether the named capability flag is set.
func (p Permissions) Allows(capability string) bool {
	switch capability {
	case "pos":
		return p.POS
	case "inventory":
		return p.Inventory
	case "customers":
		return p.Customers
	case "reports":
		return p.Reports
	case "employees":
		return p.Employees
	case "settings":
		return p.Settings
	default:
		return false
	}
}

// DefaultPermissions returns the role-based flags applied when a new user is
// created without an explicit permission set.
func DefaultPermissions(role string) Permissions {
	switch role {
	case RoleAdmin:
		return Permissions{POS: true, Inventory: true, Customers: true, Reports: true, Employees: true, Settings: true}
	case RoleManager:
		return Permissions{POS: true, Inventory: true, Customers: true, Reports: true}
	default:
		return Permissions{POS: true}
	}
}

// User stores tenant staff with role-based access. PasswordHash is a bcrypt
// hash for new users; pre-migration records may still hold a legacy plaintext
// value until their first successful login rehashes it.
type User struct {
	TenantDoc    `bson:",inline"`
	Username     string      `bson:"username" json:"username"`
	Email        string      `bson:"email" json:"email"`
	PasswordHash string      `bson:"passwordHash" json:"-"`
	Role         string      `bson:"role" json:"role"`
	IsActive     bool        `bson:"isActive" json:"isActive"`
	Permissions  Permissions `bson:"permissions" json:"permissions"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// HasHashedPassword distinguishes the two credential representations:
// bcrypt hashes always carry the $2 version prefix.
func (u *User) HasHashedPassword() bool {
	return strings.HasPrefix(u.PasswordHash, "$2")
}
