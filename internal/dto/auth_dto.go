package dto

import "github.com/Saad200724/ZnPOS/internal/model"

// LoginRequest accepts a username OR an email as identifier.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role"     validate:"required,oneof=admin manager employee"`
	// Permissions: nil = role defaults
	Permissions *model.Permissions `json:"permissions"`
}

type UpdatePermissionsRequest struct {
	Permissions model.Permissions `json:"permissions"`
}

// UserResponse is the external projection of a user. It never carries the
// password hash.
type UserResponse struct {
	ID          int64             `json:"id"`
	BusinessID  int64             `json:"businessId"`
	Username    string            `json:"username"`
	Email       string            `json:"email"`
	Role        string            `json:"role"`
	IsActive    bool              `json:"isActive"`
	Permissions model.Permissions `json:"permissions"`
	CreatedAt   string            `json:"createdAt"`
}
