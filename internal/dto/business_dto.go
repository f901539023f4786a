package dto

import "github.com/shopspring/decimal"

// RegisterRequest creates a Business together with its first admin user.
type RegisterRequest struct {
	BusinessName string          `json:"businessName" validate:"required,min=2"`
	Email        string          `json:"email"        validate:"required,email"`
	Phone        string          `json:"phone"        validate:"omitempty,max=32"`
	Address      string          `json:"address"      validate:"omitempty,max=256"`
	TaxRate      decimal.Decimal `json:"taxRate"      validate:"min=0,max=100"`
	Currency     string          `json:"currency"     validate:"required,len=3"`

	AdminUsername string `json:"adminUsername" validate:"required,min=3,max=64"`
	AdminEmail    string `json:"adminEmail"    validate:"required,email"`
	AdminPassword string `json:"adminPassword" validate:"required,min=4"`
}

type UpdateBusinessRequest struct {
	Name     *string          `json:"name"     validate:"omitempty,min=2"`
	Email    *string          `json:"email"    validate:"omitempty,email"`
	Phone    *string          `json:"phone"    validate:"omitempty,max=32"`
	Address  *string          `json:"address"  validate:"omitempty,max=256"`
	TaxRate  *decimal.Decimal `json:"taxRate"  validate:"omitempty,min=0,max=100"`
	Currency *string          `json:"currency" validate:"omitempty,len=3"`
}

// RegisterResponse returns the new tenant and its admin.
type RegisterResponse struct {
	BusinessID int64        `json:"businessId"`
	Admin      UserResponse `json:"admin"`
}
