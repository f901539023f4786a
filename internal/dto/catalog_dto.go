package dto

import "github.com/shopspring/decimal"

// ─── Categories ──────────────────────────────────────────────────────────────

type CreateCategoryRequest struct {
	Name        string `json:"name"        validate:"required,min=1,max=128"`
	Description string `json:"description" validate:"omitempty,max=512"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1,max=128"`
	Description *string `json:"description" validate:"omitempty,max=512"`
}

// ─── Products ────────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	CategoryID        *int64          `json:"categoryId"`
	Name              string          `json:"name"              validate:"required,min=1,max=128"`
	SKU               string          `json:"sku"               validate:"omitempty,max=64"`
	Barcode           string          `json:"barcode"           validate:"omitempty,max=64"`
	Price             decimal.Decimal `json:"price"             validate:"min=0"`
	Cost              decimal.Decimal `json:"cost"              validate:"min=0"`
	Stock             int             `json:"stock"             validate:"min=0"`
	LowStockThreshold int             `json:"lowStockThreshold" validate:"min=0"`
}

type UpdateProductRequest struct {
	CategoryID        *int64           `json:"categoryId"`
	Name              *string          `json:"name"              validate:"omitempty,min=1,max=128"`
	SKU               *string          `json:"sku"               validate:"omitempty,max=64"`
	Barcode           *string          `json:"barcode"           validate:"omitempty,max=64"`
	Price             *decimal.Decimal `json:"price"             validate:"omitempty,min=0"`
	Cost              *decimal.Decimal `json:"cost"              validate:"omitempty,min=0"`
	Stock             *int             `json:"stock"             validate:"omitempty,min=0"`
	LowStockThreshold *int             `json:"lowStockThreshold" validate:"omitempty,min=0"`
}

// ProductFilter narrows product listings. Active: "false" = inactive only,
// "all" = everything, anything else = active only (default).
type ProductFilter struct {
	CategoryID *int64 `json:"categoryId"`
	Active     string `json:"active"`
	Limit      int    `json:"limit" validate:"omitempty,min=1,max=500"`
}
