package model

// Product is soft-deactivated (IsActive=false), never hard-deleted.
// "Low stock" means Stock <= LowStockThreshold; the threshold is a per-product
// field, not a global constant.
type Product struct {
	TenantDoc         `bson:",inline"`
	CategoryID        *int64  `bson:"categoryId,omitempty" json:"categoryId,omitempty"`
	Name              string  `bson:"name" json:"name"`
	SKU               string  `bson:"sku,omitempty" json:"sku,omitempty"`
	Barcode           string  `bson:"barcode,omitempty" json:"barcode,omitempty"`
	Price             float64 `bson:"price" json:"price"`
	Cost              float64 `bson:"cost" json:"cost"`
	Stock             int     `bson:"stock" json:"stock"`
	LowStockThreshold int     `bson:"lowStockThreshold" json:"lowStockThreshold"`
	IsActive          bool    `bson:"isActive" json:"isActive"`
}

func (p *Product) IsLowStock() bool { return p.Stock <= p.LowStockThreshold }
