package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Saad200724/ZnPOS/internal/dto"
	"github.com/Saad200724/ZnPOS/internal/model"
)

type ProductRepository interface {
	Create(ctx context.Context, businessID int64, p *model.Product) error
	FindByID(ctx context.Context, businessID, id int64) (*model.Product, error)
	List(ctx context.Context, businessID int64, filter dto.ProductFilter) ([]model.Product, error)
	Update(ctx context.Context, businessID, id int64, req dto.UpdateProductRequest) (*model.Product, error)
	Deactivate(ctx context.Context, businessID, id int64) (*model.Product, error)
	ListLowStock(ctx context.Context, businessID int64) ([]model.Product, error)
}

type productRepo struct {
	tenantStore[model.Product, *model.Product]
}

func NewProductRepository(db *mongo.Database, seq Sequencer) ProductRepository {
	return &productRepo{newTenantStore[model.Product](db, seq, ColProducts, NSProduct)}
}

func (r *productRepo) Create(ctx context.Context, businessID int64, p *model.Product) error {
	return r.create(ctx, businessID, p)
}

func (r *productRepo) FindByID(ctx context.Context, businessID, id int64) (*model.Product, error) {
	return r.findByID(ctx, businessID, id, "product not found")
}

func (r *productRepo) List(ctx context.Context, businessID int64, filter dto.ProductFilter) ([]model.Product, error) {
	extra := bson.M{}

	// Active filter: "false" = inactive, "all" = everything, default = active
	switch filter.Active {
	case "false":
		extra["isActive"] = false
	case "all":
		// no filter
	default:
		extra["isActive"] = true
	}

	if filter.CategoryID != nil {
		extra["categoryId"] = *filter.CategoryID
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	if filter.Limit > 0 {
		opts = opts.SetLimit(int64(filter.Limit))
	}
	return r.list(ctx, businessID, extra, opts)
}

func (r *productRepo) Update(ctx context.Context, businessID, id int64, req dto.UpdateProductRequest) (*model.Product, error) {
	set := bson.M{}
	if req.CategoryID != nil {
		set["categoryId"] = *req.CategoryID
	}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.SKU != nil {
		set["sku"] = *req.SKU
	}
	if req.Barcode != nil {
		set["barcode"] = *req.Barcode
	}
	if req.Price != nil {
		set["price"] = req.Price.InexactFloat64()
	}
	if req.Cost != nil {
		set["cost"] = req.Cost.InexactFloat64()
	}
	if req.Stock != nil {
		set["stock"] = *req.Stock
	}
	if req.LowStockThreshold != nil {
		set["lowStockThreshold"] = *req.LowStockThreshold
	}
	return r.update(ctx, businessID, id, set, "product not found")
}

func (r *productRepo) Deactivate(ctx context.Context, businessID, id int64) (*model.Product, error) {
	return r.update(ctx, businessID, id, bson.M{"isActive": false}, "product not found")
}

// ListLowStock pushes the stock <= lowStockThreshold predicate down to the
// store. The threshold is a field of the same document, so the comparison is
// between two fields, not against a literal.
func (r *productRepo) ListLowStock(ctx context.Context, businessID int64) ([]model.Product, error) {
	extra := bson.M{
		"isActive": true,
		"$expr":    bson.M{"$lte": bson.A{"$stock", "$lowStockThreshold"}},
	}
	return r.list(ctx, businessID, extra,
		options.Find().SetSort(bson.D{{Key: "stock", Value: 1}}))
}
