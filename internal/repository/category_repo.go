package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Saad200724/ZnPOS/internal/dto"
	"github.com/Saad200724/ZnPOS/internal/model"
)

type CategoryRepository interface {
	Create(ctx context.Context, businessID int64, c *model.Category) error
	FindByID(ctx context.Context, businessID, id int64) (*model.Category, error)
	List(ctx context.Context, businessID int64) ([]model.Category, error)
	Update(ctx context.Context, businessID, id int64, req dto.UpdateCategoryRequest) (*model.Category, error)
}

type categoryRepo struct {
	tenantStore[model.Category, *model.Category]
}

func NewCategoryRepository(db *mongo.Database, seq Sequencer) CategoryRepository {
	return &categoryRepo{newTenantStore[model.Category](db, seq, ColCategories, NSCategory)}
}

func (r *categoryRepo) Create(ctx context.Context, businessID int64, c *model.Category) error {
	return r.create(ctx, businessID, c)
}

func (r *categoryRepo) FindByID(ctx context.Context, businessID, id int64) (*model.Category, error) {
	return r.findByID(ctx, businessID, id, "category not found")
}

func (r *categoryRepo) List(ctx context.Context, businessID int64) ([]model.Category, error) {
	return r.list(ctx, businessID, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

func (r *categoryRepo) Update(ctx context.Context, businessID, id int64, req dto.UpdateCategoryRequest) (*model.Category, error) {
	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	return r.update(ctx, businessID, id, set, "category not found")
}
