package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Saad200724/ZnPOS/internal/apierror"
	"github.com/Saad200724/ZnPOS/internal/dto"
	"github.com/Saad200724/ZnPOS/internal/model"
)

type CustomerRepository interface {
	Create(ctx context.Context, businessID int64, c *model.Customer) error
	FindByID(ctx context.Context, businessID, id int64) (*model.Customer, error)
	List(ctx context.Context, businessID int64) ([]model.Customer, error)
	Update(ctx context.Context, businessID, id int64, req dto.UpdateCustomerRequest) (*model.Customer, error)
	// RecordSpend adds a completed sale to the customer's running totals.
	RecordSpend(ctx context.Context, businessID, id int64, amount float64, points int) error
}

type customerRepo struct {
	tenantStore[model.Customer, *model.Customer]
}

func NewCustomerRepository(db *mongo.Database, seq Sequencer) CustomerRepository {
	return &customerRepo{newTenantStore[model.Customer](db, seq, ColCustomers, NSCustomer)}
}

func (r *customerRepo) Create(ctx context.Context, businessID int64, c *model.Customer) error {
	return r.create(ctx, businessID, c)
}

func (r *customerRepo) FindByID(ctx context.Context, businessID, id int64) (*model.Customer, error) {
	return r.findByID(ctx, businessID, id, "customer not found")
}

func (r *customerRepo) List(ctx context.Context, businessID int64) ([]model.Customer, error) {
	return r.list(ctx, businessID, bson.M{},
		options.Find().SetSort(bson.D{{Key: "lastName", Value: 1}, {Key: "firstName", Value: 1}}))
}

func (r *customerRepo) Update(ctx context.Context, businessID, id int64, req dto.UpdateCustomerRequest) (*model.Customer, error) {
	set := bson.M{}
	if req.FirstName != nil {
		set["firstName"] = *req.FirstName
	}
	if req.LastName != nil {
		set["lastName"] = *req.LastName
	}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}
	return r.update(ctx, businessID, id, set, "customer not found")
}

func (r *customerRepo) RecordSpend(ctx context.Context, businessID, id int64, amount float64, points int) error {
	res, err := r.coll.UpdateOne(ctx,
		scoped(businessID, bson.M{"id": id}),
		bson.M{"$inc": bson.M{"totalSpent": amount, "loyaltyPoints": points}},
	)
	if err != nil {
		return apierror.StoreUnavailable(err)
	}
	if res.MatchedCount == 0 {
		return apierror.NotFound("customer not found")
	}
	return nil
}
