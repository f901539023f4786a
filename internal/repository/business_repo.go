package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Saad200724/ZnPOS/internal/apierror"
	"github.com/Saad200724/ZnPOS/internal/dto"
	"github.com/Saad200724/ZnPOS/internal/model"
)

// BusinessRepository is the only unscoped repository: Business is the tenant
// root itself.
type BusinessRepository interface {
	Create(ctx context.Context, b *model.Business) error
	FindByID(ctx context.Context, id int64) (*model.Business, error)
	Update(ctx context.Context, id int64, req dto.UpdateBusinessRequest) (*model.Business, error)
}

type businessRepo struct {
	coll *mongo.Collection
	seq  Sequencer
}

func NewBusinessRepository(db *mongo.Database, seq Sequencer) BusinessRepository {
	return &businessRepo{coll: db.Collection(ColBusinesses), seq: seq}
}

func (r *businessRepo) Create(ctx context.Context, b *model.Business) error {
	id, err := r.seq.Next(ctx, NSBusiness)
	if err != nil {
		return err
	}
	b.ID = id
	b.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return apierror.StoreUnavailable(err)
	}
	return nil
}

func (r *businessRepo) FindByID(ctx context.Context, id int64) (*model.Business, error) {
	var b model.Business
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		return nil, mapFindErr(err, "business not found")
	}
	return &b, nil
}

func (r *businessRepo) Update(ctx context.Context, id int64, req dto.UpdateBusinessRequest) (*model.Business, error) {
	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}
	if req.Address != nil {
		set["address"] = *req.Address
	}
	if req.TaxRate != nil {
		set["taxRate"] = req.TaxRate.InexactFloat64()
	}
	if req.Currency != nil {
		set["currency"] = *req.Currency
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	res := r.coll.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var b model.Business
	if err := res.Decode(&b); err != nil {
		return nil, mapFindErr(err, "business not found")
	}
	return &b, nil
}
