package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Saad200724/ZnPOS/internal/apierror"
	"github.com/Saad200724/ZnPOS/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, businessID int64, u *model.User) error
	FindByID(ctx context.Context, businessID, id int64) (*model.User, error)
	// ListActiveByIdentifier resolves a login identifier (username or email)
	// to the active users carrying it. Authentication happens before any
	// tenant is known, so this is the one deliberately unscoped read on
	// users — and because usernames are unique per tenant, not globally, the
	// same identifier can match users in several businesses. The caller
	// disambiguates by credential check.
	ListActiveByIdentifier(ctx context.Context, identifier string) ([]model.User, error)
	ListEmployees(ctx context.Context, businessID int64) ([]model.User, error)
	CountEmployees(ctx context.Context, businessID int64) (int64, error)
	UpdatePermissions(ctx context.Context, businessID, id int64, perms model.Permissions) (*model.User, error)
	SetActive(ctx context.Context, businessID, id int64, active bool) (*model.User, error)
	SetPasswordHash(ctx context.Context, businessID, id int64, hash string) error
	Delete(ctx context.Context, businessID, id int64) error
}

type userRepo struct {
	tenantStore[model.User, *model.User]
}

func NewUserRepository(db *mongo.Database, seq Sequencer) UserRepository {
	return &userRepo{newTenantStore[model.User](db, seq, ColUsers, NSUser)}
}

func (r *userRepo) Create(ctx context.Context, businessID int64, u *model.User) error {
	return r.create(ctx, businessID, u)
}

func (r *userRepo) FindByID(ctx context.Context, businessID, id int64) (*model.User, error) {
	return r.findByID(ctx, businessID, id, "user not found")
}

func (r *userRepo) ListActiveByIdentifier(ctx context.Context, identifier string) ([]model.User, error) {
	filter := bson.M{
		"isActive": true,
		"$or": []bson.M{
			{"username": identifier},
			{"email": identifier},
		},
	}
	cur, err := r.coll.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "businessId", Value: 1}, {Key: "id", Value: 1}}))
	if err != nil {
		return nil, apierror.StoreUnavailable(err)
	}
	out := []model.User{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, apierror.StoreUnavailable(err)
	}
	return out, nil
}

// ListEmployees returns the tenant's non-admin users.
func (r *userRepo) ListEmployees(ctx context.Context, businessID int64) ([]model.User, error) {
	return r.list(ctx, businessID,
		bson.M{"role": bson.M{"$ne": model.RoleAdmin}},
		options.Find().SetSort(bson.D{{Key: "id", Value: 1}}),
	)
}

func (r *userRepo) CountEmployees(ctx context.Context, businessID int64) (int64, error) {
	return r.count(ctx, businessID, bson.M{"role": bson.M{"$ne": model.RoleAdmin}})
}

func (r *userRepo) UpdatePermissions(ctx context.Context, businessID, id int64, perms model.Permissions) (*model.User, error) {
	return r.update(ctx, businessID, id, bson.M{"permissions": perms}, "user not found")
}

func (r *userRepo) SetActive(ctx context.Context, businessID, id int64, active bool) (*model.User, error) {
	return r.update(ctx, businessID, id, bson.M{"isActive": active}, "user not found")
}

func (r *userRepo) SetPasswordHash(ctx context.Context, businessID, id int64, hash string) error {
	_, err := r.update(ctx, businessID, id, bson.M{"passwordHash": hash}, "user not found")
	return err
}

func (r *userRepo) Delete(ctx context.Context, businessID, id int64) error {
	return r.delete(ctx, businessID, id, "user not found")
}
