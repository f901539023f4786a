package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Saad200724/ZnPOS/internal/apierror"
)

// scoped conjoins the tenant predicate with an entity filter. Every
// tenant-scoped query in this package goes through here — call sites never
// assemble businessId filters themselves, so a forgotten scope cannot leak
// cross-tenant data.
func scoped(businessID int64, extra bson.M) bson.M {
	f := bson.M{"businessId": businessID}
	for k, v := range extra {
		f[k] = v
	}
	return f
}

// entityPtr constrains the generic store to pointer types that accept the
// allocator id, tenant scope, and creation timestamp.
type entityPtr[T any] interface {
	*T
	SetID(int64)
	SetBusinessID(int64)
	SetCreatedAt(time.Time)
}

// tenantStore implements the generic CRUD contract shared by every
// tenant-scoped collection. Per-entity repositories embed it and add their
// specializations.
type tenantStore[T any, PT entityPtr[T]] struct {
	coll *mongo.Collection
	seq  Sequencer
	ns   string
}

func newTenantStore[T any, PT entityPtr[T]](db *mongo.Database, seq Sequencer, col, ns string) tenantStore[T, PT] {
	return tenantStore[T, PT]{coll: db.Collection(col), seq: seq, ns: ns}
}

// create allocates the next id for the namespace, stamps scope and creation
// time, and inserts. A failed insert burns the allocated id.
func (s *tenantStore[T, PT]) create(ctx context.Context, businessID int64, e PT) error {
	id, err := s.seq.Next(ctx, s.ns)
	if err != nil {
		return err
	}
	e.SetID(id)
	e.SetBusinessID(businessID)
	e.SetCreatedAt(time.Now())

	if _, err := s.coll.InsertOne(ctx, e); err != nil {
		return apierror.StoreUnavailable(err)
	}
	return nil
}

func (s *tenantStore[T, PT]) findByID(ctx context.Context, businessID, id int64, notFoundDetail string) (PT, error) {
	var e T
	err := s.coll.FindOne(ctx, scoped(businessID, bson.M{"id": id})).Decode(&e)
	if err != nil {
		return nil, mapFindErr(err, notFoundDetail)
	}
	return &e, nil
}

func (s *tenantStore[T, PT]) list(ctx context.Context, businessID int64, extra bson.M, opts ...options.Lister[options.FindOptions]) ([]T, error) {
	cur, err := s.coll.Find(ctx, scoped(businessID, extra), opts...)
	if err != nil {
		return nil, apierror.StoreUnavailable(err)
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, apierror.StoreUnavailable(err)
	}
	return out, nil
}

// update applies a partial $set merge and returns the updated document.
// Unset fields stay untouched.
func (s *tenantStore[T, PT]) update(ctx context.Context, businessID, id int64, set bson.M, notFoundDetail string) (PT, error) {
	if len(set) == 0 {
		return s.findByID(ctx, businessID, id, notFoundDetail)
	}

	res := s.coll.FindOneAndUpdate(ctx,
		scoped(businessID, bson.M{"id": id}),
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var e T
	if err := res.Decode(&e); err != nil {
		return nil, mapFindErr(err, notFoundDetail)
	}
	return &e, nil
}

func (s *tenantStore[T, PT]) count(ctx context.Context, businessID int64, extra bson.M) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, scoped(businessID, extra))
	if err != nil {
		return 0, apierror.StoreUnavailable(err)
	}
	return n, nil
}

func (s *tenantStore[T, PT]) delete(ctx context.Context, businessID, id int64, notFoundDetail string) error {
	res, err := s.coll.DeleteOne(ctx, scoped(businessID, bson.M{"id": id}))
	if err != nil {
		return apierror.StoreUnavailable(err)
	}
	if res.DeletedCount == 0 {
		return apierror.NotFound(notFoundDetail)
	}
	return nil
}
