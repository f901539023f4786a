package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Saad200724/ZnPOS/internal/apierror"
	"github.com/Saad200724/ZnPOS/internal/model"
)

// Allocator namespaces, one counter document each.
const (
	NSBusiness        = "business"
	NSUser            = "user"
	NSCategory        = "category"
	NSProduct         = "product"
	NSCustomer        = "customer"
	NSTransaction     = "transaction"
	NSTransactionItem = "transaction_item"
)

// Sequencer issues monotonically increasing integer ids per namespace.
// Ids are never reused; an id burned by a failed insert stays burned.
type Sequencer interface {
	Next(ctx context.Context, namespace string) (int64, error)
}

type counterRepo struct{ coll *mongo.Collection }

func NewSequencer(db *mongo.Database) Sequencer {
	return &counterRepo{coll: db.Collection(ColCounters)}
}

func (r *counterRepo) Next(ctx context.Context, namespace string) (int64, error) {
	// Single atomic read-modify-write on the namespace's counter document.
	// Upsert seeds an unseen namespace so its first issued id is 1.
	res := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": namespace},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var c model.Counter
	if err := res.Decode(&c); err != nil {
		return 0, apierror.StoreUnavailable(err)
	}
	return c.Seq, nil
}
