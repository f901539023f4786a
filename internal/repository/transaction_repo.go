package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Saad200724/ZnPOS/internal/apierror"
	"github.com/Saad200724/ZnPOS/internal/model"
)

// TransactionRepository is the append-only ledger. There is deliberately no
// update or delete surface beyond the status flip that finishes the staged
// write path.
type TransactionRepository interface {
	CreateHeader(ctx context.Context, businessID int64, t *model.Transaction) error
	InsertItem(ctx context.Context, it *model.TransactionItem) error
	SetStatus(ctx context.Context, businessID, id int64, status string) error
	FindByID(ctx context.Context, businessID, id int64) (*model.Transaction, error)
	List(ctx context.Context, businessID int64, limit int) ([]model.Transaction, error)
	ListItems(ctx context.Context, transactionID int64) ([]model.TransactionItem, error)
	// ListStalePending feeds the reconciler: headers stuck in "pending" from
	// before the cutoff, across all tenants.
	ListStalePending(ctx context.Context, cutoff time.Time, limit int) ([]model.Transaction, error)
}

type transactionRepo struct {
	tenantStore[model.Transaction, *model.Transaction]
	items *mongo.Collection
	seq   Sequencer
}

func NewTransactionRepository(db *mongo.Database, seq Sequencer) TransactionRepository {
	return &transactionRepo{
		tenantStore: newTenantStore[model.Transaction](db, seq, ColTransactions, NSTransaction),
		items:       db.Collection(ColTransactionItems),
		seq:         seq,
	}
}

func (r *transactionRepo) CreateHeader(ctx context.Context, businessID int64, t *model.Transaction) error {
	return r.create(ctx, businessID, t)
}

func (r *transactionRepo) InsertItem(ctx context.Context, it *model.TransactionItem) error {
	id, err := r.seq.Next(ctx, NSTransactionItem)
	if err != nil {
		return err
	}
	it.ID = id
	it.CreatedAt = time.Now()

	if _, err := r.items.InsertOne(ctx, it); err != nil {
		return apierror.StoreUnavailable(err)
	}
	return nil
}

func (r *transactionRepo) SetStatus(ctx context.Context, businessID, id int64, status string) error {
	_, err := r.update(ctx, businessID, id, bson.M{"status": status}, "transaction not found")
	return err
}

func (r *transactionRepo) FindByID(ctx context.Context, businessID, id int64) (*model.Transaction, error) {
	return r.findByID(ctx, businessID, id, "transaction not found")
}

func (r *transactionRepo) List(ctx context.Context, businessID int64, limit int) ([]model.Transaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "id", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}
	return r.list(ctx, businessID, bson.M{}, opts)
}

func (r *transactionRepo) ListItems(ctx context.Context, transactionID int64) ([]model.TransactionItem, error) {
	cur, err := r.items.Find(ctx,
		bson.M{"transactionId": transactionID},
		options.Find().SetSort(bson.D{{Key: "id", Value: 1}}),
	)
	if err != nil {
		return nil, apierror.StoreUnavailable(err)
	}
	out := []model.TransactionItem{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, apierror.StoreUnavailable(err)
	}
	return out, nil
}

func (r *transactionRepo) ListStalePending(ctx context.Context, cutoff time.Time, limit int) ([]model.Transaction, error) {
	cur, err := r.coll.Find(ctx,
		bson.M{"status": model.TxStatusPending, "createdAt": bson.M{"$lt": cutoff}},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}).SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, apierror.StoreUnavailable(err)
	}
	out := []model.Transaction{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, apierror.StoreUnavailable(err)
	}
	return out, nil
}
