package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Saad200724/ZnPOS/internal/apierror"
	"github.com/Saad200724/ZnPOS/internal/model"
)

// SalesSummary is the raw group-and-sum result behind the dashboard.
type SalesSummary struct {
	Total float64 `bson:"total"`
	Count int64   `bson:"count"`
}

// TopProductRow is one aggregation row: line items grouped by product across
// the tenant's completed transactions.
type TopProductRow struct {
	ProductID int64   `bson:"_id"`
	Name      string  `bson:"name"`
	SoldCount int64   `bson:"soldCount"`
	Revenue   float64 `bson:"revenue"`
}

// ReportRepository runs the read-only aggregate queries. Zero matching rows
// yield zeroed results, never errors.
type ReportRepository interface {
	SalesSince(ctx context.Context, businessID int64, since time.Time) (SalesSummary, error)
	TopProducts(ctx context.Context, businessID int64, limit int) ([]TopProductRow, error)
}

type reportRepo struct {
	transactions *mongo.Collection
	items        *mongo.Collection
}

func NewReportRepository(db *mongo.Database) ReportRepository {
	return &reportRepo{
		transactions: db.Collection(ColTransactions),
		items:        db.Collection(ColTransactionItems),
	}
}

func (r *reportRepo) SalesSince(ctx context.Context, businessID int64, since time.Time) (SalesSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: scoped(businessID, bson.M{
			"status":    model.TxStatusCompleted,
			"createdAt": bson.M{"$gte": since},
		})}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$total"},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.transactions.Aggregate(ctx, pipeline)
	if err != nil {
		return SalesSummary{}, apierror.StoreUnavailable(err)
	}
	var rows []SalesSummary
	if err := cur.All(ctx, &rows); err != nil {
		return SalesSummary{}, apierror.StoreUnavailable(err)
	}
	if len(rows) == 0 {
		return SalesSummary{}, nil
	}
	return rows[0], nil
}

// TopProducts joins items to their parent transaction (tenant + completed
// only), groups by product, and resolves product names. The secondary sort on
// product id keeps equal soldCount results deterministic.
func (r *reportRepo) TopProducts(ctx context.Context, businessID int64, limit int) ([]TopProductRow, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         ColTransactions,
			"localField":   "transactionId",
			"foreignField": "id",
			"as":           "tx",
		}}},
		{{Key: "$unwind", Value: "$tx"}},
		{{Key: "$match", Value: bson.M{
			"tx.businessId": businessID,
			"tx.status":     model.TxStatusCompleted,
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":       "$productId",
			"soldCount": bson.M{"$sum": "$quantity"},
			"revenue":   bson.M{"$sum": "$total"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "soldCount", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: int64(limit)}},
		{{Key: "$lookup", Value: bson.M{
			"from":         ColProducts,
			"localField":   "_id",
			"foreignField": "id",
			"as":           "product",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$product", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$project", Value: bson.M{
			"soldCount": 1,
			"revenue":   1,
			"name":      "$product.name",
		}}},
	}

	cur, err := r.items.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apierror.StoreUnavailable(err)
	}
	rows := []TopProductRow{}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, apierror.StoreUnavailable(err)
	}
	return rows, nil
}
