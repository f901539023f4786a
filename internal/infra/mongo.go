package infra

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/Saad200724/ZnPOS/internal/repository"
)

// NewMongo establishes the process-wide Mongo connection, validates it with a
// ping, and ensures the indexes every repository relies on. The returned
// database handle is stateless and safe to share across concurrent requests.
func NewMongo(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri).SetMaxPoolSize(25))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, err
	}
	return db, nil
}

// ensureIndexes is idempotent: CreateMany is a no-op for indexes that already
// exist with the same definition.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		repository.ColBusinesses: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique},
		},
		repository.ColUsers: {
			{Keys: bson.D{{Key: "businessId", Value: 1}, {Key: "id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "businessId", Value: 1}, {Key: "username", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "businessId", Value: 1}, {Key: "email", Value: 1}}},
		},
		repository.ColCategories: {
			{Keys: bson.D{{Key: "businessId", Value: 1}, {Key: "id", Value: 1}}, Options: unique},
		},
		repository.ColProducts: {
			{Keys: bson.D{{Key: "businessId", Value: 1}, {Key: "id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "businessId", Value: 1}, {Key: "isActive", Value: 1}}},
		},
		repository.ColCustomers: {
			{Keys: bson.D{{Key: "businessId", Value: 1}, {Key: "id", Value: 1}}, Options: unique},
		},
		repository.ColTransactions: {
			{Keys: bson.D{{Key: "businessId", Value: 1}, {Key: "id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "businessId", Value: 1}, {Key: "transactionNumber", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "businessId", Value: 1}, {Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		repository.ColTransactionItems: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "transactionId", Value: 1}}},
		},
	}

	for col, models := range indexes {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("ensure %s indexes: %w", col, err)
		}
	}
	return nil
}
