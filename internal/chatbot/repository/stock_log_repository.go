package repository

import (
	"context"
	"fmt"

	"finance-chatbot/internal/entity"
	"finance-chatbot/pkg/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// StockLogRepository persists fetched snapshots. Snapshots are never deduplicated.
type StockLogRepository interface {
	// Create stores the snapshot and returns the generated document id as a string.
	Create(ctx context.Context, snapshot *entity.StockSnapshot) (string, error)
}

type stockLogRepository struct {
	collection *mongo.Collection
}

// NewStockLogRepository creates a repository over the stocks collection.
func NewStockLogRepository(db *mongo.Database) StockLogRepository {
	return &stockLogRepository{collection: db.Collection(common.CollectionStocks)}
}

func (r *stockLogRepository) Create(ctx context.Context, snapshot *entity.StockSnapshot) (string, error) {
	res, err := r.collection.InsertOne(ctx, snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to insert stock snapshot: %w", err)
	}
	return insertedIDString(res.InsertedID), nil
}

func insertedIDString(id interface{}) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}
