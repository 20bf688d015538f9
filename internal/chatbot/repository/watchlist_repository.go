package repository

import (
	"context"
	"errors"
	"fmt"

	"finance-chatbot/internal/entity"
	"finance-chatbot/pkg/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateSymbol is returned by WatchlistRepository.Create when the symbol is already stored.
var ErrDuplicateSymbol = errors.New("symbol already in watchlist")

// WatchlistRepository stores at most one entry per symbol.
type WatchlistRepository interface {
	EnsureIndexes(ctx context.Context) error
	Exists(ctx context.Context, symbol string) (bool, error)
	Create(ctx context.Context, entry *entity.WatchlistEntry) error
	FindAll(ctx context.Context) ([]entity.WatchlistEntry, error)
}

type watchlistRepository struct {
	collection *mongo.Collection
}

// NewWatchlistRepository creates a repository over the watchlist collection.
func NewWatchlistRepository(db *mongo.Database) WatchlistRepository {
	return &watchlistRepository{collection: db.Collection(common.CollectionWatchlist)}
}

// EnsureIndexes creates the unique index on symbol.
func (r *watchlistRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "symbol", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("symbol_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create watchlist index: %w", err)
	}
	return nil
}

func (r *watchlistRepository) Exists(ctx context.Context, symbol string) (bool, error) {
	err := r.collection.FindOne(ctx, bson.M{"symbol": symbol}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up watchlist symbol: %w", err)
	}
	return true, nil
}

func (r *watchlistRepository) Create(ctx context.Context, entry *entity.WatchlistEntry) error {
	if _, err := r.collection.InsertOne(ctx, entry); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSymbol
		}
		return fmt.Errorf("failed to insert watchlist entry: %w", err)
	}
	return nil
}

// FindAll returns every entry in natural order, without the document id.
func (r *watchlistRepository) FindAll(ctx context.Context) ([]entity.WatchlistEntry, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 0}))
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist: %w", err)
	}

	entries := make([]entity.WatchlistEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode watchlist: %w", err)
	}
	return entries, nil
}
