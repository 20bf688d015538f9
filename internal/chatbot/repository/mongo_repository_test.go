package repository

import (
	"context"
	"testing"

	"finance-chatbot/internal/entity"
	"finance-chatbot/pkg/common"
	pkgmongo "finance-chatbot/pkg/mongo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupMongo(t *testing.T) *pkgmongo.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping mongo container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := mongodb.Run(ctx, "mongo:7")
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	uri, err := ctr.ConnectionString(ctx)
	require.NoError(t, err)

	db, err := pkgmongo.NewDB(ctx, pkgmongo.Config{URI: uri, Database: "finance_chatbot_test"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(context.Background()) })
	return db
}

func TestMongoRepositories(t *testing.T) {
	db := setupMongo(t)
	ctx := context.Background()

	t.Run("chat log", func(t *testing.T) {
		repo := NewChatLogRepository(db.Database)
		require.NoError(t, repo.Create(ctx, &entity.ChatLog{Query: "What is an ETF?", Response: "A fund."}))

		var stored entity.ChatLog
		require.NoError(t, db.Database.Collection(common.CollectionChats).FindOne(ctx, bson.M{"query": "What is an ETF?"}).Decode(&stored))
		assert.Equal(t, "A fund.", stored.Response)
	})

	t.Run("stock log", func(t *testing.T) {
		repo := NewStockLogRepository(db.Database)
		snapshot := &entity.StockSnapshot{Symbol: "AAPL", CurrentPrice: 190.5, Open: 189, High: 191, Low: 188.2, Volume: 1000}

		first, err := repo.Create(ctx, snapshot)
		require.NoError(t, err)
		second, err := repo.Create(ctx, snapshot)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		oid, err := primitive.ObjectIDFromHex(first)
		require.NoError(t, err)

		var stored bson.M
		require.NoError(t, db.Database.Collection(common.CollectionStocks).FindOne(ctx, bson.M{"_id": oid}).Decode(&stored))
		assert.Equal(t, 190.5, stored["current_price"])
		assert.Equal(t, int64(1000), stored["volume"])
	})

	t.Run("watchlist", func(t *testing.T) {
		repo := NewWatchlistRepository(db.Database)
		require.NoError(t, repo.EnsureIndexes(ctx))

		entries, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)

		exists, err := repo.Exists(ctx, "AAPL")
		require.NoError(t, err)
		assert.False(t, exists)

		require.NoError(t, repo.Create(ctx, &entity.WatchlistEntry{Symbol: "AAPL"}))
		require.NoError(t, repo.Create(ctx, &entity.WatchlistEntry{Symbol: "TSLA"}))
		assert.ErrorIs(t, repo.Create(ctx, &entity.WatchlistEntry{Symbol: "AAPL"}), ErrDuplicateSymbol)

		exists, err = repo.Exists(ctx, "AAPL")
		require.NoError(t, err)
		assert.True(t, exists)

		entries, err = repo.FindAll(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []entity.WatchlistEntry{{Symbol: "AAPL"}, {Symbol: "TSLA"}}, entries)
	})
}
