package service

import (
	"context"

	"finance-chatbot/internal/entity"

	"github.com/stretchr/testify/mock"
)

type mockAIRepository struct{ mock.Mock }

func (m *mockAIRepository) Generate(ctx context.Context, query string) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
}

type mockChatLogRepository struct{ mock.Mock }

func (m *mockChatLogRepository) Create(ctx context.Context, chat *entity.ChatLog) error {
	return m.Called(ctx, chat).Error(0)
}

type mockYahooFinanceRepository struct{ mock.Mock }

func (m *mockYahooFinanceRepository) GetLatest(ctx context.Context, symbol string) (*entity.StockSnapshot, error) {
	args := m.Called(ctx, symbol)
	snapshot, _ := args.Get(0).(*entity.StockSnapshot)
	return snapshot, args.Error(1)
}

type mockStockLogRepository struct{ mock.Mock }

func (m *mockStockLogRepository) Create(ctx context.Context, snapshot *entity.StockSnapshot) (string, error) {
	args := m.Called(ctx, snapshot)
	return args.String(0), args.Error(1)
}

type mockWatchlistRepository struct{ mock.Mock }

func (m *mockWatchlistRepository) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockWatchlistRepository) Exists(ctx context.Context, symbol string) (bool, error) {
	args := m.Called(ctx, symbol)
	return args.Bool(0), args.Error(1)
}

func (m *mockWatchlistRepository) Create(ctx context.Context, entry *entity.WatchlistEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockWatchlistRepository) FindAll(ctx context.Context) ([]entity.WatchlistEntry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]entity.WatchlistEntry)
	return entries, args.Error(1)
}
