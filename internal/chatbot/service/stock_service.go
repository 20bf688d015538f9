package service

import (
	"context"
	"fmt"

	"finance-chatbot/internal/chatbot/dto"
	"finance-chatbot/internal/chatbot/repository"
	"finance-chatbot/pkg/common"
	"finance-chatbot/pkg/logger"
)

// StockService fetches the latest bar for a symbol and records it.
type StockService interface {
	GetLatest(ctx context.Context, symbol string) (*dto.StockResponse, error)
}

// NewStockService creates a new stock service.
func NewStockService(marketRepo repository.YahooFinanceRepository, stockRepo repository.StockLogRepository, logger *logger.Logger) StockService {
	return &stockService{
		marketRepo: marketRepo,
		stockRepo:  stockRepo,
		logger:     logger,
	}
}

type stockService struct {
	marketRepo repository.YahooFinanceRepository
	stockRepo  repository.StockLogRepository
	logger     *logger.Logger
}

// GetLatest uses common.DefaultStockSymbol when symbol is empty. Nothing is stored when the
// market data fetch fails.
func (s *stockService) GetLatest(ctx context.Context, symbol string) (*dto.StockResponse, error) {
	if symbol == "" {
		symbol = common.DefaultStockSymbol
	}

	snapshot, err := s.marketRepo.GetLatest(ctx, symbol)
	if err != nil {
		s.logger.Warn("Failed to fetch stock data", logger.StringField("symbol", symbol), logger.ErrorField(err))
		return nil, err
	}

	id, err := s.stockRepo.Create(ctx, snapshot)
	if err != nil {
		s.logger.Error("Failed to save stock snapshot", logger.StringField("symbol", symbol), logger.ErrorField(err))
		return nil, fmt.Errorf("failed to save stock snapshot: %w", err)
	}

	return dto.NewStockResponse(snapshot, id), nil
}
