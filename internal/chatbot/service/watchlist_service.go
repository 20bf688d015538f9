package service

import (
	"context"
	"errors"
	"fmt"

	"finance-chatbot/internal/chatbot/repository"
	"finance-chatbot/internal/entity"
	"finance-chatbot/pkg/apperror"
	"finance-chatbot/pkg/logger"
)

const symbolRequiredMessage = "Stock symbol required"

// WatchlistService manages the deduplicated watchlist.
type WatchlistService interface {
	Add(ctx context.Context, symbol string) error
	List(ctx context.Context) ([]entity.WatchlistEntry, error)
}

// NewWatchlistService creates a new watchlist service.
func NewWatchlistService(watchlistRepo repository.WatchlistRepository, logger *logger.Logger) WatchlistService {
	return &watchlistService{
		watchlistRepo: watchlistRepo,
		logger:        logger,
	}
}

type watchlistService struct {
	watchlistRepo repository.WatchlistRepository
	logger        *logger.Logger
}

// Add inserts symbol unless it is already present. A concurrent add that loses the race on the
// unique index is reported the same way as one caught by the existence check.
func (s *watchlistService) Add(ctx context.Context, symbol string) error {
	if symbol == "" {
		return apperror.New(apperror.KindValidation, symbolRequiredMessage)
	}

	exists, err := s.watchlistRepo.Exists(ctx, symbol)
	if err != nil {
		return err
	}
	if exists {
		return alreadyInWatchlist(symbol)
	}

	if err := s.watchlistRepo.Create(ctx, &entity.WatchlistEntry{Symbol: symbol}); err != nil {
		if errors.Is(err, repository.ErrDuplicateSymbol) {
			return alreadyInWatchlist(symbol)
		}
		s.logger.Error("Failed to add watchlist entry", logger.StringField("symbol", symbol), logger.ErrorField(err))
		return err
	}

	s.logger.Info("Symbol added to watchlist", logger.StringField("symbol", symbol))
	return nil
}

func (s *watchlistService) List(ctx context.Context) ([]entity.WatchlistEntry, error) {
	entries, err := s.watchlistRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []entity.WatchlistEntry{}
	}
	return entries, nil
}

func alreadyInWatchlist(symbol string) error {
	return apperror.New(apperror.KindConflict, fmt.Sprintf("%s is already in the watchlist.", symbol))
}
