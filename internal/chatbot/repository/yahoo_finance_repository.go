package repository

import (
	"context"
	"fmt"
	"math"
	"strings"

	"finance-chatbot/internal/chatbot/config"
	"finance-chatbot/internal/entity"
	"finance-chatbot/pkg/apperror"
	"finance-chatbot/pkg/logger"

	"github.com/wnjoon/go-yfinance/pkg/models"
	"github.com/wnjoon/go-yfinance/pkg/ticker"
)

const noStockDataMessage = "Invalid stock symbol or no data available"

// YahooFinanceRepository fetches market data from Yahoo Finance.
type YahooFinanceRepository interface {
	// GetLatest returns the most recent daily bar for symbol. A symbol without data yields
	// KindNotFound; every other failure yields KindProvider and is not retried.
	GetLatest(ctx context.Context, symbol string) (*entity.StockSnapshot, error)
}

type historyFunc func(symbol string, params models.HistoryParams) ([]models.Bar, error)

type yahooFinanceRepository struct {
	params  models.HistoryParams
	history historyFunc
	logger  *logger.Logger
}

// NewYahooFinanceRepository creates a repository backed by go-yfinance tickers.
func NewYahooFinanceRepository(cfg *config.Config, log *logger.Logger) YahooFinanceRepository {
	return &yahooFinanceRepository{
		params: models.HistoryParams{
			Period:   cfg.YahooFinance.Period,
			Interval: cfg.YahooFinance.Interval,
		},
		history: tickerHistory,
		logger:  log.With(logger.StringField("client", "yahoo_finance")),
	}
}

func tickerHistory(symbol string, params models.HistoryParams) ([]models.Bar, error) {
	t, err := ticker.New(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticker: %w", err)
	}
	defer t.Close()

	return t.History(params)
}

func (r *yahooFinanceRepository) GetLatest(ctx context.Context, symbol string) (*entity.StockSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperror.Wrap(apperror.KindProvider, "", err)
	}

	bars, err := r.history(symbol, r.params)
	if err != nil {
		if isNoDataError(err) {
			r.logger.Debug("No market data for symbol", logger.StringField("symbol", symbol), logger.ErrorField(err))
			return nil, apperror.Wrap(apperror.KindNotFound, noStockDataMessage, err)
		}
		r.logger.Error("Failed to get historical prices", logger.StringField("symbol", symbol), logger.ErrorField(err))
		return nil, apperror.Wrap(apperror.KindProvider, "", err)
	}

	snapshot, ok := latestBar(symbol, bars)
	if !ok {
		return nil, apperror.New(apperror.KindNotFound, noStockDataMessage)
	}
	return snapshot, nil
}

// latestBar picks the last bar with a close price.
func latestBar(symbol string, bars []models.Bar) (*entity.StockSnapshot, bool) {
	for i := len(bars) - 1; i >= 0; i-- {
		bar := bars[i]
		if math.IsNaN(float64(bar.Close)) {
			continue
		}
		return &entity.StockSnapshot{
			Symbol:       symbol,
			CurrentPrice: finite(float64(bar.Close)),
			Open:         finite(float64(bar.Open)),
			High:         finite(float64(bar.High)),
			Low:          finite(float64(bar.Low)),
			Volume:       volumeToInt64(float64(bar.Volume)),
		}, true
	}
	return nil, false
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// volumeToInt64 rounds and clamps to [0, MaxInt64].
func volumeToInt64(v float64) int64 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	default:
		return int64(math.Round(v))
	}
}

// go-yfinance reports unknown and delisted symbols as plain errors.
var noDataMarkers = []string{"not found", "no data", "delisted", "404", "invalid symbol"}

func isNoDataError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range noDataMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
