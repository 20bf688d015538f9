package dto

import "finance-chatbot/internal/entity"

// AddWatchlistRequest is the body of POST /add-watchlist.
type AddWatchlistRequest struct {
	Symbol string `json:"symbol"`
}

// WatchlistResponse lists every entry, symbol only.
type WatchlistResponse struct {
	Watchlist []entity.WatchlistEntry `json:"watchlist"`
}
