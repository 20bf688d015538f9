package common

const (
	CollectionChats     = "chats"
	CollectionStocks    = "stocks"
	CollectionWatchlist = "watchlist"

	DefaultStockSymbol = "RELIANCE.NS"
	DefaultGeminiModel = "gemini-1.5-pro-latest"
)
