package entity

// WatchlistEntry is unique by Symbol.
type WatchlistEntry struct {
	Symbol string `bson:"symbol" json:"symbol"`
}
