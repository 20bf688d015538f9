package entity

// StockSnapshot is the latest daily bar for a symbol at fetch time. Close is stored as current_price.
type StockSnapshot struct {
	Symbol       string  `bson:"symbol"`
	CurrentPrice float64 `bson:"current_price"`
	Open         float64 `bson:"open"`
	High         float64 `bson:"high"`
	Low          float64 `bson:"low"`
	Volume       int64   `bson:"volume"`
}
