package dto

import "finance-chatbot/internal/entity"

// StockResponse is a stored snapshot echoed back with its generated id.
type StockResponse struct {
	Symbol       string  `json:"symbol"`
	CurrentPrice float64 `json:"current_price"`
	Open         float64 `json:"open"`
	High         float64 `json:"high"`
	Low          float64 `json:"low"`
	Volume       int64   `json:"volume"`
	ID           string  `json:"_id"`
}

func NewStockResponse(snapshot *entity.StockSnapshot, id string) *StockResponse {
	return &StockResponse{
		Symbol:       snapshot.Symbol,
		CurrentPrice: snapshot.CurrentPrice,
		Open:         snapshot.Open,
		High:         snapshot.High,
		Low:          snapshot.Low,
		Volume:       snapshot.Volume,
		ID:           id,
	}
}
