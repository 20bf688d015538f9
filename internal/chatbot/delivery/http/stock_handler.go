package http

import (
	"net/http"

	"finance-chatbot/internal/chatbot/dto"
	"finance-chatbot/internal/chatbot/service"
	"finance-chatbot/pkg/apperror"
	"finance-chatbot/pkg/logger"

	"github.com/labstack/echo/v4"
)

// StockHandler handles HTTP requests for market data.
type StockHandler struct {
	stockService service.StockService
	logger       *logger.Logger
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockService service.StockService, logger *logger.Logger) *StockHandler {
	return &StockHandler{stockService: stockService, logger: logger}
}

// RegisterRoutes registers the stock routes to the Echo group.
func (h *StockHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/stock", h.GetStock)
}

// GetStock godoc
// @Summary Get the latest daily bar for a symbol
// @Description Fetches the most recent daily bar from Yahoo Finance and stores it
// @Tags stock
// @Produce  json
// @Param   symbol  query    string  false  "Ticker symbol" default(RELIANCE.NS)
// @Success 200 {object} dto.StockResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stock [get]
func (h *StockHandler) GetStock(c echo.Context) error {
	resp, err := h.stockService.GetLatest(c.Request().Context(), c.QueryParam("symbol"))
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Invalid stock symbol or no data available"})
		}
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, resp)
}
