package http

import (
	"net/http"

	"finance-chatbot/internal/chatbot/dto"
	"finance-chatbot/internal/chatbot/service"
	"finance-chatbot/pkg/apperror"
	"finance-chatbot/pkg/logger"

	"github.com/labstack/echo/v4"
)

// WatchlistHandler handles HTTP requests for the watchlist.
type WatchlistHandler struct {
	watchlistService service.WatchlistService
	logger           *logger.Logger
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(watchlistService service.WatchlistService, logger *logger.Logger) *WatchlistHandler {
	return &WatchlistHandler{watchlistService: watchlistService, logger: logger}
}

// RegisterRoutes registers the watchlist routes to the Echo group.
func (h *WatchlistHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/add-watchlist", h.AddToWatchlist)
	g.GET("/watchlist", h.GetWatchlist)
}

// AddToWatchlist godoc
// @Summary Add a symbol to the watchlist
// @Description Adds the symbol unless it is already present
// @Tags watchlist
// @Accept  json
// @Produce  json
// @Param   entry  body    dto.AddWatchlistRequest  true  "Symbol to add"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.MessageResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /add-watchlist [post]
func (h *WatchlistHandler) AddToWatchlist(c echo.Context) error {
	var req dto.AddWatchlistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Stock symbol required"})
	}

	if err := h.watchlistService.Add(c.Request().Context(), req.Symbol); err != nil {
		switch apperror.KindOf(err) {
		case apperror.KindValidation:
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case apperror.KindConflict:
			return c.JSON(http.StatusConflict, dto.MessageResponse{Message: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		}
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: req.Symbol + " added to watchlist!"})
}

// GetWatchlist godoc
// @Summary List the watchlist
// @Description Returns every watchlist entry, symbol only
// @Tags watchlist
// @Produce  json
// @Success 200 {object} dto.WatchlistResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /watchlist [get]
func (h *WatchlistHandler) GetWatchlist(c echo.Context) error {
	entries, err := h.watchlistService.List(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to get watchlist", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto.WatchlistResponse{Watchlist: entries})
}
