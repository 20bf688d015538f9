package http

import (
	"net/http"

	"finance-chatbot/internal/chatbot/dto"
	"finance-chatbot/internal/chatbot/service"
	"finance-chatbot/pkg/apperror"
	"finance-chatbot/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ChatbotHandler handles HTTP requests for the generative-text chatbot.
type ChatbotHandler struct {
	chatService service.ChatService
	logger      *logger.Logger
}

// NewChatbotHandler creates a new ChatbotHandler.
func NewChatbotHandler(chatService service.ChatService, logger *logger.Logger) *ChatbotHandler {
	return &ChatbotHandler{chatService: chatService, logger: logger}
}

// RegisterRoutes registers the chatbot routes to the Echo group.
func (h *ChatbotHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/chatbot", h.Ask)
}

// Ask godoc
// @Summary Ask the finance chatbot
// @Description Sends the query to the generative model and stores the exchange
// @Tags chatbot
// @Produce  json
// @Param   query  query    string  true  "Question"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chatbot [get]
func (h *ChatbotHandler) Ask(c echo.Context) error {
	reply, err := h.chatService.Ask(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		switch apperror.KindOf(err) {
		case apperror.KindValidation:
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		case apperror.KindRateLimited:
			return c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{Error: "Rate limit exceeded. Try again later."})
		case apperror.KindProvider:
			return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Gemini API error: " + err.Error()})
		default:
			h.logger.Error("Failed to answer chatbot query", logger.ErrorField(err))
			return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		}
	}

	return c.JSON(http.StatusOK, dto.ChatResponse{Response: reply})
}
