package http

import (
	_ "finance-chatbot/internal/chatbot/docs"
	"finance-chatbot/internal/chatbot/service"
	"finance-chatbot/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	swagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the Echo instance with middleware and every route registered.
func NewRouter(chatService service.ChatService, stockService service.StockService, watchlistService service.WatchlistService, appLogger *logger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			appLogger.Info("HTTP request",
				logger.StringField("method", v.Method),
				logger.StringField("uri", v.URI),
				logger.IntField("status", v.Status),
				logger.DurationField("latency", v.Latency),
				logger.StringField("request_id", v.RequestID),
			)
			return nil
		},
	}))

	root := e.Group("")
	NewChatbotHandler(chatService, appLogger).RegisterRoutes(root)
	NewStockHandler(stockService, appLogger).RegisterRoutes(root)
	NewWatchlistHandler(watchlistService, appLogger).RegisterRoutes(root)

	e.GET("/swagger/*", swagger.WrapHandler)

	return e
}
