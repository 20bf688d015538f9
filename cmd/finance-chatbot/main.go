package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finance-chatbot/internal/chatbot/config"
	delivery "finance-chatbot/internal/chatbot/delivery/http"
	"finance-chatbot/internal/chatbot/repository"
	"finance-chatbot/internal/chatbot/service"
	"finance-chatbot/pkg/logger"
	"finance-chatbot/pkg/mongo"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"google.golang.org/genai"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the finance chatbot API",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env is fine, the environment may already carry the secrets.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Finance Chatbot", logger.Field("name", cfg.App.Name), logger.Field("env", cfg.App.Env))

	// Initialize document store
	db, err := mongo.NewDB(ctx, mongo.Config{
		URI:            cfg.Mongo.URI,
		Database:       cfg.Mongo.Database,
		ConnectTimeout: cfg.Mongo.ConnectTimeout,
	})
	if err != nil {
		appLogger.Fatal("Failed to connect to MongoDB", logger.ErrorField(err))
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(closeCtx); err != nil {
			appLogger.Error("Failed to disconnect from MongoDB", logger.ErrorField(err))
		}
	}()

	// Initialize Gemini client
	genAiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		appLogger.Fatal("Failed to initialize Gemini AI client", logger.ErrorField(err))
	}

	// Initialize repositories
	chatRepo := repository.NewChatLogRepository(db.Database)
	stockRepo := repository.NewStockLogRepository(db.Database)
	watchlistRepo := repository.NewWatchlistRepository(db.Database)
	if err := watchlistRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Fatal("Failed to prepare watchlist collection", logger.ErrorField(err))
	}
	aiRepo := repository.NewGeminiAIRepository(cfg, appLogger, genAiClient.Models)
	yahooFinanceRepo := repository.NewYahooFinanceRepository(cfg, appLogger)

	// Initialize services
	chatSvc := service.NewChatService(aiRepo, chatRepo, appLogger)
	stockSvc := service.NewStockService(yahooFinanceRepo, stockRepo, appLogger)
	watchlistSvc := service.NewWatchlistService(watchlistRepo, appLogger)

	e := delivery.NewRouter(chatSvc, stockSvc, watchlistSvc, appLogger)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Finance Chatbot API
// @version 1.0
// @description Finance chatbot backed by Gemini, Yahoo Finance market data and a MongoDB log.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{Use: "finance-chatbot"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-chatbot.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing finance-chatbot CLI: %s\n", err)
		os.Exit(1)
	}
}
