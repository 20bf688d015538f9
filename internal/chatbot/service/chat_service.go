package service

import (
	"context"
	"fmt"

	"finance-chatbot/internal/chatbot/repository"
	"finance-chatbot/internal/entity"
	"finance-chatbot/pkg/apperror"
	"finance-chatbot/pkg/logger"
)

const emptyQueryMessage = "Please ask a question."

// ChatService answers finance questions and records every answered exchange.
type ChatService interface {
	Ask(ctx context.Context, query string) (string, error)
}

// NewChatService creates a new chat service.
func NewChatService(aiRepo repository.AIRepository, chatRepo repository.ChatLogRepository, logger *logger.Logger) ChatService {
	return &chatService{
		aiRepo:   aiRepo,
		chatRepo: chatRepo,
		logger:   logger,
	}
}

type chatService struct {
	aiRepo   repository.AIRepository
	chatRepo repository.ChatLogRepository
	logger   *logger.Logger
}

// Ask rejects an empty query before any model call, then stores the exchange.
func (s *chatService) Ask(ctx context.Context, query string) (string, error) {
	if query == "" {
		return "", apperror.New(apperror.KindValidation, emptyQueryMessage)
	}

	reply, err := s.aiRepo.Generate(ctx, query)
	if err != nil {
		return "", err
	}

	if err := s.chatRepo.Create(ctx, &entity.ChatLog{Query: query, Response: reply}); err != nil {
		s.logger.Error("Failed to save chat log", logger.ErrorField(err))
		return "", fmt.Errorf("failed to save chat: %w", err)
	}

	return reply, nil
}
