package repository

import (
	"context"
	"fmt"

	"finance-chatbot/internal/entity"
	"finance-chatbot/pkg/common"

	"go.mongodb.org/mongo-driver/mongo"
)

// ChatLogRepository persists generative-text exchanges.
type ChatLogRepository interface {
	Create(ctx context.Context, chat *entity.ChatLog) error
}

type chatLogRepository struct {
	collection *mongo.Collection
}

// NewChatLogRepository creates a repository over the chats collection.
func NewChatLogRepository(db *mongo.Database) ChatLogRepository {
	return &chatLogRepository{collection: db.Collection(common.CollectionChats)}
}

func (r *chatLogRepository) Create(ctx context.Context, chat *entity.ChatLog) error {
	if _, err := r.collection.InsertOne(ctx, chat); err != nil {
		return fmt.Errorf("failed to insert chat log: %w", err)
	}
	return nil
}
