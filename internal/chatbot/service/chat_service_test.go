package service

import (
	"context"
	"errors"
	"testing"

	"finance-chatbot/internal/entity"
	"finance-chatbot/pkg/apperror"
	"finance-chatbot/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChatService_Ask(t *testing.T) {
	ai := new(mockAIRepository)
	chats := new(mockChatLogRepository)
	svc := NewChatService(ai, chats, logger.NewNop())

	ai.On("Generate", mock.Anything, "What is a P/E ratio?").Return("Price over earnings.", nil).Once()
	chats.On("Create", mock.Anything, &entity.ChatLog{Query: "What is a P/E ratio?", Response: "Price over earnings."}).Return(nil).Once()

	reply, err := svc.Ask(context.Background(), "What is a P/E ratio?")
	require.NoError(t, err)
	assert.Equal(t, "Price over earnings.", reply)

	ai.AssertExpectations(t)
	chats.AssertExpectations(t)
}

func TestChatService_Ask_EmptyQuery(t *testing.T) {
	ai := new(mockAIRepository)
	chats := new(mockChatLogRepository)
	svc := NewChatService(ai, chats, logger.NewNop())

	_, err := svc.Ask(context.Background(), "")
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	assert.Equal(t, "Please ask a question.", err.Error())

	ai.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	chats.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestChatService_Ask_WhitespaceQueryForwarded(t *testing.T) {
	ai := new(mockAIRepository)
	chats := new(mockChatLogRepository)
	svc := NewChatService(ai, chats, logger.NewNop())

	ai.On("Generate", mock.Anything, "   ").Return("Ask me about markets.", nil).Once()
	chats.On("Create", mock.Anything, &entity.ChatLog{Query: "   ", Response: "Ask me about markets."}).Return(nil).Once()

	reply, err := svc.Ask(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, "Ask me about markets.", reply)

	ai.AssertExpectations(t)
	chats.AssertExpectations(t)
}

func TestChatService_Ask_AdapterErrorNotStored(t *testing.T) {
	ai := new(mockAIRepository)
	chats := new(mockChatLogRepository)
	svc := NewChatService(ai, chats, logger.NewNop())

	limited := apperror.New(apperror.KindRateLimited, "Rate limit exceeded. Try again later.")
	ai.On("Generate", mock.Anything, "q").Return("", limited).Once()

	_, err := svc.Ask(context.Background(), "q")
	assert.ErrorIs(t, err, limited)
	chats.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestChatService_Ask_StoreFailure(t *testing.T) {
	ai := new(mockAIRepository)
	chats := new(mockChatLogRepository)
	svc := NewChatService(ai, chats, logger.NewNop())

	ai.On("Generate", mock.Anything, "q").Return("a", nil).Once()
	chats.On("Create", mock.Anything, mock.Anything).Return(errors.New("write concern error")).Once()

	_, err := svc.Ask(context.Background(), "q")
	require.Error(t, err)
	assert.Equal(t, apperror.KindUnknown, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "write concern error")
}
