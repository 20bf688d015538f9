package repository

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"finance-chatbot/internal/chatbot/config"
	"finance-chatbot/pkg/apperror"
	"finance-chatbot/pkg/logger"

	"google.golang.org/genai"
)

const rateLimitedMessage = "Rate limit exceeded. Try again later."

// AIRepository answers a free-text query with generated text.
type AIRepository interface {
	Generate(ctx context.Context, query string) (string, error)
}

// ContentGenerator is the part of the genai client used here. *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type sleepFunc func(ctx context.Context, d time.Duration) error

// geminiAIRepository is an implementation of AIRepository that uses the Google Gemini API.
type geminiAIRepository struct {
	generator   ContentGenerator
	model       string
	maxAttempts int
	retryDelay  time.Duration
	logger      *logger.Logger
	sleep       sleepFunc
}

// NewGeminiAIRepository creates a new instance of geminiAIRepository.
func NewGeminiAIRepository(cfg *config.Config, log *logger.Logger, generator ContentGenerator) AIRepository {
	maxAttempts := cfg.Gemini.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &geminiAIRepository{
		generator:   generator,
		model:       cfg.Gemini.Model,
		maxAttempts: maxAttempts,
		retryDelay:  cfg.Gemini.RetryDelay,
		logger:      log.With(logger.StringField("client", "gemini"), logger.StringField("model", cfg.Gemini.Model)),
		sleep:       sleepContext,
	}
}

// Generate sends the query to the model. Transient failures are retried up to maxAttempts with a
// fixed pause in between; exhausting the attempts yields a KindRateLimited error. Any other
// failure is returned immediately as KindProvider.
func (r *geminiAIRepository) Generate(ctx context.Context, query string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		if attempt > 1 {
			if err := r.sleep(ctx, r.retryDelay); err != nil {
				return "", apperror.Wrap(apperror.KindProvider, "", err)
			}
		}

		reply, err := r.generateOnce(ctx, query)
		if err == nil {
			return reply, nil
		}
		lastErr = err

		if !isTransient(err) {
			r.logger.Error("Gemini request failed", logger.ErrorField(err), logger.IntField("attempt", attempt))
			return "", apperror.Wrap(apperror.KindProvider, providerMessage(err), err)
		}

		r.logger.Warn("Gemini request failed, retrying",
			logger.ErrorField(err),
			logger.IntField("attempt", attempt),
			logger.IntField("max_attempts", r.maxAttempts),
		)
	}

	return "", apperror.Wrap(apperror.KindRateLimited, rateLimitedMessage, lastErr)
}

func (r *geminiAIRepository) generateOnce(ctx context.Context, query string) (string, error) {
	resp, err := r.generator.GenerateContent(ctx, r.model, genai.Text(query), nil)
	if err != nil {
		return "", err
	}

	if resp == nil {
		return "", errEmptyReply
	}
	reply := resp.Text()
	if reply == "" {
		return "", errEmptyReply
	}
	return reply, nil
}

var errEmptyReply = errors.New("model returned no text")

func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if code, ok := apiErrorCode(err); ok {
		switch code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func apiErrorCode(err error) (int, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code, true
	}
	return 0, false
}

func providerMessage(err error) string {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil && apiErrPtr.Message != "" {
		return apiErrPtr.Message
	}
	return err.Error()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
