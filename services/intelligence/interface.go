package ai

import (
	"context"

	"github.com/pros100kyiv/HUBbase-sub001/models"
	"github.com/pros100kyiv/HUBbase-sub001/utils"

	"go.uber.org/zap"
)

// AIService answers natural-language questions about the salon using the
// business's own records.
type AIService interface {
	ProcessUserInput(ctx context.Context, req models.AIRequest) (models.AIResponse, error)
	ClearConversation(ctx context.Context, userID string) error
}

type DefaultAIService struct {
	client   *GeminiClient
	ctxStore *RedisContextStore
	tools    *ToolSet
}

func NewDefaultAIService(apiKey string, ctxStore *RedisContextStore, tools *ToolSet) *DefaultAIService {
	return &DefaultAIService{
		client:   NewGeminiClient(apiKey),
		ctxStore: ctxStore,
		tools:    tools,
	}
}

func (s *DefaultAIService) ProcessUserInput(ctx context.Context, req models.AIRequest) (models.AIResponse, error) {
	logger := utils.GetLogger().With(zap.String("userID", req.UserID))

	aiCtx, err := s.ctxStore.Get(ctx, req.UserID)
	if err != nil || aiCtx == nil {
		if err != nil {
			logger.Warn("failed to load conversation context", zap.Error(err))
		}
		aiCtx = &models.AIContext{}
	}

	text, calls, err := s.client.Chat(ctx, aiCtx.History, req.Text, s.tools.Dispatch)
	if err != nil {
		return models.AIResponse{}, err
	}

	aiCtx.History = append(aiCtx.History,
		models.AIMessage{Role: "user", Text: req.Text},
		models.AIMessage{Role: "model", Text: text},
	)
	if err := s.ctxStore.Set(ctx, req.UserID, aiCtx); err != nil {
		logger.Warn("failed to save conversation context", zap.Error(err))
	}

	logger.Info("ai turn processed", zap.Int("toolCalls", len(calls)))
	return models.AIResponse{ResponseText: text, ToolCalls: calls}, nil
}

func (s *DefaultAIService) ClearConversation(ctx context.Context, userID string) error {
	return s.ctxStore.Clear(ctx, userID)
}
