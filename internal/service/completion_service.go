package service

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"company-ai/internal/dto"
	"company-ai/internal/models"

	"go.uber.org/zap"
)

const (
	ModelName        = "local-company-ai"
	completionObject = "chat.completion"
	idPrefix         = "local-ai-"
)

var (
	ErrNoMessages    = errors.New("No messages provided")
	ErrNoUserMessage = errors.New("No user message found")
)

// CompletionService validates chat requests and wraps Responder answers in
// the chat.completion envelope.
type CompletionService struct {
	responder *Responder
	logger    *zap.Logger
	now       func() time.Time
	newID     func() string
}

type CompletionOption func(*CompletionService)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) CompletionOption {
	return func(s *CompletionService) {
		s.now = now
	}
}

// WithIDGenerator overrides the response id source.
func WithIDGenerator(newID func() string) CompletionOption {
	return func(s *CompletionService) {
		s.newID = newID
	}
}

func NewCompletionService(responder *Responder, logger *zap.Logger, opts ...CompletionOption) *CompletionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &CompletionService{
		responder: responder,
		logger:    logger,
		now:       time.Now,
		newID:     randomID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Complete answers the most recent user message in messages.
func (s *CompletionService) Complete(messages []models.ChatMessage) (*dto.ChatCompletionResponse, error) {
	prompt, err := LastUserMessage(messages)
	if err != nil {
		return nil, err
	}

	match := s.responder.Respond(prompt)
	s.logger.Info("Chat completion answered",
		zap.String("tier", match.Tier.String()),
		zap.String("rule", match.RuleID),
		zap.Int("messages", len(messages)),
	)

	return s.BuildResponse(prompt, match.Answer), nil
}

// LastUserMessage scans messages from the end and returns the content of
// the first one with role user. An empty content counts as missing.
func LastUserMessage(messages []models.ChatMessage) (string, error) {
	if len(messages) == 0 {
		return "", ErrNoMessages
	}
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role != models.RoleUser {
			continue
		}
		if messages[i].Content == "" {
			return "", ErrNoUserMessage
		}
		return messages[i].Content, nil
	}
	return "", ErrNoUserMessage
}

// BuildResponse wraps answer in a chat.completion envelope. Token counts
// are whitespace word counts, not tokenizer output.
func (s *CompletionService) BuildResponse(prompt, answer string) *dto.ChatCompletionResponse {
	promptTokens := len(strings.Fields(prompt))
	completionTokens := len(strings.Fields(answer))

	return &dto.ChatCompletionResponse{
		ID:      s.newID(),
		Object:  completionObject,
		Created: s.now().Unix(),
		Model:   ModelName,
		Choices: []dto.Choice{
			{
				Index: 0,
				Message: dto.ResponseMessage{
					Role:    string(models.RoleAssistant),
					Content: answer,
				},
				FinishReason: "stop",
			},
		},
		Usage: dto.Usage{
			PromptTokens:     promptTokens,
			CompletionTokens: completionTokens,
			TotalTokens:      promptTokens + completionTokens,
		},
	}
}

func randomID() string {
	return fmt.Sprintf("%s%d", idPrefix, 1000+rand.IntN(9000))
}
