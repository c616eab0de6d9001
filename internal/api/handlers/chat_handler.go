package handlers

import (
	"errors"
	"fmt"

	"company-ai/internal/dto"
	"company-ai/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	completionService *service.CompletionService
	logger            *zap.Logger
}

func NewChatHandler(completionService *service.CompletionService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		completionService: completionService,
		logger:            logger,
	}
}

// ChatCompletions godoc
// @Summary Answer a chat message
// @Description Answers the latest user message with a canned company answer in the OpenAI chat.completion shape
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatCompletionRequest true "Chat completion request"
// @Success 200 {object} dto.ChatCompletionResponse
// @Failure 400 {string} string "No messages provided"
// @Failure 500 {string} string "Internal server error"
// @Router /v1/chat/completions [post]
func (h *ChatHandler) ChatCompletions(c *fiber.Ctx) error {
	var req dto.ChatCompletionRequest
	if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}

	resp, err := h.completionService.Complete(req.ToModels())
	if err != nil {
		if errors.Is(err, service.ErrNoMessages) || errors.Is(err, service.ErrNoUserMessage) {
			h.logger.Warn("Rejected chat completion", zap.Error(err))
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return err
	}

	return c.JSON(resp)
}
