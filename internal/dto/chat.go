package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"company-ai/internal/models"
)

// ChatCompletionRequest is the subset of the OpenAI request body we read.
// Other fields (model, temperature, ...) are accepted and ignored.
type ChatCompletionRequest struct {
	Model       string        `json:"model,omitempty"`
	Messages    []ChatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
}

type ChatMessage struct {
	Role    string         `json:"role"`
	Content MessageContent `json:"content"`
}

// MessageContent accepts either a plain string or an array of content parts.
// Text parts are joined with a single space, other part types are skipped.
type MessageContent string

type contentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func (m *MessageContent) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = MessageContent(s)
		return nil
	}

	if data[0] == '[' {
		var parts []contentPart
		if err := json.Unmarshal(data, &parts); err != nil {
			return fmt.Errorf("invalid content parts: %w", err)
		}
		texts := make([]string, 0, len(parts))
		for _, p := range parts {
			if p.Type == "text" || (p.Type == "" && p.Text != "") {
				texts = append(texts, p.Text)
			}
		}
		*m = MessageContent(strings.Join(texts, " "))
		return nil
	}

	return fmt.Errorf("unsupported message content: %s", string(data))
}

// ToModels converts the wire messages to domain messages, keeping order.
func (r *ChatCompletionRequest) ToModels() []models.ChatMessage {
	msgs := make([]models.ChatMessage, 0, len(r.Messages))
	for _, m := range r.Messages {
		msgs = append(msgs, models.ChatMessage{
			Role:    models.Role(m.Role),
			Content: string(m.Content),
		})
	}
	return msgs
}

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int             `json:"index"`
	Message      ResponseMessage `json:"message"`
	FinishReason string          `json:"finish_reason"`
}

type ResponseMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
