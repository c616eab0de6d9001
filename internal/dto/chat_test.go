package dto_test

import (
	"encoding/json"
	"testing"

	"company-ai/internal/dto"
	"company-ai/internal/models"

	"github.com/m-mizutani/gt"
)

func TestMessageContentForms(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "plain string",
			body: `{"role":"user","content":"What are your products?"}`,
			want: "What are your products?",
		},
		{
			name: "null content",
			body: `{"role":"user","content":null}`,
			want: "",
		},
		{
			name: "missing content",
			body: `{"role":"user"}`,
			want: "",
		},
		{
			name: "content parts",
			body: `{"role":"user","content":[{"type":"text","text":"hello"},{"type":"image_url"},{"type":"text","text":"there"}]}`,
			want: "hello there",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var msg dto.ChatMessage
			gt.NoError(t, json.Unmarshal([]byte(tt.body), &msg)).Required()
			gt.Value(t, string(msg.Content)).Equal(tt.want)
		})
	}
}

func TestMessageContentRejectsNumbers(t *testing.T) {
	var msg dto.ChatMessage
	gt.Error(t, json.Unmarshal([]byte(`{"role":"user","content":42}`), &msg))
}

func TestToModelsKeepsOrder(t *testing.T) {
	var req dto.ChatCompletionRequest
	body := `{"model":"local-company-ai","temperature":0.7,"messages":[
		{"role":"system","content":"be nice"},
		{"role":"user","content":"hi"},
		{"role":"assistant","content":"hello"}
	]}`
	gt.NoError(t, json.Unmarshal([]byte(body), &req)).Required()

	msgs := req.ToModels()
	gt.A(t, msgs).Length(3)
	gt.Value(t, msgs[0].Role).Equal(models.RoleSystem)
	gt.Value(t, msgs[1]).Equal(models.ChatMessage{Role: models.RoleUser, Content: "hi"})
	gt.Value(t, msgs[2].Role).Equal(models.RoleAssistant)
}
