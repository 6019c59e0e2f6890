package groq

import (
	"github.com/Terresapan/static-content/providers/ai"
)

/*
	CHAT COMPLETIONS API - INPUT
*/

// chatCompletionRequest represents the /chat/completions request format
type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
	TopP        *float64      `json:"top_p,omitempty"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
	Stream      *bool         `json:"stream,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"` // system, user, assistant
	Content string `json:"content,omitempty"`
}

/*
	CHAT COMPLETIONS API - OUTPUT
*/

// chatCompletionResponse represents the /chat/completions response format
type chatCompletionResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   *chatUsage   `json:"usage,omitempty"`
}

type chatChoice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason,omitempty"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

/*
	CONVERSION LAYER
*/

// requestFromGeneric maps the provider-agnostic request onto the Groq wire format.
// The system prompt, when present, becomes the first message of the conversation.
func requestFromGeneric(request ai.ChatRequest) chatCompletionRequest {
	messages := make([]chatMessage, 0, len(request.Messages)+1)

	if request.SystemPrompt != "" {
		messages = append(messages, chatMessage{
			Role:    string(ai.RoleSystem),
			Content: request.SystemPrompt,
		})
	}

	for _, message := range request.Messages {
		messages = append(messages, chatMessage{
			Role:    string(message.Role),
			Content: message.Content,
		})
	}

	wireRequest := chatCompletionRequest{
		Model:    request.Model,
		Messages: messages,
	}

	if config := request.GenerationConfig; config != nil {
		if config.Temperature != 0 {
			temperature := float64(config.Temperature)
			wireRequest.Temperature = &temperature
		}
		if config.TopP != 0 {
			topP := float64(config.TopP)
			wireRequest.TopP = &topP
		}
		if config.MaxTokens != 0 {
			maxTokens := config.MaxTokens
			wireRequest.MaxTokens = &maxTokens
		}
	}

	return wireRequest
}

// responseToGeneric maps a Groq wire response back to the provider-agnostic shape.
// Only the first choice is considered; the app never requests multiple choices.
func responseToGeneric(response chatCompletionResponse) *ai.ChatResponse {
	generic := &ai.ChatResponse{
		Id:      response.ID,
		Model:   response.Model,
		Created: response.Created,
	}

	if len(response.Choices) > 0 {
		choice := response.Choices[0]
		generic.Content = choice.Message.Content
		generic.FinishReason = choice.FinishReason
	}

	if response.Usage != nil {
		generic.Usage = &ai.Usage{
			PromptTokens:     response.Usage.PromptTokens,
			CompletionTokens: response.Usage.CompletionTokens,
			TotalTokens:      response.Usage.TotalTokens,
		}
	}

	return generic
}
