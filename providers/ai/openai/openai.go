package openai

import (
	"context"
	"fmt"
	"net/http"
	"os"

	gopenai "github.com/sashabaranov/go-openai"

	"github.com/Terresapan/static-content/providers/ai"
)

// OpenAIProvider implements the Provider interface for the OpenAI API
type OpenAIProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	client     *gopenai.Client
}

var _ ai.Provider = (*OpenAIProvider)(nil)

// NewOpenAIProvider creates a new OpenAI provider instance with default values.
// The API key is read from OPENAI_API_KEY and the base URL can be overridden
// via OPENAI_API_BASE_URL.
func NewOpenAIProvider() *OpenAIProvider {
	provider := &OpenAIProvider{
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		baseURL: os.Getenv("OPENAI_API_BASE_URL"),
	}
	provider.rebuild()
	return provider
}

// rebuild recreates the underlying go-openai client after configuration changes.
func (p *OpenAIProvider) rebuild() {
	config := gopenai.DefaultConfig(p.apiKey)
	if p.baseURL != "" {
		config.BaseURL = p.baseURL
	}
	if p.httpClient != nil {
		config.HTTPClient = p.httpClient
	}
	p.client = gopenai.NewClientWithConfig(config)
}

// WithAPIKey sets the API key for the provider
func (p *OpenAIProvider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	p.rebuild()
	return p
}

// WithBaseURL sets the base URL for the API
func (p *OpenAIProvider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	p.rebuild()
	return p
}

// WithHttpClient sets a custom HTTP client
func (p *OpenAIProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.httpClient = httpClient
	p.rebuild()
	return p
}

// SendMessage implements the Provider interface
func (p *OpenAIProvider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("API key is not set")
	}

	messages := make([]gopenai.ChatCompletionMessage, 0, len(request.Messages)+1)
	if request.SystemPrompt != "" {
		messages = append(messages, gopenai.ChatCompletionMessage{
			Role:    gopenai.ChatMessageRoleSystem,
			Content: request.SystemPrompt,
		})
	}
	for _, message := range request.Messages {
		messages = append(messages, gopenai.ChatCompletionMessage{
			Role:    string(message.Role),
			Content: message.Content,
		})
	}

	wireRequest := gopenai.ChatCompletionRequest{
		Model:    request.Model,
		Messages: messages,
	}
	if config := request.GenerationConfig; config != nil {
		wireRequest.Temperature = config.Temperature
		wireRequest.TopP = config.TopP
		wireRequest.MaxTokens = config.MaxTokens
	}

	response, err := p.client.CreateChatCompletion(ctx, wireRequest)
	if err != nil {
		return nil, fmt.Errorf("openai chat completion failed: %w", err)
	}

	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	choice := response.Choices[0]
	return &ai.ChatResponse{
		Id:           response.ID,
		Model:        response.Model,
		Created:      response.Created,
		Content:      choice.Message.Content,
		FinishReason: string(choice.FinishReason),
		Usage: &ai.Usage{
			PromptTokens:     response.Usage.PromptTokens,
			CompletionTokens: response.Usage.CompletionTokens,
			TotalTokens:      response.Usage.TotalTokens,
		},
	}, nil
}

// IsStopMessage reports whether the given chat response should be treated as a stop/end signal.
func (p *OpenAIProvider) IsStopMessage(message *ai.ChatResponse) bool {
	if message == nil {
		return true
	}
	if message.FinishReason == "stop" || message.FinishReason == "length" || message.FinishReason == "content_filter" {
		return true
	}
	return message.Content == ""
}
