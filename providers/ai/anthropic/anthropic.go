package anthropic

import (
	"context"
	"fmt"
	"net/http"
	"os"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/Terresapan/static-content/providers/ai"
)

// DefaultMaxTokens is used when the request carries no generation config.
// Anthropic rejects requests without an explicit max_tokens value.
const DefaultMaxTokens = 4096

// AnthropicProvider implements the Provider interface for the Anthropic API
type AnthropicProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	client     sdk.Client
}

var _ ai.Provider = (*AnthropicProvider)(nil)

// NewAnthropicProvider creates a new Anthropic provider instance with default
// values. The API key is read from ANTHROPIC_API_KEY.
func NewAnthropicProvider() *AnthropicProvider {
	provider := &AnthropicProvider{
		apiKey: os.Getenv("ANTHROPIC_API_KEY"),
	}
	provider.rebuild()
	return provider
}

// rebuild recreates the underlying SDK client after configuration changes.
func (p *AnthropicProvider) rebuild() {
	opts := []option.RequestOption{}
	if p.apiKey != "" {
		opts = append(opts, option.WithAPIKey(p.apiKey))
	}
	if p.baseURL != "" {
		opts = append(opts, option.WithBaseURL(p.baseURL))
	}
	if p.httpClient != nil {
		opts = append(opts, option.WithHTTPClient(p.httpClient))
	}
	p.client = sdk.NewClient(opts...)
}

// WithAPIKey sets the API key for the provider
func (p *AnthropicProvider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	p.rebuild()
	return p
}

// WithBaseURL sets the base URL for the API
func (p *AnthropicProvider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	p.rebuild()
	return p
}

// WithHttpClient sets a custom HTTP client
func (p *AnthropicProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.httpClient = httpClient
	p.rebuild()
	return p
}

// SendMessage implements the Provider interface
func (p *AnthropicProvider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("API key is not set")
	}

	maxTokens := DefaultMaxTokens
	if request.GenerationConfig != nil && request.GenerationConfig.MaxTokens > 0 {
		maxTokens = request.GenerationConfig.MaxTokens
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(request.Model),
		MaxTokens: int64(maxTokens),
	}

	if request.SystemPrompt != "" {
		params.System = []sdk.TextBlockParam{{Text: request.SystemPrompt}}
	}

	if request.GenerationConfig != nil && request.GenerationConfig.Temperature != 0 {
		params.Temperature = sdk.Float(float64(request.GenerationConfig.Temperature))
	}

	messages := make([]sdk.MessageParam, 0, len(request.Messages))
	for _, message := range request.Messages {
		switch message.Role {
		case ai.RoleAssistant:
			messages = append(messages, sdk.NewAssistantMessage(sdk.NewTextBlock(message.Content)))
		default:
			messages = append(messages, sdk.NewUserMessage(sdk.NewTextBlock(message.Content)))
		}
	}
	params.Messages = messages

	response, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic message failed: %w", err)
	}

	var content string
	for _, block := range response.Content {
		if block.Type == "text" {
			content += block.Text
		}
	}

	return &ai.ChatResponse{
		Id:           response.ID,
		Model:        string(response.Model),
		Content:      content,
		FinishReason: string(response.StopReason),
		Usage: &ai.Usage{
			PromptTokens:     int(response.Usage.InputTokens),
			CompletionTokens: int(response.Usage.OutputTokens),
			TotalTokens:      int(response.Usage.InputTokens + response.Usage.OutputTokens),
		},
	}, nil
}

// IsStopMessage reports whether the given chat response should be treated as a stop/end signal.
func (p *AnthropicProvider) IsStopMessage(message *ai.ChatResponse) bool {
	if message == nil {
		return true
	}
	if message.FinishReason == "end_turn" || message.FinishReason == "max_tokens" || message.FinishReason == "stop_sequence" {
		return true
	}
	return message.Content == ""
}
