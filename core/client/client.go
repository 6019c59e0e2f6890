package client

import (
	"context"
	"fmt"

	"github.com/Terresapan/static-content/providers/ai"
)

// Client wraps an [ai.Provider] with a fixed model, an optional system prompt,
// generation settings, and a middleware chain. It is safe for concurrent use:
// all configuration happens in [New] and is never mutated afterwards.
type Client struct {
	provider     ai.Provider
	model        string
	systemPrompt string
	generation   *ai.GenerationConfig
	sendChain    SendFunc
}

// Option is a functional option for configuring a Client.
type Option func(*Client) error

// WithModel sets the model identifier sent with every request.
func WithModel(model string) Option {
	return func(c *Client) error {
		c.model = model
		return nil
	}
}

// WithSystemPrompt sets the system prompt prepended to every request.
func WithSystemPrompt(systemPrompt string) Option {
	return func(c *Client) error {
		c.systemPrompt = systemPrompt
		return nil
	}
}

// WithGenerationConfig sets sampling parameters (temperature, max tokens)
// sent with every request.
func WithGenerationConfig(config ai.GenerationConfig) Option {
	return func(c *Client) error {
		c.generation = &config
		return nil
	}
}

// WithMiddlewares installs the given middleware entries. The first entry is
// the outermost wrapper. Each entry must have a non-nil Send field.
func WithMiddlewares(middlewares ...MiddlewareConfig) Option {
	return func(c *Client) error {
		for i, m := range middlewares {
			if m.Send == nil {
				return fmt.Errorf("middleware %d has a nil Send function", i)
			}
		}
		c.sendChain = buildSendChain(c.provider, middlewares)
		return nil
	}
}

// New creates a Client for the given provider. Options are applied in order;
// the first option error aborts construction.
func New(provider ai.Provider, opts ...Option) (*Client, error) {
	if provider == nil {
		return nil, fmt.Errorf("provider must not be nil")
	}

	c := &Client{provider: provider}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.sendChain == nil {
		c.sendChain = buildSendChain(provider, nil)
	}

	return c, nil
}

// SendMessage performs one stateless completion: the configured system prompt
// plus a single user message built from content. The response is returned as
// delivered by the provider; callers decide how to treat empty completions.
func (c *Client) SendMessage(ctx context.Context, content string) (*ai.ChatResponse, error) {
	request := ai.ChatRequest{
		Model:        c.model,
		SystemPrompt: c.systemPrompt,
		Messages: []ai.Message{
			{Role: ai.RoleUser, Content: content},
		},
		GenerationConfig: c.generation,
	}

	return c.sendChain(ctx, request)
}

// Model returns the model identifier configured on this client.
func (c *Client) Model() string {
	return c.model
}
