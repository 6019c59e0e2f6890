// Package anthropic implements the [ai.Provider] interface on top of the
// official anthropic-sdk-go client. Anthropic requires max_tokens on every
// request, so an unset value falls back to [DefaultMaxTokens].
package anthropic
