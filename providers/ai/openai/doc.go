// Package openai implements the [ai.Provider] interface on top of the
// sashabaranov/go-openai client library. Because the base URL is
// configurable, this provider can also front any OpenAI-compatible API.
package openai
