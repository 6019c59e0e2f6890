// Package groq implements the [ai.Provider] interface for the Groq API.
//
// Groq exposes an OpenAI-compatible chat completions endpoint, so the wire
// format in models.go mirrors the /chat/completions request and response
// shapes. Authentication uses a bearer token read from the GROQ_API_KEY
// environment variable by default.
package groq
