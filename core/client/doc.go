// Package client provides a thin, middleware-wrapped wrapper around an
// [ai.Provider]. Each call to [Client.SendMessage] is a stateless single-turn
// completion: the configured system prompt plus one user message. There is no
// conversation history, no tool loop, and no retrying — a failed provider
// call fails the whole operation.
//
// Cross-cutting behavior (logging, timeouts) is layered in through
// [MiddlewareConfig] entries supplied via [WithMiddlewares].
package client
