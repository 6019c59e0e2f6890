// Package middleware provides ready-made [client.MiddlewareConfig]
// implementations for cross-cutting concerns: structured request/response
// logging and per-request timeouts. There is deliberately no retry
// middleware — a failed provider call fails the whole brainstorm run.
package middleware
