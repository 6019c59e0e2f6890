// Package parse converts raw LLM text output into typed Go values. Model
// output is frequently almost-JSON (single quotes, trailing commas, missing
// braces), so failed unmarshals are retried once after running the content
// through jsonrepair.
package parse
