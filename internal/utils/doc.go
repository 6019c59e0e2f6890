// Package utils contains small internal helpers shared across the module:
// a generic JSON-over-HTTP POST helper used by the hand-rolled provider
// implementations, and string truncation utilities used by logging.
package utils
