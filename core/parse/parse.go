package parse

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ParseStringAs attempts to parse a string into the specified type T.
// For string targets the content is returned as-is. For complex types
// (structs, maps, slices), it attempts JSON unmarshaling; if that fails,
// it repairs the JSON string using jsonrepair and retries once.
//
// Markdown code fences around the payload are stripped before parsing,
// since models routinely wrap JSON answers in ```json blocks.
//
// Example usage:
//
//	type Idea struct {
//	    Title string `json:"title"`
//	}
//
//	// Parse a valid JSON string
//	ideas, err := ParseStringAs[[]Idea](`[{"title":"Behind the scenes"}]`)
//
//	// Parse an invalid JSON string (will be auto-repaired)
//	ideas, err := ParseStringAs[[]Idea](`[{title: 'Behind the scenes'}]`)
func ParseStringAs[T any](content string) (T, error) {
	var result T

	if reflect.TypeFor[T]().Kind() == reflect.String {
		reflect.ValueOf(&result).Elem().SetString(content)
		return result, nil
	}

	payload := stripCodeFence(content)

	err := json.Unmarshal([]byte(payload), &result)
	if err == nil {
		return result, nil
	}

	// If JSON unmarshaling fails, attempt to repair the JSON and retry.
	repairedJSON, repairErr := jsonrepair.JSONRepair(payload)
	if repairErr != nil {
		return result, fmt.Errorf("failed to unmarshal content as %T and failed to repair JSON: unmarshal error: %w, repair error: %v", result, err, repairErr)
	}

	if err = json.Unmarshal([]byte(repairedJSON), &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal repaired JSON as %T: %w (original content: %s, repaired: %s)", result, err, content, repairedJSON)
	}

	return result, nil
}

// stripCodeFence removes a surrounding markdown code fence (``` or ```json)
// from the payload, if present. Content without a fence is returned unchanged.
func stripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if newline := strings.IndexByte(trimmed, '\n'); newline >= 0 {
		// Drop the language tag line ("json", "JSON", or empty).
		trimmed = trimmed[newline+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")

	return strings.TrimSpace(trimmed)
}
