package parse

import (
	"testing"
)

type idea struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

func TestParseStringAsString(t *testing.T) {
	got, err := ParseStringAs[string]("plain text, not JSON")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "plain text, not JSON" {
		t.Errorf("string content should pass through unchanged, got %q", got)
	}
}

func TestParseStringAsValidJSON(t *testing.T) {
	got, err := ParseStringAs[[]idea](`[{"title":"Behind the scenes","category":"flagship"}]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Behind the scenes" {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestParseStringAsRepairsJSON(t *testing.T) {
	// Single quotes and unquoted keys are typical LLM output defects.
	got, err := ParseStringAs[[]idea](`[{title: 'Q&A session', category: 'evergreen'}]`)
	if err != nil {
		t.Fatalf("expected repair to succeed, got error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Q&A session" || got[0].Category != "evergreen" {
		t.Errorf("unexpected repaired result: %+v", got)
	}
}

func TestParseStringAsStripsCodeFence(t *testing.T) {
	content := "```json\n[{\"title\":\"Holiday gift guide\",\"category\":\"seasonal\"}]\n```"
	got, err := ParseStringAs[[]idea](content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Holiday gift guide" {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestParseStringAsUnrepairable(t *testing.T) {
	if _, err := ParseStringAs[[]idea]("this is prose, not a list"); err == nil {
		t.Fatal("expected error for unparseable content")
	}
}
