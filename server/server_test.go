package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Terresapan/static-content/brainstorm"
	"github.com/Terresapan/static-content/brandsite"
	"github.com/Terresapan/static-content/core/client"
	"github.com/Terresapan/static-content/providers/ai"
)

// stubProvider answers every prompt by matching a distinctive phrase, so the
// server tests can run the full workflow without a real LLM backend.
type stubProvider struct {
	respond func(prompt string) (string, error)
}

func (p *stubProvider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	content, err := p.respond(request.Messages[len(request.Messages)-1].Content)
	if err != nil {
		return nil, err
	}
	return &ai.ChatResponse{Content: content, FinishReason: "stop"}, nil
}

func (p *stubProvider) IsStopMessage(message *ai.ChatResponse) bool { return true }
func (p *stubProvider) WithAPIKey(apiKey string) ai.Provider        { return p }
func (p *stubProvider) WithBaseURL(baseURL string) ai.Provider      { return p }
func (p *stubProvider) WithHttpClient(c *http.Client) ai.Provider   { return p }

func stubRespond(prompt string) (string, error) {
	switch {
	case strings.Contains(prompt, "10 flagship content topics"):
		return "flagship ideas", nil
	case strings.Contains(prompt, "top 5 flagship content topics"):
		return "flagship analysis", nil
	case strings.Contains(prompt, "next twelve months"):
		return "seasonal events", nil
	case strings.Contains(prompt, "Suggest seasonal content tied to these events"):
		return "seasonal ideas", nil
	case strings.Contains(prompt, "Suggest evergreen content topics"):
		return "evergreen ideas", nil
	case strings.Contains(prompt, "managing editor"):
		return "strategy summary", nil
	case strings.Contains(prompt, "JSON array"):
		return `[{"title":"Studio tour","category":"flagship","angle":"weekly series"}]`, nil
	}
	return "", fmt.Errorf("unrecognized prompt")
}

func newTestServer(t *testing.T, respond func(string) (string, error)) *httptest.Server {
	t.Helper()
	c, err := client.New(&stubProvider{respond: respond}, client.WithModel("test-model"))
	if err != nil {
		t.Fatal(err)
	}
	runner, err := brainstorm.NewRunner(c, nil)
	if err != nil {
		t.Fatal(err)
	}
	srv, err := New(runner, brandsite.NewFetcher(), nil)
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

const validBody = `{
	"core_value": "handmade ceramics that last a lifetime",
	"target_audience": "design-conscious home cooks",
	"persona": "warm and craft-obsessed",
	"monetization": "direct online sales and workshops"
}`

func TestBrainstormEndpoint(t *testing.T) {
	ts := newTestServer(t, stubRespond)

	resp, err := http.Post(ts.URL+"/api/v1/brainstorm", "application/json", strings.NewReader(validBody))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var payload struct {
		RunID    string               `json:"run_id"`
		Sections []brainstorm.Section `json:"sections"`
		Markdown string               `json:"markdown"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatal(err)
	}

	if payload.RunID == "" {
		t.Error("expected a run_id")
	}
	if len(payload.Sections) != 6 {
		t.Errorf("expected 6 sections, got %d", len(payload.Sections))
	}
	if !strings.Contains(payload.Markdown, "## Content Strategy Summary") {
		t.Error("markdown should contain the strategy summary header")
	}
	if !strings.Contains(payload.Markdown, "strategy summary") {
		t.Error("markdown should contain the editing output")
	}
}

func TestBrainstormMissingField(t *testing.T) {
	ts := newTestServer(t, stubRespond)

	body := `{"core_value": "x", "target_audience": "y", "persona": "z"}`
	resp, err := http.Post(ts.URL+"/api/v1/brainstorm", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(payload.Error, "monetization") {
		t.Errorf("error should name the missing field, got %q", payload.Error)
	}
}

func TestBrainstormInvalidJSON(t *testing.T) {
	ts := newTestServer(t, stubRespond)

	resp, err := http.Post(ts.URL+"/api/v1/brainstorm", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestBrainstormIdeasFormat(t *testing.T) {
	ts := newTestServer(t, stubRespond)

	resp, err := http.Post(ts.URL+"/api/v1/brainstorm?format=ideas", "application/json", strings.NewReader(validBody))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var payload struct {
		RunID string            `json:"run_id"`
		Ideas []brainstorm.Idea `json:"ideas"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatal(err)
	}
	if len(payload.Ideas) != 1 || payload.Ideas[0].Title != "Studio tour" {
		t.Errorf("unexpected ideas: %+v", payload.Ideas)
	}
}

func TestBrainstormCategoryFilter(t *testing.T) {
	ts := newTestServer(t, stubRespond)

	resp, err := http.Post(ts.URL+"/api/v1/brainstorm?category=seasonal", "application/json", strings.NewReader(validBody))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var payload struct {
		Sections []brainstorm.Section `json:"sections"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatal(err)
	}
	if len(payload.Sections) != 2 {
		t.Fatalf("expected 2 seasonal sections, got %d", len(payload.Sections))
	}
	for _, section := range payload.Sections {
		if section.Category != brainstorm.CategorySeasonal {
			t.Errorf("unexpected category %q", section.Category)
		}
	}
}

func TestBrainstormProviderFailure(t *testing.T) {
	ts := newTestServer(t, func(prompt string) (string, error) {
		return "", fmt.Errorf("backend unavailable")
	})

	resp, err := http.Post(ts.URL+"/api/v1/brainstorm", "application/json", strings.NewReader(validBody))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", resp.StatusCode)
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t, stubRespond)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestIndexPage(t *testing.T) {
	ts := newTestServer(t, stubRespond)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
}
