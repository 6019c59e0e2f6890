// Package server exposes the brainstorming workflow over HTTP: a minimal
// browser form, a JSON API, and a health endpoint.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Terresapan/static-content/brainstorm"
	"github.com/Terresapan/static-content/brandsite"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 30 * time.Second
	// writeTimeout must cover a full brainstorming run (six sequential
	// levels of LLM calls).
	writeTimeout    = 10 * time.Minute
	shutdownTimeout = 10 * time.Second
)

// Server handles HTTP access to the brainstorming runner.
type Server struct {
	runner  *brainstorm.Runner
	fetcher *brandsite.Fetcher
	logger  *slog.Logger
}

// New creates a Server. The fetcher may be nil, in which case brand_url
// fields on incoming requests are ignored. A nil logger falls back to
// slog.Default().
func New(runner *brainstorm.Runner, fetcher *brandsite.Fetcher, logger *slog.Logger) (*Server, error) {
	if runner == nil {
		return nil, fmt.Errorf("runner must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{runner: runner, fetcher: fetcher, logger: logger}, nil
}

// Handler returns the full route table wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /api/v1/brainstorm", s.handleBrainstorm)
	return s.logRequests(mux)
}

// ListenAndServe runs the HTTP server on addr until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", slog.String("addr", addr))
		errChan <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// brainstormRequest is the JSON body of POST /api/v1/brainstorm.
type brainstormRequest struct {
	CoreValue      string `json:"core_value"`
	TargetAudience string `json:"target_audience"`
	Persona        string `json:"persona"`
	Monetization   string `json:"monetization"`

	// BrandURL optionally points at the brand's website; its content is
	// fetched and added to every prompt as extra context.
	BrandURL string `json:"brand_url,omitempty"`
}

// brainstormResponse is the default response of POST /api/v1/brainstorm.
type brainstormResponse struct {
	RunID    uuid.UUID            `json:"run_id"`
	Sections []brainstorm.Section `json:"sections"`
	Markdown string               `json:"markdown"`
}

// ideasResponse is returned when ?format=ideas is requested.
type ideasResponse struct {
	RunID uuid.UUID         `json:"run_id"`
	Ideas []brainstorm.Idea `json:"ideas"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleBrainstorm(w http.ResponseWriter, r *http.Request) {
	var req brainstormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}

	positioning := brainstorm.Positioning{
		CoreValue:      req.CoreValue,
		TargetAudience: req.TargetAudience,
		Persona:        req.Persona,
		Monetization:   req.Monetization,
	}

	if url := strings.TrimSpace(req.BrandURL); url != "" && s.fetcher != nil {
		brandContext, err := s.fetcher.FetchContext(r.Context(), url)
		if err != nil {
			// Brand context is optional; a fetch failure downgrades the
			// run instead of failing it.
			s.logger.Warn("brand site fetch failed",
				slog.String("url", url),
				slog.String("error", err.Error()),
			)
		} else {
			positioning.BrandContext = brandContext
		}
	}

	state, err := s.runner.Run(r.Context(), positioning)
	if err != nil {
		if errors.Is(err, brainstorm.ErrMissingField) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		s.logger.Error("brainstorm run failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "brainstorm run failed: " + err.Error()})
		return
	}

	if r.URL.Query().Get("format") == "ideas" {
		ideas, err := s.runner.ExportIdeas(r.Context(), state)
		if err != nil {
			s.logger.Error("idea export failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: "idea export failed: " + err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, ideasResponse{RunID: state.ID, Ideas: ideas})
		return
	}

	sections := brainstorm.BuildReport(state)
	if category := r.URL.Query().Get("category"); category != "" {
		sections = brainstorm.FilterSections(sections, brainstorm.Category(category))
	}

	writeJSON(w, http.StatusOK, brainstormResponse{
		RunID:    state.ID,
		Sections: sections,
		Markdown: brainstorm.Markdown(sections),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("failed to encode response", "error", err.Error())
	}
}
