package brainstorm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Terresapan/static-content/core/client"
	"github.com/Terresapan/static-content/core/parse"
)

// ErrEmptyCompletion is returned when a task's completion is empty or
// whitespace-only. Every downstream prompt depends on upstream content, so a
// blank completion aborts the run.
var ErrEmptyCompletion = errors.New("empty completion")

// Runner executes the brainstorming DAG against a configured LLM client.
type Runner struct {
	client *client.Client
	logger *slog.Logger
	levels [][]Task
}

// NewRunner creates a Runner over [TaskTable]. The logger may be nil, in
// which case slog.Default() is used.
func NewRunner(c *client.Client, logger *slog.Logger) (*Runner, error) {
	if c == nil {
		return nil, fmt.Errorf("client must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	levels, err := topologicalLevels(TaskTable)
	if err != nil {
		return nil, fmt.Errorf("building task levels: %w", err)
	}

	return &Runner{
		client: c,
		logger: logger,
		levels: levels,
	}, nil
}

// Run validates the positioning and executes every task level in order.
// Tasks within a level run concurrently; each writes a distinct field of the
// run state. The run is all-or-nothing: on any task error the whole run
// fails and no partial state is returned.
func (r *Runner) Run(ctx context.Context, positioning Positioning) (*RunState, error) {
	if err := positioning.Validate(); err != nil {
		return nil, err
	}

	state := newRunState(positioning)
	r.logger.Info("brainstorm run started",
		slog.String("run_id", state.ID.String()),
		slog.String("model", r.client.Model()),
	)

	for _, level := range r.levels {
		group, groupCtx := errgroup.WithContext(ctx)
		for _, task := range level {
			group.Go(func() error {
				return r.runTask(groupCtx, task, state)
			})
		}
		if err := group.Wait(); err != nil {
			r.logger.Error("brainstorm run failed",
				slog.String("run_id", state.ID.String()),
				slog.String("error", err.Error()),
			)
			return nil, err
		}
	}

	state.CompletedAt = time.Now()
	r.logger.Info("brainstorm run completed",
		slog.String("run_id", state.ID.String()),
		slog.Duration("duration", state.CompletedAt.Sub(state.StartedAt)),
	)

	return state, nil
}

func (r *Runner) runTask(ctx context.Context, task Task, state *RunState) error {
	prompt, err := task.BuildPrompt(state)
	if err != nil {
		return fmt.Errorf("task %s: %w", task.Name, err)
	}

	start := time.Now()
	response, err := r.client.SendMessage(ctx, prompt)
	if err != nil {
		return fmt.Errorf("task %s: %w", task.Name, err)
	}

	if strings.TrimSpace(response.Content) == "" {
		return fmt.Errorf("task %s: %w", task.Name, ErrEmptyCompletion)
	}

	task.Assign(state, response.Content)
	r.logger.Debug("task completed",
		slog.String("run_id", state.ID.String()),
		slog.String("task", task.Name),
		slog.Duration("duration", time.Since(start)),
	)

	return nil
}

// Idea is one machine-readable content idea extracted from a finished run.
type Idea struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Angle    string `json:"angle"`
}

// ExportIdeas converts a completed run's strategy summary into a structured
// idea list with one extra LLM call. Model output defects (single quotes,
// code fences) are tolerated via JSON repair.
func (r *Runner) ExportIdeas(ctx context.Context, state *RunState) ([]Idea, error) {
	if state == nil || strings.TrimSpace(state.Editing) == "" {
		return nil, fmt.Errorf("run state has no strategy summary to export")
	}

	prompt, err := renderExportPrompt(state.Editing)
	if err != nil {
		return nil, err
	}

	response, err := r.client.SendMessage(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("export ideas: %w", err)
	}
	if strings.TrimSpace(response.Content) == "" {
		return nil, fmt.Errorf("export ideas: %w", ErrEmptyCompletion)
	}

	ideas, err := parse.ParseStringAs[[]Idea](response.Content)
	if err != nil {
		return nil, fmt.Errorf("export ideas: %w", err)
	}

	return ideas, nil
}
