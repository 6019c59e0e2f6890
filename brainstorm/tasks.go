package brainstorm

import "fmt"

// Task is one node of the brainstorming DAG. BuildPrompt reads upstream
// output fields from the run state; Assign writes the task's own output
// field. A task must only read fields written by tasks it declares in
// DependsOn.
type Task struct {
	// Name identifies the task and its prompt template.
	Name string

	// DependsOn lists the names of tasks whose output this task's prompt
	// consumes. Empty for root tasks.
	DependsOn []string

	// BuildPrompt renders the task's prompt from the run state.
	BuildPrompt func(state *RunState) (string, error)

	// Assign stores the task's completion into its dedicated state field.
	Assign func(state *RunState, content string)
}

// TaskTable declares the full brainstorming DAG. The graph is fixed, so it
// lives in a compile-time table and the execution levels are derived from it
// once at startup.
var TaskTable = []Task{
	{
		Name: "flagship",
		BuildPrompt: func(state *RunState) (string, error) {
			return renderPrompt("flagship", paramsFromPositioning(state.Positioning))
		},
		Assign: func(state *RunState, content string) { state.Flagship = content },
	},
	{
		Name: "seasonal_event",
		BuildPrompt: func(state *RunState) (string, error) {
			return renderPrompt("seasonal_event", paramsFromPositioning(state.Positioning))
		},
		Assign: func(state *RunState, content string) { state.SeasonalEvent = content },
	},
	{
		Name: "evergreen",
		BuildPrompt: func(state *RunState) (string, error) {
			return renderPrompt("evergreen", paramsFromPositioning(state.Positioning))
		},
		Assign: func(state *RunState, content string) { state.Evergreen = content },
	},
	{
		Name:      "flagship_reflection",
		DependsOn: []string{"flagship"},
		BuildPrompt: func(state *RunState) (string, error) {
			params := paramsFromPositioning(state.Positioning)
			params.FlagshipContent = state.Flagship
			return renderPrompt("flagship_reflection", params)
		},
		Assign: func(state *RunState, content string) { state.FlagshipReflection = content },
	},
	{
		Name:      "seasonal_content",
		DependsOn: []string{"seasonal_event"},
		BuildPrompt: func(state *RunState) (string, error) {
			params := paramsFromPositioning(state.Positioning)
			params.SeasonalEvents = state.SeasonalEvent
			return renderPrompt("seasonal_content", params)
		},
		Assign: func(state *RunState, content string) { state.SeasonalContent = content },
	},
	{
		Name:      "editing",
		DependsOn: []string{"flagship_reflection", "seasonal_content", "evergreen"},
		BuildPrompt: func(state *RunState) (string, error) {
			params := paramsFromPositioning(state.Positioning)
			params.FlagshipReflection = state.FlagshipReflection
			params.SeasonalContent = state.SeasonalContent
			params.EvergreenContent = state.Evergreen
			return renderPrompt("editing", params)
		},
		Assign: func(state *RunState, content string) { state.Editing = content },
	},
}

func paramsFromPositioning(p Positioning) promptParams {
	return promptParams{
		CoreValue:      p.CoreValue,
		TargetAudience: p.TargetAudience,
		Persona:        p.Persona,
		Monetization:   p.Monetization,
		BrandContext:   p.BrandContext,
	}
}

// topologicalLevels groups tasks into dependency levels using Kahn's
// algorithm. All tasks in a level depend only on tasks from earlier levels
// and can run concurrently. Returns an error if the table references an
// unknown task or contains a cycle.
func topologicalLevels(tasks []Task) ([][]Task, error) {
	byName := make(map[string]Task, len(tasks))
	inDegree := make(map[string]int, len(tasks))
	dependents := make(map[string][]string, len(tasks))

	for _, task := range tasks {
		if _, exists := byName[task.Name]; exists {
			return nil, fmt.Errorf("duplicate task %q", task.Name)
		}
		byName[task.Name] = task
		inDegree[task.Name] = len(task.DependsOn)
	}

	for _, task := range tasks {
		for _, dep := range task.DependsOn {
			if _, exists := byName[dep]; !exists {
				return nil, fmt.Errorf("task %q depends on unknown task %q", task.Name, dep)
			}
			dependents[dep] = append(dependents[dep], task.Name)
		}
	}

	var levels [][]Task
	var current []string
	for _, task := range tasks {
		if inDegree[task.Name] == 0 {
			current = append(current, task.Name)
		}
	}

	scheduled := 0
	for len(current) > 0 {
		level := make([]Task, 0, len(current))
		var next []string
		for _, name := range current {
			level = append(level, byName[name])
			scheduled++
			for _, dependent := range dependents[name] {
				inDegree[dependent]--
				if inDegree[dependent] == 0 {
					next = append(next, dependent)
				}
			}
		}
		levels = append(levels, level)
		current = next
	}

	if scheduled != len(tasks) {
		return nil, fmt.Errorf("task graph contains a cycle")
	}

	return levels, nil
}
