package brainstorm

import "testing"

func levelNames(level []Task) map[string]bool {
	names := make(map[string]bool, len(level))
	for _, task := range level {
		names[task.Name] = true
	}
	return names
}

func TestTopologicalLevels(t *testing.T) {
	levels, err := topologicalLevels(TaskTable)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(levels) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(levels))
	}

	first := levelNames(levels[0])
	if len(first) != 3 || !first["flagship"] || !first["seasonal_event"] || !first["evergreen"] {
		t.Errorf("unexpected first level: %v", first)
	}

	second := levelNames(levels[1])
	if len(second) != 2 || !second["flagship_reflection"] || !second["seasonal_content"] {
		t.Errorf("unexpected second level: %v", second)
	}

	third := levelNames(levels[2])
	if len(third) != 1 || !third["editing"] {
		t.Errorf("unexpected third level: %v", third)
	}
}

func TestTopologicalLevelsUnknownDependency(t *testing.T) {
	tasks := []Task{
		{Name: "a", DependsOn: []string{"missing"}},
	}
	if _, err := topologicalLevels(tasks); err == nil {
		t.Fatal("expected error for unknown dependency")
	}
}

func TestTopologicalLevelsCycle(t *testing.T) {
	tasks := []Task{
		{Name: "a", DependsOn: []string{"b"}},
		{Name: "b", DependsOn: []string{"a"}},
	}
	if _, err := topologicalLevels(tasks); err == nil {
		t.Fatal("expected error for cyclic graph")
	}
}

func TestTopologicalLevelsDuplicateTask(t *testing.T) {
	tasks := []Task{
		{Name: "a"},
		{Name: "a"},
	}
	if _, err := topologicalLevels(tasks); err == nil {
		t.Fatal("expected error for duplicate task name")
	}
}
