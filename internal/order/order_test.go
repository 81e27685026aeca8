package order

import (
	"reflect"
	"testing"

	"github.com/joshharrison/depweave/internal/graph"
	"github.com/joshharrison/depweave/internal/task"
)

func buildGraph(t *testing.T, tasks []task.Task) *graph.Graph {
	t.Helper()
	return graph.Build(tasks)
}

func TestCriticalPath_LinearChain(t *testing.T) {
	g := buildGraph(t, []task.Task{
		{ID: "a", Status: task.StatusPending},
		{ID: "b", Status: task.StatusPending, Dependencies: []string{"a"}},
		{ID: "c", Status: task.StatusPending, Dependencies: []string{"b"}},
		{ID: "d", Status: task.StatusPending, Dependencies: []string{"c"}},
	})

	path := CriticalPath(g)
	if !reflect.DeepEqual(path, []string{"a", "b", "c", "d"}) {
		t.Errorf("expected [a b c d], got %v", path)
	}
}

func TestCriticalPath_EmptyGraph(t *testing.T) {
	if path := CriticalPath(buildGraph(t, nil)); len(path) != 0 {
		t.Errorf("expected empty path, got %v", path)
	}
}

func TestCriticalPath_NoRoots(t *testing.T) {
	// pure cycle: every node has a dependency, so there is no root
	g := buildGraph(t, []task.Task{
		{ID: "a", Status: task.StatusPending, Dependencies: []string{"b"}},
		{ID: "b", Status: task.StatusPending, Dependencies: []string{"a"}},
	})

	if path := CriticalPath(g); len(path) != 0 {
		t.Errorf("expected empty path without roots, got %v", path)
	}
}

func TestCriticalPath_PicksLongerBranch(t *testing.T) {
	// a -> b -> c is longer than a -> d
	g := buildGraph(t, []task.Task{
		{ID: "a", Status: task.StatusPending},
		{ID: "d", Status: task.StatusPending, Dependencies: []string{"a"}},
		{ID: "b", Status: task.StatusPending, Dependencies: []string{"a"}},
		{ID: "c", Status: task.StatusPending, Dependencies: []string{"b"}},
	})

	path := CriticalPath(g)
	if !reflect.DeepEqual(path, []string{"a", "b", "c"}) {
		t.Errorf("expected [a b c], got %v", path)
	}
}

func TestCriticalPath_TieKeepsFirstDiscovered(t *testing.T) {
	// two equal-length chains; the first root in input order wins
	g := buildGraph(t, []task.Task{
		{ID: "r1", Status: task.StatusPending},
		{ID: "r2", Status: task.StatusPending},
		{ID: "x", Status: task.StatusPending, Dependencies: []string{"r1"}},
		{ID: "y", Status: task.StatusPending, Dependencies: []string{"r2"}},
	})

	path := CriticalPath(g)
	if !reflect.DeepEqual(path, []string{"r1", "x"}) {
		t.Errorf("expected first-discovered chain [r1 x], got %v", path)
	}
}

func TestSuggested_RespectsDependencies(t *testing.T) {
	tasks := []task.Task{
		{ID: "a", Status: task.StatusPending},
		{ID: "b", Status: task.StatusPending, Dependencies: []string{"a"}},
		{ID: "c", Status: task.StatusPending, Dependencies: []string{"a"}},
		{ID: "d", Status: task.StatusPending, Dependencies: []string{"b", "c"}},
	}
	g := buildGraph(t, tasks)

	out := Suggested(g)
	if len(out) != 4 {
		t.Fatalf("expected all 4 tasks emitted, got %v", out)
	}

	pos := make(map[string]int, len(out))
	for i, id := range out {
		pos[id] = i
	}
	for _, tk := range tasks {
		for _, dep := range tk.Dependencies {
			if pos[dep] > pos[tk.ID] {
				t.Errorf("dependency %s emitted after %s: %v", dep, tk.ID, out)
			}
		}
	}
}

func TestSuggested_PriorityBreaksTies(t *testing.T) {
	g := buildGraph(t, []task.Task{
		{ID: "low", Status: task.StatusPending, Priority: 1},
		{ID: "high", Status: task.StatusPending, Priority: 9},
		{ID: "mid", Status: task.StatusPending, Priority: 5},
	})

	out := Suggested(g)
	if !reflect.DeepEqual(out, []string{"high", "mid", "low"}) {
		t.Errorf("expected priority-descending order, got %v", out)
	}
}

func TestSuggested_DeeperNodesFirst(t *testing.T) {
	// After r1 is emitted, its depth-1 dependent outranks the depth-0 root r2
	g := buildGraph(t, []task.Task{
		{ID: "r1", Status: task.StatusPending},
		{ID: "r2", Status: task.StatusPending},
		{ID: "child", Status: task.StatusPending, Dependencies: []string{"r1"}},
	})

	out := Suggested(g)
	if !reflect.DeepEqual(out, []string{"r1", "child", "r2"}) {
		t.Errorf("expected depth-descending order [r1 child r2], got %v", out)
	}
}

func TestSuggested_DanglingOnlyDepsAreSeeds(t *testing.T) {
	g := buildGraph(t, []task.Task{
		{ID: "t", Status: task.StatusPending, Dependencies: []string{"ghost"}},
	})

	out := Suggested(g)
	if !reflect.DeepEqual(out, []string{"t"}) {
		t.Errorf("dangling deps are vacuously satisfied, expected [t], got %v", out)
	}
}

func TestSuggested_CyclicUnderEmits(t *testing.T) {
	g := buildGraph(t, []task.Task{
		{ID: "free", Status: task.StatusPending},
		{ID: "a", Status: task.StatusPending, Dependencies: []string{"b"}},
		{ID: "b", Status: task.StatusPending, Dependencies: []string{"a"}},
	})

	out := Suggested(g)
	if !reflect.DeepEqual(out, []string{"free"}) {
		t.Errorf("cycle members must be skipped, not looped over, got %v", out)
	}

	total := SuggestedTotal(g)
	if !reflect.DeepEqual(total, []string{"free", "a", "b"}) {
		t.Errorf("expected leftovers appended in input order, got %v", total)
	}
}
