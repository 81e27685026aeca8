package graph

import (
	"testing"

	"github.com/joshharrison/depweave/internal/task"
)

func TestDepth_LinearChain(t *testing.T) {
	tasks := []task.Task{
		{ID: "a", Status: task.StatusPending},
		{ID: "b", Status: task.StatusPending, Dependencies: []string{"a"}},
		{ID: "c", Status: task.StatusPending, Dependencies: []string{"b"}},
	}

	g := Build(tasks)

	for id, want := range map[string]int{"a": 0, "b": 1, "c": 2} {
		if got := g.Nodes[id].Depth; got != want {
			t.Errorf("depth(%s): expected %d, got %d", id, want, got)
		}
	}
}

func TestDepth_DiamondTakesLongest(t *testing.T) {
	// d sits under both a direct edge and a two-hop chain
	tasks := []task.Task{
		{ID: "a", Status: task.StatusPending},
		{ID: "b", Status: task.StatusPending, Dependencies: []string{"a"}},
		{ID: "d", Status: task.StatusPending, Dependencies: []string{"a", "b"}},
	}

	g := Build(tasks)

	if got := g.Nodes["d"].Depth; got != 2 {
		t.Errorf("expected depth 2 via the longer chain, got %d", got)
	}
}

func TestDepth_DanglingDepIgnored(t *testing.T) {
	g := Build([]task.Task{
		{ID: "a", Status: task.StatusPending, Dependencies: []string{"ghost"}},
	})

	if got := g.Nodes["a"].Depth; got != 0 {
		t.Errorf("dangling deps contribute nothing, expected 0, got %d", got)
	}
}

func TestDepth_CyclicInputTerminates(t *testing.T) {
	tasks := []task.Task{
		{ID: "a", Status: task.StatusPending, Dependencies: []string{"b"}},
		{ID: "b", Status: task.StatusPending, Dependencies: []string{"a"}},
		{ID: "c", Status: task.StatusPending, Dependencies: []string{"b"}},
	}

	// Must not hang or overflow; exact depths inside the cycle are the
	// fallback values, which only need to be finite and >= 0.
	g := Build(tasks)

	for id, n := range g.Nodes {
		if n.Depth < 0 {
			t.Errorf("node %s has negative depth %d", id, n.Depth)
		}
	}
}
