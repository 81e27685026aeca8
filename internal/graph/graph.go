package graph

import "github.com/joshharrison/depweave/internal/task"

// Build constructs a Graph from a flat snapshot of task records.
//
// Dependency ids with no matching task ("dangling references") never produce
// an edge and never block anything; they are treated as vacuously satisfied
// throughout the engine. Build itself never fails: cycles are recorded in
// Graph.Cycles rather than rejected, and an empty snapshot yields an empty
// graph. Task ids are assumed unique within the snapshot; a duplicate id
// overwrites the earlier record, which is a caller error.
func Build(tasks []task.Task) *Graph {
	g := &Graph{Nodes: make(map[string]*Node, len(tasks))}

	// Index all tasks
	for i := range tasks {
		t := &tasks[i]
		if _, ok := g.Nodes[t.ID]; !ok {
			g.Order = append(g.Order, t.ID)
		}
		g.Nodes[t.ID] = &Node{
			ID:           t.ID,
			Title:        t.Title,
			Status:       t.Status,
			Priority:     t.Priority,
			Dependencies: t.Dependencies,
			EstimateMins: t.EstimateMins,
		}
	}

	// Reverse edges, deduped, only between nodes that exist in the snapshot
	edgeSet := make(map[[2]string]bool)
	for _, id := range g.Order {
		n := g.Nodes[id]
		for _, dep := range n.Dependencies {
			target, ok := g.Nodes[dep]
			if !ok {
				continue
			}
			key := [2]string{dep, id}
			if edgeSet[key] {
				continue
			}
			edgeSet[key] = true
			target.Dependents = append(target.Dependents, id)
		}
	}

	computeDepths(g)
	computeReadiness(g)

	// Roots have no dependencies at all; leaves have no resolved dependents
	for _, id := range g.Order {
		n := g.Nodes[id]
		if len(n.Dependencies) == 0 {
			g.Roots = append(g.Roots, id)
		}
		if len(n.Dependents) == 0 {
			g.Leaves = append(g.Leaves, id)
		}
	}

	g.Cycles = g.DetectAllCycles()

	for _, id := range g.Order {
		n := g.Nodes[id]
		switch {
		case n.IsReady:
			g.ReadyItems = append(g.ReadyItems, id)
		case n.Status != task.StatusCompleted:
			g.BlockedItems = append(g.BlockedItems, id)
		}
	}

	return g
}

// Filter returns a new Graph containing only nodes matching the predicate.
// Edges are re-derived, so a dependency on a filtered-out task becomes a
// dangling reference and is dropped.
func (g *Graph) Filter(pred func(*Node) bool) *Graph {
	var kept []task.Task
	for _, id := range g.Order {
		n := g.Nodes[id]
		if pred(n) {
			kept = append(kept, task.Task{
				ID:           n.ID,
				Title:        n.Title,
				Status:       n.Status,
				Priority:     n.Priority,
				Dependencies: n.Dependencies,
				EstimateMins: n.EstimateMins,
			})
		}
	}
	return Build(kept)
}
