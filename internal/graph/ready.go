package graph

import "github.com/joshharrison/depweave/internal/task"

// computeReadiness derives IsReady and BlockedBy for every node.
//
// A completed task is never ready (it is done) and has no blockers. For
// everything else, BlockedBy collects dependencies that resolve to a
// not-yet-completed node; a dangling reference is satisfied by definition,
// because a task outside the snapshot cannot meaningfully block work. A node
// is ready when nothing blocks it and its own status is not blocked.
func computeReadiness(g *Graph) {
	for _, id := range g.Order {
		n := g.Nodes[id]
		if n.Status == task.StatusCompleted {
			n.IsReady = false
			n.BlockedBy = nil
			continue
		}

		for _, dep := range n.Dependencies {
			dn, ok := g.Nodes[dep]
			if !ok {
				continue
			}
			if dn.Status != task.StatusCompleted {
				n.BlockedBy = append(n.BlockedBy, dep)
			}
		}

		n.IsReady = len(n.BlockedBy) == 0 && n.Status != task.StatusBlocked
	}
}
