// Package order computes the longest chain of sequential work in a task
// graph and a priority-aware ordering for attacking it.
package order

import (
	"sort"

	"github.com/joshharrison/depweave/internal/graph"
)

// CriticalPath returns the longest root-to-leaf chain of task ids, walking
// forward through dependents and counting nodes. Ties keep the first
// discovery (first root, first dependent, in stored order); no numeric
// tie-break is applied. Returns nil when the graph has no roots.
func CriticalPath(g *graph.Graph) []string {
	if len(g.Roots) == 0 {
		return nil
	}

	chain, next := longestChains(g)

	bestRoot := ""
	bestLen := 0
	for _, r := range g.Roots {
		if chain[r] > bestLen {
			bestRoot = r
			bestLen = chain[r]
		}
	}

	var path []string
	for id := bestRoot; ; {
		path = append(path, id)
		nxt, ok := next[id]
		if !ok {
			break
		}
		id = nxt
	}
	return path
}

// longestChains computes, for every node, the node count of the longest
// forward walk through dependents, plus the successor chosen on that walk.
// Explicit stack, post-order; a dependent still on the walk (cyclic input)
// contributes its current chain value instead of being revisited, so the
// computation always terminates.
func longestChains(g *graph.Graph) (chain map[string]int, next map[string]string) {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	chain = make(map[string]int, len(g.Nodes))
	next = make(map[string]string, len(g.Nodes))
	state := make(map[string]int, len(g.Nodes))

	for _, start := range g.Order {
		if state[start] != white {
			continue
		}
		stack := []string{start}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			n := g.Nodes[id]

			if state[id] == white {
				state[id] = gray
				for _, dep := range n.Dependents {
					if state[dep] == white {
						stack = append(stack, dep)
					}
				}
				continue
			}

			stack = stack[:len(stack)-1]
			if state[id] == black {
				continue
			}
			state[id] = black

			best := 0
			for _, dep := range n.Dependents {
				if chain[dep] > best {
					best = chain[dep]
					next[id] = dep
				}
			}
			chain[id] = best + 1
		}
	}

	return chain, next
}

// Suggested returns a priority- and depth-aware topological emission order.
// The queue is seeded with every node whose resolved in-degree is zero
// (roots, plus nodes whose only dependencies are dangling); each step sorts
// the queue by depth descending then priority descending, emits the front,
// and enqueues dependents once all their resolved dependencies are emitted.
//
// Suggested assumes acyclic input: on a cyclic graph it under-emits (the
// cycle members never become enqueueable) but never loops. Callers should
// reject cycles first, or use SuggestedTotal for a total order.
func Suggested(g *graph.Graph) []string {
	emitted := make(map[string]bool, len(g.Nodes))
	queued := make(map[string]bool, len(g.Nodes))

	var queue []string
	for _, id := range g.Order {
		if resolvedDeps(g, id, emitted) {
			queue = append(queue, id)
			queued[id] = true
		}
	}

	var out []string
	for len(queue) > 0 {
		sort.SliceStable(queue, func(a, b int) bool {
			na, nb := g.Nodes[queue[a]], g.Nodes[queue[b]]
			if na.Depth != nb.Depth {
				return na.Depth > nb.Depth
			}
			return na.Priority > nb.Priority
		})

		id := queue[0]
		queue = queue[1:]
		if emitted[id] {
			continue
		}
		emitted[id] = true
		out = append(out, id)

		for _, dep := range g.Nodes[id].Dependents {
			if queued[dep] {
				continue
			}
			if resolvedDeps(g, dep, emitted) {
				queue = append(queue, dep)
				queued[dep] = true
			}
		}
	}

	return out
}

// SuggestedTotal extends Suggested to a total order over all tasks: anything
// the queue walk never reached (members of a cycle) is appended in input
// order.
func SuggestedTotal(g *graph.Graph) []string {
	out := Suggested(g)
	seen := make(map[string]bool, len(out))
	for _, id := range out {
		seen[id] = true
	}
	for _, id := range g.Order {
		if !seen[id] {
			out = append(out, id)
		}
	}
	return out
}

// resolvedDeps reports whether every dependency of id that resolves to a
// node has been emitted. Dangling dependencies are vacuously satisfied.
func resolvedDeps(g *graph.Graph, id string, emitted map[string]bool) bool {
	for _, dep := range g.Nodes[id].Dependencies {
		if _, ok := g.Nodes[dep]; ok && !emitted[dep] {
			return false
		}
	}
	return true
}
