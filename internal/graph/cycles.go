package graph

import "github.com/joshharrison/depweave/internal/task"

// DetectCycles checks whether giving candidateID the dependency list
// candidateDeps would create cycles within the snapshot. The candidate entry
// overwrites (or, for a not-yet-persisted task, inserts) the task's existing
// dependencies before the scan. Every cycle reachable from the scan is
// returned, not just the first; each cycle starts and ends at the repeated
// id. A self-dependency shows up here as a cycle of length one — the
// validation facade reports it with a dedicated error as well.
func DetectCycles(candidateID string, candidateDeps []string, tasks []task.Task) [][]string {
	edges := make(map[string][]string, len(tasks)+1)
	order := make([]string, 0, len(tasks)+1)
	for i := range tasks {
		if _, ok := edges[tasks[i].ID]; !ok {
			order = append(order, tasks[i].ID)
		}
		edges[tasks[i].ID] = tasks[i].Dependencies
	}
	if _, ok := edges[candidateID]; !ok {
		order = append(order, candidateID)
	}
	edges[candidateID] = candidateDeps

	return findCycles(edges, order)
}

// DetectAllCycles enumerates every dependency cycle in the built graph.
// Called once per Build.
func (g *Graph) DetectAllCycles() [][]string {
	edges := make(map[string][]string, len(g.Nodes))
	for id, n := range g.Nodes {
		edges[id] = n.Dependencies
	}
	return findCycles(edges, g.Order)
}

// findCycles runs DFS with on-stack marking and a path trace over an
// id -> dependency-ids table. Revisiting an id already on the recursion
// stack emits the path suffix from its first occurrence as one cycle; the
// search then continues. Ids absent from the table (dangling) are not
// traversed — they cannot participate in a cycle. The stack is explicit so
// deep chains cannot exhaust the goroutine stack.
func findCycles(edges map[string][]string, order []string) [][]string {
	type frame struct {
		id   string
		next int
	}

	var cycles [][]string
	visited := make(map[string]bool, len(edges))
	onStack := make(map[string]bool, len(edges))
	var path []string

	for _, start := range order {
		if visited[start] {
			continue
		}
		visited[start] = true
		onStack[start] = true
		path = append(path, start)
		stack := []frame{{id: start}}

		for len(stack) > 0 {
			f := &stack[len(stack)-1]
			deps := edges[f.id]

			if f.next < len(deps) {
				dep := deps[f.next]
				f.next++
				if _, ok := edges[dep]; !ok {
					continue
				}
				if onStack[dep] {
					for i, id := range path {
						if id == dep {
							cycle := append(append([]string(nil), path[i:]...), dep)
							cycles = append(cycles, cycle)
							break
						}
					}
					continue
				}
				if visited[dep] {
					continue
				}
				visited[dep] = true
				onStack[dep] = true
				path = append(path, dep)
				stack = append(stack, frame{id: dep})
				continue
			}

			onStack[f.id] = false
			path = path[:len(path)-1]
			stack = stack[:len(stack)-1]
		}
	}

	return cycles
}
