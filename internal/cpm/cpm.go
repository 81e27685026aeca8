package cpm

import (
	"fmt"
	"sort"

	"github.com/joshharrison/depweave/internal/graph"
)

// Analyze performs critical path method analysis on a task graph.
// If a task has EstimateMins > 0, that is used as its duration; otherwise
// duration is 1. Cyclic input fails with an error wrapping graph.ErrCyclic.
func Analyze(g *graph.Graph) (*Result, error) {
	order, err := topoSort(g)
	if err != nil {
		return nil, err
	}

	durations := make(map[string]int, len(g.Nodes))
	for id, n := range g.Nodes {
		if n.EstimateMins > 0 {
			durations[id] = n.EstimateMins
		} else {
			durations[id] = 1
		}
	}

	result := &Result{
		Tasks:     make(map[string]*TaskSchedule, len(order)),
		TopoOrder: order,
	}

	for _, id := range order {
		result.Tasks[id] = &TaskSchedule{TaskID: id}
	}

	// Forward pass: compute ES and EF
	for _, id := range order {
		ts := result.Tasks[id]
		// ES = max(EF of all resolved predecessors)
		es := 0
		for _, pred := range g.Nodes[id].Dependencies {
			predTS, ok := result.Tasks[pred]
			if !ok {
				continue
			}
			if predTS.EF > es {
				es = predTS.EF
			}
		}
		ts.ES = es
		ts.EF = es + durations[id]
	}

	totalDuration := 0
	for _, ts := range result.Tasks {
		if ts.EF > totalDuration {
			totalDuration = ts.EF
		}
	}
	result.TotalDuration = totalDuration

	// Backward pass: compute LS and LF, leaves pinned to the project end
	for _, id := range g.Leaves {
		if ts, ok := result.Tasks[id]; ok {
			ts.LF = totalDuration
			ts.LS = totalDuration - durations[id]
		}
	}

	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		ts := result.Tasks[id]

		if ts.LF == 0 && len(g.Nodes[id].Dependents) > 0 {
			minLS := totalDuration
			for _, succ := range g.Nodes[id].Dependents {
				succTS := result.Tasks[succ]
				if succTS.LS < minLS {
					minLS = succTS.LS
				}
			}
			ts.LF = minLS
			ts.LS = minLS - durations[id]
		} else if ts.LF == 0 {
			ts.LF = totalDuration
			ts.LS = totalDuration - durations[id]
		}

		ts.Slack = ts.LS - ts.ES
		ts.IsCritical = ts.Slack == 0
	}

	// Critical path = critical tasks in topological order
	for _, id := range order {
		if result.Tasks[id].IsCritical {
			result.CriticalPath = append(result.CriticalPath, id)
		}
	}

	result.Waves = computeWaves(result, g)

	return result, nil
}

// topoSort performs Kahn's algorithm over resolved dependency edges.
// Queue order follows the snapshot's input order for determinism.
func topoSort(g *graph.Graph) ([]string, error) {
	inDegree := make(map[string]int, len(g.Nodes))
	for _, id := range g.Order {
		seen := make(map[string]bool, len(g.Nodes[id].Dependencies))
		for _, dep := range g.Nodes[id].Dependencies {
			if _, ok := g.Nodes[dep]; ok && !seen[dep] {
				seen[dep] = true
				inDegree[id]++
			}
		}
	}

	var queue []string
	for _, id := range g.Order {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	var order []string
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)

		for _, succ := range g.Nodes[node].Dependents {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				queue = append(queue, succ)
			}
		}
	}

	if len(order) != len(g.Nodes) {
		return nil, fmt.Errorf("topological sort: %w (%d of %d tasks sorted)",
			graph.ErrCyclic, len(order), len(g.Nodes))
	}

	return order, nil
}

// computeWaves groups tasks by their earliest start time.
func computeWaves(result *Result, g *graph.Graph) []Wave {
	esGroups := make(map[int][]string)
	for _, id := range result.TopoOrder {
		es := result.Tasks[id].ES
		esGroups[es] = append(esGroups[es], id)
	}

	esValues := make([]int, 0, len(esGroups))
	for es := range esGroups {
		esValues = append(esValues, es)
	}
	sort.Ints(esValues)

	waves := make([]Wave, len(esValues))
	for i, es := range esValues {
		taskIDs := esGroups[es]

		hasCritical := false
		for _, id := range taskIDs {
			result.Tasks[id].Wave = i
			if result.Tasks[id].IsCritical {
				hasCritical = true
			}
		}

		// Critical tasks first within a wave
		sort.SliceStable(taskIDs, func(a, b int) bool {
			aCrit := result.Tasks[taskIDs[a]].IsCritical
			bCrit := result.Tasks[taskIDs[b]].IsCritical
			if aCrit != bCrit {
				return aCrit
			}
			return false
		})

		waves[i] = Wave{
			Index:      i,
			TaskIDs:    taskIDs,
			IsCritical: hasCritical,
		}
	}

	return waves
}
