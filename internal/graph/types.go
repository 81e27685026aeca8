package graph

import "github.com/joshharrison/depweave/internal/task"

// Node is one task's view within a built graph. Dependencies are copied
// from the task record; everything else is derived at build time.
type Node struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Status       task.Status `json:"status"`
	Priority     int         `json:"priority,omitempty"`
	Dependencies []string    `json:"dependencies,omitempty"` // prerequisite task ids
	Dependents   []string    `json:"dependents,omitempty"`   // reverse edges, resolved only
	EstimateMins int         `json:"estimatedDuration,omitempty"`
	Depth        int         `json:"depth"`   // longest resolved dependency chain below this node
	IsReady      bool        `json:"isReady"` // no incomplete resolved deps and not status=blocked
	BlockedBy    []string    `json:"blockedBy,omitempty"`
}

// Graph is a dependency graph over one snapshot of tasks. It is rebuilt per
// call and never cached; derived id lists keep the input insertion order.
type Graph struct {
	Nodes        map[string]*Node `json:"nodes"`
	Order        []string         `json:"order"` // node ids in input order
	Roots        []string         `json:"roots,omitempty"`
	Leaves       []string         `json:"leaves,omitempty"`
	Cycles       [][]string       `json:"cycles,omitempty"`
	ReadyItems   []string         `json:"readyItems,omitempty"`
	BlockedItems []string         `json:"blockedItems,omitempty"`
}

// TaskCount returns the number of tasks in the graph.
func (g *Graph) TaskCount() int {
	return len(g.Nodes)
}
