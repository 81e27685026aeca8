package graph

// computeDepths assigns each node the length of its longest resolved
// dependency chain (0 for a node with no resolved dependencies).
//
// The walk uses an explicit stack so pathological chains cannot exhaust the
// goroutine stack, and it runs before cycle detection has had a chance to
// reject the input: a dependency still on the walk contributes its
// already-set depth (0 by default) instead of being revisited, which bounds
// the computation on cyclic input.
func computeDepths(g *Graph) {
	const (
		white = 0 // unvisited
		gray  = 1 // on the walk
		black = 2 // depth final
	)

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
				for _, dep := range n.Dependencies {
					if _, ok := g.Nodes[dep]; ok && state[dep] == white {
						stack = append(stack, dep)
					}
				}
				continue
			}

			stack = stack[:len(stack)-1]
			if state[id] == black {
				// Pushed twice while white; already finalized
				continue
			}
			state[id] = black

			depth := 0
			for _, dep := range n.Dependencies {
				if dn, ok := g.Nodes[dep]; ok {
					if d := dn.Depth + 1; d > depth {
						depth = d
					}
				}
			}
			n.Depth = depth
		}
	}
}
