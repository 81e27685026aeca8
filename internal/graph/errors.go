package graph

import "errors"

// ErrCyclic marks failures caused by cyclic input in operations that
// require an acyclic graph (topological analysis). It lets callers tell a
// graph-shape failure apart from a user-facing validation rejection, which
// is always returned as a ValidationResult, never as an error.
var ErrCyclic = errors.New("dependency graph contains a cycle")
