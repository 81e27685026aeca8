package graph

import (
	"fmt"
	"strings"

	"github.com/joshharrison/depweave/internal/task"
)

// ValidationResult is the outcome of checking a proposed dependency list for
// one task. Validation failures are data, never Go errors: the caller
// renders Errors to the end user and commits only when IsValid. Warnings
// never affect IsValid.
type ValidationResult struct {
	IsValid              bool       `json:"isValid"`
	Errors               []string   `json:"errors,omitempty"`
	Warnings             []string   `json:"warnings,omitempty"`
	CircularDependencies [][]string `json:"circularDependencies,omitempty"`
}

// Validate checks whether assigning candidateDeps to candidateID is safe
// against the snapshot: every dependency must exist, a task cannot depend on
// itself, and the edit must not close a dependency cycle. A dependency on an
// already-completed task is redundant and reported as a warning only.
// Validate mutates nothing; it is a pure decision function.
func Validate(candidateID string, candidateDeps []string, tasks []task.Task) ValidationResult {
	var res ValidationResult

	byID := make(map[string]*task.Task, len(tasks))
	for i := range tasks {
		byID[tasks[i].ID] = &tasks[i]
	}

	var missing []string
	for _, dep := range candidateDeps {
		if _, ok := byID[dep]; !ok {
			missing = append(missing, dep)
		}
	}
	if len(missing) > 0 {
		res.Errors = append(res.Errors,
			fmt.Sprintf("dependencies not found: %s", strings.Join(missing, ", ")))
	}

	for _, dep := range candidateDeps {
		if dep == candidateID {
			res.Errors = append(res.Errors,
				fmt.Sprintf("task %s cannot depend on itself", candidateID))
			break
		}
	}

	if cycles := DetectCycles(candidateID, candidateDeps, tasks); len(cycles) > 0 {
		res.CircularDependencies = cycles
		res.Errors = append(res.Errors,
			fmt.Sprintf("dependency cycle detected: %s", strings.Join(cycles[0], " -> ")))
	}

	for _, dep := range candidateDeps {
		if t, ok := byID[dep]; ok && t.Status == task.StatusCompleted {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("dependency %s is already completed", dep))
		}
	}

	res.IsValid = len(res.Errors) == 0
	return res
}
