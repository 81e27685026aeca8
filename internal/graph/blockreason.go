package graph

import (
	"time"

	"github.com/joshharrison/depweave/internal/task"
)

// Blockage explains why a task cannot start yet.
type Blockage struct {
	BlockedBy []string       `json:"blockedBy"`
	Details   []BlockingTask `json:"details"`
}

// BlockingTask is one incomplete dependency. EstimatedCompletion is a rough
// now-plus-estimate projection, set only when the blocker carries an
// estimate; it is not a scheduling guarantee.
type BlockingTask struct {
	TaskID              string      `json:"taskId"`
	TaskTitle           string      `json:"taskTitle"`
	Status              task.Status `json:"status"`
	EstimatedCompletion *time.Time  `json:"estimatedCompletion,omitempty"`
}

// BlockReason reports the unmet dependencies of one task, or nil when
// nothing blocks it: the task is unknown, completed, has no dependencies, or
// every dependency resolves to a completed task. Dangling references are
// excluded entirely, matching the readiness rules.
func BlockReason(taskID string, tasks []task.Task, now time.Time) *Blockage {
	byID := make(map[string]*task.Task, len(tasks))
	for i := range tasks {
		byID[tasks[i].ID] = &tasks[i]
	}

	t, ok := byID[taskID]
	if !ok || t.Status == task.StatusCompleted || len(t.Dependencies) == 0 {
		return nil
	}

	var b Blockage
	for _, dep := range t.Dependencies {
		dt, ok := byID[dep]
		if !ok || dt.Status == task.StatusCompleted {
			continue
		}
		b.BlockedBy = append(b.BlockedBy, dep)
		detail := BlockingTask{
			TaskID:    dt.ID,
			TaskTitle: dt.Title,
			Status:    dt.Status,
		}
		if dt.EstimateMins > 0 {
			eta := now.Add(time.Duration(dt.EstimateMins) * time.Minute)
			detail.EstimatedCompletion = &eta
		}
		b.Details = append(b.Details, detail)
	}

	if len(b.BlockedBy) == 0 {
		return nil
	}
	return &b
}
