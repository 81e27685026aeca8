package task

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusBlocked    Status = "blocked"
	StatusCancelled  Status = "cancelled"
)

// transitions is the legal status-change table. completed is terminal.
var transitions = map[Status][]Status{
	StatusPending:    {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusBlocked, StatusCancelled},
	StatusBlocked:    {StatusInProgress, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {StatusPending},
}

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether moving a task from one status to another is
// legal. The graph engine never changes statuses itself; this is an
// informational helper for callers that do.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Task is a single work item from the task store. The engine treats it as
// read-only input; all derived state lives on graph nodes.
type Task struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Status       Status   `json:"status"`
	Priority     int      `json:"priority,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
	EstimateMins int      `json:"estimatedDuration,omitempty"` // minutes
}
