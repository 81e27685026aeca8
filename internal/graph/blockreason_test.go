package graph

import (
	"testing"
	"time"

	"github.com/joshharrison/depweave/internal/task"
)

func TestBlockReason_NotBlocked(t *testing.T) {
	now := time.Now()
	tasks := []task.Task{
		{ID: "done", Status: task.StatusCompleted},
		{ID: "free", Status: task.StatusPending},
		{ID: "cleared", Status: task.StatusPending, Dependencies: []string{"done"}},
	}

	for _, id := range []string{"done", "free", "cleared", "unknown"} {
		if b := BlockReason(id, tasks, now); b != nil {
			t.Errorf("expected nil blockage for %s, got %+v", id, b)
		}
	}
}

func TestBlockReason_Details(t *testing.T) {
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	tasks := []task.Task{
		{ID: "dep1", Title: "First blocker", Status: task.StatusInProgress, EstimateMins: 90},
		{ID: "dep2", Title: "Second blocker", Status: task.StatusPending},
		{ID: "t", Status: task.StatusPending, Dependencies: []string{"dep1", "dep2"}},
	}

	b := BlockReason("t", tasks, now)
	if b == nil {
		t.Fatal("expected blockage")
	}
	if len(b.BlockedBy) != 2 || b.BlockedBy[0] != "dep1" || b.BlockedBy[1] != "dep2" {
		t.Errorf("expected blockedBy=[dep1 dep2], got %v", b.BlockedBy)
	}

	d1 := b.Details[0]
	if d1.TaskID != "dep1" || d1.TaskTitle != "First blocker" || d1.Status != task.StatusInProgress {
		t.Errorf("unexpected detail: %+v", d1)
	}
	if d1.EstimatedCompletion == nil {
		t.Fatal("expected projected completion for estimated blocker")
	}
	want := now.Add(90 * time.Minute)
	if !d1.EstimatedCompletion.Equal(want) {
		t.Errorf("expected ETA %v, got %v", want, *d1.EstimatedCompletion)
	}

	if b.Details[1].EstimatedCompletion != nil {
		t.Error("blocker without estimate must not get a projection")
	}
}

func TestBlockReason_DanglingExcluded(t *testing.T) {
	now := time.Now()
	tasks := []task.Task{
		{ID: "real", Title: "Real blocker", Status: task.StatusPending},
		{ID: "t", Status: task.StatusPending, Dependencies: []string{"ghost", "real"}},
	}

	b := BlockReason("t", tasks, now)
	if b == nil {
		t.Fatal("expected blockage from the real dependency")
	}
	if len(b.BlockedBy) != 1 || b.BlockedBy[0] != "real" {
		t.Errorf("dangling id must not appear, got %v", b.BlockedBy)
	}
	if len(b.Details) != 1 {
		t.Errorf("dangling id must be excluded from details, got %+v", b.Details)
	}
}
