// Package snapshot loads flat task collections from JSON for the graph
// engine. It is deliberately tolerant: the engine's contract is a
// well-typed in-memory slice, so the loader absorbs shape noise here and
// logs what it skips.
package snapshot

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/joshharrison/depweave/internal/task"
)

// Loader parses task snapshot files.
type Loader struct {
	Log zerolog.Logger
}

// NewLoader returns a Loader that reports skipped records to log.
func NewLoader(log zerolog.Logger) *Loader {
	return &Loader{Log: log}
}

// Load reads and parses a snapshot file.
func (l *Loader) Load(path string) ([]task.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return l.Parse(data)
}

// Parse decodes a snapshot from JSON. Both a top-level array and a
// {"tasks": [...]} wrapper are accepted. Records without an id are skipped
// with a warning, as is any record reusing an id already seen — the engine
// treats duplicate ids as a caller error, so they must not get that far.
// Unknown status values pass through untouched; the engine only gives
// special meaning to completed and blocked.
func (l *Loader) Parse(data []byte) ([]task.Task, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse snapshot: invalid JSON")
	}

	root := gjson.ParseBytes(data)
	list := root
	if !root.IsArray() {
		list = root.Get("tasks")
		if !list.IsArray() {
			return nil, fmt.Errorf("parse snapshot: expected an array or a tasks field")
		}
	}

	var tasks []task.Task
	seen := make(map[string]bool)
	list.ForEach(func(_, item gjson.Result) bool {
		id := item.Get("id").String()
		if id == "" {
			l.Log.Warn().Str("record", item.Raw).Msg("skipping task without id")
			return true
		}
		if seen[id] {
			l.Log.Warn().Str("id", id).Msg("skipping duplicate task id")
			return true
		}
		seen[id] = true

		t := task.Task{
			ID:           id,
			Title:        item.Get("title").String(),
			Status:       task.Status(item.Get("status").String()),
			Priority:     int(item.Get("priority").Int()),
			EstimateMins: int(item.Get("estimatedDuration").Int()),
		}
		if !t.Status.Valid() {
			l.Log.Warn().Str("id", id).Str("status", string(t.Status)).Msg("unknown task status")
		}
		item.Get("dependencies").ForEach(func(_, dep gjson.Result) bool {
			t.Dependencies = append(t.Dependencies, dep.String())
			return true
		})

		tasks = append(tasks, t)
		return true
	})

	return tasks, nil
}
