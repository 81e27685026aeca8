package cpm

// Result holds the complete critical path analysis.
type Result struct {
	Tasks         map[string]*TaskSchedule `json:"tasks"`
	CriticalPath  []string                 `json:"criticalPath,omitempty"` // ordered task ids on the critical path
	TotalDuration int                      `json:"totalDuration"`          // minutes
	Waves         []Wave                   `json:"waves,omitempty"`        // parallelizable groups
	TopoOrder     []string                 `json:"topoOrder,omitempty"`
}

// TaskSchedule holds the scheduling info for a single task.
type TaskSchedule struct {
	TaskID     string `json:"taskId"`
	ES         int    `json:"es"` // earliest start
	EF         int    `json:"ef"` // earliest finish
	LS         int    `json:"ls"` // latest start
	LF         int    `json:"lf"` // latest finish
	Slack      int    `json:"slack"`
	IsCritical bool   `json:"isCritical"`
	Wave       int    `json:"wave"` // which parallel wave this belongs to
}

// Wave represents a group of tasks whose prerequisites allow them to start
// in the same time slot.
type Wave struct {
	Index      int      `json:"index"`
	TaskIDs    []string `json:"taskIds"`
	IsCritical bool     `json:"isCritical"` // true if the wave contains critical path tasks
}
