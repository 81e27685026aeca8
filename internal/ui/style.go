package ui

import "github.com/fatih/color"

// Sprint color functions for building styled strings.
var (
	Bold       = color.New(color.Bold).SprintFunc()
	Dim        = color.New(color.Faint).SprintFunc()
	Cyan       = color.New(color.FgCyan).SprintFunc()
	Green      = color.New(color.FgGreen).SprintFunc()
	Red        = color.New(color.FgRed).SprintFunc()
	Yellow     = color.New(color.FgYellow).SprintFunc()
	Magenta    = color.New(color.FgMagenta).SprintFunc()
	BoldCyan   = color.New(color.Bold, color.FgCyan).SprintFunc()
	BoldGreen  = color.New(color.Bold, color.FgGreen).SprintFunc()
	BoldRed    = color.New(color.Bold, color.FgRed).SprintFunc()
	BoldWhite  = color.New(color.Bold, color.FgWhite).SprintFunc()
	BoldYellow = color.New(color.Bold, color.FgYellow).SprintFunc()
)

// StatusIcon returns a colored icon for a task status in compact listings.
func StatusIcon(status string) string {
	switch status {
	case "completed":
		return Green("✓")
	case "in_progress":
		return Cyan("●")
	case "blocked":
		return Red("⊘")
	case "cancelled":
		return Dim("⊘")
	case "pending":
		return Dim("◌")
	default:
		return Yellow("?")
	}
}

// ReadyMark returns a colored ready/blocked marker.
func ReadyMark(ready bool) string {
	if ready {
		return BoldGreen("ready")
	}
	return Dim("waiting")
}
