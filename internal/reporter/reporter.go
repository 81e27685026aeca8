// Package reporter renders graph analysis results for terminals.
package reporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/joshharrison/depweave/internal/cpm"
	"github.com/joshharrison/depweave/internal/graph"
	"github.com/joshharrison/depweave/internal/ui"
)

// Reporter renders one graph snapshot's analysis.
type Reporter struct {
	Graph *graph.Graph
	CPM   *cpm.Result // optional; nil when the graph is cyclic
}

// New creates a Reporter.
func New(g *graph.Graph, result *cpm.Result) *Reporter {
	return &Reporter{Graph: g, CPM: result}
}

// PrintSummary writes a terminal-friendly overview of the graph: counts,
// ready and blocked work, cycles, and (when available) the CPM schedule.
func (r *Reporter) PrintSummary(w io.Writer) {
	g := r.Graph

	fmt.Fprintf(w, "%s — %d tasks, %d ready, %d blocked\n\n",
		ui.BoldCyan("Dependency graph"),
		g.TaskCount(), len(g.ReadyItems), len(g.BlockedItems))

	if len(g.Cycles) > 0 {
		fmt.Fprintf(w, "  %s\n", ui.BoldRed(fmt.Sprintf("%d dependency cycle(s) detected", len(g.Cycles))))
		for _, cycle := range g.Cycles {
			fmt.Fprintf(w, "    %s\n", ui.Red(strings.Join(cycle, " -> ")))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "  %s %s\n", ui.Bold("roots: "), strings.Join(g.Roots, ", "))
	fmt.Fprintf(w, "  %s %s\n\n", ui.Bold("leaves:"), strings.Join(g.Leaves, ", "))

	for _, id := range g.Order {
		r.printTask(w, g.Nodes[id])
	}

	if r.CPM != nil {
		fmt.Fprintln(w)
		r.printSchedule(w)
	}
}

func (r *Reporter) printTask(w io.Writer, n *graph.Node) {
	fmt.Fprintf(w, "  %s %s %s %s",
		ui.StatusIcon(string(n.Status)),
		ui.Bold(n.ID),
		n.Title,
		ui.ReadyMark(n.IsReady))
	if len(n.BlockedBy) > 0 {
		fmt.Fprintf(w, " %s", ui.Dim(fmt.Sprintf("(blocked by %s)", strings.Join(n.BlockedBy, ", "))))
	}
	fmt.Fprintln(w)
}

func (r *Reporter) printSchedule(w io.Writer) {
	res := r.CPM
	fmt.Fprintf(w, "  %s %s %s\n",
		ui.Bold("critical path:"),
		ui.BoldYellow(strings.Join(res.CriticalPath, " -> ")),
		ui.Dim(fmt.Sprintf("[%s total]", formatMinutes(res.TotalDuration))))

	for _, wave := range res.Waves {
		marker := ui.Dim("·")
		if wave.IsCritical {
			marker = ui.BoldYellow("*")
		}
		fmt.Fprintf(w, "  %s wave %d: %s\n", marker, wave.Index+1, strings.Join(wave.TaskIDs, ", "))
	}
}

// PrintValidation writes a validation verdict.
func PrintValidation(w io.Writer, taskID string, res graph.ValidationResult) {
	if res.IsValid {
		fmt.Fprintf(w, "%s dependencies for %s are valid\n", ui.BoldGreen("✓"), ui.Bold(taskID))
	} else {
		fmt.Fprintf(w, "%s dependencies for %s were rejected\n", ui.BoldRed("✗"), ui.Bold(taskID))
	}
	for _, e := range res.Errors {
		fmt.Fprintf(w, "  %s %s\n", ui.Red("error:"), e)
	}
	for _, warn := range res.Warnings {
		fmt.Fprintf(w, "  %s %s\n", ui.Yellow("warning:"), warn)
	}
	for _, cycle := range res.CircularDependencies {
		fmt.Fprintf(w, "  %s %s\n", ui.Red("cycle:"), strings.Join(cycle, " -> "))
	}
}

// PrintBlockage writes one task's block explanation, or a ready note when
// nothing blocks it.
func PrintBlockage(w io.Writer, taskID string, b *graph.Blockage) {
	if b == nil {
		fmt.Fprintf(w, "%s %s is not blocked\n", ui.BoldGreen("✓"), ui.Bold(taskID))
		return
	}
	fmt.Fprintf(w, "%s %s is waiting on %d task(s)\n", ui.BoldRed("⊘"), ui.Bold(taskID), len(b.Details))
	for _, d := range b.Details {
		fmt.Fprintf(w, "  %s %s %s", ui.StatusIcon(string(d.Status)), ui.Bold(d.TaskID), d.TaskTitle)
		if d.EstimatedCompletion != nil {
			fmt.Fprintf(w, " %s", ui.Dim(fmt.Sprintf("(est. done %s)", d.EstimatedCompletion.Format(time.Kitchen))))
		}
		fmt.Fprintln(w)
	}
}

func formatMinutes(mins int) string {
	if mins < 60 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dh%02dm", mins/60, mins%60)
}
