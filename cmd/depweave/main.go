package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/joshharrison/depweave/internal/cpm"
	"github.com/joshharrison/depweave/internal/graph"
	"github.com/joshharrison/depweave/internal/order"
	"github.com/joshharrison/depweave/internal/reporter"
	"github.com/joshharrison/depweave/internal/snapshot"
	"github.com/joshharrison/depweave/internal/task"
	"github.com/joshharrison/depweave/internal/ui"
)

var (
	flagFile    string
	flagJSON    bool
	flagVerbose bool
	flagDeps    string
	flagTotal   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "depweave",
		Short: "Analyze prerequisite relationships in a task snapshot",
		Long: `Depweave reads a flat JSON collection of tasks and answers dependency
questions over it: which tasks are ready, what blocks the rest, whether a
proposed dependency edit is safe, and in what order the work should be
attempted.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "tasks.json", "Task snapshot JSON file")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(readyCmd())
	rootCmd.AddCommand(blockedCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(orderCmd())
	rootCmd.AddCommand(pathCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// loadGraph is shared logic for all subcommands: read the snapshot and build
// the graph over it.
func loadGraph() ([]task.Task, *graph.Graph, error) {
	loader := snapshot.NewLoader(newLogger())
	tasks, err := loader.Load(flagFile)
	if err != nil {
		return nil, nil, err
	}
	return tasks, graph.Build(tasks), nil
}

func outputJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Build the dependency graph and print a full analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := loadGraph()
			if err != nil {
				return err
			}

			// Cyclic graphs still get the structural summary, just no schedule
			result, err := cpm.Analyze(g)
			if err != nil && !errors.Is(err, graph.ErrCyclic) {
				return err
			}

			if flagJSON {
				return outputJSON(struct {
					Graph *graph.Graph `json:"graph"`
					CPM   *cpm.Result  `json:"cpm,omitempty"`
				}{g, result})
			}

			reporter.New(g, result).PrintSummary(os.Stdout)
			return nil
		},
	}
}

func readyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ready",
		Short: "List tasks that are ready to start",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := loadGraph()
			if err != nil {
				return err
			}

			if flagJSON {
				return outputJSON(g.ReadyItems)
			}

			if len(g.ReadyItems) == 0 {
				fmt.Println("no tasks are ready")
				return nil
			}
			for _, id := range g.ReadyItems {
				n := g.Nodes[id]
				fmt.Printf("%s %s %s\n", ui.StatusIcon(string(n.Status)), ui.Bold(id), n.Title)
			}
			return nil
		},
	}
}

func blockedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blocked [task-id]",
		Short: "Explain what blocks a task (or list all blocked tasks)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, g, err := loadGraph()
			if err != nil {
				return err
			}

			now := time.Now()
			if len(args) == 1 {
				b := graph.BlockReason(args[0], tasks, now)
				if flagJSON {
					return outputJSON(b)
				}
				reporter.PrintBlockage(os.Stdout, args[0], b)
				return nil
			}

			if flagJSON {
				out := make(map[string]*graph.Blockage, len(g.BlockedItems))
				for _, id := range g.BlockedItems {
					out[id] = graph.BlockReason(id, tasks, now)
				}
				return outputJSON(out)
			}
			for _, id := range g.BlockedItems {
				reporter.PrintBlockage(os.Stdout, id, graph.BlockReason(id, tasks, now))
			}
			return nil
		},
	}
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <task-id>",
		Short: "Check whether a proposed dependency list is safe to commit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, _, err := loadGraph()
			if err != nil {
				return err
			}

			var deps []string
			if flagDeps != "" {
				for _, d := range strings.Split(flagDeps, ",") {
					if d = strings.TrimSpace(d); d != "" {
						deps = append(deps, d)
					}
				}
			}

			res := graph.Validate(args[0], deps, tasks)
			if flagJSON {
				return outputJSON(res)
			}
			reporter.PrintValidation(os.Stdout, args[0], res)
			if !res.IsValid {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flagDeps, "deps", "", "Proposed dependency ids, comma-separated")

	return cmd
}

func orderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Print the suggested execution order",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := loadGraph()
			if err != nil {
				return err
			}

			ids := order.Suggested(g)
			if flagTotal {
				ids = order.SuggestedTotal(g)
			}

			if flagJSON {
				return outputJSON(ids)
			}
			for i, id := range ids {
				n := g.Nodes[id]
				fmt.Printf("%2d. %s %s %s\n", i+1, ui.StatusIcon(string(n.Status)), ui.Bold(id), n.Title)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flagTotal, "all", false, "Append tasks unreachable from any root")

	return cmd
}

func pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the critical path and CPM schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := loadGraph()
			if err != nil {
				return err
			}

			chain := order.CriticalPath(g)
			result, cpmErr := cpm.Analyze(g)
			if cpmErr != nil && !errors.Is(cpmErr, graph.ErrCyclic) {
				return cpmErr
			}

			if flagJSON {
				return outputJSON(struct {
					CriticalPath []string    `json:"criticalPath"`
					CPM          *cpm.Result `json:"cpm,omitempty"`
				}{chain, result})
			}

			fmt.Printf("%s %s (%d tasks)\n", ui.Bold("critical path:"),
				ui.BoldYellow(strings.Join(chain, " -> ")), len(chain))
			if cpmErr != nil {
				fmt.Printf("%s %v\n", ui.Red("schedule unavailable:"), cpmErr)
				return nil
			}
			fmt.Printf("%s %s\n", ui.Bold("total duration:"), formatDuration(result.TotalDuration))
			for _, wave := range result.Waves {
				fmt.Printf("  wave %d: %s\n", wave.Index+1, strings.Join(wave.TaskIDs, ", "))
			}
			return nil
		},
	}
}

func formatDuration(mins int) string {
	return (time.Duration(mins) * time.Minute).String()
}
