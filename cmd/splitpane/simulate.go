package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"splitpane/internal/simulate"
)

var (
	simulateJSON   bool
	simulateExpect string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate SCRIPT",
	Short: "Replay layout operations without a terminal",
	Long: `Apply a YAML script of layout operations and print the panel sizes
after each step.

A script holds a layout (inline, or "layout: file.yaml") and a list of steps:

  steps:
    - {before: sidebar, after: editor, delta: -25}   # pointer drag
    - {handle: divider-1, kind: keyboard, delta: 10}
    - {key: left, handle: divider-0}
    - {enter: divider-0}
    - collapse: sidebar
    - expand: sidebar
    - {resize_panel: editor, size: 40}

With --expect, the run is checked against results saved earlier with --json
and the command fails if any step differs.

Examples:
  splitpane simulate steps.yaml
  splitpane simulate steps.yaml --json > steps.golden.jsonl
  splitpane simulate steps.yaml --expect steps.golden.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().BoolVar(&simulateJSON, "json", false, "print one JSON object per step")
	simulateCmd.Flags().StringVar(&simulateExpect, "expect", "", "compare the results with a file written by --json")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	logger, closer, err := openLogger("simulate")
	if err != nil {
		return err
	}
	defer closer.Close()

	script, err := simulate.Load(args[0])
	if err != nil {
		return err
	}

	obs, shutdown, err := newObserver(ctx, logger)
	if err != nil {
		return err
	}
	defer shutdown()

	// Steps up to a failing one are still printed.
	ids, results, runErr := simulate.Run(ctx, script, obs)
	out := cmd.OutOrStdout()
	if simulateJSON {
		err = simulate.WriteJSON(out, results)
	} else {
		err = simulate.WriteTable(out, ids, results)
	}
	if runErr != nil {
		return runErr
	}
	if err != nil {
		return err
	}
	if simulateExpect != "" {
		return checkExpected(cmd, simulateExpect, results)
	}
	return nil
}

// checkExpected compares results with the saved results in path.
func checkExpected(cmd *cobra.Command, path string, results []simulate.Result) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("expect: %w", err)
	}
	defer f.Close()
	want, err := simulate.ReadJSON(f)
	if err != nil {
		return fmt.Errorf("expect %s: %w", path, err)
	}
	diffs := simulate.Compare(want, results)
	if len(diffs) == 0 {
		return nil
	}
	for _, d := range diffs {
		fmt.Fprintln(cmd.ErrOrStderr(), d)
	}
	return fmt.Errorf("%d difference(s) from %s, first: %s", len(diffs), path, diffs[0])
}
