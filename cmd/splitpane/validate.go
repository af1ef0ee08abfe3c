package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"splitpane/internal/config"
	"splitpane/internal/layout"
)

var validateCmd = &cobra.Command{
	Use:   "validate [FILE...]",
	Short: "Check layout config files",
	Long: `Check that layout config files parse and describe a valid group:
unique ids and orders, sane min/max bounds, and default sizes that fit.

Without arguments, the file given by --config is checked.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		if configPath == "" {
			return errors.New("nothing to validate: pass a file or --config")
		}
		paths = []string{configPath}
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, path := range paths {
		cfg, err := config.Load(path)
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %v\n", err)
			continue
		}
		dir, _ := layout.ParseDirection(cfg.Direction)
		fmt.Fprintf(out, "ok   %s (group %q, %d panels, %s)\n", path, cfg.Group, len(cfg.Panels), dir)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d config files invalid", failed, len(paths))
	}
	return nil
}
