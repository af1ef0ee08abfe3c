package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"splitpane/internal/config"
	"splitpane/internal/layout"
	"splitpane/internal/logging"
	"splitpane/internal/trace"
)

var (
	configPath string
	logFile    string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "splitpane",
	Short: "Resizable split panes for the terminal",
	Long: `splitpane lays out a group of panels side by side or stacked, with
dividers you can drag with the mouse or move from the keyboard.

Panels keep to their min and max sizes, collapsible panels snap shut and
remember their size, and the total always stays at 100%.

Without a subcommand, splitpane opens the split view (same as "splitpane run").`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runRun,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "layout config file (YAML); the built-in layout is used when empty")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig returns the config named by --config, or the built-in layout.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

// openLogger opens the --log-file logger for component.
func openLogger(component string) (*slog.Logger, io.Closer, error) {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return nil, nil, err
	}
	return logging.Open(logFile, component, level)
}

// newObserver wires logging and tracing, plus any extra observers, for group
// operations. The returned func flushes pending spans.
func newObserver(ctx context.Context, logger *slog.Logger, extra ...layout.Observer) (layout.Observer, func(), error) {
	tp, err := trace.NewProvider(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("tracing: %w", err)
	}
	if tp.Exporting() {
		logger.Info("exporting traces", "endpoint", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	}
	shutdown := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			logger.Warn("trace shutdown failed", "error", err)
		}
	}
	obs := layout.NewMultiObserver(append([]layout.Observer{
		logging.NewObserver(logger),
		trace.NewObserver(tp.Tracer()),
	}, extra...)...)
	return obs, shutdown, nil
}
