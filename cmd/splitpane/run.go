package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"splitpane/internal/config"
	"splitpane/internal/layout"
	"splitpane/internal/metrics"
	"splitpane/internal/ui"
)

var (
	noWatch     bool
	metricsAddr string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the split view",
	Long: `Open the split view in the terminal.

With --config, the file is watched and the layout reloads when it changes.
Content and titles update in place; a change to the panels themselves
rebuilds the group.

Examples:
  # Built-in sidebar/editor/preview layout
  splitpane run

  # Your own layout, logging to a file
  splitpane run --config layout.yaml --log-file splitpane.log

  # Expose operation counts for Prometheus
  splitpane run --metrics-addr 127.0.0.1:9464`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload the config when it changes")
	runCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address at /metrics")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	logger, closer, err := openLogger("ui")
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var extra []layout.Observer
	if metricsAddr != "" {
		m := metrics.NewObserver()
		srv, err := metrics.Serve(metricsAddr, m, logger)
		if err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
		defer srv.Close()
		logger.Info("serving metrics", "addr", srv.Addr())
		extra = append(extra, m)
	}

	obs, shutdown, err := newObserver(ctx, logger, extra...)
	if err != nil {
		return err
	}
	defer shutdown()

	app, err := ui.NewAppModel(cfg,
		ui.WithConfigPath(configPath),
		ui.WithObserver(obs),
		ui.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	if configPath != "" && !noWatch {
		w, err := config.Watch(configPath, func(cfg *config.Config, err error) {
			p.Send(ui.ConfigReloadedMsg{Config: cfg, Err: err})
		})
		if err != nil {
			logger.Warn("config watch disabled", "path", configPath, "error", err)
		} else {
			defer w.Close()
		}
	}

	logger.Info("starting", "group", cfg.Group, "panels", len(cfg.Panels), "direction", cfg.Direction)
	_, err = p.Run()
	return err
}
