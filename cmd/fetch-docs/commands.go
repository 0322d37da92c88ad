package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vertextoedge/docfetch/internal/adapter/dirlock"
	"github.com/vertextoedge/docfetch/internal/adapter/filesystem"
	"github.com/vertextoedge/docfetch/internal/adapter/httpfetch"
	"github.com/vertextoedge/docfetch/internal/adapter/sqlite"
	"github.com/vertextoedge/docfetch/internal/config"
	"github.com/vertextoedge/docfetch/internal/domain"
	"github.com/vertextoedge/docfetch/internal/logger"
	"github.com/vertextoedge/docfetch/internal/port"
	"github.com/vertextoedge/docfetch/internal/service/fetcher"
)

// App holds what the commands operate on
type App struct {
	Entries []domain.DownloadEntry
	Stdout  io.Writer
	Stderr  io.Writer

	configPath string
}

// RootCommand builds the command tree. Running the root command performs a fetch.
func (a *App) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "fetch-docs",
		Short:         "Download the reference documentation pages into the datasets directory",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE:          a.runFetch,
	}
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to optional YAML configuration file")

	root.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Download every page (default command)",
		Args:  cobra.NoArgs,
		RunE:  a.runFetch,
	})

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print the compiled-in page table",
		Args:  cobra.NoArgs,
		RunE:  a.runList,
	})

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent runs from the history database",
		Args:  cobra.NoArgs,
		RunE:  a.runHistory,
	}
	historyCmd.Flags().Int("limit", 5, "Number of runs to show")
	root.AddCommand(historyCmd)

	return root
}

func (a *App) setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	zapLogger, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, zapLogger, nil
}

func (a *App) runFetch(cmd *cobra.Command, _ []string) error {
	cfg, zapLogger, err := a.setup()
	if err != nil {
		return err
	}
	defer zapLogger.Sync()

	zapLogger.Debug("starting fetch-docs",
		zap.String("version", version),
		zap.String("config", a.configPath),
		zap.String("output_dir", cfg.Output.Dir))

	var history port.HistoryRepository
	if cfg.History.Enabled() {
		store, err := sqlite.Open(cfg.History.Path)
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer store.Close()
		history = store
	}

	client := httpfetch.NewClientWithConfig(&httpfetch.ClientConfig{
		UserAgent: cfg.Fetch.UserAgent,
		Timeout:   cfg.Fetch.GetTimeout(),
	})

	f := fetcher.New(
		&fetcher.Config{
			Progress:    a.Stdout,
			MinInterval: cfg.Fetch.GetMinInterval(),
		},
		client,
		filesystem.NewManager(cfg.Output.Dir),
		dirlock.New(cfg.Output.Dir),
		history,
		zapLogger,
	)

	_, err = f.Run(cmd.Context(), a.Entries)
	return err
}

func (a *App) runList(_ *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(a.Stdout, 0, 4, 2, ' ', 0)
	for _, e := range a.Entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Filename, e.URL)
	}
	return w.Flush()
}

func (a *App) runHistory(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	cfg, zapLogger, err := a.setup()
	if err != nil {
		return err
	}
	defer zapLogger.Sync()

	if !cfg.History.Enabled() {
		return domain.ErrHistoryDisabled
	}

	store, err := sqlite.Open(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer store.Close()

	runs, err := store.ListRuns(limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(a.Stdout, "No runs recorded.")
		return nil
	}

	for _, run := range runs {
		status := "ok"
		switch {
		case run.FinishedAt == nil:
			status = "unfinished"
		case run.Error != "":
			status = "failed: " + run.Error
		}
		fmt.Fprintf(a.Stdout, "%s  %s  saved=%d  %s\n",
			run.StartedAt.Format(time.RFC3339), run.ID, run.Saved, status)

		fetches, err := store.ListFetches(run.ID)
		if err != nil {
			return fmt.Errorf("failed to list fetches: %w", err)
		}
		for _, rec := range fetches {
			if rec.Succeeded() {
				fmt.Fprintf(a.Stdout, "    %-30s %6d bytes  %s\n", rec.Filename, rec.Bytes, rec.Title)
			} else {
				fmt.Fprintf(a.Stdout, "    %-30s error: %s\n", rec.Filename, rec.Error)
			}
		}
	}
	return nil
}
