package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/finboard/finboard/catalog"
	"github.com/finboard/finboard/config"
	"github.com/finboard/finboard/engine"
	"github.com/finboard/finboard/journal"
	"github.com/finboard/finboard/quote"
	"github.com/finboard/finboard/quote/yahoo"
	"github.com/finboard/finboard/render"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the dashboard refresh loop",
	Long: `Run the refresh loop until interrupted: fetch every catalog group,
render its table, sleep for the refresh interval, repeat.

Example:
  finboard run --config finboard.yaml`,
	RunE: runRun,
}

var runConfigPath string

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "f", "", "path to config file (YAML), defaults apply when omitted")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(runConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)

	cat, err := resolveCatalog(cfg)
	if err != nil {
		return err
	}

	j, err := openJournal(cfg.Journal)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	fetcher := quote.NewFetcher(yahoo.New(), quote.NewCloseCache(), cfg.FetchTimeout, logrus.StandardLogger())
	eng, err := engine.New(cat, fetcher, render.NewTable(os.Stdout), j, engine.Options{
		Interval:  cfg.RefreshInterval,
		BatchSize: cfg.BatchSize,
	}, logrus.StandardLogger())
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return eng.Run(ctx)
}

func resolveCatalog(cfg *config.Config) (catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadFromFile(cfg.CatalogPath)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

func openJournal(jc config.JournalConfig) (journal.Journal, error) {
	switch jc.Type {
	case "", "none":
		return journal.Nop{}, nil
	case "csv":
		return journal.NewCSV(jc.Path)
	case "sqlite":
		return journal.NewSQLite(jc.Path)
	default:
		return nil, fmt.Errorf("unknown journal type %q", jc.Type)
	}
}
