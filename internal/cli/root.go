// Package cli implements the matchctl command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/soccerstatsqc/league-dashboard/internal/app"
	"github.com/soccerstatsqc/league-dashboard/internal/config"
	"github.com/soccerstatsqc/league-dashboard/internal/platform/logging"
	"github.com/soccerstatsqc/league-dashboard/internal/usecase"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	store      string
	sqlitePath string
	verbose    bool
}

// serviceFactory opens the match service for one command run.
type serviceFactory func(ctx context.Context, cfg config.Config, logger *logging.Logger) (*usecase.MatchService, func() error, error)

type runner struct {
	flags      globalFlags
	loadConfig func() (config.Config, error)
	newService serviceFactory
}

// NewRootCommand builds the matchctl command tree. Store settings come from
// the same environment as the API server and can be overridden by flags.
func NewRootCommand() *cobra.Command {
	return newRootCommand(config.Load, app.NewMatchService)
}

func newRootCommand(loadConfig func() (config.Config, error), newService serviceFactory) *cobra.Command {
	r := &runner{loadConfig: loadConfig, newService: newService}

	root := &cobra.Command{
		Use:           "matchctl",
		Short:         "Inspect league results and match timelines",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&r.flags.store, "store", "", "match store driver (memory, postgres, sqlite); defaults to STORE_DRIVER")
	root.PersistentFlags().StringVar(&r.flags.sqlitePath, "sqlite", "", "path to a sqlite league file; implies --store=sqlite")
	root.PersistentFlags().BoolVarP(&r.flags.verbose, "verbose", "v", false, "log dropped entries and store activity")

	root.AddCommand(
		newResultsCommand(r),
		newTeamsCommand(r),
		newTimelineCommand(r),
		newMatchCommand(r),
		newExportCommand(r),
	)
	return root
}

// Execute runs matchctl and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withService loads config, applies the flag overrides and hands fn a ready
// service. The store is closed when fn returns.
func (r *runner) withService(cmd *cobra.Command, fn func(ctx context.Context, svc *usecase.MatchService, cfg config.Config) error) error {
	cfg, err := r.loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if r.flags.sqlitePath != "" {
		cfg.StoreDriver = config.StoreSQLite
		cfg.SQLitePath = r.flags.sqlitePath
	}
	if store := strings.ToLower(strings.TrimSpace(r.flags.store)); store != "" {
		cfg.StoreDriver = store
	}

	logger := r.logger(cmd.ErrOrStderr(), cfg)
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc, cleanup, err := r.newService(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open match store: %w", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.Warn("close match store failed", "error", err)
		}
	}()

	return fn(ctx, svc, cfg)
}

func (r *runner) logger(w io.Writer, cfg config.Config) *logging.Logger {
	level := logging.LevelWarn
	if r.flags.verbose {
		level = logging.LevelDebug
	} else if cfg.LogLevel > level {
		level = cfg.LogLevel
	}
	return logging.NewConsole(w, level)
}
