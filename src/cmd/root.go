package cmd

import (
	"context"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/yashkumarverma/minicron/src/expression"
	"github.com/yashkumarverma/minicron/src/utils"
	"github.com/yashkumarverma/minicron/src/utils/cache"
)

// app carries the per-run state shared by subcommands.
type app struct {
	config  *utils.Config
	logger  *utils.StandardLogger
	store   cache.Store
	parser  *expression.Parser
	catalog *expression.LocalCatalog

	newStore func(context.Context, *utils.Config) (cache.Store, error)
}

func newApp() *app {
	return &app{
		catalog:  expression.NewLocalCatalog(),
		newStore: cache.NewStore,
	}
}

// NewRootCmd builds the minicron command tree around config.
func NewRootCmd(config *utils.Config) *cobra.Command {
	return newRootCmd(config, newApp())
}

func newRootCmd(config *utils.Config, a *app) *cobra.Command {
	var shifted bool

	root := &cobra.Command{
		Use:   "minicron",
		Short: "Expand cron fields and expressions into the values they denote",
		Long: `minicron parses cron fields (minutes, hours, day-of-month, month,
day-of-week, year) into the ascending set of values they denote.

Supported constructs:
  *  */2  0-4,5-10/2,13  SUN,MON,TUE-THU/1  1-6/2,SEP,NOV-DEC`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := *config
			if cmd.Flags().Changed("shifted-dow") {
				cfg.ShiftedDaysOfWeek = shifted
			}
			return a.init(cmd.Context(), &cfg)
		},
	}
	root.PersistentFlags().BoolVar(&shifted, "shifted-dow", config.ShiftedDaysOfWeek,
		"Day of week runs 1-7 instead of 0-6")

	root.AddCommand(newFieldCmd(a), newExprCmd(a), newCatalogCmd(a))
	return root
}

// Execute runs the command tree with the process arguments.
func Execute(ctx context.Context, config *utils.Config) error {
	return NewRootCmd(config).ExecuteContext(ctx)
}

func (a *app) init(ctx context.Context, config *utils.Config) error {
	a.config = config
	a.logger = utils.GetChildLogger(utils.LoggerFromCtx(ctx), map[string]string{
		"run_id": uuid.New().String(),
	})

	store, err := a.newStore(ctx, config)
	if err != nil {
		a.logger.Warnw("Cache unavailable, parsing without it", "scheme", config.CacheURLScheme, "error", err)
		store = nil
	}
	a.store = store
	a.parser = expression.NewParser(config, store, a.logger)
	a.logger.Debugw("Parser ready",
		"shifted_days_of_week", config.ShiftedDaysOfWeek,
		"cache", store != nil,
	)
	return nil
}

// run wraps a subcommand so the store is closed whether or not it fails.
func (a *app) run(fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer a.close()
		return fn(cmd, args)
	}
}

func (a *app) close() {
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil {
		a.logger.Warnw("Failed to close cache", "error", err)
	}
	a.store = nil
}
