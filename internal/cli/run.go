package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/advent/internal/config"
	"github.com/roach88/advent/internal/runner"
	"github.com/roach88/advent/internal/solution"
	"github.com/roach88/advent/internal/store"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	ConfigPath string
	Inputs     string
	Example    bool
	Real       bool
	Strategy   string
	Database   string

	// Clock and IDs override timing and run IDs (for testing).
	// If nil, the runner uses the system clock and UUIDv7 IDs.
	Clock runner.Clock
	IDs   runner.IDGenerator
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return newRunCommand(&RunOptions{RootOptions: rootOpts})
}

func newRunCommand(opts *RunOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [solution...]",
		Short: "Run solutions and verify their answers",
		Long: `Run registered solutions in order, printing each answer with its
elapsed time, then the total time for the run.

Every answer is checked against the known result for the selected fixture
mode. A mismatch or a missing fixture stops the run immediately.

Solutions may be named as day1part2, 1.2 or 1/2. With no arguments every
registered solution runs.

Exit codes:
  0 - All answers verified (or had no known result)
  1 - An answer did not match
  2 - Command error (missing fixture, invalid config, etc.)

Examples:
  advent run
  advent run --real
  advent run 2.2 --strategy all_pairs
  advent run --db advent.db --format json`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolutions(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", config.DefaultPath, "path to config file")
	cmd.Flags().StringVar(&opts.Inputs, "inputs", "", "fixture directory (overrides config)")
	cmd.Flags().BoolVar(&opts.Example, "example", false, "use example fixtures")
	cmd.Flags().BoolVar(&opts.Real, "real", false, "use real puzzle fixtures")
	cmd.Flags().StringVar(&opts.Strategy, "strategy", "", "day 2 matching strategy (adjacent|all_pairs)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "record run history in this SQLite database")
	cmd.MarkFlagsMutuallyExclusive("example", "real")

	return cmd
}

// resolveConfig layers command-line flags over the config file.
func resolveConfig(opts *RunOptions, cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("inputs") {
		cfg.Inputs = opts.Inputs
	}
	if opts.Example {
		cfg.Mode = "example"
	}
	if opts.Real {
		cfg.Mode = "real"
	}
	if flags.Changed("strategy") {
		cfg.Day2.Strategy = opts.Strategy
	}
	if flags.Changed("db") {
		cfg.Database = opts.Database
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runSolutions(opts *RunOptions, names []string, cmd *cobra.Command) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cfg, err := resolveConfig(opts, cmd)
	if err != nil {
		return commandError(formatter, ErrCodeConfig, "invalid configuration", err)
	}
	mode, err := cfg.ModeValue()
	if err != nil {
		return commandError(formatter, ErrCodeConfig, "invalid configuration", err)
	}
	solverOpts, err := cfg.SolverOptions()
	if err != nil {
		return commandError(formatter, ErrCodeConfig, "invalid configuration", err)
	}
	logger.Debug("configuration resolved", "inputs", cfg.Inputs, "mode", cfg.Mode, "strategy", cfg.Day2.Strategy, "database", cfg.Database)
	formatter.VerboseLog("Reading %s fixtures from %s", cfg.Mode, cfg.Inputs)

	solutions, err := solution.Select(names...)
	if err != nil {
		return commandError(formatter, ErrCodeGeneric, "invalid solution", err)
	}

	r := &runner.Runner{
		Solutions: solutions,
		Inputs:    cfg.Inputs,
		Mode:      mode,
		Options:   solverOpts,
		Clock:     opts.Clock,
		IDs:       opts.IDs,
		Logger:    logger,
	}
	if opts.Format != "json" {
		r.Out = cmd.OutOrStdout()
	} else {
		r.Out = io.Discard
	}

	if cfg.Database != "" {
		logger.Debug("opening database", "path", cfg.Database)
		st, err := store.Open(cfg.Database)
		if err != nil {
			return commandError(formatter, ErrCodeStore, "failed to open database", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				logger.Error("error closing database", "error", closeErr)
			}
		}()
		r.Recorder = st
	}

	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(parentCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := r.Run(ctx)
	if err != nil {
		exit, code, message := classifyRunError(err)
		if opts.Format == "json" {
			_ = formatter.Error(code, err.Error(), summary)
		}
		return WrapExitError(exit, message, err)
	}

	if opts.Format == "json" {
		return formatter.Success(summary)
	}
	return nil
}

// commandError reports err in JSON mode and returns it as a command error.
func commandError(f *OutputFormatter, code, message string, err error) error {
	if f.Format == "json" {
		_ = f.Error(code, message+": "+err.Error(), nil)
	}
	return WrapExitError(ExitCommandError, message, err)
}
