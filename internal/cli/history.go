package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/advent/internal/solution"
	"github.com/roach88/advent/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Solution string
	RunID    string
	Limit    int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded run results",
		Long: `Show solver results recorded by 'advent run --db'.

Results are listed oldest run first, in solver order within a run.

Examples:
  advent history --db advent.db
  advent history --db advent.db --solution 1.2
  advent history --db advent.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().StringVar(&opts.Solution, "solution", "", "only show this solution")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "only show this run")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of results (0 = all)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func showHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	// Opening would create an empty database; a typo should be reported instead.
	if _, err := os.Stat(opts.Database); err != nil {
		return commandError(formatter, ErrCodeStore, "database not found", err)
	}

	filter := store.Filter{RunID: opts.RunID, Limit: opts.Limit}
	if opts.Solution != "" {
		id, err := solution.ParseID(opts.Solution)
		if err != nil {
			return commandError(formatter, ErrCodeGeneric, "invalid solution", err)
		}
		filter.Solution = id.String()
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return commandError(formatter, ErrCodeStore, "failed to open database", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := st.ReadResults(ctx, filter)
	if err != nil {
		return commandError(formatter, ErrCodeStore, "failed to read history", err)
	}

	if opts.Format == "json" {
		return formatter.Success(results)
	}

	w := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintln(w, "No results recorded.")
		return nil
	}
	for _, r := range results {
		answer := solution.Answer{Value: r.Answer, Present: r.Present}
		fmt.Fprintf(w, "%s  %-7s  %-9s  %-10s  %-10s  %v\n", r.RunID, r.Mode, r.Solution, answer, r.Verdict, r.Elapsed)
	}
	return nil
}
