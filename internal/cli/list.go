package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/advent/internal/input"
	"github.com/roach88/advent/internal/solution"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Inputs string
}

// ListEntry describes one registered solution.
type ListEntry struct {
	ID      string               `json:"id"`
	Name    string               `json:"name"`
	Example string               `json:"example_input"`
	Real    string               `json:"real_input"`
	Expect  solution.Expectation `json:"expect"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered solutions and their fixtures",
		Long: `List every registered solution in dispatch order with the fixture
paths it reads in example and real mode.

Example:
  advent list
  advent list --inputs /data/aoc --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listSolutions(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Inputs, "inputs", input.DefaultDir, "fixture directory")

	return cmd
}

func listEntries(dir string) []ListEntry {
	all := solution.All()
	entries := make([]ListEntry, 0, len(all))
	for _, s := range all {
		day, part := s.Input()
		entries = append(entries, ListEntry{
			ID:      s.ID.String(),
			Name:    s.Name(),
			Example: input.Path(dir, day, part, input.Example),
			Real:    input.Path(dir, day, part, input.Real),
			Expect:  s.Expect,
		})
	}
	return entries
}

func listSolutions(opts *ListOptions, cmd *cobra.Command) error {
	entries := listEntries(opts.Inputs)

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return formatter.Success(entries)
	}

	w := cmd.OutOrStdout()
	for _, e := range entries {
		fmt.Fprintf(w, "%-10s %-13s %s\n", e.ID, e.Name, e.Example)
		if opts.Verbose {
			fmt.Fprintf(w, "%-10s %-13s %s\n", "", "", e.Real)
		}
	}
	return nil
}
