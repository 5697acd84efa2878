package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avdva/split/internal/demo"
)

// NewListCommand creates the command, which prints the built-in scenarios without running them.
func NewListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, sc := range demo.Scenarios() {
				if _, err := fmt.Fprintf(w, "%s: %s %s %s = %s\n", sc.Name, sc.X, sc.Op.Symbol(), sc.Y, sc.Expected); err != nil {
					return err
				}
			}
			opts.logger.Debug("listed scenarios", "count", len(demo.Scenarios()))
			return nil
		},
	}
}
