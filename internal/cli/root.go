package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/avdva/split"
	"github.com/avdva/split/internal/demo"
)

// RootOptions holds the flags of the command.
type RootOptions struct {
	Verbose   bool
	Format    string
	Gamma     float64
	Epsilon   float64
	Guard     float64
	Tolerance float64

	logger *slog.Logger
}

// NewRootCommand creates the root command, which runs all built-in checks.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "splitdemo",
		Short:         "Run worked examples of split number arithmetic",
		Long:          "Evaluates worked examples, identities and inverses of the split number algebra, and checks the results against documented values.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.logger = NewLogger(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChecks(cmd, opts)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.Flags().StringVar(&opts.Format, "format", demo.FormatText, "output format (text|json|yaml)")
	cmd.Flags().Float64Var(&opts.Gamma, "gamma", split.DefaultGamma, "weighting exponent for addition")
	cmd.Flags().Float64Var(&opts.Epsilon, "epsilon", split.DefaultClampEpsilon, "alignment clamp margin")
	cmd.Flags().Float64Var(&opts.Guard, "guard", split.DefaultZeroWeightGuard, "zero weight guard for addition")
	cmd.Flags().Float64Var(&opts.Tolerance, "tolerance", demo.DefaultTolerance, "absolute tolerance for alignments")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return newExitError(ExitCommandError, "bad flags: %w", err)
	})

	cmd.AddCommand(NewListCommand(opts))

	return cmd
}

func runChecks(cmd *cobra.Command, opts *RootOptions) error {
	if !demo.ValidFormat(opts.Format) {
		return newExitError(ExitCommandError, "invalid format %q: must be one of %v", opts.Format, demo.Formats)
	}
	params, err := split.NewParams(opts.Epsilon, opts.Guard, opts.Gamma)
	if err != nil {
		return newExitError(ExitCommandError, "bad params: %w", err)
	}
	runner, err := demo.NewRunner(params, opts.Tolerance, opts.logger)
	if err != nil {
		return newExitError(ExitCommandError, "bad tolerance: %w", err)
	}
	report := runner.Run(demo.Scenarios())
	if err := demo.Render(cmd.OutOrStdout(), report, opts.Format); err != nil {
		return newExitError(ExitCommandError, "render failed: %w", err)
	}
	opts.logger.Info("checks finished", "passed", report.Passed, "failed", report.Failed)
	if !report.OK() {
		return newExitError(ExitFailure, "%d of %d checks failed", report.Failed, len(report.Results))
	}
	return nil
}
