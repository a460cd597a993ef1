package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"growth-projector/domain"
	"growth-projector/input"
	"growth-projector/logger"
	"growth-projector/report"
	"growth-projector/service"
)

type projectOptions struct {
	raw      input.RawInput
	file     string
	schedule bool
	decimals int
	verbose  bool
}

// Execute runs the command line interface.
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}

// NewRootCommand builds the command tree. The root command runs a projection,
// prompting for every input not given by flag or scenario file.
func NewRootCommand() *cobra.Command {
	opts := &projectOptions{}

	cmd := &cobra.Command{
		Use:   "growth-projector",
		Short: "Future value of an investment with periodic contributions",
		Long: `growth-projector computes the future value of a principal under compound
interest, plus the future value of a fixed contribution deposited at the end
of every compounding period.

Inputs not given as flags are asked for interactively.

Examples:
  growth-projector
  growth-projector --principal 1000 --rate 5 --compounds monthly --years 10 --contribution 100
  growth-projector --file plan.yaml --schedule
  growth-projector serve`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.raw.Principal, "principal", "", "Initial amount invested")
	flags.StringVar(&opts.raw.AnnualRate, "rate", "", "Annual interest rate as a whole-number percentage (5 means 5%)")
	flags.StringVar(&opts.raw.CompoundsPerYear, "compounds", "", "Compounding periods per year, or a name such as monthly")
	flags.StringVar(&opts.raw.Years, "years", "", "Investment horizon in years")
	flags.StringVar(&opts.raw.MonthlyContribution, "contribution", "", "Contribution deposited at the end of each period")
	flags.StringVarP(&opts.file, "file", "f", "", "Read the inputs from a YAML or TOML scenario file")
	flags.BoolVar(&opts.schedule, "schedule", false, "Print the year-by-year balance")
	flags.IntVar(&opts.decimals, "decimals", report.DefaultDecimals, "Decimal places for amounts (-1 for full precision)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	cmd.MarkFlagsMutuallyExclusive("file", "principal")
	cmd.MarkFlagsMutuallyExclusive("file", "rate")
	cmd.MarkFlagsMutuallyExclusive("file", "compounds")
	cmd.MarkFlagsMutuallyExclusive("file", "years")
	cmd.MarkFlagsMutuallyExclusive("file", "contribution")

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}

func runProject(cmd *cobra.Command, opts *projectOptions) error {
	if opts.decimals < -1 || opts.decimals > report.MaxDecimals {
		return fmt.Errorf("--decimals must be between -1 and %d, got %d", report.MaxDecimals, opts.decimals)
	}

	log := cliLogger(cmd.ErrOrStderr(), opts.verbose)
	out := cmd.OutOrStdout()

	in, err := readInput(cmd, opts)
	if err != nil {
		return err
	}

	if err := report.WriteInputs(out, in); err != nil {
		return err
	}

	if opts.schedule {
		schedule, err := service.BuildSchedule(in)
		if err != nil {
			return err
		}
		if err := report.WriteResult(out, schedule.Result, opts.decimals); err != nil {
			return err
		}
		log.Debug("schedule built", "entries", len(schedule.Entries))
		return report.WriteSchedule(out, schedule, opts.decimals)
	}

	result, err := service.Project(in)
	if err != nil {
		return err
	}
	log.Debug("projection calculated", "total_amount", result.TotalAmount)

	return report.WriteResult(out, result, opts.decimals)
}

func readInput(cmd *cobra.Command, opts *projectOptions) (domain.ProjectionInput, error) {
	if opts.file != "" {
		in, err := input.LoadScenario(opts.file)
		if err != nil {
			return domain.ProjectionInput{}, fmt.Errorf("scenario %s: %w", opts.file, err)
		}
		return in, nil
	}

	raw, err := input.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()).Fill(opts.raw)
	if err != nil {
		return domain.ProjectionInput{}, err
	}
	return raw.Parse()
}

// cliLogger writes to stderr so stdout carries only the report.
func cliLogger(w io.Writer, verbose bool) *slog.Logger {
	level := logger.LevelWarning
	if verbose {
		level = logger.LevelDebug
	}

	log, _, err := logger.New(context.Background(), logger.Options{
		Level:  level,
		Format: logger.FormatText,
		Output: w,
	})
	if err != nil {
		return slog.Default()
	}
	return log
}
