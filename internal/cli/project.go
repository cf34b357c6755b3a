package cli

import (
	"fmt"

	"github.com/iwvelando/sip-forecast/internal/config"
	"github.com/iwvelando/sip-forecast/internal/forecast"
	"github.com/iwvelando/sip-forecast/pkg/constants"
	"github.com/iwvelando/sip-forecast/pkg/finance"
	"github.com/iwvelando/sip-forecast/pkg/output"
	"github.com/iwvelando/sip-forecast/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type projectKind struct {
	mode          finance.Mode
	short         string
	amountUsage   string
	defaultAmount float64
}

var (
	projectSIP = projectKind{
		mode:          finance.ModeSIP,
		short:         "Project a fixed monthly investment (SIP)",
		amountUsage:   "monthly investment in rupees",
		defaultAmount: constants.DefaultSIPAmount,
	}
	projectLumpsum = projectKind{
		mode:          finance.ModeLumpsum,
		short:         "Project a one-time investment",
		amountUsage:   "one-time investment in rupees",
		defaultAmount: constants.DefaultLumpsumAmount,
	}
)

type ProjectCmd struct {
	cli    *CLI
	mode   finance.Mode
	name   string
	amount float64
	rate   float64
	years  int
}

func newProjectCmd(cli *CLI, kind projectKind) *cobra.Command {
	pc := &ProjectCmd{cli: cli, mode: kind.mode}
	cmd := &cobra.Command{
		Use:   string(kind.mode),
		Short: kind.short,
		Args:  cobra.NoArgs,
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.name, "name", string(kind.mode), "scenario name shown in the output")
	cmd.Flags().Float64Var(&pc.amount, "amount", kind.defaultAmount, kind.amountUsage)
	cmd.Flags().Float64Var(&pc.rate, "rate", constants.DefaultAnnualReturnRate, "expected annual return in percent")
	cmd.Flags().IntVar(&pc.years, "years", constants.DefaultYears, "time period in years")

	return cmd
}

func (pc *ProjectCmd) run(cmd *cobra.Command, args []string) error {
	logger, flush, err := pc.cli.newLogger(config.LoggingConfig{})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer flush()

	outputFormat, err := pc.cli.resolveOutputFormat("")
	if err != nil {
		return err
	}

	in := finance.ProjectionInput{Amount: pc.amount, AnnualRatePercent: pc.rate, Years: pc.years}
	for _, warning := range validation.ValidateInputRanges(pc.name, pc.mode, in) {
		logger.Warn("Input warning: "+warning,
			zap.String("op", "cli."+string(pc.mode)),
		)
	}

	result, err := forecast.Project(pc.name, pc.mode, in)
	if err != nil {
		logger.Error("failed to compute projection",
			zap.String("op", "cli."+string(pc.mode)),
			zap.Error(err),
		)
		return fmt.Errorf("failed to compute %s projection: %w", pc.mode, err)
	}

	return output.Write(pc.cli.out, outputFormat, []forecast.Forecast{result})
}
