package cli

import (
	"fmt"

	"github.com/iwvelando/sip-forecast/internal/config"
	"github.com/iwvelando/sip-forecast/internal/forecast"
	"github.com/iwvelando/sip-forecast/pkg/constants"
	"github.com/iwvelando/sip-forecast/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type RunCmd struct {
	cli        *CLI
	configPath string
}

func newRunCmd(cli *CLI) *cobra.Command {
	rc := &RunCmd{cli: cli}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Project every active scenario in a configuration file",
		Args:  cobra.NoArgs,
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.configPath, "config", constants.DefaultConfigFile, "path to configuration file")

	return cmd
}

func (rc *RunCmd) run(cmd *cobra.Command, args []string) error {
	conf, err := config.LoadConfiguration(rc.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", rc.configPath, err)
	}

	logger, flush, err := rc.cli.newLogger(conf.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer flush()

	outputFormat, err := rc.cli.resolveOutputFormat(conf.Output.Format)
	if err != nil {
		logger.Error(err.Error(),
			zap.String("op", "cli.run"),
		)
		return err
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "cli.run"),
		)
	}

	results, err := forecast.GetForecast(cmd.Context(), logger, *conf)
	if err != nil {
		logger.Error("failed to compute forecast",
			zap.String("op", "cli.run"),
			zap.Error(err),
		)
		return fmt.Errorf("failed to compute forecast: %w", err)
	}

	return output.Write(rc.cli.out, outputFormat, results)
}
