// Package cli wires the sip-forecast commands together.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/iwvelando/sip-forecast/internal/config"
	"github.com/iwvelando/sip-forecast/internal/logging"
	"github.com/iwvelando/sip-forecast/pkg/constants"
	"github.com/iwvelando/sip-forecast/pkg/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// CLI represents the command-line interface
type CLI struct {
	out     io.Writer
	logger  *zap.Logger
	version string
	rootCmd *cobra.Command

	outputFormat string
	logLevel     string
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	// Logger replaces the logger otherwise built from configuration and flags.
	Logger  *zap.Logger
	Version string
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	cli := &CLI{
		out:     opts.Output,
		logger:  opts.Logger,
		version: opts.Version,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

// LoadEnvFile loads environment files (.env in the working directory by
// default) so SIPFORECAST_* overrides can live next to the configuration.
// A missing file is not an error; a malformed one is.
func LoadEnvFile(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load environment file: %w", err)
	}
	return nil
}

// Execute runs the command named by os.Args.
func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// ExecuteContext runs the command named by os.Args with ctx available to
// every command; the run command stops projecting when ctx is cancelled.
func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sip-forecast",
		Short:         "Project SIP and lumpsum investments year by year",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(cli.out)

	cmd.PersistentFlags().StringVar(&cli.outputFormat, "output-format", "", "output format override: pretty, csv, json, yaml")
	cmd.PersistentFlags().StringVar(&cli.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	cmd.AddCommand(newProjectCmd(cli, projectSIP))
	cmd.AddCommand(newProjectCmd(cli, projectLumpsum))
	cmd.AddCommand(newRunCmd(cli))
	cmd.AddCommand(newInitCmd(cli))
	cmd.AddCommand(newVersionCmd(cli))

	return cmd
}

// newLogger returns the injected logger or builds one from conf and the
// --log-level override. The returned func flushes a built logger.
func (cli *CLI) newLogger(conf config.LoggingConfig) (*zap.Logger, func(), error) {
	if cli.logger != nil {
		return cli.logger, func() {}, nil
	}
	logger, err := logging.New(conf, cli.logLevel)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

// resolveOutputFormat applies the --output-format override over the
// configured format, defaulting to pretty.
func (cli *CLI) resolveOutputFormat(configured string) (string, error) {
	outputFormat := configured
	if cli.outputFormat != "" {
		outputFormat = cli.outputFormat
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return "", err
	}
	return outputFormat, nil
}
