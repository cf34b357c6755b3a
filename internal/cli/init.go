package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/iwvelando/sip-forecast/internal/config"
	"github.com/iwvelando/sip-forecast/pkg/constants"
	"github.com/spf13/cobra"
)

type InitCmd struct {
	cli   *CLI
	path  string
	force bool
}

func newInitCmd(cli *CLI) *cobra.Command {
	ic := &InitCmd{cli: cli}
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example configuration file",
		Args:  cobra.NoArgs,
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.path, "path", constants.ExampleConfigFile, "where to write the example configuration")
	cmd.Flags().BoolVar(&ic.force, "force", false, "overwrite an existing file")

	return cmd
}

func (ic *InitCmd) run(cmd *cobra.Command, args []string) error {
	if !ic.force {
		if _, err := os.Stat(ic.path); err == nil {
			return fmt.Errorf("%s already exists; use --force to overwrite it", ic.path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to check %s: %w", ic.path, err)
		}
	}

	file, err := os.OpenFile(ic.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", ic.path, err)
	}

	if err := config.ExampleConfiguration().WriteYAML(file); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", ic.path, err)
	}

	_, err = fmt.Fprintf(ic.cli.out, "Wrote example configuration to %s\n", ic.path)
	return err
}
