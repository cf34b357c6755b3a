package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cli.out, "sip-forecast %s\n", cli.version)
			return err
		},
	}
}
