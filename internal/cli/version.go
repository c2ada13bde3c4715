package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bounded/pkg/bounded"
)

const modulePath = "github.com/mesh-intelligence/bounded"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the boundctl version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "boundctl v%s\nmodule: %s\n", bounded.Version, modulePath)
			return nil
		},
	}
}
