package cmd

import (
	"fmt"

	"bennypowers.dev/swatchnorm/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(app.Stdout, version.String())
		},
	}
}
