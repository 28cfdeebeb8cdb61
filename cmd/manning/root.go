package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "manning",
		Short:         "Manning table generator",
		Long:          "Builds hierarchical manning-table reports from a master roster and a structural position mapping.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newCleanCmd())
	cmd.AddCommand(newBuildCmd())
	cmd.AddCommand(newServeCmd())
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		code := exitCode(err)
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(code)
	}
}
