package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aurelab/mgsetup/internal/messages"
)

var getwd = os.Getwd

// newRootCmd builds the root command. A bare invocation runs the full setup
// pipeline; subcommands expose the explicit and diagnostic forms.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, installFlags{})
		},
	}

	cmd.AddCommand(newInstallCmd())
	cmd.AddCommand(newDoctorCmd())

	return cmd
}
