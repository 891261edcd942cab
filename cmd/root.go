package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func rootCmd() *cobra.Command {
	command := &cobra.Command{
		Use:           "diffjson",
		Short:         "diffjson compares JSON and YAML documents structurally",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	command.AddCommand(compareCmd())
	command.AddCommand(statsCmd())
	command.AddCommand(versionCmd())

	return command
}

func Execute() {
	if err := rootCmd().Execute(); err != nil {
		if !errors.Is(err, errExitFailure) {
			_, _ = fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
