package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diffjson/diffjson/internal/diff"
	"github.com/diffjson/diffjson/internal/document"
)

func statsCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "stats <old> <new>",
		Short: "Print diff engine statistics for a document pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldDoc, err := document.Load(args[0])
			if err != nil {
				return err
			}
			newDoc, err := document.Load(args[1])
			if err != nil {
				return err
			}
			st, err := diff.Stats(oldDoc, newDoc)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), diff.FormatStats(st))
			return nil
		},
	}
	return command
}
