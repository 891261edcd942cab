package cmd

import (
	"errors"
	"os"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/spf13/cobra"

	"github.com/diffjson/diffjson/compare"
	"github.com/diffjson/diffjson/internal/report"
)

// errExitFailure signals a completed run that found differences. The
// caller exits nonzero without printing it.
var errExitFailure = errors.New("comparison failed")

func compareCmd() *cobra.Command {
	var (
		ignore    []string
		truncate  int
		verbose   bool
		flat      bool
		ordered   bool
		jsonOut   bool
		colorName string
	)

	command := &cobra.Command{
		Use:   "compare <old> <new>",
		Short: "Compare two documents, or two directories of documents",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := report.ParseColorMode(colorName)
			if err != nil {
				return err
			}
			opts := compare.Options{
				IgnorePaths: gatherIgnorePaths(ignore),
				MaxItems:    truncate,
				Ordered:     ordered,
				Flat:        flat,
				Verbose:     verbose,
				JSON:        jsonOut,
				Color:       mode,
			}
			ok, err := compare.Run(args[0], args[1], opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if !ok {
				return errExitFailure
			}
			return nil
		},
	}

	command.Flags().StringArrayVarP(&ignore, "ignore", "i", nil,
		"accessor path to ignore, e.g. \"['metadata']['timestamp']\"; repeatable, unioned with $DIFFJSON_IGNORE")
	command.Flags().IntVarP(&truncate, "truncate", "t", 100,
		"maximum report entries (0 = unlimited)")
	command.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"print the full report for differing pairs")
	command.Flags().BoolVar(&flat, "flat", false,
		"print one line per change instead of the nested tree")
	command.Flags().BoolVar(&ordered, "ordered", false,
		"treat sequence order as significant")
	command.Flags().BoolVar(&jsonOut, "json", false,
		"emit machine-readable JSON results")
	command.Flags().StringVar(&colorName, "color", "auto",
		"colorize reports: auto, always or never")

	return command
}

// gatherIgnorePaths unions the repeatable flag with the
// whitespace-separated DIFFJSON_IGNORE environment value, deduplicated
// and sorted for deterministic deletion order.
func gatherIgnorePaths(flagged []string) []string {
	set := mapset.NewSet[string]()
	for _, p := range flagged {
		set.Add(p)
	}
	for _, p := range strings.Fields(os.Getenv("DIFFJSON_IGNORE")) {
		set.Add(p)
	}
	paths := set.ToSlice()
	sort.Strings(paths)
	return paths
}
