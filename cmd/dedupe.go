package cmd

import (
	"combokit/pkg/combo"
	"combokit/pkg/inputs"

	"github.com/spf13/cobra"
)

func newDedupeCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "dedupe <file>",
		Short: "Remove duplicate lines from a combolist",
		Long: `Dedupe keeps the first occurrence of every non-empty line. Lines are compared
after trimming whitespace; no email:password format check is applied.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("output") {
				output = outputPath(a.cfg.OutputDir, a.cfg.Dedupe.Output)
			}

			stats, err := a.processor(cmd).DedupeFile(cmd.Context(), combo.DedupeOptions{
				Input:  inputs.CleanPath(args[0]),
				Output: output,
			})
			if err != nil {
				return err
			}
			stats.RunID = a.runID

			printDedupeSummary(cmd.OutOrStdout(), stats)
			return a.writeReport(stats)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "deduplicated output file (default: <output_dir>/deduplicated_combos.txt)")
	return cmd
}
