package cmd

import (
	"combokit/pkg/combo"
	"combokit/pkg/inputs"

	"github.com/spf13/cobra"
)

func newSortCmd(a *app) *cobra.Command {
	var (
		outputDir        string
		removeDuplicates bool
		prefix           string
	)

	cmd := &cobra.Command{
		Use:   "sort <file>",
		Short: "Sort a combolist into one file per email domain",
		Long: `Sort writes every email:password line whose email contains '@' into a file
named after its domain, e.g. gmail.com.txt. Lines without a usable email are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("output-dir") {
				outputDir = a.cfg.OutputDir
			}
			if !cmd.Flags().Changed("remove-duplicates") {
				removeDuplicates = a.cfg.RemoveDuplicates
			}
			if !cmd.Flags().Changed("prefix") {
				prefix = a.cfg.Sort.Prefix
			}

			stats, err := a.processor(cmd).SortFile(cmd.Context(), combo.SortOptions{
				Input:            inputs.CleanPath(args[0]),
				OutputDir:        outputDir,
				RemoveDuplicates: removeDuplicates,
				Prefix:           prefix,
			})
			if err != nil {
				return err
			}
			stats.RunID = a.runID

			printSortSummary(cmd.OutOrStdout(), stats, removeDuplicates)
			return a.writeReport(stats)
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for the domain files (default: output_dir from config)")
	cmd.Flags().BoolVarP(&removeDuplicates, "remove-duplicates", "d", true, "drop combos already seen")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "prepend <prefix>_ to every domain file name")
	return cmd
}
