package cmd

import (
	"fmt"

	"combokit/pkg/combo"
	"combokit/pkg/inputs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMergeCmd(a *app) *cobra.Command {
	var (
		output           string
		removeDuplicates bool
	)

	cmd := &cobra.Command{
		Use:   "merge <file|dir>...",
		Short: "Merge several combolists into one file",
		Long: `Merge concatenates the email:password lines of every input file. Directories are
searched recursively for *.txt files. With --remove-duplicates (the default) the
output holds each combo once, sorted; otherwise every combo is kept in input order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("output") {
				output = outputPath(a.cfg.OutputDir, a.cfg.Merge.Output)
			}
			if !cmd.Flags().Changed("remove-duplicates") {
				removeDuplicates = a.cfg.RemoveDuplicates
			}

			collected, err := inputs.Resolve(args, inputs.Options{
				Exclude:       a.cfg.Exclude,
				MaxFileSizeKB: a.cfg.MaxFileSizeKB,
				Verbose:       a.cfg.Debug,
			}, a.logger)
			if err != nil {
				return fmt.Errorf("failed to collect input files: %w", err)
			}

			if len(collected.Binary) > 0 {
				a.logger.Warn("Detected binary files. These files are not included in the merged output.",
					zap.Int("binaryFileCount", len(collected.Binary)),
					zap.Strings("binaryFiles", collected.Binary))

				ok, err := a.confirm(cmd, fmt.Sprintf(
					"Detected %d binary files. Do you want to continue and exclude these files? (y/n): ", len(collected.Binary)))
				if err != nil {
					return fmt.Errorf("failed to read user input: %w", err)
				}
				if !ok {
					a.logger.Info("User chose to abort the merge due to detected binary files.")
					return nil
				}
			}

			stats, err := a.processor(cmd).MergeFiles(cmd.Context(), combo.MergeOptions{
				Inputs:           mergeInputs(collected),
				Output:           output,
				RemoveDuplicates: removeDuplicates,
			})
			if err != nil {
				return err
			}
			if failed := stats.Err(); failed != nil {
				a.logger.Warn("Some input files could not be read", zap.Int("failedFiles", len(stats.Failures)), zap.Error(failed))
			}
			stats.RunID = a.runID

			printMergeSummary(cmd.OutOrStdout(), stats, removeDuplicates)
			return a.writeReport(stats)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "merged output file (default: <output_dir>/combined_combos.txt)")
	cmd.Flags().BoolVarP(&removeDuplicates, "remove-duplicates", "d", true, "keep each combo only once")
	return cmd
}

// mergeInputs lists the readable files followed by the missing paths, so the
// merge records missing paths as failed reads.
func mergeInputs(c inputs.Collected) []string {
	paths := make([]string, 0, len(c.Files)+len(c.Missing))
	paths = append(paths, c.Files...)
	return append(paths, c.Missing...)
}
