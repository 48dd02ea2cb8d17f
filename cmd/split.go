package cmd

import (
	"combokit/pkg/combo"
	"combokit/pkg/inputs"

	"github.com/spf13/cobra"
)

func newSplitCmd(a *app) *cobra.Command {
	var (
		outputDir     string
		linesPerChunk int
		prefix        string
	)

	cmd := &cobra.Command{
		Use:   "split <file>",
		Short: "Split a combolist into files of a fixed number of lines",
		Long: `Split drops blank lines and writes the rest into consecutive files named
<prefix>_1.txt, <prefix>_2.txt, ... holding at most --lines lines each.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("output-dir") {
				outputDir = a.cfg.OutputDir
			}
			if !cmd.Flags().Changed("lines") {
				linesPerChunk = a.cfg.Split.LinesPerChunk
			}
			if !cmd.Flags().Changed("prefix") {
				prefix = a.cfg.Split.Prefix
			}

			stats, err := a.processor(cmd).SplitFile(cmd.Context(), combo.SplitOptions{
				Input:         inputs.CleanPath(args[0]),
				OutputDir:     outputDir,
				LinesPerChunk: linesPerChunk,
				Prefix:        prefix,
			})
			if err != nil {
				return err
			}
			stats.RunID = a.runID

			printSplitSummary(cmd.OutOrStdout(), stats)
			return a.writeReport(stats)
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory for the chunk files (default: output_dir from config)")
	cmd.Flags().IntVarP(&linesPerChunk, "lines", "n", 1000, "lines per output file")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "combo", "output file name prefix")
	return cmd
}
