package cmd

import (
	"fmt"
	"time"

	"combokit/pkg/combo"
	"combokit/pkg/config"
	"combokit/pkg/logging"
	"combokit/pkg/report"
	"combokit/pkg/version"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath    string
	debug         bool
	logFile       string
	progress      bool
	reportPath    string
	yes           bool
	exclude       []string
	maxFileSizeKB int
}

// app is what a subcommand needs once configuration and logging are set up.
type app struct {
	opts   *rootOptions
	cfg    *config.Config
	logger *zap.Logger
	runID  string
}

// NewRootCmd builds the combokit command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	a := &app{opts: opts, logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "combokit",
		Short: "combokit merges, splits, sorts and deduplicates email:password combolists",
		Long: `combokit processes line-oriented email:password combolists: merge several files
while removing duplicates, split a file into fixed-size chunks, sort entries into
per-domain files, or remove duplicate lines.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file (default: ./combokit.yaml)")
	flags.BoolVar(&opts.debug, "debug", false, "enable verbose development logging")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")
	flags.BoolVar(&opts.progress, "progress", false, "print a line per processed file, chunk or domain")
	flags.StringVar(&opts.reportPath, "report", "", "write the run statistics as YAML to this path")
	flags.BoolVarP(&opts.yes, "yes", "y", false, "do not ask for confirmation")
	flags.StringSliceVar(&opts.exclude, "exclude", nil, "gitignore-style pattern of input files to skip (repeatable)")
	flags.IntVar(&opts.maxFileSizeKB, "max-file-size-kb", 0, "skip input files larger than this (0 = no limit)")

	cmd.AddCommand(
		newMergeCmd(a),
		newSplitCmd(a),
		newSortCmd(a),
		newDedupeCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads configuration, applies persistent flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.opts.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = a.opts.debug
	}
	if flags.Changed("exclude") {
		cfg.Exclude = a.opts.exclude
	}
	if flags.Changed("max-file-size-kb") {
		cfg.MaxFileSizeKB = a.opts.maxFileSizeKB
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	a.runID = uuid.NewString()
	logger, err := logging.Setup(logging.Options{
		Debug:      cfg.Debug,
		AppName:    version.AppName,
		AppVersion: version.Get().Version,
		RunID:      a.runID,
		OutputPath: a.opts.logFile,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger.With(zap.String("command", cmd.Name()))
	a.logger.Debug("Configuration loaded",
		zap.String("outputDir", cfg.OutputDir),
		zap.Bool("removeDuplicates", cfg.RemoveDuplicates),
		zap.Strings("exclude", cfg.Exclude))
	return nil
}

// processor builds a combo.Processor reporting to the log and, with --progress, to out.
func (a *app) processor(cmd *cobra.Command) *combo.Processor {
	reporters := combo.Reporters{combo.LogReporter(a.logger)}
	if a.opts.progress {
		reporters = append(reporters, combo.TextReporter(cmd.OutOrStdout()))
	}
	return combo.NewProcessor(a.logger, reporters)
}

// writeReport writes stats to the --report path when one was given.
func (a *app) writeReport(stats any) error {
	if a.opts.reportPath == "" {
		return nil
	}
	doc := report.Document{
		Tool:        version.AppName,
		Version:     version.Get().Version,
		RunID:       a.runID,
		GeneratedAt: time.Now().UTC(),
		Stats:       stats,
	}
	if err := report.Write(a.opts.reportPath, doc); err != nil {
		a.logger.Error("Failed to write report", zap.String("path", a.opts.reportPath), zap.Error(err))
		return err
	}
	a.logger.Debug("Wrote report", zap.String("path", a.opts.reportPath))
	return nil
}
