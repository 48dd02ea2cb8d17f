// File: pkg/combo/merge.go
package combo

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Input is the content of one source file.
type Input struct {
	Name  string
	Lines []string
}

// MergeOptions configures a file-level merge.
type MergeOptions struct {
	Inputs           []string `validate:"min=1,dive,required"`
	Output           string   `validate:"required"`
	RemoveDuplicates bool
}

// Merge concatenates the combos of all inputs in order. Only trimmed lines
// containing a colon count as combos; other non-empty lines are skipped.
// With removeDuplicates the distinct lines are returned sorted, otherwise every
// combo is returned in input order.
func Merge(inputs []Input, removeDuplicates bool) ([]string, MergeStats) {
	stats := MergeStats{Operation: OpMerge, FilesTotal: len(inputs), FilesRead: len(inputs)}
	m := newMerger(removeDuplicates)
	for _, in := range inputs {
		m.add(in.Lines, &stats)
	}
	out := m.result(&stats)
	return out, stats
}

type merger struct {
	removeDuplicates bool
	seen             map[string]struct{}
	lines            []string
}

func newMerger(removeDuplicates bool) *merger {
	return &merger{
		removeDuplicates: removeDuplicates,
		seen:             make(map[string]struct{}),
	}
}

func (m *merger) add(lines []string, stats *MergeStats) {
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if !strings.Contains(line, ":") {
			stats.Skipped++
			continue
		}
		stats.TotalCombos++

		if m.removeDuplicates {
			if _, dup := m.seen[line]; dup {
				stats.Duplicates++
				continue
			}
			m.seen[line] = struct{}{}
		}
		m.lines = append(m.lines, line)
	}
}

func (m *merger) result(stats *MergeStats) []string {
	// Unique is only known when duplicates were tracked.
	if m.removeDuplicates {
		sort.Strings(m.lines)
		stats.Unique = len(m.lines)
	}
	stats.Written = len(m.lines)
	return m.lines
}

// MergeFiles reads every input file, merges their combos and writes the result
// to opts.Output. Unreadable inputs are logged, recorded in the stats and
// skipped; failing to write the output aborts the merge.
func (p *Processor) MergeFiles(ctx context.Context, opts MergeOptions) (MergeStats, error) {
	if err := p.validate(OpMerge, opts); err != nil {
		return MergeStats{Operation: OpMerge}, err
	}
	logger := p.logger.With(zap.String("operation", OpMerge))
	logger.Info("Starting merge",
		zap.Int("inputCount", len(opts.Inputs)),
		zap.Bool("removeDuplicates", opts.RemoveDuplicates))

	stats := MergeStats{Operation: OpMerge, FilesTotal: len(opts.Inputs)}
	m := newMerger(opts.RemoveDuplicates)

	for i, path := range opts.Inputs {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		lines, err := ReadLines(path)
		if err != nil {
			logger.Warn("Failed to read input file, skipping", zap.String("file", path), zap.Error(err))
			stats.Failures = append(stats.Failures, FileFailure{Path: path, Err: err, Reason: err.Error()})
			p.reporter.Checkpoint(Event{Operation: OpMerge, Stage: StageFileSkipped, Name: path, Index: i + 1, Total: len(opts.Inputs)})
			continue
		}
		before := stats.TotalCombos
		m.add(lines, &stats)
		stats.FilesRead++
		logger.Debug("Merged input file",
			zap.String("file", path),
			zap.Int("lineCount", len(lines)),
			zap.Int("comboCount", stats.TotalCombos-before))
		p.reporter.Checkpoint(Event{Operation: OpMerge, Stage: StageFileRead, Name: path, Index: i + 1, Total: len(opts.Inputs), Count: stats.TotalCombos - before})
	}

	out := m.result(&stats)
	if err := WriteLines(opts.Output, out); err != nil {
		logger.Error("Failed to write merged output", zap.String("file", opts.Output), zap.Error(err))
		return stats, fmt.Errorf("failed to write merged output: %w", err)
	}
	stats.Output = absPath(opts.Output)

	logger.Info("Merge completed",
		zap.String("outputFile", stats.Output),
		zap.Int("filesRead", stats.FilesRead),
		zap.Int("totalCombos", stats.TotalCombos),
		zap.Int("duplicates", stats.Duplicates),
		zap.Int("written", stats.Written))
	p.reporter.Checkpoint(Event{Operation: OpMerge, Stage: StageDone, Name: stats.Output, Count: stats.Written})
	return stats, nil
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
