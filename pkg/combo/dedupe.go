// File: pkg/combo/dedupe.go
package combo

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// DedupeOptions configures a file-level deduplication.
type DedupeOptions struct {
	Input  string `validate:"required"`
	Output string `validate:"required"`
}

// Deduplicate trims lines, drops blank ones and keeps the first occurrence of
// every distinct line. No combo format check is applied.
func Deduplicate(lines []string) ([]string, DedupeStats) {
	stats := DedupeStats{Operation: OpDedupe}
	seen := make(map[string]struct{}, len(lines))
	unique := make([]string, 0, len(lines))

	for _, line := range nonEmpty(lines) {
		stats.TotalLines++
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		unique = append(unique, line)
	}

	stats.Unique = len(unique)
	stats.Duplicates = stats.TotalLines - stats.Unique
	return unique, stats
}

// DedupeFile removes duplicate lines from opts.Input and writes the unique
// lines to opts.Output.
func (p *Processor) DedupeFile(ctx context.Context, opts DedupeOptions) (DedupeStats, error) {
	if err := p.validate(OpDedupe, opts); err != nil {
		return DedupeStats{Operation: OpDedupe}, err
	}
	logger := p.logger.With(zap.String("operation", OpDedupe))

	lines, err := ReadLines(opts.Input)
	if err != nil {
		logger.Error("Failed to read input file", zap.String("file", opts.Input), zap.Error(err))
		return DedupeStats{Operation: OpDedupe}, fmt.Errorf("failed to read dedupe input: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return DedupeStats{Operation: OpDedupe}, err
	}

	unique, stats := Deduplicate(lines)
	if err := WriteLines(opts.Output, unique); err != nil {
		logger.Error("Failed to write deduplicated output", zap.String("file", opts.Output), zap.Error(err))
		return stats, fmt.Errorf("failed to write deduplicated output: %w", err)
	}
	stats.Output = absPath(opts.Output)

	logger.Info("Dedupe completed",
		zap.String("outputFile", stats.Output),
		zap.Int("totalLines", stats.TotalLines),
		zap.Int("unique", stats.Unique),
		zap.Int("duplicates", stats.Duplicates))
	p.reporter.Checkpoint(Event{Operation: OpDedupe, Stage: StageDone, Name: stats.Output, Count: stats.Unique})
	return stats, nil
}
