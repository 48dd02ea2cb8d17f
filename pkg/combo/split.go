// File: pkg/combo/split.go
package combo

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Chunk is one output file of a split.
type Chunk struct {
	Name  string
	Lines []string
}

// SplitOptions configures a file-level split.
type SplitOptions struct {
	Input         string `validate:"required"`
	OutputDir     string `validate:"required"`
	LinesPerChunk int    `validate:"gt=0"`
	Prefix        string `validate:"required,excludesall=/\\"`
}

// ChunkName returns the file name of the i-th (1-based) chunk.
func ChunkName(prefix string, i int) string {
	return fmt.Sprintf("%s_%d.txt", prefix, i)
}

// Split drops blank lines and cuts the rest into consecutive chunks of at most
// linesPerChunk lines, named {prefix}_{i}.txt.
func Split(lines []string, linesPerChunk int, prefix string) ([]Chunk, error) {
	if linesPerChunk < 1 {
		return nil, invalidArgument(OpSplit, "lines per chunk must be at least 1, got %d", linesPerChunk)
	}
	if prefix == "" || strings.ContainsAny(prefix, `/\`) {
		return nil, invalidArgument(OpSplit, "invalid chunk prefix %q", prefix)
	}

	filtered := nonEmpty(lines)
	count := (len(filtered) + linesPerChunk - 1) / linesPerChunk
	chunks := make([]Chunk, 0, count)
	for i := 0; i < count; i++ {
		start := i * linesPerChunk
		end := min(start+linesPerChunk, len(filtered))
		chunks = append(chunks, Chunk{
			Name:  ChunkName(prefix, i+1),
			Lines: filtered[start:end],
		})
	}
	return chunks, nil
}

// SplitFile splits opts.Input into chunk files inside opts.OutputDir.
func (p *Processor) SplitFile(ctx context.Context, opts SplitOptions) (SplitStats, error) {
	stats := SplitStats{Operation: OpSplit, LinesPerChunk: opts.LinesPerChunk}
	if err := p.validate(OpSplit, opts); err != nil {
		return stats, err
	}
	logger := p.logger.With(zap.String("operation", OpSplit))

	lines, err := ReadLines(opts.Input)
	if err != nil {
		logger.Error("Failed to read input file", zap.String("file", opts.Input), zap.Error(err))
		return stats, fmt.Errorf("failed to read split input: %w", err)
	}

	chunks, err := Split(lines, opts.LinesPerChunk, opts.Prefix)
	if err != nil {
		return stats, err
	}
	for _, c := range chunks {
		stats.TotalLines += len(c.Lines)
	}
	stats.Chunks = len(chunks)
	logger.Info("Splitting input",
		zap.String("file", opts.Input),
		zap.Int("totalLines", stats.TotalLines),
		zap.Int("chunks", stats.Chunks))

	if err := ensureDirectory(opts.OutputDir); err != nil {
		logger.Error("Failed to create output directory", zap.String("path", opts.OutputDir), zap.Error(err))
		return stats, fmt.Errorf("failed to create output directory: %w", err)
	}

	for i, c := range chunks {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		path := filepath.Join(opts.OutputDir, c.Name)
		if err := WriteLines(path, c.Lines); err != nil {
			logger.Error("Failed to write chunk", zap.String("file", path), zap.Error(err))
			return stats, fmt.Errorf("failed to write chunk %d: %w", i+1, err)
		}
		stats.Files = append(stats.Files, path)
		p.reporter.Checkpoint(Event{Operation: OpSplit, Stage: StageChunkWritten, Name: path, Index: i + 1, Total: len(chunks), Count: len(c.Lines)})
	}

	stats.Output = absPath(opts.OutputDir)
	logger.Info("Split completed", zap.String("outputDir", stats.Output), zap.Int("chunks", stats.Chunks))
	p.reporter.Checkpoint(Event{Operation: OpSplit, Stage: StageDone, Name: stats.Output, Count: stats.Chunks})
	return stats, nil
}
