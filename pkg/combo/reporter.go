// File: pkg/combo/reporter.go
package combo

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Stage identifies the checkpoint an Event is emitted at.
type Stage string

const (
	StageFileRead       Stage = "file_read"
	StageFileSkipped    Stage = "file_skipped"
	StageChunkWritten   Stage = "chunk_written"
	StageDomainWritten  Stage = "domain_written"
	StageDomainRejected Stage = "domain_rejected"
	StageDone           Stage = "done"
)

// Event describes progress at a natural checkpoint of an operation.
type Event struct {
	Operation string
	Stage     Stage
	Name      string // File, chunk or domain the event is about.
	Index     int    // 1-based position when the total is known, else 0.
	Total     int
	Count     int // Combos or lines involved.
}

// Reporter receives progress events. Implementations must not block for long;
// they run on the calling goroutine.
type Reporter interface {
	Checkpoint(Event)
}

// NopReporter discards every event.
type NopReporter struct{}

func (NopReporter) Checkpoint(Event) {}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Event)

func (f ReporterFunc) Checkpoint(e Event) { f(e) }

// Reporters fans events out to several reporters in order.
type Reporters []Reporter

func (rs Reporters) Checkpoint(e Event) {
	for _, r := range rs {
		r.Checkpoint(e)
	}
}

type logReporter struct {
	logger *zap.Logger
}

// LogReporter returns a Reporter that logs every event at debug level.
func LogReporter(logger *zap.Logger) Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logReporter{logger: logger}
}

func (r logReporter) Checkpoint(e Event) {
	r.logger.Debug("Checkpoint",
		zap.String("operation", e.Operation),
		zap.String("stage", string(e.Stage)),
		zap.String("name", e.Name),
		zap.Int("index", e.Index),
		zap.Int("total", e.Total),
		zap.Int("count", e.Count))
}

type textReporter struct {
	w io.Writer
}

// TextReporter returns a Reporter that prints one human readable line per event.
func TextReporter(w io.Writer) Reporter {
	return textReporter{w: w}
}

func (r textReporter) Checkpoint(e Event) {
	var line string
	switch e.Stage {
	case StageFileRead:
		line = fmt.Sprintf("[%d/%d] read %s (%d combos)", e.Index, e.Total, e.Name, e.Count)
	case StageFileSkipped:
		line = fmt.Sprintf("[%d/%d] skipped %s", e.Index, e.Total, e.Name)
	case StageChunkWritten:
		line = fmt.Sprintf("[%d/%d] created %s (%d lines)", e.Index, e.Total, e.Name, e.Count)
	case StageDomainWritten:
		line = fmt.Sprintf("[%d/%d] created %s (%d combos)", e.Index, e.Total, e.Name, e.Count)
	case StageDomainRejected:
		line = fmt.Sprintf("[%d/%d] rejected domain %q (%d combos)", e.Index, e.Total, e.Name, e.Count)
	case StageDone:
		line = fmt.Sprintf("%s finished: %s", e.Operation, e.Name)
	default:
		return
	}
	_, _ = fmt.Fprintln(r.w, line)
}
