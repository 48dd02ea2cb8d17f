package combo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestReporters_FanOut(t *testing.T) {
	var first, second []Event
	r := Reporters{
		ReporterFunc(func(e Event) { first = append(first, e) }),
		NopReporter{},
		ReporterFunc(func(e Event) { second = append(second, e) }),
	}

	e := Event{Operation: OpMerge, Stage: StageFileRead, Name: "a.txt", Index: 1, Total: 2, Count: 3}
	r.Checkpoint(e)

	assert.Equal(t, []Event{e}, first)
	assert.Equal(t, []Event{e}, second)
}

func TestTextReporter(t *testing.T) {
	var buf bytes.Buffer
	r := TextReporter(&buf)

	r.Checkpoint(Event{Operation: OpMerge, Stage: StageFileRead, Name: "a.txt", Index: 1, Total: 2, Count: 10})
	r.Checkpoint(Event{Operation: OpMerge, Stage: StageFileSkipped, Name: "b.txt", Index: 2, Total: 2})
	r.Checkpoint(Event{Operation: OpSplit, Stage: StageChunkWritten, Name: "combo_1.txt", Index: 1, Total: 1, Count: 5})
	r.Checkpoint(Event{Operation: OpSort, Stage: StageDomainRejected, Name: "???", Index: 2, Total: 2, Count: 1})
	r.Checkpoint(Event{Operation: OpSort, Stage: "unknown"})
	r.Checkpoint(Event{Operation: OpDedupe, Stage: StageDone, Name: "/out.txt"})

	assert.Equal(t, "[1/2] read a.txt (10 combos)\n"+
		"[2/2] skipped b.txt\n"+
		"[1/1] created combo_1.txt (5 lines)\n"+
		"[2/2] rejected domain \"???\" (1 combos)\n"+
		"dedupe finished: /out.txt\n", buf.String())
}

func TestLogReporter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := LogReporter(zap.New(core))

	r.Checkpoint(Event{Operation: OpSort, Stage: StageDomainWritten, Name: "x.com.txt", Index: 1, Total: 1, Count: 4})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.DebugLevel, entry.Level)
	fields := entry.ContextMap()
	assert.Equal(t, "sort", fields["operation"])
	assert.Equal(t, "domain_written", fields["stage"])
	assert.Equal(t, int64(4), fields["count"])
}

func TestLogReporter_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		LogReporter(nil).Checkpoint(Event{Stage: StageDone})
	})
}
