package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"combokit/pkg/inputs"
	"combokit/pkg/logging"
	"combokit/pkg/version"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type cliEnv struct {
	dir    string
	outDir string
	config string
}

func newCLIEnv(t *testing.T) cliEnv {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() {
		logging.Logger = zap.NewNop()
		zap.ReplaceGlobals(zap.NewNop())
	})

	dir := t.TempDir()
	env := cliEnv{
		dir:    dir,
		outDir: filepath.Join(dir, "results"),
		config: filepath.Join(dir, "combokit.yaml"),
	}
	require.NoError(t, os.WriteFile(env.config, []byte("output_dir: "+env.outDir+"\n"), 0o644))
	return env
}

func (e cliEnv) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(e.dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (e cliEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(append([]string{"--config", e.config, "--log-file", filepath.Join(e.dir, "combokit.log")}, args...))
	err := root.Execute()
	return out.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestMergeCommand(t *testing.T) {
	env := newCLIEnv(t)
	env.write(t, "in/a.txt", "b@y.com:2\na@x.com:1\n")
	env.write(t, "in/b.txt", "a@x.com:1\nc@z.com:3")
	env.write(t, "in/bin.txt", "\x00\x01\x02\x03")
	reportPath := filepath.Join(env.dir, "merge.yaml")

	out, err := env.run(t, "merge", filepath.Join(env.dir, "in"), "--progress", "--report", reportPath)
	require.NoError(t, err)

	merged := filepath.Join(env.outDir, "combined_combos.txt")
	assert.Equal(t, "a@x.com:1\nb@y.com:2\nc@z.com:3", readFile(t, merged))
	assert.Contains(t, out, "MERGE REPORT")
	assert.Contains(t, out, "- Files read: 2")
	assert.Contains(t, out, "- Duplicates removed: 1")
	assert.Contains(t, out, "- Unique combos saved: 3")
	assert.Contains(t, out, "[1/2] read ")
	assert.Contains(t, out, merged)

	doc := readFile(t, reportPath)
	assert.Contains(t, doc, "tool: combokit")
	assert.Contains(t, doc, "operation: merge")
	assert.Contains(t, doc, "unique: 3")
}

func TestMergeCommand_KeepDuplicatesAndMissingInput(t *testing.T) {
	env := newCLIEnv(t)
	a := env.write(t, "a.txt", "a@x.com:1\na@x.com:1")
	output := filepath.Join(env.dir, "merged.txt")

	out, err := env.run(t, "merge", a, filepath.Join(env.dir, "gone.txt"), "-o", output, "--remove-duplicates=false")
	require.NoError(t, err)

	assert.Equal(t, "a@x.com:1\na@x.com:1", readFile(t, output))
	assert.Contains(t, out, "- Combos saved: 2")
	assert.Contains(t, out, "- Failed to read ")
}

func TestMergeCommand_UTF16Input(t *testing.T) {
	env := newCLIEnv(t)
	wide := []byte{0xff, 0xfe}
	for _, c := range []byte("b@y.com:2\r\na@x.com:1\r\n") {
		wide = append(wide, c, 0x00)
	}
	in := env.write(t, "wide.txt", string(wide))
	output := filepath.Join(env.dir, "merged.txt")

	out, err := env.run(t, "merge", in, "-o", output)
	require.NoError(t, err)

	assert.Equal(t, "a@x.com:1\nb@y.com:2", readFile(t, output))
	assert.Contains(t, out, "- Files read: 1")
}

func TestMergeInputs(t *testing.T) {
	files := make([]string, 1, 4)
	files[0] = "a.txt"
	c := inputs.Collected{Files: files, Missing: []string{"gone.txt"}}

	got := mergeInputs(c)
	assert.Equal(t, []string{"a.txt", "gone.txt"}, got)

	got[0] = "changed.txt"
	assert.Equal(t, []string{"a.txt", ""}, files[:2], "collected files are not aliased")
}

func TestSplitCommand(t *testing.T) {
	env := newCLIEnv(t)
	in := env.write(t, "in.txt", "a:1\nb:2\n\nc:3\nd:4\ne:5\n")
	chunks := filepath.Join(env.dir, "chunks")

	out, err := env.run(t, "split", in, "-n", "2", "--output-dir", chunks, "-p", "part")
	require.NoError(t, err)

	assert.Contains(t, out, "Split 5 lines into 3 files of up to 2 lines")
	assert.Equal(t, "a:1\nb:2", readFile(t, filepath.Join(chunks, "part_1.txt")))
	assert.Equal(t, "e:5", readFile(t, filepath.Join(chunks, "part_3.txt")))
}

func TestSplitCommand_ConfigDefaults(t *testing.T) {
	env := newCLIEnv(t)
	in := env.write(t, "in.txt", "a:1\nb:2")

	_, err := env.run(t, "split", in)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(env.outDir, "combo_1.txt"))
}

func TestSplitCommand_Errors(t *testing.T) {
	env := newCLIEnv(t)
	in := env.write(t, "in.txt", "a:1")

	_, err := env.run(t, "split", filepath.Join(env.dir, "missing.txt"))
	assert.Error(t, err)

	_, err = env.run(t, "split", in, "-n", "0")
	assert.Error(t, err)

	_, err = env.run(t, "split")
	assert.Error(t, err)
}

func TestSortCommand(t *testing.T) {
	env := newCLIEnv(t)
	in := env.write(t, "in.txt", "a@x.com:1\nb@y.com:2\na@x.com:1\nbroken line\n")

	out, err := env.run(t, "sort", in, "-p", "sorted")
	require.NoError(t, err)

	assert.Equal(t, "a@x.com:1", readFile(t, filepath.Join(env.outDir, "sorted_x.com.txt")))
	assert.Equal(t, "b@y.com:2", readFile(t, filepath.Join(env.outDir, "sorted_y.com.txt")))
	assert.Contains(t, out, "Valid email:pass combos found: 2")
	assert.Contains(t, out, "Duplicate combos removed: 1")
	assert.Contains(t, out, "Unique domains found: 2")
}

func TestDedupeCommand(t *testing.T) {
	env := newCLIEnv(t)
	in := env.write(t, "in.txt", "b:2\na:1\nb:2\n")
	output := filepath.Join(env.dir, "unique.txt")

	out, err := env.run(t, "dedupe", in, "-o", output)
	require.NoError(t, err)

	assert.Equal(t, "b:2\na:1", readFile(t, output))
	assert.Contains(t, out, "Removed 1 duplicates (2 unique combos saved)")
}

func TestVersionCommand(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version", "--short"})

	require.NoError(t, root.Execute())
	assert.Equal(t, version.Get().Version+"\n", out.String())
}

func TestInvalidConfig(t *testing.T) {
	env := newCLIEnv(t)
	env.config = filepath.Join(env.dir, "nope.yaml")

	_, err := env.run(t, "dedupe", env.write(t, "in.txt", "a:1"))
	assert.Error(t, err)
}

func TestPromptUser(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		wantErr bool
	}{
		{input: "y\n", want: true},
		{input: "YES\n", want: true},
		{input: "n\n", want: false},
		{input: "maybe\n", want: false},
		{input: "y", want: true},
		{input: "", wantErr: true},
	}

	for _, tc := range tests {
		var out bytes.Buffer
		got, err := promptUser(strings.NewReader(tc.input), &out, "continue? ")
		if tc.wantErr {
			assert.ErrorIs(t, err, io.EOF)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
		assert.Equal(t, "continue? ", out.String())
	}
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("results", "merged.txt"), outputPath("results", "merged.txt"))
	assert.Equal(t, "/abs/merged.txt", outputPath("results", "/abs/merged.txt"))
	assert.Equal(t, "other/merged.txt", outputPath("results", "other/merged.txt"))
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  ab  ", center("ab", 6))
	assert.Equal(t, "toolong", center("toolong", 3))
}
