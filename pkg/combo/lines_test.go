package combo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []string
	}{
		{name: "plain", data: []byte("a:1\nb:2"), want: []string{"a:1", "b:2"}},
		{name: "trailing newline", data: []byte("a:1\nb:2\n"), want: []string{"a:1", "b:2"}},
		{name: "crlf and cr", data: []byte("a:1\r\nb:2\rc:3\r\n"), want: []string{"a:1", "b:2", "c:3"}},
		{name: "utf8 bom", data: []byte("\xef\xbb\xbfa:1\nb:2"), want: []string{"a:1", "b:2"}},
		{name: "utf16 bom", data: []byte("\xff\xfea\x00:\x001\x00"), want: []string{"a:1"}},
		{name: "invalid bytes dropped", data: []byte("a\xff@x.com:p\xfe1"), want: []string{"a@x.com:p1"}},
		{name: "blank lines kept", data: []byte("a:1\n\nb:2"), want: []string{"a:1", "", "b:2"}},
		{name: "empty", data: nil, want: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeText(tc.data)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadLines_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadLines(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = ReadLines(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReadFailure)
}

func TestWriteLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "out.txt")

	require.NoError(t, WriteLines(path, []string{"a:1", "b:2"}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a:1\nb:2", string(data), "no trailing newline")

	require.NoError(t, WriteLines(path, nil))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestWriteLines_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rt.txt")
	lines := []string{"a@x.com:p:w", "ü@münchen.de:ß"}

	require.NoError(t, WriteLines(path, lines))
	got, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, lines, got)
}

func TestWriteLines_Failure(t *testing.T) {
	dir := t.TempDir()
	blocker := writeFile(t, dir, "file", "x")

	err := WriteLines(filepath.Join(blocker, "out.txt"), []string{"a"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWriteFailure)
	assert.True(t, IsKind(err, KindWriteFailure))
}
