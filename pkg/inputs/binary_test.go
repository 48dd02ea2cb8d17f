package inputs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooksBinary(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{name: "empty", data: nil, want: false},
		{name: "combo text", data: []byte("a@x.com:pw\r\nb@y.com:pw\n"), want: false},
		{name: "utf8 text", data: []byte("müller@münchen.de:größe\n"), want: false},
		{name: "nul byte", data: []byte("a@x.com\x00:pw"), want: true},
		{name: "control characters", data: bytes.Repeat([]byte{0x01, 0x02, 'a'}, 20), want: true},
		{name: "utf8 bom", data: []byte("\xef\xbb\xbfa@x.com:pw\n"), want: false},
		{name: "utf16le bom", data: utf16LE("a@x.com:1\r\nb@y.com:2\r\n"), want: false},
		{name: "utf16be bom", data: []byte("\xfe\xff\x00a\x00:\x001"), want: false},
		{name: "utf16le bom cut mid rune", data: utf16LE("a@x.com:1")[:7], want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, looksBinary(tc.data))
		})
	}
}

// utf16LE encodes ASCII text as UTF-16LE behind a byte order mark.
func utf16LE(text string) []byte {
	out := []byte{0xff, 0xfe}
	for i := 0; i < len(text); i++ {
		out = append(out, text[i], 0x00)
	}
	return out
}

func TestIsBinaryFile(t *testing.T) {
	dir := t.TempDir()
	text := filepath.Join(dir, "text.txt")
	bin := filepath.Join(dir, "bin.txt")
	require.NoError(t, os.WriteFile(text, bytes.Repeat([]byte("a@x.com:pw\n"), 100), 0o644))
	require.NoError(t, os.WriteFile(bin, []byte{0x7f, 'E', 'L', 'F', 0x00, 0x01}, 0o644))

	isBinary, err := IsBinaryFile(text)
	require.NoError(t, err)
	assert.False(t, isBinary)

	isBinary, err = IsBinaryFile(bin)
	require.NoError(t, err)
	assert.True(t, isBinary)

	wide := filepath.Join(dir, "wide.txt")
	require.NoError(t, os.WriteFile(wide, utf16LE(strings.Repeat("a@x.com:pw\r\n", 100)), 0o644))
	isBinary, err = IsBinaryFile(wide)
	require.NoError(t, err)
	assert.False(t, isBinary, "UTF-16 text is not binary")

	_, err = IsBinaryFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
