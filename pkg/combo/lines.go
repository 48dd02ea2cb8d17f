// File: pkg/combo/lines.go
package combo

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// newTextDecoder honours a UTF-8 or UTF-16 byte order mark, decodes everything
// else as UTF-8 and drops byte sequences that are not valid text.
func newTextDecoder() transform.Transformer {
	return transform.Chain(
		unicode.BOMOverride(unicode.UTF8.NewDecoder()),
		runes.Remove(runes.Predicate(func(r rune) bool { return r == utf8.RuneError })),
	)
}

// DecodeText converts raw file bytes to text and splits it into lines.
// "\r\n" and lone "\r" are treated as line breaks.
func DecodeText(data []byte) ([]string, error) {
	decoded, _, err := transform.Bytes(newTextDecoder(), data)
	if err != nil {
		return nil, err
	}
	if len(decoded) == 0 {
		return nil, nil
	}
	text := strings.ReplaceAll(string(decoded), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n"), nil
}

// ReadLines reads a whole text file into lines.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		kind := KindReadFailure
		if errors.Is(err, fs.ErrNotExist) {
			kind = KindFileNotFound
		}
		return nil, &OpError{Op: "read_lines", Kind: kind, Path: path, Err: err}
	}
	lines, err := DecodeText(data)
	if err != nil {
		return nil, &OpError{Op: "read_lines", Kind: KindReadFailure, Path: path, Err: err}
	}
	return lines, nil
}

// WriteLines writes lines joined by "\n" without a trailing newline, creating
// parent directories as needed. The write is not atomic.
func WriteLines(path string, lines []string) error {
	if err := ensureDirectory(filepath.Dir(path)); err != nil {
		return err
	}

	outFile, err := os.Create(path)
	if err != nil {
		return &OpError{Op: "write_lines", Kind: KindWriteFailure, Path: path, Err: err}
	}

	writer := bufio.NewWriter(outFile)
	for i, line := range lines {
		if i > 0 {
			if err := writer.WriteByte('\n'); err != nil {
				_ = outFile.Close()
				return &OpError{Op: "write_lines", Kind: KindWriteFailure, Path: path, Err: err}
			}
		}
		if _, err := writer.WriteString(line); err != nil {
			_ = outFile.Close()
			return &OpError{Op: "write_lines", Kind: KindWriteFailure, Path: path, Err: err}
		}
	}

	if err := writer.Flush(); err != nil {
		_ = outFile.Close()
		return &OpError{Op: "write_lines", Kind: KindWriteFailure, Path: path, Err: fmt.Errorf("failed to flush output: %w", err)}
	}
	if err := outFile.Close(); err != nil {
		return &OpError{Op: "write_lines", Kind: KindWriteFailure, Path: path, Err: err}
	}
	return nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(path string) error {
	if path == "" || path == "." {
		return nil
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return &OpError{Op: "ensure_directory", Kind: KindWriteFailure, Path: path, Err: err}
	}
	return nil
}
