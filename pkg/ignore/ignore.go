// Package ignore matches slash-separated relative paths against
// gitignore-style patterns. It backs the --exclude flag and .comboignore files.
package ignore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// FileName is the per-directory ignore file honoured during input collection.
const FileName = ".comboignore"

// Pattern encapsulates a compiled pattern, a negation flag, and metadata about
// the pattern's origin.
type Pattern struct {
	Regexp  *regexp.Regexp // Compiled regular expression for the pattern.
	Negate  bool           // Indicates if the pattern is a negation (starts with '!').
	DirOnly bool           // Pattern ended with '/' and only matches directories.
	Line    string         // Original pattern line.
	LineNo  int            // Line number in the source (1-based).
	Source  string         // File the pattern came from, empty for command-line patterns.
}

// Matcher represents an ordered collection of ignore patterns. Later patterns
// override earlier ones, so a negation can re-include a path.
type Matcher struct {
	Patterns []*Pattern
	logger   *zap.Logger
}

// New initializes an empty Matcher. A nil logger is replaced by a no-op logger.
func New(logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{logger: logger}
}

// CompileLines compiles pattern lines and appends them to the matcher.
func (m *Matcher) CompileLines(lines ...string) {
	m.compile("", lines)
}

// CompileFile reads an ignore file and appends its patterns. A missing file is not an error.
func (m *Matcher) CompileFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			m.logger.Debug("Ignore file does not exist and will be skipped", zap.String("filePath", path))
			return nil
		}
		m.logger.Error("Failed to read ignore file", zap.String("filePath", path), zap.Error(err))
		return err
	}

	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	m.compile(path, lines)
	m.logger.Debug("Compiled ignore file", zap.String("filePath", path), zap.Int("patternCount", len(m.Patterns)))
	return nil
}

func (m *Matcher) compile(source string, lines []string) {
	for i, line := range lines {
		p := parsePatternLine(line)
		if p == nil {
			continue
		}
		p.LineNo = i + 1
		p.Source = source
		m.Patterns = append(m.Patterns, p)
		m.logger.Debug("Compiled ignore pattern",
			zap.String("pattern", p.Line),
			zap.Bool("negate", p.Negate),
			zap.Bool("dirOnly", p.DirOnly))
	}
}

// Len returns the number of compiled patterns.
func (m *Matcher) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Patterns)
}

// Clone returns a matcher sharing no pattern slice with m.
func (m *Matcher) Clone() *Matcher {
	c := New(m.logger)
	c.Patterns = append(c.Patterns, m.Patterns...)
	return c
}

// MatchesPath reports whether the relative path is ignored.
func (m *Matcher) MatchesPath(path string, isDir bool) bool {
	matches, _ := m.MatchesPathWithPattern(path, isDir)
	return matches
}

// MatchesPathWithPattern reports whether the relative path is ignored and
// returns the last pattern that decided it.
func (m *Matcher) MatchesPathWithPattern(path string, isDir bool) (bool, *Pattern) {
	if m == nil {
		return false, nil
	}
	normalized := strings.TrimSuffix(filepath.ToSlash(path), "/")
	if normalized == "" || normalized == "." {
		return false, nil
	}

	matched := false
	var decided *Pattern
	for _, p := range m.Patterns {
		if !p.matches(normalized, isDir) {
			continue
		}
		matched = !p.Negate
		decided = p
	}
	return matched, decided
}

func (p *Pattern) matches(path string, isDir bool) bool {
	loc := p.Regexp.FindStringSubmatchIndex(path)
	if loc == nil {
		return false
	}
	if !p.DirOnly {
		return true
	}
	// The optional trailing group captured a descendant, so the pattern
	// itself matched a parent directory.
	descendant := len(loc) >= 4 && loc[2] >= 0 && loc[3] > loc[2]
	return isDir || descendant
}

// parsePatternLine turns one ignore line into a Pattern, or nil for blank and comment lines.
func parsePatternLine(line string) *Pattern {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	p := &Pattern{Line: line}
	if strings.HasPrefix(trimmed, "!") {
		p.Negate = true
		trimmed = trimmed[1:]
	} else if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}
	if strings.HasSuffix(trimmed, "/") {
		p.DirOnly = true
		trimmed = strings.TrimRight(trimmed, "/")
	}

	anchored := strings.Contains(trimmed, "/")
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return nil
	}

	expr := globToRegex(trimmed)
	if anchored {
		expr = "^" + expr
	} else {
		expr = "^(?:.*/)?" + expr
	}
	p.Regexp = regexp.MustCompile(expr + "(/.*)?$")
	return p
}

// globToRegex converts '*', '**' and '?' wildcards; everything else is literal.
func globToRegex(glob string) string {
	var b strings.Builder
	rs := []rune(glob)
	for i := 0; i < len(rs); i++ {
		c := rs[i]
		switch c {
		case '*':
			if i+1 < len(rs) && rs[i+1] == '*' {
				i++
				if i+1 < len(rs) && rs[i+1] == '/' {
					i++
					b.WriteString("(?:.*/)?")
				} else {
					b.WriteString(".*")
				}
				continue
			}
			b.WriteString("[^/]*")
		case '?':
			b.WriteString("[^/]")
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	return b.String()
}
