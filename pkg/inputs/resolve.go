// Package inputs turns user supplied paths into the ordered list of combolist
// files an operation reads.
package inputs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"combokit/pkg/ignore"

	"go.uber.org/zap"
)

// TextExtension is the extension collected when walking directories.
const TextExtension = ".txt"

// Options controls how paths are resolved.
type Options struct {
	Exclude       []string // gitignore-style patterns matched relative to each walked root.
	MaxFileSizeKB int      // Files larger than this are skipped; 0 disables the limit.
	Verbose       bool     // Log every skipped file at debug level.
}

// Collected contains categorized lists of paths discovered during resolution.
type Collected struct {
	Files    []string // Readable text files, in resolution order.
	Binary   []string // Files that look binary and were left out.
	Missing  []string // Paths that do not exist or cannot be accessed.
	Excluded []string // Files matched by an exclude pattern or over the size limit.
}

// Resolve expands paths into input files. Surrounding quotes are stripped,
// named files are kept in the order given and directories are walked
// recursively for *.txt files in lexical order. A file reached twice is kept once.
func Resolve(paths []string, opts Options, logger *zap.Logger) (Collected, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var collected Collected
	seen := make(map[string]struct{})

	base := ignore.New(logger)
	base.CompileLines(opts.Exclude...)
	logger.Debug("Starting input resolution", zap.Int("pathCount", len(paths)), zap.Int("excludePatterns", base.Len()))

	add := func(path string) {
		if _, dup := seen[path]; dup {
			logger.Debug("Skipping repeated input", zap.String("file", path))
			return
		}
		seen[path] = struct{}{}
		collected.Files = append(collected.Files, path)
	}

	for _, raw := range paths {
		path := CleanPath(raw)
		if path == "" {
			continue
		}

		absPath, err := filepath.Abs(path)
		if err != nil {
			logger.Warn("Failed to get absolute path", zap.String("path", path), zap.Error(err))
			collected.Missing = append(collected.Missing, path)
			continue
		}

		info, err := os.Stat(absPath)
		if err != nil {
			logger.Warn("Path does not exist or cannot be accessed", zap.String("path", absPath), zap.Error(err))
			collected.Missing = append(collected.Missing, path)
			continue
		}

		if info.IsDir() {
			logger.Debug("Processing directory", zap.String("dir", absPath))
			c, err := walkDirectory(absPath, base, opts, logger)
			if err != nil {
				return collected, fmt.Errorf("failed to traverse directory %s: %w", absPath, err)
			}
			for _, f := range c.Files {
				add(f)
			}
			collected.Binary = append(collected.Binary, c.Binary...)
			collected.Excluded = append(collected.Excluded, c.Excluded...)
			continue
		}

		switch reason := skipReason(absPath, filepath.Base(absPath), info, base, opts); reason {
		case "":
			add(absPath)
		case reasonBinary:
			collected.Binary = append(collected.Binary, absPath)
		default:
			collected.Excluded = append(collected.Excluded, absPath)
			if opts.Verbose {
				logger.Debug("Skipping input file", zap.String("file", absPath), zap.String("reason", reason))
			}
		}
	}

	logger.Debug("Completed input resolution",
		zap.Int("files", len(collected.Files)),
		zap.Int("binaryFiles", len(collected.Binary)),
		zap.Int("missing", len(collected.Missing)),
		zap.Int("excluded", len(collected.Excluded)))
	return collected, nil
}

// CleanPath trims whitespace and the quotes drag-and-drop shells wrap paths in.
func CleanPath(raw string) string {
	return strings.Trim(strings.TrimSpace(raw), `"'`)
}

// walkDirectory collects *.txt files below root, honouring root's .comboignore.
func walkDirectory(root string, base *ignore.Matcher, opts Options, logger *zap.Logger) (Collected, error) {
	var collected Collected

	matcher := base.Clone()
	if err := matcher.CompileFile(filepath.Join(root, ignore.FileName)); err != nil {
		logger.Warn("Failed to load ignore file", zap.String("dir", root), zap.Error(err))
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil // Skip paths that cause errors
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relPath = path
		}

		if d.IsDir() {
			if path != root && matcher.MatchesPath(relPath, true) {
				logger.Debug("Skipping ignored directory during traversal", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.EqualFold(filepath.Ext(path), TextExtension) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			logger.Warn("Failed to get file info during traversal", zap.String("filePath", path), zap.Error(err))
			return nil
		}

		switch reason := skipReason(path, relPath, info, matcher, opts); reason {
		case "":
			collected.Files = append(collected.Files, path)
		case reasonBinary:
			collected.Binary = append(collected.Binary, path)
		default:
			collected.Excluded = append(collected.Excluded, path)
			if opts.Verbose {
				logger.Debug("Skipping file during traversal", zap.String("filePath", path), zap.String("reason", reason))
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Error during file traversal", zap.Error(err))
		return collected, err
	}
	return collected, nil
}

const (
	reasonExcluded = "excluded"
	reasonTooLarge = "too_large"
	reasonBinary   = "binary"
)

// skipReason determines if a file should be skipped based on ignore patterns,
// size and binary content. It returns "" for files to keep; files that cannot
// be inspected are kept so the reading operation reports them.
func skipReason(path, relPath string, info fs.FileInfo, matcher *ignore.Matcher, opts Options) string {
	if matcher.MatchesPath(relPath, false) {
		return reasonExcluded
	}
	if opts.MaxFileSizeKB > 0 && info.Size() > int64(opts.MaxFileSizeKB)*1024 {
		return reasonTooLarge
	}
	isBinary, err := IsBinaryFile(path)
	if err == nil && isBinary {
		return reasonBinary
	}
	return ""
}
