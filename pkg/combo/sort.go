// File: pkg/combo/sort.go
package combo

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// DomainGroup holds the combos of one domain in insertion order.
type DomainGroup struct {
	Domain string
	Combos []string
}

// SortOptions configures a file-level sort by domain.
type SortOptions struct {
	Input            string `validate:"required"`
	OutputDir        string `validate:"required"`
	RemoveDuplicates bool
	Prefix           string `validate:"excludesall=/\\"`
}

// SortByDomain partitions the strictly valid combos of lines by domain.
// Groups are returned in the order their domain was first seen. With
// removeDuplicates a combo already seen anywhere in the input is dropped.
func SortByDomain(lines []string, removeDuplicates bool) ([]DomainGroup, SortStats) {
	stats := SortStats{Operation: OpSort}
	var groups []DomainGroup
	index := make(map[string]int)
	seen := make(map[string]struct{})

	for _, raw := range lines {
		stats.TotalLines++
		c, domain, ok := ParseStrict(raw)
		if !ok {
			if strings.TrimSpace(raw) != "" {
				stats.Invalid++
			}
			continue
		}
		combo := c.String()

		if removeDuplicates {
			if _, dup := seen[combo]; dup {
				stats.Duplicates++
				continue
			}
			seen[combo] = struct{}{}
		}

		i, ok := index[domain]
		if !ok {
			i = len(groups)
			index[domain] = i
			groups = append(groups, DomainGroup{Domain: domain})
		}
		groups[i].Combos = append(groups[i].Combos, combo)
		stats.ValidCombos++
	}

	stats.Domains = len(groups)
	return groups, stats
}

// DomainFileName returns the output file name for domain, or "" when the
// domain has no usable characters.
func DomainFileName(prefix, domain string) string {
	safe := SanitizeDomain(domain)
	if safe == "" {
		return ""
	}
	if prefix != "" {
		return fmt.Sprintf("%s_%s.txt", prefix, safe)
	}
	return safe + ".txt"
}

type domainFile struct {
	name    string
	domains []string
	counts  []int
	combos  []string
}

// planDomainFiles maps groups onto output files. Domains that sanitize to the
// same name share a file; domains without a usable name are returned as rejected.
func planDomainFiles(groups []DomainGroup, prefix string) ([]*domainFile, []RejectedDomain) {
	var files []*domainFile
	var rejected []RejectedDomain
	byName := make(map[string]*domainFile)

	for _, g := range groups {
		name := DomainFileName(prefix, g.Domain)
		if name == "" {
			rejected = append(rejected, RejectedDomain{Domain: g.Domain, Combos: len(g.Combos)})
			continue
		}
		f, ok := byName[name]
		if !ok {
			f = &domainFile{name: name}
			byName[name] = f
			files = append(files, f)
		}
		f.domains = append(f.domains, g.Domain)
		f.counts = append(f.counts, len(g.Combos))
		f.combos = append(f.combos, g.Combos...)
	}
	return files, rejected
}

// SortFile sorts the combos of opts.Input into one file per domain inside
// opts.OutputDir. Domains whose name cannot be used as a file name are
// reported in the stats and logged instead of written.
func (p *Processor) SortFile(ctx context.Context, opts SortOptions) (SortStats, error) {
	if err := p.validate(OpSort, opts); err != nil {
		return SortStats{Operation: OpSort}, err
	}
	logger := p.logger.With(zap.String("operation", OpSort))

	lines, err := ReadLines(opts.Input)
	if err != nil {
		logger.Error("Failed to read input file", zap.String("file", opts.Input), zap.Error(err))
		return SortStats{Operation: OpSort}, fmt.Errorf("failed to read sort input: %w", err)
	}

	groups, stats := SortByDomain(lines, opts.RemoveDuplicates)
	logger.Info("Sorting combos by domain",
		zap.String("file", opts.Input),
		zap.Int("validCombos", stats.ValidCombos),
		zap.Int("domains", stats.Domains))

	if err := ensureDirectory(opts.OutputDir); err != nil {
		logger.Error("Failed to create output directory", zap.String("path", opts.OutputDir), zap.Error(err))
		return stats, fmt.Errorf("failed to create output directory: %w", err)
	}

	files, rejected := planDomainFiles(groups, opts.Prefix)
	total := len(files) + len(rejected)
	stats.Rejected = rejected

	for i, f := range files {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		path := filepath.Join(opts.OutputDir, f.name)
		if err := WriteLines(path, f.combos); err != nil {
			logger.Error("Failed to write domain file", zap.String("file", path), zap.Strings("domains", f.domains), zap.Error(err))
			return stats, fmt.Errorf("failed to write domain file %s: %w", f.name, err)
		}
		for j, d := range f.domains {
			stats.PerDomain = append(stats.PerDomain, DomainCount{Domain: d, File: f.name, Combos: f.counts[j]})
		}
		stats.Files++
		logger.Debug("Wrote domain file", zap.String("file", path), zap.Int("combos", len(f.combos)))
		p.reporter.Checkpoint(Event{Operation: OpSort, Stage: StageDomainWritten, Name: path, Index: i + 1, Total: total, Count: len(f.combos)})
	}

	// Rejected domains are numbered after the written files.
	for i, r := range rejected {
		logger.Warn("Domain has no usable file name, combos not written",
			zap.String("domain", r.Domain),
			zap.Int("combos", r.Combos))
		p.reporter.Checkpoint(Event{Operation: OpSort, Stage: StageDomainRejected, Name: r.Domain, Index: len(files) + i + 1, Total: total, Count: r.Combos})
	}

	stats.Output = absPath(opts.OutputDir)
	logger.Info("Sort completed",
		zap.String("outputDir", stats.Output),
		zap.Int("files", stats.Files),
		zap.Int("duplicates", stats.Duplicates),
		zap.Int("rejectedDomains", len(stats.Rejected)))
	p.reporter.Checkpoint(Event{Operation: OpSort, Stage: StageDone, Name: stats.Output, Count: stats.Files})
	return stats, nil
}
