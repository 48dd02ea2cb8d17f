// File: pkg/combo/stats.go
package combo

import (
	"go.uber.org/multierr"
)

// Operation names used in stats records, log fields and reporter events.
const (
	OpMerge  = "merge"
	OpSplit  = "split"
	OpSort   = "sort"
	OpDedupe = "dedupe"
)

// FileFailure records an input file that could not be read during a merge.
type FileFailure struct {
	Path string `yaml:"path"`
	Err  error  `yaml:"-"`
	// Reason mirrors Err for serialised reports.
	Reason string `yaml:"reason"`
}

// MergeStats summarises a merge run.
type MergeStats struct {
	Operation   string        `yaml:"operation"`
	RunID       string        `yaml:"runId,omitempty"`
	Output      string        `yaml:"output,omitempty"`
	FilesTotal  int           `yaml:"filesTotal"`
	FilesRead   int           `yaml:"filesRead"`
	TotalCombos int           `yaml:"totalCombos"`
	Skipped     int           `yaml:"skipped"`          // non-empty lines without a colon
	Duplicates  int           `yaml:"duplicates"`       // zero unless duplicates were removed
	Unique      int           `yaml:"unique,omitempty"` // zero unless duplicates were removed
	Written     int           `yaml:"written"`
	Failures    []FileFailure `yaml:"failures,omitempty"`
}

// Err combines the per-file read failures into a single error, or nil.
func (s MergeStats) Err() error {
	var err error
	for _, f := range s.Failures {
		err = multierr.Append(err, f.Err)
	}
	return err
}

// SplitStats summarises a split run.
type SplitStats struct {
	Operation     string   `yaml:"operation"`
	RunID         string   `yaml:"runId,omitempty"`
	Output        string   `yaml:"output,omitempty"`
	TotalLines    int      `yaml:"totalLines"`
	LinesPerChunk int      `yaml:"linesPerChunk"`
	Chunks        int      `yaml:"chunks"`
	Files         []string `yaml:"files,omitempty"`
}

// RejectedDomain is a domain whose name could not be turned into a file name.
type RejectedDomain struct {
	Domain string `yaml:"domain"`
	Combos int    `yaml:"combos"`
}

// DomainCount is the number of combos written for one domain.
type DomainCount struct {
	Domain string `yaml:"domain"`
	File   string `yaml:"file"`
	Combos int    `yaml:"combos"`
}

// SortStats summarises a sort-by-domain run.
type SortStats struct {
	Operation   string           `yaml:"operation"`
	RunID       string           `yaml:"runId,omitempty"`
	Output      string           `yaml:"output,omitempty"`
	TotalLines  int              `yaml:"totalLines"`
	ValidCombos int              `yaml:"validCombos"`
	Invalid     int              `yaml:"invalid"`
	Duplicates  int              `yaml:"duplicates"`
	Domains     int              `yaml:"domains"`
	Files       int              `yaml:"files"`
	PerDomain   []DomainCount    `yaml:"perDomain,omitempty"`
	Rejected    []RejectedDomain `yaml:"rejected,omitempty"`
}

// DedupeStats summarises a deduplicate run.
type DedupeStats struct {
	Operation  string `yaml:"operation"`
	RunID      string `yaml:"runId,omitempty"`
	Output     string `yaml:"output,omitempty"`
	TotalLines int    `yaml:"totalLines"`
	Unique     int    `yaml:"unique"`
	Duplicates int    `yaml:"duplicates"`
}
