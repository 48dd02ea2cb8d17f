// File: cmd/helpers.go
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"combokit/pkg/combo"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// promptUser displays a message and waits for the user to enter 'y' or 'n'.
// Returns true if the user enters 'y' or 'yes' (case-insensitive), false otherwise.
func promptUser(in io.Reader, out io.Writer, msg string) (bool, error) {
	fmt.Fprint(out, msg)
	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && (err != io.EOF || response == "") {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// isInteractive reports whether r is a terminal a user can answer prompts on.
func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// confirm asks msg unless --yes was given or stdin is not a terminal, in which
// case it answers yes.
func (a *app) confirm(cmd *cobra.Command, msg string) (bool, error) {
	if a.opts.yes || !isInteractive(cmd.InOrStdin()) {
		return true, nil
	}
	return promptUser(cmd.InOrStdin(), cmd.OutOrStdout(), msg)
}

// outputPath places name inside the configured output directory unless it is
// already a path of its own.
func outputPath(dir, name string) string {
	if filepath.IsAbs(name) || strings.ContainsAny(name, `/\`) {
		return name
	}
	return filepath.Join(dir, name)
}

var numbers = message.NewPrinter(language.English)

const rule = "=================================================="

func printMergeSummary(w io.Writer, s combo.MergeStats, removeDuplicates bool) {
	numbers.Fprintf(w, "\n%s\n%s\n%s\n", rule, center("MERGE REPORT", len(rule)), rule)
	numbers.Fprintf(w, "- Files supplied: %d\n", s.FilesTotal)
	numbers.Fprintf(w, "- Files read: %d\n", s.FilesRead)
	numbers.Fprintf(w, "- Combos found: %d\n", s.TotalCombos)
	if s.Skipped > 0 {
		numbers.Fprintf(w, "- Lines without a colon skipped: %d\n", s.Skipped)
	}
	if removeDuplicates {
		numbers.Fprintf(w, "- Duplicates removed: %d\n", s.Duplicates)
		numbers.Fprintf(w, "- Unique combos saved: %d\n", s.Unique)
	} else {
		numbers.Fprintf(w, "- Combos saved: %d\n", s.Written)
	}
	for _, f := range s.Failures {
		fmt.Fprintf(w, "- Failed to read %s: %s\n", f.Path, f.Reason)
	}
	fmt.Fprintf(w, "\nOutput saved to:\n%s\n%s\n", s.Output, rule)
}

func printSplitSummary(w io.Writer, s combo.SplitStats) {
	numbers.Fprintf(w, "Split %d lines into %d files of up to %d lines\n", s.TotalLines, s.Chunks, s.LinesPerChunk)
	fmt.Fprintf(w, "Files saved to: %s\n", s.Output)
}

func printSortSummary(w io.Writer, s combo.SortStats, removeDuplicates bool) {
	fmt.Fprintln(w, "\nProcessing completed:")
	numbers.Fprintf(w, "Total lines processed: %d\n", s.TotalLines)
	numbers.Fprintf(w, "Valid email:pass combos found: %d\n", s.ValidCombos)
	if removeDuplicates {
		numbers.Fprintf(w, "Duplicate combos removed: %d\n", s.Duplicates)
	}
	numbers.Fprintf(w, "Unique domains found: %d\n", s.Domains)
	for _, r := range s.Rejected {
		numbers.Fprintf(w, "Domain %q has no usable file name, %d combos not written\n", r.Domain, r.Combos)
	}
	fmt.Fprintf(w, "Files saved to: %s\n", s.Output)
}

func printDedupeSummary(w io.Writer, s combo.DedupeStats) {
	numbers.Fprintf(w, "Removed %d duplicates (%d unique combos saved)\n", s.Duplicates, s.Unique)
	fmt.Fprintf(w, "Output saved to: %s\n", s.Output)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
