package texprep

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/alnah/go-texprep/internal/fileutil"
)

// Precompiled patterns for bibliography filtering.
var (
	citePattern     = regexp.MustCompile(`\\cite\{([^}]+)\}`)
	bibEntryPattern = regexp.MustCompile(`(?si)(@\w+\s*\{\s*[^,\s]+\s*,.*?\n\})`)
	bibKeyPattern   = regexp.MustCompile(`@\w+\s*\{\s*([^,\s]+)\s*,`)
	bibFieldPattern = regexp.MustCompile(`^\s*(\w+)\s*=`)
)

// DefaultExcludedBibFields are stripped from entries unless the caller
// supplies its own list. They carry reference-manager noise (Zotero,
// Mendeley) that has no place in a submission bibliography.
var DefaultExcludedBibFields = []string{
	"tags", "keywords", "annote", "annotation",
	"file", "note", "comment", "archivePrefix",
}

// BibReport summarizes one bibliography filtering run.
type BibReport struct {
	Cited   int      // unique citation keys found in the .tex files
	Written int      // entries written to the output file
	Total   int      // entries present in the input .bib file
	Missing []string // cited keys absent from the .bib file, sorted
}

// ScanCitations walks texDir recursively and collects every citation key
// referenced by a \cite command in a .tex file. Comma-separated keys within
// one command are split and trimmed.
func ScanCitations(texDir string) (map[string]struct{}, error) {
	citations := make(map[string]struct{})
	err := filepath.WalkDir(texDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".tex" {
			return nil
		}
		data, err := os.ReadFile(path) // #nosec G304 -- path comes from walking the user's tex directory
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, match := range citePattern.FindAllStringSubmatch(string(data), -1) {
			for _, key := range strings.Split(match[1], ",") {
				if key = strings.TrimSpace(key); key != "" {
					citations[key] = struct{}{}
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning citations in %s: %w", texDir, err)
	}
	return citations, nil
}

// ParseBibEntries extracts @type{key, ...} entries from BibTeX source,
// keyed by citation key, with excluded fields already stripped.
func ParseBibEntries(content string, excluded []string) map[string]string {
	entries := make(map[string]string)
	for _, match := range bibEntryPattern.FindAllStringSubmatch(content, -1) {
		entry := match[1]
		keyMatch := bibKeyPattern.FindStringSubmatch(entry)
		if keyMatch == nil {
			continue
		}
		entries[keyMatch[1]] = StripFields(entry, excluded)
	}
	return entries
}

// StripFields removes the named fields from a BibTeX entry. Field names
// match case-insensitively; the entry's remaining formatting is preserved.
func StripFields(entry string, excluded []string) string {
	if len(excluded) == 0 {
		return entry
	}
	drop := make(map[string]bool, len(excluded))
	for _, field := range excluded {
		drop[strings.ToLower(field)] = true
	}

	lines := strings.Split(entry, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if match := bibFieldPattern.FindStringSubmatch(line); match != nil && drop[strings.ToLower(match[1])] {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// FilterBib writes a .bib file containing only the entries cited by the
// .tex files under texDir, with excluded fields stripped. Entries are
// written in sorted key order so output is deterministic. Cited keys
// missing from the library are reported, not fatal. The output write is
// atomic.
func FilterBib(bibPath, texDir, outputPath string, excluded []string) (*BibReport, error) {
	if excluded == nil {
		excluded = DefaultExcludedBibFields
	}

	cited, err := ScanCitations(texDir)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(bibPath) // #nosec G304 -- bib path is user-provided
	if err != nil {
		return nil, fmt.Errorf("reading bibliography: %w", err)
	}
	entries := ParseBibEntries(string(data), excluded)

	keys := make([]string, 0, len(cited))
	for key := range cited {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	report := &BibReport{Cited: len(cited), Total: len(entries)}
	var b strings.Builder
	for _, key := range keys {
		entry, ok := entries[key]
		if !ok {
			report.Missing = append(report.Missing, key)
			continue
		}
		b.WriteString(entry)
		b.WriteString("\n\n")
		report.Written++
	}

	if err := fileutil.WriteFileAtomic(outputPath, []byte(b.String()), outputFileMode); err != nil {
		return nil, err
	}
	return report, nil
}
