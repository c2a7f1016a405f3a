package texprep

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/alnah/go-texprep/internal/fileutil"
)

// Acronym holds the short and long forms of one definition.
type Acronym struct {
	Short string
	Long  string
}

// AcronymTable maps definition keys (case-sensitive word tokens) to their
// forms. Built once per run; not mutated afterwards.
type AcronymTable map[string]Acronym

// Precompiled patterns for acronym processing.
var (
	// \DeclareAcronym{key}{ short = {...}, long = {...}, tag = ... }
	// The tag field is accepted but ignored.
	declareAcronymPattern = regexp.MustCompile(
		`\\DeclareAcronym\{(\w+)\}\{\s*short\s*=\s*\{([^}]+)\},\s*long\s*=\s*\{([^}]+)\}(?:,\s*tag\s*=\s*[^}]+)?\s*\}`)

	// The \ac command family: \ac \Ac \acp \Acp \acf \acl \acs and their
	// capitalized and plural variants.
	acronymCommandPattern = regexp.MustCompile(`\\([aA]c[sfl]?p?)\{([^}]+)\}`)
)

// printAcronymsDirective is replaced by the list of used acronyms.
const printAcronymsDirective = `\printacronyms[include=abbrev, heading=none]`

// ParseAcronyms extracts \DeclareAcronym definitions from LaTeX source.
// Duplicate keys are resolved deterministically: the last definition wins.
func ParseAcronyms(content string) AcronymTable {
	table := make(AcronymTable)
	for _, match := range declareAcronymPattern.FindAllStringSubmatch(content, -1) {
		table[match[1]] = Acronym{Short: match[2], Long: match[3]}
	}
	return table
}

// LoadAcronyms reads a definitions file and parses it into an AcronymTable.
func LoadAcronyms(path string) (AcronymTable, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- definitions path is user-provided
	if err != nil {
		return nil, fmt.Errorf("reading acronym definitions: %w", err)
	}
	return ParseAcronyms(string(data)), nil
}

// Expander rewrites \ac-family commands using an acronym table.
//
// The first reference to a key expands to "Long Form (SHORT)"; subsequent
// references expand to "SHORT". Usage state is owned by the Expander value
// and scoped to it: create a fresh Expander per document pass so repeated
// runs cannot leak state between documents.
type Expander struct {
	table AcronymTable
	seen  map[string]bool
}

// NewExpander creates an Expander over table with empty usage state.
func NewExpander(table AcronymTable) *Expander {
	return &Expander{
		table: table,
		seen:  make(map[string]bool),
	}
}

// Expand replaces every acronym command in text, scanning strictly left to
// right so expansion decisions follow document order. A reference to a key
// absent from the table aborts with ErrUnknownAcronym naming the key and
// its line number.
func (e *Expander) Expand(text string) (string, error) {
	matches := acronymCommandPattern.FindAllStringSubmatchIndex(text, -1)

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m[0]])

		command := text[m[2]:m[3]] // ac, Acp, acs, ...
		key := text[m[4]:m[5]]

		def, ok := e.table[key]
		if !ok {
			line := 1 + strings.Count(text[:m[0]], "\n")
			return "", fmt.Errorf("%w: %q (line %d)", ErrUnknownAcronym, key, line)
		}

		b.WriteString(e.replacement(command, key, def))
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String(), nil
}

// replacement renders one command occurrence and updates usage state.
//
// Forced variants override the first/subsequent rule: \acs/\acsp always
// yield the short form (and mark the key as seen), \acl/\aclp always yield
// the long form (and deliberately do NOT mark it, matching the acro
// package), \acf/\acfp always yield the full form.
func (e *Expander) replacement(command, key string, def Acronym) string {
	upper := strings.ToUpper(command)
	long := def.Long
	if unicode.IsUpper(rune(command[0])) {
		long = capitalizeFirst(long)
	}

	switch upper {
	case "ACS":
		e.seen[key] = true
		return def.Short
	case "ACSP":
		e.seen[key] = true
		return def.Short + "s"
	case "ACL":
		return long
	case "ACLP":
		return long + "s"
	case "ACF":
		e.seen[key] = true
		return long + " (" + def.Short + ")"
	case "ACFP":
		e.seen[key] = true
		return long + "s (" + def.Short + "s)"
	}

	// \ac and \acp: full form on first use, short form thereafter.
	plural := upper == "ACP"
	if e.seen[key] {
		if plural {
			return def.Short + "s"
		}
		return def.Short
	}
	e.seen[key] = true
	if plural {
		return long + "s (" + def.Short + "s)"
	}
	return long + " (" + def.Short + ")"
}

// Used returns the keys expanded at least once, sorted by short form
// (case-insensitive).
func (e *Expander) Used() []string {
	keys := make([]string, 0, len(e.seen))
	for key := range e.seen {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return strings.ToLower(e.table[keys[i]].Short) < strings.ToLower(e.table[keys[j]].Short)
	})
	return keys
}

// AcronymList renders the \printacronyms replacement: one
// "\textbf{SHORT}, Long Form" entry per used key, blank-line separated,
// sorted by short form. Returns "" when no acronym was used.
func AcronymList(table AcronymTable, used []string) string {
	if len(used) == 0 {
		return ""
	}
	entries := make([]string, 0, len(used))
	for _, key := range used {
		def := table[key]
		entries = append(entries, fmt.Sprintf(`\textbf{%s}, %s`, def.Short, def.Long))
	}
	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i]) < strings.ToLower(entries[j])
	})
	return strings.Join(entries, "\n\n")
}

// ExpandFile runs the full acronym pipeline: load definitions, expand the
// input document, replace \printacronyms with the list of used acronyms,
// and write the result atomically. No output file appears on error.
func ExpandFile(definitionsPath, inputPath, outputPath string) error {
	table, err := LoadAcronyms(definitionsPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	expander := NewExpander(table)
	expanded, err := expander.Expand(string(data))
	if err != nil {
		return err
	}

	list := AcronymList(table, expander.Used())
	expanded = strings.ReplaceAll(expanded, printAcronymsDirective, list)

	return fileutil.WriteFileAtomic(outputPath, []byte(expanded), outputFileMode)
}

// capitalizeFirst upper-cases the first rune, leaving the rest unchanged.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
