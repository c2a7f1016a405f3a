package texprep

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alnah/go-texprep/internal/fileutil"
)

// Precompiled patterns for \input expansion.
var (
	inputPattern         = regexp.MustCompile(`\\input\{([^}]+)\}`)
	beginDocumentPattern = regexp.MustCompile(`^\\begin\{document\}`)
)

// Output file permissions: owner read+write, others read.
const outputFileMode = 0o644

// FlattenOption configures a Flattener.
type FlattenOption func(*Flattener)

// WithPageBreakConversion rewrites \newpage and \clearpage commands to
// PageBreakMarker in the flattened output. Commands inside included files
// are converted too.
func WithPageBreakConversion() FlattenOption {
	return func(f *Flattener) {
		f.convertPageBreaks = true
	}
}

// Flattener expands \input directives into a single merged document.
//
// Expansion is depth-first and pre-order: when a directive is encountered,
// the referenced file is itself flattened before its content replaces the
// directive, so inclusions may nest arbitrarily deep. The resolution stack
// is tracked so a cyclic inclusion graph fails with ErrCyclicInclude
// instead of recursing without bound.
type Flattener struct {
	convertPageBreaks bool
}

// NewFlattener creates a Flattener. Use options to customize behavior.
func NewFlattener(opts ...FlattenOption) *Flattener {
	f := &Flattener{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Flatten reads the document at rootPath and returns its text with every
// \input directive replaced by the referenced file's fully expanded
// content. In the root document only directives after \begin{document} are
// expanded; the preamble is copied verbatim. Included files carry no
// preamble and are expanded in full.
func (f *Flattener) Flatten(rootPath string) (string, error) {
	content, err := f.flattenRoot(rootPath)
	if err != nil {
		return "", err
	}
	if f.convertPageBreaks {
		content = ConvertPageBreaks(content)
	}
	return content, nil
}

// FlattenToFile flattens rootPath and writes the result to outputPath.
// The write is atomic: no output file appears unless the whole recursive
// expansion succeeded.
func (f *Flattener) FlattenToFile(rootPath, outputPath string) error {
	content, err := f.Flatten(rootPath)
	if err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(outputPath, []byte(content), outputFileMode)
}

// flattenRoot splits the root document at \begin{document}: the preamble
// passes through untouched, the body is expanded. A document without
// \begin{document} (e.g. a bare fragment) is expanded in full.
func (f *Flattener) flattenRoot(rootPath string) (string, error) {
	abs, err := filepath.Abs(rootPath)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", rootPath, err)
	}
	data, err := os.ReadFile(abs) // #nosec G304 -- root path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrMissingInclude, rootPath)
		}
		return "", fmt.Errorf("reading %s: %w", rootPath, err)
	}

	content := string(data)
	preamble, body := splitAtBeginDocument(content)

	expanded, err := f.expand(body, filepath.Dir(abs), []string{abs})
	if err != nil {
		return "", err
	}
	return preamble + expanded, nil
}

// splitAtBeginDocument returns the text up to and including the
// \begin{document} line, and the remainder. Without \begin{document} the
// whole content is the remainder.
func splitAtBeginDocument(content string) (preamble, body string) {
	offset := 0
	for offset < len(content) {
		end := strings.IndexByte(content[offset:], '\n')
		var line string
		if end < 0 {
			line = content[offset:]
			end = len(content) - offset
		} else {
			line = content[offset : offset+end]
			end++ // include the newline
		}
		offset += end
		if beginDocumentPattern.MatchString(line) {
			return content[:offset], content[offset:]
		}
	}
	return "", content
}

// expand replaces every \input directive in content. baseDir anchors
// relative targets; stack holds the absolute paths currently being
// resolved, newest last.
func (f *Flattener) expand(content, baseDir string, stack []string) (string, error) {
	var expandErr error
	result := inputPattern.ReplaceAllStringFunc(content, func(match string) string {
		if expandErr != nil {
			return match
		}
		target := inputPattern.FindStringSubmatch(match)[1]
		replacement, err := f.include(target, baseDir, stack)
		if err != nil {
			expandErr = err
			return match
		}
		return replacement
	})
	if expandErr != nil {
		return "", expandErr
	}
	return result, nil
}

// include loads and recursively expands one \input target, wrapped in
// traceability comment markers.
func (f *Flattener) include(target, baseDir string, stack []string) (string, error) {
	path, err := resolveIncludePath(target, baseDir)
	if err != nil {
		return "", err
	}

	for _, active := range stack {
		if active == path {
			return "", fmt.Errorf("%w: %s", ErrCyclicInclude, formatCycle(stack, path))
		}
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the document being flattened
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s (included from %s)", ErrMissingInclude, target, stack[len(stack)-1])
		}
		return "", fmt.Errorf("reading %s: %w", target, err)
	}

	expanded, err := f.expand(string(data), filepath.Dir(path), append(stack, path))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%% --- Begin %s ---\n", target)
	b.WriteString(expanded)
	if !strings.HasSuffix(expanded, "\n") {
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%% --- End %s ---", target)
	return b.String(), nil
}

// resolveIncludePath turns an \input argument into an absolute path,
// defaulting the extension to .tex when none is given.
func resolveIncludePath(target, baseDir string) (string, error) {
	name := strings.TrimSpace(target)
	if filepath.Ext(name) == "" {
		name += ".tex"
	}
	if !filepath.IsAbs(name) {
		name = filepath.Join(baseDir, name)
	}
	return filepath.Abs(name)
}

// formatCycle renders the active inclusion stack plus the repeated path.
func formatCycle(stack []string, repeat string) string {
	return strings.Join(append(append([]string{}, stack...), repeat), " -> ")
}
