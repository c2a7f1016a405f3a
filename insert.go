package texprep

import (
	"fmt"
	"os"

	"github.com/alnah/go-texprep/internal/fileutil"
)

// InsertLines splices content into lines after the first offset lines:
// the result is lines[:offset] + content + lines[offset:]. An offset
// outside [0, len(lines)] is fatal.
func InsertLines(lines, content []string, offset int) ([]string, error) {
	if offset < 0 || offset > len(lines) {
		return nil, fmt.Errorf("%w: %d (template has %d lines)", ErrOffsetOutOfRange, offset, len(lines))
	}
	out := make([]string, 0, len(lines)+len(content))
	out = append(out, lines[:offset]...)
	out = append(out, content...)
	out = append(out, lines[offset:]...)
	return out, nil
}

// InsertFileAt splices the lines of contentPath into templatePath at the
// given line offset and writes the result to outputPath atomically. Used
// to drop generated table markup into a LaTeX template. The output is
// always newline-terminated, even when the template file is not.
func InsertFileAt(contentPath, templatePath, outputPath string, offset int) error {
	content, err := readLines(contentPath)
	if err != nil {
		return err
	}
	template, err := readLines(templatePath)
	if err != nil {
		return err
	}

	merged, err := InsertLines(template, content, offset)
	if err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(outputPath, []byte(fileutil.JoinLines(merged)), outputFileMode)
}

// readLines loads a file as a line slice without a trailing empty element.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return fileutil.SplitLines(string(data)), nil
}
