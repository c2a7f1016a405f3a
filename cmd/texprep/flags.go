package main

import (
	"errors"
	"os"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for CLI argument handling.
var (
	ErrMissingFlag = errors.New("required flag not set")
	ErrNoInput     = errors.New("no input specified")
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config string
	quiet  bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
}

// flattenFlags holds flags for the flatten command.
type flattenFlags struct {
	common     commonFlags
	input      string
	output     string
	pageBreaks bool
	tree       bool
	watch      bool
}

// parseFlattenFlags parses flatten command flags.
func parseFlattenFlags(args []string) (*flattenFlags, error) {
	fs := flag.NewFlagSet("flatten", flag.ContinueOnError)
	f := &flattenFlags{}

	fs.StringVarP(&f.input, "input", "i", "", "root LaTeX file (default: main.tex)")
	fs.StringVarP(&f.output, "output", "o", "", "merged output file (default: main-expanded.tex)")
	fs.BoolVarP(&f.pageBreaks, "pagebreaks", "p", false, "rewrite \\newpage and \\clearpage to the pandoc marker")
	fs.BoolVar(&f.tree, "tree", false, "print the \\input inclusion tree instead of writing output")
	fs.BoolVar(&f.watch, "watch", false, "re-flatten whenever a .tex file under the root changes")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printFlattenUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// acronymsFlags holds flags for the acronyms command.
type acronymsFlags struct {
	common   commonFlags
	acronyms string
	input    string
	output   string
}

// parseAcronymsFlags parses acronyms command flags.
func parseAcronymsFlags(args []string) (*acronymsFlags, error) {
	fs := flag.NewFlagSet("acronyms", flag.ContinueOnError)
	f := &acronymsFlags{}

	fs.StringVarP(&f.acronyms, "acronyms", "a", "", "file with \\DeclareAcronym definitions")
	fs.StringVarP(&f.input, "input", "i", "", "input file containing \\ac commands")
	fs.StringVarP(&f.output, "output", "o", "", "output file for the expanded text")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printAcronymsUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// bibFlags holds flags for the bib command.
type bibFlags struct {
	common   commonFlags
	output   string
	texDir   string
	excluded []string
}

// parseBibFlags parses bib command flags and returns positional args.
func parseBibFlags(args []string) (*bibFlags, []string, error) {
	fs := flag.NewFlagSet("bib", flag.ContinueOnError)
	f := &bibFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "filtered BibTeX output file (default: references.bib)")
	fs.StringVarP(&f.texDir, "tex-dir", "t", "", "directory scanned for \\cite commands (default: .)")
	fs.StringSliceVar(&f.excluded, "exclude", nil, "BibTeX fields to strip (default: reference-manager noise)")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printBibUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// insertFlags holds flags for the insert command.
type insertFlags struct {
	common   commonFlags
	input    string
	template string
	output   string
	line     int
}

// parseInsertFlags parses insert command flags.
func parseInsertFlags(args []string) (*insertFlags, error) {
	fs := flag.NewFlagSet("insert", flag.ContinueOnError)
	f := &insertFlags{}

	fs.StringVarP(&f.input, "input", "i", "", "file with the lines to insert (e.g. generated table markup)")
	fs.StringVarP(&f.template, "template", "t", "", "template file receiving the lines")
	fs.StringVarP(&f.output, "output", "o", "", "output file")
	fs.IntVarP(&f.line, "line", "l", -1, "line offset after which the content is inserted")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printInsertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
