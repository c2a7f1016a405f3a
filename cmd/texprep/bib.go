package main

import (
	"fmt"

	texprep "github.com/alnah/go-texprep"
)

// runBib filters a BibTeX library down to the cited entries.
func runBib(args []string, env *Environment) error {
	flags, positional, err := parseBibFlags(args)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return fmt.Errorf("%w: path to the input .bib file", ErrNoInput)
	}
	bibPath := positional[0]

	cfg, err := loadConfigFor(flags.common.config)
	if err != nil {
		return err
	}

	texDir := flags.texDir
	if texDir == "" {
		texDir = cfg.Bib.TexDir
	}
	output := flags.output
	if output == "" {
		output = cfg.Bib.Output
	}
	excluded := flags.excluded
	if excluded == nil {
		excluded = cfg.Bib.ExcludedFields
	}

	report, err := texprep.FilterBib(bibPath, texDir, output, excluded)
	if err != nil {
		return err
	}

	for _, key := range report.Missing {
		fmt.Fprintf(env.Stderr, "Warning: citation key %q not found in %s\n", key, bibPath)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Found %d unique citations\n", report.Cited)
		fmt.Fprintf(env.Stdout, "Wrote %d of %d entries to %s\n", report.Written, report.Total, output)
	}
	return nil
}
