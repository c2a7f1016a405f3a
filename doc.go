// Package texprep prepares LaTeX sources for document-conversion pipelines.
//
// # Quick Start
//
// Flatten a multi-file LaTeX project into a single document:
//
//	f := texprep.NewFlattener(texprep.WithPageBreakConversion())
//	if err := f.FlattenToFile("main.tex", "main-expanded.tex"); err != nil {
//	    log.Fatal(err)
//	}
//
// Expand acronym commands against a definitions file:
//
//	if err := texprep.ExpandFile("acros.tex", "main-expanded.tex", "out.tex"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Tools
//
// The package bundles the text transformations used when moving an academic
// LaTeX project through Pandoc:
//
//  1. Flattener - recursive \input expansion with cycle detection, optional
//     rewriting of \newpage and \clearpage to the PANDOCPAGEBREAK marker
//  2. Expander - \ac-family acronym expansion ("Long Form (SHORT)" on first
//     use, "SHORT" thereafter) driven by \DeclareAcronym definitions
//  3. Pandoc filter - rewrites the marker in a Pandoc JSON AST into raw
//     OpenXML page breaks (see RunFilter)
//  4. Bibliography filter - trims a .bib library to the entries actually
//     cited by the project's .tex files
//  5. Line insertion - splices generated table markup into a template file
//
// Each transformation reads whole files, transforms in memory, and writes
// output atomically (temp file + rename), so a failed run never leaves a
// partially written file behind.
//
// # Error Handling
//
// Errors are terminal for the run: an unknown acronym key, a missing or
// cyclic \input target, or an out-of-range insertion offset aborts before
// any output is produced. Sentinel errors (ErrMissingInclude,
// ErrCyclicInclude, ErrUnknownAcronym, ErrOffsetOutOfRange) support
// errors.Is classification.
//
// The tools are not designed for concurrent invocation against the same
// output path; concurrent writers to one file are undefined behavior.
package texprep
