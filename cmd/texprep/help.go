package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: texprep <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  flatten    Expand \\input directives into a single file")
	fmt.Fprintln(w, "  acronyms   Expand \\ac commands using a definitions file")
	fmt.Fprintln(w, "  bib        Filter a .bib library down to cited entries")
	fmt.Fprintln(w, "  insert     Splice generated lines into a template file")
	fmt.Fprintln(w, "  filter     Pandoc JSON filter for page-break markers")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'texprep help <command>' for details on a specific command.")
}

// printFlattenUsage prints usage for the flatten command.
func printFlattenUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: texprep flatten [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recursively expand \\input directives after \\begin{document} into a")
	fmt.Fprintln(w, "single merged file. Missing targets and inclusion cycles are fatal;")
	fmt.Fprintln(w, "no output is written on error.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -i, --input <path>    Root LaTeX file (default: main.tex)")
	fmt.Fprintln(w, "  -o, --output <path>   Merged output file (default: main-expanded.tex)")
	fmt.Fprintln(w, "  -p, --pagebreaks      Rewrite \\newpage/\\clearpage to PANDOCPAGEBREAK")
	fmt.Fprintln(w, "      --tree            Print the inclusion tree, write nothing")
	fmt.Fprintln(w, "      --watch           Re-flatten on .tex changes (Ctrl-C to stop)")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
}

// printAcronymsUsage prints usage for the acronyms command.
func printAcronymsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: texprep acronyms -a <defs.tex> -i <input.tex> -o <output.tex>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Replace \\ac-family commands with their expanded forms: the first use")
	fmt.Fprintln(w, "of a key becomes \"Long Form (SHORT)\", later uses become \"SHORT\".")
	fmt.Fprintln(w, "A reference to an undefined key aborts without writing output.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -a, --acronyms <path> File with \\DeclareAcronym definitions")
	fmt.Fprintln(w, "  -i, --input <path>    Input file containing \\ac commands")
	fmt.Fprintln(w, "  -o, --output <path>   Output file for the expanded text")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
}

// printBibUsage prints usage for the bib command.
func printBibUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: texprep bib <library.bib> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write a .bib file containing only the entries cited by \\cite commands")
	fmt.Fprintln(w, "in the project's .tex files, with reference-manager fields stripped.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>   Filtered output file (default: references.bib)")
	fmt.Fprintln(w, "  -t, --tex-dir <path>  Directory scanned for \\cite (default: .)")
	fmt.Fprintln(w, "      --exclude <list>  Comma-separated BibTeX fields to strip")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
}

// printInsertUsage prints usage for the insert command.
func printInsertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: texprep insert -i <table.tex> -t <template.tex> -o <out.tex> -l <n>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Insert the input file's lines into the template after line n. An")
	fmt.Fprintln(w, "offset beyond the template's line count is fatal.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -i, --input <path>    File with the lines to insert")
	fmt.Fprintln(w, "  -t, --template <path> Template file receiving the lines")
	fmt.Fprintln(w, "  -o, --output <path>   Output file")
	fmt.Fprintln(w, "  -l, --line <n>        Line offset after which to insert")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
}

// printFilterUsage prints usage for the filter command.
func printFilterUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pandoc --filter 'texprep filter' ... (or texprep filter < ast.json)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Read a Pandoc JSON document on stdin, rewrite PANDOCPAGEBREAK markers")
	fmt.Fprintln(w, "and raw \\newpage/\\clearpage blocks into OpenXML page breaks, and")
	fmt.Fprintln(w, "write the document to stdout.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "flatten":
		printFlattenUsage(env.Stdout)
	case "acronyms":
		printAcronymsUsage(env.Stdout)
	case "bib":
		printBibUsage(env.Stdout)
	case "insert":
		printInsertUsage(env.Stdout)
	case "filter":
		printFilterUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: texprep version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: texprep help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
