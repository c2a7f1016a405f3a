package main

import (
	"fmt"

	texprep "github.com/alnah/go-texprep"
)

// runInsert splices a content file into a template at a line offset.
func runInsert(args []string, env *Environment) error {
	flags, err := parseInsertFlags(args)
	if err != nil {
		return err
	}

	if flags.input == "" {
		return fmt.Errorf("%w: --input", ErrMissingFlag)
	}
	if flags.template == "" {
		return fmt.Errorf("%w: --template", ErrMissingFlag)
	}
	if flags.output == "" {
		return fmt.Errorf("%w: --output", ErrMissingFlag)
	}
	if flags.line < 0 {
		return fmt.Errorf("%w: --line", ErrMissingFlag)
	}

	if err := texprep.InsertFileAt(flags.input, flags.template, flags.output, flags.line); err != nil {
		return err
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Inserted %s into %s at line %d: %s\n", flags.input, flags.template, flags.line, flags.output)
	}
	return nil
}
