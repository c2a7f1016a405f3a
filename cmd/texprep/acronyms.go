package main

import (
	"fmt"

	texprep "github.com/alnah/go-texprep"
)

// runAcronyms expands \ac-family commands in one document.
func runAcronyms(args []string, env *Environment) error {
	flags, err := parseAcronymsFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfigFor(flags.common.config)
	if err != nil {
		return err
	}

	definitions := flags.acronyms
	if definitions == "" {
		definitions = cfg.Acronyms.Definitions
	}
	if definitions == "" {
		return fmt.Errorf("%w: --acronyms", ErrMissingFlag)
	}
	if flags.input == "" {
		return fmt.Errorf("%w: --input", ErrMissingFlag)
	}
	if flags.output == "" {
		return fmt.Errorf("%w: --output", ErrMissingFlag)
	}

	if err := texprep.ExpandFile(definitions, flags.input, flags.output); err != nil {
		return err
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Expanded acronyms from %s to %s\n", flags.input, flags.output)
	}
	return nil
}
