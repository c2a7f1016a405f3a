package main

import (
	texprep "github.com/alnah/go-texprep"
)

// runFilterCmd runs the pandoc JSON filter over stdin/stdout. Pandoc
// passes the target format as an extra argument; it is accepted and
// ignored because the filter always emits OpenXML constructs.
func runFilterCmd(_ []string, env *Environment) error {
	return texprep.RunFilter(env.Stdin, env.Stdout)
}
