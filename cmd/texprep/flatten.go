package main

import (
	"fmt"

	"github.com/disiqueira/gotree/v3"

	texprep "github.com/alnah/go-texprep"
	"github.com/alnah/go-texprep/internal/config"
)

// runFlatten expands \input directives into one merged file.
func runFlatten(args []string, env *Environment) error {
	flags, err := parseFlattenFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfigFor(flags.common.config)
	if err != nil {
		return err
	}

	input := flags.input
	if input == "" {
		input = cfg.Flatten.Input
	}
	output := flags.output
	if output == "" {
		output = cfg.Flatten.Output
	}

	var opts []texprep.FlattenOption
	if flags.pageBreaks || cfg.Flatten.PageBreaks {
		opts = append(opts, texprep.WithPageBreakConversion())
	}
	flattener := texprep.NewFlattener(opts...)

	if flags.tree {
		node, err := flattener.Tree(input)
		if err != nil {
			return err
		}
		fmt.Fprint(env.Stdout, renderTree(node))
		return nil
	}

	if flags.watch {
		return watchAndFlatten(flattener, input, output, env)
	}

	if err := flattener.FlattenToFile(input, output); err != nil {
		return err
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Expanded %s to %s\n", input, output)
	}
	return nil
}

// loadConfigFor loads the named config, or the defaults when none is given.
func loadConfigFor(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// renderTree renders the inclusion graph as an ASCII tree.
func renderTree(node *texprep.IncludeNode) string {
	root := gotree.New(node.Name)
	addTreeChildren(root, node)
	return root.Print()
}

func addTreeChildren(tree gotree.Tree, node *texprep.IncludeNode) {
	for _, child := range node.Children {
		addTreeChildren(tree.Add(child.Name), child)
	}
}
