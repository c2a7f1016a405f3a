package texprep

import (
	"fmt"
	"os"
	"path/filepath"
)

// IncludeNode is one document in the resolved inclusion graph.
type IncludeNode struct {
	Name     string // directive argument as written (root: the given path)
	Path     string // resolved absolute path
	Children []*IncludeNode
}

// Tree resolves the inclusion graph below rootPath without producing
// output. It applies the same resolution rules as Flatten, including the
// missing-file and cycle checks, so a tree that resolves cleanly will also
// flatten cleanly.
func (f *Flattener) Tree(rootPath string) (*IncludeNode, error) {
	abs, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", rootPath, err)
	}
	data, err := os.ReadFile(abs) // #nosec G304 -- root path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInclude, rootPath)
		}
		return nil, fmt.Errorf("reading %s: %w", rootPath, err)
	}

	_, body := splitAtBeginDocument(string(data))
	node := &IncludeNode{Name: rootPath, Path: abs}
	if err := f.resolveChildren(node, body, filepath.Dir(abs), []string{abs}); err != nil {
		return nil, err
	}
	return node, nil
}

// resolveChildren appends a child node per \input directive in content,
// recursing into each target.
func (f *Flattener) resolveChildren(node *IncludeNode, content, baseDir string, stack []string) error {
	for _, match := range inputPattern.FindAllStringSubmatch(content, -1) {
		target := match[1]
		path, err := resolveIncludePath(target, baseDir)
		if err != nil {
			return err
		}

		for _, active := range stack {
			if active == path {
				return fmt.Errorf("%w: %s", ErrCyclicInclude, formatCycle(stack, path))
			}
		}

		data, err := os.ReadFile(path) // #nosec G304 -- path comes from the document being resolved
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("%w: %s (included from %s)", ErrMissingInclude, target, stack[len(stack)-1])
			}
			return fmt.Errorf("reading %s: %w", target, err)
		}

		child := &IncludeNode{Name: target, Path: path}
		if err := f.resolveChildren(child, string(data), filepath.Dir(path), append(stack, path)); err != nil {
			return err
		}
		node.Children = append(node.Children, child)
	}
	return nil
}
