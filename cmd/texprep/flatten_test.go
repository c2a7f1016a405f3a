package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFiles writes the given relative path -> content map under dir.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("creating %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", rel, err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRunFlatten - end to end through the CLI layer
// ---------------------------------------------------------------------------

func TestRunFlatten(t *testing.T) {
	env, stdout, _ := testEnv()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"main.tex":           "\\documentclass{article}\n\\begin{document}\n\\input{sections/intro}\n\\end{document}\n",
		"sections/intro.tex": "Hello.\n",
	})
	input := filepath.Join(dir, "main.tex")
	output := filepath.Join(dir, "main-expanded.tex")

	err := runFlatten([]string{"-i", input, "-o", output}, env)
	if err != nil {
		t.Fatalf("runFlatten() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "Hello.") {
		t.Errorf("output missing included content:\n%s", data)
	}
	if !strings.Contains(stdout.String(), "Expanded") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunFlatten_Quiet(t *testing.T) {
	env, stdout, _ := testEnv()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"main.tex": "body\n"})

	err := runFlatten([]string{
		"-q",
		"-i", filepath.Join(dir, "main.tex"),
		"-o", filepath.Join(dir, "out.tex"),
	}, env)
	if err != nil {
		t.Fatalf("runFlatten() error = %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("quiet run wrote to stdout: %q", stdout.String())
	}
}

func TestRunFlatten_MissingInput(t *testing.T) {
	env, _, _ := testEnv()

	dir := t.TempDir()
	err := runFlatten([]string{
		"-i", filepath.Join(dir, "gone.tex"),
		"-o", filepath.Join(dir, "out.tex"),
	}, env)
	if err == nil {
		t.Fatal("runFlatten() error = nil, want missing input error")
	}
	if exitCodeFor(err) != ExitIO {
		t.Errorf("exitCodeFor() = %d, want %d", exitCodeFor(err), ExitIO)
	}
}

func TestRunFlatten_Tree(t *testing.T) {
	env, stdout, _ := testEnv()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"main.tex":           "\\begin{document}\n\\input{sections/intro}\n\\end{document}\n",
		"sections/intro.tex": "\\input{deep}\n",
		"sections/deep.tex":  "leaf\n",
	})
	input := filepath.Join(dir, "main.tex")

	err := runFlatten([]string{"--tree", "-i", input}, env)
	if err != nil {
		t.Fatalf("runFlatten() error = %v", err)
	}

	got := stdout.String()
	for _, want := range []string{"main.tex", "sections/intro", "deep"} {
		if !strings.Contains(got, want) {
			t.Errorf("tree output missing %q:\n%s", want, got)
		}
	}
	if _, statErr := os.Stat(filepath.Join(dir, "main-expanded.tex")); !os.IsNotExist(statErr) {
		t.Errorf("--tree wrote an output file")
	}
}
