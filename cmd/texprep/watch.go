package main

import (
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	texprep "github.com/alnah/go-texprep"
)

// watchAndFlatten re-runs the flattener whenever a .tex file below the
// root document's directory changes. Flatten errors are reported but do
// not stop the watch; the previous output stays in place because writes
// are atomic. Returns on interrupt.
func watchAndFlatten(flattener *texprep.Flattener, input, output string, env *Environment) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := addWatchDirs(watcher, filepath.Dir(input)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(input), err)
	}

	outputAbs, err := filepath.Abs(output)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", output, err)
	}

	rebuild := func() {
		if err := flattener.FlattenToFile(input, output); err != nil {
			fmt.Fprintln(env.Stderr, err)
			return
		}
		fmt.Fprintf(env.Stdout, "[%s] Expanded %s to %s\n", env.Now().Format("15:04:05"), input, output)
	}
	rebuild()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// New directories must be registered or edits below them
			// would go unseen.
			if event.Has(fsnotify.Create) && watchIfDir(watcher, event.Name) {
				continue
			}
			if filepath.Ext(event.Name) != ".tex" {
				continue
			}
			// Writing our own output must not retrigger the build.
			if abs, err := filepath.Abs(event.Name); err == nil && abs == outputAbs {
				continue
			}
			rebuild()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(env.Stderr, err)
		case <-interrupt:
			return nil
		}
	}
}

// watchIfDir registers name (and any directories below it) with the
// watcher when it is a directory, reporting whether it was one.
func watchIfDir(watcher *fsnotify.Watcher, name string) bool {
	info, err := os.Stat(name)
	if err != nil || !info.IsDir() {
		return false
	}
	_ = addWatchDirs(watcher, name)
	return true
}

// addWatchDirs registers every directory below root with the watcher.
// fsnotify watches are not recursive, so each subdirectory is added.
func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
