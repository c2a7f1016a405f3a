package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	texprep "github.com/alnah/go-texprep"
	"github.com/alnah/go-texprep/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil", err: nil, expected: ExitSuccess},
		{name: "file not found", err: fmt.Errorf("reading: %w", os.ErrNotExist), expected: ExitIO},
		{name: "permission denied", err: os.ErrPermission, expected: ExitIO},
		{name: "missing include", err: texprep.ErrMissingInclude, expected: ExitIO},
		{name: "cyclic include", err: texprep.ErrCyclicInclude, expected: ExitUsage},
		{name: "unknown acronym", err: fmt.Errorf("%w: %q", texprep.ErrUnknownAcronym, "API"), expected: ExitUsage},
		{name: "offset out of range", err: texprep.ErrOffsetOutOfRange, expected: ExitUsage},
		{name: "filter decode", err: texprep.ErrFilterDecode, expected: ExitUsage},
		{name: "config not found", err: config.ErrConfigNotFound, expected: ExitUsage},
		{name: "config parse", err: config.ErrConfigParse, expected: ExitUsage},
		{name: "missing flag", err: fmt.Errorf("%w: --input", ErrMissingFlag), expected: ExitUsage},
		{name: "no input", err: ErrNoInput, expected: ExitUsage},
		{name: "anything else", err: errors.New("boom"), expected: ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.expected {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.expected)
			}
		})
	}
}
