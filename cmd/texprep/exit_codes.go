package main

import (
	"errors"
	"os"

	texprep "github.com/alnah/go-texprep"
	"github.com/alnah/go-texprep/internal/config"
)

// Exit codes for the texprep CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or document content
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, texprep.ErrMissingInclude) {
		return ExitIO
	}

	// Usage/config/content errors (exit 2)
	if errors.Is(err, texprep.ErrCyclicInclude) ||
		errors.Is(err, texprep.ErrUnknownAcronym) ||
		errors.Is(err, texprep.ErrOffsetOutOfRange) ||
		errors.Is(err, texprep.ErrFilterDecode) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, ErrMissingFlag) ||
		errors.Is(err, ErrNoInput) {
		return ExitUsage
	}

	return ExitGeneral
}
