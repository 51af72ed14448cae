package main

import (
	"errors"
	"os"

	reportstyle "github.com/fpna-tools/go-reportstyle"
)

// Exit codes for the reportstyle CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage/validation.
const (
	ExitSuccess = 0 // Document valid, query answered
	ExitGeneral = 1 // Unexpected error
	ExitUsage   = 2 // Invalid flags, malformed or invalid document, bad lookup
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, reportstyle.ErrStylesNotFound) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/validation errors (exit 2)
	if errors.Is(err, errUsage) ||
		errors.Is(err, reportstyle.ErrEmptyPath) ||
		errors.Is(err, reportstyle.ErrStylesParse) ||
		errors.Is(err, reportstyle.ErrStylesInvalid) ||
		errors.Is(err, reportstyle.ErrSchemeNotFound) ||
		errors.Is(err, reportstyle.ErrUnknownFormat) ||
		errors.Is(err, reportstyle.ErrDocumentNotFound) ||
		errors.Is(err, reportstyle.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
