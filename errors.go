package reportstyle

import "errors"

// Sentinel errors for style document operations.
var (
	ErrStylesNotFound = errors.New("style document not found")
	ErrStylesParse    = errors.New("failed to parse style document")
	ErrStylesInvalid  = errors.New("style document failed validation")
	ErrSchemeNotFound = errors.New("color scheme not found")
	ErrUnknownFormat  = errors.New("unknown output format")
	ErrEmptyPath      = errors.New("style document path cannot be empty")

	// Asset loading errors (built-in and directory-based documents).
	ErrDocumentNotFound = errors.New("named style document not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
