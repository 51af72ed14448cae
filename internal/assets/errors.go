package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrDocumentNotFound indicates the requested style document does not exist.
	ErrDocumentNotFound = errors.New("style document not found")

	// ErrInvalidAssetName indicates the document name contains invalid
	// characters such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error occurred while reading a document file.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)
