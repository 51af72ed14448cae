// Package assets provides named style documents for report rendering.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in documents)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in documents (currently "default")
// embedded at compile time. FilesystemLoader lets users ship their own
// documents from a directory, with path traversal protection and symlink
// resolution. Resolver tries the custom FilesystemLoader first and falls
// back to EmbeddedLoader when the name is not found, so users can override
// individual documents while keeping the built-ins.
//
// # Directory Structure
//
//	{basePath}/
//	└── styles/
//	    └── {name}.json          # style documents (e.g. corporate.json)
//
// # Security
//
// Document names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
