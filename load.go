package reportstyle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fpna-tools/go-reportstyle/internal/jsonutil"
	"github.com/fpna-tools/go-reportstyle/internal/yamlutil"
)

// Load reads, parses, and validates the style document at path.
// Files ending in .yaml or .yml are parsed as YAML; everything else as JSON.
// Returns ErrStylesNotFound if the file does not exist, ErrStylesParse if
// the content is malformed, and *ValidationError (matching ErrStylesInvalid)
// if the document violates the schema. There is no partial success: the
// whole document validates or Load fails.
func Load(path string) (*StyleDocument, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	data, err := os.ReadFile(path) // #nosec G304 -- styles path is caller-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrStylesNotFound, path)
		}
		return nil, fmt.Errorf("reading style document: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(data)
	}
}

// Parse parses data as a JSON style document and validates it.
func Parse(data []byte) (*StyleDocument, error) {
	var doc StyleDocument
	if err := jsonutil.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStylesParse, err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ParseYAML parses data as a YAML style document and validates it.
// Semantics are identical to Parse; only the encoding differs.
func ParseYAML(data []byte) (*StyleDocument, error) {
	var doc StyleDocument
	if err := yamlutil.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStylesParse, err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// EncodeJSON serializes the document as indented JSON suitable for writing
// back to a styles file. Parse(EncodeJSON(d)) round-trips d.
func (d *StyleDocument) EncodeJSON() ([]byte, error) {
	return jsonutil.MarshalIndent(d)
}
