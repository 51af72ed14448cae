package assets

import "errors"

// Resolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls
// back to embedded if the document is not found in the custom location.
type Resolver struct {
	custom   Loader // nil if no custom path configured
	embedded Loader
}

// NewResolver creates a Resolver.
// If customBasePath is empty, only embedded documents are used.
// If customBasePath is set, custom documents take precedence with fallback
// to embedded. Returns error if customBasePath is set but invalid.
func NewResolver(customBasePath string) (*Resolver, error) {
	resolver := &Resolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// EmbeddedResolver returns a Resolver backed only by embedded documents.
func EmbeddedResolver() *Resolver {
	return &Resolver{embedded: NewEmbeddedLoader()}
}

// LoadDocument loads a style document, trying the custom loader first if
// one is configured.
func (r *Resolver) LoadDocument(name string) ([]byte, error) {
	if r.custom == nil {
		return r.embedded.LoadDocument(name)
	}

	data, err := r.custom.LoadDocument(name)
	if err == nil {
		return data, nil
	}

	// Only fall back for "not found", not validation or I/O errors.
	if !errors.Is(err, ErrDocumentNotFound) {
		return nil, err
	}

	return r.embedded.LoadDocument(name)
}

// LoadDocument loads a style document by name using the default embedded
// loader. The name should not include the .json extension or path components.
func LoadDocument(name string) ([]byte, error) {
	return defaultLoader.LoadDocument(name)
}

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()
