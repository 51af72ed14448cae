package reportstyle

import (
	"errors"

	"github.com/fpna-tools/go-reportstyle/internal/assets"
)

// BuiltinDocument is the name of the embedded default style document.
const BuiltinDocument = "default"

// DocumentLoader loads raw style documents by name. Implementations may
// load from embedded assets, a directory, S3, database, etc. The library
// provides NewDocumentLoader for directory-based loading with fallback to
// the embedded set.
type DocumentLoader interface {
	// LoadDocument loads document bytes by name (without .json extension).
	// Returns ErrDocumentNotFound if no document has that name.
	LoadDocument(name string) ([]byte, error)
}

// NewDocumentLoader creates a DocumentLoader for the given base path.
// If basePath is empty, only embedded documents are available. Otherwise
// {basePath}/styles/{name}.json takes precedence, with fallback to the
// embedded set when the name is not found there.
//
// Returns ErrInvalidAssetPath if basePath is set but not a valid,
// readable directory.
func NewDocumentLoader(basePath string) (DocumentLoader, error) {
	resolver, err := assets.NewResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &documentLoaderAdapter{resolver: resolver}, nil
}

// LoadNamed loads and parses the named style document through loader,
// then validates it exactly like Load. A nil loader uses the embedded
// set only.
func LoadNamed(loader DocumentLoader, name string) (*StyleDocument, error) {
	if loader == nil {
		loader = &documentLoaderAdapter{resolver: assets.EmbeddedResolver()}
	}
	data, err := loader.LoadDocument(name)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// documentLoaderAdapter wraps the internal resolver to return public errors.
type documentLoaderAdapter struct {
	resolver *assets.Resolver
}

func (a *documentLoaderAdapter) LoadDocument(name string) ([]byte, error) {
	data, err := a.resolver.LoadDocument(name)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return data, nil
}

// convertAssetError maps internal asset errors to public sentinels.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, assets.ErrDocumentNotFound):
		return wrapError(ErrDocumentNotFound, err)
	case errors.Is(err, assets.ErrInvalidAssetName):
		return wrapError(ErrDocumentNotFound, err) // invalid name means not found
	case errors.Is(err, assets.ErrInvalidBasePath):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrPathTraversal):
		return wrapError(ErrInvalidAssetPath, err)
	default:
		return err
	}
}

// wrapError pairs a public sentinel with the original message. The result
// reads like the original via Error() and matches the sentinel via
// errors.Is through Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string { return e.original.Error() }
func (e *wrappedAssetError) Unwrap() error { return e.sentinel }
