package assets

// Loader defines the contract for loading named style documents.
// Implementations may load from embedded assets, filesystem, S3, database, etc.
type Loader interface {
	// LoadDocument loads a style document by name (without .json extension).
	// Returns ErrDocumentNotFound if the document doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadDocument(name string) ([]byte, error)
}
