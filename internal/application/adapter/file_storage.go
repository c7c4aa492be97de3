package adapter

import "io"

// FileStorage defines the interface for storing uploaded files (user photos,
// outcome receipts).
type FileStorage interface {
	// Save stores the content under the given folder using a unique name
	// derived from originalName's extension, and returns the stored filename.
	Save(folder, originalName string, content io.Reader) (string, error)

	// URL builds the public URL of a stored file for the given base URL.
	URL(baseURL, folder, filename string) string
}
