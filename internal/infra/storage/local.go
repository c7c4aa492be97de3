// Package storage provides upload storage on the local filesystem.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/hexapixel/backend/internal/application/adapter"
)

// ErrUnsupportedFileType is returned for uploads outside the allowed set.
var ErrUnsupportedFileType = errors.New("only jpg, jpeg, png, and pdf files are allowed")

// allowedExtensions is the upload whitelist, lowercase with the leading dot.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

// localStorage implements the adapter.FileStorage interface on a local
// directory. Stored names are random so uploads never collide or leak the
// uploader's filename.
type localStorage struct {
	baseDir string
}

// NewLocalStorage creates a new local storage instance rooted at baseDir.
func NewLocalStorage(baseDir string) (adapter.FileStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &localStorage{baseDir: baseDir}, nil
}

// Save stores the content under the given folder using a unique name derived
// from originalName's extension.
func (s *localStorage) Save(folder, originalName string, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedFileType
	}

	dir := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create folder: %w", err)
	}

	filename := uuid.NewString() + ext
	path := filepath.Join(dir, filename)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return filename, nil
}

// URL builds the public URL of a stored file for the given base URL.
func (s *localStorage) URL(baseURL, folder, filename string) string {
	return fmt.Sprintf("%s/uploads/%s/%s", strings.TrimRight(baseURL, "/"), folder, filename)
}
