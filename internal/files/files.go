// Package files stores uploaded resume files on the local filesystem under a
// configured directory. Stored names are generated, never taken from the
// upload, so a hostile filename cannot escape the directory.
package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxUploadSize caps resume uploads at 5 MiB.
const MaxUploadSize = 5 << 20

var (
	// ErrEmptyFile is returned when an upload carries no data.
	ErrEmptyFile = errors.New("files: uploaded file is empty")
	// ErrTooLarge is returned when an upload exceeds MaxUploadSize.
	ErrTooLarge = errors.New("files: uploaded file exceeds size limit")
)

// Store persists uploads beneath a base directory.
type Store struct {
	dir string
}

// NewStore prepares the upload directory and returns a store rooted there.
func NewStore(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("files: upload directory must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes the upload to disk under a generated name that keeps the
// original extension, and returns the stored path.
func (s *Store) Save(originalName string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyFile
	}
	if len(data) > MaxUploadSize {
		return "", ErrTooLarge
	}

	name := uuid.NewString()
	if ext := strings.ToLower(filepath.Ext(originalName)); ext != "" {
		name += ext
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return path, nil
}

// Read loads a previously stored file.
func (s *Store) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// MimeTypeFromName guesses a content type from the file extension when the
// upload did not declare one.
func MimeTypeFromName(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return "text/plain"
	case ".pdf":
		return "application/pdf"
	case ".md":
		return "text/markdown"
	default:
		return "application/octet-stream"
	}
}
