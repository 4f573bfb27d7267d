// Package storage persists uploaded photos and license documents on
// local disk and hands back the URLs stored on the database records.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Upload categories determine the subdirectory a file lands in.
const (
	CategoryBoatPhotos      = "boat-photos"
	CategoryBoatLicenses    = "boat-licenses"
	CategoryCaptainLicenses = "captain-licenses"
)

// Store writes uploads under baseDir and returns URLs rooted at baseURL.
type Store struct {
	baseDir string
	baseURL string
}

func NewStore(baseDir, baseURL string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// BaseDir returns the directory files are written under, for serving
// them back over HTTP.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Save writes an uploaded file under <category>/business-<ownerID>/ with
// a random name, keeping only the original extension, and returns its
// public URL.
func (s *Store) Save(fh *multipart.FileHeader, category string, ownerID uint) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := uuid.NewString() + ext
	relPath := filepath.Join(category, fmt.Sprintf("business-%d", ownerID), name)
	fullPath := filepath.Join(s.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload subdirectory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return s.baseURL + "/" + filepath.ToSlash(relPath), nil
}
