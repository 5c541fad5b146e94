// Package media stores attachment content on the local filesystem under
// opaque names so original filenames never reach the disk.
package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskStorage writes attachment blobs below a single base directory. Paths
// returned to callers are relative to the base so the directory can move
// between environments.
type DiskStorage struct {
	baseDir string
}

func NewDiskStorage(baseDir string) (*DiskStorage, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("storage base directory is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &DiskStorage{baseDir: baseDir}, nil
}

// Store writes the content under an opaque name, keeping only the original
// extension. The first two characters of the name shard the directory.
func (s *DiskStorage) Store(ctx context.Context, content io.Reader, originalName string) (string, error) {
	name := uuid.NewString()
	if ext := sanitizeExt(originalName); ext != "" {
		name += ext
	}
	relPath := filepath.Join(name[:2], name)

	fullPath := filepath.Join(s.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create storage shard: %w", err)
	}

	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create attachment file: %w", err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write attachment file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to close attachment file: %w", err)
	}

	return relPath, nil
}

func (s *DiskStorage) Remove(ctx context.Context, path string) error {
	fullPath, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to remove attachment file: %w", err)
	}
	return nil
}

func (s *DiskStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	fullPath, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open attachment file: %w", err)
	}
	return f, nil
}

// resolve joins the stored relative path with the base directory and rejects
// anything that escapes it.
func (s *DiskStorage) resolve(path string) (string, error) {
	fullPath := filepath.Join(s.baseDir, path)
	base, err := filepath.Abs(s.baseDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve storage directory: %w", err)
	}
	abs, err := filepath.Abs(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve attachment path: %w", err)
	}
	if abs != base && !strings.HasPrefix(abs, base+string(filepath.Separator)) {
		return "", fmt.Errorf("attachment path escapes storage directory")
	}
	return abs, nil
}

// sanitizeExt keeps a short alphanumeric extension, discarding anything that
// could smuggle path characters into the stored name.
func sanitizeExt(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
