// Package filestore keeps uploaded images on the local disk under a root directory.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// DiskStorage implements ports.ProofStorage. Relative paths are resolved
// against root and may not escape it.
type DiskStorage struct {
	root string
}

func NewDiskStorage(root string) *DiskStorage {
	return &DiskStorage{root: root}
}

// Save writes to a temporary file in the target directory and renames it into
// place, so readers never see a partial image.
func (s *DiskStorage) Save(ctx context.Context, relPath string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := s.resolve(relPath)
	if err != nil {
		return err
	}

	dir := filepath.Dir(target)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create upload directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("create upload file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err = io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write upload: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close upload: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod upload: %w", err)
	}

	return os.Rename(tmp.Name(), target)
}

func (s *DiskStorage) Remove(ctx context.Context, relPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := s.resolve(relPath)
	if err != nil {
		return err
	}

	if err = os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

func (s *DiskStorage) resolve(relPath string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(relPath))
	if !filepath.IsLocal(clean) {
		return "", fmt.Errorf("upload path %q is outside the upload root", relPath)
	}
	return filepath.Join(s.root, clean), nil
}
