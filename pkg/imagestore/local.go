package imagestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// LocalStorage serves images from a directory. Lookups never leave baseDir.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage creates a storage rooted at dir, which must exist.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty directory", ErrInvalidConfig)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidConfig, abs)
	}
	return &LocalStorage{baseDir: abs}, nil
}

// Stat returns metadata for the file at p.
func (s *LocalStorage) Stat(ctx context.Context, p string) (Object, error) {
	if err := ctx.Err(); err != nil {
		return Object{}, err
	}
	abs, rel, err := s.resolvePath(p)
	if err != nil {
		return Object{}, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return Object{}, classifyFSError(err, rel)
	}
	if info.IsDir() {
		return Object{}, fmt.Errorf("%w: %s is a directory", ErrNotFound, rel)
	}
	return Object{Path: rel, Size: info.Size(), ModTime: info.ModTime(), ContentType: ContentType(rel)}, nil
}

// Open opens the file at p for reading.
func (s *LocalStorage) Open(ctx context.Context, p string) (io.ReadCloser, Object, error) {
	obj, err := s.Stat(ctx, p)
	if err != nil {
		return nil, Object{}, err
	}
	f, err := os.Open(filepath.Join(s.baseDir, filepath.FromSlash(obj.Path)))
	if err != nil {
		return nil, Object{}, classifyFSError(err, obj.Path)
	}
	return f, obj, nil
}

func (s *LocalStorage) resolvePath(p string) (string, string, error) {
	rel, err := cleanPath(p)
	if err != nil {
		return "", "", err
	}
	abs := filepath.Join(s.baseDir, filepath.FromSlash(rel))
	within, err := filepath.Rel(s.baseDir, abs)
	if err != nil || within == "." || within == ".." || strings.HasPrefix(within, ".."+string(filepath.Separator)) {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidPath, p)
	}
	return abs, rel, nil
}

// classifyFSError maps a path through an existing file (ENOTDIR) to
// ErrNotFound like any other missing path.
func classifyFSError(err error, p string) error {
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return fmt.Errorf("%w: %s", ErrNotFound, p)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrAccessDenied, p)
	default:
		return errors.Join(ErrStorage, err)
	}
}
