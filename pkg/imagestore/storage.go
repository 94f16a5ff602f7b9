package imagestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
)

// Object describes a stored image variant.
type Object struct {
	Path        string
	Size        int64
	ModTime     time.Time
	ContentType string
}

// Storage is a read-only image variant store.
type Storage interface {
	// Stat returns metadata for the object at p or ErrNotFound.
	Stat(ctx context.Context, p string) (Object, error)
	// Open returns the object's content. The caller closes the reader.
	Open(ctx context.Context, p string) (io.ReadCloser, Object, error)
}

// Config selects and configures a backend.
type Config struct {
	Driver string `env:"IMAGE_STORAGE" envDefault:"local"` // local or s3
	Dir    string `env:"IMAGE_DIR" envDefault:"./static"`

	S3Bucket         string `env:"IMAGE_S3_BUCKET"`
	S3Region         string `env:"IMAGE_S3_REGION"`
	S3Prefix         string `env:"IMAGE_S3_PREFIX"`
	S3Endpoint       string `env:"IMAGE_S3_ENDPOINT"`
	S3AccessKeyID    string `env:"IMAGE_S3_ACCESS_KEY_ID"`
	S3SecretKey      string `env:"IMAGE_S3_SECRET_KEY"`
	S3ForcePathStyle bool   `env:"IMAGE_S3_FORCE_PATH_STYLE" envDefault:"false"`
}

// New creates the backend named by cfg.Driver.
func New(ctx context.Context, cfg Config, s3opts ...S3Option) (Storage, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "local":
		return NewLocalStorage(cfg.Dir)
	case "s3":
		return NewS3Storage(ctx, S3Config{
			Bucket:         cfg.S3Bucket,
			Region:         cfg.S3Region,
			Prefix:         cfg.S3Prefix,
			Endpoint:       cfg.S3Endpoint,
			AccessKeyID:    cfg.S3AccessKeyID,
			SecretKey:      cfg.S3SecretKey,
			ForcePathStyle: cfg.S3ForcePathStyle,
		}, s3opts...)
	default:
		return nil, fmt.Errorf("%w: unknown driver %q", ErrInvalidConfig, cfg.Driver)
	}
}

// Resolve returns the first variant name+ext that exists, trying exts in
// order. It returns ErrNotFound when none exists and stops at the first
// error that is not ErrNotFound.
func Resolve(ctx context.Context, s Storage, name string, exts ...string) (Object, error) {
	for _, ext := range exts {
		obj, err := s.Stat(ctx, name+ext)
		if err == nil {
			return obj, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return Object{}, err
		}
	}
	return Object{}, fmt.Errorf("%w: %s", ErrNotFound, name)
}

var contentTypes = map[string]string{
	".avif": "image/avif",
	".webp": "image/webp",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
}

// ContentType returns the image media type for the extension of p, or
// application/octet-stream.
func ContentType(p string) string {
	if ct, ok := contentTypes[strings.ToLower(path.Ext(p))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// cleanPath normalises p to a slash separated relative path and rejects
// empty paths, parent references and backslashes.
func cleanPath(p string) (string, error) {
	if p == "" || strings.ContainsAny(p, "\\\x00") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
		}
	}
	cleaned := strings.TrimPrefix(path.Clean("/"+p), "/")
	if cleaned == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, p)
	}
	return cleaned, nil
}
