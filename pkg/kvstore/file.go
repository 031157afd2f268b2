package kvstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// fileStore keeps one file per key under a root directory. Writes go through
// a temp file plus rename so a crash mid-write never leaves a torn value —
// the per-key atomicity the Store contract promises.
type fileStore struct {
	root string
}

// NewFile returns a Store rooted at dir, creating it if needed.
func NewFile(dir string) (Store, error) {
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("kvstore/file: getwd: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("kvstore/file: mkdir %s: %w", dir, err)
	}
	return &fileStore{root: dir}, nil
}

func (f *fileStore) path(key string) string {
	// Keys are flat identifiers ("luna-rosa-products"); anything resembling
	// a path separator is flattened rather than trusted.
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(f.root, safe+".json")
}

func (f *fileStore) Get(_ context.Context, key string) (string, error) {
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("kvstore/file: read %s: %w", key, err)
	}
	return string(b), nil
}

func (f *fileStore) Set(_ context.Context, key, value string) error {
	final := f.path(key)

	tmp, err := os.CreateTemp(f.root, ".tmp-*")
	if err != nil {
		return fmt.Errorf("kvstore/file: temp: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("kvstore/file: write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("kvstore/file: close %s: %w", key, err)
	}

	if err := os.Rename(tmpName, final); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("kvstore/file: rename %s: %w", key, err)
	}
	return nil
}
