package kv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"celora/internal/domain"
)

// FileStore persists each key as one file under a base directory. It is
// intended for development environments where state should survive restarts.
type FileStore struct {
	basePath string
}

// NewFileStore initializes a FileStore rooted at basePath.
func NewFileStore(basePath string) (*FileStore, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("kv: base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("kv: ensure base path: %w", err)
	}
	return &FileStore{basePath: basePath}, nil
}

func (s *FileStore) Get(key string) (string, bool, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &domain.StorageError{Op: "read", Err: err}
	}
	return string(data), true, nil
}

func (s *FileStore) Set(key, value string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(value), 0o644); err != nil {
		return &domain.StorageError{Op: "write", Err: err}
	}
	return nil
}

func (s *FileStore) Remove(key string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return &domain.StorageError{Op: "remove", Err: err}
	}
	return nil
}

// pathFor maps a key onto a file name, preventing directory traversal. Colons
// are common in keys ("celora_cart:user") and map onto a safe separator.
func (s *FileStore) pathFor(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("kv: key is required")
	}
	name := strings.NewReplacer(":", "__", "/", "_", "\\", "_").Replace(key)
	cleaned := filepath.Clean(name)
	if cleaned == "." || strings.HasPrefix(cleaned, "..") {
		return "", fmt.Errorf("kv: invalid key %q", key)
	}
	return filepath.Join(s.basePath, cleaned), nil
}
