package storage

import (
	"Shelf/internal/helpers"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

type localStorage struct {
	root string
}

func NewLocalStorage(root string) Storage {
	return &localStorage{root: root}
}

func (s *localStorage) Put(_ context.Context, key string, r io.Reader, _ PutObjectOptions) (ObjectInfo, error) {
	path, err := s.resolve(key)
	if err != nil {
		return ObjectInfo{}, err
	}
	checksum, size, err := helpers.SaveFileAndComputeChecksum(r, path)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("failed to save %s: %w", key, err)
	}
	return ObjectInfo{Key: key, Size: size, Checksum: checksum}, nil
}

func (s *localStorage) Delete(_ context.Context, key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	return helpers.DeleteFile(path)
}

func (s *localStorage) resolve(key string) (string, error) {
	clean := filepath.Clean("/" + key)
	if clean == "/" || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.root, clean), nil
}
