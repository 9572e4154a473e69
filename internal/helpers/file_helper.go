package helpers

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"path/filepath"
)

// SaveFileAndComputeChecksum streams src into destinationPath, creating
// parent directories, and returns the SHA-256 of what was written.
func SaveFileAndComputeChecksum(src io.Reader, destinationPath string) (sha256sum string, size int64, err error) {
	if err := os.MkdirAll(filepath.Dir(destinationPath), 0o750); err != nil {
		return "", 0, err
	}
	dst, err := os.Create(destinationPath)
	if err != nil {
		return "", 0, err
	}
	defer func() {
		if closeErr := dst.Close(); err == nil {
			err = closeErr
		}
	}()

	hasher := sha256.New()
	size, err = io.Copy(io.MultiWriter(dst, hasher), src)
	if err != nil {
		return "", 0, err
	}
	return hex.EncodeToString(hasher.Sum(nil)), size, nil
}

// DeleteFile removes path. A path that is already gone is not an error.
func DeleteFile(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
