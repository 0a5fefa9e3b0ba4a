package utils

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// EnsureDataDir creates the directory that holds the given file if it doesn't exist
func EnsureDataDir(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), os.ModePerm)
}

// WriteFileAtomic writes data to a unique temporary file next to destPath and
// renames it over the destination. If the rename fails the previous file is
// left untouched, so a crash mid-write can never leave a partial file behind.
func WriteFileAtomic(destPath string, data []byte) error {
	if err := EnsureDataDir(destPath); err != nil {
		return err
	}

	tmpPath := destPath + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
