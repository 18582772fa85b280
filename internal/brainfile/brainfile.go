// Package brainfile reads and writes brain files on disk.
//
// Conversion happens in memory, so the only file operations are a bounded
// whole-file read and a replacement write. Writes go through a temporary
// file in the same directory and a rename, so a crash never leaves a
// half-flipped brain behind.
package brainfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// BackupSuffix is appended to the input path by Backup.
const BackupSuffix = ".bak"

// ErrTooLarge is returned by Read when a file exceeds the size cap.
var ErrTooLarge = errors.New("brain file too large")

// Read returns the contents of path. When maxSize is positive, files
// larger than maxSize are refused before any data is read.
func Read(path string, maxSize int) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: not a regular file", path)
	}
	if maxSize > 0 && info.Size() > int64(maxSize) {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrTooLarge, path, info.Size(), maxSize)
	}

	data := make([]byte, info.Size())
	if _, err := io.ReadFull(file, data); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// Mode returns the permission bits of path, or fallback when it does not
// exist yet.
func Mode(path string, fallback fs.FileMode) fs.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return fallback
	}
	return info.Mode().Perm()
}

// Write replaces path with data atomically.
func Write(path string, data []byte, mode fs.FileMode) error {
	directory := filepath.Dir(path)
	file, err := os.CreateTemp(directory, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary brain file: %w", err)
	}
	temporaryPath := file.Name()

	// Write, chmod, sync, close. Any failure removes the temporary file.
	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("writing temporary brain file: %w", err)
	}
	if err := file.Chmod(mode); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("setting mode on temporary brain file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("syncing temporary brain file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("closing temporary brain file: %w", err)
	}

	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("renaming brain file into place: %w", err)
	}

	// Make the rename durable.
	parent, err := os.Open(directory)
	if err == nil {
		parent.Sync()
		parent.Close()
	}
	return nil
}

// Backup copies path to path+BackupSuffix, replacing any earlier backup.
// It returns the backup path.
func Backup(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s for backup: %w", path, err)
	}
	backupPath := path + BackupSuffix
	if err := Write(backupPath, data, Mode(path, 0o644)); err != nil {
		return "", err
	}
	return backupPath, nil
}
