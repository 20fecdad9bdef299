package applebooks

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Apple Books keeps each store as a directory of N >= 0 SQLite shard files.
// An empty directory is a valid store with zero records.

// DefaultBookStorePath returns the macOS location of the BKLibrary store.
func DefaultBookStorePath() (string, error) {
	return defaultStorePath("BKLibrary")
}

// DefaultAnnotationStorePath returns the macOS location of the AEAnnotation store.
func DefaultAnnotationStorePath() (string, error) {
	return defaultStorePath("AEAnnotation")
}

func defaultStorePath(dir string) (string, error) {
	if runtime.GOOS != "darwin" {
		return "", fmt.Errorf("Apple Books is only available on macOS; specify store paths explicitly")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, "Library", "Containers", "com.apple.iBooksX", "Data", "Documents", dir), nil
}

// LocateShards enumerates the .sqlite shard files of one store, in directory
// order. A missing or unreadable root yields StorageUnavailableError.
func LocateShards(store, root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, &StorageUnavailableError{Store: store, Path: root, Err: err}
	}

	var shards []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".sqlite" {
			shards = append(shards, filepath.Join(root, entry.Name()))
		}
	}

	return shards, nil
}
