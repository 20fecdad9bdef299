package exporters

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExportWriteFailureError indicates that the export destination could not be
// written. No partial output file is left behind.
type ExportWriteFailureError struct {
	Path string
	Err  error
}

func (e *ExportWriteFailureError) Error() string {
	return fmt.Sprintf("failed to write export to %s: %v", e.Path, e.Err)
}

func (e *ExportWriteFailureError) Unwrap() error {
	return e.Err
}

// WriteFile writes the payload to path atomically: a temp file in the target
// directory, then a rename into place. Any failure removes the temp file.
func WriteFile(path, payload string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".export_tmp_")
	if err != nil {
		return &ExportWriteFailureError{Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(payload); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &ExportWriteFailureError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &ExportWriteFailureError{Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &ExportWriteFailureError{Path: path, Err: err}
	}

	return nil
}
