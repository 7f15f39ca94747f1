package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/jakartadata/idx-suspension-tracker/internal/domain/suspension"
)

// SidecarWriter persists incomplete records to an append-only CSV file so
// unresolved announcements survive across runs for manual follow-up. Rows
// are appended without a header and the file is never truncated.
type SidecarWriter struct {
	path string
}

// NewSidecarWriter creates a writer targeting path, creating the parent
// directory when needed.
func NewSidecarWriter(path string) (*SidecarWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create sidecar directory: %w", err)
		}
	}
	return &SidecarWriter{path: path}, nil
}

// Append writes records to the end of the sidecar file.
func (w *SidecarWriter) Append(records []suspension.Record) error {
	if len(records) == 0 {
		return nil
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open sidecar file %s: %w", w.path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalWithoutHeaders(&records, f); err != nil {
		return fmt.Errorf("failed to append incomplete records: %w", err)
	}
	return nil
}
