// Package file implements the stores over whole-document JSON files, the way
// the original deployment persisted its data. Every save rewrites the full
// document; a per-repository RWMutex serializes load-modify-save so concurrent
// sessions cannot lose each other's writes.
package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// loadDocument reads the JSON document at path into v. A missing file is not
// an error: the document is implicitly empty on first use.
func loadDocument(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read document %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode document %s: %w", path, err)
	}

	return nil
}

// saveDocument overwrites the document at path with v. The write goes through
// a temporary file and rename so a crash never leaves a truncated document.
func saveDocument(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create document directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace document %s: %w", path, err)
	}

	return nil
}
