package scraper

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteCatalogue writes the catalogue file via a temp file and rename, so a
// server reloading the path mid-write never sees a half-written document.
func WriteCatalogue(path string, catalogue Catalogue) error {
	data, err := json.MarshalIndent(catalogue, "", " ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalogue: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace catalogue file: %w", err)
	}
	return nil
}
