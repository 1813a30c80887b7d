// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cheesepaper

import (
	"fmt"
	"os"
	"path/filepath"
)

// PrepareDestination validates and creates the destination directory. An
// existing empty directory is reused; an existing non-empty directory, an
// existing regular file, or a missing parent is an error. Nothing is written
// on any error path.
func PrepareDestination(dest string) error {
	info, err := os.Stat(dest)
	switch {
	case err == nil && !info.IsDir():
		return fmt.Errorf("%s already exists as a file", dest)
	case err == nil:
		entries, err := os.ReadDir(dest)
		if err != nil {
			return fmt.Errorf("reading %s: %w", dest, err)
		}
		if len(entries) > 0 {
			return fmt.Errorf("%s already exists and is populated", dest)
		}
		return nil
	case os.IsNotExist(err):
		if _, perr := os.Stat(filepath.Dir(dest)); perr != nil {
			return fmt.Errorf("%s and its immediate parent do not exist", dest)
		}
		if err := os.Mkdir(dest, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dest, err)
		}
		return nil
	default:
		return fmt.Errorf("checking %s: %w", dest, err)
	}
}

// Scaffold creates the fixed destination subdirectories.
func Scaffold(dest string) error {
	for _, dir := range []string{TextDir, CharactersDir, WorldbuildingDir} {
		if err := os.Mkdir(filepath.Join(dest, dir), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}

// WriteRecord encodes a header and writes it to path as a standalone metadata
// record.
func WriteRecord(path string, h *Header) error {
	data, err := h.Encode()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteScene encodes a header and writes it to path followed by the split
// marker and the body text.
func WriteScene(path string, h *Header, body string) error {
	data, err := h.Encode()
	if err != nil {
		return err
	}
	content := string(data) + "\n\n" + HeaderSplit + "\n\n" + body
	return os.WriteFile(path, []byte(content), 0o644)
}
