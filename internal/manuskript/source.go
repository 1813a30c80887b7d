// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manuskript reads the source project layout: the project marker
// files, the characters and outline directories, and the OPML-style XML
// structures for worldbuilding and plots.
package manuskript

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// InfosFile and SummaryFile are the project marker files; both must be
	// present for a directory to count as a Manuskript project.
	InfosFile   = "infos.txt"
	SummaryFile = "summary.txt"

	// CharactersDir holds one header-only file per character.
	CharactersDir = "characters"

	// OutlineDir is the root of the text/folder tree.
	OutlineDir = "outline"

	// FolderFile is the per-directory metadata file inside the outline tree.
	FolderFile = "folder.txt"

	// PlotsFile holds plot definitions, which have no destination equivalent.
	PlotsFile = "plots.xml"

	// WorldFile is the worldbuilding hierarchy.
	WorldFile = "world.opml"
)

// ValidateSource checks that dir looks like a Manuskript project: both marker
// files present, and the characters and outline entries (when they exist)
// actual directories. Run before anything is written to the destination.
func ValidateSource(dir string) error {
	for _, name := range []string{InfosFile, SummaryFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("%s not found: %s does not appear to be a Manuskript project", name, dir)
		}
	}
	for _, name := range []string{CharactersDir, OutlineDir} {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue // optional
		}
		if !info.IsDir() {
			return fmt.Errorf("%s exists but is not a directory", path)
		}
	}
	return nil
}
