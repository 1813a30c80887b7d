// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/manuskript-convert/internal/cheesepaper"
	"github.com/pdiddy/manuskript-convert/internal/header"
	"github.com/pdiddy/manuskript-convert/internal/manuskript"
	"github.com/pdiddy/manuskript-convert/internal/translate"
)

// convertOutline mirrors one level of the outline tree into destDir and
// recurses into subdirectories. Files that are neither entries nor folder
// markers are ignored.
func convertOutline(srcDir, destDir string, normalize bool, res *Result, w io.Writer) error {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcDir, err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(srcDir, entry.Name())
		destPath := filepath.Join(destDir, entry.Name())

		switch {
		case entry.IsDir():
			if err := os.Mkdir(destPath, 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", destPath, err)
			}
			if err := convertOutline(srcPath, destPath, normalize, res, w); err != nil {
				return err
			}
		case filepath.Ext(entry.Name()) == ".md":
			if err := convertScene(srcPath, destPath, normalize, res, w); err != nil {
				return err
			}
		case entry.Name() == manuskript.FolderFile:
			if err := convertFolderMeta(srcPath, destDir, normalize, res, w); err != nil {
				return err
			}
		}
	}
	return nil
}

// convertScene splits an entry file into header and body at the first
// triple newline and writes the translated scene. The split happens on the
// raw text: the editor leaves trailing whitespace on blank lines inside the
// body, so a bare triple newline only ever ends the header.
func convertScene(srcPath, destPath string, normalize bool, res *Result, w io.Writer) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcPath, err)
	}

	head, body, _ := strings.Cut(string(data), "\n\n\n")

	rec, err := header.Parse(head, normalize)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", srcPath, err)
	}
	h, err := translate.Scene(rec, res.CharacterIDs)
	if err != nil {
		return fmt.Errorf("%s: %w", srcPath, err)
	}

	if normalize {
		body = header.Normalize(body)
	}
	if err := cheesepaper.WriteScene(destPath, h, body); err != nil {
		return err
	}
	res.Scenes++
	fmt.Fprintf(w, "scene: %s\n", entryName(srcPath))
	return nil
}

// convertFolderMeta translates a folder marker into the metadata record of
// the current destination directory.
func convertFolderMeta(srcPath, destDir string, normalize bool, res *Result, w io.Writer) error {
	rec, err := parseHeaderFile(srcPath, normalize)
	if err != nil {
		return err
	}
	h, err := translate.Folder(rec, res.CharacterIDs)
	if err != nil {
		return fmt.Errorf("%s: %w", srcPath, err)
	}

	if err := cheesepaper.WriteRecord(filepath.Join(destDir, cheesepaper.MetadataFile), h); err != nil {
		return err
	}
	res.Folders++
	fmt.Fprintf(w, "folder: %s\n", filepath.Base(destDir))
	return nil
}

// entryName trims the extension off an outline entry file name for progress
// output.
func entryName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
