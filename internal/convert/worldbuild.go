// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pdiddy/manuskript-convert/internal/cheesepaper"
	"github.com/pdiddy/manuskript-convert/internal/header"
	"github.com/pdiddy/manuskript-convert/internal/manuskript"
	"github.com/pdiddy/manuskript-convert/internal/translate"
)

// unsafeChars matches characters that cannot appear in file names on common
// filesystems, plus DEL and the C0 control range.
var unsafeChars = regexp.MustCompile(`[/\\?%*:|"<>\x7F\x00-\x1F]`)

const (
	maxDirNameRunes = 30
	unnamedPlace    = "New Place"
)

// dirName derives the destination directory name for a worldbuilding
// element: unsafe characters become dashes, the name is capped at 30 runes,
// spaces become underscores, and the zero-padded sibling index keeps ordering
// stable and names collision-free.
func dirName(index int, name string) string {
	if name == "" {
		name = unnamedPlace
	}
	safe := unsafeChars.ReplaceAllString(name, "-")
	if runes := []rune(safe); len(runes) > maxDirNameRunes {
		safe = string(runes[:maxDirNameRunes])
	}
	safe = strings.ReplaceAll(safe, " ", "_")
	return fmt.Sprintf("%03d-%s", index, safe)
}

// convertWorldbuilding mirrors the children of a worldbuilding element into
// destDir, one subdirectory per element, depth first.
func convertWorldbuilding(parent *manuskript.Element, destDir string, res *Result, w io.Writer) error {
	for i := range parent.Children {
		child := &parent.Children[i]

		rec := header.NewRecord()
		for _, a := range child.Attrs {
			rec.Set(a.Name.Local, a.Value)
		}

		var name string
		if v, ok := child.Attr("name"); ok {
			name = strings.TrimSpace(v)
		}

		dir := filepath.Join(destDir, dirName(i, name))
		if err := os.Mkdir(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}

		h := translate.Worldbuilding(rec)
		if err := cheesepaper.WriteRecord(filepath.Join(dir, cheesepaper.MetadataFile), h); err != nil {
			return err
		}
		res.Worldbuilding++
		fmt.Fprintf(w, "worldbuilding: %s\n", filepath.Base(dir))

		if err := convertWorldbuilding(child, dir, res, w); err != nil {
			return err
		}
	}
	return nil
}
