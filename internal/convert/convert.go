// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert orchestrates the conversion pipeline: source validation,
// destination preparation, project metadata, then the character, outline, and
// worldbuilding passes in that order.
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
	"github.com/pdiddy/manuskript-convert/pkg/types"
)

// Result holds the outcome of a conversion run.
type Result struct {
	Characters    int
	Scenes        int
	Folders       int
	Worldbuilding int
	Warnings      []string
	CharacterIDs  translate.IDMap
}

// Total returns the number of entities written.
func (r *Result) Total() int {
	return r.Characters + r.Scenes + r.Folders + r.Worldbuilding
}

// warn records a non-fatal anomaly and reports it on w.
func (r *Result) warn(w io.Writer, msg string) {
	r.Warnings = append(r.Warnings, msg)
	fmt.Fprintf(w, "warning: %s\n", msg)
}

// Run executes a whole conversion, writing progress to w. Both trees are
// validated before anything is written. The character pass must complete
// before the outline pass: scene and folder headers resolve their POV
// references through the identifier map built from the characters.
func Run(cfg types.ConvertConfig, w io.Writer) (*Result, error) {
	if err := manuskript.ValidateSource(cfg.SourceDir); err != nil {
		return nil, err
	}
	if err := cheesepaper.PrepareDestination(cfg.DestDir); err != nil {
		return nil, err
	}

	res := &Result{CharacterIDs: translate.IDMap{}}

	if err := convertProject(cfg); err != nil {
		return res, err
	}
	if err := cheesepaper.Scaffold(cfg.DestDir); err != nil {
		return res, err
	}

	has, err := manuskript.HasPlots(filepath.Join(cfg.SourceDir, manuskript.PlotsFile))
	if err != nil {
		return res, err
	}
	if has {
		res.warn(w, "project has plots defined; plots have no equivalent and are skipped")
	}

	srcCharacters := filepath.Join(cfg.SourceDir, manuskript.CharactersDir)
	if _, err := os.Stat(srcCharacters); err == nil {
		destCharacters := filepath.Join(cfg.DestDir, cheesepaper.CharactersDir)
		if err := convertCharacters(srcCharacters, destCharacters, cfg.NormalizeNewlines, res, w); err != nil {
			return res, err
		}
	}

	srcOutline := filepath.Join(cfg.SourceDir, manuskript.OutlineDir)
	if _, err := os.Stat(srcOutline); err == nil {
		destText := filepath.Join(cfg.DestDir, cheesepaper.TextDir)
		if err := convertOutline(srcOutline, destText, cfg.NormalizeNewlines, res, w); err != nil {
			return res, err
		}
	}

	world := filepath.Join(cfg.SourceDir, manuskript.WorldFile)
	if _, err := os.Stat(world); err == nil {
		body, err := manuskript.ParseWorld(world)
		if err != nil {
			return res, err
		}
		destWorld := filepath.Join(cfg.DestDir, cheesepaper.WorldbuildingDir)
		if err := convertWorldbuilding(body, destWorld, res, w); err != nil {
			return res, err
		}
	}

	fmt.Fprintf(w, "\nConversion summary: %d characters, %d scenes, %d folders, %d worldbuilding entries (total: %d)\n",
		res.Characters, res.Scenes, res.Folders, res.Worldbuilding, res.Total())
	return res, nil
}

// convertProject translates infos.txt and summary.txt into the project
// record at the destination root.
func convertProject(cfg types.ConvertConfig) error {
	infos, err := parseHeaderFile(filepath.Join(cfg.SourceDir, manuskript.InfosFile), cfg.NormalizeNewlines)
	if err != nil {
		return err
	}
	summary, err := parseHeaderFile(filepath.Join(cfg.SourceDir, manuskript.SummaryFile), cfg.NormalizeNewlines)
	if err != nil {
		return err
	}

	fallback := filepath.Base(filepath.Clean(cfg.SourceDir))
	h := translate.Project(infos, summary, fallback)
	return cheesepaper.WriteRecord(filepath.Join(cfg.DestDir, cheesepaper.ProjectFile), h)
}

// convertCharacters translates every character sheet and fills the identifier
// map. A sheet that turns out to be a directory is skipped with a warning.
func convertCharacters(srcDir, destDir string, normalize bool, res *Result, w io.Writer) error {
	matches, err := filepath.Glob(filepath.Join(srcDir, "*.txt"))
	if err != nil {
		return fmt.Errorf("listing %s: %w", srcDir, err)
	}

	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("checking %s: %w", path, err)
		}
		if info.IsDir() {
			res.warn(w, fmt.Sprintf("character file %s is a directory, skipping", path))
			continue
		}

		rec, err := parseHeaderFile(path, normalize)
		if err != nil {
			return err
		}
		h, pair, err := translate.Character(rec)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		res.CharacterIDs[pair.Old] = pair.New

		stem := strings.TrimSuffix(filepath.Base(path), ".txt")
		if err := cheesepaper.WriteRecord(filepath.Join(destDir, stem+".toml"), h); err != nil {
			return err
		}
		res.Characters++
		fmt.Fprintf(w, "character: %s\n", stem)
	}
	return nil
}

// parseHeaderFile reads a whole file as one header block.
func parseHeaderFile(path string, normalize bool) (*header.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	rec, err := header.Parse(string(data), normalize)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return rec, nil
}
