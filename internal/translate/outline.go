// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/manuskript-convert/internal/cheesepaper"
	"github.com/pdiddy/manuskript-convert/internal/header"
)

// outlineRouting covers both outline dialects; scene and folder headers use
// the same field names.
var outlineRouting = routing{
	rules: []rule{
		{target: "summary", sources: []string{"summarySentence", "summaryFull"}, join: true},
		{target: "notes", sources: []string{"notes"}},
	},
	claimed: []string{"title", "type", "compile", "POV"},
	ignored: []string{"ID", "label", "status", "setGoal", "charCount"},
}

// Scene converts a parsed outline text entry, resolving the POV reference
// through ids.
func Scene(rec *header.Record, ids IDMap) (*cheesepaper.Header, error) {
	return outlineEntry(rec, ids, "md", cheesepaper.TypeScene)
}

// Folder converts a parsed folder.txt entry, resolving the POV reference
// through ids.
func Folder(rec *header.Record, ids IDMap) (*cheesepaper.Header, error) {
	return outlineEntry(rec, ids, "folder", cheesepaper.TypeFolder)
}

func outlineEntry(rec *header.Record, ids IDMap, wantType, fileType string) (*cheesepaper.Header, error) {
	typ, _ := rec.Get("type")
	if typ != wantType {
		return nil, fmt.Errorf("unknown %s type %q", fileType, typ)
	}
	title, ok := rec.Get("title")
	if !ok {
		return nil, fmt.Errorf("%s entry has no title field", fileType)
	}

	h := cheesepaper.NewHeader(fileType)
	h.Set("name", title)
	outlineRouting.applyRules(rec, h)

	if v, ok := rec.Get("compile"); ok {
		status, err := compileStatus(v)
		if err != nil {
			return nil, err
		}
		h.Set("compile_status", status)
	}

	// POV references the old character identifier; rewrite it to the minted
	// one. An identifier the map does not know is dropped rather than carried
	// over broken.
	if old, ok := rec.Get("POV"); ok {
		if minted, ok := ids[old]; ok {
			h.Set("pov", "[|"+minted+"]")
		}
	}

	outlineRouting.passthrough(rec, h)
	return h, nil
}

// compileStatus decodes Manuskript's integer-coded compile flag: "0" is
// false, any other integer is true, anything else is an error.
func compileStatus(v string) (bool, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("compile field %q is not an integer", v)
	}
	return n != 0, nil
}
