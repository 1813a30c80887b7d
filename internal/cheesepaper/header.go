// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cheesepaper writes the destination project layout: TOML metadata
// headers, the header/body split marker, and the fixed directory scaffold.
package cheesepaper

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
)

const (
	// HeaderSplit separates the TOML header from the body text in a scene file.
	HeaderSplit = "++++++++"

	// FileFormatVersion is written into every metadata header.
	FileFormatVersion = 1

	// ProjectFile is the project metadata record at the destination root.
	ProjectFile = "project.toml"

	// MetadataFile is the per-folder metadata record.
	MetadataFile = "metadata.toml"

	// TextDir, CharactersDir and WorldbuildingDir are the fixed destination
	// subdirectories.
	TextDir          = "text"
	CharactersDir    = "characters"
	WorldbuildingDir = "worldbuilding"
)

// File types recognized by cheese-paper.
const (
	TypeCharacter     = "character"
	TypeScene         = "scene"
	TypeFolder        = "folder"
	TypeWorldbuilding = "worldbuilding"
)

type headerField struct {
	key   string
	value any
}

// Header is a canonical entity header: an ordered key/value record that is
// built once, encoded to TOML, and discarded. Values are strings, booleans,
// or integers.
type Header struct {
	fields []headerField
}

// NewHeader returns a Header seeded with a freshly minted id, the given file
// type, and the current file format version.
func NewHeader(fileType string) *Header {
	h := &Header{}
	h.Set("id", uuid.NewString())
	h.Set("file_type", fileType)
	h.Set("file_format_version", int64(FileFormatVersion))
	return h
}

// Set stores value under key, overwriting in place when the key exists.
func (h *Header) Set(key string, value any) {
	for i := range h.fields {
		if h.fields[i].key == key {
			h.fields[i].value = value
			return
		}
	}
	h.fields = append(h.fields, headerField{key: key, value: value})
}

// Get returns the value stored under key and whether the key is present.
func (h *Header) Get(key string) (any, bool) {
	for i := range h.fields {
		if h.fields[i].key == key {
			return h.fields[i].value, true
		}
	}
	return nil, false
}

// ID returns the header's minted identifier.
func (h *Header) ID() string {
	v, _ := h.Get("id")
	s, _ := v.(string)
	return s
}

// Encode renders the header as TOML, one key per line, preserving insertion
// order. Each field is marshaled on its own so the encoder's alphabetical map
// ordering never reshuffles the record.
func (h *Header) Encode() ([]byte, error) {
	var buf bytes.Buffer
	for _, f := range h.fields {
		line, err := toml.Marshal(map[string]any{f.key: f.value})
		if err != nil {
			return nil, fmt.Errorf("encoding header field %q: %w", f.key, err)
		}
		buf.Write(line)
	}
	return buf.Bytes(), nil
}
