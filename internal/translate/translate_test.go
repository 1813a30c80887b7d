// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/manuskript-convert/internal/cheesepaper"
	"github.com/pdiddy/manuskript-convert/internal/header"
)

// rec builds a Record from alternating key/value pairs.
func rec(kv ...string) *header.Record {
	r := header.NewRecord()
	for i := 0; i < len(kv); i += 2 {
		r.Set(kv[i], kv[i+1])
	}
	return r
}

func getString(t *testing.T, h *cheesepaper.Header, key string) string {
	t.Helper()
	v, ok := h.Get(key)
	require.True(t, ok, "missing header key %q", key)
	s, ok := v.(string)
	require.True(t, ok, "header key %q is not a string", key)
	return s
}

func assertAbsent(t *testing.T, h *cheesepaper.Header, keys ...string) {
	t.Helper()
	for _, key := range keys {
		_, ok := h.Get(key)
		assert.False(t, ok, "header key %q should be absent", key)
	}
}

func TestCharacter(t *testing.T) {
	r := rec(
		"Name", "Alice",
		"ID", "3",
		"Phrase Summary", "short",
		"Paragraph Summary", "medium",
		"Full Summary", "long",
		"Notes", "some notes",
		"Motivation", "wants out",
		"Goal", "leave town",
		"Conflict", "cannot",
		"Epiphany", "learns to",
		"POV", "True",
		"Color", "#ff0000",
		"Importance", "2",
		"Eye Color", "green",
	)

	h, pair, err := Character(r)
	require.NoError(t, err)

	assert.Equal(t, "Alice", getString(t, h, "name"))
	assert.Equal(t, "short"+Separator+"medium"+Separator+"long", getString(t, h, "summary"))
	assert.Equal(t, "some notes", getString(t, h, "notes"))
	assert.Equal(t, "wants out"+Separator+"leave town", getString(t, h, "goal"))
	assert.Equal(t, "cannot"+Separator+"learns to", getString(t, h, "conflict"))

	ft, _ := h.Get("file_type")
	assert.Equal(t, cheesepaper.TypeCharacter, ft)

	// Unmapped source fields survive under their original key.
	assert.Equal(t, "green", getString(t, h, "Eye Color"))

	// Ignored fields and the old identifier are dropped.
	assertAbsent(t, h, "POV", "Color", "Importance", "ID", "Name")

	assert.Equal(t, "3", pair.Old)
	assert.Equal(t, h.ID(), pair.New)
	_, err = uuid.Parse(pair.New)
	assert.NoError(t, err)
}

func TestCharacterMinimal(t *testing.T) {
	h, pair, err := Character(rec("Name", "Bob", "ID", "7"))
	require.NoError(t, err)

	assert.Equal(t, "Bob", getString(t, h, "name"))
	assert.Equal(t, "7", pair.Old)
	// All summary-like inputs empty: the combined fields are omitted entirely.
	assertAbsent(t, h, "summary", "goal", "conflict", "notes")
}

func TestCharacterEmptySummariesOmitted(t *testing.T) {
	h, _, err := Character(rec("Name", "Bob", "ID", "7", "Phrase Summary", "", "Motivation", ""))
	require.NoError(t, err)
	assertAbsent(t, h, "summary", "goal")
}

func TestCharacterPartialSummary(t *testing.T) {
	h, _, err := Character(rec("Name", "Bob", "ID", "7", "Full Summary", "only this"))
	require.NoError(t, err)
	assert.Equal(t, "only this", getString(t, h, "summary"))
}

func TestCharacterMissingFields(t *testing.T) {
	_, _, err := Character(rec("Name", "NoID"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no ID field")

	_, _, err = Character(rec("ID", "1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no Name field")
}

func TestCharacterMintsUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		_, pair, err := Character(rec("Name", "N", "ID", fmt.Sprint(i)))
		require.NoError(t, err)
		assert.False(t, seen[pair.New], "new identifier minted twice")
		seen[pair.New] = true
	}
}

func TestScene(t *testing.T) {
	ids := IDMap{"2": "aaaa-bbbb"}
	r := rec(
		"title", "Opening",
		"type", "md",
		"summarySentence", "a start",
		"summaryFull", "a longer start",
		"notes", "todo",
		"compile", "1",
		"POV", "2",
		"label", "Idea",
		"status", "Draft",
		"setGoal", "500",
		"charCount", "1234",
		"ID", "40",
		"wordGoal", "800",
	)

	h, err := Scene(r, ids)
	require.NoError(t, err)

	assert.Equal(t, "Opening", getString(t, h, "name"))
	assert.Equal(t, "a start"+Separator+"a longer start", getString(t, h, "summary"))
	assert.Equal(t, "todo", getString(t, h, "notes"))

	status, ok := h.Get("compile_status")
	require.True(t, ok)
	assert.Equal(t, true, status)

	assert.Equal(t, "[|aaaa-bbbb]", getString(t, h, "pov"))

	ft, _ := h.Get("file_type")
	assert.Equal(t, cheesepaper.TypeScene, ft)

	assert.Equal(t, "800", getString(t, h, "wordGoal"))
	assertAbsent(t, h, "label", "status", "setGoal", "charCount", "ID", "title", "type", "compile", "POV")
}

func TestScenePOVUnknownIsDropped(t *testing.T) {
	h, err := Scene(rec("title", "S", "type", "md", "POV", "99"), IDMap{"2": "aaaa"})
	require.NoError(t, err)
	assertAbsent(t, h, "pov")
}

func TestSceneCompileStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{in: "0", want: false},
		{in: "1", want: true},
		{in: "2", want: true},
		{in: "-5", want: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("compile=%q", tt.in), func(t *testing.T) {
			h, err := Scene(rec("title", "S", "type", "md", "compile", tt.in), nil)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "not an integer")
				return
			}
			require.NoError(t, err)
			status, ok := h.Get("compile_status")
			require.True(t, ok)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestSceneWrongType(t *testing.T) {
	_, err := Scene(rec("title", "S", "type", "folder"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown scene type "folder"`)

	_, err = Scene(rec("title", "S"), nil)
	assert.Error(t, err)
}

func TestFolder(t *testing.T) {
	ids := IDMap{"old": "minted"}
	h, err := Folder(rec("title", "Act I", "type", "folder", "POV", "old", "compile", "0"), ids)
	require.NoError(t, err)

	assert.Equal(t, "Act I", getString(t, h, "name"))
	ft, _ := h.Get("file_type")
	assert.Equal(t, cheesepaper.TypeFolder, ft)
	assert.Equal(t, "[|minted]", getString(t, h, "pov"))

	status, ok := h.Get("compile_status")
	require.True(t, ok)
	assert.Equal(t, false, status)
}

func TestFolderWrongType(t *testing.T) {
	_, err := Folder(rec("title", "Act I", "type", "md"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown folder type "md"`)
}

func TestProject(t *testing.T) {
	infos := rec(
		"Title", "The Book",
		"Subtitle", "A Story",
		"Serie", "Cycle",
		"Volume", "2",
		"Genre", "fantasy",
		"Author", "A. Writer",
		"Email", "a@example.com",
		"License", "CC0",
		"Custom", "kept",
	)
	summary := rec(
		"Situation", "a land",
		"Sentence", "one line",
		"Full", "many lines",
		"Unrelated", "never copied",
	)

	h := Project(infos, summary, "fallback")

	assert.Equal(t, "The Book: A Story", getString(t, h, "name"))
	assert.Equal(t, "Cycle", getString(t, h, "series"))
	assert.Equal(t, "2", getString(t, h, "volume"))
	assert.Equal(t, "fantasy", getString(t, h, "genre"))
	assert.Equal(t, "A. Writer", getString(t, h, "author"))
	assert.Equal(t, "a@example.com", getString(t, h, "email"))
	assert.Equal(t, "a land"+Separator+"one line"+Separator+"many lines", getString(t, h, "summary"))
	assert.Equal(t, "kept", getString(t, h, "Custom"))

	ft, _ := h.Get("file_type")
	assert.Equal(t, cheesepaper.TypeScene, ft, "the project record is stored as a scene")

	assertAbsent(t, h, "License", "Title", "Subtitle", "Serie", "Unrelated")
}

func TestProjectName(t *testing.T) {
	tests := []struct {
		name  string
		infos *header.Record
		want  string
	}{
		{"title only", rec("Title", "Solo"), "Solo"},
		{"subtitle only", rec("Subtitle", "Tagline"), "Tagline"},
		{"neither falls back to directory name", rec("Author", "X"), "my-project"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Project(tt.infos, header.NewRecord(), "my-project")
			assert.Equal(t, tt.want, getString(t, h, "name"))
		})
	}
}

func TestProjectSeriesPrefersModernSpelling(t *testing.T) {
	h := Project(rec("Title", "T", "Series", "New", "Serie", "Old"), header.NewRecord(), "x")
	assert.Equal(t, "New", getString(t, h, "series"))
}

func TestProjectEmptySummaryOmitted(t *testing.T) {
	h := Project(rec("Title", "T"), rec("Situation", ""), "x")
	assertAbsent(t, h, "summary")
}

func TestWorldbuilding(t *testing.T) {
	r := rec(
		"name", "  The North  ",
		"passion", "old magic",
		"description", "cold and vast",
		"conflict", "borders the South",
		"ID", "12",
		"climate", "arctic",
	)

	h := Worldbuilding(r)

	assert.Equal(t, "The North", getString(t, h, "name"))
	assert.Equal(t, "old magic", getString(t, h, "notes"))
	assert.Equal(t, "cold and vast", getString(t, h, "description"))
	assert.Equal(t, "borders the South", getString(t, h, "connection"))
	assert.Equal(t, "arctic", getString(t, h, "climate"))

	ft, _ := h.Get("file_type")
	assert.Equal(t, cheesepaper.TypeWorldbuilding, ft)

	assertAbsent(t, h, "ID", "passion", "conflict")
}

func TestWorldbuildingUnnamed(t *testing.T) {
	h := Worldbuilding(rec("name", "   ", "description", "misty"))
	assertAbsent(t, h, "name")
	assert.Equal(t, "misty", getString(t, h, "description"))
}

func TestWorldbuildingEmptyAttributesOmitted(t *testing.T) {
	h := Worldbuilding(rec("name", "Keep", "passion", "", "description", "", "conflict", ""))
	assert.Equal(t, "Keep", getString(t, h, "name"))
	assertAbsent(t, h, "notes", "description", "connection")
}
