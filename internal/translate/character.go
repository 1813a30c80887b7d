// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"fmt"

	"github.com/pdiddy/manuskript-convert/internal/cheesepaper"
	"github.com/pdiddy/manuskript-convert/internal/header"
)

// IDMap maps old free-text character identifiers to freshly minted ones.
// Built during the character pass, read-only afterwards.
type IDMap map[string]string

// IDPair is one old-identifier/new-identifier mapping.
type IDPair struct {
	Old string
	New string
}

// characterRouting maps the Manuskript character sheet dialect. Manuskript
// keeps several graded summaries; they are combined in ascending-detail order.
var characterRouting = routing{
	rules: []rule{
		{target: "summary", sources: []string{"Phrase Summary", "Paragraph Summary", "Full Summary"}, join: true},
		{target: "notes", sources: []string{"Notes"}},
		{target: "goal", sources: []string{"Motivation", "Goal"}, join: true},
		{target: "conflict", sources: []string{"Conflict", "Epiphany"}, join: true},
	},
	claimed: []string{"Name", "ID"},
	ignored: []string{"POV", "Color", "Importance"},
}

// Character converts a parsed character sheet into a canonical header and
// returns the identifier pair for the remap table.
func Character(rec *header.Record) (*cheesepaper.Header, IDPair, error) {
	oldID, ok := rec.Get("ID")
	if !ok {
		return nil, IDPair{}, fmt.Errorf("character sheet has no ID field")
	}
	name, ok := rec.Get("Name")
	if !ok {
		return nil, IDPair{}, fmt.Errorf("character sheet has no Name field")
	}

	h := cheesepaper.NewHeader(cheesepaper.TypeCharacter)
	h.Set("name", name)
	characterRouting.apply(rec, h)

	return h, IDPair{Old: oldID, New: h.ID()}, nil
}
