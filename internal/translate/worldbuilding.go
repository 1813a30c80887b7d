// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"strings"

	"github.com/pdiddy/manuskript-convert/internal/cheesepaper"
	"github.com/pdiddy/manuskript-convert/internal/header"
)

// worldRouting maps a worldbuilding element's attributes. The "passion"
// attribute has no obvious meaning; the original converter filed it under
// notes and that mapping is kept. "conflict" becomes a connection here, not a
// conflict; the worldbuilding schema has no conflict field.
var worldRouting = routing{
	rules: []rule{
		{target: "notes", sources: []string{"passion"}, join: true},
		{target: "description", sources: []string{"description"}, join: true},
		{target: "connection", sources: []string{"conflict"}, join: true},
	},
	claimed: []string{"name"},
	ignored: []string{"ID"},
}

// Worldbuilding converts a worldbuilding element's attribute record into a
// canonical header. An unnamed element gets no name field.
func Worldbuilding(rec *header.Record) *cheesepaper.Header {
	h := cheesepaper.NewHeader(cheesepaper.TypeWorldbuilding)

	if name, ok := rec.Get("name"); ok {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			h.Set("name", trimmed)
		}
	}

	worldRouting.apply(rec, h)
	return h
}
