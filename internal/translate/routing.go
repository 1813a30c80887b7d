// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package translate maps legacy Manuskript header dialects onto canonical
// cheese-paper headers. Each entity kind declares a routing table; anything
// the table does not claim passes through under its original key, so unknown
// source fields survive the conversion.
package translate

import (
	"strings"

	"github.com/pdiddy/manuskript-convert/internal/cheesepaper"
	"github.com/pdiddy/manuskript-convert/internal/header"
)

// Separator joins multiple legacy fields routed into a single destination
// field.
const Separator = "\n\n----\n\n"

// rule routes one or more source fields into a destination field. Without
// join, the first source key present in the record wins, empty value or not.
// With join, the non-empty source values are concatenated with Separator and
// the destination is omitted when nothing remains.
type rule struct {
	target  string
	sources []string
	join    bool
}

// routing is a declarative field map for one entity kind. claimed lists
// source keys the translator consumes in code (titles, type tags, POV);
// ignored lists source keys with no destination equivalent.
type routing struct {
	rules   []rule
	claimed []string
	ignored []string
}

// applyRules evaluates every rule of the table against rec.
func (r routing) applyRules(rec *header.Record, h *cheesepaper.Header) {
	for _, ru := range r.rules {
		if ru.join {
			var parts []string
			for _, src := range ru.sources {
				if v, ok := rec.Get(src); ok && v != "" {
					parts = append(parts, v)
				}
			}
			if len(parts) > 0 {
				h.Set(ru.target, strings.Join(parts, Separator))
			}
			continue
		}
		for _, src := range ru.sources {
			if v, ok := rec.Get(src); ok {
				h.Set(ru.target, v)
				break
			}
		}
	}
}

// passthrough copies every source field the table does not account for into
// h under its original key.
func (r routing) passthrough(rec *header.Record, h *cheesepaper.Header) {
	for _, f := range rec.Fields() {
		if r.consumed(f.Key) {
			continue
		}
		h.Set(f.Key, f.Value)
	}
}

// apply runs the rules and then the passthrough.
func (r routing) apply(rec *header.Record, h *cheesepaper.Header) {
	r.applyRules(rec, h)
	r.passthrough(rec, h)
}

// consumed reports whether the table accounts for the source key.
func (r routing) consumed(key string) bool {
	for _, ru := range r.rules {
		for _, src := range ru.sources {
			if src == key {
				return true
			}
		}
	}
	for _, k := range r.claimed {
		if k == key {
			return true
		}
	}
	for _, k := range r.ignored {
		if k == key {
			return true
		}
	}
	return false
}
