// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"github.com/pdiddy/manuskript-convert/internal/cheesepaper"
	"github.com/pdiddy/manuskript-convert/internal/header"
)

// projectRouting maps infos.txt. Manuskript 0.17.0 writes the series field as
// "Serie"; "Series" is accepted first in case a later version fixes the name.
var projectRouting = routing{
	rules: []rule{
		{target: "series", sources: []string{"Series", "Serie"}},
		{target: "volume", sources: []string{"Volume"}},
		{target: "genre", sources: []string{"Genre"}},
		{target: "author", sources: []string{"Author"}},
		{target: "email", sources: []string{"Email"}},
	},
	claimed: []string{"Title", "Subtitle"},
	ignored: []string{"License"},
}

// projectSummaryRouting maps summary.txt. Only the graded summaries are
// taken; nothing else from that file passes through.
var projectSummaryRouting = routing{
	rules: []rule{
		{target: "summary", sources: []string{"Situation", "Sentence", "Paragraph", "Page", "Full"}, join: true},
	},
}

// Project converts the infos.txt and summary.txt records into the project
// header. fallbackName is used when the infos record carries no title at all.
// The project record is marked as a scene, which is how cheese-paper stores
// its project metadata.
func Project(infos, summary *header.Record, fallbackName string) *cheesepaper.Header {
	h := cheesepaper.NewHeader(cheesepaper.TypeScene)

	title, hasTitle := infos.Get("Title")
	subtitle, hasSubtitle := infos.Get("Subtitle")
	switch {
	case hasTitle && hasSubtitle:
		// No subtitle support in cheese-paper; fold it into the name.
		h.Set("name", title+": "+subtitle)
	case hasTitle:
		h.Set("name", title)
	case hasSubtitle:
		h.Set("name", subtitle)
	default:
		h.Set("name", fallbackName)
	}

	projectRouting.apply(infos, h)
	projectSummaryRouting.applyRules(summary, h)

	return h
}
