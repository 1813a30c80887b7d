// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package header parses the Manuskript header micro-format.
//
// A header block is a sequence of entries. An entry begins with a key at
// column 0, runs to the first colon on that line, and its value continues
// across every following line that starts with whitespace (blank lines
// included). Leading and trailing spaces are stripped from each line of a
// value; keys are kept verbatim, trailing spaces and all.
package header

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field is one key/value pair of a header block.
type Field struct {
	Key   string
	Value string
}

// Record is an ordered set of header fields. Keys are unique: setting an
// existing key overwrites its value in place, keeping the original position.
type Record struct {
	fields []Field
	index  map[string]int
}

// NewRecord returns an empty Record.
func NewRecord() *Record {
	return &Record{index: make(map[string]int)}
}

// Set stores value under key, appending a new field or overwriting in place.
func (r *Record) Set(key, value string) {
	if i, ok := r.index[key]; ok {
		r.fields[i].Value = value
		return
	}
	r.index[key] = len(r.fields)
	r.fields = append(r.fields, Field{Key: key, Value: value})
}

// Get returns the value stored under key and whether the key is present.
func (r *Record) Get(key string) (string, bool) {
	i, ok := r.index[key]
	if !ok {
		return "", false
	}
	return r.fields[i].Value, true
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.index[key]
	return ok
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.fields)
}

// Fields returns the fields in insertion order.
func (r *Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// newlineRun matches one or more consecutive newlines.
var newlineRun = regexp.MustCompile(`\n+`)

// Normalize collapses every run of newlines to exactly two, turning any
// vertical spacing into a single paragraph break. Idempotent.
func Normalize(s string) string {
	return newlineRun.ReplaceAllString(s, "\n\n")
}

// Parse reads a raw header block into a Record. When normalize is true,
// newline runs inside values are collapsed via Normalize. An entry without a
// colon is an error.
func Parse(raw string, normalize bool) (*Record, error) {
	rec := NewRecord()
	for _, entry := range splitEntries(raw) {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		key, rest, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("header entry %q has no colon", entry)
		}
		value := stripLines(rest)
		if normalize {
			value = Normalize(value)
		}
		rec.Set(key, value)
	}
	return rec, nil
}

// splitEntries cuts raw at every newline that is not followed by a whitespace
// character, so a new entry starts only at column 0. A newline followed by
// whitespace (indented continuation, or another newline) stays inside the
// current entry.
func splitEntries(raw string) []string {
	var entries []string
	start := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\n' {
			continue
		}
		if i+1 < len(raw) {
			r, _ := utf8.DecodeRuneInString(raw[i+1:])
			if unicode.IsSpace(r) {
				continue
			}
		}
		entries = append(entries, raw[start:i])
		start = i + 1
	}
	if start < len(raw) {
		entries = append(entries, raw[start:])
	}
	return entries
}

// stripLines removes leading and trailing spaces from every line of v.
func stripLines(v string) string {
	lines := strings.Split(v, "\n")
	for i, line := range lines {
		lines[i] = strings.Trim(line, " ")
	}
	return strings.Join(lines, "\n")
}
