package api

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// multipleProjectsMarker is the phrase the backend puts in a 400 error
// when an API key spans several projects and no project_id was given.
// The message lists candidates as "Name (uuid)" pairs.
//
// This is fragile coupling to the backend's wording. ParseProjectEntries
// and InferProjectID are the only code that touches the format, so a
// structured candidate list from the API can replace them without
// changing any call site.
const multipleProjectsMarker = "Multiple projects found"

// ProjectEntry is one candidate parsed out of an ambiguity error.
// Entries live only for the duration of a single disambiguation
// attempt and are never persisted.
type ProjectEntry struct {
	ID   string
	Name string
}

// projectEntryPattern matches "<name> (<uuid>)" occurrences. The name
// part stops at separators so comma-joined lists split cleanly; the id
// is matched case-insensitively and validated with uuid.Parse below.
var projectEntryPattern = regexp.MustCompile(`(?i)([^,:;()]+?)\s*\(([0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12})\)`)

// ParseProjectEntries extracts candidate projects from an ambiguity
// error message, in document order. Names are trimmed, identifiers
// kept verbatim. Duplicates are not collapsed; inference sees the
// list exactly as the backend wrote it.
func ParseProjectEntries(message string) []ProjectEntry {
	matches := projectEntryPattern.FindAllStringSubmatch(message, -1)
	var entries []ProjectEntry
	for _, m := range matches {
		if _, err := uuid.Parse(m[2]); err != nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		entries = append(entries, ProjectEntry{ID: m[2], Name: name})
	}
	return entries
}

// normalizeName lowercases and strips spaces, hyphens and underscores
// so "My Cool App", "my-cool-app" and "MyCoolApp" compare equal.
func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(s))
}

// InferProjectID picks the candidate matching contextName, usually the
// working directory name. Exact normalized match wins; otherwise the
// first entry whose normalized name contains or is contained by the
// context wins. Returns "" when nothing matches, which tells the
// caller to surface the ambiguity to the user untouched.
//
// Best effort only: two projects whose names are substrings of each
// other can mis-resolve, and first-match-wins is deliberate.
func InferProjectID(entries []ProjectEntry, contextName string) string {
	ctx := normalizeName(contextName)
	if ctx == "" {
		return ""
	}

	for _, e := range entries {
		if normalizeName(e.Name) == ctx {
			return e.ID
		}
	}

	for _, e := range entries {
		name := normalizeName(e.Name)
		if name == "" {
			continue
		}
		if strings.Contains(ctx, name) || strings.Contains(name, ctx) {
			return e.ID
		}
	}

	return ""
}

// IsAmbiguityError reports whether a backend error message indicates
// the multiple-projects condition.
func IsAmbiguityError(message string) bool {
	return strings.Contains(message, multipleProjectsMarker)
}
