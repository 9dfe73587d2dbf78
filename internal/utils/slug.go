package utils

import "github.com/gosimple/slug"

// Sluggify derives the URL-safe identifier for a team name: lowercase,
// transliterated to ASCII, whitespace and special characters collapsed to
// single hyphens, leading/trailing separators trimmed.
//
// The derivation is deterministic and must always run on the raw display
// name, before any HTML escaping, so that two differently-escaped inputs
// cannot collapse to the same slug through different routes.
func Sluggify(name string) string {
	return slug.Make(name)
}
