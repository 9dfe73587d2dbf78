package models

// Team is a registered team as stored in the "teams" table.
//
// Slug is derived from Name (lowercase, transliterated, hyphen-joined) and is
// unique across all teams; it is the public identifier used in URLs.
type Team struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
