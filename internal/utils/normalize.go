package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict removes every HTML element and attribute; only text nodes survive.
var strict = bluemonday.StrictPolicy()

// StripMarkup trims surrounding whitespace and removes anything that could
// be interpreted as markup or script from a free-text input. Runs before
// validation so that length checks apply to the surviving text.
//
// Idempotent: stripping an already-stripped value returns it unchanged.
func StripMarkup(value string) string {
	return strings.TrimSpace(strict.Sanitize(strings.TrimSpace(value)))
}

// Escape trims the value and HTML-escapes the remaining special characters
// (<, >, &, quotes). This is the generic pass applied immediately before a
// value is compiled into a statement for storage. Entities already present
// are folded first so a second pass yields the same value.
func Escape(value string) string {
	return html.EscapeString(html.UnescapeString(strings.TrimSpace(value)))
}
