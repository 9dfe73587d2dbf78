// Package validators implements shape validation and cross-field rules for
// inbound team and game payloads. Field-level failures are accumulated into
// a single models.ValidationErrors batch; cross-field rules run only once
// the shape batch is clean and fail one at a time.
package validators

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/arnarb/leikir-api/models"
)

// Field name constants used in validation messages and error bodies.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldDate        = "date"
	FieldHomeName    = "home.name"
	FieldAwayName    = "away.name"
	FieldHomeScore   = "home.score"
	FieldAwayScore   = "away.score"
	FieldBody        = "body"
)

// Score bounds for a single side of a game.
const (
	MinScore = 0
	MaxScore = 99
)

// dateLayouts is the accepted set of calendar formats, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// StringRule checks a single optional-string field: presence (unless
// Optional), and inclusive trimmed-length bounds. A zero Min or Max disables
// that bound.
type StringRule struct {
	Field     string
	MinLength int
	MaxLength int
	Optional  bool
}

// Check returns nil on pass, or the field failure.
func (r StringRule) Check(v models.OptionalString) *models.FieldError {
	if !v.Present {
		if r.Optional {
			return nil
		}
		return &models.FieldError{Field: r.Field, Message: r.message()}
	}

	length := utf8.RuneCountInString(strings.TrimSpace(v.Value))
	if r.MinLength > 0 && length < r.MinLength {
		return &models.FieldError{Field: r.Field, Message: r.message()}
	}
	if r.MaxLength > 0 && length > r.MaxLength {
		return &models.FieldError{Field: r.Field, Message: r.message()}
	}

	return nil
}

func (r StringRule) message() string {
	parts := []string{r.Field}
	if r.MinLength > 0 {
		parts = append(parts, fmt.Sprintf("min %d characters", r.MinLength))
	}
	if r.MaxLength > 0 {
		parts = append(parts, fmt.Sprintf("max %d characters", r.MaxLength))
	}
	return strings.Join(parts, " ")
}

// ScoreRule checks an optional-int score field against [MinScore, MaxScore].
type ScoreRule struct {
	Field    string
	Optional bool
}

func (r ScoreRule) Check(v models.OptionalInt) *models.FieldError {
	if !v.Present {
		if r.Optional {
			return nil
		}
		return &models.FieldError{Field: r.Field, Message: r.message()}
	}
	if v.Value < MinScore || v.Value > MaxScore {
		return &models.FieldError{Field: r.Field, Message: r.message()}
	}
	return nil
}

func (r ScoreRule) message() string {
	return fmt.Sprintf("%s must be an integer between %d and %d", r.Field, MinScore, MaxScore)
}

// DateRule checks that an optional-string date field parses as a calendar
// timestamp. An unparseable value is a validation failure, never a crash.
type DateRule struct {
	Field    string
	Optional bool
}

func (r DateRule) Check(v models.OptionalString) *models.FieldError {
	if !v.Present {
		if r.Optional {
			return nil
		}
		return &models.FieldError{Field: r.Field, Message: r.message()}
	}
	if _, err := ParseDate(v.Value); err != nil {
		return &models.FieldError{Field: r.Field, Message: r.message()}
	}
	return nil
}

func (r DateRule) message() string {
	return r.Field + " must be a valid date"
}

// ParseDate parses a submitted date using the accepted layouts.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// AtLeastOneOf fails unless at least one of the named fields is present in
// the payload. Used for PATCH bodies where every field is individually
// optional but the request as a whole must carry something to change.
func AtLeastOneOf(present map[string]bool, fields ...string) *models.FieldError {
	for _, f := range fields {
		if present[f] {
			return nil
		}
	}
	return &models.FieldError{
		Field:   FieldBody,
		Message: "require at least one value of: " + strings.Join(fields, ", "),
	}
}

// DistinctSides fails when both side names are supplied and equal: a team
// cannot play itself. Either side may be absent without raising.
func DistinctSides(home, away models.OptionalString) *models.FieldError {
	if !home.Present || !away.Present {
		return nil
	}
	if strings.TrimSpace(home.Value) == strings.TrimSpace(away.Value) {
		return &models.FieldError{
			Field:   FieldHomeName,
			Message: "home and away teams must differ",
		}
	}
	return nil
}
