package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

var jsonNull = []byte("null")

// OptionalString is a request-body field that distinguishes "supplied as a
// string" from "absent". JSON null and non-string values collapse to absent
// instead of failing the decode, so a partial update never overwrites a field
// the caller did not explicitly supply.
type OptionalString struct {
	Value   string
	Present bool
}

func (o *OptionalString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, jsonNull) {
		*o = OptionalString{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		// wrong type counts as not supplied
		*o = OptionalString{}
		return nil
	}

	*o = OptionalString{Value: s, Present: true}
	return nil
}

func (o OptionalString) MarshalJSON() ([]byte, error) {
	if !o.Present {
		return jsonNull, nil
	}
	return json.Marshal(o.Value)
}

// OptionalInt is a request-body field holding an integer. JSON numbers and
// integer-valued strings are accepted; null, fractional numbers, and any
// other shape collapse to absent.
type OptionalInt struct {
	Value   int
	Present bool
}

func (o *OptionalInt) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, jsonNull) {
		*o = OptionalInt{}
		return nil
	}

	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*o = OptionalInt{Value: n, Present: true}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if v, convErr := strconv.Atoi(strings.TrimSpace(s)); convErr == nil {
			*o = OptionalInt{Value: v, Present: true}
			return nil
		}
	}

	*o = OptionalInt{}
	return nil
}

func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Present {
		return jsonNull, nil
	}
	return json.Marshal(o.Value)
}
