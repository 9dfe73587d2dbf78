package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalString_Decode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		present bool
		value   string
	}{
		{name: "supplied string", body: `{"name":"Boltaliðið"}`, present: true, value: "Boltaliðið"},
		{name: "empty string counts as supplied", body: `{"name":""}`, present: true, value: ""},
		{name: "absent field", body: `{}`, present: false},
		{name: "explicit null", body: `{"name":null}`, present: false},
		{name: "number collapses to absent", body: `{"name":42}`, present: false},
		{name: "object collapses to absent", body: `{"name":{"x":1}}`, present: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				Name OptionalString `json:"name"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.body), &payload))
			assert.Equal(t, tt.present, payload.Name.Present)
			assert.Equal(t, tt.value, payload.Name.Value)
		})
	}
}

func TestOptionalInt_Decode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		present bool
		value   int
	}{
		{name: "supplied number", body: `{"score":2}`, present: true, value: 2},
		{name: "zero counts as supplied", body: `{"score":0}`, present: true, value: 0},
		{name: "integer-valued string accepted", body: `{"score":" 7 "}`, present: true, value: 7},
		{name: "absent field", body: `{}`, present: false},
		{name: "explicit null", body: `{"score":null}`, present: false},
		{name: "fraction collapses to absent", body: `{"score":1.5}`, present: false},
		{name: "non-numeric string collapses to absent", body: `{"score":"two"}`, present: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				Score OptionalInt `json:"score"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.body), &payload))
			assert.Equal(t, tt.present, payload.Score.Present)
			assert.Equal(t, tt.value, payload.Score.Value)
		})
	}
}

func TestGamePayload_Decode(t *testing.T) {
	body := `{"date":"2026-03-01","home":{"name":"Boltaliðið","score":2},"away":{"name":"Dripplararnir","score":"1"}}`

	var payload GamePayload
	require.NoError(t, json.Unmarshal([]byte(body), &payload))

	assert.True(t, payload.Date.Present)
	assert.True(t, payload.Home.Present())
	assert.Equal(t, "Boltaliðið", payload.Home.Name.Value)
	assert.Equal(t, 2, payload.Home.Score.Value)
	assert.Equal(t, 1, payload.Away.Score.Value)
}

func TestGamePayload_NonObjectSideCollapses(t *testing.T) {
	body := `{"home":"not an object","away":{"score":1}}`

	var payload GamePayload
	require.NoError(t, json.Unmarshal([]byte(body), &payload))

	assert.False(t, payload.Home.Present())
	assert.True(t, payload.Away.Present())
	assert.False(t, payload.Away.Name.Present)
}

func TestGamePayload_EmptyBody(t *testing.T) {
	var payload GamePayload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &payload))

	assert.False(t, payload.Date.Present)
	assert.False(t, payload.Home.Present())
	assert.False(t, payload.Away.Present())
}
