package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	cases := map[string]struct {
		in   string
		want string
	}{
		"bare object":      {`{"a":1}`, `{"a":1}`},
		"bare array":       {`[1,2]`, `[1,2]`},
		"markdown fences":  {"```json\n{\"a\":1}\n```", `{"a":1}`},
		"surrounding text": {`Sure, here is the JSON: {"a":1}. Enjoy!`, `{"a":1}`},
		"array before object": {
			`[{"a":1},{"b":2}] trailing`,
			`[{"a":1},{"b":2}]`,
		},
		"object before array": {
			`{"recipes":[{"a":1}]}`,
			`{"recipes":[{"a":1}]}`,
		},
		"no envelope": {"plain text", "plain text"},
		"whitespace":  {"  {\"a\":1}  ", `{"a":1}`},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractJSONObject(tc.in))
		})
	}
}

func TestParseJSONKeepsNumbers(t *testing.T) {
	var v map[string]any
	require.NoError(t, ParseJSON(`{"calories":200.5,"count":3}`, &v))

	n, ok := v["calories"].(json.Number)
	require.True(t, ok, "numbers must decode as json.Number")
	f, err := n.Float64()
	require.NoError(t, err)
	assert.Equal(t, 200.5, f)
}

func TestParseJSONRejectsTrailingData(t *testing.T) {
	var v map[string]any
	assert.Error(t, ParseJSON(`{"a":1}{"b":2}`, &v))
	assert.Error(t, ParseJSON(`{"a":1} garbage`, &v))
	assert.NoError(t, ParseJSON("{\"a\":1}\n\n", &v))
}

func TestToJSONDeterministic(t *testing.T) {
	type q struct {
		B string `json:"b"`
		A string `json:"a"`
	}
	first, err := ToJSON(q{B: "2", A: "1"})
	require.NoError(t, err)
	second, err := ToJSON(q{B: "2", A: "1"})
	require.NoError(t, err)
	assert.Equal(t, first, second, "struct marshaling keeps field order stable")
}
