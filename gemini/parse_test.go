package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		err  bool
	}{
		{"plain", `{"a":1}`, `{"a":1}`, false},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`, false},
		{"prose around", `Here is the analysis you asked for: {"a":1} Hope that helps!`, `{"a":1}`, false},
		{"nested braces", `result: {"a":{"b":2}}`, `{"a":{"b":2}}`, false},
		{"no object", "sorry, I can't help with that", "", true},
		{"reversed braces", "} nothing here {", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONObject(tt.in)
			if tt.err {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "no valid JSON found")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	got, err := ExtractJSONArray("```json\n[\"a\", \"b\"]\n```")
	require.NoError(t, err)
	assert.Equal(t, `["a", "b"]`, got)

	_, err = ExtractJSONArray(`{"not": "an array"}`)
	require.Error(t, err)
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "Hindi (हिंदी)", LanguageName("hi"))
	assert.Equal(t, "Tamil (தமிழ்)", LanguageName("ta"))
	assert.Equal(t, "English", LanguageName("en"))
	// Unknown codes pass through for the prompt to handle.
	assert.Equal(t, "xx", LanguageName("xx"))
}
