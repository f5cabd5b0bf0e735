package gemini

import (
	"fmt"
	"strings"
)

// The model wraps JSON in prose and code fences more often than not. These
// helpers cut the first balanced-looking object or array out of free text.

// ExtractJSONObject returns the substring from the first "{" to the last "}".
func ExtractJSONObject(text string) (string, error) {
	return extractBetween(text, "{", "}")
}

// ExtractJSONArray returns the substring from the first "[" to the last "]".
func ExtractJSONArray(text string) (string, error) {
	return extractBetween(text, "[", "]")
}

func extractBetween(text, open, close string) (string, error) {
	text = stripCodeFences(text)

	start := strings.Index(text, open)
	end := strings.LastIndex(text, close)
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no valid JSON found in response")
	}
	return text[start : end+1], nil
}

func stripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
