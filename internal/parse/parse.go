package parse

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripCodeFences removes a Markdown code-fence wrapper (``` or ```json) if
// the text is fenced; otherwise it returns the trimmed input unchanged.
func StripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// language tag on the opening fence, e.g. ```json
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		first := strings.TrimSpace(s[:idx])
		if first == "" || isFenceTag(first) {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func isFenceTag(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// Structured is the first parse stage: strip fences, then strict JSON. The
// parsed value must be a JSON object; anything else is an error, never a
// panic, so the caller can fall through to the unstructured stage.
func Structured(raw string) (map[string]any, error) {
	s := StripCodeFences(raw)
	if s == "" {
		return nil, fmt.Errorf("empty response text")
	}
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("not valid JSON: %w", err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("JSON value is not an object")
	}
	return obj, nil
}
