package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeJSON unmarshals a model response into target, tolerating the usual
// decoration: markdown code fences, a "json" language tag, and prose around
// a single top-level JSON object or array.
func DecodeJSON(text string, target any) error {
	cleaned := strings.TrimSpace(text)

	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		if idx := strings.LastIndex(cleaned, "```"); idx >= 0 {
			cleaned = cleaned[:idx]
		}
		cleaned = strings.TrimSpace(cleaned)
	}

	if err := json.Unmarshal([]byte(cleaned), target); err == nil {
		return nil
	}

	// Fall back to the outermost object or array embedded in prose.
	start := strings.IndexAny(cleaned, "{[")
	if start < 0 {
		return fmt.Errorf("no JSON payload in model response")
	}
	var end int
	if cleaned[start] == '{' {
		end = strings.LastIndex(cleaned, "}")
	} else {
		end = strings.LastIndex(cleaned, "]")
	}
	if end <= start {
		return fmt.Errorf("unterminated JSON payload in model response")
	}
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), target); err != nil {
		return fmt.Errorf("malformed JSON in model response: %w", err)
	}
	return nil
}
