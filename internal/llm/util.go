package llm

import "strings"

// StripJSONFences removes markdown code fences around a JSON payload.
// Models often return ```json ... ``` blocks even when told not to.
func StripJSONFences(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	return text
}

// ExtractJSONObject trims any prose surrounding the outermost JSON object.
// Returns the input unchanged when no braces are found.
func ExtractJSONObject(text string) string {
	text = StripJSONFences(text)

	if start := strings.Index(text, "{"); start >= 0 {
		text = text[start:]
	}
	if end := strings.LastIndex(text, "}"); end >= 0 {
		text = text[:end+1]
	}
	return text
}
