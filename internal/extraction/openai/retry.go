package openai

import (
	"strings"
)

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Retry on JSON parsing errors as they might be due to incomplete responses
	errStr := err.Error()
	if strings.Contains(errStr, "json.Unmarshal") || strings.Contains(errStr, "unexpected end of JSON input") {
		return true
	}

	// Retry on network-related errors
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Retry on 5xx errors (server errors)
	if strings.Contains(errStr, "response error 5") {
		return true
	}

	// Retry on rate limiting (429)
	if strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

// extractJSONObject cuts the first balanced JSON object out of a model
// reply. Vision models sometimes wrap the JSON in prose or a markdown
// code fence even when told not to.
func extractJSONObject(content string) string {
	firstBrace := -1
	depth := 0
	inString := false
	escaped := false

	for i, ch := range content {
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case '{':
			if firstBrace == -1 {
				firstBrace = i
			}
			depth++
		case '}':
			depth--
			if depth == 0 && firstBrace != -1 {
				return content[firstBrace : i+1]
			}
		}
	}

	// No balanced object found. Let the JSON decoder report the problem
	// on the raw content.
	return content
}
