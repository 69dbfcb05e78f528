package agent

import "strings"

// maxErrorLength caps error text captured from LLM output.
const maxErrorLength = 500

// llmErrorMarkers are substrings that identify an error report embedded in
// otherwise normal-looking LLM output. The proxy sometimes delivers
// provider failures as plain text instead of stream errors.
var llmErrorMarkers = []string{
	"LiteLLM proxy unavailable",
	"No tool output found",
}

// SniffLLMError inspects response content for embedded provider errors.
// Returns the truncated error text and whether one was found.
func SniffLLMError(content string) (string, bool) {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "[Error]") {
		return truncateError(trimmed), true
	}
	for _, marker := range llmErrorMarkers {
		if strings.Contains(content, marker) {
			return truncateError(trimmed), true
		}
	}
	return "", false
}

func truncateError(s string) string {
	if len(s) > maxErrorLength {
		return s[:maxErrorLength]
	}
	return s
}
