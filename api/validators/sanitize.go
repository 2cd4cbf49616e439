package validators

import "strings"

func SanitizeString(input string, maxLen int) string {
	trimmed := strings.TrimSpace(input)
	if maxLen > 0 && len(trimmed) > maxLen {
		return trimmed[:maxLen]
	}
	return trimmed
}

// NormalizeEmail lowercases and trims an email before storage or lookup.
func NormalizeEmail(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
