package model

import "strings"

// NormalizeURL prefixes https:// to addresses entered without an
// http:// or https:// scheme. Already-schemed URLs pass through
// unchanged.
func NormalizeURL(raw string) string {
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return raw
	}
	return "https://" + raw
}
