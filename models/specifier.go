package models

import "strings"

// ParseServiceSpecifier splits a "<id>@<tag>" service specifier into its id
// and tag parts. Both parts are trimmed of surrounding whitespace. The tag is
// empty when the specifier carries no "@". Degenerate inputs are not an
// error: an empty string yields ("", "").
func ParseServiceSpecifier(specifier string) (id, tag string) {
	id, tag, found := strings.Cut(specifier, "@")
	if !found {
		return strings.TrimSpace(id), ""
	}

	return strings.TrimSpace(id), strings.TrimSpace(tag)
}

// ServiceNameFromKey recovers the service name embedded in an engine API key
// of the form "service:<name>:<hash>". It returns the empty string unless
// the first segment is exactly the literal "service" (case-sensitive).
func ServiceNameFromKey(key string) string {
	parts := strings.Split(key, ":")
	if len(parts) < 2 || parts[0] != "service" {
		return ""
	}

	return parts[1]
}
