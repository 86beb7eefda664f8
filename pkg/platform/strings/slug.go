// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
)

// Slug converts a display name into the identifier form the upstream API
// uses: lowercase, trimmed, inner whitespace collapsed to single hyphens.
//
//	Slug("  Mr Mime ") // "mr-mime"
func Slug(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}

// DedupeSlugs slugs each value, dropping empty results and duplicates.
// Order is preserved.
func DedupeSlugs(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		slug := Slug(v)
		if slug == "" {
			continue
		}
		if _, ok := seen[slug]; ok {
			continue
		}
		seen[slug] = struct{}{}
		result = append(result, slug)
	}
	return result
}
