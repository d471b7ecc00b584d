package shared

import (
	"strings"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins a key prefix and its parts, skipping empty parts.
func BuildCacheKey(prefix string, parts ...string) string {
	key := make([]string, 0, len(parts)+1)
	key = append(key, prefix)

	for _, part := range parts {
		if part == "" {
			continue
		}

		key = append(key, part)
	}

	return strings.Join(key, cacheKeySeparator)
}

// FilterFold returns the values that contain query, ignoring case. An empty
// query returns values unchanged.
func FilterFold(values []string, query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return values
	}

	query = strings.ToLower(query)
	filtered := make([]string, 0, len(values))

	for _, value := range values {
		if strings.Contains(strings.ToLower(value), query) {
			filtered = append(filtered, value)
		}
	}

	return filtered
}
