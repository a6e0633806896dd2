package utils

import "strings"

// TrimQuery trims surrounding whitespace from a brand name query. No other
// normalization is applied; the query goes upstream as the user typed it.
func TrimQuery(query string) string {
	return strings.TrimSpace(query)
}
