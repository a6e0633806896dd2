package utils

import "strings"

// parseNoise are low-level decoder fragments that should never reach an end
// user verbatim.
var parseNoise = []string{
	"invalid character",
	"unexpected end of JSON input",
	"cannot unmarshal",
	"malformed knowledge graph response",
	"EOF",
}

// CleanErrorMessage strips parser noise from an error message before display.
// Messages dominated by decoder internals are replaced with guidance the user
// can act on.
func CleanErrorMessage(msg string) string {
	for _, noise := range parseNoise {
		if strings.Contains(msg, noise) {
			return "No clear match found. Try a more specific name."
		}
	}
	return strings.TrimSpace(msg)
}
