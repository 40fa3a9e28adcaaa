package normalize

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// CollapseSpace trims the input and folds every whitespace run, including tabs
// and newlines, into a single space.
func CollapseSpace(s string) string {
	return multiSpace.ReplaceAllString(strings.TrimSpace(s), " ")
}
