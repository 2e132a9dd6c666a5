package recommender

import (
	"regexp"
	"strings"
)

// Conversational filler that users (and some catalog descriptions)
// prepend to the part that actually carries taste terms. Stripped only
// at the start of the string.
var fillerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^i (would like|want|am looking|feel like)( to)?( have| try| taste| get)?( a| some)?`),
	regexp.MustCompile(`^i (need|prefer|love|crave)( a| some)?`),
	regexp.MustCompile(`^looking for( a| some)?`),
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Preprocess lowercases and trims text, strips leading filler phrases
// and collapses whitespace runs. It is applied identically to catalog
// descriptions at load time and to query text at request time so that
// vocabulary terms align. Pure function.
func Preprocess(text string) string {
	text = strings.TrimSpace(strings.ToLower(text))

	for _, pattern := range fillerPatterns {
		text = pattern.ReplaceAllString(text, "")
	}

	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}
