package extract

import "regexp"

var reTabNBSP = regexp.MustCompile("[\t ]+")

// NormalizeWhitespace collapses runs of tabs and non-breaking spaces into a
// single ordinary space. Applied once to the whole text before any field
// location so that every rule sees consistent spacing.
func NormalizeWhitespace(text string) string {
	return reTabNBSP.ReplaceAllString(text, " ")
}
