package extract

import (
	"regexp"
	"strings"
)

var reTrailingNoise = regexp.MustCompile(`[\s;:]+$`)

// FindFirst tries rules in declared order and returns the value of the first
// one that matches anywhere in text, or "" if none do. When a rule captures
// subgroups the last non-empty group wins; a rule without captures yields the
// whole matched span. This is a precedence list, not a best-match search:
// iteration stops at the first successful rule.
func FindFirst(rules []*regexp.Regexp, text string) string {
	for _, re := range rules {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value := m[0]
		for _, g := range m[1:] {
			if g != "" {
				value = g
			}
		}
		value = strings.TrimSpace(value)
		return reTrailingNoise.ReplaceAllString(value, "")
	}
	return ""
}
