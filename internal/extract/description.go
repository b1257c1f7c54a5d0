package extract

import (
	"regexp"
	"strings"
)

const descriptionMaxLen = 800

var (
	reHazardCode = regexp.MustCompile(`\bH\d{3}\b`)
	reSignalWord = regexp.MustCompile(`(Danger|Warning)\b`)
	reSepSpacing = regexp.MustCompile(`\s*;\s*`)
	reSepRepeats = regexp.MustCompile(`(; ){2,}`)
)

// ExtractDescription summarizes the hazard-identification block that follows
// a "Section 2" heading. Lines carrying a GHS hazard-statement code (H###) or
// a signal word are kept; if none qualify the first three non-empty lines of
// the block stand in. Lines are deduplicated in first-seen order, joined with
// "; " and capped at 800 characters.
func ExtractDescription(rules []*regexp.Regexp, text string) string {
	block := FindFirst(rules, text)
	if block == "" {
		return ""
	}
	var lines []string
	for _, l := range strings.Split(block, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	var selected []string
	for _, l := range lines {
		if reHazardCode.MatchString(l) || reSignalWord.MatchString(l) {
			selected = append(selected, l)
		}
	}
	if len(selected) == 0 {
		if len(lines) > 3 {
			lines = lines[:3]
		}
		selected = lines
	}
	seen := make(map[string]struct{}, len(selected))
	out := selected[:0]
	for _, s := range selected {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	desc := strings.Join(out, "; ")
	if r := []rune(desc); len(r) > descriptionMaxLen {
		desc = string(r[:descriptionMaxLen])
	}
	desc = reSepSpacing.ReplaceAllString(desc, "; ")
	return reSepRepeats.ReplaceAllString(desc, "; ")
}
