package extract

import (
	"fmt"
	"strings"
)

// Ordinal lookups for the 5x5 risk matrix.
var consequenceScale = map[string]int{
	"insignificant": 1,
	"minor":         2,
	"moderate":      3,
	"major":         4,
	"severe":        5,
}

var likelihoodScale = map[string]int{
	"rare":           1,
	"unlikely":       2,
	"possible":       3,
	"likely":         4,
	"almost certain": 5,
}

// RiskRating maps a consequence and likelihood word pair to a banded label
// rendered as "Label (score)", where score is the product of the two ordinal
// values. Matching is case-insensitive and trims surrounding whitespace. An
// absent or unrecognized word on either side yields "" rather than a default
// score. Nothing in the extraction pipeline populates the two inputs from
// document text; callers supply them out-of-band.
func RiskRating(consequence, likelihood string) string {
	if consequence == "" || likelihood == "" {
		return ""
	}
	c, ok := consequenceScale[strings.ToLower(strings.TrimSpace(consequence))]
	if !ok {
		return ""
	}
	l, ok := likelihoodScale[strings.ToLower(strings.TrimSpace(likelihood))]
	if !ok {
		return ""
	}
	score := c * l
	switch {
	case score <= 4:
		return fmt.Sprintf("Low (%d)", score)
	case score <= 9:
		return fmt.Sprintf("Medium (%d)", score)
	case score <= 16:
		return fmt.Sprintf("High (%d)", score)
	default:
		return fmt.Sprintf("Extreme (%d)", score)
	}
}
