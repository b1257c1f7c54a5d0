package extract

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"
)

var descRules = []*regexp.Regexp{
	regexp.MustCompile(`(?is)Section\s*2[^\n]*\n(.{0,800})`),
}

func TestExtractDescriptionKeepsHazardLines(t *testing.T) {
	text := `Section 2: Hazards Identification
Appearance: clear liquid
H225 Highly flammable liquid and vapour
H319 Causes serious eye irritation
Signal word: Danger
Storage notes follow here
`
	got := ExtractDescription(descRules, text)
	for _, want := range []string{"H225", "H319", "Danger"} {
		if !strings.Contains(got, want) {
			t.Errorf("description %q should contain %q", got, want)
		}
	}
	if strings.Contains(got, "Appearance") {
		t.Errorf("non-hazard line should be dropped, got %q", got)
	}
}

func TestExtractDescriptionFallbackFirstThreeLines(t *testing.T) {
	text := `Section 2 Composition
alpha
beta
gamma
delta
`
	got := ExtractDescription(descRules, text)
	if got != "alpha; beta; gamma" {
		t.Errorf("got %q, want first three non-empty lines", got)
	}
}

func TestExtractDescriptionDeduplicates(t *testing.T) {
	text := `Section 2: Hazards
H225 Flammable
H225 Flammable
Warning
`
	got := ExtractDescription(descRules, text)
	if strings.Count(got, "H225") != 1 {
		t.Errorf("duplicate lines should collapse, got %q", got)
	}
}

func TestExtractDescriptionNoAnchor(t *testing.T) {
	if got := ExtractDescription(descRules, "no hazard section at all"); got != "" {
		t.Errorf("got %q, want empty when the anchor is missing", got)
	}
}

func TestExtractDescriptionCapsLength(t *testing.T) {
	var b strings.Builder
	b.WriteString("Section 2: Hazards\n")
	for i := 0; i < 60; i++ {
		fmt.Fprintf(&b, "H2%02d überhitzte Dämpfe möglich %02d\n", i, i)
	}
	got := ExtractDescription(descRules, b.String())
	if !utf8.ValidString(got) {
		t.Fatalf("truncation split a multibyte character: %q", got)
	}
	if n := utf8.RuneCountInString(got); n > 800 {
		t.Errorf("description is %d characters, cap is 800", n)
	}
}
