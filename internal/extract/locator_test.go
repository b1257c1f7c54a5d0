package extract

import (
	"regexp"
	"testing"
)

func TestFindFirstOrderWins(t *testing.T) {
	rules := []*regexp.Regexp{
		regexp.MustCompile(`(?i)Product Identifier\s*:\s*(.+)`),
		regexp.MustCompile(`(?i)Product Name\s*:\s*(.+)`),
	}
	text := "Product Name: Second Choice\nProduct Identifier: First Choice"
	if got := FindFirst(rules, text); got != "First Choice" {
		t.Errorf("got %q, want first rule's match despite later position", got)
	}
}

func TestFindFirstLastNonEmptyGroup(t *testing.T) {
	rules := []*regexp.Regexp{
		regexp.MustCompile(`(?i)(Revision|Issue)\s*:\s*(\d{1,2}/\d{1,2}/\d{4})`),
	}
	if got := FindFirst(rules, "Revision: 12/04/2023"); got != "12/04/2023" {
		t.Errorf("got %q, want the value group, not the qualifier", got)
	}
}

func TestFindFirstNoCaptureTakesWholeMatch(t *testing.T) {
	rules := []*regexp.Regexp{regexp.MustCompile(`\bUN\s*\d{4}\b`)}
	if got := FindFirst(rules, "transport code UN 1170 applies"); got != "UN 1170" {
		t.Errorf("got %q, want whole matched span", got)
	}
}

func TestFindFirstStripsTrailingNoise(t *testing.T) {
	rules := []*regexp.Regexp{regexp.MustCompile(`(?i)Vendor\s*:\s*(.+)`)}
	cases := map[string]string{
		"Vendor: ExampleCorp;  ": "ExampleCorp",
		"Vendor: ExampleCorp:":   "ExampleCorp",
		"Vendor:   ExampleCorp":  "ExampleCorp",
	}
	for in, want := range cases {
		if got := FindFirst(rules, in); got != want {
			t.Errorf("FindFirst(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFindFirstNoMatch(t *testing.T) {
	rules := []*regexp.Regexp{regexp.MustCompile(`(?i)Packing Group\s*:\s*(III|II|I)`)}
	if got := FindFirst(rules, "nothing relevant here"); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
	if got := FindFirst(nil, "any text"); got != "" {
		t.Errorf("empty rule list should never match, got %q", got)
	}
}
