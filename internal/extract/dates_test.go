package extract

import "testing"

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"canonical is idempotent", "12/04/2023", "12/04/2023"},
		{"hyphens become slashes", "12-04-2023", "12/04/2023"},
		{"two-digit year expands", "12-04-23", "12/04/2023"},
		{"iso year-month-day", "2023-04-12", "12/04/2023"},
		{"month-first still renders", "04/12/2023", "04/12/2023"},
		{"invalid calendar date passes through", "31/04/2023", "31/04/2023"},
		{"loose rescue inside text", "dated 5/6/24", "05/06/2024"},
		{"garbage passes through", "April twelfth", "April twelfth"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeDate(tc.in); got != tc.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeDateNeverReordersValidParse(t *testing.T) {
	// day/month layout is tried before month/day, so an ambiguous date keeps
	// its day-first reading.
	if got := NormalizeDate("01/02/2023"); got != "01/02/2023" {
		t.Errorf("got %q, want day-first reading preserved", got)
	}
}
