package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order against the hyphen-normalized input.
var dateLayouts = []string{
	"02/01/2006", // day/month/4-digit year
	"02/01/06",   // day/month/2-digit year
	"2006/01/02", // year-month-day (after hyphen replacement)
	"01/02/2006", // month/day/4-digit year
}

var reLooseDMY = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{2,4})`)

// NormalizeDate renders a raw date-like capture as DD/MM/YYYY. Hyphens are
// treated as slashes, then the known layouts are tried in order; as a last
// resort a loose d/m/y extraction runs, expanding 2-digit years with a "20"
// prefix. An unparseable input is returned cleaned but otherwise unchanged so
// that malformed dates surface in the register for manual correction instead
// of aborting the parse.
func NormalizeDate(raw string) string {
	if raw == "" {
		return ""
	}
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), "-", "/")
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format("02/01/2006")
		}
	}
	if m := reLooseDMY.FindStringSubmatch(cleaned); m != nil {
		day, month, year := m[1], m[2], m[3]
		if len(year) == 2 {
			year = "20" + year
		}
		if t, ok := calendarDate(year, month, day); ok {
			return t.Format("02/01/2006")
		}
	}
	return cleaned
}

// calendarDate builds a date and rejects values time.Date would normalize
// away (e.g. 31 April becoming 1 May).
func calendarDate(year, month, day string) (time.Time, bool) {
	y, _ := strconv.Atoi(year)
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if mo < 1 || mo > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || t.Month() != time.Month(mo) || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}
