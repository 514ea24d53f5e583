// Package parse converts raw export field values into canonical numeric and
// date types. The export files mix French and English locale conventions with
// no marker, so every parser here is tolerant by contract: unparseable input
// degrades to a zero value (or a reported miss for dates), never an error.
package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// metersThreshold is the cutoff above which a distance value is assumed to be
// meters rather than kilometers. The export emits both units with no marker;
// this tie-break misclassifies cumulative multi-day distances above 1000 km,
// a known source ambiguity that must not be silently changed.
const metersThreshold = 1000

// Number parses a numeric string in either French ("1 200,50") or English
// ("1,200.50") convention. When both comma and dot are present the comma is a
// thousands separator; a lone comma is a decimal separator. Returns 0 for
// empty or unparseable input.
func Number(raw string) float64 {
	s := strings.Map(func(r rune) rune {
		if r == ' ' || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, strings.TrimSpace(raw))
	if s == "" {
		return 0
	}

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		s = strings.ReplaceAll(s, ",", "")
	case hasComma:
		s = strings.Replace(s, ",", ".", 1)
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n
}

// Duration parses a time value into seconds. Accepts a plain number (already
// seconds), "H:MM:SS", or "MM:SS". Unparseable input yields 0.
func Duration(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	if !strings.Contains(s, ":") {
		if n := Number(s); n > 0 {
			return n
		}
		return 0
	}

	parts := strings.Split(s, ":")
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0
		}
		nums = append(nums, n)
	}

	switch len(nums) {
	case 3:
		return float64(nums[0]*3600 + nums[1]*60 + nums[2])
	case 2:
		return float64(nums[0]*60 + nums[1])
	default:
		return 0
	}
}

// Distance parses a distance field and returns kilometers. Values above
// metersThreshold are assumed to be meters and are divided by 1000.
func Distance(raw string) float64 {
	n := Number(raw)
	if n > metersThreshold {
		return n / 1000
	}
	return n
}

// months maps lowercase month tokens (trailing period stripped) to
// time.Month, covering French and English, abbreviated and full, accented
// and unaccented forms.
var months = map[string]time.Month{
	// French abbreviated
	"janv": time.January, "févr": time.February, "fevr": time.February,
	"avr": time.April, "juil": time.July, "août": time.August, "aout": time.August,
	"déc": time.December,
	// French full
	"janvier": time.January, "février": time.February, "fevrier": time.February,
	"mars": time.March, "avril": time.April, "mai": time.May, "juin": time.June,
	"juillet": time.July, "septembre": time.September, "octobre": time.October,
	"novembre": time.November, "décembre": time.December, "decembre": time.December,
	// English abbreviated
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June, "jul": time.July,
	"aug": time.August, "sep": time.September, "sept": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
	// English full
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "june": time.June, "july": time.July,
	"august": time.August, "september": time.September, "october": time.October,
	"november": time.November, "december": time.December,
}

var (
	// "2 janv. 2025, 17:34:30" — the month token deliberately allows any
	// non-space run so accented forms are captured.
	dayMonthYearRe = regexp.MustCompile(`(\d{1,2})\s+([^\s,]+)\s+(\d{4})(?:,?\s+(\d{1,2}):(\d{2}):(\d{2}))?`)
	// "Jan 31, 2025, 5:30:00 PM"
	monthDayYearRe = regexp.MustCompile(`([A-Za-zÀ-ÿ]+)\.?\s+(\d{1,2}),?\s+(\d{4})(?:,?\s+(\d{1,2}):(\d{2}):(\d{2})(?:\s+(AM|PM|am|pm))?)?`)
)

// fallbackLayouts are tried in local time when neither locale pattern
// matches, covering machine-formatted exports.
var fallbackLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"02/01/2006 15:04:05",
	"02/01/2006",
}

// Date parses an activity date in mixed French ("2 janv. 2025, 17:34:30") or
// English ("Jan 31, 2025, 5:30:00 PM") form. The result is always built from
// local time components, never UTC-shifted, so evening activities do not
// drift across the day boundary. The second return is false when no pattern
// matches; callers must exclude such records rather than substitute a clock
// value.
func Date(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if m := dayMonthYearRe.FindStringSubmatch(s); m != nil {
		token := strings.ToLower(strings.TrimSuffix(m[2], "."))
		if month, ok := months[token]; ok {
			return buildLocal(m[3], m[1], month, m[4], m[5], m[6], ""), true
		}
	}

	if m := monthDayYearRe.FindStringSubmatch(s); m != nil {
		token := strings.ToLower(strings.TrimSuffix(m[1], "."))
		if month, ok := months[token]; ok {
			return buildLocal(m[3], m[2], month, m[4], m[5], m[6], m[7]), true
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		// RFC3339 carries an explicit offset; re-express in local time.
		return t.Local(), true
	}

	return time.Time{}, false
}

func buildLocal(year, day string, month time.Month, hour, minute, second, ampm string) time.Time {
	y, _ := strconv.Atoi(year)
	d, _ := strconv.Atoi(day)
	h := atoiOrZero(hour)
	mi := atoiOrZero(minute)
	sec := atoiOrZero(second)

	switch strings.ToUpper(ampm) {
	case "PM":
		if h < 12 {
			h += 12
		}
	case "AM":
		if h == 12 {
			h = 0
		}
	}

	return time.Date(y, month, d, h, mi, sec, 0, time.Local)
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
