package util

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reNumberNoise = regexp.MustCompile(`[$,\s]`)
	reNumber      = regexp.MustCompile(`^-?\d+(?:\.\d+)?$|^-?\.\d+$`)
)

// ParseNumber reads currency and area strings like "$250,000.00", "1,234 SF"
// or "(1,200)". Parentheses mean negative. Returns nil for anything that is
// not a plain number after the noise is removed.
func ParseNumber(input string) *float64 {
	s := strings.ToUpper(CleanText(input))
	if s == "" {
		return nil
	}
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}
	s = strings.TrimSuffix(s, "%")
	for _, unit := range []string{"SQ FT", "SQFT", "SF", "AC", "ACRES"} {
		s = strings.TrimSuffix(strings.TrimSpace(s), " "+unit)
	}
	s = reNumberNoise.ReplaceAllString(s, "")
	if !reNumber.MatchString(s) {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	if negative {
		v = -v
	}
	return &v
}

func ParseInt(input string) *int {
	v := ParseNumber(input)
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

// ParseYear accepts a four digit year between 1700 and 2200.
func ParseYear(input string) *int {
	n := ParseInt(input)
	if n == nil || *n < 1700 || *n > 2200 {
		return nil
	}
	return n
}

type DateFormat string

const (
	DateMDY      DateFormat = "MM/DD/YYYY"
	DateDMonY    DateFormat = "DD-MMM-YYYY"
	DateMDYDash  DateFormat = "M-D-YYYY"
	DateISO      DateFormat = "YYYY-MM-DD"
	DateMDYShort DateFormat = "MM/DD/YY"
)

var dateLayouts = map[DateFormat]string{
	DateMDY:      "1/2/2006",
	DateDMonY:    "2-Jan-2006",
	DateMDYDash:  "1-2-2006",
	DateISO:      "2006-01-02",
	DateMDYShort: "1/2/06",
}

// defaultDateFormats leaves out two-digit years; a profile has to ask for
// DateMDYShort explicitly.
var defaultDateFormats = []DateFormat{DateMDY, DateISO, DateDMonY, DateMDYDash}

// now is the reference for two-digit year centuries.
var now = time.Now

func KnownDateFormat(f DateFormat) bool {
	_, ok := dateLayouts[f]
	return ok
}

// ParseDate returns the ISO date for the first listed format that matches
// exactly, or nil. A trailing time of day is ignored. Two-digit years resolve
// to the latest year that is not after the current one.
func ParseDate(input string, formats ...DateFormat) *string {
	s := CleanText(input)
	if s == "" {
		return nil
	}
	if i := strings.IndexByte(s, ' '); i > 0 {
		s = s[:i]
	}
	if len(formats) == 0 {
		formats = defaultDateFormats
	}
	for _, f := range formats {
		layout, ok := dateLayouts[f]
		if !ok {
			continue
		}
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if f == DateMDYShort && t.Year() > now().Year() {
			// a two-digit year is never in the future
			t = t.AddDate(-100, 0, 0)
		}
		iso := t.Format("2006-01-02")
		return &iso
	}
	return nil
}
