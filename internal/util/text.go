package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reSpaces    = regexp.MustCompile(`\s+`)
	reNonKey    = regexp.MustCompile(`[^A-Z0-9]+`)
	invisible   = strings.NewReplacer("\u00a0", " ", "\u200b", "", "\u200c", "", "\u200d", "", "\ufeff", "", "\u2007", " ", "\u202f", " ")
	smartQuotes = strings.NewReplacer("\u2018", "'", "\u2019", "'", "\u201c", `"`, "\u201d", `"`)
)

// CleanText collapses whitespace and trims. An empty result means absent.
func CleanText(input string) string {
	s := invisible.Replace(input)
	s = smartQuotes.Replace(s)
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func CleanPtr(input string) *string {
	s := CleanText(input)
	if s == "" {
		return nil
	}
	return &s
}

// FoldAccents strips combining marks: "Peña" becomes "Pena".
func FoldAccents(input string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, input)
	if err != nil {
		return input
	}
	return out
}

// TitleCase lowercases, then capitalizes the first letter of every word.
// Word boundaries are start of string, space, hyphen, apostrophe and period.
func TitleCase(input string) string {
	s := strings.ToLower(CleanText(input))
	out := strings.Builder{}
	out.Grow(len(s))
	upperNext := true
	for _, r := range s {
		if upperNext && unicode.IsLetter(r) {
			out.WriteRune(unicode.ToUpper(r))
			upperNext = false
			continue
		}
		out.WriteRune(r)
		switch r {
		case ' ', '-', '\'', '.':
			upperNext = true
		default:
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				upperNext = false
			}
		}
	}
	return out.String()
}

// NormalizeKey reduces a value to upper-case alphanumerics so that
// "12-34-56.000" and "123456000" compare equal.
func NormalizeKey(input string) string {
	s := strings.ToUpper(FoldAccents(CleanText(input)))
	return reNonKey.ReplaceAllString(s, "")
}

// NormalizeHeader prepares a table header or label for substring probing.
func NormalizeHeader(input string) string {
	s := strings.ToLower(CleanText(input))
	s = strings.TrimRight(s, ": ")
	return strings.TrimSpace(s)
}

func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := CleanText(v); s != "" {
			return s
		}
	}
	return ""
}
