package owners

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"parcelnorm/internal"
	"parcelnorm/internal/mapping"
	"parcelnorm/internal/util"
)

// Owner holds exactly one of Person or Company.
type Owner struct {
	Person  *internal.Person
	Company *internal.Company
}

func (o Owner) IsCompany() bool { return o.Company != nil }

// Display is the owner as a single line, used in logs and the workbook.
func (o Owner) Display() string {
	if o.Company != nil {
		return o.Company.Name
	}
	if o.Person == nil {
		return ""
	}
	parts := []string{util.Deref(o.Person.PrefixName), o.Person.FirstName, util.Deref(o.Person.MiddleName), o.Person.LastName, util.Deref(o.Person.SuffixName)}
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

var (
	reSegments = regexp.MustCompile(`[;|\n]+`)
	reCareOf   = regexp.MustCompile(`(?i)\bC/O\b.*$`)
	reGroups   = regexp.MustCompile(`\s*&\s*|\s+AND\s+`)
	reNoise    = regexp.MustCompile(`\b(?:ET\s*AL|ET\s*UX|ET\s*VIR|AS\s+TRUSTEES?|CO-?TRUSTEES?|SUCC(?:ESSOR)?\s+TR(?:USTEE)?|TRUSTEES?|TTEES?|JTWROS|JT\s*TEN|TEN\s*COM|H/E|H/W|W/H|LIFE\s+ESTATE|PERS\s+REP)\b\.?`)
	reNameOK   = regexp.MustCompile(`^[A-Z][a-z]*(?:[ '\-.][A-Za-z][a-z]*)*\.?$`)
)

var companyTokens = map[string]struct{}{
	"LLC": {}, "LC": {}, "INC": {}, "INCORPORATED": {}, "CORP": {}, "CORPORATION": {}, "COMPANY": {},
	"LTD": {}, "LP": {}, "LLP": {}, "LLLP": {}, "PLLC": {}, "PA": {}, "TRUST": {}, "TRUSTS": {},
	"ASSOCIATION": {}, "ASSN": {}, "ASSOC": {}, "HOA": {}, "POA": {}, "BANK": {}, "BANCORP": {},
	"CHURCH": {}, "MINISTRIES": {}, "MINISTRY": {}, "DIOCESE": {}, "COUNTY": {}, "FOUNDATION": {},
	"PARTNERS": {}, "PARTNERSHIP": {}, "HOLDINGS": {}, "PROPERTIES": {}, "INVESTMENTS": {},
	"INVESTORS": {}, "GROUP": {}, "ENTERPRISES": {}, "DEVELOPMENT": {}, "REALTY": {}, "FUND": {},
	"SERVICES": {}, "UNIVERSITY": {}, "DISTRICT": {}, "AUTHORITY": {}, "DEPARTMENT": {},
	"MORTGAGE": {}, "FINANCIAL": {}, "CLUB": {}, "CONDOMINIUM": {}, "COOPERATIVE": {}, "FEDERAL": {},
	"NATIONAL": {}, "HOMES": {}, "BUILDERS": {}, "VENTURES": {}, "CAPITAL": {}, "LENDING": {},
}

var companyPhrases = []string{
	"LIMITED LIABILITY COMPANY", "LIMITED PARTNERSHIP", "L L C", "L L P", "CITY OF", "TOWN OF",
	"STATE OF", "UNITED STATES", "BOARD OF", "ESTATE OF", "SCHOOL BOARD", "HOUSING AUTHORITY",
}

var suffixes = map[string]string{
	"JR": "Jr.", "SR": "Sr.", "II": "II", "III": "III", "IV": "IV",
	"PHD": "PhD", "MD": "MD", "ESQ": "Esq.", "DDS": "DDS", "CPA": "CPA", "DVM": "DVM",
}

var prefixes = map[string]string{
	"MR": "Mr.", "MRS": "Mrs.", "MS": "Ms.", "DR": "Dr.", "REV": "Rev.",
}

// Surname particles joined to the following token in "LAST FIRST" order.
var particles = map[string]struct{}{
	"VAN": {}, "VON": {}, "DE": {}, "DEL": {}, "DELA": {}, "DA": {}, "DI": {}, "DU": {}, "LA": {}, "ST": {},
}

// Role markers that are also real names (Le, He, Tran Le). They are only
// dropped from the end of a group that still has two name tokens left.
var trailingRoles = map[string]struct{}{
	"TR": {}, "LE": {}, "HE": {}, "HW": {}, "TIC": {}, "REM": {}, "REMAINDER": {},
}

var fragments = map[string]struct{}{
	"CONT": {}, "CO": {}, "ET": {}, "AL": {}, "UX": {}, "EST": {}, "-": {}, "UNKNOWN": {}, "NONE": {},
}

// IsCompany reports whether a raw owner segment names an organization.
func IsCompany(raw string) bool {
	t := mapping.Normalize(raw)
	for _, tok := range t.Tokens() {
		if _, ok := companyTokens[tok]; ok {
			return true
		}
	}
	for _, p := range companyPhrases {
		if t.Contains(p) {
			return true
		}
	}
	return false
}

// Parser turns raw owner strings into persons and companies. Rejected person
// candidates are logged and dropped.
type Parser struct {
	log zerolog.Logger
}

func NewParser(log zerolog.Logger) *Parser {
	return &Parser{log: log}
}

// Parse splits raw on ";", "|" and newlines and parses each segment.
func (p *Parser) Parse(raw string) []Owner {
	var out []Owner
	for _, seg := range reSegments.Split(raw, -1) {
		seg = util.CleanText(reCareOf.ReplaceAllString(seg, ""))
		if seg == "" {
			continue
		}
		if IsCompany(seg) {
			out = append(out, Owner{Company: &internal.Company{Name: seg}})
			continue
		}
		out = append(out, p.parsePersons(seg)...)
	}
	return out
}

type name struct {
	first, middle, last string
	prefix, suffix      string
}

func (p *Parser) parsePersons(seg string) []Owner {
	upper := strings.ToUpper(seg)
	groups := reGroups.Split(upper, -1)

	var out []Owner
	var head name
	for i, g := range groups {
		g = util.CleanText(reNoise.ReplaceAllString(g, " "))
		g = strings.Trim(dropTrailingRoles(g), " ,")
		if g == "" {
			continue
		}

		var n name
		switch {
		case strings.Contains(g, ","):
			n = splitComma(g)
		case i > 0 && head.last != "" && sharesSurname(g):
			n = splitGiven(strings.Fields(g))
			n.last = head.last
		default:
			n = splitLastFirst(g)
		}
		if i == 0 || head.last == "" {
			head = n
		}

		if person, ok := p.validate(seg, n); ok {
			out = append(out, Owner{Person: person})
		}
	}
	return out
}

func dropTrailingRoles(g string) string {
	toks := strings.Fields(g)
	for len(toks) > 2 {
		if _, ok := trailingRoles[strings.Trim(toks[len(toks)-1], ".,")]; !ok {
			break
		}
		toks = toks[:len(toks)-1]
	}
	return strings.Join(toks, " ")
}

// sharesSurname: a later "&" group with one given name, optionally followed
// by an initial, belongs to the first group's family.
func sharesSurname(g string) bool {
	toks := cleanTokens(strings.Fields(g))
	toks, _ = takeAffixes(toks, 0)
	switch len(toks) {
	case 1:
		return true
	case 2:
		return len(toks[1]) == 1
	}
	return false
}

func splitComma(g string) name {
	last, rest, _ := strings.Cut(g, ",")
	lastToks, lastAff := takeAffixes(cleanTokens(strings.Fields(last)), 1)
	n := splitGiven(strings.Fields(strings.ReplaceAll(rest, ",", " ")))
	n.last = strings.Join(lastToks, " ")
	if n.suffix == "" {
		n.suffix = lastAff.suffix
	}
	return n
}

func splitLastFirst(g string) name {
	toks := cleanTokens(strings.Fields(g))
	if len(toks) > 0 {
		if pre, ok := prefixes[toks[0]]; ok {
			n := splitLastFirst(strings.Join(toks[1:], " "))
			n.prefix = pre
			return n
		}
	}
	toks, aff := takeAffixes(toks, 1)
	if len(toks) >= 3 {
		if _, ok := particles[toks[0]]; ok {
			toks = append([]string{toks[0] + " " + toks[1]}, toks[2:]...)
		}
	}
	var n name
	if len(toks) > 0 {
		n.last = toks[0]
	}
	given := splitGiven(toks[min(1, len(toks)):])
	n.first, n.middle = given.first, given.middle
	n.prefix, n.suffix = given.prefix, aff.suffix
	if n.suffix == "" {
		n.suffix = given.suffix
	}
	return n
}

// splitGiven reads "[PREFIX] FIRST MIDDLE... [SUFFIX]".
func splitGiven(toks []string) name {
	toks, aff := takeAffixes(cleanTokens(toks), 0)
	n := aff
	if len(toks) > 0 && n.prefix == "" {
		if pre, ok := prefixes[toks[0]]; ok {
			n.prefix = pre
			toks = toks[1:]
		}
	}
	if len(toks) > 0 {
		n.first = toks[0]
	}
	if len(toks) > 1 {
		n.middle = strings.Join(toks[1:], " ")
	}
	return n
}

// takeAffixes removes suffix tokens at or after position from.
func takeAffixes(toks []string, from int) ([]string, name) {
	var n name
	out := make([]string, 0, len(toks))
	for i, tok := range toks {
		if i >= from {
			if suf, ok := suffixes[tok]; ok {
				if n.suffix == "" {
					n.suffix = suf
				}
				continue
			}
		}
		out = append(out, tok)
	}
	return out, n
}

func cleanTokens(toks []string) []string {
	out := make([]string, 0, len(toks))
	for _, tok := range toks {
		tok = strings.Trim(tok, ".,")
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

func (p *Parser) validate(raw string, n name) (*internal.Person, bool) {
	first := util.TitleCase(n.first)
	last := util.TitleCase(n.last)
	if !validName(first) || !validName(last) {
		p.log.Warn().
			Str("raw", raw).
			Str("first", n.first).
			Str("last", n.last).
			Msg("owner name rejected")
		return nil, false
	}
	person := &internal.Person{FirstName: first, LastName: last}
	if mid := util.TitleCase(n.middle); mid != "" {
		if validName(mid) {
			person.MiddleName = &mid
		} else {
			p.log.Debug().Str("raw", raw).Str("middle", n.middle).Msg("middle name dropped")
		}
	}
	if n.prefix != "" {
		person.PrefixName = util.StringPtr(n.prefix)
	}
	if n.suffix != "" {
		person.SuffixName = util.StringPtr(n.suffix)
	}
	return person, true
}

func validName(s string) bool {
	if s == "" {
		return false
	}
	if _, bad := fragments[strings.ToUpper(s)]; bad {
		return false
	}
	return reNameOK.MatchString(s)
}
