package mapping

import (
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/antzucaro/matchr"

	"parcelnorm/internal/util"
)

var (
	reCodePrefix  = regexp.MustCompile(`^\d+\s*[-–:]\s*`)
	reSlashPrefix = regexp.MustCompile(`^\d+\s*/\s*([A-Z])`)
	reNonWord     = regexp.MustCompile(`[^A-Z0-9]+`)
)

// Text is a raw label after normalization: folded, upper-cased, stripped of a
// leading "12 - " style code and of punctuation. A "12/" code is only
// stripped before a letter so fractions like "1/2 BATH" keep their digits.
type Text struct {
	raw    string
	norm   string
	tokens []string
	set    map[string]struct{}
}

func Normalize(raw string) Text {
	s := strings.ToUpper(util.FoldAccents(util.CleanText(raw)))
	s = reCodePrefix.ReplaceAllString(s, "")
	s = reSlashPrefix.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, "&", " AND ")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.TrimSpace(reNonWord.ReplaceAllString(s, " "))

	t := Text{raw: raw, norm: s, set: map[string]struct{}{}}
	if s != "" {
		t.tokens = strings.Split(s, " ")
	}
	for _, tok := range t.tokens {
		t.set[tok] = struct{}{}
	}
	return t
}

func (t Text) String() string   { return t.norm }
func (t Text) Raw() string      { return t.raw }
func (t Text) Tokens() []string { return t.tokens }
func (t Text) Empty() bool      { return t.norm == "" }

// Has reports whether any of the tokens is present.
func (t Text) Has(tokens ...string) bool {
	for _, tok := range tokens {
		if _, ok := t.set[strings.ToUpper(tok)]; ok {
			return true
		}
	}
	return false
}

// Contains is whole-word phrase containment.
func (t Text) Contains(phrase string) bool {
	p := Normalize(phrase).norm
	if p == "" || t.norm == "" {
		return false
	}
	return strings.Contains(" "+t.norm+" ", " "+p+" ")
}

type Matcher func(Text) bool

func Phrase(phrases ...string) Matcher {
	return func(t Text) bool {
		for _, p := range phrases {
			if t.Contains(p) {
				return true
			}
		}
		return false
	}
}

func Token(tokens ...string) Matcher {
	return func(t Text) bool { return t.Has(tokens...) }
}

func Exact(values ...string) Matcher {
	return func(t Text) bool {
		for _, v := range values {
			if Normalize(v).norm == t.norm {
				return true
			}
		}
		return false
	}
}

func Prefix(prefixes ...string) Matcher {
	return func(t Text) bool {
		for _, p := range prefixes {
			if n := Normalize(p).norm; n != "" && strings.HasPrefix(t.norm, n) {
				return true
			}
		}
		return false
	}
}

func All(matchers ...Matcher) Matcher {
	return func(t Text) bool {
		for _, m := range matchers {
			if !m(t) {
				return false
			}
		}
		return len(matchers) > 0
	}
}

func Any(matchers ...Matcher) Matcher {
	return func(t Text) bool {
		for _, m := range matchers {
			if m(t) {
				return true
			}
		}
		return false
	}
}

func Not(m Matcher) Matcher {
	return func(t Text) bool { return !m(t) }
}

func Custom(fn func(Text) bool) Matcher {
	return Matcher(fn)
}

type Rule[T any] struct {
	Label  string
	Match  Matcher
	Result T
}

// Table is an ordered rule list. The first matching rule wins, so rules are
// written most specific first ("SPECIAL WARRANTY" before "WARRANTY").
type Table[T any] struct {
	Name       string
	Rules      []Rule[T]
	Default    T
	HasDefault bool
}

func (tb Table[T]) Lookup(raw string) (T, bool) {
	return tb.LookupText(Normalize(raw))
}

func (tb Table[T]) LookupText(t Text) (T, bool) {
	var zero T
	if t.Empty() {
		return zero, false
	}
	for _, r := range tb.Rules {
		if r.Match != nil && r.Match(t) {
			return r.Result, true
		}
	}
	return zero, false
}

// Map returns the table default when nothing matches.
func (tb Table[T]) Map(raw string) T {
	if v, ok := tb.Lookup(raw); ok {
		return v
	}
	return tb.Default
}

// Ptr returns nil when nothing matches.
func (tb Table[T]) Ptr(raw string) *T {
	if v, ok := tb.Lookup(raw); ok {
		return &v
	}
	return nil
}

// MapWith is Map that also records non-empty misses.
func (tb Table[T]) MapWith(raw string, misses *Misses) T {
	if v, ok := tb.Lookup(raw); ok {
		return v
	}
	misses.Add(tb.Name, raw)
	return tb.Default
}

// PtrWith is Ptr that also records non-empty misses.
func (tb Table[T]) PtrWith(raw string, misses *Misses) *T {
	if v, ok := tb.Lookup(raw); ok {
		return &v
	}
	misses.Add(tb.Name, raw)
	return nil
}

// WithDefault returns a copy of the table with another fallback value.
func (tb Table[T]) WithDefault(v T) Table[T] {
	tb.Default = v
	tb.HasDefault = true
	return tb
}

// Suggest returns the rule label closest to raw by Jaro-Winkler similarity.
// It is used to annotate review entries and never changes a mapping.
func (tb Table[T]) Suggest(raw string) (string, float64) {
	t := Normalize(raw)
	if t.Empty() {
		return "", 0
	}
	best, bestScore := "", 0.0
	for _, r := range tb.Rules {
		if r.Label == "" {
			continue
		}
		score := matchr.JaroWinkler(t.norm, Normalize(r.Label).norm, false)
		if score > bestScore {
			best, bestScore = r.Label, score
		}
	}
	return best, bestScore
}

// Shadowed lists rule labels that resolve to another rule with a different
// result. A non-empty list means the table is ordered wrong.
func (tb Table[T]) Shadowed() []string {
	var out []string
	for i, r := range tb.Rules {
		t := Normalize(r.Label)
		hit := -1
		for j, other := range tb.Rules {
			if other.Match != nil && other.Match(t) {
				hit = j
				break
			}
		}
		if hit == i {
			continue
		}
		if hit >= 0 && reflect.DeepEqual(tb.Rules[hit].Result, r.Result) {
			continue
		}
		out = append(out, r.Label)
	}
	return out
}

// Labels lists rule labels in table order.
func (tb Table[T]) Labels() []string {
	out := make([]string, 0, len(tb.Rules))
	for _, r := range tb.Rules {
		out = append(out, r.Label)
	}
	return out
}

// Domain is the type-erased view of a Table used by the review tooling.
type Domain interface {
	Suggest(raw string) (string, float64)
	Labels() []string
	Shadowed() []string
}

var registry = map[string]Domain{}

func register[T any](tb Table[T]) Table[T] {
	registry[tb.Name] = tb
	return tb
}

// Domains returns every registered table by name.
func Domains() map[string]Domain {
	out := make(map[string]Domain, len(registry))
	for k, v := range registry {
		out[k] = v
	}
	return out
}

// SuggestFor finds the closest rule label in the named table.
func SuggestFor(domain, raw string) (string, float64) {
	d, ok := registry[domain]
	if !ok {
		return "", 0
	}
	return d.Suggest(raw)
}

type Miss struct {
	Domain string
	Raw    string
}

// Misses collects unmapped labels for one run. The zero value is ready to use
// and a nil *Misses ignores every Add.
type Misses struct {
	items []Miss
	seen  map[string]struct{}
}

func (m *Misses) Add(domain, raw string) {
	if m == nil {
		return
	}
	clean := util.CleanText(raw)
	if clean == "" {
		return
	}
	if m.seen == nil {
		m.seen = map[string]struct{}{}
	}
	key := domain + "\x00" + strings.ToUpper(clean)
	if _, ok := m.seen[key]; ok {
		return
	}
	m.seen[key] = struct{}{}
	m.items = append(m.items, Miss{Domain: domain, Raw: clean})
}

func (m *Misses) Items() []Miss {
	if m == nil {
		return nil
	}
	out := make([]Miss, len(m.items))
	copy(out, m.items)
	return out
}

func (m *Misses) Len() int {
	if m == nil {
		return 0
	}
	return len(m.items)
}

// Domains returns the distinct domains with at least one miss, sorted.
func (m *Misses) Domains() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, it := range m.Items() {
		if _, ok := seen[it.Domain]; ok {
			continue
		}
		seen[it.Domain] = struct{}{}
		out = append(out, it.Domain)
	}
	sort.Strings(out)
	return out
}
