package usecode

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"parcelnorm/internal/mapping"
	"parcelnorm/internal/util"
)

// Row is one line of a use-code table.
type Row struct {
	Code        string
	Description string
	Class       mapping.Class
}

// Index is built once per table stack. Tables passed first take precedence
// so county codes shadow the statewide rows.
type Index struct {
	Name     string
	ByCode   map[string]Row
	prefixes []string
	rows     []Row
}

func BuildIndex(name string, tables ...[]Row) *Index {
	idx := &Index{
		Name:   name,
		ByCode: map[string]Row{},
	}

	for _, table := range tables {
		for _, row := range table {
			key := util.NormalizeKey(row.Code)
			if key != "" {
				if _, ok := idx.ByCode[key]; !ok {
					idx.ByCode[key] = row
					idx.prefixes = append(idx.prefixes, key)
				}
			}
			idx.rows = append(idx.rows, row)
		}
	}

	sort.SliceStable(idx.prefixes, func(i, j int) bool {
		return len(idx.prefixes[i]) > len(idx.prefixes[j])
	})
	return idx
}

// Lookup tries the exact code, then the longest table code that prefixes
// it, then the first row whose description is contained in description.
func (idx *Index) Lookup(code, description string) (Row, bool) {
	if idx == nil {
		return Row{}, false
	}
	key := util.NormalizeKey(code)
	if key != "" {
		if row, ok := idx.ByCode[key]; ok {
			return row, true
		}
		for _, p := range idx.prefixes {
			if len(p) >= 2 && len(key) > len(p) && strings.HasPrefix(key, p) {
				return idx.ByCode[p], true
			}
		}
	}

	text := mapping.Normalize(description)
	if text.Empty() {
		return Row{}, false
	}
	for _, row := range idx.rows {
		if text.Contains(row.Description) {
			return row, true
		}
	}
	return Row{}, false
}

// Classify accepts the combined "0100 SINGLE FAMILY" form found on pages.
func (idx *Index) Classify(raw string) (mapping.Class, bool) {
	code, description := Split(raw)
	row, ok := idx.Lookup(code, description)
	if !ok {
		return mapping.Class{}, false
	}
	return row.Class, true
}

func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.rows)
}

var (
	reLeadingCode = regexp.MustCompile(`^([0-9]{1,6}(?:[.\-][0-9]{1,4})?[A-Za-z]?)\b\s*(?:[-–:/)]\s*)?(.*)$`)
	reTextCode    = regexp.MustCompile(`^([A-Za-z]{1,5})\s*[-–:]\s+(.+)$`)
)

// Split separates a leading code from its description. "0100 SINGLE FAMILY"
// and "(0100) SINGLE FAMILY" yield "0100"; "SFR - SINGLE FAMILY RES" yields
// "SFR". A bare token is both code and description.
func Split(raw string) (string, string) {
	s := strings.TrimPrefix(util.CleanText(raw), "(")
	if s == "" {
		return "", ""
	}
	if m := reLeadingCode.FindStringSubmatch(s); m != nil {
		return m[1], util.CleanText(m[2])
	}
	if m := reTextCode.FindStringSubmatch(s); m != nil {
		return m[1], util.CleanText(m[2])
	}
	if !strings.Contains(s, " ") {
		return s, s
	}
	return "", s
}

var tables = map[string][]Row{
	"lee":      Lee,
	"levy":     Levy,
	"pinellas": Pinellas,
	"taylor":   Taylor,
}

// Named builds the index for a county table layered over FloridaDOR. The
// name "florida" selects the statewide table alone.
func Named(name string) (*Index, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, nil
	}
	if name == "florida" {
		return BuildIndex(name, FloridaDOR), nil
	}
	county, ok := tables[name]
	if !ok {
		return nil, fmt.Errorf("unknown use code table: %s", name)
	}
	return BuildIndex(name, county, FloridaDOR), nil
}

// Names lists the selectable table names.
func Names() []string {
	out := []string{"florida"}
	for k := range tables {
		out = append(out, k)
	}
	sort.Strings(out[1:])
	return out
}
