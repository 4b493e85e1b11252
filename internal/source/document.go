package source

import (
	"strings"

	"parcelnorm/internal/util"
)

// Document is the lookup surface the assemblers read from. How a label or a
// table is found is up to the implementation.
type Document interface {
	FindValueNear(labels ...string) (string, bool)
	FindRows(table string) []Row
	Headings() []string
}

// Row is one data row of a table, addressed by header probes.
type Row struct {
	headers []string
	cells   []string
	links   []string
}

// NewRow builds a row; headers are normalized for probing.
func NewRow(headers, cells, links []string) Row {
	norm := make([]string, 0, len(headers))
	for _, h := range headers {
		norm = append(norm, util.NormalizeHeader(h))
	}
	clean := make([]string, 0, len(cells))
	for _, c := range cells {
		clean = append(clean, util.CleanText(c))
	}
	return Row{headers: norm, cells: clean, links: links}
}

// Get returns the cell under the first header matching any probe, or "".
func (r Row) Get(probes ...string) string {
	idx := findHeaderIndex(r.headers, probes)
	if idx < 0 || idx >= len(r.cells) {
		return ""
	}
	return r.cells[idx]
}

// Has reports whether any probe matches a header of the row.
func (r Row) Has(probes ...string) bool {
	return findHeaderIndex(r.headers, probes) >= 0
}

// Link returns the link in the probed column. Without probes it returns the
// first link in the row.
func (r Row) Link(probes ...string) string {
	if len(probes) == 0 {
		for _, l := range r.links {
			if l != "" {
				return l
			}
		}
		return ""
	}
	idx := findHeaderIndex(r.headers, probes)
	if idx < 0 || idx >= len(r.links) {
		return ""
	}
	return r.links[idx]
}

func (r Row) Cells() []string   { return r.cells }
func (r Row) Headers() []string { return r.headers }

func (r Row) Empty() bool {
	for _, c := range r.cells {
		if c != "" {
			return false
		}
	}
	return true
}

// findHeaderIndex prefers an exact header match and falls back to the first
// header containing a probe.
func findHeaderIndex(headers []string, probes []string) int {
	norm := make([]string, 0, len(probes))
	for _, p := range probes {
		if p = util.NormalizeHeader(p); p != "" {
			norm = append(norm, p)
		}
	}
	for _, probe := range norm {
		for i, h := range headers {
			if h == probe {
				return i
			}
		}
	}
	for _, probe := range norm {
		for i, h := range headers {
			if strings.Contains(h, probe) {
				return i
			}
		}
	}
	return -1
}
