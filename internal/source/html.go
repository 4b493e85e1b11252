package source

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"parcelnorm/internal/util"
)

const (
	labelSelector   = "th,td,dt,label,strong,b,span,div"
	headingSelector = "h1,h2,h3,h4,h5,h6,caption,legend"
)

var defaultParcelLabels = []string{"Parcel ID", "Parcel Number", "Parcel", "Folio ID", "Folio", "STRAP", "Account Number", "Account"}

// HTMLDocument answers label and table lookups over a saved appraiser page.
type HTMLDocument struct {
	doc  *goquery.Document
	base *url.URL
}

func ParseHTML(r io.Reader, baseURL string) (*HTMLDocument, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	d := &HTMLDocument{doc: doc}
	if baseURL != "" {
		if u, err := url.Parse(baseURL); err == nil {
			d.base = u
		}
	}
	return d, nil
}

func LoadHTML(path, baseURL string) (*HTMLDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseHTML(f, baseURL)
}

// FindValueNear tries each label in order. A label matches an element whose
// own text equals it, ignoring case and a trailing colon; the value is the
// next sibling cell, the cell below a header, or the text after the label.
func (d *HTMLDocument) FindValueNear(labels ...string) (string, bool) {
	for _, label := range labels {
		want := util.NormalizeHeader(label)
		if want == "" {
			continue
		}
		value := ""
		d.doc.Find(labelSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			text := util.CleanText(ownText(s))
			if text == "" {
				return true
			}
			if util.NormalizeHeader(text) == want {
				value = siblingValue(s)
				return value == ""
			}
			if head, rest, ok := strings.Cut(text, ":"); ok && util.NormalizeHeader(head) == want {
				value = util.CleanText(rest)
				return value == ""
			}
			return true
		})
		if value != "" {
			return value, true
		}
	}
	return "", false
}

// ParcelIdentifier reads the page's own parcel id.
func (d *HTMLDocument) ParcelIdentifier(labels ...string) (string, bool) {
	if len(labels) == 0 {
		labels = defaultParcelLabels
	}
	return d.FindValueNear(labels...)
}

// Headings lists section titles in document order.
func (d *HTMLDocument) Headings() []string {
	var out []string
	d.doc.Find(headingSelector).Each(func(_ int, s *goquery.Selection) {
		if t := util.CleanText(s.Text()); t != "" {
			out = append(out, t)
		}
	})
	return out
}

// FindRows returns the data rows of the first table identified by id,
// caption, summary, the heading right before it, or its header row text.
func (d *HTMLDocument) FindRows(table string) []Row {
	t := d.findTable(table)
	if t == nil {
		return nil
	}

	rows := t.Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
		return tr.Closest("table").IsSelection(t)
	})
	if rows.Length() == 0 {
		return nil
	}

	headerIdx := 0
	rows.EachWithBreak(func(i int, tr *goquery.Selection) bool {
		if tr.Children().Filter("th").Length() > 0 {
			headerIdx = i
			return false
		}
		return true
	})

	var headers []string
	rows.Eq(headerIdx).Children().Filter("th,td").Each(func(_ int, cell *goquery.Selection) {
		headers = append(headers, util.CleanText(cell.Text()))
	})

	var out []Row
	rows.Slice(headerIdx+1, rows.Length()).Each(func(_ int, tr *goquery.Selection) {
		var cells, links []string
		tr.Children().Filter("th,td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, cell.Text())
			href, _ := cell.Find("a[href]").First().Attr("href")
			links = append(links, d.resolve(href))
		})
		row := NewRow(headers, cells, links)
		if !row.Empty() {
			out = append(out, row)
		}
	})
	return out
}

func (d *HTMLDocument) findTable(ident string) *goquery.Selection {
	want := strings.ToLower(util.CleanText(ident))
	if want == "" {
		return nil
	}
	tables := d.doc.Find("table")

	matchers := []func(*goquery.Selection) bool{
		func(t *goquery.Selection) bool {
			id, _ := t.Attr("id")
			summary, _ := t.Attr("summary")
			return strings.EqualFold(id, want) ||
				strings.Contains(strings.ToLower(summary), want) ||
				strings.Contains(strings.ToLower(util.CleanText(t.ChildrenFiltered("caption").Text())), want)
		},
		func(t *goquery.Selection) bool {
			return strings.Contains(strings.ToLower(precedingHeading(t)), want)
		},
		func(t *goquery.Selection) bool {
			first := t.Find("tr").First()
			return strings.Contains(strings.ToLower(util.CleanText(first.Text())), want)
		},
	}
	for _, match := range matchers {
		var found *goquery.Selection
		tables.EachWithBreak(func(_ int, t *goquery.Selection) bool {
			if match(t) {
				found = t
				return false
			}
			return true
		})
		if found != nil {
			return found
		}
	}
	return nil
}

// precedingHeading is the text of the element right before the table, or
// before its wrapper when the table is the wrapper's first child.
func precedingHeading(t *goquery.Selection) string {
	for s := t; s.Length() > 0 && !s.Is("body"); s = s.Parent() {
		if prev := s.Prev(); prev.Length() > 0 {
			text := util.CleanText(prev.Text())
			if len(text) > 120 {
				return ""
			}
			return text
		}
	}
	return ""
}

func (d *HTMLDocument) resolve(href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "javascript:") || strings.HasPrefix(href, "#") {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if d.base != nil {
		u = d.base.ResolveReference(u)
	}
	return u.String()
}

// ownText is the full text for cells and inline labels, and only the direct
// text nodes for containers so a wrapper div never matches its subtree.
func ownText(s *goquery.Selection) string {
	switch goquery.NodeName(s) {
	case "th", "td", "dt", "label", "strong", "b":
		return s.Text()
	}
	var b strings.Builder
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		if goquery.NodeName(c) == "#text" {
			b.WriteString(c.Text())
		}
	})
	return b.String()
}

func siblingValue(s *goquery.Selection) string {
	name := goquery.NodeName(s)
	next := s.Next()
	if name == "th" && (next.Length() == 0 || next.Is("th")) {
		return cellBelow(s)
	}
	if next.Length() > 0 {
		if v := util.CleanText(next.Text()); v != "" {
			return v
		}
	}

	switch name {
	case "th", "td":
		return cellBelow(s)
	case "dt":
		return ""
	}

	// inline label: "<div><b>Zoning:</b> RS-1</div>"
	parentText := util.CleanText(s.Parent().Text())
	label := util.CleanText(s.Text())
	if rest, ok := strings.CutPrefix(parentText, label); ok {
		return util.CleanText(strings.TrimLeft(rest, ": "))
	}
	return ""
}

// cellBelow reads a header row laid out above its value row.
func cellBelow(s *goquery.Selection) string {
	below := s.Parent().Next().Children().Eq(s.Index())
	return util.CleanText(below.Text())
}
