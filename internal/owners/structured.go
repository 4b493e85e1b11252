package owners

import (
	"strings"

	"parcelnorm/internal"
	"parcelnorm/internal/util"
)

// Structured is one owner object from the owner sidecar. Type is "person"
// or "company"; when it is missing the populated fields decide.
type Structured struct {
	Type       string  `json:"type"`
	Name       string  `json:"name"`
	FirstName  string  `json:"first_name"`
	MiddleName *string `json:"middle_name"`
	LastName   string  `json:"last_name"`
	PrefixName *string `json:"prefix_name"`
	SuffixName *string `json:"suffix_name"`
}

// FromStructured runs a sidecar owner through the same validation gate as a
// parsed one.
func (p *Parser) FromStructured(s Structured) (Owner, bool) {
	kind := strings.ToLower(strings.TrimSpace(s.Type))
	if kind == "" {
		if util.CleanText(s.Name) != "" && util.CleanText(s.LastName) == "" {
			kind = string(KindCompany)
		} else {
			kind = string(KindPerson)
		}
	}

	if kind == string(KindCompany) {
		name := util.CleanText(s.Name)
		if name == "" {
			return Owner{}, false
		}
		return Owner{Company: &internal.Company{Name: name}}, true
	}

	n := name{
		first:  strings.ToUpper(util.CleanText(s.FirstName)),
		middle: strings.ToUpper(util.CleanText(util.Deref(s.MiddleName))),
		last:   strings.ToUpper(util.CleanText(s.LastName)),
	}
	if s.PrefixName != nil {
		n.prefix = util.CleanText(*s.PrefixName)
	}
	if s.SuffixName != nil {
		n.suffix = util.CleanText(*s.SuffixName)
		if std, ok := suffixes[strings.ToUpper(strings.Trim(n.suffix, "."))]; ok {
			n.suffix = std
		}
	}
	person, ok := p.validate(s.FirstName+" "+s.LastName, n)
	if !ok {
		return Owner{}, false
	}
	return Owner{Person: person}, true
}
