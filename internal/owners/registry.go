package owners

import (
	"fmt"
	"strings"

	"parcelnorm/internal"
	"parcelnorm/internal/util"
)

type Kind string

const (
	KindPerson  Kind = "person"
	KindCompany Kind = "company"
)

// Ref points at a deduplicated owner by kind and 1-based index.
type Ref struct {
	Kind  Kind
	Index int
}

// Name is the entity file stem, e.g. "person_2".
func (r Ref) Name() string {
	return fmt.Sprintf("%s_%d", r.Kind, r.Index)
}

// Registry deduplicates owners within one run. Persons are keyed by
// (first, middle, last) and companies by name.
type Registry struct {
	persons   []*internal.Person
	companies []*internal.Company
	seen      map[string]Ref
}

func NewRegistry() *Registry {
	return &Registry{seen: map[string]Ref{}}
}

func personKey(p *internal.Person) string {
	return strings.Join([]string{
		util.NormalizeKey(p.FirstName),
		util.NormalizeKey(util.Deref(p.MiddleName)),
		util.NormalizeKey(p.LastName),
	}, "|")
}

// Add returns the ref of the stored owner, adding it when it is new.
func (r *Registry) Add(o Owner) (Ref, bool) {
	switch {
	case o.Company != nil:
		key := "c|" + util.NormalizeKey(o.Company.Name)
		if ref, ok := r.seen[key]; ok {
			return ref, true
		}
		r.companies = append(r.companies, o.Company)
		ref := Ref{Kind: KindCompany, Index: len(r.companies)}
		r.seen[key] = ref
		return ref, true
	case o.Person != nil:
		key := "p|" + personKey(o.Person)
		if ref, ok := r.seen[key]; ok {
			return ref, true
		}
		r.persons = append(r.persons, o.Person)
		ref := Ref{Kind: KindPerson, Index: len(r.persons)}
		r.seen[key] = ref
		return ref, true
	}
	return Ref{}, false
}

// AddAll adds every owner and returns the distinct refs in first-seen order.
func (r *Registry) AddAll(owners []Owner) []Ref {
	var out []Ref
	seen := map[Ref]struct{}{}
	for _, o := range owners {
		ref, ok := r.Add(o)
		if !ok {
			continue
		}
		if _, dup := seen[ref]; dup {
			continue
		}
		seen[ref] = struct{}{}
		out = append(out, ref)
	}
	return out
}

func (r *Registry) Persons() []*internal.Person   { return r.persons }
func (r *Registry) Companies() []*internal.Company { return r.companies }
func (r *Registry) Len() int                       { return len(r.persons) + len(r.companies) }
