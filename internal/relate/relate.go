// Package relate builds the relationship records that link the entity files
// of one run.
package relate

import (
	"fmt"

	"parcelnorm/internal"
)

// Edge is one emitted relationship between two entity names, e.g.
// "property" and "address" or "sales_1" and "person_2".
type Edge struct {
	From string
	To   string
}

// FileName is the relationship file stem, e.g. "relationship_sales_1_to_person_2".
func (e Edge) FileName() string {
	return fmt.Sprintf("relationship_%s_to_%s", e.From, e.To)
}

// Record is the serialized form with "./<name>.json" links.
func (e Edge) Record() internal.Relationship {
	return internal.Relationship{
		From: internal.Link{Path: "./" + e.From + ".json"},
		To:   internal.Link{Path: "./" + e.To + ".json"},
	}
}

// Builder only relates entities that were registered as written. Unknown
// endpoints are skipped and duplicates collapse.
type Builder struct {
	known map[string]struct{}
	seen  map[Edge]struct{}
	edges []Edge
}

func NewBuilder() *Builder {
	return &Builder{known: map[string]struct{}{}, seen: map[Edge]struct{}{}}
}

func (b *Builder) Register(names ...string) {
	for _, n := range names {
		if n != "" {
			b.known[n] = struct{}{}
		}
	}
}

func (b *Builder) Known(name string) bool {
	_, ok := b.known[name]
	return ok
}

// Relate adds from→to and reports whether a new edge was recorded.
func (b *Builder) Relate(from, to string) bool {
	if !b.Known(from) || !b.Known(to) || from == to {
		return false
	}
	e := Edge{From: from, To: to}
	if _, dup := b.seen[e]; dup {
		return false
	}
	b.seen[e] = struct{}{}
	b.edges = append(b.edges, e)
	return true
}

// RelateAll relates from to every target in order.
func (b *Builder) RelateAll(from string, to []string) int {
	n := 0
	for _, t := range to {
		if b.Relate(from, t) {
			n++
		}
	}
	return n
}

// Edges returns the relationships in insertion order.
func (b *Builder) Edges() []Edge {
	out := make([]Edge, len(b.edges))
	copy(out, b.edges)
	return out
}

func (b *Builder) Len() int { return len(b.edges) }
