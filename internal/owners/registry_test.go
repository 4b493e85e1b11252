package owners

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestRegistryDedup(t *testing.T) {
	p := NewParser(zerolog.Nop())
	r := NewRegistry()

	first := r.AddAll(p.Parse("SMITH, JOHN Q"))
	second := r.AddAll(p.Parse("SMITH JOHN Q; ACME LLC"))
	third := r.AddAll(p.Parse("Acme LLC"))

	if len(r.Persons()) != 1 || len(r.Companies()) != 1 {
		t.Fatalf("persons=%d companies=%d", len(r.Persons()), len(r.Companies()))
	}
	if first[0] != second[0] || first[0].Name() != "person_1" {
		t.Fatalf("first=%v second=%v", first, second)
	}
	if second[1].Name() != "company_1" || third[0] != second[1] {
		t.Fatalf("second=%v third=%v", second, third)
	}
	if r.Len() != 2 {
		t.Fatalf("Len() = %d", r.Len())
	}
}

func TestRegistryMiddleNameDistinguishes(t *testing.T) {
	p := NewParser(zerolog.Nop())
	r := NewRegistry()
	a := r.AddAll(p.Parse("DOE JOHN A"))
	b := r.AddAll(p.Parse("DOE JOHN B"))
	if a[0] == b[0] {
		t.Fatalf("different middle names must not merge")
	}
	if refs := r.AddAll(p.Parse("DOE JOHN A & DOE JOHN A")); len(refs) != 1 {
		t.Fatalf("refs = %v", refs)
	}
}
