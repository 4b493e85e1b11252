package owners

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"parcelnorm/internal"
	"parcelnorm/internal/util"
)

func person(first, middle, last, suffix string) Owner {
	p := &internal.Person{FirstName: first, LastName: last}
	if middle != "" {
		p.MiddleName = util.StringPtr(middle)
	}
	if suffix != "" {
		p.SuffixName = util.StringPtr(suffix)
	}
	return Owner{Person: p}
}

func company(name string) Owner {
	return Owner{Company: &internal.Company{Name: name}}
}

func TestParse(t *testing.T) {
	cases := []struct {
		raw  string
		want []Owner
	}{
		{"SMITH, JOHN Q JR", []Owner{person("John", "Q", "Smith", "Jr.")}},
		{"DOE JOHN & JANE", []Owner{person("John", "", "Doe", ""), person("Jane", "", "Doe", "")}},
		{"SMITH JOHN AND MARY K", []Owner{person("John", "", "Smith", ""), person("Mary", "K", "Smith", "")}},
		{"SMITH JOHN & JONES MARY", []Owner{person("John", "", "Smith", ""), person("Mary", "", "Jones", "")}},
		{"O'BRIEN PATRICK J TRUSTEE", []Owner{person("Patrick", "J", "O'Brien", "")}},
		{"GARCIA MARIA ET AL", []Owner{person("Maria", "", "Garcia", "")}},
		{"VAN DYKE ROBERT III", []Owner{person("Robert", "", "Van Dyke", "III")}},
		{"ACME HOLDINGS LLC", []Owner{company("ACME HOLDINGS LLC")}},
		{"Sunset Palms Homeowners Association, Inc.", []Owner{company("Sunset Palms Homeowners Association, Inc.")}},
		{"JONES FAMILY TRUST; SMITH, ANN", []Owner{company("JONES FAMILY TRUST"), person("Ann", "", "Smith", "")}},
		{"LEE COUNTY", []Owner{company("LEE COUNTY")}},
		{"LE JOHN", []Owner{person("John", "", "Le", "")}},
		{"HE WEI", []Owner{person("Wei", "", "He", "")}},
		{"REM ANNA", []Owner{person("Anna", "", "Rem", "")}},
		{"NGUYEN LE THI", []Owner{person("Le", "Thi", "Nguyen", "")}},
		{"TRAN LE & ANH", []Owner{person("Le", "", "Tran", ""), person("Anh", "", "Tran", "")}},
		{"SMITH JOHN LE", []Owner{person("John", "", "Smith", "")}},
		{"BROWN MARY TR", []Owner{person("Mary", "", "Brown", "")}},
		{"DAVIS, ROBERT LIFE ESTATE", []Owner{person("Robert", "", "Davis", "")}},
		{"", nil},
	}
	p := NewParser(zerolog.Nop())
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got := p.Parse(tc.raw)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Parse(%q) mismatch (-want +got):\n%s", tc.raw, diff)
			}
		})
	}
}

func TestParsePrefix(t *testing.T) {
	got := NewParser(zerolog.Nop()).Parse("DR JONES ALICE")
	if len(got) != 1 || got[0].Person == nil {
		t.Fatalf("got %+v", got)
	}
	if util.Deref(got[0].Person.PrefixName) != "Dr." || got[0].Person.FirstName != "Alice" || got[0].Person.LastName != "Jones" {
		t.Fatalf("got %+v", got[0].Person)
	}
}

func TestParseRejectsFragments(t *testing.T) {
	var buf bytes.Buffer
	p := NewParser(zerolog.New(&buf))

	for _, raw := range []string{"CONT", "-", "SMITH", "12345 MAIN"} {
		if got := p.Parse(raw); len(got) != 0 {
			t.Fatalf("Parse(%q) = %+v, want nothing", raw, got)
		}
	}
	if !strings.Contains(buf.String(), "owner name rejected") {
		t.Fatalf("expected a warn log, got %q", buf.String())
	}
}

func TestDisplayRejoinsName(t *testing.T) {
	got := NewParser(zerolog.Nop()).Parse("SMITH, JOHN Q JR")
	if len(got) != 1 {
		t.Fatalf("got %+v", got)
	}
	if d := got[0].Display(); d != "John Q Smith Jr." {
		t.Fatalf("Display() = %q", d)
	}
	again := NewParser(zerolog.Nop()).Parse("Smith, John Q Jr.")
	if diff := cmp.Diff(got, again); diff != "" {
		t.Fatalf("reparse mismatch:\n%s", diff)
	}
}

func TestFromStructured(t *testing.T) {
	p := NewParser(zerolog.Nop())

	o, ok := p.FromStructured(Structured{Type: "person", FirstName: "JOHN", LastName: "DOE", SuffixName: util.StringPtr("jr")})
	if !ok || o.Person.FirstName != "John" || util.Deref(o.Person.SuffixName) != "Jr." {
		t.Fatalf("got %+v, %v", o.Person, ok)
	}

	o, ok = p.FromStructured(Structured{Name: "ACME LLC"})
	if !ok || o.Company == nil || o.Company.Name != "ACME LLC" {
		t.Fatalf("got %+v, %v", o, ok)
	}

	if _, ok := p.FromStructured(Structured{Type: "person", FirstName: "CO", LastName: "DOE"}); ok {
		t.Fatalf("fragment first name must be rejected")
	}
}

func TestIsCompany(t *testing.T) {
	cases := map[string]bool{
		"ABC Limited Liability Company": true,
		"FIRST BAPTIST CHURCH":          true,
		"CITY OF TAMPA":                 true,
		"A.B.C. L.L.C.":                 true,
		"SMITH JOHN":                    false,
		"TRUSTEE SMITH JOHN":            false,
	}
	for in, want := range cases {
		if got := IsCompany(in); got != want {
			t.Fatalf("IsCompany(%q) = %v", in, got)
		}
	}
}
