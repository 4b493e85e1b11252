package usecode

import (
	"testing"

	"parcelnorm/internal"
	"parcelnorm/internal/mapping"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		in, code, desc string
	}{
		{"0100 SINGLE FAMILY HOME", "0100", "SINGLE FAMILY HOME"},
		{"0100-SINGLE FAMILY", "0100", "SINGLE FAMILY"},
		{"(0400) CONDOMINIUM", "0400", "CONDOMINIUM"},
		{"01 - Single Family", "01", "Single Family"},
		{"SFR - SINGLE FAMILY RES", "SFR", "SINGLE FAMILY RES"},
		{"VACC", "VACC", "VACC"},
		{"SINGLE FAMILY", "", "SINGLE FAMILY"},
		{"", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			code, desc := Split(tc.in)
			if code != tc.code || desc != tc.desc {
				t.Fatalf("Split(%q) = %q, %q; want %q, %q", tc.in, code, desc, tc.code, tc.desc)
			}
		})
	}
}

func TestSingleFamilyHome(t *testing.T) {
	for _, name := range []string{"florida", "lee", "taylor"} {
		t.Run(name, func(t *testing.T) {
			idx, err := Named(name)
			if err != nil {
				t.Fatal(err)
			}
			got, ok := idx.Classify("0100 SINGLE FAMILY HOME")
			if !ok {
				t.Fatalf("no match")
			}
			want := mapping.Class{
				PropertyType: internal.PropertyBuilding,
				Estate:       internal.EstateFeeSimple,
				Build:        internal.BuildImproved,
				Form:         internal.FormSingleFamilyDetached,
				Usage:        internal.UsageResidential,
			}
			if got != want {
				t.Fatalf("got %+v, want %+v", got, want)
			}
		})
	}
}

func TestLookupOrder(t *testing.T) {
	idx := BuildIndex("test",
		[]Row{
			{"0110", "TOWNHOUSE", mapping.Residential(internal.FormTownhouseRowhouse)},
		},
		[]Row{
			{"01", "SINGLE FAMILY", mapping.Residential(internal.FormSingleFamilyDetached)},
			{"0110", "SHADOWED", mapping.Improved(internal.UsageCommercial)},
			{"04", "CONDOMINIUM", mapping.Residential(internal.FormApartmentUnit)},
		},
	)

	cases := []struct {
		name, code, desc string
		form             internal.StructureForm
		ok               bool
	}{
		{"exact wins over prefix", "0110", "", internal.FormTownhouseRowhouse, true},
		{"first table wins on duplicate code", "0110", "SHADOWED", internal.FormTownhouseRowhouse, true},
		{"longest prefix", "0115", "", internal.FormSingleFamilyDetached, true},
		{"description fallback", "", "CONDOMINIUM UNIT", internal.FormApartmentUnit, true},
		{"code miss falls to description", "77", "TOWNHOUSE END UNIT", internal.FormTownhouseRowhouse, true},
		{"single digit never prefixes", "0", "", "", false},
		{"nothing", "99", "WAREHOUSE", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row, ok := idx.Lookup(tc.code, tc.desc)
			if ok != tc.ok || row.Class.Form != tc.form {
				t.Fatalf("Lookup(%q, %q) = %+v, %v", tc.code, tc.desc, row, ok)
			}
		})
	}
}

func TestCountyLayering(t *testing.T) {
	lee, err := Named("lee")
	if err != nil {
		t.Fatal(err)
	}
	got, ok := lee.Classify("0410 CONDOMINIUM - TIMESHARE")
	if !ok || got.Estate != internal.EstateTimeshare {
		t.Fatalf("got %+v, %v", got, ok)
	}
	// Not in the Lee table; resolved by the statewide row "86".
	got, ok = lee.Classify("8600 COUNTY")
	if !ok || got.Usage != internal.UsageGovernmentProperty {
		t.Fatalf("got %+v, %v", got, ok)
	}

	levy, err := Named("Levy")
	if err != nil {
		t.Fatal(err)
	}
	got, ok = levy.Classify("VACC - VACANT COMMERCIAL")
	if !ok || got.Build != internal.BuildVacantLand || got.Usage != internal.UsageCommercial {
		t.Fatalf("got %+v, %v", got, ok)
	}
	got, ok = levy.Classify("MH")
	if !ok || got.PropertyType != internal.PropertyManufacturedHome {
		t.Fatalf("got %+v, %v", got, ok)
	}

	pinellas, err := Named("pinellas")
	if err != nil {
		t.Fatal(err)
	}
	got, ok = pinellas.Classify("0510 COOPERATIVE")
	if !ok || got.Estate != internal.EstateCooperative {
		t.Fatalf("got %+v, %v", got, ok)
	}
}

func TestNamed(t *testing.T) {
	idx, err := Named("")
	if err != nil || idx != nil {
		t.Fatalf("empty name: %v, %v", idx, err)
	}
	if _, err := Named("gadsden"); err == nil {
		t.Fatalf("expected error for a county without a table")
	}
	var nilIdx *Index
	if _, ok := nilIdx.Lookup("01", "SINGLE FAMILY"); ok {
		t.Fatalf("nil index must not match")
	}
	names := Names()
	if names[0] != "florida" || len(names) != 5 {
		t.Fatalf("Names() = %v", names)
	}
	for _, n := range names {
		idx, err := Named(n)
		if err != nil || idx.Len() == 0 {
			t.Fatalf("Named(%q) = %v, %v", n, idx, err)
		}
	}
}
