package mapping_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"parcelnorm/internal"
	"parcelnorm/internal/mapping"
	"parcelnorm/internal/mapping/usecode"
)

func intp(v int) *int { return &v }

func TestClassifyStageOrder(t *testing.T) {
	lee, err := usecode.Named("lee")
	if err != nil {
		t.Fatal(err)
	}
	signals := mapping.Signals{
		Description: "SINGLE FAMILY",
		UseCode:     "0400 CONDOMINIUM",
		Units:       intp(2),
	}

	cases := []struct {
		name  string
		order []mapping.Stage
		stage mapping.Stage
		form  internal.StructureForm
	}{
		{"description first", []mapping.Stage{mapping.StageDescription, mapping.StageUseCode}, mapping.StageDescription, internal.FormSingleFamilyDetached},
		{"usecode first", []mapping.Stage{mapping.StageUseCode, mapping.StageDescription}, mapping.StageUseCode, internal.FormApartmentUnit},
		{"units only", []mapping.Stage{mapping.StageUnits}, mapping.StageUnits, internal.FormDuplex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := mapping.Classifier{Order: tc.order, Codes: lee}
			got := c.Classify(signals)
			if got.Stage != tc.stage || got.Form != tc.form {
				t.Fatalf("got stage %q form %q, want %q %q", got.Stage, got.Form, tc.stage, tc.form)
			}
		})
	}
}

func TestClassifyFallsThroughEmptyStages(t *testing.T) {
	c := mapping.Classifier{}
	got := c.Classify(mapping.Signals{
		Description: "SOMETHING ODD",
		Headings:    []string{"Parcel Summary", "Townhouse Details"},
	})
	if got.Stage != mapping.StageHeadings {
		t.Fatalf("stage = %q", got.Stage)
	}
	want := mapping.Residential(internal.FormTownhouseRowhouse)
	if diff := cmp.Diff(want, got.Class); diff != "" {
		t.Fatalf("class mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyRecordsMiss(t *testing.T) {
	var misses mapping.Misses
	c := mapping.Classifier{Order: []mapping.Stage{mapping.StageDescription}, Misses: &misses}
	got := c.Classify(mapping.Signals{Description: "ZZ SPECIAL PURPOSE"})
	if got.Stage != "" || !got.IsZero() {
		t.Fatalf("expected no classification, got %+v", got)
	}
	items := misses.Items()
	if len(items) != 1 || items[0].Domain != "property_classification" || items[0].Raw != "ZZ SPECIAL PURPOSE" {
		t.Fatalf("misses = %+v", items)
	}
}

func TestClassifyVacantHint(t *testing.T) {
	c := mapping.Classifier{Order: []mapping.Stage{mapping.StageDescription}}
	got := c.Classify(mapping.Signals{Description: "VACANT RESIDENTIAL"})
	if !got.Vacant || got.PropertyType != internal.PropertyLandParcel || got.Build != internal.BuildVacantLand {
		t.Fatalf("got %+v", got)
	}
}

func TestClassifyFillsUsage(t *testing.T) {
	c := mapping.Classifier{Order: []mapping.Stage{mapping.StageUnits}}
	got := c.Classify(mapping.Signals{Description: "COUNTY OWNED", Units: intp(1)})
	if got.Usage != internal.UsageResidential {
		t.Fatalf("units stage should keep residential usage, got %q", got.Usage)
	}

	got = c.Classify(mapping.Signals{Description: "COUNTY OWNED"})
	if got.Usage != internal.UsageGovernmentProperty {
		t.Fatalf("usage = %q", got.Usage)
	}
}

func TestUnitsClass(t *testing.T) {
	cases := []struct {
		units *int
		form  internal.StructureForm
		ok    bool
	}{
		{nil, "", false},
		{intp(0), "", false},
		{intp(1), internal.FormSingleFamilyDetached, true},
		{intp(2), internal.FormDuplex, true},
		{intp(3), internal.FormTriplex, true},
		{intp(4), internal.FormQuadplex, true},
		{intp(12), internal.FormMultiFamily5Plus, true},
	}
	for _, tc := range cases {
		got, ok := mapping.UnitsClass(tc.units)
		if ok != tc.ok || got.Form != tc.form {
			t.Fatalf("UnitsClass(%v) = %q, %v", tc.units, got.Form, ok)
		}
	}
}

func TestPropertyKeywords(t *testing.T) {
	cases := map[string]mapping.Class{
		"VACANT COMMERCIAL":  mapping.Land(internal.BuildVacantLand, internal.UsageCommercial),
		"Condominium":        mapping.Residential(internal.FormApartmentUnit),
		"MOBILE HOME":        mapping.Residential(internal.FormMobileHome),
		"Office Building":    mapping.Improved(internal.UsageOfficeBuilding),
		"10 - Timberland":    mapping.Land("", internal.UsageTimberLand),
		"RIGHT OF WAY":       mapping.Land(internal.BuildVacantLand, internal.UsageTransitionalProperty).WithEstate(internal.EstateRightOfWay),
		"Single Family Res.": mapping.Residential(internal.FormSingleFamilyDetached),
		"Mobile Home Park":   mapping.Land(internal.BuildImproved, internal.UsageMobileHomePark),
	}
	for in, want := range cases {
		got, ok := mapping.PropertyKeywords.Lookup(in)
		if !ok {
			t.Fatalf("%q: no match", in)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("%q (-want +got):\n%s", in, diff)
		}
	}
}
