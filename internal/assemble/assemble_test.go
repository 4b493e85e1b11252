package assemble

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"parcelnorm/internal"
	"parcelnorm/internal/county"
	"parcelnorm/internal/owners"
	"parcelnorm/internal/source"
	"parcelnorm/internal/util"
)

// fakeDoc answers lookups from maps keyed by normalized label and table name.
type fakeDoc struct {
	values   map[string]string
	tables   map[string][]source.Row
	headings []string
}

func (d fakeDoc) FindValueNear(labels ...string) (string, bool) {
	for _, l := range labels {
		if v, ok := d.values[util.NormalizeHeader(l)]; ok {
			return v, true
		}
	}
	return "", false
}

func (d fakeDoc) FindRows(table string) []source.Row { return d.tables[table] }
func (d fakeDoc) Headings() []string                 { return d.headings }

func newDoc(values map[string]string) fakeDoc {
	norm := map[string]string{}
	for k, v := range values {
		norm[util.NormalizeHeader(k)] = v
	}
	return fakeDoc{values: norm, tables: map[string][]source.Row{}}
}

func table(headers []string, rows ...[]string) []source.Row {
	var out []source.Row
	for _, r := range rows {
		out = append(out, source.NewRow(headers, r, nil))
	}
	return out
}

func newInput(t *testing.T, countyName string, doc source.Document) *Input {
	t.Helper()
	p, err := county.Load(countyName)
	require.NoError(t, err)
	return NewInput(doc, p, zerolog.Nop())
}

func seed(id string) *source.PropertySeed {
	return &source.PropertySeed{ParcelID: source.Flex(id), RequestIdentifier: util.StringPtr("req-9")}
}

func TestIdentityMismatchAborts(t *testing.T) {
	in := newInput(t, "lee", newDoc(map[string]string{"STRAP": "12-34-56-0000"}))
	in.Seed = seed("99-99-99-9999")

	_, err := All(in)
	var verr *internal.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "error", verr.Type)
	require.Equal(t, "property.parcel_identifier", verr.Path)
	require.Contains(t, verr.Message, "12-34-56-0000")
}

func TestIdentityComparesNormalizedKeys(t *testing.T) {
	in := newInput(t, "lee", newDoc(map[string]string{"STRAP": "12-34-56-0000"}))
	in.Seed = seed("1234560000")

	p, _, err := Property(in)
	require.NoError(t, err)
	require.Equal(t, "1234560000", p.ParcelIdentifier)
	require.Equal(t, "req-9", *p.RequestIdentifier)
}

func TestPropertyFromUseCode(t *testing.T) {
	in := newInput(t, "taylor", newDoc(map[string]string{
		"Parcel ID":         "0100",
		"Use Code":          "0100 SINGLE FAMILY HOME",
		"Year Built":        "1987",
		"Legal Description": "LOT 4  BLK 2  PALM ESTATES",
	}))

	p, cls, err := Property(in)
	require.NoError(t, err)
	require.Equal(t, internal.PropertyBuilding, p.PropertyType)
	require.Equal(t, internal.EstateFeeSimple, *p.OwnershipEstateType)
	require.Equal(t, internal.BuildImproved, *p.BuildStatus)
	require.Equal(t, internal.FormSingleFamilyDetached, *p.StructureForm)
	require.Equal(t, internal.UsageResidential, *p.PropertyUsageType)
	require.Equal(t, 1987, *p.StructureBuiltYear)
	require.Equal(t, "LOT 4 BLK 2 PALM ESTATES", *p.LegalDescriptionText)
	require.Equal(t, "usecode", string(cls.Stage))
}

func TestPropertyTypeNeverEmpty(t *testing.T) {
	in := newInput(t, "pinellas", newDoc(map[string]string{"Property Use": "ZZZZ NOTHING KNOWN"}))
	p, _, err := Property(in)
	require.NoError(t, err)
	require.Equal(t, internal.PropertyBuilding, p.PropertyType)
	require.Nil(t, p.StructureForm)
	require.Equal(t, 1, in.Misses.Len())

	in = newInput(t, "gadsden", newDoc(map[string]string{"Property Use": "ACREAGE NOT CLASSED"}))
	p, _, err = Property(in)
	require.NoError(t, err)
	require.Equal(t, internal.PropertyLandParcel, p.PropertyType)
	require.Equal(t, internal.BuildVacantLand, *p.BuildStatus)
}

func TestParseStreet(t *testing.T) {
	dir := func(d internal.Directional) *internal.Directional { return &d }
	suf := func(s internal.StreetSuffix) *internal.StreetSuffix { return &s }
	cases := []struct {
		line string
		want Street
	}{
		{"1234 N MAIN ST APT 4", Street{Number: util.StringPtr("1234"), PreDir: dir(internal.DirNorth), Name: util.StringPtr("MAIN"), Suffix: suf("St"), Unit: util.StringPtr("4")}},
		{"500 Gulf Blvd #1203", Street{Number: util.StringPtr("500"), Name: util.StringPtr("GULF"), Suffix: suf("Blvd"), Unit: util.StringPtr("1203")}},
		{"77 PALM CT W", Street{Number: util.StringPtr("77"), Name: util.StringPtr("PALM"), Suffix: suf("Ct"), PostDir: dir(internal.DirWest)}},
		{"12 WEST", Street{Number: util.StringPtr("12"), Name: util.StringPtr("WEST")}},
		{"BROADWAY", Street{Name: util.StringPtr("BROADWAY")}},
		{"", Street{}},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, ParseStreet(tc.line)); diff != "" {
				t.Fatalf("ParseStreet(%q) mismatch (-want +got):\n%s", tc.line, diff)
			}
		})
	}
}

func TestAddressPrefersSidecar(t *testing.T) {
	in := newInput(t, "levy", newDoc(map[string]string{"Site Address": "1 OTHER RD"}))
	in.Address = &source.UnnormalizedAddress{
		FullAddress:        "1234 N MAIN ST, WILLISTON, FL 32696-1234",
		Latitude:           "29.38",
		Longitude:          "-82.44",
		CountyJurisdiction: "Levy",
	}

	a := Address(in)
	require.Equal(t, "1234", *a.StreetNumber)
	require.Equal(t, "MAIN", *a.StreetName)
	require.Equal(t, "WILLISTON", *a.CityName)
	require.Equal(t, "FL", *a.StateCode)
	require.Equal(t, "32696", *a.PostalCode)
	require.Equal(t, "1234", *a.PlusFourPostalCode)
	require.Equal(t, "Levy", *a.CountyName)
	require.Equal(t, "US", *a.CountryCode)
	require.Equal(t, 29.38, *a.Latitude)

	g := Geometry(in)
	require.Nil(t, g.Point, "levy keeps coordinates on the address")
}

func TestAddressFromPage(t *testing.T) {
	in := newInput(t, "lee", newDoc(map[string]string{"Site Address": "900 SE 47TH TER"}))
	in.Address = &source.UnnormalizedAddress{Latitude: "26.5", Longitude: "-81.9"}

	a := Address(in)
	require.Equal(t, "900 SE 47TH TER", *a.UnnormalizedAddress)
	require.Equal(t, internal.DirSouthEast, *a.StreetPreDirectionalText)
	require.Equal(t, "47TH", *a.StreetName)
	require.Nil(t, a.CityName)
	require.Equal(t, "FL", *a.StateCode)
	require.Equal(t, "Lee", *a.CountyName)
	require.Nil(t, a.Latitude)

	g := Geometry(in)
	require.NotNil(t, g.Point)
	require.Equal(t, 26.5, *g.Point.Latitude)
}

func TestLot(t *testing.T) {
	doc := newDoc(map[string]string{"Lot Size": "100 x 150"})
	doc.tables["Extra Features"] = table([]string{"Code", "Description", "Units", "Year"},
		[]string{"FN1", "CHAIN LINK FENCE 4FT", "220", "1999"},
		[]string{"PV1", "CONC DRIVEWAY", "600", "1990"},
		[]string{"XX9", "MYSTERY ITEM", "1", ""},
	)
	in := newInput(t, "gadsden", doc)

	lot := Lot(in)
	require.Equal(t, 100.0, *lot.LotWidthFeet)
	require.Equal(t, 150.0, *lot.LotLengthFeet)
	require.Equal(t, 15000.0, *lot.LotAreaSqft)
	require.Equal(t, 0.3444, *lot.LotSizeAcre)
	require.Equal(t, "GreaterThanOneQuarterAcre", *lot.LotType)
	require.Equal(t, internal.ImprovementChainLinkFence, *lot.FencingType)
	require.Equal(t, 220.0, *lot.FenceLength)
	require.Equal(t, internal.ImprovementConcretePaving, *lot.DrivewayMaterial)
	require.Equal(t, []string{"improvement_type"}, in.Misses.Domains())
}

func TestParseDimensions(t *testing.T) {
	w, l := ParseDimensions("75' X 120'")
	require.Equal(t, 75.0, *w)
	require.Equal(t, 120.0, *l)

	w, l = ParseDimensions("IRREGULAR")
	require.Nil(t, w)
	require.Nil(t, l)
}

func TestBuildingTreeFromLabels(t *testing.T) {
	doc := newDoc(map[string]string{
		"Bedrooms":      "3",
		"Bathrooms":     "2.5",
		"Stories":       "2",
		"Heated Area":   "1,850",
		"Exterior Wall": "CB STUCCO",
		"Cooling":       "CENTRAL",
	})
	doc.tables["Sub Area"] = table([]string{"Code", "Description", "Sq Ft"},
		[]string{"BAS", "BAS", "1850"},
		[]string{"FOP", "FOP", "120"},
		[]string{"ZZQ", "ZZQ", "40"},
	)
	in := newInput(t, "gadsden", doc)

	bs := Buildings(in)
	require.Len(t, bs, 1)
	b := bs[0]
	require.Equal(t, internal.ExteriorWall("Stucco"), *b.Structure.ExteriorWallMaterialPrimary)
	require.Equal(t, 2.0, *b.Structure.NumberOfStories)
	require.Nil(t, b.Structure.FinishedBaseArea)
	require.Equal(t, internal.CoolingSystem("CentralAir"), *b.Utility.CoolingSystemType)

	var got []string
	b.Root.Walk(func(parent, node *LayoutNode) {
		got = append(got, node.Layout.SpaceTypeIndex+" "+string(node.Layout.SpaceType))
	})
	want := []string{
		"1 Building",
		"1.1 Floor",
		"1.1.1 Bedroom",
		"1.1.2 Bedroom",
		"1.1.3 Bedroom",
		"1.1.4 Full Bathroom",
		"1.1.5 Full Bathroom",
		"1.1.6 Half Bathroom / Powder Room",
		"1.2 Floor",
		"1.3 Living Area",
		"1.4 Open Porch",
		"1.5 MAPPING NOT AVAILABLE",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("layout tree mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "2nd Floor", *b.Root.Children[1].Layout.FloorLevel)
	require.True(t, *b.Root.Children[3].Layout.IsExterior)
	require.Equal(t, []string{"space_type"}, in.Misses.Domains())
}

func TestBuildingCountsAreBounded(t *testing.T) {
	cases := []struct {
		name       string
		values     map[string]string
		wantFloors int
		wantRooms  int
		wantDomain string
	}{
		{
			name:       "misread stories",
			values:     map[string]string{"Stories": "1,500", "Bedrooms": "2"},
			wantFloors: 0,
			wantRooms:  2,
			wantDomain: missFloorCount,
		},
		{
			name:       "bedroom typo",
			values:     map[string]string{"Stories": "1", "Bedrooms": "300", "Bathrooms": "2"},
			wantFloors: 1,
			wantRooms:  2,
			wantDomain: missRoomCount,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := newInput(t, "gadsden", newDoc(tc.values))
			bs := Buildings(in)
			require.Len(t, bs, 1)

			floors, rooms := 0, 0
			bs[0].Root.Walk(func(parent, node *LayoutNode) {
				switch node.Layout.SpaceType {
				case internal.SpaceBuilding:
				case internal.SpaceFloor:
					floors++
				default:
					rooms++
				}
			})
			require.Equal(t, tc.wantFloors, floors)
			require.Equal(t, tc.wantRooms, rooms)
			require.Equal(t, []string{tc.wantDomain}, in.Misses.Domains())
		})
	}
}

func TestExtraLayouts(t *testing.T) {
	doc := newDoc(map[string]string{"Bedrooms": "1"})
	doc.tables["Extra Features"] = table([]string{"Description", "Qty"},
		[]string{"POOL - RESIDENTIAL", "450"},
		[]string{"CHAIN LINK FENCE", "180"},
		[]string{"SPA", "1"},
		[]string{"SCREEN ENCLOSURE", "900"},
	)
	in := newInput(t, "gadsden", doc)

	r, err := All(in)
	require.NoError(t, err)
	require.Len(t, r.Buildings, 1)

	cases := []struct {
		space internal.SpaceType
		index int
		size  float64
	}{
		{internal.SpaceOutdoorPool, 2, 450},
		{internal.SpaceHotTub, 3, 1},
		{internal.SpaceScreenedPorch, 4, 900},
	}
	require.Len(t, r.Extras, len(cases))
	for i, tc := range cases {
		t.Run(string(tc.space), func(t *testing.T) {
			l := r.Extras[i]
			require.Equal(t, tc.space, l.SpaceType)
			require.Equal(t, tc.index, l.SpaceIndex, "extras number after the buildings")
			require.Equal(t, strconv.Itoa(tc.index), l.SpaceTypeIndex)
			require.Nil(t, l.BuildingNumber)
			require.Equal(t, tc.size, *l.SizeSquareFeet)
			require.True(t, *l.IsExterior)
		})
	}
	require.Equal(t, internal.ImprovementChainLinkFence, *r.Lot.FencingType)
}

func TestBuildingOverrides(t *testing.T) {
	doc := newDoc(map[string]string{"Bedrooms": "2"})
	in := newInput(t, "lee", doc)
	in.Overrides = source.Overrides{
		Structures: []internal.Structure{{NumberOfStories: util.FloatPtr(1)}, {NumberOfStories: util.FloatPtr(1)}},
		Layouts: []internal.Layout{
			{SpaceType: internal.SpaceKitchen},
			{SpaceType: internal.SpaceBedroom, BuildingNumber: util.IntPtr(2)},
		},
	}

	bs := Buildings(in)
	require.Len(t, bs, 2)
	require.Equal(t, 2, *bs[1].Structure.BuildingNumber)

	first := bs[0].Root.Children[0].Children
	require.Len(t, first, 1, "sidecar layouts replace page rooms")
	require.Equal(t, internal.SpaceKitchen, first[0].Layout.SpaceType)
	require.Equal(t, "1.1.1", first[0].Layout.SpaceTypeIndex)

	second := bs[1].Root.Children[0].Children
	require.Len(t, second, 1)
	require.Equal(t, "2.1.1", second[0].Layout.SpaceTypeIndex)
}

func TestSalesFromHTML(t *testing.T) {
	page := `<html><body>
<table id="sales">
  <tr><th>Sale Date</th><th>Sale Price</th><th>Instrument</th><th>Book/Page</th><th>Grantee</th></tr>
  <tr><td>07/01/2010</td><td>$100</td><td>QC</td><td>90/5</td><td>DOE JOHN &amp; JANE</td></tr>
  <tr><td>03/15/2021</td><td>$250,000.00</td><td>WD</td><td><a href="/or/100/20.pdf">100/20</a></td><td>DOE JOHN &amp; JANE</td></tr>
  <tr><td></td><td></td><td>CT</td><td></td><td></td></tr>
  <tr><td>01/02/1999</td><td>$0</td><td>SHERIFF CERT</td><td></td><td>ACME HOLDINGS LLC</td></tr>
</table></body></html>`
	doc, err := source.ParseHTML(strings.NewReader(page), "https://records.example.gov/")
	require.NoError(t, err)

	in := newInput(t, "gadsden", doc)
	in.Profile.Tables.Sales = "sales"
	sales := Sales(in)
	require.Len(t, sales, 3)

	first := sales[0]
	require.Equal(t, "2021-03-15", *first.Sales.OwnershipTransferDate)
	require.Equal(t, 250000.0, *first.Sales.PurchasePriceAmount)
	require.Equal(t, internal.DeedWarranty, first.Deed.DeedType)
	require.Equal(t, "100", *first.Deed.Book)
	require.Equal(t, "20", *first.Deed.Page)
	require.Len(t, first.Files, 1)
	require.Equal(t, "https://records.example.gov/or/100/20.pdf", first.Files[0].OriginalURL)
	require.Equal(t, internal.DocumentWarrantyDeed, first.Files[0].DocumentType)
	require.Equal(t, "pdf", *first.Files[0].FileFormat)

	require.Equal(t, internal.DeedQuitclaim, sales[1].Deed.DeedType)
	require.Empty(t, sales[1].Files)
	require.Equal(t, internal.DeedSheriffs, sales[2].Deed.DeedType)

	// both sales name the same two people
	require.Equal(t, first.Buyers, sales[1].Buyers)
	require.Len(t, first.Buyers, 2)
	persons := in.Owners.Persons()
	require.Len(t, persons, 2)
	require.Equal(t, "John", persons[0].FirstName)
	require.Equal(t, "Jane", persons[1].FirstName)
	require.Equal(t, "Doe", persons[1].LastName)
	require.Equal(t, []owners.Ref{{Kind: owners.KindCompany, Index: 1}}, sales[2].Buyers)
}

func TestSalesOwnerSidecar(t *testing.T) {
	doc := newDoc(map[string]string{"Owner": "SMITH JOHN"})
	doc.tables["Sales"] = table([]string{"Date", "Price", "Deed"},
		[]string{"2015-06-01", "90000", "WD"},
		[]string{"2020-01-10", "150000", "AFFIDAVIT"},
	)
	in := newInput(t, "taylor", doc)
	in.Overrides.OwnersByDate = map[string][]owners.Structured{
		"2015-06-01": {{Type: "company", Name: "SUNSHINE TRUST"}},
	}

	sales := Sales(in)
	require.Len(t, sales, 2)
	require.Equal(t, internal.DeedMiscellaneous, sales[0].Deed.DeedType, "taylor falls back to Miscellaneous")
	require.Equal(t, []owners.Ref{{Kind: owners.KindPerson, Index: 1}}, sales[0].Buyers, "page owner attaches to the latest sale")
	require.Equal(t, []owners.Ref{{Kind: owners.KindCompany, Index: 1}}, sales[1].Buyers)
	require.Equal(t, "Smith", in.Owners.Persons()[0].LastName)
}

func TestTaxes(t *testing.T) {
	doc := newDoc(nil)
	doc.tables["Valuation"] = table([]string{"Tax Year", "Land Value", "Building Value", "Just Market Value", "Assessed Value", "Taxable Value", "Taxes"},
		[]string{"2022", "$40,000", "$110,000", "$150,000", "$120,000", "$95,000", "$2,400.00"},
		[]string{"2024", "$50,000", "$130,000", "$180,000", "$140,000", "$115,000", "$3,000.00"},
		[]string{"2022", "$1", "$1", "$1", "$1", "$1", "$1"},
		[]string{"N/A", "$1", "$1", "$1", "$1", "$1", "$1"},
	)
	in := newInput(t, "gadsden", doc)

	taxes := Taxes(in)
	require.Len(t, taxes, 2)
	require.Equal(t, 2024, taxes[0].TaxYear)
	require.Equal(t, 180000.0, *taxes[0].MarketValueAmount)
	require.Equal(t, 250.0, *taxes[0].MonthlyTaxAmount)
	require.Equal(t, 2022, taxes[1].TaxYear)
	require.Equal(t, 40000.0, *taxes[1].LandAmount, "first row of a year wins")
}

func TestGeometryParcelFromCSVRow(t *testing.T) {
	in := newInput(t, "gadsden", newDoc(nil))
	ring := []internal.Point{{Latitude: 0, Longitude: 0}, {Latitude: 0, Longitude: 1}, {Latitude: 1, Longitude: 1}}
	in.Geometry = []source.GeometryRow{{ParcelPolygon: ring, BuildingPolygons: [][]internal.Point{ring, ring[:2]}}}

	g := Geometry(in)
	require.NotNil(t, g.Parcel)
	require.Len(t, g.Parcel.Polygon, 3)
	require.Nil(t, g.Point)
	require.NotNil(t, Footprint(in, ring))
	require.Nil(t, Footprint(in, ring[:2]))
}

func TestAllOnEmptyPage(t *testing.T) {
	in := newInput(t, "gadsden", newDoc(nil))
	r, err := All(in)
	require.NoError(t, err)
	require.NotNil(t, r.Property)
	require.NotNil(t, r.Address)
	require.NotNil(t, r.Lot)
	require.Empty(t, r.Buildings)
	require.Empty(t, r.Sales)
	require.Empty(t, r.Taxes)
	require.Empty(t, r.Persons)
	require.Equal(t, internal.PropertyBuilding, r.Property.PropertyType)
}
