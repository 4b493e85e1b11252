package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const page = `<html><body>
<h2>Parcel Summary</h2>
<table id="summary">
  <tr><th>Parcel ID:</th><td>12-34-56-0000</td></tr>
  <tr><td><strong>Use Code</strong></td><td>0100 SINGLE FAMILY HOME</td></tr>
</table>
<div class="row"><b>Zoning:</b> RS-1</div>
<div>Subdivision: PALM ESTATES UNIT 2</div>
<dl><dt>Year Built</dt><dd>1987</dd></dl>
<table><tr><th>Bedrooms</th><th>Bathrooms</th></tr><tr><td>3</td><td>2.5</td></tr></table>

<h3>Sales History</h3>
<div>
<table>
  <tr><th>Sale Date</th><th>Sale Price</th><th>Instrument</th><th>Book/Page</th></tr>
  <tr><td>03/15/2021</td><td>$250,000.00</td><td>WD</td><td><a href="/docs/view?b=100&p=20">100/20</a></td></tr>
  <tr><td></td><td></td><td></td><td></td></tr>
  <tr><td>07/01/2010</td><td>$100</td><td>QC</td><td></td></tr>
</table>
</div>

<table summary="Land Lines"><caption>Land</caption>
  <tr><td>Acres</td><td>Frontage</td></tr>
  <tr><td>0.25</td><td>75</td></tr>
</table>
</body></html>`

func parsePage(t *testing.T) *HTMLDocument {
	t.Helper()
	d, err := ParseHTML(strings.NewReader(page), "https://appraiser.example.gov/parcel/")
	require.NoError(t, err)
	return d
}

func TestFindValueNear(t *testing.T) {
	d := parsePage(t)
	cases := []struct {
		labels []string
		want   string
	}{
		{[]string{"parcel id"}, "12-34-56-0000"},
		{[]string{"Use Code"}, "0100 SINGLE FAMILY HOME"},
		{[]string{"Zoning"}, "RS-1"},
		{[]string{"Subdivision"}, "PALM ESTATES UNIT 2"},
		{[]string{"Year Built"}, "1987"},
		{[]string{"Bedrooms"}, "3"},
		{[]string{"Baths", "Bathrooms"}, "2.5"},
	}
	for _, tc := range cases {
		t.Run(tc.labels[0], func(t *testing.T) {
			got, ok := d.FindValueNear(tc.labels...)
			require.True(t, ok)
			require.Equal(t, tc.want, got)
		})
	}

	_, ok := d.FindValueNear("Flood Zone")
	require.False(t, ok)
}

func TestParcelIdentifier(t *testing.T) {
	got, ok := parsePage(t).ParcelIdentifier()
	require.True(t, ok)
	require.Equal(t, "12-34-56-0000", got)
}

func TestFindRows(t *testing.T) {
	d := parsePage(t)

	sales := d.FindRows("sales history")
	require.Len(t, sales, 2)
	require.Equal(t, "03/15/2021", sales[0].Get("sale date"))
	require.Equal(t, "$250,000.00", sales[0].Get("price"))
	require.Equal(t, "QC", sales[1].Get("instrument", "deed"))
	require.Equal(t, "https://appraiser.example.gov/docs/view?b=100&p=20", sales[0].Link("book"))
	require.Equal(t, sales[0].Link("book"), sales[0].Link())
	require.Empty(t, sales[1].Link())

	land := d.FindRows("land")
	require.Len(t, land, 1)
	require.Equal(t, "0.25", land[0].Get("acres"))

	byID := d.FindRows("summary")
	require.Len(t, byID, 1)

	require.Nil(t, d.FindRows("permits"))
}

func TestHeadings(t *testing.T) {
	require.Equal(t, []string{"Parcel Summary", "Sales History", "Land"}, parsePage(t).Headings())
}

func TestRowProbePrefersExactHeader(t *testing.T) {
	r := NewRow([]string{"Sale Price Adjusted", "Price"}, []string{"1", "2"}, nil)
	require.Equal(t, "2", r.Get("price"))
	require.Equal(t, "1", r.Get("adjusted"))
	require.Equal(t, "", r.Get("missing"))
	require.True(t, r.Has("sale"))
}
