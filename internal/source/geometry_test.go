package source

import (
	"path/filepath"
	"strings"
	"testing"

	shp "github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/require"

	"parcelnorm/internal"
)

func TestParsePolygons(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		rings int
		first internal.Point
	}{
		{"lon lat pairs", `[[-82.1,27.5],[-82.2,27.5],[-82.2,27.6]]`, 1, internal.Point{Latitude: 27.5, Longitude: -82.1}},
		{"geojson polygon", `[[[-82.1,27.5],[-82.2,27.5],[-82.2,27.6],[-82.1,27.5]]]`, 1, internal.Point{Latitude: 27.5, Longitude: -82.1}},
		{"multipolygon", `[[[[0,0],[1,0],[1,1]]],[[[5,5],[6,5],[6,6]]]]`, 2, internal.Point{}},
		{"geometry object", `{"type":"Polygon","coordinates":[[[0,0],[0,1],[1,1]]]}`, 1, internal.Point{}},
		{"objects", `[{"latitude":27.5,"longitude":-82.1},{"latitude":27.6,"longitude":-82.1},{"latitude":27.6,"longitude":-82.2}]`, 1, internal.Point{Latitude: 27.5, Longitude: -82.1}},
		{"two vertices", `[[0,0],[1,1]]`, 0, internal.Point{}},
		{"closed triangle missing a vertex", `[[0,0],[1,1],[0,0]]`, 0, internal.Point{}},
		{"garbage", `not json`, 0, internal.Point{}},
		{"empty", ``, 0, internal.Point{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParsePolygons(tc.raw)
			require.Len(t, got, tc.rings)
			if tc.rings > 0 {
				require.Equal(t, tc.first, got[0][0])
			}
		})
	}
}

func TestReadGeometryCSV(t *testing.T) {
	csvData := `latitude,longitude,parcel_polygon,building_polygon
27.5,-82.1,"[[-82.1,27.5],[-82.2,27.5],[-82.2,27.6]]","[[[[0,0],[1,0],[1,1]]],[[[5,5],[6,5],[6,6]]]]"
,,"[[0,0],[1,1]]",
`
	rows, err := ReadGeometryCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, 27.5, *rows[0].Latitude)
	require.Len(t, rows[0].ParcelPolygon, 3)
	require.Len(t, rows[0].BuildingPolygons, 2)
	require.Nil(t, rows[1].Latitude)
	require.Nil(t, rows[1].ParcelPolygon)
	require.Empty(t, rows[1].BuildingPolygons)
}

func TestLoadGeometryCSVMissing(t *testing.T) {
	rows, err := LoadGeometryCSV(filepath.Join(t.TempDir(), "geometry.csv"))
	require.NoError(t, err)
	require.Nil(t, rows)
}

func TestPointInPolygon(t *testing.T) {
	square := []internal.Point{{Latitude: 0, Longitude: 0}, {Latitude: 0, Longitude: 10}, {Latitude: 10, Longitude: 10}, {Latitude: 10, Longitude: 0}}
	require.True(t, PointInPolygon(5, 5, square))
	require.False(t, PointInPolygon(15, 5, square))
}

func writeShapefile(t *testing.T, path string) {
	t.Helper()
	w, err := shp.Create(path, shp.POLYGON)
	require.NoError(t, err)
	require.NoError(t, w.SetFields([]shp.Field{shp.StringField("PARCELID", 25)}))

	squares := []struct {
		id       string
		min, max float64
	}{
		{"11-22-33", 0, 1},
		{"44-55-66", 2, 3},
	}
	for i, sq := range squares {
		poly := shp.Polygon(*shp.NewPolyLine([][]shp.Point{{
			{X: sq.min, Y: sq.min}, {X: sq.min, Y: sq.max}, {X: sq.max, Y: sq.max}, {X: sq.max, Y: sq.min}, {X: sq.min, Y: sq.min},
		}}))
		w.Write(&poly)
		require.NoError(t, w.WriteAttribute(i, 0, sq.id))
	}
	w.Close()
}

func TestShapefileLookup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parcels.shp")
	writeShapefile(t, path)

	parcels, err := LoadShapefile(path)
	require.NoError(t, err)
	require.Len(t, parcels, 2)
	require.Equal(t, "44-55-66", parcels[1].Attrs["PARCELID"])

	ring, ok := FindParcel(parcels, "parcelid", "445566", nil, nil)
	require.True(t, ok)
	require.Equal(t, 2.0, ring[0].Latitude)

	lat, lon := 0.5, 0.5
	ring, ok = FindParcel(parcels, "PARCELID", "no-such-id", &lat, &lon)
	require.True(t, ok)
	require.Equal(t, 0.0, ring[0].Latitude)

	lat = 9
	_, ok = FindParcel(parcels, "", "", &lat, &lon)
	require.False(t, ok)
}

func TestLoadShapefileMissing(t *testing.T) {
	parcels, err := LoadShapefile(filepath.Join(t.TempDir(), "none.shp"))
	require.NoError(t, err)
	require.Nil(t, parcels)
}
