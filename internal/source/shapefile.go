package source

import (
	"errors"
	"math"
	"os"
	"strings"

	shp "github.com/jonas-p/go-shp"

	"parcelnorm/internal"
	"parcelnorm/internal/util"
)

// Parcel is one polygon feature of a parcel shapefile with its DBF row.
type Parcel struct {
	Rings  [][]internal.Point
	Attrs  map[string]string
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

// LoadShapefile reads every polygon feature. A missing file is not an error.
func LoadShapefile(path string) ([]Parcel, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	r, err := shp.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	fields := r.Fields()

	var out []Parcel
	for r.Next() {
		idx, shape := r.Shape()
		poly, ok := shape.(*shp.Polygon)
		if !ok {
			continue
		}

		p := Parcel{
			Attrs:  map[string]string{},
			MinLat: math.MaxFloat64,
			MinLon: math.MaxFloat64,
			MaxLat: -math.MaxFloat64,
			MaxLon: -math.MaxFloat64,
		}
		numParts := len(poly.Parts)
		for part := 0; part < numParts; part++ {
			start := poly.Parts[part]
			end := int32(len(poly.Points))
			if part+1 < numParts {
				end = poly.Parts[part+1]
			}
			ring := make([]internal.Point, 0, int(end-start))
			for i := start; i < end; i++ {
				pt := poly.Points[i]
				ring = append(ring, internal.Point{Latitude: pt.Y, Longitude: pt.X})
				p.MinLat = math.Min(p.MinLat, pt.Y)
				p.MaxLat = math.Max(p.MaxLat, pt.Y)
				p.MinLon = math.Min(p.MinLon, pt.X)
				p.MaxLon = math.Max(p.MaxLon, pt.X)
			}
			p.Rings = append(p.Rings, ring)
		}

		for i, f := range fields {
			p.Attrs[strings.ToUpper(f.String())] = strings.TrimSpace(r.ReadAttribute(idx, i))
		}
		out = append(out, p)
	}
	return out, nil
}

// FindParcel picks the boundary for a parcel: the feature whose idField
// equals the parcel id, else the feature containing the point.
func FindParcel(parcels []Parcel, idField, parcelID string, lat, lon *float64) ([]internal.Point, bool) {
	if idField != "" && parcelID != "" {
		field := strings.ToUpper(idField)
		want := util.NormalizeKey(parcelID)
		for _, p := range parcels {
			if util.NormalizeKey(p.Attrs[field]) == want && len(p.Rings) > 0 && ValidPolygon(p.Rings[0]) {
				return p.Rings[0], true
			}
		}
	}
	if lat == nil || lon == nil {
		return nil, false
	}
	for _, p := range parcels {
		if *lat < p.MinLat || *lat > p.MaxLat || *lon < p.MinLon || *lon > p.MaxLon {
			continue
		}
		for _, ring := range p.Rings {
			if PointInPolygon(*lat, *lon, ring) && ValidPolygon(ring) {
				return ring, true
			}
		}
	}
	return nil, false
}
