package source

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"parcelnorm/internal"
	"parcelnorm/internal/util"
)

// GeometryRow is one row of geometry.csv.
type GeometryRow struct {
	ParcelPolygon    []internal.Point
	BuildingPolygons [][]internal.Point
	Latitude         *float64
	Longitude        *float64
}

// LoadGeometryCSV returns nil without error when the file does not exist.
func LoadGeometryCSV(path string) ([]GeometryRow, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	return ReadGeometryCSV(f)
}

func ReadGeometryCSV(r io.Reader) ([]GeometryRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("geometry csv header: %w", err)
	}
	cols := map[string]int{}
	for i, h := range header {
		cols[util.NormalizeHeader(h)] = i
	}
	get := func(rec []string, name string) string {
		if i, ok := cols[name]; ok && i < len(rec) {
			return rec[i]
		}
		return ""
	}

	var out []GeometryRow
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return out, fmt.Errorf("geometry csv: %w", err)
		}
		row := GeometryRow{
			Latitude:  util.ParseNumber(get(rec, "latitude")),
			Longitude: util.ParseNumber(get(rec, "longitude")),
		}
		if polys := ParsePolygons(get(rec, "parcel_polygon")); len(polys) > 0 {
			row.ParcelPolygon = polys[0]
		}
		row.BuildingPolygons = ParsePolygons(get(rec, "building_polygon"))
		out = append(out, row)
	}
	return out, nil
}

// ParsePolygons reads a JSON coordinate value and returns every outer ring
// with at least three distinct vertices. Accepted shapes: [[lon,lat],...],
// GeoJSON polygon and multipolygon nesting, a GeoJSON geometry object, and
// [{"latitude":..,"longitude":..},...].
func ParsePolygons(raw string) [][]internal.Point {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil
	}
	if obj, ok := v.(map[string]any); ok {
		v = obj["coordinates"]
	}

	var out [][]internal.Point
	for _, ring := range outerRings(v) {
		if ValidPolygon(ring) {
			out = append(out, ring)
		}
	}
	return out
}

// ValidPolygon requires three distinct vertices.
func ValidPolygon(ring []internal.Point) bool {
	seen := map[internal.Point]struct{}{}
	for _, p := range ring {
		seen[p] = struct{}{}
	}
	return len(seen) >= 3
}

func outerRings(v any) [][]internal.Point {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil
	}
	if ring, ok := asRing(list); ok {
		return [][]internal.Point{ring}
	}

	// polygon: first ring is the outer boundary
	if inner, ok := list[0].([]any); ok {
		if ring, ok := asRing(inner); ok {
			return [][]internal.Point{ring}
		}
	}

	// multipolygon
	var out [][]internal.Point
	for _, item := range list {
		out = append(out, outerRings(item)...)
	}
	return out
}

func asRing(list []any) ([]internal.Point, bool) {
	ring := make([]internal.Point, 0, len(list))
	for _, item := range list {
		switch p := item.(type) {
		case []any:
			if len(p) < 2 {
				return nil, false
			}
			lon, ok1 := p[0].(float64)
			lat, ok2 := p[1].(float64)
			if !ok1 || !ok2 {
				return nil, false
			}
			ring = append(ring, internal.Point{Latitude: lat, Longitude: lon})
		case map[string]any:
			lat, ok1 := p["latitude"].(float64)
			lon, ok2 := p["longitude"].(float64)
			if !ok1 || !ok2 {
				return nil, false
			}
			ring = append(ring, internal.Point{Latitude: lat, Longitude: lon})
		default:
			return nil, false
		}
	}
	return ring, true
}

// PointInPolygon is the ray-casting test.
func PointInPolygon(lat, lon float64, ring []internal.Point) bool {
	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		yi, xi := ring[i].Latitude, ring[i].Longitude
		yj, xj := ring[j].Latitude, ring[j].Longitude
		if (yi > lat) != (yj > lat) && lon < (xj-xi)*(lat-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}
