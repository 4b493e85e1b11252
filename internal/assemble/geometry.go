package assemble

import (
	"parcelnorm/internal"
	"parcelnorm/internal/source"
)

// Geometries holds the point, parcel boundary and building footprints. Any
// of them may be absent.
type Geometries struct {
	Point  *internal.Geometry
	Parcel *internal.Geometry
}

// Geometry assembles the address point and the parcel boundary. The point
// is only written when the profile keeps coordinates off the address.
func Geometry(in *Input) Geometries {
	var g Geometries
	lat, lon := in.coordinates()
	if !in.Profile.AddressLatLong && lat != nil && lon != nil {
		g.Point = &internal.Geometry{Provenance: in.provenance(), Latitude: lat, Longitude: lon}
	}

	var ring []internal.Point
	for _, row := range in.Geometry {
		if row.ParcelPolygon != nil {
			ring = row.ParcelPolygon
			break
		}
	}
	if ring == nil && len(in.Parcels) > 0 {
		if r, ok := source.FindParcel(in.Parcels, in.Profile.ShapefileIDField, in.ParcelID(), lat, lon); ok {
			ring = r
		} else {
			in.Log.Debug().Str("parcel", in.ParcelID()).Msg("no shapefile parcel matched")
		}
	}
	if source.ValidPolygon(ring) {
		g.Parcel = &internal.Geometry{Provenance: in.provenance(), Polygon: ring}
	}
	return g
}

// Footprint wraps a building polygon, nil when it has fewer than three
// vertices.
func Footprint(in *Input, ring []internal.Point) *internal.Geometry {
	if !source.ValidPolygon(ring) {
		return nil
	}
	return &internal.Geometry{Provenance: in.provenance(), Polygon: ring}
}
