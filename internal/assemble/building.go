package assemble

import (
	"fmt"
	"math"
	"strconv"

	"parcelnorm/internal"
	"parcelnorm/internal/mapping"
	"parcelnorm/internal/util"
)

// Counts past these limits are misread columns, not buildings. They are
// recorded as misses and produce no layouts.
const (
	maxFloors = 10
	maxRooms  = 30

	missFloorCount = "floor_count"
	missRoomCount  = "room_count"
)

// LayoutNode is one space in a building tree.
type LayoutNode struct {
	Layout   *internal.Layout
	Children []*LayoutNode
}

// Walk visits the node and its descendants depth first, parents before
// children.
func (n *LayoutNode) Walk(fn func(parent, node *LayoutNode)) {
	var walk func(parent, node *LayoutNode)
	walk = func(parent, node *LayoutNode) {
		fn(parent, node)
		for _, c := range node.Children {
			walk(node, c)
		}
	}
	walk(nil, n)
}

func (n *LayoutNode) add(space internal.SpaceType, building int) *LayoutNode {
	child := &LayoutNode{Layout: &internal.Layout{
		Provenance:     n.Layout.Provenance,
		SpaceType:      space,
		SpaceIndex:     len(n.Children) + 1,
		SpaceTypeIndex: fmt.Sprintf("%s.%d", n.Layout.SpaceTypeIndex, len(n.Children)+1),
		BuildingNumber: util.IntPtr(building),
	}}
	n.Children = append(n.Children, child)
	return child
}

// Building groups the records of one physical building. Root is the
// building-level layout; Structure and Utility may be nil.
type Building struct {
	Number    int
	Structure *internal.Structure
	Utility   *internal.Utility
	Root      *LayoutNode
	Footprint []internal.Point
}

var exteriorSpaces = map[internal.SpaceType]struct{}{
	internal.SpaceOpenPorch:     {},
	internal.SpaceScreenedPorch: {},
	internal.SpacePatio:         {},
	internal.SpaceDeck:          {},
	internal.SpaceBalcony:       {},
	internal.SpaceLanai:         {},
	internal.SpaceOutdoorPool:   {},
	internal.SpaceHotTub:        {},
	internal.SpaceStoop:         {},
}

// Buildings assembles one building per row of the building table, or one
// building from page labels when the page has no such table. Sidecar
// structures, utilities and layouts replace what the page gives.
func Buildings(in *Input) []Building {
	var sources []fields
	for _, row := range in.rows(in.Profile.Tables.Buildings) {
		sources = append(sources, rowFields(row))
	}
	if len(sources) == 0 && in.hasBuildingLabels() {
		sources = append(sources, in.pageFields())
	}

	count := max(len(sources), len(in.Overrides.Structures), len(in.Overrides.Utilities))
	if count == 0 {
		return nil
	}

	subAreas := in.subAreas()
	var footprints [][]internal.Point
	for _, row := range in.Geometry {
		footprints = append(footprints, row.BuildingPolygons...)
	}

	out := make([]Building, 0, count)
	for i := 0; i < count; i++ {
		n := i + 1
		var f fields
		if i < len(sources) {
			f = sources[i]
		} else {
			f = func([]string) string { return "" }
		}

		b := Building{
			Number:    n,
			Structure: in.structure(n, f),
			Utility:   in.utility(n, f, i == 0),
		}
		if i < len(in.Overrides.Structures) {
			s := in.Overrides.Structures[i]
			s.Provenance = in.provenance()
			s.BuildingNumber = util.IntPtr(n)
			b.Structure = &s
		}
		if i < len(in.Overrides.Utilities) {
			u := in.Overrides.Utilities[i]
			u.Provenance = in.provenance()
			u.BuildingNumber = util.IntPtr(n)
			b.Utility = &u
		}
		b.Root = in.layoutTree(n, f, b.Structure, subAreas[n])
		if i < len(footprints) {
			b.Footprint = footprints[i]
		}
		out = append(out, b)
	}
	return out
}

func (in *Input) hasBuildingLabels() bool {
	l := in.Profile.Labels
	for _, labels := range [][]string{l.YearBuilt, l.LivingArea, l.Bedrooms, l.Bathrooms, l.Stories, l.ExteriorWall, l.RoofCover} {
		if in.value(labels) != "" {
			return true
		}
	}
	return false
}

func (in *Input) structure(n int, f fields) *internal.Structure {
	l := in.Profile.Labels
	s := &internal.Structure{
		Provenance:                         in.provenance(),
		BuildingNumber:                     util.IntPtr(n),
		ArchitecturalStyleType:             mapping.ArchitecturalStyles.PtrWith(f(l.Style), in.Misses),
		ExteriorWallMaterialPrimary:        mapping.ExteriorWalls.PtrWith(f(l.ExteriorWall), in.Misses),
		RoofCoveringMaterial:               mapping.RoofCoverings.PtrWith(f(l.RoofCover), in.Misses),
		RoofDesignType:                     mapping.RoofDesigns.PtrWith(f(l.RoofStructure), in.Misses),
		FoundationType:                     mapping.Foundations.PtrWith(f(l.Foundation), in.Misses),
		FlooringMaterialPrimary:            mapping.Floorings.PtrWith(f(l.Flooring), in.Misses),
		InteriorWallSurfaceMaterialPrimary: mapping.InteriorWalls.PtrWith(f(l.InteriorWall), in.Misses),
		NumberOfStories:                    util.ParseNumber(f(l.Stories)),
	}
	if living := util.ParseNumber(f(l.LivingArea)); living != nil {
		if s.NumberOfStories == nil || *s.NumberOfStories <= 1 {
			s.FinishedBaseArea = living
		}
	}
	if s.ArchitecturalStyleType == nil && s.ExteriorWallMaterialPrimary == nil && s.RoofCoveringMaterial == nil &&
		s.RoofDesignType == nil && s.FoundationType == nil && s.FlooringMaterialPrimary == nil &&
		s.InteriorWallSurfaceMaterialPrimary == nil && s.NumberOfStories == nil && s.FinishedBaseArea == nil {
		return nil
	}
	return s
}

// utility reads building systems. Sewer and water are parcel level, so they
// are only read from the page for the first building.
func (in *Input) utility(n int, f fields, first bool) *internal.Utility {
	l := in.Profile.Labels
	u := &internal.Utility{
		Provenance:        in.provenance(),
		BuildingNumber:    util.IntPtr(n),
		CoolingSystemType: mapping.CoolingSystems.PtrWith(f(l.Cooling), in.Misses),
		HeatingSystemType: mapping.HeatingSystems.PtrWith(f(l.Heating), in.Misses),
		HeatingFuelType:   mapping.HeatingFuels.PtrWith(f(l.HeatingFuel), in.Misses),
	}
	if first {
		u.SewerType = mapping.SewerTypes.PtrWith(util.FirstNonEmpty(f(l.Sewer), in.value(l.Sewer)), in.Misses)
		u.WaterSourceType = mapping.WaterSources.PtrWith(util.FirstNonEmpty(f(l.Water), in.value(l.Water)), in.Misses)
	}
	if u.CoolingSystemType == nil && u.HeatingSystemType == nil && u.HeatingFuelType == nil &&
		u.SewerType == nil && u.WaterSourceType == nil {
		return nil
	}
	return u
}

type subArea struct {
	description string
	size        *float64
}

var (
	subAreaDescription = []string{"Description", "Sub Area", "Code", "Type"}
	subAreaSize        = []string{"Heated Area", "Gross Area", "Area", "Sq Ft", "Square Feet", "Size"}
	subAreaBuilding    = []string{"Building", "Bldg", "Card"}
)

// subAreas groups sub-area rows by building number. Rows without a building
// column belong to building 1.
func (in *Input) subAreas() map[int][]subArea {
	out := map[int][]subArea{}
	for _, row := range in.rows(in.Profile.Tables.SubAreas) {
		desc := row.Get(subAreaDescription...)
		if desc == "" {
			continue
		}
		n := 1
		if b := util.ParseInt(row.Get(subAreaBuilding...)); b != nil && *b > 0 {
			n = *b
		}
		out[n] = append(out[n], subArea{description: desc, size: util.ParseNumber(row.Get(subAreaSize...))})
	}
	return out
}

// layoutTree builds building > floors > rooms. Bedrooms and bathrooms hang
// off the first floor when floors are known; sub-areas hang off the building.
func (in *Input) layoutTree(n int, f fields, s *internal.Structure, areas []subArea) *LayoutNode {
	l := in.Profile.Labels
	root := &LayoutNode{Layout: &internal.Layout{
		Provenance:     in.provenance(),
		SpaceType:      internal.SpaceBuilding,
		SpaceIndex:     n,
		SpaceTypeIndex: strconv.Itoa(n),
		BuildingNumber: util.IntPtr(n),
		SizeSquareFeet: util.ParseNumber(util.FirstNonEmpty(f(l.TotalArea), f(l.LivingArea))),
	}}

	var stories *float64
	if s != nil {
		stories = s.NumberOfStories
	}
	if stories == nil {
		stories = util.ParseNumber(f(l.Stories))
	}
	roomParent := root
	if stories != nil && *stories > maxFloors {
		in.Misses.Add(missFloorCount, strconv.FormatFloat(*stories, 'f', -1, 64))
	} else if stories != nil && *stories >= 1 {
		floors := int(math.Ceil(*stories))
		for i := 1; i <= floors; i++ {
			floor := root.add(internal.SpaceFloor, n)
			floor.Layout.FloorLevel = util.StringPtr(floorLevel(i))
			if i == 1 {
				roomParent = floor
			}
		}
	}

	if override := in.overrideLayouts(n); len(override) > 0 {
		for _, o := range override {
			room := roomParent.add(o.SpaceType, n)
			keep := *room.Layout
			*room.Layout = o
			room.Layout.Provenance = keep.Provenance
			room.Layout.SpaceIndex = keep.SpaceIndex
			room.Layout.SpaceTypeIndex = keep.SpaceTypeIndex
			room.Layout.BuildingNumber = keep.BuildingNumber
			if room.Layout.SpaceType == "" {
				room.Layout.SpaceType = internal.SpaceMappingNotAvailable
			}
		}
		return root
	}

	full, half := bathCounts(f(l.Bathrooms), f(l.HalfBaths))
	rooms := []struct {
		space internal.SpaceType
		count int
	}{
		{internal.SpaceBedroom, util.Deref(util.ParseInt(f(l.Bedrooms)))},
		{internal.SpaceFullBathroom, full},
		{internal.SpaceHalfBathroom, half},
	}
	for _, r := range rooms {
		if r.count > maxRooms {
			in.Misses.Add(missRoomCount, fmt.Sprintf("%s %d", r.space, r.count))
			continue
		}
		for i := 0; i < r.count; i++ {
			room := roomParent.add(r.space, n)
			room.Layout.IsFinished = util.BoolPtr(true)
		}
	}

	for _, a := range areas {
		space := mapping.SpaceTypes.MapWith(a.description, in.Misses)
		node := root.add(space, n)
		node.Layout.SizeSquareFeet = a.size
		node.Layout.SourceDescription = util.StringPtr(a.description)
		if _, ok := exteriorSpaces[space]; ok {
			node.Layout.IsExterior = util.BoolPtr(true)
		}
		if space == internal.SpaceLivingArea {
			node.Layout.IsFinished = util.BoolPtr(true)
		}
	}
	return root
}

func (in *Input) overrideLayouts(n int) []internal.Layout {
	var out []internal.Layout
	for _, l := range in.Overrides.Layouts {
		b := 1
		if l.BuildingNumber != nil {
			b = *l.BuildingNumber
		}
		if b == n && l.SpaceType != internal.SpaceBuilding && l.SpaceType != internal.SpaceFloor {
			out = append(out, l)
		}
	}
	return out
}

// bathCounts reads "2.5" as two full and one half bath unless the page has
// its own half-bath count.
func bathCounts(baths, halfBaths string) (full, half int) {
	total := util.ParseNumber(baths)
	if total != nil && *total > 0 {
		full = int(*total)
		if *total-float64(full) >= 0.5 {
			half = 1
		}
	}
	if h := util.ParseInt(halfBaths); h != nil {
		half = *h
	}
	return full, half
}

func floorLevel(i int) string {
	suffix := "th"
	switch i % 10 {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	}
	if i%100 >= 11 && i%100 <= 13 {
		suffix = "th"
	}
	return fmt.Sprintf("%d%s Floor", i, suffix)
}

// ExtraLayouts turns pool, spa, shed and similar extra features into
// parcel-level layouts with no building. They are numbered after the
// buildings, starting at first.
func ExtraLayouts(in *Input, first int) []*internal.Layout {
	var out []*internal.Layout
	for _, f := range in.features() {
		space, ok := mapping.SpaceTypes.Lookup(f.description)
		if !ok || space == internal.SpaceBuilding || space == internal.SpaceFloor {
			continue
		}
		idx := first + len(out)
		l := &internal.Layout{
			Provenance:        in.provenance(),
			SpaceType:         space,
			SpaceIndex:        idx,
			SpaceTypeIndex:    strconv.Itoa(idx),
			SizeSquareFeet:    f.units,
			SourceDescription: util.StringPtr(f.description),
		}
		if _, ok := exteriorSpaces[space]; ok {
			l.IsExterior = util.BoolPtr(true)
		}
		out = append(out, l)
	}
	return out
}
