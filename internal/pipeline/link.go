package pipeline

import (
	"fmt"

	"parcelnorm/internal/assemble"
	"parcelnorm/internal/owners"
	"parcelnorm/internal/relate"
)

// entity is one output file before it is written.
type entity struct {
	Kind   string
	Name   string
	Record any
}

// plan is the named, linked form of one record set.
type plan struct {
	entities []entity
	edges    []relate.Edge
	counts   map[string]int
}

func (p *plan) add(kind string, record any) string {
	p.counts[kind]++
	name := kind
	switch kind {
	case "property", "address", "lot", "geometry_point", "geometry_parcel":
	default:
		name = fmt.Sprintf("%s_%d", kind, p.counts[kind])
	}
	p.entities = append(p.entities, entity{Kind: kind, Name: name, Record: record})
	return name
}

// link names every record the way it will be written and relates them.
// Names are registered before any edge so a relationship never points at a
// file that is not written.
func link(r *assemble.Records, in *assemble.Input) *plan {
	p := &plan{counts: map[string]int{}}
	b := relate.NewBuilder()

	property := p.add("property", r.Property)
	address := p.add("address", r.Address)
	lot := p.add("lot", r.Lot)

	type buildingNames struct {
		root      string
		structure string
		utility   string
		footprint string
	}
	var roots []string
	var layoutEdges [][2]string
	var buildings []buildingNames
	for _, bldg := range r.Buildings {
		var names buildingNames
		nodeNames := map[*assemble.LayoutNode]string{}
		bldg.Root.Walk(func(parent, node *assemble.LayoutNode) {
			name := p.add("layout", node.Layout)
			nodeNames[node] = name
			if parent != nil {
				layoutEdges = append(layoutEdges, [2]string{nodeNames[parent], name})
			}
		})
		names.root = nodeNames[bldg.Root]
		roots = append(roots, names.root)
		if bldg.Structure != nil {
			names.structure = p.add("structure", bldg.Structure)
		}
		if bldg.Utility != nil {
			names.utility = p.add("utility", bldg.Utility)
		}
		if g := assemble.Footprint(in, bldg.Footprint); g != nil {
			names.footprint = p.add("geometry_building", g)
		}
		buildings = append(buildings, names)
	}
	for _, extra := range r.Extras {
		roots = append(roots, p.add("layout", extra))
	}

	var point, parcel string
	if r.Geometry.Point != nil {
		point = p.add("geometry_point", r.Geometry.Point)
	}
	if r.Geometry.Parcel != nil {
		parcel = p.add("geometry_parcel", r.Geometry.Parcel)
	}

	type saleNames struct {
		sale   string
		deed   string
		files  []string
		buyers []owners.Ref
	}
	var sales []saleNames
	for _, s := range r.Sales {
		names := saleNames{sale: p.add("sales", s.Sales), buyers: s.Buyers}
		if s.Deed != nil {
			names.deed = p.add("deed", s.Deed)
			for _, f := range s.Files {
				names.files = append(names.files, p.add("file", f))
			}
		}
		sales = append(sales, names)
	}

	var taxes []string
	for _, t := range r.Taxes {
		taxes = append(taxes, p.add("tax", t))
	}
	for _, person := range r.Persons {
		p.add(string(owners.KindPerson), person)
	}
	for _, company := range r.Companies {
		p.add(string(owners.KindCompany), company)
	}

	for _, e := range p.entities {
		b.Register(e.Name)
	}

	b.Relate(property, address)
	b.Relate(property, lot)
	b.RelateAll(property, taxes)
	for _, s := range sales {
		b.Relate(property, s.sale)
	}
	for _, s := range sales {
		b.Relate(s.sale, s.deed)
		b.RelateAll(s.deed, s.files)
		for _, ref := range s.buyers {
			b.Relate(s.sale, ref.Name())
		}
	}
	b.RelateAll(property, roots)
	for _, e := range layoutEdges {
		b.Relate(e[0], e[1])
	}
	for _, names := range buildings {
		b.Relate(names.root, names.structure)
		b.Relate(names.root, names.utility)
		b.Relate(names.root, names.footprint)
	}
	b.Relate(property, parcel)
	b.Relate(address, point)

	p.edges = b.Edges()
	p.counts["relationship"] = len(p.edges)
	return p
}
