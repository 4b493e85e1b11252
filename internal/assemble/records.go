package assemble

import (
	"parcelnorm/internal"
	"parcelnorm/internal/mapping"
)

// Records is the complete in-memory record set of one document.
type Records struct {
	Property       *internal.Property
	Classification mapping.Classification
	Address        *internal.Address
	Lot            *internal.Lot
	Buildings      []Building
	Extras         []*internal.Layout
	Sales          []Sale
	Taxes          []*internal.Tax
	Geometry       Geometries
	Persons        []*internal.Person
	Companies      []*internal.Company
}

// All runs every assembler. Only the identity check returns an error that
// is a *internal.ValidationError; other errors are configuration problems.
func All(in *Input) (*Records, error) {
	prop, cls, err := Property(in)
	if err != nil {
		return nil, err
	}
	r := &Records{
		Property:       prop,
		Classification: cls,
		Address:        Address(in),
		Lot:            Lot(in),
		Buildings:      Buildings(in),
		Sales:          Sales(in),
		Taxes:          Taxes(in),
		Geometry:       Geometry(in),
	}
	r.Extras = ExtraLayouts(in, len(r.Buildings)+1)

	prov := in.provenance()
	for _, p := range in.Owners.Persons() {
		p.Provenance = prov
	}
	for _, c := range in.Owners.Companies() {
		c.Provenance = prov
	}
	r.Persons = in.Owners.Persons()
	r.Companies = in.Owners.Companies()
	return r, nil
}
