// Package assemble turns one located document plus its sidecars into the
// normalized record set. Assemblers never fail on missing data; the parcel
// identity check is the only error.
package assemble

import (
	"github.com/rs/zerolog"

	"parcelnorm/internal"
	"parcelnorm/internal/county"
	"parcelnorm/internal/mapping"
	"parcelnorm/internal/owners"
	"parcelnorm/internal/source"
	"parcelnorm/internal/util"
)

// Input is everything loaded for one run.
type Input struct {
	Doc       source.Document
	Seed      *source.PropertySeed
	Address   *source.UnnormalizedAddress
	Overrides source.Overrides
	Geometry  []source.GeometryRow
	Parcels   []source.Parcel
	Profile   county.Profile

	Misses *mapping.Misses
	Owners *owners.Registry
	Parser *owners.Parser
	Log    zerolog.Logger
}

// NewInput fills the per-run state the caller left nil.
func NewInput(doc source.Document, profile county.Profile, log zerolog.Logger) *Input {
	return &Input{
		Doc:     doc,
		Profile: profile,
		Misses:  &mapping.Misses{},
		Owners:  owners.NewRegistry(),
		Parser:  owners.NewParser(log),
		Log:     log,
	}
}

func (in *Input) provenance() internal.Provenance {
	return in.Seed.Provenance()
}

// value reads the first label found on the page, cleaned.
func (in *Input) value(labels []string) string {
	if in.Doc == nil || len(labels) == 0 {
		return ""
	}
	v, _ := in.Doc.FindValueNear(labels...)
	return util.CleanText(v)
}

func (in *Input) rows(table string) []source.Row {
	if in.Doc == nil || table == "" {
		return nil
	}
	return in.Doc.FindRows(table)
}

func (in *Input) headings() []string {
	if in.Doc == nil {
		return nil
	}
	return in.Doc.Headings()
}

// ParcelID is the expected identifier when a seed supplies one, else the
// identifier printed on the page.
func (in *Input) ParcelID() string {
	if in.Seed != nil && in.Seed.ParcelID != "" {
		return in.Seed.ParcelID.String()
	}
	return in.value(in.Profile.Labels.ParcelID)
}

// fields reads labelled values either from a table row or from the page.
type fields func(labels []string) string

func rowFields(r source.Row) fields {
	return func(labels []string) string { return r.Get(labels...) }
}

func (in *Input) pageFields() fields {
	return in.value
}
