package assemble

import (
	"math"
	"regexp"
	"strconv"

	"parcelnorm/internal"
	"parcelnorm/internal/mapping"
	"parcelnorm/internal/source"
	"parcelnorm/internal/util"
)

const sqftPerAcre = 43560.0

var reDimensions = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:'|FT)?\s*[X×]\s*(\d+(?:\.\d+)?)`)

// ParseDimensions reads "100 x 150" as width 100 and length 150.
func ParseDimensions(raw string) (width, length *float64) {
	m := reDimensions.FindStringSubmatch(util.CleanText(raw))
	if m == nil {
		return nil, nil
	}
	w, err1 := strconv.ParseFloat(m[1], 64)
	l, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil || w <= 0 || l <= 0 {
		return nil, nil
	}
	return &w, &l
}

// Lot assembles lot.json. It is always written, possibly empty.
func Lot(in *Input) *internal.Lot {
	labels := in.Profile.Labels
	lot := &internal.Lot{Provenance: in.provenance()}

	lot.LotSizeAcre = util.ParseNumber(in.value(labels.Acreage))
	lot.LotAreaSqft = util.ParseNumber(in.value(labels.LotSqft))
	lot.LotWidthFeet, lot.LotLengthFeet = ParseDimensions(in.value(labels.LotSize))

	if land := in.rows(in.Profile.Tables.Land); len(land) > 0 {
		row := land[0]
		if lot.LotSizeAcre == nil {
			lot.LotSizeAcre = util.ParseNumber(row.Get(labels.Acreage...))
		}
		if lot.LotAreaSqft == nil {
			lot.LotAreaSqft = util.ParseNumber(row.Get(labels.LotSqft...))
		}
		if lot.LotWidthFeet == nil {
			lot.LotWidthFeet = util.ParseNumber(row.Get("Frontage", "Front", "Width"))
			lot.LotLengthFeet = util.ParseNumber(row.Get("Depth", "Length"))
		}
	}

	if lot.LotAreaSqft == nil && lot.LotWidthFeet != nil && lot.LotLengthFeet != nil {
		lot.LotAreaSqft = util.FloatPtr(*lot.LotWidthFeet * *lot.LotLengthFeet)
	}
	if lot.LotSizeAcre == nil && lot.LotAreaSqft != nil {
		lot.LotSizeAcre = util.FloatPtr(math.Round(*lot.LotAreaSqft/sqftPerAcre*10000) / 10000)
	}
	if lot.LotSizeAcre != nil {
		lotType := "LessThanOrEqualToOneQuarterAcre"
		if *lot.LotSizeAcre > 0.25 {
			lotType = "GreaterThanOneQuarterAcre"
		}
		lot.LotType = &lotType
	}

	for _, f := range in.features() {
		switch {
		case mapping.IsFence(f.kind) && lot.FencingType == nil:
			kind := f.kind
			lot.FencingType = &kind
			lot.FenceLength = f.units
		case mapping.IsDriveway(f.kind) && lot.DrivewayMaterial == nil:
			kind := f.kind
			lot.DrivewayMaterial = &kind
		}
	}
	return lot
}

type feature struct {
	description string
	kind        internal.ImprovementType
	units       *float64
}

var featureDescription = []string{"Description", "Feature", "Item", "Code", "Type"}

// features reads the extra-feature table once per call. Rows that match no
// improvement rule are recorded as misses and skipped.
func (in *Input) features() []feature {
	var out []feature
	for _, row := range in.rows(in.Profile.Tables.ExtraFeatures) {
		desc := row.Get(featureDescription...)
		kind, ok := mapping.ImprovementTypes.Lookup(desc)
		if !ok {
			in.Misses.Add(mapping.ImprovementTypes.Name, desc)
			continue
		}
		out = append(out, feature{
			description: desc,
			kind:        kind,
			units:       featureUnits(row),
		})
	}
	return out
}

func featureUnits(row source.Row) *float64 {
	return util.ParseNumber(row.Get("Units", "Length", "Quantity", "Qty", "Size"))
}
