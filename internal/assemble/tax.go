package assemble

import (
	"math"
	"sort"

	"parcelnorm/internal"
	"parcelnorm/internal/util"
)

// Taxes assembles one record per distinct tax year, most recent first. The
// value-history table wins; a page with a single set of value labels gives
// one record.
func Taxes(in *Input) []*internal.Tax {
	var sources []fields
	for _, row := range in.rows(in.Profile.Tables.Values) {
		sources = append(sources, rowFields(row))
	}
	if len(sources) == 0 {
		sources = append(sources, in.pageFields())
	}

	l := in.Profile.Labels
	seen := map[int]struct{}{}
	var out []*internal.Tax
	for _, f := range sources {
		year := util.ParseYear(f(l.TaxYear))
		if year == nil {
			continue
		}
		if _, dup := seen[*year]; dup {
			continue
		}
		t := &internal.Tax{
			Provenance:          in.provenance(),
			TaxYear:             *year,
			AssessedValueAmount: util.ParseNumber(f(l.AssessedValue)),
			MarketValueAmount:   util.ParseNumber(f(l.MarketValue)),
			BuildingAmount:      util.ParseNumber(f(l.BuildingValue)),
			LandAmount:          util.ParseNumber(f(l.LandValue)),
			TaxableValueAmount:  util.ParseNumber(f(l.TaxableValue)),
			YearlyTaxAmount:     util.ParseNumber(f(l.TaxAmount)),
		}
		if t.AssessedValueAmount == nil && t.MarketValueAmount == nil && t.BuildingAmount == nil &&
			t.LandAmount == nil && t.TaxableValueAmount == nil && t.YearlyTaxAmount == nil {
			continue
		}
		if t.YearlyTaxAmount != nil {
			t.MonthlyTaxAmount = util.FloatPtr(math.Round(*t.YearlyTaxAmount/12*100) / 100)
		}
		seen[*year] = struct{}{}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].TaxYear > out[j].TaxYear })
	return out
}
