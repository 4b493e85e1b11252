package mapping

import (
	"parcelnorm/internal"
	"parcelnorm/internal/util"
)

// Stage is one signal in the property classification fallback chain.
type Stage string

const (
	StageDescription Stage = "description"
	StageUseCode     Stage = "usecode"
	StageUnits       Stage = "units"
	StageHeadings    Stage = "headings"
)

var DefaultOrder = []Stage{StageDescription, StageUseCode, StageUnits, StageHeadings}

// CodeTable resolves a county use-code string such as "0100 SINGLE FAMILY".
type CodeTable interface {
	Classify(raw string) (Class, bool)
}

// Signals are the raw classification inputs found on one page.
type Signals struct {
	Description string
	UseCode     string
	Units       *int
	Headings    []string
}

type Classifier struct {
	Order  []Stage
	Codes  CodeTable
	Misses *Misses
}

type Classification struct {
	Class
	// Stage that produced Class, empty when every stage failed.
	Stage  Stage
	Vacant bool
}

// Classify runs the stages in order and stops at the first one that
// resolves anything. Later stages never override an earlier answer.
func (c Classifier) Classify(s Signals) Classification {
	out := Classification{Vacant: vacantHint(s)}

	order := c.Order
	if len(order) == 0 {
		order = DefaultOrder
	}
	for _, st := range order {
		cls, ok := c.stage(st, s)
		if ok && !cls.IsZero() {
			out.Class = cls
			out.Stage = st
			break
		}
	}

	if out.Usage == "" {
		for _, raw := range []string{s.Description, s.UseCode} {
			if u, ok := UsageKeywords.Lookup(raw); ok {
				out.Usage = u
				break
			}
		}
	}
	if out.Stage == "" {
		c.Misses.Add(PropertyKeywords.Name, util.FirstNonEmpty(s.Description, s.UseCode))
	}
	return out
}

func (c Classifier) stage(st Stage, s Signals) (Class, bool) {
	switch st {
	case StageDescription:
		return PropertyKeywords.Lookup(s.Description)
	case StageUseCode:
		if c.Codes == nil || util.CleanText(s.UseCode) == "" {
			return Class{}, false
		}
		return c.Codes.Classify(s.UseCode)
	case StageUnits:
		return UnitsClass(s.Units)
	case StageHeadings:
		for _, h := range s.Headings {
			if form, ok := StructureForms.Lookup(h); ok {
				return Residential(form), true
			}
		}
	}
	return Class{}, false
}

// UnitsClass derives a residential structure form from a unit count.
func UnitsClass(units *int) (Class, bool) {
	if units == nil || *units < 1 {
		return Class{}, false
	}
	var form internal.StructureForm
	switch *units {
	case 1:
		form = internal.FormSingleFamilyDetached
	case 2:
		form = internal.FormDuplex
	case 3:
		form = internal.FormTriplex
	case 4:
		form = internal.FormQuadplex
	default:
		form = internal.FormMultiFamily5Plus
	}
	return Residential(form), true
}

func vacantHint(s Signals) bool {
	for _, raw := range []string{s.Description, s.UseCode} {
		if Normalize(raw).Has("VACANT", "VAC", "LAND", "ACREAGE") {
			return true
		}
	}
	return false
}
