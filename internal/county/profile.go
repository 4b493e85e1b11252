package county

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"

	"parcelnorm/internal"
	"parcelnorm/internal/mapping"
	"parcelnorm/internal/mapping/usecode"
	"parcelnorm/internal/util"
)

//go:embed profiles/*.json5
var profileFS embed.FS

const defaultsFile = "defaults"

type Labels struct {
	ParcelID         []string `json:"parcel_id"`
	Owner            []string `json:"owner"`
	SiteAddress      []string `json:"site_address"`
	LegalDescription []string `json:"legal_description"`
	UseDescription   []string `json:"use_description"`
	UseCode          []string `json:"use_code"`
	Units            []string `json:"units"`
	YearBuilt        []string `json:"year_built"`
	EffectiveYear    []string `json:"effective_year"`
	Subdivision      []string `json:"subdivision"`
	Zoning           []string `json:"zoning"`
	LivingArea       []string `json:"living_area"`
	TotalArea        []string `json:"total_area"`
	Acreage          []string `json:"acreage"`
	LotSize          []string `json:"lot_size"`
	LotSqft          []string `json:"lot_sqft"`
	Bedrooms         []string `json:"bedrooms"`
	Bathrooms        []string `json:"bathrooms"`
	HalfBaths        []string `json:"half_baths"`
	Stories          []string `json:"stories"`
	ExteriorWall     []string `json:"exterior_wall"`
	RoofCover        []string `json:"roof_cover"`
	RoofStructure    []string `json:"roof_structure"`
	Foundation       []string `json:"foundation"`
	Flooring         []string `json:"flooring"`
	InteriorWall     []string `json:"interior_wall"`
	Style            []string `json:"style"`
	Cooling          []string `json:"cooling"`
	Heating          []string `json:"heating"`
	HeatingFuel      []string `json:"heating_fuel"`
	Sewer            []string `json:"sewer"`
	Water            []string `json:"water"`
	TaxYear          []string `json:"tax_year"`
	AssessedValue    []string `json:"assessed_value"`
	MarketValue      []string `json:"market_value"`
	LandValue        []string `json:"land_value"`
	BuildingValue    []string `json:"building_value"`
	TaxableValue     []string `json:"taxable_value"`
	TaxAmount        []string `json:"tax_amount"`
}

// Tables name the page tables by id, caption, heading or header text.
type Tables struct {
	Sales         string `json:"sales"`
	Buildings     string `json:"buildings"`
	SubAreas      string `json:"sub_areas"`
	ExtraFeatures string `json:"extra_features"`
	Values        string `json:"values"`
	Land          string `json:"land"`
}

// Profile is everything that differs between counties.
type Profile struct {
	Name                string          `json:"name"`
	CountyName          string          `json:"county_name"`
	StateCode           string          `json:"state_code"`
	CountryCode         string          `json:"country_code"`
	BaseURL             string          `json:"base_url"`
	UseCodeTable        string          `json:"use_code_table"`
	ClassificationOrder []mapping.Stage `json:"classification_order"`
	DeedDefault         string          `json:"deed_default"`
	AddressLatLong      bool            `json:"address_lat_long"`
	ShapefileIDField    string          `json:"shapefile_id_field"`
	DateFormats         []string        `json:"date_formats"`
	Labels              Labels          `json:"labels"`
	Tables              Tables          `json:"tables"`
}

func readProfile(name string) (Profile, error) {
	var p Profile
	b, err := profileFS.ReadFile(path.Join("profiles", name+".json5"))
	if err != nil {
		return p, fmt.Errorf("unknown county profile: %s", name)
	}
	if err := json5.Unmarshal(b, &p); err != nil {
		return p, fmt.Errorf("parse profile %s: %w", name, err)
	}
	return p, nil
}

// Names lists the embedded county profiles.
func Names() []string {
	entries, err := profileFS.ReadDir("profiles")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".json5")
		if name != defaultsFile {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Load merges the named county profile over the shared defaults.
func Load(name string) (Profile, error) {
	return LoadWithOverride(name, "")
}

// LoadWithOverride also merges a local JSON5 file over the result. Fields the
// override leaves empty keep their profile value.
func LoadWithOverride(name, overridePath string) (Profile, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	out, err := readProfile(defaultsFile)
	if err != nil {
		return out, err
	}
	county, err := readProfile(name)
	if err != nil {
		return out, err
	}
	if err := mergo.Merge(&out, county, mergo.WithOverride); err != nil {
		return out, fmt.Errorf("merge profile %s: %w", name, err)
	}

	if overridePath != "" {
		b, err := os.ReadFile(overridePath)
		if err != nil {
			return out, fmt.Errorf("read profile override: %w", err)
		}
		var override Profile
		if err := json5.Unmarshal(b, &override); err != nil {
			return out, fmt.Errorf("parse profile override: %w", err)
		}
		if err := mergo.Merge(&out, override, mergo.WithOverride); err != nil {
			return out, fmt.Errorf("merge profile override: %w", err)
		}
	}

	return out, out.Validate()
}

func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile has no name")
	}
	if len(p.ClassificationOrder) == 0 {
		return fmt.Errorf("profile %s: empty classification_order", p.Name)
	}
	seen := map[mapping.Stage]struct{}{}
	for _, st := range p.ClassificationOrder {
		switch st {
		case mapping.StageDescription, mapping.StageUseCode, mapping.StageUnits, mapping.StageHeadings:
		default:
			return fmt.Errorf("profile %s: unknown classification stage %q", p.Name, st)
		}
		if _, dup := seen[st]; dup {
			return fmt.Errorf("profile %s: stage %q listed twice", p.Name, st)
		}
		seen[st] = struct{}{}
	}
	switch internal.DeedType(p.DeedDefault) {
	case internal.DeedMappingNotAvailable, internal.DeedMiscellaneous:
	default:
		return fmt.Errorf("profile %s: deed_default must be %q or %q", p.Name, internal.DeedMappingNotAvailable, internal.DeedMiscellaneous)
	}
	for _, f := range p.DateFormats {
		if !util.KnownDateFormat(util.DateFormat(f)) {
			return fmt.Errorf("profile %s: unknown date format %q", p.Name, f)
		}
	}
	return nil
}

// Classifier builds the property classification chain in the profile's order.
func (p Profile) Classifier(misses *mapping.Misses) (mapping.Classifier, error) {
	codes, err := usecode.Named(p.UseCodeTable)
	if err != nil {
		return mapping.Classifier{}, err
	}
	c := mapping.Classifier{Order: p.ClassificationOrder, Misses: misses}
	// A nil *Index inside the interface would not compare equal to nil.
	if codes != nil {
		c.Codes = codes
	}
	return c, nil
}

// DeedTypes is the deed table with the profile's fallback value.
func (p Profile) DeedTypes() mapping.Table[internal.DeedType] {
	return mapping.DeedTypes.WithDefault(internal.DeedType(p.DeedDefault))
}

func (p Profile) Dates() []util.DateFormat {
	out := make([]util.DateFormat, 0, len(p.DateFormats))
	for _, f := range p.DateFormats {
		out = append(out, util.DateFormat(f))
	}
	return out
}
