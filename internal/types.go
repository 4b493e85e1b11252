package internal

import "fmt"

type SourceHTTPRequest struct {
	Method                string              `json:"method,omitempty"`
	URL                   string              `json:"url,omitempty"`
	MultiValueQueryString map[string][]string `json:"multiValueQueryString,omitempty"`
	Headers               map[string]string   `json:"headers,omitempty"`
	JSON                  map[string]any      `json:"json,omitempty"`
	Body                  *string             `json:"body,omitempty"`
}

// Provenance is embedded in every output record.
type Provenance struct {
	SourceHTTPRequest *SourceHTTPRequest `json:"source_http_request,omitempty"`
	RequestIdentifier *string            `json:"request_identifier,omitempty"`
}

type Property struct {
	Provenance
	ParcelIdentifier     string               `json:"parcel_identifier"`
	LegalDescriptionText *string              `json:"property_legal_description_text"`
	StructureBuiltYear   *int                 `json:"property_structure_built_year"`
	EffectiveBuiltYear   *int                 `json:"property_effective_built_year"`
	Subdivision          *string              `json:"subdivision"`
	Zoning               *string              `json:"zoning"`
	PropertyType         PropertyType         `json:"property_type"`
	OwnershipEstateType  *OwnershipEstateType `json:"ownership_estate_type"`
	BuildStatus          *BuildStatus         `json:"build_status"`
	StructureForm        *StructureForm       `json:"structure_form"`
	PropertyUsageType    *PropertyUsageType   `json:"property_usage_type"`
	NumberOfUnits        *int                 `json:"number_of_units"`
	LivableFloorArea     *float64             `json:"livable_floor_area"`
	TotalArea            *float64             `json:"total_area"`
	HistoricDesignation  *bool                `json:"historic_designation"`
}

type Address struct {
	Provenance
	UnnormalizedAddress       *string       `json:"unnormalized_address"`
	StreetNumber              *string       `json:"street_number"`
	StreetPreDirectionalText  *Directional  `json:"street_pre_directional_text"`
	StreetName                *string       `json:"street_name"`
	StreetSuffixType          *StreetSuffix `json:"street_suffix_type"`
	StreetPostDirectionalText *Directional  `json:"street_post_directional_text"`
	UnitIdentifier            *string       `json:"unit_identifier"`
	CityName                  *string       `json:"city_name"`
	StateCode                 *string       `json:"state_code"`
	PostalCode                *string       `json:"postal_code"`
	PlusFourPostalCode        *string       `json:"plus_four_postal_code"`
	CountyName                *string       `json:"county_name"`
	CountryCode               *string       `json:"country_code"`
	Latitude                  *float64      `json:"latitude,omitempty"`
	Longitude                 *float64      `json:"longitude,omitempty"`
	Township                  *string       `json:"township"`
	Range                     *string       `json:"range"`
	Section                   *string       `json:"section"`
}

type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Geometry struct {
	Provenance
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Polygon   []Point  `json:"polygon,omitempty"`
}

type Lot struct {
	Provenance
	LotType             *string          `json:"lot_type"`
	LotLengthFeet       *float64         `json:"lot_length_feet"`
	LotWidthFeet        *float64         `json:"lot_width_feet"`
	LotAreaSqft         *float64         `json:"lot_area_sqft"`
	LotSizeAcre         *float64         `json:"lot_size_acre"`
	LandscapingFeatures *string          `json:"landscaping_features"`
	View                *string          `json:"view"`
	FencingType         *ImprovementType `json:"fencing_type"`
	FenceLength         *float64         `json:"fence_length"`
	DrivewayMaterial    *ImprovementType `json:"driveway_material"`
	DrivewayCondition   *string          `json:"driveway_condition"`
	LotConditionIssues  *string          `json:"lot_condition_issues"`
}

type Structure struct {
	Provenance
	BuildingNumber                     *int                `json:"building_number,omitempty"`
	ArchitecturalStyleType             *ArchitecturalStyle `json:"architectural_style_type"`
	AttachmentType                     *string             `json:"attachment_type"`
	ExteriorWallMaterialPrimary        *ExteriorWall       `json:"exterior_wall_material_primary"`
	ExteriorWallMaterialSecondary      *ExteriorWall       `json:"exterior_wall_material_secondary"`
	RoofCoveringMaterial               *RoofCovering       `json:"roof_covering_material"`
	RoofDesignType                     *RoofDesign         `json:"roof_design_type"`
	FoundationType                     *Foundation         `json:"foundation_type"`
	FlooringMaterialPrimary            *Flooring           `json:"flooring_material_primary"`
	InteriorWallSurfaceMaterialPrimary *InteriorWall       `json:"interior_wall_surface_material_primary"`
	NumberOfStories                    *float64            `json:"number_of_stories"`
	FinishedBaseArea                   *float64            `json:"finished_base_area"`
	FinishedUpperStoryArea             *float64            `json:"finished_upper_story_area"`
	ExteriorWallConditionPrimary       *string             `json:"exterior_wall_condition_primary"`
	RoofDate                           *string             `json:"roof_date"`
}

type Utility struct {
	Provenance
	BuildingNumber          *int           `json:"building_number,omitempty"`
	CoolingSystemType       *CoolingSystem `json:"cooling_system_type"`
	HeatingSystemType       *HeatingSystem `json:"heating_system_type"`
	HeatingFuelType         *HeatingFuel   `json:"heating_fuel_type"`
	PublicUtilityType       *string        `json:"public_utility_type"`
	SewerType               *SewerType     `json:"sewer_type"`
	WaterSourceType         *WaterSource   `json:"water_source_type"`
	ElectricalPanelCapacity *string        `json:"electrical_panel_capacity"`
	SolarPanelPresent       bool           `json:"solar_panel_present"`
	HVACUnitCondition       *string        `json:"hvac_unit_condition"`
}

type Layout struct {
	Provenance
	SpaceType            SpaceType `json:"space_type"`
	SpaceIndex           int       `json:"space_index"`
	SpaceTypeIndex       string    `json:"space_type_index"`
	BuildingNumber       *int      `json:"building_number"`
	SizeSquareFeet       *float64  `json:"size_square_feet"`
	FloorLevel           *string   `json:"floor_level"`
	IsFinished           *bool     `json:"is_finished"`
	IsExterior           *bool     `json:"is_exterior"`
	FlooringMaterialType *Flooring `json:"flooring_material_type"`
	HasWindows           *bool     `json:"has_windows"`
	PaintConditionType   *string   `json:"paint_condition"`
	PoolType             *string   `json:"pool_type"`
	PoolEquipment        *string   `json:"pool_equipment"`
	SpaType              *string   `json:"spa_type"`
	SourceDescription    *string   `json:"source_description,omitempty"`
}

type Sales struct {
	Provenance
	OwnershipTransferDate *string  `json:"ownership_transfer_date"`
	PurchasePriceAmount   *float64 `json:"purchase_price_amount"`
	SaleType              *string  `json:"sale_type,omitempty"`
}

type Deed struct {
	Provenance
	DeedType         DeedType `json:"deed_type"`
	Book             *string  `json:"book,omitempty"`
	Page             *string  `json:"page,omitempty"`
	Volume           *string  `json:"volume,omitempty"`
	InstrumentNumber *string  `json:"instrument_number,omitempty"`
}

type File struct {
	Provenance
	OriginalURL  string       `json:"original_url"`
	DocumentType DocumentType `json:"document_type"`
	Name         string       `json:"name"`
	FileFormat   *string      `json:"file_format"`
}

type Tax struct {
	Provenance
	TaxYear             int      `json:"tax_year"`
	AssessedValueAmount *float64 `json:"property_assessed_value_amount"`
	MarketValueAmount   *float64 `json:"property_market_value_amount"`
	BuildingAmount      *float64 `json:"property_building_amount"`
	LandAmount          *float64 `json:"property_land_amount"`
	TaxableValueAmount  *float64 `json:"property_taxable_value_amount"`
	YearlyTaxAmount     *float64 `json:"yearly_tax_amount"`
	MonthlyTaxAmount    *float64 `json:"monthly_tax_amount"`
}

type Person struct {
	Provenance
	FirstName  string  `json:"first_name"`
	MiddleName *string `json:"middle_name"`
	LastName   string  `json:"last_name"`
	PrefixName *string `json:"prefix_name"`
	SuffixName *string `json:"suffix_name"`
}

type Company struct {
	Provenance
	Name string `json:"name"`
}

type Link struct {
	Path string `json:"/"`
}

type Relationship struct {
	From Link `json:"from"`
	To   Link `json:"to"`
}

// ValidationError is the only condition that aborts a run.
type ValidationError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

func NewValidationError(path, format string, args ...any) *ValidationError {
	return &ValidationError{Type: "error", Message: fmt.Sprintf(format, args...), Path: path}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// RunRow is one ledger entry. Status is "written" or "aborted".
type RunRow struct {
	ID          int
	TraceID     string
	County      string
	ParcelID    string
	Status      string
	AbortReason *string
	Counts      map[string]int
	Timings     map[string]float64
	CreatedAt   string
}

// ReviewRow is one unmapped label awaiting a rule, with the closest known
// rule label as a hint.
type ReviewRow struct {
	Domain     string
	Raw        string
	Suggestion *string
	Score      *float64
	Seen       int
	LastTrace  string
}
