package mapping

import "parcelnorm/internal"

// Class is the classification tuple written to property.json. Empty fields
// are unresolved.
type Class struct {
	PropertyType internal.PropertyType
	Estate       internal.OwnershipEstateType
	Build        internal.BuildStatus
	Form         internal.StructureForm
	Usage        internal.PropertyUsageType
}

func (c Class) IsZero() bool {
	return c == Class{}
}

// Fill copies fields of other into the unset fields of c.
func (c Class) Fill(other Class) Class {
	if c.PropertyType == "" {
		c.PropertyType = other.PropertyType
	}
	if c.Estate == "" {
		c.Estate = other.Estate
	}
	if c.Build == "" {
		c.Build = other.Build
	}
	if c.Form == "" {
		c.Form = other.Form
	}
	if c.Usage == "" {
		c.Usage = other.Usage
	}
	return c
}

// Residential builds the tuple for an improved residential building of the given form.
func Residential(form internal.StructureForm) Class {
	c := Class{
		PropertyType: internal.PropertyBuilding,
		Estate:       internal.EstateFeeSimple,
		Build:        internal.BuildImproved,
		Form:         form,
		Usage:        internal.UsageResidential,
	}
	switch form {
	case internal.FormApartmentUnit, internal.FormLoft:
		c.PropertyType = internal.PropertyUnit
		c.Estate = internal.EstateCondominium
	case internal.FormMobileHome, internal.FormManufacturedHomeOnLand, internal.FormManufacturedHomeInPark, internal.FormModular:
		c.PropertyType = internal.PropertyManufacturedHome
	}
	return c
}

// Improved builds the tuple for an improved non-residential building.
func Improved(usage internal.PropertyUsageType) Class {
	return Class{
		PropertyType: internal.PropertyBuilding,
		Estate:       internal.EstateFeeSimple,
		Build:        internal.BuildImproved,
		Usage:        usage,
	}
}

// Land builds the tuple for a parcel without a building.
func Land(build internal.BuildStatus, usage internal.PropertyUsageType) Class {
	return Class{
		PropertyType: internal.PropertyLandParcel,
		Estate:       internal.EstateFeeSimple,
		Build:        build,
		Usage:        usage,
	}
}

// WithEstate returns c with a different ownership estate.
func (c Class) WithEstate(estate internal.OwnershipEstateType) Class {
	c.Estate = estate
	return c
}

var StructureForms = register(Table[internal.StructureForm]{
	Name: "structure_form",
	Rules: []Rule[internal.StructureForm]{
		{"SEMI DETACHED", Phrase("SEMI DETACHED", "SEMIDETACHED", "ZERO LOT LINE"), internal.FormSingleFamilySemiDetached},
		{"TOWNHOUSE", Any(Phrase("ROW HOUSE"), Token("TOWNHOUSE", "TOWNHOUSES", "TOWNHOME", "TOWNHOMES", "ROWHOUSE", "TWNHS", "TH")), internal.FormTownhouseRowhouse},
		{"DUPLEX", Token("DUPLEX", "DUPLEXES"), internal.FormDuplex},
		{"TRIPLEX", Token("TRIPLEX"), internal.FormTriplex},
		{"QUADPLEX", Token("QUADPLEX", "FOURPLEX", "QUADRUPLEX"), internal.FormQuadplex},
		{"MULTI FAMILY 10 UNITS OR MORE", Phrase("10 UNITS OR MORE", "10 OR MORE", "MORE THAN 10", "10 PLUS UNITS"), internal.FormMultiFamilyMoreThan10},
		{"MULTI FAMILY LESS THAN 10 UNITS", Phrase("LESS THAN 10", "FEWER THAN 10", "2 9 UNITS"), internal.FormMultiFamilyLessThan10},
		{"MULTI FAMILY", Any(Phrase("MULTI FAMILY", "MULTI FAM"), Token("MULTIFAMILY", "APARTMENTS", "APTS")), internal.FormMultiFamily5Plus},
		{"CONDOMINIUM", Token("CONDOMINIUM", "CONDOMINIUMS", "CONDO", "APARTMENT", "APT"), internal.FormApartmentUnit},
		{"LOFT", Token("LOFT"), internal.FormLoft},
		{"MANUFACTURED HOME PARK", Phrase("MOBILE HOME PARK", "MANUFACTURED HOME PARK", "MH PARK", "RV PARK"), internal.FormManufacturedHomeInPark},
		{"MANUFACTURED HOME", Token("MANUFACTURED", "MFG", "MFD"), internal.FormManufacturedHomeOnLand},
		{"MOBILE HOME", Token("MOBILE", "MH", "TRAILER"), internal.FormMobileHome},
		{"MODULAR", Token("MODULAR"), internal.FormModular},
		{"SINGLE FAMILY", Any(Phrase("SINGLE FAMILY", "SINGLE FAM", "ONE FAMILY"), Token("SFR", "SFD")), internal.FormSingleFamilyDetached},
	},
})

// PropertyKeywords classifies a free-text use description. Vacant rules come
// first so "VACANT RESIDENTIAL" never reads as a residential building.
var PropertyKeywords = register(Table[Class]{
	Name: "property_classification",
	Rules: []Rule[Class]{
		{"VACANT COMMERCIAL", All(Token("VACANT", "VAC"), Token("COMMERCIAL", "COMM")), Land(internal.BuildVacantLand, internal.UsageCommercial)},
		{"VACANT INDUSTRIAL", All(Token("VACANT", "VAC"), Token("INDUSTRIAL", "IND")), Land(internal.BuildVacantLand, internal.UsageIndustrial)},
		{"VACANT INSTITUTIONAL", All(Token("VACANT", "VAC"), Token("INSTITUTIONAL")), Land(internal.BuildVacantLand, internal.UsageNonProfitCharity)},
		{"VACANT RESIDENTIAL", Token("VACANT", "VAC"), Land(internal.BuildVacantLand, internal.UsageResidential)},
		{"UNDER CONSTRUCTION", Phrase("UNDER CONSTRUCTION", "NEW CONSTRUCTION"), Class{PropertyType: internal.PropertyBuilding, Build: internal.BuildUnderConstruction}},
		{"TIMESHARE", Any(Phrase("TIME SHARE"), Token("TIMESHARE", "INTERVAL")), Residential(internal.FormApartmentUnit).WithEstate(internal.EstateTimeshare)},
		{"COOPERATIVE", Any(Phrase("CO OP"), Token("COOPERATIVE", "COOPERATIVES", "COOP")), Residential(internal.FormApartmentUnit).WithEstate(internal.EstateCooperative)},
		{"COMMON ELEMENTS", Phrase("COMMON ELEMENTS", "COMMON AREA", "COMMON AREAS"), Land(internal.BuildImproved, internal.UsageResidentialCommonArea)},
		{"CONDOMINIUM", Token("CONDOMINIUM", "CONDOMINIUMS", "CONDO"), Residential(internal.FormApartmentUnit)},
		{"MOBILE HOME PARK", Phrase("MOBILE HOME PARK", "MANUFACTURED HOME PARK", "RV PARK"), Land(internal.BuildImproved, internal.UsageMobileHomePark)},
		{"MANUFACTURED HOME", Token("MANUFACTURED", "MFG"), Residential(internal.FormManufacturedHomeOnLand)},
		{"MOBILE HOME", Token("MOBILE", "MH"), Residential(internal.FormMobileHome)},
		{"TOWNHOUSE", Token("TOWNHOUSE", "TOWNHOME", "ROWHOUSE"), Residential(internal.FormTownhouseRowhouse)},
		{"DUPLEX", Token("DUPLEX"), Residential(internal.FormDuplex)},
		{"TRIPLEX", Token("TRIPLEX"), Residential(internal.FormTriplex)},
		{"QUADPLEX", Token("QUADPLEX", "FOURPLEX"), Residential(internal.FormQuadplex)},
		{"MULTI FAMILY 10 UNITS OR MORE", Phrase("10 UNITS OR MORE", "10 OR MORE", "MORE THAN 10"), Residential(internal.FormMultiFamilyMoreThan10)},
		{"MULTI FAMILY LESS THAN 10 UNITS", Phrase("LESS THAN 10", "FEWER THAN 10"), Residential(internal.FormMultiFamilyLessThan10)},
		{"MULTI FAMILY", Any(Phrase("MULTI FAMILY"), Token("MULTIFAMILY", "APARTMENTS", "APARTMENT")), Residential(internal.FormMultiFamily5Plus)},
		{"RETIREMENT HOME", Token("RETIREMENT"), Improved(internal.UsageRetirement)},
		{"SINGLE FAMILY", Any(Phrase("SINGLE FAMILY", "SINGLE FAM"), Token("SFR", "RESIDENCE")), Residential(internal.FormSingleFamilyDetached)},
		{"SHOPPING CENTER REGIONAL", Phrase("REGIONAL SHOPPING", "SHOPPING CENTER REGIONAL"), Improved(internal.UsageShoppingCenterRegional)},
		{"SHOPPING CENTER", Phrase("SHOPPING CENTER", "SHOPPING CENTERS", "STRIP CENTER"), Improved(internal.UsageShoppingCenterCommunity)},
		{"DEPARTMENT STORE", Phrase("DEPARTMENT STORE", "DEPARTMENT STORES"), Improved(internal.UsageDepartmentStore)},
		{"SUPERMARKET", Token("SUPERMARKET", "SUPERMARKETS", "GROCERY"), Improved(internal.UsageSupermarket)},
		{"MEDICAL OFFICE", Phrase("MEDICAL OFFICE", "PROFESSIONAL SERVICE", "MEDICAL"), Improved(internal.UsageMedicalOffice)},
		{"OFFICE BUILDING", Token("OFFICE", "OFFICES"), Improved(internal.UsageOfficeBuilding)},
		{"RESTAURANT", Token("RESTAURANT", "RESTAURANTS", "CAFETERIA", "CAFETERIAS"), Improved(internal.UsageRestaurant)},
		{"FINANCIAL INSTITUTION", Any(Phrase("FINANCIAL INSTITUTION", "FINANCIAL INSTITUTIONS"), Token("BANK")), Improved(internal.UsageFinancialInstitution)},
		{"SERVICE STATION", Phrase("SERVICE STATION", "SERVICE STATIONS", "GAS STATION", "CONVENIENCE STORE"), Improved(internal.UsageServiceStation)},
		{"AUTO SALES", Phrase("AUTO SALES", "AUTO REPAIR", "CAR WASH"), Improved(internal.UsageAutoSalesRepair)},
		{"HOTEL", Token("HOTEL", "HOTELS", "MOTEL", "MOTELS"), Improved(internal.UsageHotel)},
		{"GOLF COURSE", Token("GOLF"), Improved(internal.UsageGolfCourse)},
		{"WAREHOUSE", Token("WAREHOUSE", "WAREHOUSING", "DISTRIBUTION"), Improved(internal.UsageWarehouse)},
		{"LIGHT MANUFACTURING", Phrase("LIGHT MANUFACTURING", "LIGHT INDUSTRIAL"), Improved(internal.UsageLightManufacturing)},
		{"HEAVY INDUSTRIAL", Phrase("HEAVY INDUSTRIAL", "HEAVY MANUFACTURING"), Improved(internal.UsageHeavyManufacturing)},
		{"CHURCH", Token("CHURCH", "CHURCHES", "WORSHIP"), Improved(internal.UsageChurch)},
		{"PRIVATE SCHOOL", Phrase("PRIVATE SCHOOL", "PRIVATE SCHOOLS", "DAY CARE"), Improved(internal.UsagePrivateSchool)},
		{"PUBLIC SCHOOL", Token("SCHOOL", "SCHOOLS", "COLLEGE", "COLLEGES"), Improved(internal.UsagePublicSchool)},
		{"HOSPITAL", Token("HOSPITAL", "HOSPITALS"), Improved(internal.UsagePrivateHospital)},
		{"CEMETERY", Token("CEMETERY", "CEMETERIES", "MORTUARY", "MORTUARIES"), Improved(internal.UsageMortuaryCemetery)},
		{"RIGHT OF WAY", Phrase("RIGHT OF WAY"), Land(internal.BuildVacantLand, internal.UsageTransitionalProperty).WithEstate(internal.EstateRightOfWay)},
		{"SUBSURFACE RIGHTS", Phrase("SUBSURFACE RIGHTS", "MINERAL RIGHTS"), Land(internal.BuildVacantLand, internal.UsageMineralProcessing).WithEstate(internal.EstateSubsurfaceRights)},
		{"LEASEHOLD INTEREST", Token("LEASEHOLD"), Class{Estate: internal.EstateLeasehold}},
		{"TIMBERLAND", Token("TIMBER", "TIMBERLAND"), Land("", internal.UsageTimberLand)},
		{"GRAZING LAND", Token("GRAZING", "PASTURE"), Land("", internal.UsageGrazingLand)},
		{"CROPLAND", Token("CROPLAND", "CROP"), Land("", internal.UsageCropland)},
		{"ORCHARD GROVES", Token("ORCHARD", "GROVE", "GROVES", "CITRUS"), Land("", internal.UsageOrchardGroves)},
		{"AGRICULTURAL", Token("AGRICULTURAL", "AGRICULTURE", "FARM"), Land("", internal.UsageAgricultural)},
		{"STORE", Token("STORE", "STORES", "RETAIL"), Improved(internal.UsageRetailStore)},
	},
})

// UsageKeywords fills property_usage_type when the classification left it open.
var UsageKeywords = register(Table[internal.PropertyUsageType]{
	Name: "property_usage_type",
	Rules: []Rule[internal.PropertyUsageType]{
		{"RESIDENTIAL", Token("RESIDENTIAL", "RES", "HOME", "HOMES", "DWELLING", "HOUSE"), internal.UsageResidential},
		{"COMMERCIAL", Token("COMMERCIAL", "COMM", "BUSINESS"), internal.UsageCommercial},
		{"INDUSTRIAL", Token("INDUSTRIAL", "IND", "MANUFACTURING"), internal.UsageIndustrial},
		{"AGRICULTURAL", Token("AGRICULTURAL", "AG", "FARM", "RANCH"), internal.UsageAgricultural},
		{"GOVERNMENT", Token("GOVERNMENT", "COUNTY", "STATE", "FEDERAL", "MUNICIPAL"), internal.UsageGovernmentProperty},
		{"UTILITY", Token("UTILITY", "UTILITIES"), internal.UsageUtility},
		{"RECREATIONAL", Token("RECREATIONAL", "RECREATION", "PARK", "PARKS"), internal.UsageRecreational},
	},
})
