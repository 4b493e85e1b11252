package usecode

import (
	"parcelnorm/internal"
	"parcelnorm/internal/mapping"
)

// Lee publishes four digit DOR refinements.
var Lee = []Row{
	{"0100", "SINGLE FAMILY RESIDENTIAL", res(internal.FormSingleFamilyDetached)},
	{"0101", "SINGLE FAMILY - CANAL FRONT", res(internal.FormSingleFamilyDetached)},
	{"0102", "SINGLE FAMILY - GULF FRONT", res(internal.FormSingleFamilyDetached)},
	{"0105", "SINGLE FAMILY - ZERO LOT LINE", res(internal.FormSingleFamilySemiDetached)},
	{"0106", "TOWNHOUSE", res(internal.FormTownhouseRowhouse)},
	{"0110", "VILLA", res(internal.FormSingleFamilySemiDetached)},
	{"0200", "MOBILE HOME", res(internal.FormMobileHome)},
	{"0210", "MOBILE HOME - SUBDIVISION", res(internal.FormManufacturedHomeOnLand)},
	{"0400", "CONDOMINIUM", res(internal.FormApartmentUnit)},
	{"0410", "CONDOMINIUM - TIMESHARE", res(internal.FormApartmentUnit).WithEstate(internal.EstateTimeshare)},
	{"0420", "CONDOMINIUM - BOAT SLIP", mapping.Class{PropertyType: internal.PropertyUnit, Estate: internal.EstateCondominium, Build: internal.BuildImproved, Usage: internal.UsageRecreational}},
	{"0801", "DUPLEX", res(internal.FormDuplex)},
	{"0802", "TRIPLEX", res(internal.FormTriplex)},
	{"0803", "QUADPLEX", res(internal.FormQuadplex)},
	{"9400", "RIGHT OF WAY - STREETS AND ROADS", land(internal.BuildVacantLand, internal.UsageTransitionalProperty).WithEstate(internal.EstateRightOfWay)},
}

// Levy uses short text codes.
var Levy = []Row{
	{"SFR", "SINGLE FAMILY RES", res(internal.FormSingleFamilyDetached)},
	{"MHP", "MOBILE HOME PARK", land(internal.BuildImproved, internal.UsageMobileHomePark)},
	{"MH", "MOBILE HOME", res(internal.FormMobileHome)},
	{"MFR", "MULTI FAMILY RES", res(internal.FormMultiFamilyLessThan10)},
	{"DUP", "DUPLEX", res(internal.FormDuplex)},
	{"TRI", "TRIPLEX", res(internal.FormTriplex)},
	{"QUAD", "QUADPLEX", res(internal.FormQuadplex)},
	{"APT", "APARTMENTS", res(internal.FormMultiFamilyMoreThan10)},
	{"CONDO", "CONDOMINIUM", res(internal.FormApartmentUnit)},
	{"VACC", "VACANT COMMERCIAL", land(internal.BuildVacantLand, internal.UsageCommercial)},
	{"VACI", "VACANT INDUSTRIAL", land(internal.BuildVacantLand, internal.UsageIndustrial)},
	{"VAC", "VACANT", land(internal.BuildVacantLand, internal.UsageResidential)},
	{"COMM", "COMMERCIAL", imp(internal.UsageCommercial)},
	{"IND", "INDUSTRIAL", imp(internal.UsageIndustrial)},
	{"TIMB", "TIMBERLAND", land("", internal.UsageTimberLand)},
	{"PAST", "PASTURE", land("", internal.UsageGrazingLand)},
	{"AG", "AGRICULTURAL", land("", internal.UsageAgricultural)},
	{"CHUR", "CHURCH", imp(internal.UsageChurch)},
	{"GOVT", "GOVERNMENT", public(internal.UsageGovernmentProperty)},
}

var Pinellas = []Row{
	{"0000", "VACANT RESIDENTIAL - LOT AND ACREAGE", land(internal.BuildVacantLand, internal.UsageResidential)},
	{"0110", "SINGLE FAMILY HOME", res(internal.FormSingleFamilyDetached)},
	{"0121", "SINGLE FAMILY - ATTACHED", res(internal.FormSingleFamilySemiDetached)},
	{"0130", "TOWNHOUSE", res(internal.FormTownhouseRowhouse)},
	{"0133", "VILLA", res(internal.FormSingleFamilySemiDetached)},
	{"0210", "MOBILE HOME", res(internal.FormMobileHome)},
	{"0311", "APARTMENTS (10 UNITS OR MORE)", res(internal.FormMultiFamilyMoreThan10)},
	{"0430", "CONDOMINIUM", res(internal.FormApartmentUnit)},
	{"0434", "CONDO - MOBILE HOME", res(internal.FormManufacturedHomeInPark).WithEstate(internal.EstateCondominium)},
	{"0510", "COOPERATIVE", res(internal.FormApartmentUnit).WithEstate(internal.EstateCooperative)},
	{"0810", "DUPLEX", res(internal.FormDuplex)},
	{"0820", "TRIPLEX", res(internal.FormTriplex)},
	{"0830", "QUADPLEX", res(internal.FormQuadplex)},
	{"0840", "MULTI-FAMILY 5 TO 9 UNITS", res(internal.FormMultiFamilyLessThan10)},
	{"0900", "RESIDENTIAL COMMON AREA", land(internal.BuildImproved, internal.UsageResidentialCommonArea)},
}

var Taylor = []Row{
	{"0100", "SINGLE FAMILY", res(internal.FormSingleFamilyDetached)},
	{"0102", "SFR WITH MOBILE HOME", res(internal.FormSingleFamilyDetached)},
	{"0200", "MOBILE HOME", res(internal.FormMobileHome)},
	{"0202", "MOBILE HOME SUBDIVISION", res(internal.FormManufacturedHomeOnLand)},
	{"0700", "MISC RESIDENTIAL", imp(internal.UsageMiscResidential)},
	{"5000", "IMPROVED AG", imp(internal.UsageAgricultural)},
	{"5400", "TIMBERLAND", land("", internal.UsageTimberLand)},
	{"9900", "NON AG ACREAGE", land(internal.BuildVacantLand, internal.UsageTransitionalProperty)},
}
