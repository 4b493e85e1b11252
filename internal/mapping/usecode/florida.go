package usecode

import (
	"parcelnorm/internal"
	"parcelnorm/internal/mapping"
)

var (
	res  = mapping.Residential
	imp  = mapping.Improved
	land = mapping.Land
)

func public(usage internal.PropertyUsageType) mapping.Class {
	return mapping.Class{Estate: internal.EstateFeeSimple, Usage: usage}
}

// FloridaDOR is the statewide Department of Revenue land use code list.
// Counties publish it as two digits ("01") or four ("0100"); the four digit
// forms resolve here through the prefix step.
var FloridaDOR = []Row{
	{"00", "VACANT RESIDENTIAL", land(internal.BuildVacantLand, internal.UsageResidential)},
	{"01", "SINGLE FAMILY", res(internal.FormSingleFamilyDetached)},
	{"02", "MOBILE HOMES", res(internal.FormMobileHome)},
	{"03", "MULTI-FAMILY 10 UNITS OR MORE", res(internal.FormMultiFamilyMoreThan10)},
	{"04", "CONDOMINIUMS", res(internal.FormApartmentUnit)},
	{"05", "COOPERATIVES", res(internal.FormApartmentUnit).WithEstate(internal.EstateCooperative)},
	{"06", "RETIREMENT HOMES", imp(internal.UsageRetirement)},
	{"07", "MISCELLANEOUS RESIDENTIAL", imp(internal.UsageMiscResidential)},
	{"08", "MULTI-FAMILY LESS THAN 10 UNITS", res(internal.FormMultiFamilyLessThan10)},
	{"09", "RESIDENTIAL COMMON ELEMENTS", land(internal.BuildImproved, internal.UsageResidentialCommonArea)},
	{"10", "VACANT COMMERCIAL", land(internal.BuildVacantLand, internal.UsageCommercial)},
	{"11", "STORES, ONE STORY", imp(internal.UsageRetailStore)},
	{"12", "MIXED USE STORE AND OFFICE", imp(internal.UsageCommercial)},
	{"13", "DEPARTMENT STORES", imp(internal.UsageDepartmentStore)},
	{"14", "SUPERMARKETS", imp(internal.UsageSupermarket)},
	{"15", "REGIONAL SHOPPING CENTERS", imp(internal.UsageShoppingCenterRegional)},
	{"16", "COMMUNITY SHOPPING CENTERS", imp(internal.UsageShoppingCenterCommunity)},
	{"17", "OFFICE BUILDINGS ONE STORY", imp(internal.UsageOfficeBuilding)},
	{"18", "OFFICE BUILDINGS MULTI-STORY", imp(internal.UsageOfficeBuilding)},
	{"19", "PROFESSIONAL SERVICE BUILDINGS", imp(internal.UsageMedicalOffice)},
	{"20", "AIRPORTS, TERMINALS, MARINAS", imp(internal.UsageTransportationTerminal)},
	{"21", "RESTAURANTS, CAFETERIAS", imp(internal.UsageRestaurant)},
	{"22", "DRIVE-IN RESTAURANTS", imp(internal.UsageRestaurant)},
	{"23", "FINANCIAL INSTITUTIONS", imp(internal.UsageFinancialInstitution)},
	{"24", "INSURANCE COMPANY OFFICES", imp(internal.UsageOfficeBuilding)},
	{"25", "REPAIR SERVICE SHOPS", imp(internal.UsageCommercial)},
	{"26", "SERVICE STATIONS", imp(internal.UsageServiceStation)},
	{"27", "AUTO SALES, REPAIR AND STORAGE", imp(internal.UsageAutoSalesRepair)},
	{"28", "PARKING LOTS, MOBILE HOME PARKS", land(internal.BuildImproved, internal.UsageMobileHomePark)},
	{"29", "WHOLESALE OUTLETS", imp(internal.UsageWholesaleOutlet)},
	{"30", "FLORISTS, GREENHOUSES", imp(internal.UsageOrnamentals)},
	{"31", "DRIVE-IN THEATERS, OPEN STADIUMS", imp(internal.UsageTheater)},
	{"32", "ENCLOSED THEATERS, AUDITORIUMS", imp(internal.UsageTheater)},
	{"33", "NIGHTCLUBS, BARS", imp(internal.UsageEntertainment)},
	{"34", "BOWLING ALLEYS, SKATING RINKS", imp(internal.UsageEntertainment)},
	{"35", "TOURIST ATTRACTIONS", imp(internal.UsageEntertainment)},
	{"36", "CAMPS", imp(internal.UsageRecreational)},
	{"37", "RACE TRACKS", imp(internal.UsageRaceTrack)},
	{"38", "GOLF COURSES", imp(internal.UsageGolfCourse)},
	{"39", "HOTELS, MOTELS", imp(internal.UsageHotel)},
	{"40", "VACANT INDUSTRIAL", land(internal.BuildVacantLand, internal.UsageIndustrial)},
	{"41", "LIGHT MANUFACTURING", imp(internal.UsageLightManufacturing)},
	{"42", "HEAVY INDUSTRIAL", imp(internal.UsageHeavyManufacturing)},
	{"43", "LUMBER YARDS", imp(internal.UsageLumberYard)},
	{"44", "PACKING PLANTS", imp(internal.UsagePackingPlant)},
	{"45", "CANNERIES, BREWERIES, WINERIES", imp(internal.UsageCannery)},
	{"46", "OTHER FOOD PROCESSING", imp(internal.UsageIndustrial)},
	{"47", "MINERAL PROCESSING", imp(internal.UsageMineralProcessing)},
	{"48", "WAREHOUSING", imp(internal.UsageWarehouse)},
	{"49", "OPEN STORAGE", imp(internal.UsageOpenStorage)},
	{"50", "IMPROVED AGRICULTURAL", imp(internal.UsageAgricultural)},
	{"51", "CROPLAND SOIL CLASS I", land("", internal.UsageCropland)},
	{"52", "CROPLAND SOIL CLASS II", land("", internal.UsageCropland)},
	{"53", "CROPLAND SOIL CLASS III", land("", internal.UsageCropland)},
	{"54", "TIMBERLAND INDEX 90 AND ABOVE", land("", internal.UsageTimberLand)},
	{"55", "TIMBERLAND INDEX 80 TO 89", land("", internal.UsageTimberLand)},
	{"56", "TIMBERLAND INDEX 70 TO 79", land("", internal.UsageTimberLand)},
	{"57", "TIMBERLAND INDEX 60 TO 69", land("", internal.UsageTimberLand)},
	{"58", "TIMBERLAND INDEX 50 TO 59", land("", internal.UsageTimberLand)},
	{"59", "TIMBERLAND NOT CLASSIFIED", land("", internal.UsageTimberLand)},
	{"60", "GRAZING LAND SOIL CLASS I", land("", internal.UsageGrazingLand)},
	{"61", "GRAZING LAND SOIL CLASS II", land("", internal.UsageGrazingLand)},
	{"62", "GRAZING LAND SOIL CLASS III", land("", internal.UsageGrazingLand)},
	{"63", "GRAZING LAND SOIL CLASS IV", land("", internal.UsageGrazingLand)},
	{"64", "GRAZING LAND SOIL CLASS V", land("", internal.UsageGrazingLand)},
	{"65", "GRAZING LAND SOIL CLASS VI", land("", internal.UsageGrazingLand)},
	{"66", "ORCHARD GROVES, CITRUS", land("", internal.UsageOrchardGroves)},
	{"67", "POULTRY, BEES, TROPICAL FISH", imp(internal.UsagePoultry)},
	{"68", "DAIRIES, FEED LOTS", imp(internal.UsageLivestockFacility)},
	{"69", "ORNAMENTALS, MISCELLANEOUS AGRICULTURAL", land("", internal.UsageOrnamentals)},
	{"70", "VACANT INSTITUTIONAL", land(internal.BuildVacantLand, internal.UsageNonProfitCharity)},
	{"71", "CHURCHES", imp(internal.UsageChurch)},
	{"72", "PRIVATE SCHOOLS AND COLLEGES", imp(internal.UsagePrivateSchool)},
	{"73", "PRIVATELY OWNED HOSPITALS", imp(internal.UsagePrivateHospital)},
	{"74", "HOMES FOR THE AGED", imp(internal.UsageHomesForAged)},
	{"75", "ORPHANAGES, NON-PROFIT SERVICES", imp(internal.UsageNonProfitCharity)},
	{"76", "MORTUARIES, CEMETERIES", imp(internal.UsageMortuaryCemetery)},
	{"77", "CLUBS, LODGES, UNION HALLS", imp(internal.UsageClubsLodges)},
	{"78", "SANITARIUMS, CONVALESCENT HOMES", imp(internal.UsageSanitarium)},
	{"79", "CULTURAL ORGANIZATIONS", imp(internal.UsageCulturalOrganization)},
	{"80", "UNDEFINED", public(internal.UsageUnknown)},
	{"81", "MILITARY", public(internal.UsageMilitary)},
	{"82", "FOREST, PARKS, RECREATIONAL AREAS", land("", internal.UsageForestParkRecreation)},
	{"83", "PUBLIC COUNTY SCHOOLS", public(internal.UsagePublicSchool)},
	{"84", "COLLEGES", public(internal.UsagePublicSchool)},
	{"85", "HOSPITALS", public(internal.UsagePublicHospital)},
	{"86", "COUNTIES", public(internal.UsageGovernmentProperty)},
	{"87", "STATE", public(internal.UsageGovernmentProperty)},
	{"88", "FEDERAL", public(internal.UsageGovernmentProperty)},
	{"89", "MUNICIPAL", public(internal.UsageGovernmentProperty)},
	{"90", "LEASEHOLD INTERESTS", mapping.Class{Estate: internal.EstateLeasehold}},
	{"91", "UTILITY", public(internal.UsageUtility)},
	{"92", "MINING, PETROLEUM AND GAS LANDS", land("", internal.UsageMineralProcessing)},
	{"93", "SUBSURFACE RIGHTS", land(internal.BuildVacantLand, internal.UsageMineralProcessing).WithEstate(internal.EstateSubsurfaceRights)},
	{"94", "RIGHT-OF-WAY", land(internal.BuildVacantLand, internal.UsageTransitionalProperty).WithEstate(internal.EstateRightOfWay)},
	{"95", "RIVERS AND LAKES, SUBMERGED LANDS", land(internal.BuildVacantLand, internal.UsageRiversLakes)},
	{"96", "SEWAGE DISPOSAL, WASTE LANDS", land("", internal.UsageSewageDisposal)},
	{"97", "OUTDOOR RECREATIONAL, PARKLAND", land("", internal.UsageRecreational)},
	{"98", "CENTRALLY ASSESSED", public(internal.UsageRailroad)},
	{"99", "ACREAGE NOT ZONED AGRICULTURAL", land(internal.BuildVacantLand, internal.UsageTransitionalProperty)},
}
