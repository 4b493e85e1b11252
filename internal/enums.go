package internal

// MappingNotAvailable marks text that was classified but matched no rule.
// Downstream validation filters on this exact string.
const MappingNotAvailable = "MAPPING NOT AVAILABLE"

type PropertyType string

const (
	PropertyLandParcel       PropertyType = "LandParcel"
	PropertyBuilding         PropertyType = "Building"
	PropertyUnit             PropertyType = "Unit"
	PropertyManufacturedHome PropertyType = "ManufacturedHome"
)

type OwnershipEstateType string

const (
	EstateFeeSimple        OwnershipEstateType = "FeeSimple"
	EstateCondominium      OwnershipEstateType = "Condominium"
	EstateCooperative      OwnershipEstateType = "Cooperative"
	EstateLeasehold        OwnershipEstateType = "Leasehold"
	EstateTimeshare        OwnershipEstateType = "Timeshare"
	EstateSubsurfaceRights OwnershipEstateType = "SubsurfaceRights"
	EstateRightOfWay       OwnershipEstateType = "RightOfWay"
	EstateOther            OwnershipEstateType = "OtherEstate"
)

type BuildStatus string

const (
	BuildVacantLand        BuildStatus = "VacantLand"
	BuildImproved          BuildStatus = "Improved"
	BuildUnderConstruction BuildStatus = "UnderConstruction"
)

type StructureForm string

const (
	FormSingleFamilyDetached     StructureForm = "SingleFamilyDetached"
	FormSingleFamilySemiDetached StructureForm = "SingleFamilySemiDetached"
	FormTownhouseRowhouse        StructureForm = "TownhouseRowhouse"
	FormDuplex                   StructureForm = "Duplex"
	FormTriplex                  StructureForm = "Triplex"
	FormQuadplex                 StructureForm = "Quadplex"
	FormMultiFamily5Plus         StructureForm = "MultiFamily5Plus"
	FormMultiFamilyLessThan10    StructureForm = "MultiFamilyLessThan10"
	FormMultiFamilyMoreThan10    StructureForm = "MultiFamilyMoreThan10"
	FormApartmentUnit            StructureForm = "ApartmentUnit"
	FormLoft                     StructureForm = "Loft"
	FormManufacturedHomeOnLand   StructureForm = "ManufacturedHomeOnLand"
	FormManufacturedHomeInPark   StructureForm = "ManufacturedHomeInPark"
	FormMobileHome               StructureForm = "MobileHome"
	FormModular                  StructureForm = "Modular"
)

type PropertyUsageType string

const (
	UsageResidential              PropertyUsageType = "Residential"
	UsageResidentialCommonArea    PropertyUsageType = "ResidentialCommonElementsAreas"
	UsageRetirement               PropertyUsageType = "Retirement"
	UsageMiscResidential          PropertyUsageType = "MiscellaneousResidential"
	UsageCommercial               PropertyUsageType = "Commercial"
	UsageRetailStore              PropertyUsageType = "RetailStore"
	UsageDepartmentStore          PropertyUsageType = "DepartmentStore"
	UsageSupermarket              PropertyUsageType = "Supermarket"
	UsageShoppingCenterRegional   PropertyUsageType = "ShoppingCenterRegional"
	UsageShoppingCenterCommunity  PropertyUsageType = "ShoppingCenterCommunity"
	UsageOfficeBuilding           PropertyUsageType = "OfficeBuilding"
	UsageMedicalOffice            PropertyUsageType = "MedicalOffice"
	UsageTransportationTerminal   PropertyUsageType = "TransportationTerminal"
	UsageRestaurant               PropertyUsageType = "Restaurant"
	UsageFinancialInstitution     PropertyUsageType = "FinancialInstitution"
	UsageServiceStation           PropertyUsageType = "ServiceStation"
	UsageAutoSalesRepair          PropertyUsageType = "AutoSalesRepair"
	UsageMobileHomePark           PropertyUsageType = "MobileHomePark"
	UsageWholesaleOutlet          PropertyUsageType = "WholesaleOutlet"
	UsageTheater                  PropertyUsageType = "Theater"
	UsageEntertainment            PropertyUsageType = "Entertainment"
	UsageHotel                    PropertyUsageType = "Hotel"
	UsageGolfCourse               PropertyUsageType = "GolfCourse"
	UsageRaceTrack                PropertyUsageType = "RaceTrack"
	UsageRecreational             PropertyUsageType = "Recreational"
	UsageIndustrial               PropertyUsageType = "Industrial"
	UsageLightManufacturing       PropertyUsageType = "LightManufacturing"
	UsageHeavyManufacturing       PropertyUsageType = "HeavyManufacturing"
	UsageLumberYard               PropertyUsageType = "LumberYard"
	UsagePackingPlant             PropertyUsageType = "PackingPlant"
	UsageCannery                  PropertyUsageType = "Cannery"
	UsageMineralProcessing        PropertyUsageType = "MineralProcessing"
	UsageWarehouse                PropertyUsageType = "Warehouse"
	UsageOpenStorage              PropertyUsageType = "OpenStorage"
	UsageAgricultural             PropertyUsageType = "Agricultural"
	UsageCropland                 PropertyUsageType = "CroplandClass1"
	UsageTimberLand               PropertyUsageType = "TimberLand"
	UsageGrazingLand              PropertyUsageType = "GrazingLand"
	UsageOrchardGroves            PropertyUsageType = "OrchardGroves"
	UsagePoultry                  PropertyUsageType = "Poultry"
	UsageOrnamentals              PropertyUsageType = "Ornamentals"
	UsageLivestockFacility        PropertyUsageType = "LivestockFacility"
	UsageChurch                   PropertyUsageType = "Church"
	UsagePrivateSchool            PropertyUsageType = "PrivateSchool"
	UsagePrivateHospital          PropertyUsageType = "PrivateHospital"
	UsageHomesForAged             PropertyUsageType = "HomesForAged"
	UsageNonProfitCharity         PropertyUsageType = "NonProfitCharity"
	UsageMortuaryCemetery         PropertyUsageType = "MortuaryCemetery"
	UsageClubsLodges              PropertyUsageType = "ClubsLodges"
	UsageSanitarium               PropertyUsageType = "SanitariumConvalescentHome"
	UsageCulturalOrganization     PropertyUsageType = "CulturalOrganization"
	UsageMilitary                 PropertyUsageType = "Military"
	UsageForestParkRecreation     PropertyUsageType = "ForestParkRecreation"
	UsagePublicSchool             PropertyUsageType = "PublicSchool"
	UsagePublicHospital           PropertyUsageType = "PublicHospital"
	UsageGovernmentProperty       PropertyUsageType = "GovernmentProperty"
	UsageUtility                  PropertyUsageType = "Utility"
	UsageRiversLakes              PropertyUsageType = "RiversLakes"
	UsageSewageDisposal           PropertyUsageType = "SewageDisposal"
	UsageRailroad                 PropertyUsageType = "Railroad"
	UsageTransitionalProperty     PropertyUsageType = "TransitionalProperty"
	UsageReferenceParcel          PropertyUsageType = "ReferenceParcel"
	UsageUnknown                  PropertyUsageType = "Unknown"
)

type DeedType string

const (
	DeedWarranty                  DeedType = "Warranty Deed"
	DeedSpecialWarranty           DeedType = "Special Warranty Deed"
	DeedQuitclaim                 DeedType = "Quitclaim Deed"
	DeedGrant                     DeedType = "Grant Deed"
	DeedBargainAndSale            DeedType = "Bargain and Sale Deed"
	DeedLadyBird                  DeedType = "Lady Bird Deed"
	DeedTransferOnDeath           DeedType = "Transfer on Death Deed"
	DeedSheriffs                  DeedType = "Sheriff's Deed"
	DeedTax                       DeedType = "Tax Deed"
	DeedTrustees                  DeedType = "Trustee's Deed"
	DeedPersonalRepresentative    DeedType = "Personal Representative Deed"
	DeedCorrection                DeedType = "Correction Deed"
	DeedInLieuOfForeclosure       DeedType = "Deed in Lieu of Foreclosure"
	DeedLifeEstate                DeedType = "Life Estate Deed"
	DeedJointTenancy              DeedType = "Joint Tenancy Deed"
	DeedTenancyInCommon           DeedType = "Tenancy in Common Deed"
	DeedGift                      DeedType = "Gift Deed"
	DeedInterspousalTransfer      DeedType = "Interspousal Transfer Deed"
	DeedCourtOrder                DeedType = "Court Order Deed"
	DeedContractForDeed           DeedType = "Contract for Deed"
	DeedQuietTitle                DeedType = "Quiet Title Deed"
	DeedAdministrators            DeedType = "Administrator's Deed"
	DeedGuardians                 DeedType = "Guardian's Deed"
	DeedReceivers                 DeedType = "Receiver's Deed"
	DeedRightOfWay                DeedType = "Right of Way Deed"
	DeedAssignmentOfContract      DeedType = "Assignment of Contract"
	DeedMiscellaneous             DeedType = "Miscellaneous"
	DeedMappingNotAvailable       DeedType = MappingNotAvailable
)

type DocumentType string

const (
	DocumentWarrantyDeed       DocumentType = "ConveyanceDeedWarrantyDeed"
	DocumentQuitClaimDeed      DocumentType = "ConveyanceDeedQuitClaimDeed"
	DocumentBargainAndSaleDeed DocumentType = "ConveyanceDeedBargainAndSaleDeed"
	DocumentConveyanceDeed     DocumentType = "ConveyanceDeed"
)

type SpaceType string

const (
	SpaceBuilding            SpaceType = "Building"
	SpaceFloor               SpaceType = "Floor"
	SpaceLivingArea          SpaceType = "Living Area"
	SpaceLivingRoom          SpaceType = "Living Room"
	SpaceFamilyRoom          SpaceType = "Family Room"
	SpaceGreatRoom           SpaceType = "Great Room"
	SpaceDiningRoom          SpaceType = "Dining Room"
	SpaceKitchen             SpaceType = "Kitchen"
	SpaceBreakfastNook       SpaceType = "Breakfast Nook"
	SpacePantry              SpaceType = "Pantry"
	SpacePrimaryBedroom      SpaceType = "Primary Bedroom"
	SpaceSecondaryBedroom    SpaceType = "Secondary Bedroom"
	SpaceBedroom             SpaceType = "Bedroom"
	SpacePrimaryBathroom     SpaceType = "Primary Bathroom"
	SpaceFullBathroom        SpaceType = "Full Bathroom"
	SpaceThreeQuarterBath    SpaceType = "Three-Quarter Bathroom"
	SpaceHalfBathroom        SpaceType = "Half Bathroom / Powder Room"
	SpaceLaundryRoom         SpaceType = "Laundry Room"
	SpaceMudroom             SpaceType = "Mudroom"
	SpaceWalkInCloset        SpaceType = "Walk-in Closet"
	SpaceCloset              SpaceType = "Closet"
	SpaceOffice              SpaceType = "Office Room"
	SpaceDen                 SpaceType = "Den"
	SpaceBonusRoom           SpaceType = "Bonus Room"
	SpaceMediaRoom           SpaceType = "Media Room / Home Theater"
	SpaceGameRoom            SpaceType = "Game Room"
	SpaceGym                 SpaceType = "Home Gym"
	SpaceAttachedGarage      SpaceType = "Attached Garage"
	SpaceDetachedGarage      SpaceType = "Detached Garage"
	SpaceAttachedCarport     SpaceType = "Attached Carport"
	SpaceDetachedCarport     SpaceType = "Detached Carport"
	SpaceStorageRoom         SpaceType = "Storage Room"
	SpaceUtilityRoom         SpaceType = "Utility Room"
	SpaceScreenedPorch       SpaceType = "Screened Porch"
	SpaceEnclosedPorch       SpaceType = "Enclosed Porch"
	SpaceOpenPorch           SpaceType = "Open Porch"
	SpacePorch               SpaceType = "Porch"
	SpaceSunroom             SpaceType = "Sunroom"
	SpaceFloridaRoom         SpaceType = "Florida Room"
	SpacePatio               SpaceType = "Patio"
	SpaceDeck                SpaceType = "Deck"
	SpaceBalcony             SpaceType = "Balcony"
	SpaceLanai               SpaceType = "Lanai"
	SpaceOutdoorPool         SpaceType = "Outdoor Pool"
	SpaceIndoorPool          SpaceType = "Indoor Pool"
	SpaceHotTub              SpaceType = "Hot Tub / Spa Area"
	SpacePoolHouse           SpaceType = "Pool House"
	SpaceShed                SpaceType = "Shed"
	SpaceWorkshop            SpaceType = "Workshop"
	SpaceBarn                SpaceType = "Barn"
	SpaceAttic               SpaceType = "Attic"
	SpaceBasement            SpaceType = "Basement"
	SpaceStoop               SpaceType = "Stoop"
	SpaceMappingNotAvailable SpaceType = MappingNotAvailable
)

type StreetSuffix string

type Directional string

const (
	DirNorth     Directional = "N"
	DirSouth     Directional = "S"
	DirEast      Directional = "E"
	DirWest      Directional = "W"
	DirNorthEast Directional = "NE"
	DirNorthWest Directional = "NW"
	DirSouthEast Directional = "SE"
	DirSouthWest Directional = "SW"
)

type ImprovementType string

const (
	ImprovementResidential      ImprovementType = "ResidentialBuilding"
	ImprovementCommercial       ImprovementType = "CommercialBuilding"
	ImprovementManufacturedHome ImprovementType = "ManufacturedHome"
	ImprovementPool             ImprovementType = "Pool"
	ImprovementSpa              ImprovementType = "Spa"
	ImprovementScreenEnclosure  ImprovementType = "ScreenEnclosure"
	ImprovementChainLinkFence   ImprovementType = "ChainLinkFence"
	ImprovementWoodFence        ImprovementType = "WoodFence"
	ImprovementVinylFence       ImprovementType = "VinylFence"
	ImprovementMasonryWall      ImprovementType = "MasonryWall"
	ImprovementConcretePaving   ImprovementType = "ConcretePaving"
	ImprovementAsphaltPaving    ImprovementType = "AsphaltPaving"
	ImprovementPaverDriveway    ImprovementType = "PaverDriveway"
	ImprovementShed             ImprovementType = "Shed"
	ImprovementBarn             ImprovementType = "Barn"
	ImprovementCarport          ImprovementType = "Carport"
	ImprovementDock             ImprovementType = "Dock"
	ImprovementSeawall          ImprovementType = "Seawall"
	ImprovementBoatLift         ImprovementType = "BoatLift"
)

type ArchitecturalStyle string

type ExteriorWall string

type RoofCovering string

type RoofDesign string

type Foundation string

type Flooring string

type InteriorWall string

type CoolingSystem string

type HeatingSystem string

type HeatingFuel string

type SewerType string

type WaterSource string
