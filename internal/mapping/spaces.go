package mapping

import "parcelnorm/internal"

// SpaceTypes covers room names and the appraiser sub-area codes (BAS, FOP,
// FSP, ...) used in building sketches.
var SpaceTypes = register(Table[internal.SpaceType]{
	Name: "space_type",
	Rules: []Rule[internal.SpaceType]{
		{"BAS", Exact("BAS", "BASE", "BASE AREA"), internal.SpaceLivingArea},
		{"FUS", Exact("FUS", "FHS"), internal.SpaceLivingArea},
		{"FOP", Exact("FOP", "UOP"), internal.SpaceOpenPorch},
		{"FSP", Exact("FSP", "USP"), internal.SpaceScreenedPorch},
		{"FEP", Exact("FEP", "UEP"), internal.SpaceEnclosedPorch},
		{"FGR", Exact("FGR", "UGR"), internal.SpaceAttachedGarage},
		{"FDG", Exact("FDG", "UDG"), internal.SpaceDetachedGarage},
		{"FCP", Exact("FCP", "UCP"), internal.SpaceAttachedCarport},
		{"FDC", Exact("FDC", "UDC"), internal.SpaceDetachedCarport},
		{"UST", Exact("UST", "FST"), internal.SpaceStorageRoom},
		{"FAT", Exact("FAT", "UAT"), internal.SpaceAttic},
		{"PTO", Exact("PTO", "PAT"), internal.SpacePatio},
		{"WDK", Exact("WDK", "DCK"), internal.SpaceDeck},
		{"BAL", Exact("BAL", "UBL"), internal.SpaceBalcony},
		{"PRIMARY BEDROOM", Phrase("PRIMARY BEDROOM", "MASTER BEDROOM", "MASTER BR", "OWNERS SUITE"), internal.SpacePrimaryBedroom},
		{"PRIMARY BATHROOM", Phrase("PRIMARY BATH", "PRIMARY BATHROOM", "MASTER BATH", "MASTER BATHROOM"), internal.SpacePrimaryBathroom},
		{"HALF BATH", Any(Phrase("HALF BATH", "1 2 BATH", "POWDER ROOM"), Token("POWDER")), internal.SpaceHalfBathroom},
		{"THREE QUARTER BATHROOM", Phrase("THREE QUARTER BATH", "THREE QUARTER BATHROOM", "3 4 BATH"), internal.SpaceThreeQuarterBath},
		{"FULL BATHROOM", Any(Phrase("FULL BATH"), Token("BATHROOM", "BATH", "BATHS", "BA")), internal.SpaceFullBathroom},
		{"SECONDARY BEDROOM", Phrase("SECONDARY BEDROOM", "GUEST BEDROOM", "GUEST ROOM"), internal.SpaceSecondaryBedroom},
		{"BEDROOM", Token("BEDROOM", "BEDROOMS", "BR", "BDRM"), internal.SpaceBedroom},
		{"SCREENED PORCH", Phrase("SCREENED PORCH", "SCREEN PORCH", "SCRN PORCH", "SCREEN ENCLOSURE"), internal.SpaceScreenedPorch},
		{"ENCLOSED PORCH", Phrase("ENCLOSED PORCH", "ENCL PORCH"), internal.SpaceEnclosedPorch},
		{"OPEN PORCH", Phrase("OPEN PORCH"), internal.SpaceOpenPorch},
		{"FLORIDA ROOM", Phrase("FLORIDA ROOM", "FLA ROOM"), internal.SpaceFloridaRoom},
		{"SUN ROOM", Any(Phrase("SUN ROOM"), Token("SUNROOM")), internal.SpaceSunroom},
		{"LANAI", Token("LANAI"), internal.SpaceLanai},
		{"STOOP", Token("STOOP"), internal.SpaceStoop},
		{"PORCH", Token("PORCH", "VERANDA"), internal.SpacePorch},
		{"DETACHED GARAGE", Phrase("DETACHED GARAGE", "DET GARAGE", "DET GAR"), internal.SpaceDetachedGarage},
		{"ATTACHED GARAGE", Token("GARAGE", "GAR"), internal.SpaceAttachedGarage},
		{"DETACHED CARPORT", Phrase("DETACHED CARPORT", "DET CARPORT"), internal.SpaceDetachedCarport},
		{"ATTACHED CARPORT", Token("CARPORT"), internal.SpaceAttachedCarport},
		{"POOL HOUSE", Phrase("POOL HOUSE", "CABANA"), internal.SpacePoolHouse},
		{"HOT TUB", Any(Phrase("HOT TUB"), Token("SPA", "JACUZZI", "WHIRLPOOL")), internal.SpaceHotTub},
		{"INDOOR POOL", Phrase("INDOOR POOL"), internal.SpaceIndoorPool},
		{"OUTDOOR POOL", Token("POOL"), internal.SpaceOutdoorPool},
		{"PATIO", Token("PATIO"), internal.SpacePatio},
		{"DECK", Token("DECK"), internal.SpaceDeck},
		{"BALCONY", Token("BALCONY"), internal.SpaceBalcony},
		{"LIVING ROOM", Phrase("LIVING ROOM"), internal.SpaceLivingRoom},
		{"FAMILY ROOM", Phrase("FAMILY ROOM"), internal.SpaceFamilyRoom},
		{"GREAT ROOM", Phrase("GREAT ROOM"), internal.SpaceGreatRoom},
		{"DINING ROOM", Token("DINING"), internal.SpaceDiningRoom},
		{"BREAKFAST NOOK", Any(Phrase("BREAKFAST NOOK"), Token("NOOK")), internal.SpaceBreakfastNook},
		{"KITCHEN", Token("KITCHEN"), internal.SpaceKitchen},
		{"PANTRY", Token("PANTRY"), internal.SpacePantry},
		{"LAUNDRY ROOM", Token("LAUNDRY"), internal.SpaceLaundryRoom},
		{"MUDROOM", Any(Phrase("MUD ROOM"), Token("MUDROOM")), internal.SpaceMudroom},
		{"WALK IN CLOSET", Phrase("WALK IN CLOSET", "WIC"), internal.SpaceWalkInCloset},
		{"CLOSET", Token("CLOSET"), internal.SpaceCloset},
		{"OFFICE", Token("OFFICE", "STUDY"), internal.SpaceOffice},
		{"DEN", Token("DEN"), internal.SpaceDen},
		{"BONUS ROOM", Phrase("BONUS ROOM"), internal.SpaceBonusRoom},
		{"MEDIA ROOM", Any(Phrase("MEDIA ROOM", "HOME THEATER"), Token("THEATER")), internal.SpaceMediaRoom},
		{"GAME ROOM", Phrase("GAME ROOM", "REC ROOM", "RECREATION ROOM"), internal.SpaceGameRoom},
		{"GYM", Token("GYM", "EXERCISE"), internal.SpaceGym},
		{"STORAGE ROOM", Token("STORAGE", "STG"), internal.SpaceStorageRoom},
		{"UTILITY ROOM", Token("UTILITY", "UTIL"), internal.SpaceUtilityRoom},
		{"SHED", Token("SHED"), internal.SpaceShed},
		{"WORKSHOP", Token("WORKSHOP"), internal.SpaceWorkshop},
		{"BARN", Token("BARN"), internal.SpaceBarn},
		{"ATTIC", Token("ATTIC"), internal.SpaceAttic},
		{"BASEMENT", Token("BASEMENT"), internal.SpaceBasement},
		{"LIVING AREA", Phrase("LIVING AREA", "HEATED AREA", "UPPER STORY", "FINISHED AREA"), internal.SpaceLivingArea},
		{"FLOOR", Token("FLOOR", "STORY"), internal.SpaceFloor},
		{"BUILDING", Token("BUILDING", "BLDG"), internal.SpaceBuilding},
	},
	Default:    internal.SpaceMappingNotAvailable,
	HasDefault: true,
})
