package mapping

import "parcelnorm/internal"

func suffix(label string, result internal.StreetSuffix, forms ...string) Rule[internal.StreetSuffix] {
	return Rule[internal.StreetSuffix]{Label: label, Match: Exact(append([]string{label}, forms...)...), Result: result}
}

// StreetSuffixes maps USPS suffix names and their common abbreviations to the
// USPS standard abbreviation.
var StreetSuffixes = register(Table[internal.StreetSuffix]{
	Name: "street_suffix_type",
	Rules: []Rule[internal.StreetSuffix]{
		suffix("ALLEY", "Aly", "ALY", "ALLY"),
		suffix("AVENUE", "Ave", "AVE", "AV", "AVEN", "AVN"),
		suffix("BEND", "Bnd", "BND"),
		suffix("BOULEVARD", "Blvd", "BLVD", "BOUL", "BLV"),
		suffix("CIRCLE", "Cir", "CIR", "CIRC", "CRCL"),
		suffix("COURT", "Ct", "CT", "CRT"),
		suffix("COVE", "Cv", "CV"),
		suffix("CROSSING", "Xing", "XING", "CRSSNG"),
		suffix("DRIVE", "Dr", "DR", "DRV"),
		suffix("EXPRESSWAY", "Expy", "EXPY", "EXPWY"),
		suffix("HIGHWAY", "Hwy", "HWY", "HIWAY"),
		suffix("ISLE", "Isle", "ISL"),
		suffix("LANE", "Ln", "LN"),
		suffix("LOOP", "Loop", "LP"),
		suffix("MANOR", "Mnr", "MNR"),
		suffix("PARKWAY", "Pkwy", "PKWY", "PKY", "PARKWY"),
		suffix("PASS", "Pass"),
		suffix("PATH", "Path"),
		suffix("PIKE", "Pike"),
		suffix("PLACE", "Pl", "PL"),
		suffix("PLAZA", "Plz", "PLZ"),
		suffix("POINT", "Pt", "PT"),
		suffix("ROAD", "Rd", "RD"),
		suffix("ROW", "Row"),
		suffix("RUN", "Run"),
		suffix("SQUARE", "Sq", "SQ"),
		suffix("STREET", "St", "ST", "STR"),
		suffix("TERRACE", "Ter", "TER", "TERR"),
		suffix("TRACE", "Trce", "TRCE"),
		suffix("TRAIL", "Trl", "TRL"),
		suffix("WALK", "Walk"),
		suffix("WAY", "Way", "WY"),
	},
})

var Directionals = register(Table[internal.Directional]{
	Name: "street_directional",
	Rules: []Rule[internal.Directional]{
		{"NORTHEAST", Exact("NORTHEAST", "NE"), internal.DirNorthEast},
		{"NORTHWEST", Exact("NORTHWEST", "NW"), internal.DirNorthWest},
		{"SOUTHEAST", Exact("SOUTHEAST", "SE"), internal.DirSouthEast},
		{"SOUTHWEST", Exact("SOUTHWEST", "SW"), internal.DirSouthWest},
		{"NORTH", Exact("NORTH", "N"), internal.DirNorth},
		{"SOUTH", Exact("SOUTH", "S"), internal.DirSouth},
		{"EAST", Exact("EAST", "E"), internal.DirEast},
		{"WEST", Exact("WEST", "W"), internal.DirWest},
	},
})
