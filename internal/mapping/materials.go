package mapping

import "parcelnorm/internal"

// ImprovementTypes resolves extra-feature rows (pool, fence, paving, dock).
var ImprovementTypes = register(Table[internal.ImprovementType]{
	Name: "improvement_type",
	Rules: []Rule[internal.ImprovementType]{
		{"SCREEN ENCLOSURE", Any(Phrase("SCREEN ENCLOSURE", "SCREEN ENCL", "SCRN ENCL", "POOL CAGE"), Token("SCREENED")), internal.ImprovementScreenEnclosure},
		{"SPA", Any(Phrase("HOT TUB"), Token("SPA", "JACUZZI")), internal.ImprovementSpa},
		{"POOL", Token("POOL", "POOLS"), internal.ImprovementPool},
		{"CHAIN LINK FENCE", Phrase("CHAIN LINK", "CHAINLINK", "CL FENCE"), internal.ImprovementChainLinkFence},
		{"WOOD FENCE", Phrase("WOOD FENCE", "WD FENCE", "WOOD FENCING", "PRIVACY FENCE"), internal.ImprovementWoodFence},
		{"VINYL FENCE", Phrase("VINYL FENCE", "PVC FENCE", "VINYL FENCING"), internal.ImprovementVinylFence},
		{"MASONRY WALL", Phrase("MASONRY WALL", "CB WALL", "BLOCK WALL", "CONCRETE WALL"), internal.ImprovementMasonryWall},
		{"ASPHALT PAVING", Token("ASPHALT", "BLACKTOP"), internal.ImprovementAsphaltPaving},
		{"PAVER DRIVEWAY", Token("PAVER", "PAVERS"), internal.ImprovementPaverDriveway},
		{"CONCRETE PAVING", Token("CONCRETE", "CONC", "PAVING", "DRIVEWAY", "SLAB", "SIDEWALK"), internal.ImprovementConcretePaving},
		{"BOAT LIFT", Any(Phrase("BOAT LIFT"), Token("BOATLIFT", "DAVIT", "DAVITS")), internal.ImprovementBoatLift},
		{"DOCK", Token("DOCK", "DOCKS", "PIER", "BOARDWALK"), internal.ImprovementDock},
		{"SEAWALL", Any(Phrase("SEA WALL"), Token("SEAWALL", "BULKHEAD", "RIPRAP")), internal.ImprovementSeawall},
		{"CARPORT", Token("CARPORT"), internal.ImprovementCarport},
		{"BARN", Token("BARN", "STABLE"), internal.ImprovementBarn},
		{"SHED", Any(Phrase("UTILITY BUILDING", "UTILITY BLDG", "STORAGE BUILDING"), Token("SHED", "SHEDS")), internal.ImprovementShed},
		{"FENCE", Token("FENCE", "FENCING"), internal.ImprovementWoodFence},
	},
})

// IsFence reports whether an improvement type describes fencing.
func IsFence(t internal.ImprovementType) bool {
	switch t {
	case internal.ImprovementChainLinkFence, internal.ImprovementWoodFence, internal.ImprovementVinylFence, internal.ImprovementMasonryWall:
		return true
	}
	return false
}

// IsDriveway reports whether an improvement type describes driveway paving.
func IsDriveway(t internal.ImprovementType) bool {
	switch t {
	case internal.ImprovementConcretePaving, internal.ImprovementAsphaltPaving, internal.ImprovementPaverDriveway:
		return true
	}
	return false
}

var ExteriorWalls = register(Table[internal.ExteriorWall]{
	Name: "exterior_wall_material",
	Rules: []Rule[internal.ExteriorWall]{
		{"STUCCO", Token("STUCCO", "STC"), "Stucco"},
		{"BRICK", Token("BRICK", "BRK"), "Brick"},
		{"MANUFACTURED STONE", All(Token("STONE"), Token("MANUFACTURED", "CULTURED", "VENEER")), "Manufactured Stone"},
		{"NATURAL STONE", Token("STONE", "ROCK"), "Natural Stone"},
		{"VINYL SIDING", Token("VINYL"), "Vinyl Siding"},
		{"FIBER CEMENT SIDING", Any(Phrase("FIBER CEMENT", "CEMENT BOARD"), Token("HARDIE", "HARDIPLANK", "HARDIBOARD")), "Fiber Cement Siding"},
		{"METAL SIDING", Token("METAL", "ALUMINUM", "STEEL", "ALUM"), "Metal Siding"},
		{"EIFS", Token("EIFS", "DRYVIT"), "EIFS"},
		{"LOG", Token("LOG", "LOGS"), "Log"},
		{"CONCRETE BLOCK", Any(Phrase("CONCRETE BLOCK"), Token("CB", "CBS", "BLOCK", "CONCRETE", "MASONRY", "CONC")), "Concrete Block"},
		{"WOOD SIDING", Token("WOOD", "FRAME", "SIDING", "CEDAR", "T111", "BOARD", "SHINGLE"), "Wood Siding"},
	},
})

var RoofCoverings = register(Table[internal.RoofCovering]{
	Name: "roof_covering_material",
	Rules: []Rule[internal.RoofCovering]{
		{"METAL STANDING SEAM", Phrase("STANDING SEAM"), "Metal Standing Seam"},
		{"METAL CORRUGATED", Any(Phrase("5 V CRIMP", "5V CRIMP"), Token("METAL", "CORRUGATED", "ALUMINUM", "TIN", "STEEL")), "Metal Corrugated"},
		{"CLAY TILE", Phrase("CLAY TILE", "BARREL TILE"), "Clay Tile"},
		{"CONCRETE TILE", Token("TILE"), "Concrete Tile"},
		{"ARCHITECTURAL ASPHALT SHINGLE", Token("ARCHITECTURAL", "DIMENSIONAL"), "Architectural Asphalt Shingle"},
		{"3-TAB ASPHALT SHINGLE", Token("SHINGLE", "SHINGLES", "ASPHALT", "COMPOSITION", "COMP", "SHG"), "3-Tab Asphalt Shingle"},
		{"NATURAL SLATE", Token("SLATE"), "Natural Slate"},
		{"WOOD SHAKE", Token("SHAKE", "SHAKES", "CEDAR"), "Wood Shake"},
		{"TPO MEMBRANE", Token("TPO"), "TPO Membrane"},
		{"EPDM MEMBRANE", Token("EPDM", "RUBBER", "MEMBRANE"), "EPDM Membrane"},
		{"MODIFIED BITUMEN", Token("BITUMEN", "MODBIT"), "Modified Bitumen"},
		{"BUILT-UP ROOF", Any(Phrase("BUILT UP", "TAR AND GRAVEL"), Token("BUILTUP", "BUR", "ROLL", "ROLLED")), "Built-Up Roof"},
	},
})

var RoofDesigns = register(Table[internal.RoofDesign]{
	Name: "roof_design_type",
	Rules: []Rule[internal.RoofDesign]{
		{"DUTCH GABLE", Phrase("DUTCH GABLE", "DUTCH HIP"), "Dutch Gable"},
		{"GABLE HIP", All(Token("GABLE"), Token("HIP")), "Combination"},
		{"GABLE", Token("GABLE"), "Gable"},
		{"HIP", Token("HIP"), "Hip"},
		{"FLAT", Token("FLAT"), "Flat"},
		{"MANSARD", Token("MANSARD"), "Mansard"},
		{"GAMBREL", Token("GAMBREL"), "Gambrel"},
		{"SHED", Token("SHED"), "Shed"},
		{"SALTBOX", Token("SALTBOX"), "Saltbox"},
		{"BUTTERFLY", Token("BUTTERFLY"), "Butterfly"},
		{"BONNET", Token("BONNET"), "Bonnet"},
		{"COMBINATION", Token("COMBINATION", "COMBO", "MIXED"), "Combination"},
	},
})

var Foundations = register(Table[internal.Foundation]{
	Name: "foundation_type",
	Rules: []Rule[internal.Foundation]{
		{"PARTIAL BASEMENT", Phrase("PARTIAL BASEMENT"), "Partial Basement"},
		{"BASEMENT WITH WALKOUT", Token("WALKOUT"), "Basement with Walkout"},
		{"FULL BASEMENT", Token("BASEMENT"), "Full Basement"},
		{"CRAWL SPACE", Any(Phrase("CRAWL SPACE"), Token("CRAWL", "CRAWLSPACE")), "Crawl Space"},
		{"PIER AND BEAM", Any(Phrase("PIER AND BEAM"), Token("PIER", "PIERS")), "Pier and Beam"},
		{"STEM WALL", Any(Phrase("STEM WALL"), Token("STEMWALL")), "Stem Wall"},
		{"PILING STILTS", Token("PILING", "PILINGS", "STILTS", "PILES", "ELEVATED"), "Piling / Stilts"},
		{"SLAB ON GRADE", Token("SLAB", "CONCRETE", "MONOLITHIC", "FOOTING", "SOG"), "Slab on Grade"},
	},
})

var Floorings = register(Table[internal.Flooring]{
	Name: "flooring_material",
	Rules: []Rule[internal.Flooring]{
		{"LUXURY VINYL PLANK", Any(Phrase("LUXURY VINYL"), Token("LVP", "LVT")), "Luxury Vinyl Plank"},
		{"SHEET VINYL", Token("VINYL", "VNL"), "Sheet Vinyl"},
		{"ENGINEERED HARDWOOD", Token("ENGINEERED"), "Engineered Hardwood"},
		{"HARDWOOD", Token("HARDWOOD", "WOOD", "OAK", "PINE", "PARQUET"), "Hardwood"},
		{"LAMINATE", Token("LAMINATE"), "Laminate"},
		{"TERRAZZO", Token("TERRAZZO"), "Terrazzo"},
		{"CARPET", Token("CARPET", "CPT"), "Carpet"},
		{"NATURAL STONE TILE", Token("MARBLE", "STONE", "TRAVERTINE", "SLATE", "GRANITE"), "Natural Stone Tile"},
		{"CERAMIC TILE", Token("TILE", "CERAMIC", "PORCELAIN"), "Ceramic Tile"},
		{"LINOLEUM", Token("LINOLEUM"), "Linoleum"},
		{"BAMBOO", Token("BAMBOO"), "Bamboo"},
		{"CORK", Token("CORK"), "Cork"},
		{"POLISHED CONCRETE", Token("CONCRETE", "CONC", "EPOXY"), "Polished Concrete"},
	},
})

var InteriorWalls = register(Table[internal.InteriorWall]{
	Name: "interior_wall_surface_material",
	Rules: []Rule[internal.InteriorWall]{
		{"DRYWALL", Token("DRYWALL", "SHEETROCK", "GYPSUM", "WALLBOARD"), "Drywall"},
		{"PLASTER", Token("PLASTER"), "Plaster"},
		{"WOOD PANELING", Token("PANEL", "PANELING", "PANELLING", "WOOD"), "Wood Paneling"},
		{"EXPOSED BRICK", Token("BRICK"), "Exposed Brick"},
		{"EXPOSED BLOCK", Token("BLOCK", "MASONRY"), "Exposed Block"},
		{"STONE VENEER", Token("STONE"), "Stone Veneer"},
		{"WAINSCOTING", Token("WAINSCOT", "WAINSCOTING"), "Wainscoting"},
	},
})

var ArchitecturalStyles = register(Table[internal.ArchitecturalStyle]{
	Name: "architectural_style_type",
	Rules: []Rule[internal.ArchitecturalStyle]{
		{"MID-CENTURY MODERN", Phrase("MID CENTURY", "MIDCENTURY"), "Mid-Century Modern"},
		{"RANCH", Token("RANCH"), "Ranch"},
		{"COLONIAL", Token("COLONIAL"), "Colonial"},
		{"CONTEMPORARY", Token("CONTEMPORARY"), "Contemporary"},
		{"CRAFTSMAN", Token("CRAFTSMAN"), "Craftsman"},
		{"MEDITERRANEAN", Token("MEDITERRANEAN", "MED"), "Mediterranean"},
		{"SPANISH", Token("SPANISH"), "Spanish"},
		{"VICTORIAN", Token("VICTORIAN"), "Victorian"},
		{"CAPE COD", Phrase("CAPE COD"), "Cape Cod"},
		{"BUNGALOW", Token("BUNGALOW"), "Bungalow"},
		{"MODERN", Token("MODERN"), "Modern"},
		{"TRADITIONAL", Token("TRADITIONAL", "CONVENTIONAL", "CONV"), "Traditional"},
		{"FARMHOUSE", Token("FARMHOUSE"), "Farmhouse"},
		{"KEY WEST", Phrase("KEY WEST", "CRACKER"), "Key West"},
		{"SPLIT LEVEL", Any(Phrase("SPLIT LEVEL"), Token("SPLIT")), "Split Level"},
	},
})
