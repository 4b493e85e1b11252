package mapping

import "parcelnorm/internal"

var CoolingSystems = register(Table[internal.CoolingSystem]{
	Name: "cooling_system_type",
	Rules: []Rule[internal.CoolingSystem]{
		{"NONE", Exact("NONE", "NO AC", "NO A C", "NO COOLING"), "None"},
		{"DUCTLESS MINI SPLIT", Any(Phrase("MINI SPLIT", "MINISPLIT"), Token("DUCTLESS")), "Ductless"},
		{"WINDOW UNIT", Any(Phrase("WINDOW UNIT", "WALL UNIT"), Token("WINDOW")), "WindowAirConditioner"},
		{"EVAPORATIVE", Token("EVAPORATIVE", "SWAMP"), "Evaporative"},
		{"GEOTHERMAL", Token("GEOTHERMAL"), "Geothermal"},
		{"CENTRAL AIR", Any(Phrase("AIR CONDITIONING", "AIR COND", "A C", "HEAT PUMP"), Token("CENTRAL", "AC", "HVAC", "DUCTED", "CENTRL")), "CentralAir"},
	},
})

var HeatingSystems = register(Table[internal.HeatingSystem]{
	Name: "heating_system_type",
	Rules: []Rule[internal.HeatingSystem]{
		{"HEAT PUMP", Any(Phrase("HEAT PUMP"), Token("HEATPUMP", "HP")), "HeatPump"},
		{"RADIANT", Token("RADIANT"), "Radiant"},
		{"BASEBOARD", Token("BASEBOARD"), "Baseboard"},
		{"BOILER", Token("BOILER", "HYDRONIC", "STEAM"), "Boiler"},
		{"WALL FURNACE", Phrase("WALL FURNACE", "WALL HEATER", "WALL UNIT"), "WallFurnace"},
		{"SPACE HEATER", Any(Phrase("SPACE HEATER"), Token("PORTABLE")), "SpaceHeater"},
		{"GAS FURNACE", All(Token("GAS", "PROPANE", "LP"), Token("FURNACE", "FORCED", "DUCTED", "CENTRAL")), "GasFurnace"},
		{"ELECTRIC FURNACE", Token("FURNACE", "FORCED", "DUCTED", "CENTRAL", "ELECTRIC", "ELEC"), "ElectricFurnace"},
	},
})

var HeatingFuels = register(Table[internal.HeatingFuel]{
	Name: "heating_fuel_type",
	Rules: []Rule[internal.HeatingFuel]{
		{"PROPANE", Any(Phrase("LP GAS", "LIQUID PROPANE"), Token("PROPANE", "LP", "LPG")), "Propane"},
		{"NATURAL GAS", Any(Phrase("NATURAL GAS"), Token("GAS", "NG")), "NaturalGas"},
		{"OIL", Token("OIL", "KEROSENE"), "Oil"},
		{"SOLAR", Token("SOLAR"), "Solar"},
		{"WOOD", Token("WOOD", "PELLET"), "Wood"},
		{"ELECTRIC", Any(Phrase("HEAT PUMP"), Token("ELECTRIC", "ELEC", "ELECTRICITY")), "Electric"},
	},
})

var SewerTypes = register(Table[internal.SewerType]{
	Name: "sewer_type",
	Rules: []Rule[internal.SewerType]{
		{"SEPTIC", Token("SEPTIC"), "Septic"},
		{"PRIVATE SEWER", Phrase("PRIVATE SEWER", "PACKAGE PLANT"), "Private"},
		{"PUBLIC SEWER", Token("PUBLIC", "SEWER", "CITY", "MUNICIPAL", "COUNTY"), "Public"},
	},
})

var WaterSources = register(Table[internal.WaterSource]{
	Name: "water_source_type",
	Rules: []Rule[internal.WaterSource]{
		{"WELL", Token("WELL", "WELLS"), "Well"},
		{"CISTERN", Token("CISTERN"), "Cistern"},
		{"PUBLIC WATER", Token("PUBLIC", "CITY", "MUNICIPAL", "COUNTY", "WATER"), "Public"},
	},
})
