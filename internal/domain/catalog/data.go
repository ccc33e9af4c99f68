package catalog

import "github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/entities"

// Static reference tables for Australian window/pressure cleaning work.
// Base minutes are per pane per side and drive both cost and time; base
// prices are indicative per-pane figures for catalog display; pressure rates
// are per square metre.
var windowTypes = []entities.WindowTypeConfig{
	{ID: "std1", Label: "Standard 1x1 (small)", Category: "fixed", BaseMinutesInside: 2.5, BaseMinutesOutside: 2.5, BasePrice: 16},
	{ID: "std2", Label: "Standard 1x2 (taller)", Category: "fixed", BaseMinutesInside: 3.5, BaseMinutesOutside: 3.5, BasePrice: 20},
	{ID: "std3", Label: "Standard 2x2", Category: "fixed", BaseMinutesInside: 5.0, BaseMinutesOutside: 5.0, BasePrice: 24},
	{ID: "door", Label: "Glass Door / Slider", Category: "door", BaseMinutesInside: 4.5, BaseMinutesOutside: 4.5, BasePrice: 25},
	{ID: "balustrade", Label: "Glass Balustrade (panel)", Category: "balustrade", BaseMinutesInside: 3.0, BaseMinutesOutside: 3.0, BasePrice: 22},
	{ID: "feature", Label: "Feature / Picture Window", Category: "feature", BaseMinutesInside: 6.0, BaseMinutesOutside: 6.0, BasePrice: 32},
	{ID: "sliding_900", Label: "Sliding 900mm", Category: "sliding", BaseMinutesInside: 4, BaseMinutesOutside: 4, BasePrice: 24},
	{ID: "sliding_1200", Label: "Sliding 1200mm", Category: "sliding", BaseMinutesInside: 5, BaseMinutesOutside: 5, BasePrice: 25},
	{ID: "sliding_1800", Label: "Sliding 1800mm", Category: "sliding", BaseMinutesInside: 7, BaseMinutesOutside: 7, BasePrice: 30},
	{ID: "awning_small", Label: "Awning Small", Category: "awning", BaseMinutesInside: 3, BaseMinutesOutside: 3, BasePrice: 18},
}

var pressureSurfaces = []entities.PressureSurfaceConfig{
	{ID: "driveway", Label: "Driveway (concrete)", Category: "driveway", MinutesPerSqm: 1.4, BaseRate: 8},
	{ID: "paving", Label: "Paving / Brick", Category: "paving", MinutesPerSqm: 1.6, BaseRate: 9},
	{ID: "limestone", Label: "Limestone", Category: "paving", MinutesPerSqm: 2.0, BaseRate: 10},
	{ID: "deck", Label: "Timber Deck", Category: "deck", MinutesPerSqm: 1.8, BaseRate: 11},
	{ID: "patio", Label: "Patio / Alfresco", Category: "patio", MinutesPerSqm: 1.5, BaseRate: 8},
	{ID: "pool_surround", Label: "Pool Surround", Category: "pool", MinutesPerSqm: 1.6, BaseRate: 9},
	{ID: "roof_tile", Label: "Roof (tile)", Category: "roof", MinutesPerSqm: 2.2, BaseRate: 12},
}

var conditions = []entities.ConditionModifier{
	// Window debris / dirt level
	{ID: "clean", Label: "Clean / Light Soiling", Category: "debris", TimeMultiplier: 0.9, PriceMultiplier: 1.0, Domain: entities.ModifierDomainWindow},
	{ID: "moderate_dust", Label: "Moderate Dust / Marks", Category: "debris", TimeMultiplier: 1.0, PriceMultiplier: 1.0, Domain: entities.ModifierDomainWindow},
	{ID: "cobwebs", Label: "Cobwebs / Bugs", Category: "debris", TimeMultiplier: 1.15, PriceMultiplier: 1.1, Domain: entities.ModifierDomainWindow},
	{ID: "heavy_dust", Label: "Heavy Dust / Grime", Category: "debris", TimeMultiplier: 1.3, PriceMultiplier: 1.2, Domain: entities.ModifierDomainWindow},
	{ID: "building_dust", Label: "Post-Construction Dust", Category: "debris", TimeMultiplier: 1.5, PriceMultiplier: 1.4, Domain: entities.ModifierDomainWindow},
	// Window staining
	{ID: "water_stains", Label: "Hard Water Stains", Category: "staining", TimeMultiplier: 1.4, PriceMultiplier: 1.3, Domain: entities.ModifierDomainWindow},
	{ID: "paint_splatter", Label: "Paint Splatter", Category: "staining", TimeMultiplier: 1.5, PriceMultiplier: 1.4, Domain: entities.ModifierDomainWindow},
	{ID: "oxidation", Label: "Oxidation / Haze", Category: "staining", TimeMultiplier: 1.6, PriceMultiplier: 1.5, Domain: entities.ModifierDomainWindow},
	{ID: "salt_spray", Label: "Salt Spray (Coastal)", Category: "staining", TimeMultiplier: 1.25, PriceMultiplier: 1.15, Domain: entities.ModifierDomainWindow},
	// Pressure soil levels
	{ID: "light", Label: "Light Soiling", Category: "soil", TimeMultiplier: 1.0, PriceMultiplier: 1.0, Domain: entities.ModifierDomainPressure},
	{ID: "medium", Label: "Medium Soiling", Category: "soil", TimeMultiplier: 1.25, PriceMultiplier: 1.25, Domain: entities.ModifierDomainPressure},
	{ID: "heavy", Label: "Heavy Soiling", Category: "soil", TimeMultiplier: 1.5, PriceMultiplier: 1.5, Domain: entities.ModifierDomainPressure},
	{ID: "oil_stains", Label: "Oil Stains", Category: "soil", TimeMultiplier: 1.4, PriceMultiplier: 1.35, Domain: entities.ModifierDomainPressure},
	{ID: "mould_heavy", Label: "Heavy Mould", Category: "growth", TimeMultiplier: 1.35, PriceMultiplier: 1.3, Domain: entities.ModifierDomainPressure},
}

var accessModifiers = []entities.AccessModifier{
	{ID: "ground", Label: "Ground Level", TimeMultiplier: 1.0, PriceMultiplier: 1.0, Domain: entities.ModifierDomainBoth},
	{ID: "ladder_short", Label: "Short Ladder (single storey)", TimeMultiplier: 1.15, PriceMultiplier: 1.1, Domain: entities.ModifierDomainWindow},
	{ID: "ladder_medium", Label: "Medium Ladder", TimeMultiplier: 1.3, PriceMultiplier: 1.25, Domain: entities.ModifierDomainWindow},
	{ID: "ladder_high", Label: "High Ladder (double storey)", TimeMultiplier: 1.5, PriceMultiplier: 1.4, Domain: entities.ModifierDomainWindow},
	{ID: "rope_access", Label: "Rope Access / Abseil", TimeMultiplier: 2.0, PriceMultiplier: 2.0, Domain: entities.ModifierDomainWindow},
	{ID: "wfp_pole", Label: "Water-Fed Pole", TimeMultiplier: 1.2, PriceMultiplier: 1.1, Domain: entities.ModifierDomainWindow},
	{ID: "ewp", Label: "Elevated Work Platform", TimeMultiplier: 1.4, PriceMultiplier: 1.5, Domain: entities.ModifierDomainWindow},
	{ID: "easy", Label: "Easy Access", TimeMultiplier: 1.0, PriceMultiplier: 1.0, Domain: entities.ModifierDomainPressure},
	{ID: "ladder", Label: "Ladder Required", TimeMultiplier: 1.2, PriceMultiplier: 1.2, Domain: entities.ModifierDomainPressure},
	{ID: "highReach", Label: "High Reach Equipment", TimeMultiplier: 1.35, PriceMultiplier: 1.35, Domain: entities.ModifierDomainPressure},
}
