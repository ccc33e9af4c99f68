package entities

// ModifierDomain scopes a condition/access modifier to the line kinds it may
// be applied to.
type ModifierDomain string

const (
	ModifierDomainWindow   ModifierDomain = "window"
	ModifierDomainPressure ModifierDomain = "pressure"
	ModifierDomainBoth     ModifierDomain = "both"
)

// WindowTypeConfig is a static catalog record for one window type.
//
// BaseMinutesInside/Outside drive both cost (via the hourly rate) and the
// time estimate for each side of the glass. BasePrice is an indicative
// per-pane figure surfaced on the catalog endpoint for display; it does not
// enter the line cost.
type WindowTypeConfig struct {
	ID                 string  `json:"id"`
	Label              string  `json:"label"`
	Category           string  `json:"category"`
	BaseMinutesInside  float64 `json:"base_minutes_inside"`
	BaseMinutesOutside float64 `json:"base_minutes_outside"`
	BasePrice          float64 `json:"base_price"`
}

// PressureSurfaceConfig is a static catalog record for one pressure-cleaned
// surface. BaseRate is dollars per square metre.
type PressureSurfaceConfig struct {
	ID            string  `json:"id"`
	Label         string  `json:"label"`
	Category      string  `json:"category"`
	MinutesPerSqm float64 `json:"minutes_per_sqm"`
	BaseRate      float64 `json:"base_rate"`
}

// ConditionModifier scales price and time for site conditions (soiling,
// staining, screens). Multipliers are >= 1.0 except for the explicit
// "cleaner than usual" entries ported from the source tables.
type ConditionModifier struct {
	ID              string         `json:"id"`
	Label           string         `json:"label"`
	Category        string         `json:"category"`
	PriceMultiplier float64        `json:"price_multiplier"`
	TimeMultiplier  float64        `json:"time_multiplier"`
	Domain          ModifierDomain `json:"domain"`
}

// AccessModifier scales price and time for access difficulty (ladders, rope
// access, elevated work platforms).
type AccessModifier struct {
	ID              string         `json:"id"`
	Label           string         `json:"label"`
	PriceMultiplier float64        `json:"price_multiplier"`
	TimeMultiplier  float64        `json:"time_multiplier"`
	Domain          ModifierDomain `json:"domain"`
}
