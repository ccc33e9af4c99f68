package entities

import "time"

// AddonSeverity is a coarse difficulty tier for add-on services.
// Pricing multipliers: light=1.0, medium=1.5, heavy=2.0.
type AddonSeverity string

const (
	AddonSeverityLight  AddonSeverity = "light"
	AddonSeverityMedium AddonSeverity = "medium"
	AddonSeverityHeavy  AddonSeverity = "heavy"
)

// TintLevel describes window tinting, which slows cleaning slightly.
type TintLevel string

const (
	TintLevelNone  TintLevel = "none"
	TintLevelLight TintLevel = "light"
	TintLevelHeavy TintLevel = "heavy"
)

// WindowAddon is an add-on service attached to a window line, priced per pane.
type WindowAddon struct {
	ID           string        `json:"id"`
	Label        string        `json:"label"`
	BasePrice    float64       `json:"base_price"`
	Severity     AddonSeverity `json:"severity"`
	InsideCount  int           `json:"inside_count"`
	OutsideCount int           `json:"outside_count"`
}

// PressureAddon is an add-on service attached to a pressure line. When
// IsPerSqm is true the price scales with AreaSqm, otherwise it is a flat fee.
type PressureAddon struct {
	ID        string        `json:"id"`
	Label     string        `json:"label"`
	BasePrice float64       `json:"base_price"`
	IsPerSqm  bool          `json:"is_per_sqm"`
	AreaSqm   float64       `json:"area_sqm"`
	Severity  AddonSeverity `json:"severity"`
}

// WindowLine is one editable window-cleaning line in a quote.
//
// InsideHighReachCount / OutsideHighReachCount split the pane population into
// high-reach and normal sub-populations per side; they are only meaningful
// when HighReach is true and are clamped to [0, Panes] by the pricer.
type WindowLine struct {
	ID                    string        `json:"id"`
	WindowTypeID          string        `json:"window_type_id"`
	Panes                 int           `json:"panes"`
	Inside                bool          `json:"inside"`
	Outside               bool          `json:"outside"`
	HighReach             bool          `json:"high_reach"`
	InsideHighReachCount  int           `json:"inside_high_reach_count"`
	OutsideHighReachCount int           `json:"outside_high_reach_count"`
	ConditionID           string        `json:"condition_id"`
	AccessID              string        `json:"access_id"`
	TintLevel             TintLevel     `json:"tint_level"`
	Addons                []WindowAddon `json:"addons"`
}

// PressureLine is one editable pressure-cleaning line in a quote.
type PressureLine struct {
	ID        string          `json:"id"`
	SurfaceID string          `json:"surface_id"`
	AreaSqm   float64         `json:"area_sqm"`
	SoilLevel string          `json:"soil_level"`
	Access    string          `json:"access"`
	Addons    []PressureAddon `json:"addons"`
}

// PricingConfig is the per-quote pricing configuration. Monetary and time
// fields are coerced to be non-negative before calculation; multipliers
// default to 1.0 and are floored at 0.1.
type PricingConfig struct {
	BaseFee                  float64 `json:"base_fee"`
	HourlyRate               float64 `json:"hourly_rate"`
	MinimumJob               float64 `json:"minimum_job"`
	HighReachModifierPercent float64 `json:"high_reach_modifier_percent"`
	InsideMultiplier         float64 `json:"inside_multiplier"`
	OutsideMultiplier        float64 `json:"outside_multiplier"`
	PressureHourlyRate       float64 `json:"pressure_hourly_rate"`
	SetupBufferMinutes       float64 `json:"setup_buffer_minutes"`
}

// DefaultPricingConfig mirrors the defaults the quote editor starts from.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		BaseFee:                  0,
		HourlyRate:               60,
		MinimumJob:               80,
		HighReachModifierPercent: 40,
		InsideMultiplier:         1,
		OutsideMultiplier:        1,
		PressureHourlyRate:       80,
		SetupBufferMinutes:       15,
	}
}

// ClientDetails are the client identity fields carried on a quote.
type ClientDetails struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Quote is the aggregate root for a quoting session. The derived breakdown is
// not stored; it is recomputed from the lines and config on demand.
type Quote struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	JobType       string         `json:"job_type"`
	Client        ClientDetails  `json:"client"`
	WindowLines   []WindowLine   `json:"window_lines"`
	PressureLines []PressureLine `json:"pressure_lines"`
	Pricing       PricingConfig  `json:"pricing"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// LineCount is the number of billable lines on the quote.
func (q Quote) LineCount() int {
	return len(q.WindowLines) + len(q.PressureLines)
}
