// Package pricing implements the line pricer and quote aggregator. Every
// function is pure: results depend only on the inputs and the injected
// catalog, and all monetary values are rounded to the cent (half away from
// zero) at the point of computation.
package pricing

import (
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/catalog"
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/entities"
)

// highReachTimeMultiplier is the dedicated time-domain premium for high-reach
// panes (70% extra). The time estimate deliberately does not read the
// configurable price-domain percentage: difficulty is priced via
// HighReachModifierPercent, while the time impact of extended equipment is a
// fixed property of the work.
const highReachTimeMultiplier = 1.7

// Calculator prices individual quote lines against an injected catalog.
type Calculator struct {
	cat *catalog.Catalog
}

func NewCalculator(cat *catalog.Catalog) *Calculator {
	return &Calculator{cat: cat}
}

// NormalizeConfig coerces a pricing config into the calculable range:
// monetary and time fields non-negative, multipliers defaulted to 1.0 and
// floored at 0.1.
func NormalizeConfig(cfg entities.PricingConfig) entities.PricingConfig {
	cfg.BaseFee = nonNegative(cfg.BaseFee)
	cfg.HourlyRate = nonNegative(cfg.HourlyRate)
	cfg.MinimumJob = nonNegative(cfg.MinimumJob)
	cfg.HighReachModifierPercent = nonNegative(cfg.HighReachModifierPercent)
	cfg.PressureHourlyRate = nonNegative(cfg.PressureHourlyRate)
	cfg.SetupBufferMinutes = nonNegative(cfg.SetupBufferMinutes)
	cfg.InsideMultiplier = normalizeMultiplier(cfg.InsideMultiplier)
	cfg.OutsideMultiplier = normalizeMultiplier(cfg.OutsideMultiplier)
	return cfg
}

func normalizeMultiplier(m float64) float64 {
	m = sanitize(m)
	if m == 0 {
		return 1.0
	}
	if m < 0.1 {
		return 0.1
	}
	return m
}

func severityMultiplier(s entities.AddonSeverity) float64 {
	switch s {
	case entities.AddonSeverityMedium:
		return 1.5
	case entities.AddonSeverityHeavy:
		return 2.0
	default:
		return 1.0
	}
}

func tintPriceFactor(t entities.TintLevel) float64 {
	switch t {
	case entities.TintLevelLight:
		return 1.05
	case entities.TintLevelHeavy:
		return 1.1
	default:
		return 1.0
	}
}

// WindowLineCost computes the cost of one window line.
//
// The per-pane rate is derived from the window type's base minutes and the
// hourly rate, scaled by the side-selection multipliers. With high reach
// enabled, the pane population is split per side into high-reach and normal
// sub-populations; the high-reach portion carries the configured percentage
// premium. Condition, access and tint multipliers apply to the whole line.
// Add-ons are priced per treated pane and are not gated by side selection.
func (c *Calculator) WindowLineCost(line entities.WindowLine, cfg entities.PricingConfig) float64 {
	typeData, ok := c.cat.WindowType(line.WindowTypeID)
	if !ok {
		return 0
	}
	if !line.Inside && !line.Outside {
		return 0
	}
	cfg = NormalizeConfig(cfg)

	panes := line.Panes
	if panes < 0 {
		panes = 0
	}
	premium := 1 + cfg.HighReachModifierPercent/100

	var sides float64
	if line.Inside {
		perPane := MinutesToHours(typeData.BaseMinutesInside*cfg.InsideMultiplier) * cfg.HourlyRate
		sides += splitHighReach(panes, highReachCount(line.HighReach, line.InsideHighReachCount, panes), perPane, premium)
	}
	if line.Outside {
		perPane := MinutesToHours(typeData.BaseMinutesOutside*cfg.OutsideMultiplier) * cfg.HourlyRate
		sides += splitHighReach(panes, highReachCount(line.HighReach, line.OutsideHighReachCount, panes), perPane, premium)
	}

	factor := c.cat.ConditionPriceMultiplier(line.ConditionID) *
		c.cat.AccessPriceMultiplier(line.AccessID) *
		tintPriceFactor(line.TintLevel)

	return RoundMoney(sides*factor + windowAddonCost(line.Addons, panes))
}

// WindowLineTime computes the estimated minutes for one window line,
// mirroring the cost formula with base minutes and the catalog's time
// multipliers. High-reach panes carry the fixed time premium.
func (c *Calculator) WindowLineTime(line entities.WindowLine, insideMultiplier, outsideMultiplier float64) float64 {
	typeData, ok := c.cat.WindowType(line.WindowTypeID)
	if !ok {
		return 0
	}
	if !line.Inside && !line.Outside {
		return 0
	}
	insideMultiplier = normalizeMultiplier(insideMultiplier)
	outsideMultiplier = normalizeMultiplier(outsideMultiplier)

	panes := line.Panes
	if panes < 0 {
		panes = 0
	}

	var minutes float64
	if line.Inside {
		perPane := typeData.BaseMinutesInside * insideMultiplier
		minutes += splitHighReach(panes, highReachCount(line.HighReach, line.InsideHighReachCount, panes), perPane, highReachTimeMultiplier)
	}
	if line.Outside {
		perPane := typeData.BaseMinutesOutside * outsideMultiplier
		minutes += splitHighReach(panes, highReachCount(line.HighReach, line.OutsideHighReachCount, panes), perPane, highReachTimeMultiplier)
	}

	factor := c.cat.ConditionTimeMultiplier(line.ConditionID) *
		c.cat.AccessTimeMultiplier(line.AccessID) *
		tintPriceFactor(line.TintLevel)

	return sanitize(minutes * factor)
}

// PressureLineCost computes the cost of one pressure line: area times the
// surface base rate, scaled by soil and access price multipliers, plus
// add-ons.
func (c *Calculator) PressureLineCost(line entities.PressureLine, cfg entities.PricingConfig) float64 {
	surface, ok := c.cat.PressureSurface(line.SurfaceID)
	if !ok {
		return 0
	}
	area := nonNegative(line.AreaSqm)
	if area == 0 {
		return 0
	}

	base := area * surface.BaseRate *
		c.cat.ConditionPriceMultiplier(line.SoilLevel) *
		c.cat.AccessPriceMultiplier(line.Access)

	return RoundMoney(base + pressureAddonCost(line.Addons))
}

// PressureLineTime computes the estimated minutes for one pressure line.
func (c *Calculator) PressureLineTime(line entities.PressureLine) float64 {
	surface, ok := c.cat.PressureSurface(line.SurfaceID)
	if !ok {
		return 0
	}
	area := nonNegative(line.AreaSqm)
	if area == 0 {
		return 0
	}

	return sanitize(area * surface.MinutesPerSqm *
		c.cat.ConditionTimeMultiplier(line.SoilLevel) *
		c.cat.AccessTimeMultiplier(line.Access))
}

// highReachCount resolves the effective high-reach sub-population for a side.
// Counts only matter while the line's master switch is on.
func highReachCount(enabled bool, count, panes int) int {
	if !enabled {
		return 0
	}
	return clampCount(count, panes)
}

// splitHighReach prices a pane population where hr panes carry the premium
// factor and the rest are charged at the normal per-pane rate.
func splitHighReach(panes, hr int, perPane, premium float64) float64 {
	return float64(panes-hr)*perPane + float64(hr)*perPane*premium
}

func windowAddonCost(addons []entities.WindowAddon, panes int) float64 {
	var total float64
	for _, a := range addons {
		treated := clampCount(a.InsideCount, panes) + clampCount(a.OutsideCount, panes)
		total += nonNegative(a.BasePrice) * float64(treated) * severityMultiplier(a.Severity)
	}
	return total
}

func pressureAddonCost(addons []entities.PressureAddon) float64 {
	var total float64
	for _, a := range addons {
		sev := severityMultiplier(a.Severity)
		if a.IsPerSqm {
			total += nonNegative(a.AreaSqm) * nonNegative(a.BasePrice) * sev
		} else {
			total += nonNegative(a.BasePrice) * sev
		}
	}
	return total
}
