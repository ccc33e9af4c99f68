package pricing

import "github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/entities"

// MoneyBreakdown is the per-category cost summary of a quote. HighReach is
// the portion of Windows attributable to high-reach premiums; it is exposed
// separately for display even though it is already inside Windows.
type MoneyBreakdown struct {
	BaseFee     float64 `json:"base_fee"`
	Windows     float64 `json:"windows"`
	Pressure    float64 `json:"pressure"`
	HighReach   float64 `json:"high_reach"`
	Setup       float64 `json:"setup"`
	Subtotal    float64 `json:"subtotal"`
	MinimumJob  float64 `json:"minimum_job"`
	Total       float64 `json:"total"`
	GST         float64 `json:"gst"`
	TotalIncGST float64 `json:"total_inc_gst"`
}

// TimeBreakdown is the per-category time summary in minutes and hours.
// High-reach minutes are already included in the windows total.
type TimeBreakdown struct {
	WindowsMinutes   float64 `json:"windows_minutes"`
	PressureMinutes  float64 `json:"pressure_minutes"`
	HighReachMinutes float64 `json:"high_reach_minutes"`
	SetupMinutes     float64 `json:"setup_minutes"`
	TotalMinutes     float64 `json:"total_minutes"`
	WindowsHours     float64 `json:"windows_hours"`
	PressureHours    float64 `json:"pressure_hours"`
	HighReachHours   float64 `json:"high_reach_hours"`
	SetupHours       float64 `json:"setup_hours"`
	TotalHours       float64 `json:"total_hours"`
}

// Breakdown is the full derived result for a quote.
type Breakdown struct {
	Money MoneyBreakdown `json:"money"`
	Time  TimeBreakdown  `json:"time"`
}

// Aggregate computes the full quote breakdown from the line collections and
// pricing config.
//
// The minimum-job floor applies to the pre-GST subtotal. GST is computed on
// the amount actually charged to the customer, i.e. on the floored subtotal.
func (c *Calculator) Aggregate(
	windowLines []entities.WindowLine,
	pressureLines []entities.PressureLine,
	cfg entities.PricingConfig,
) Breakdown {
	cfg = NormalizeConfig(cfg)

	var windows, highReach float64
	var windowsMinutes, highReachMinutes float64
	for _, line := range windowLines {
		cost := c.WindowLineCost(line, cfg)
		minutes := c.WindowLineTime(line, cfg.InsideMultiplier, cfg.OutsideMultiplier)
		windows += cost
		windowsMinutes += minutes

		if line.HighReach {
			flat := line
			flat.HighReach = false
			highReach += cost - c.WindowLineCost(flat, cfg)
			highReachMinutes += minutes - c.WindowLineTime(flat, cfg.InsideMultiplier, cfg.OutsideMultiplier)
		}
	}

	var pressure, pressureMinutes float64
	for _, line := range pressureLines {
		pressure += c.PressureLineCost(line, cfg)
		pressureMinutes += c.PressureLineTime(line)
	}

	// No setup fee rule exists today; the slot is kept in the breakdown.
	setup := 0.0
	setupMinutes := cfg.SetupBufferMinutes

	subtotal := RoundMoney(cfg.BaseFee + windows + pressure + setup)
	total := subtotal
	if cfg.MinimumJob > total {
		total = cfg.MinimumJob
	}
	gst, totalIncGST := GST(total)

	totalMinutes := windowsMinutes + pressureMinutes + setupMinutes

	return Breakdown{
		Money: MoneyBreakdown{
			BaseFee:     RoundMoney(cfg.BaseFee),
			Windows:     RoundMoney(windows),
			Pressure:    RoundMoney(pressure),
			HighReach:   RoundMoney(highReach),
			Setup:       setup,
			Subtotal:    subtotal,
			MinimumJob:  RoundMoney(cfg.MinimumJob),
			Total:       RoundMoney(total),
			GST:         gst,
			TotalIncGST: totalIncGST,
		},
		Time: TimeBreakdown{
			WindowsMinutes:   windowsMinutes,
			PressureMinutes:  pressureMinutes,
			HighReachMinutes: highReachMinutes,
			SetupMinutes:     setupMinutes,
			TotalMinutes:     totalMinutes,
			WindowsHours:     MinutesToHours(windowsMinutes),
			PressureHours:    MinutesToHours(pressureMinutes),
			HighReachHours:   MinutesToHours(highReachMinutes),
			SetupHours:       MinutesToHours(setupMinutes),
			TotalHours:       MinutesToHours(totalMinutes),
		},
	}
}
