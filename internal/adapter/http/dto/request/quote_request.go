package request

import (
	"strings"

	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/entities"
)

type WindowAddonRequest struct {
	ID           string  `json:"id"`
	Label        string  `json:"label"`
	BasePrice    float64 `json:"base_price"`
	Severity     string  `json:"severity"`
	InsideCount  int     `json:"inside_count"`
	OutsideCount int     `json:"outside_count"`
}

type PressureAddonRequest struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	BasePrice float64 `json:"base_price"`
	IsPerSqm  bool    `json:"is_per_sqm"`
	AreaSqm   float64 `json:"area_sqm"`
	Severity  string  `json:"severity"`
}

type WindowLineRequest struct {
	ID                    string               `json:"id"`
	WindowTypeID          string               `json:"window_type_id" binding:"required"`
	Panes                 int                  `json:"panes" binding:"required"`
	Inside                bool                 `json:"inside"`
	Outside               bool                 `json:"outside"`
	HighReach             bool                 `json:"high_reach"`
	InsideHighReachCount  int                  `json:"inside_high_reach_count"`
	OutsideHighReachCount int                  `json:"outside_high_reach_count"`
	ConditionID           string               `json:"condition_id"`
	AccessID              string               `json:"access_id"`
	TintLevel             string               `json:"tint_level"`
	Addons                []WindowAddonRequest `json:"addons"`
}

type PressureLineRequest struct {
	ID        string                 `json:"id"`
	SurfaceID string                 `json:"surface_id" binding:"required"`
	AreaSqm   float64                `json:"area_sqm" binding:"required"`
	SoilLevel string                 `json:"soil_level"`
	Access    string                 `json:"access"`
	Addons    []PressureAddonRequest `json:"addons"`
}

type PricingConfigRequest struct {
	BaseFee                  *float64 `json:"base_fee"`
	HourlyRate               *float64 `json:"hourly_rate"`
	MinimumJob               *float64 `json:"minimum_job"`
	HighReachModifierPercent *float64 `json:"high_reach_modifier_percent"`
	InsideMultiplier         *float64 `json:"inside_multiplier"`
	OutsideMultiplier        *float64 `json:"outside_multiplier"`
	PressureHourlyRate       *float64 `json:"pressure_hourly_rate"`
	SetupBufferMinutes       *float64 `json:"setup_buffer_minutes"`
}

type ClientDetailsRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// PriceRequest is a pure pricing preview: lines plus optional config
// overrides, nothing persisted.
type PriceRequest struct {
	WindowLines   []WindowLineRequest   `json:"window_lines"`
	PressureLines []PressureLineRequest `json:"pressure_lines"`
	Pricing       *PricingConfigRequest `json:"pricing"`
}

// QuoteRequest is the save payload. The id is taken from the URL on updates.
type QuoteRequest struct {
	Title         string                `json:"title"`
	JobType       string                `json:"job_type"`
	Client        ClientDetailsRequest  `json:"client"`
	WindowLines   []WindowLineRequest   `json:"window_lines"`
	PressureLines []PressureLineRequest `json:"pressure_lines"`
	Pricing       *PricingConfigRequest `json:"pricing"`
}

func (r PriceRequest) ResolveWindowLines() []entities.WindowLine {
	return toWindowLines(r.WindowLines)
}

func (r PriceRequest) ResolvePressureLines() []entities.PressureLine {
	return toPressureLines(r.PressureLines)
}

func (r PriceRequest) ResolvePricing() entities.PricingConfig {
	return resolvePricing(r.Pricing)
}

func (r QuoteRequest) ToEntity(id string) entities.Quote {
	jobType := strings.TrimSpace(r.JobType)
	if jobType == "" {
		jobType = "window"
	}
	return entities.Quote{
		ID:      id,
		Title:   strings.TrimSpace(r.Title),
		JobType: jobType,
		Client: entities.ClientDetails{
			Name:     strings.TrimSpace(r.Client.Name),
			Location: strings.TrimSpace(r.Client.Location),
			Email:    strings.TrimSpace(r.Client.Email),
			Phone:    strings.TrimSpace(r.Client.Phone),
		},
		WindowLines:   toWindowLines(r.WindowLines),
		PressureLines: toPressureLines(r.PressureLines),
		Pricing:       resolvePricing(r.Pricing),
	}
}

func resolvePricing(r *PricingConfigRequest) entities.PricingConfig {
	cfg := entities.DefaultPricingConfig()
	if r == nil {
		return cfg
	}
	if r.BaseFee != nil {
		cfg.BaseFee = *r.BaseFee
	}
	if r.HourlyRate != nil {
		cfg.HourlyRate = *r.HourlyRate
	}
	if r.MinimumJob != nil {
		cfg.MinimumJob = *r.MinimumJob
	}
	if r.HighReachModifierPercent != nil {
		cfg.HighReachModifierPercent = *r.HighReachModifierPercent
	}
	if r.InsideMultiplier != nil {
		cfg.InsideMultiplier = *r.InsideMultiplier
	}
	if r.OutsideMultiplier != nil {
		cfg.OutsideMultiplier = *r.OutsideMultiplier
	}
	if r.PressureHourlyRate != nil {
		cfg.PressureHourlyRate = *r.PressureHourlyRate
	}
	if r.SetupBufferMinutes != nil {
		cfg.SetupBufferMinutes = *r.SetupBufferMinutes
	}
	return cfg
}

func toWindowLines(reqs []WindowLineRequest) []entities.WindowLine {
	lines := make([]entities.WindowLine, 0, len(reqs))
	for _, l := range reqs {
		addons := make([]entities.WindowAddon, 0, len(l.Addons))
		for _, a := range l.Addons {
			addons = append(addons, entities.WindowAddon{
				ID:           a.ID,
				Label:        a.Label,
				BasePrice:    a.BasePrice,
				Severity:     entities.AddonSeverity(a.Severity),
				InsideCount:  a.InsideCount,
				OutsideCount: a.OutsideCount,
			})
		}
		lines = append(lines, entities.WindowLine{
			ID:                    strings.TrimSpace(l.ID),
			WindowTypeID:          l.WindowTypeID,
			Panes:                 l.Panes,
			Inside:                l.Inside,
			Outside:               l.Outside,
			HighReach:             l.HighReach,
			InsideHighReachCount:  l.InsideHighReachCount,
			OutsideHighReachCount: l.OutsideHighReachCount,
			ConditionID:           l.ConditionID,
			AccessID:              l.AccessID,
			TintLevel:             entities.TintLevel(l.TintLevel),
			Addons:                addons,
		})
	}
	return lines
}

func toPressureLines(reqs []PressureLineRequest) []entities.PressureLine {
	lines := make([]entities.PressureLine, 0, len(reqs))
	for _, l := range reqs {
		addons := make([]entities.PressureAddon, 0, len(l.Addons))
		for _, a := range l.Addons {
			addons = append(addons, entities.PressureAddon{
				ID:        a.ID,
				Label:     a.Label,
				BasePrice: a.BasePrice,
				IsPerSqm:  a.IsPerSqm,
				AreaSqm:   a.AreaSqm,
				Severity:  entities.AddonSeverity(a.Severity),
			})
		}
		lines = append(lines, entities.PressureLine{
			ID:        strings.TrimSpace(l.ID),
			SurfaceID: l.SurfaceID,
			AreaSqm:   l.AreaSqm,
			SoilLevel: l.SoilLevel,
			Access:    l.Access,
			Addons:    addons,
		})
	}
	return lines
}
