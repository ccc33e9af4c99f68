package response

import (
	"time"

	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/entities"
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/pricing"
)

type MoneyBreakdownResponse struct {
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

type TimeBreakdownResponse struct {
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

type BreakdownResponse struct {
	Money MoneyBreakdownResponse `json:"money"`
	Time  TimeBreakdownResponse  `json:"time"`
}

func FromBreakdown(b pricing.Breakdown) BreakdownResponse {
	return BreakdownResponse{
		Money: MoneyBreakdownResponse{
			BaseFee:     b.Money.BaseFee,
			Windows:     b.Money.Windows,
			Pressure:    b.Money.Pressure,
			HighReach:   b.Money.HighReach,
			Setup:       b.Money.Setup,
			Subtotal:    b.Money.Subtotal,
			MinimumJob:  b.Money.MinimumJob,
			Total:       b.Money.Total,
			GST:         b.Money.GST,
			TotalIncGST: b.Money.TotalIncGST,
		},
		Time: TimeBreakdownResponse{
			WindowsMinutes:   b.Time.WindowsMinutes,
			PressureMinutes:  b.Time.PressureMinutes,
			HighReachMinutes: b.Time.HighReachMinutes,
			SetupMinutes:     b.Time.SetupMinutes,
			TotalMinutes:     b.Time.TotalMinutes,
			WindowsHours:     b.Time.WindowsHours,
			PressureHours:    b.Time.PressureHours,
			HighReachHours:   b.Time.HighReachHours,
			SetupHours:       b.Time.SetupHours,
			TotalHours:       b.Time.TotalHours,
		},
	}
}

type WindowAddonResponse struct {
	ID           string  `json:"id"`
	Label        string  `json:"label"`
	BasePrice    float64 `json:"base_price"`
	Severity     string  `json:"severity"`
	InsideCount  int     `json:"inside_count"`
	OutsideCount int     `json:"outside_count"`
}

type PressureAddonResponse struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	BasePrice float64 `json:"base_price"`
	IsPerSqm  bool    `json:"is_per_sqm"`
	AreaSqm   float64 `json:"area_sqm"`
	Severity  string  `json:"severity"`
}

type WindowLineResponse struct {
	ID                    string                `json:"id"`
	WindowTypeID          string                `json:"window_type_id"`
	Panes                 int                   `json:"panes"`
	Inside                bool                  `json:"inside"`
	Outside               bool                  `json:"outside"`
	HighReach             bool                  `json:"high_reach"`
	InsideHighReachCount  int                   `json:"inside_high_reach_count"`
	OutsideHighReachCount int                   `json:"outside_high_reach_count"`
	ConditionID           string                `json:"condition_id"`
	AccessID              string                `json:"access_id"`
	TintLevel             string                `json:"tint_level"`
	Addons                []WindowAddonResponse `json:"addons,omitempty"`
}

type PressureLineResponse struct {
	ID        string                  `json:"id"`
	SurfaceID string                  `json:"surface_id"`
	AreaSqm   float64                 `json:"area_sqm"`
	SoilLevel string                  `json:"soil_level"`
	Access    string                  `json:"access"`
	Addons    []PressureAddonResponse `json:"addons,omitempty"`
}

type PricingConfigResponse struct {
	BaseFee                  float64 `json:"base_fee"`
	HourlyRate               float64 `json:"hourly_rate"`
	MinimumJob               float64 `json:"minimum_job"`
	HighReachModifierPercent float64 `json:"high_reach_modifier_percent"`
	InsideMultiplier         float64 `json:"inside_multiplier"`
	OutsideMultiplier        float64 `json:"outside_multiplier"`
	PressureHourlyRate       float64 `json:"pressure_hourly_rate"`
	SetupBufferMinutes       float64 `json:"setup_buffer_minutes"`
}

type ClientDetailsResponse struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type QuoteResponse struct {
	ID            string                 `json:"id"`
	Title         string                 `json:"title"`
	JobType       string                 `json:"job_type"`
	Client        ClientDetailsResponse  `json:"client"`
	WindowLines   []WindowLineResponse   `json:"window_lines"`
	PressureLines []PressureLineResponse `json:"pressure_lines"`
	Pricing       PricingConfigResponse  `json:"pricing"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	windowLines := make([]WindowLineResponse, 0, len(q.WindowLines))
	for _, l := range q.WindowLines {
		addons := make([]WindowAddonResponse, 0, len(l.Addons))
		for _, a := range l.Addons {
			addons = append(addons, WindowAddonResponse{
				ID:           a.ID,
				Label:        a.Label,
				BasePrice:    a.BasePrice,
				Severity:     string(a.Severity),
				InsideCount:  a.InsideCount,
				OutsideCount: a.OutsideCount,
			})
		}
		windowLines = append(windowLines, WindowLineResponse{
			ID:                    l.ID,
			WindowTypeID:          l.WindowTypeID,
			Panes:                 l.Panes,
			Inside:                l.Inside,
			Outside:               l.Outside,
			HighReach:             l.HighReach,
			InsideHighReachCount:  l.InsideHighReachCount,
			OutsideHighReachCount: l.OutsideHighReachCount,
			ConditionID:           l.ConditionID,
			AccessID:              l.AccessID,
			TintLevel:             string(l.TintLevel),
			Addons:                addons,
		})
	}

	pressureLines := make([]PressureLineResponse, 0, len(q.PressureLines))
	for _, l := range q.PressureLines {
		addons := make([]PressureAddonResponse, 0, len(l.Addons))
		for _, a := range l.Addons {
			addons = append(addons, PressureAddonResponse{
				ID:        a.ID,
				Label:     a.Label,
				BasePrice: a.BasePrice,
				IsPerSqm:  a.IsPerSqm,
				AreaSqm:   a.AreaSqm,
				Severity:  string(a.Severity),
			})
		}
		pressureLines = append(pressureLines, PressureLineResponse{
			ID:        l.ID,
			SurfaceID: l.SurfaceID,
			AreaSqm:   l.AreaSqm,
			SoilLevel: l.SoilLevel,
			Access:    l.Access,
			Addons:    addons,
		})
	}

	return QuoteResponse{
		ID:      q.ID,
		Title:   q.Title,
		JobType: q.JobType,
		Client: ClientDetailsResponse{
			Name:     q.Client.Name,
			Location: q.Client.Location,
			Email:    q.Client.Email,
			Phone:    q.Client.Phone,
		},
		WindowLines:   windowLines,
		PressureLines: pressureLines,
		Pricing: PricingConfigResponse{
			BaseFee:                  q.Pricing.BaseFee,
			HourlyRate:               q.Pricing.HourlyRate,
			MinimumJob:               q.Pricing.MinimumJob,
			HighReachModifierPercent: q.Pricing.HighReachModifierPercent,
			InsideMultiplier:         q.Pricing.InsideMultiplier,
			OutsideMultiplier:        q.Pricing.OutsideMultiplier,
			PressureHourlyRate:       q.Pricing.PressureHourlyRate,
			SetupBufferMinutes:       q.Pricing.SetupBufferMinutes,
		},
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
