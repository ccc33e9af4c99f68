package request

import (
	"testing"

	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/entities"
)

func TestPriceRequest_ResolvePricing(t *testing.T) {
	t.Run("nil pricing falls back to defaults", func(t *testing.T) {
		r := PriceRequest{}
		cfg := r.ResolvePricing()
		if cfg != entities.DefaultPricingConfig() {
			t.Fatalf("expected defaults, got %+v", cfg)
		}
	})

	t.Run("partial overrides keep other defaults", func(t *testing.T) {
		rate := 75.0
		minJob := 120.0
		r := PriceRequest{Pricing: &PricingConfigRequest{HourlyRate: &rate, MinimumJob: &minJob}}

		cfg := r.ResolvePricing()
		if cfg.HourlyRate != 75 || cfg.MinimumJob != 120 {
			t.Fatalf("overrides not applied: %+v", cfg)
		}
		defaults := entities.DefaultPricingConfig()
		if cfg.HighReachModifierPercent != defaults.HighReachModifierPercent || cfg.InsideMultiplier != defaults.InsideMultiplier {
			t.Fatalf("defaults clobbered: %+v", cfg)
		}
	})

	t.Run("explicit zero override sticks", func(t *testing.T) {
		zero := 0.0
		r := PriceRequest{Pricing: &PricingConfigRequest{MinimumJob: &zero}}
		if cfg := r.ResolvePricing(); cfg.MinimumJob != 0 {
			t.Fatalf("explicit zero lost: %+v", cfg)
		}
	})
}

func TestQuoteRequest_ToEntity(t *testing.T) {
	r := QuoteRequest{
		Title:   "  Front windows  ",
		Client:  ClientDetailsRequest{Name: " Jo Smith ", Location: "12 High St"},
		JobType: "",
		WindowLines: []WindowLineRequest{
			{WindowTypeID: "std2", Panes: 4, Inside: true, TintLevel: "light",
				Addons: []WindowAddonRequest{{ID: "screens", BasePrice: 5, Severity: "heavy", InsideCount: 2}}},
		},
		PressureLines: []PressureLineRequest{
			{SurfaceID: "driveway", AreaSqm: 20, SoilLevel: "heavy"},
		},
	}

	q := r.ToEntity("q-1")

	if q.ID != "q-1" || q.Title != "Front windows" || q.Client.Name != "Jo Smith" {
		t.Fatalf("fields not mapped/trimmed: %+v", q)
	}
	if q.JobType != "window" {
		t.Fatalf("empty job type should default to window, got %q", q.JobType)
	}
	if len(q.WindowLines) != 1 || q.WindowLines[0].TintLevel != entities.TintLevelLight {
		t.Fatalf("window lines not mapped: %+v", q.WindowLines)
	}
	if q.WindowLines[0].Addons[0].Severity != entities.AddonSeverityHeavy {
		t.Fatalf("addon severity not mapped: %+v", q.WindowLines[0].Addons)
	}
	if len(q.PressureLines) != 1 || q.PressureLines[0].SoilLevel != "heavy" {
		t.Fatalf("pressure lines not mapped: %+v", q.PressureLines)
	}
	if q.Pricing != entities.DefaultPricingConfig() {
		t.Fatalf("expected default pricing, got %+v", q.Pricing)
	}
}
