package response

import (
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/catalog"
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/entities"
)

type WindowTypeResponse struct {
	ID                 string  `json:"id"`
	Label              string  `json:"label"`
	Category           string  `json:"category"`
	BaseMinutesInside  float64 `json:"base_minutes_inside"`
	BaseMinutesOutside float64 `json:"base_minutes_outside"`
	BasePrice          float64 `json:"base_price"`
}

type PressureSurfaceResponse struct {
	ID            string  `json:"id"`
	Label         string  `json:"label"`
	Category      string  `json:"category"`
	MinutesPerSqm float64 `json:"minutes_per_sqm"`
	BaseRate      float64 `json:"base_rate"`
}

type ConditionModifierResponse struct {
	ID              string  `json:"id"`
	Label           string  `json:"label"`
	Category        string  `json:"category"`
	PriceMultiplier float64 `json:"price_multiplier"`
	TimeMultiplier  float64 `json:"time_multiplier"`
	Domain          string  `json:"domain"`
}

type AccessModifierResponse struct {
	ID              string  `json:"id"`
	Label           string  `json:"label"`
	PriceMultiplier float64 `json:"price_multiplier"`
	TimeMultiplier  float64 `json:"time_multiplier"`
	Domain          string  `json:"domain"`
}

type CatalogResponse struct {
	WindowTypes      []WindowTypeResponse        `json:"window_types"`
	PressureSurfaces []PressureSurfaceResponse   `json:"pressure_surfaces"`
	Conditions       []ConditionModifierResponse `json:"conditions"`
	AccessModifiers  []AccessModifierResponse    `json:"access_modifiers"`
}

func FromCatalog(c *catalog.Catalog) CatalogResponse {
	types := make([]WindowTypeResponse, 0)
	for _, t := range c.WindowTypes() {
		types = append(types, fromWindowType(t))
	}
	surfaces := make([]PressureSurfaceResponse, 0)
	for _, s := range c.PressureSurfaces() {
		surfaces = append(surfaces, fromPressureSurface(s))
	}
	conditions := make([]ConditionModifierResponse, 0)
	for _, m := range c.Conditions() {
		conditions = append(conditions, ConditionModifierResponse{
			ID:              m.ID,
			Label:           m.Label,
			Category:        m.Category,
			PriceMultiplier: m.PriceMultiplier,
			TimeMultiplier:  m.TimeMultiplier,
			Domain:          string(m.Domain),
		})
	}
	access := make([]AccessModifierResponse, 0)
	for _, a := range c.AccessModifiers() {
		access = append(access, AccessModifierResponse{
			ID:              a.ID,
			Label:           a.Label,
			PriceMultiplier: a.PriceMultiplier,
			TimeMultiplier:  a.TimeMultiplier,
			Domain:          string(a.Domain),
		})
	}
	return CatalogResponse{
		WindowTypes:      types,
		PressureSurfaces: surfaces,
		Conditions:       conditions,
		AccessModifiers:  access,
	}
}

func fromWindowType(t entities.WindowTypeConfig) WindowTypeResponse {
	return WindowTypeResponse{
		ID:                 t.ID,
		Label:              t.Label,
		Category:           t.Category,
		BaseMinutesInside:  t.BaseMinutesInside,
		BaseMinutesOutside: t.BaseMinutesOutside,
		BasePrice:          t.BasePrice,
	}
}

func fromPressureSurface(s entities.PressureSurfaceConfig) PressureSurfaceResponse {
	return PressureSurfaceResponse{
		ID:            s.ID,
		Label:         s.Label,
		Category:      s.Category,
		MinutesPerSqm: s.MinutesPerSqm,
		BaseRate:      s.BaseRate,
	}
}
