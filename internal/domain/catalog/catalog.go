// Package catalog exposes the static reference tables (window types, pressure
// surfaces, condition and access modifiers) as id-keyed lookup maps.
//
// A Catalog is built once and treated as read-only; callers inject it into the
// pricing engine instead of reaching for package-level state. Lookup of an
// unknown id yields a neutral multiplier of 1.0 and never an error.
package catalog

import "github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/entities"

type Catalog struct {
	windowTypes      map[string]entities.WindowTypeConfig
	pressureSurfaces map[string]entities.PressureSurfaceConfig
	conditions       map[string]entities.ConditionModifier
	access           map[string]entities.AccessModifier

	// Multiplier sub-maps keyed by modifier id, used on the pricing path.
	conditionPrice map[string]float64
	conditionTime  map[string]float64
	accessPrice    map[string]float64
	accessTime     map[string]float64

	// Tables in catalog order, for listing endpoints.
	typeList      []entities.WindowTypeConfig
	surfaceList   []entities.PressureSurfaceConfig
	conditionList []entities.ConditionModifier
	accessList    []entities.AccessModifier
}

// New builds the catalog from the built-in reference tables.
func New() *Catalog {
	return FromTables(windowTypes, pressureSurfaces, conditions, accessModifiers)
}

// FromTables builds a catalog from explicit tables. Tests use it to price
// against controlled data.
func FromTables(
	types []entities.WindowTypeConfig,
	surfaces []entities.PressureSurfaceConfig,
	conds []entities.ConditionModifier,
	access []entities.AccessModifier,
) *Catalog {
	c := &Catalog{
		windowTypes:      make(map[string]entities.WindowTypeConfig, len(types)),
		pressureSurfaces: make(map[string]entities.PressureSurfaceConfig, len(surfaces)),
		conditions:       make(map[string]entities.ConditionModifier, len(conds)),
		access:           make(map[string]entities.AccessModifier, len(access)),
		conditionPrice:   make(map[string]float64, len(conds)),
		conditionTime:    make(map[string]float64, len(conds)),
		accessPrice:      make(map[string]float64, len(access)),
		accessTime:       make(map[string]float64, len(access)),
		typeList:         append([]entities.WindowTypeConfig(nil), types...),
		surfaceList:      append([]entities.PressureSurfaceConfig(nil), surfaces...),
		conditionList:    append([]entities.ConditionModifier(nil), conds...),
		accessList:       append([]entities.AccessModifier(nil), access...),
	}
	for _, t := range types {
		c.windowTypes[t.ID] = t
	}
	for _, s := range surfaces {
		c.pressureSurfaces[s.ID] = s
	}
	for _, m := range conds {
		c.conditions[m.ID] = m
		c.conditionPrice[m.ID] = m.PriceMultiplier
		c.conditionTime[m.ID] = m.TimeMultiplier
	}
	for _, a := range access {
		c.access[a.ID] = a
		c.accessPrice[a.ID] = a.PriceMultiplier
		c.accessTime[a.ID] = a.TimeMultiplier
	}
	return c
}

// WindowType resolves a window type by id.
func (c *Catalog) WindowType(id string) (entities.WindowTypeConfig, bool) {
	t, ok := c.windowTypes[id]
	return t, ok
}

// PressureSurface resolves a pressure surface by id.
func (c *Catalog) PressureSurface(id string) (entities.PressureSurfaceConfig, bool) {
	s, ok := c.pressureSurfaces[id]
	return s, ok
}

// ConditionPriceMultiplier returns the price multiplier for a condition id,
// or 1.0 when the id is unknown or empty.
func (c *Catalog) ConditionPriceMultiplier(id string) float64 {
	if m, ok := c.conditionPrice[id]; ok {
		return m
	}
	return 1.0
}

// ConditionTimeMultiplier returns the time multiplier for a condition id,
// or 1.0 when the id is unknown or empty.
func (c *Catalog) ConditionTimeMultiplier(id string) float64 {
	if m, ok := c.conditionTime[id]; ok {
		return m
	}
	return 1.0
}

// AccessPriceMultiplier returns the price multiplier for an access id,
// or 1.0 when the id is unknown or empty.
func (c *Catalog) AccessPriceMultiplier(id string) float64 {
	if m, ok := c.accessPrice[id]; ok {
		return m
	}
	return 1.0
}

// AccessTimeMultiplier returns the time multiplier for an access id,
// or 1.0 when the id is unknown or empty.
func (c *Catalog) AccessTimeMultiplier(id string) float64 {
	if m, ok := c.accessTime[id]; ok {
		return m
	}
	return 1.0
}

// WindowTypes returns the window type table in catalog order.
func (c *Catalog) WindowTypes() []entities.WindowTypeConfig {
	return append([]entities.WindowTypeConfig(nil), c.typeList...)
}

// PressureSurfaces returns the pressure surface table in catalog order.
func (c *Catalog) PressureSurfaces() []entities.PressureSurfaceConfig {
	return append([]entities.PressureSurfaceConfig(nil), c.surfaceList...)
}

// Conditions returns the condition modifier table in catalog order.
func (c *Catalog) Conditions() []entities.ConditionModifier {
	return append([]entities.ConditionModifier(nil), c.conditionList...)
}

// AccessModifiers returns the access modifier table in catalog order.
func (c *Catalog) AccessModifiers() []entities.AccessModifier {
	return append([]entities.AccessModifier(nil), c.accessList...)
}
