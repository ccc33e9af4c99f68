package pricing

import "math"

const (
	centsPerDollar = 100
	minutesPerHour = 60

	// GSTRate is the flat Australian goods-and-services tax rate.
	GSTRate = 0.10
)

// sanitize clamps NaN and infinities to 0 so that no monetary or time result
// can surface a non-finite value.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// toCents converts dollars to whole cents, rounding half away from zero.
func toCents(dollars float64) int64 {
	return int64(math.Round(sanitize(dollars) * centsPerDollar))
}

// fromCents converts whole cents back to dollars.
func fromCents(cents int64) float64 {
	return float64(cents) / centsPerDollar
}

// RoundMoney rounds a dollar amount to 2 decimal places via integer cents.
func RoundMoney(dollars float64) float64 {
	return fromCents(toCents(dollars))
}

// MinutesToHours converts minutes to fractional hours.
func MinutesToHours(minutes float64) float64 {
	return sanitize(minutes) / minutesPerHour
}

// GST computes the tax on a charged subtotal and the GST-inclusive total,
// all rounded to the cent. Negative or non-finite subtotals yield zeros.
func GST(subtotal float64) (gst, total float64) {
	subtotal = sanitize(subtotal)
	if subtotal < 0 {
		return 0, 0
	}
	subtotalCents := toCents(subtotal)
	gstCents := int64(math.Round(float64(subtotalCents) * GSTRate))
	return fromCents(gstCents), fromCents(subtotalCents + gstCents)
}

// nonNegative coerces negative or non-finite quantities to 0 before
// calculation.
func nonNegative(v float64) float64 {
	v = sanitize(v)
	if v < 0 {
		return 0
	}
	return v
}

// clampCount restricts a sub-population count to [0, limit].
func clampCount(n, limit int) int {
	if n < 0 {
		return 0
	}
	if n > limit {
		return limit
	}
	return n
}
