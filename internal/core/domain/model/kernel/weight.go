package kernel

import (
	"math"
	"strconv"
	"strings"
)

// PoundsPerKilogram is the conversion factor used by tariff and payment rules.
const PoundsPerKilogram = 2.2

// Weight is a parcel weight in kilograms. A Weight can be unknown when it was
// missing or could not be parsed; rules that depend on weight treat an unknown
// weight as "no value" instead of failing.
type Weight struct {
	kilograms float64
	known     bool
}

// NewWeight wraps a weight in kilograms. NaN and infinite values produce an unknown weight.
func NewWeight(kilograms float64) Weight {
	if math.IsNaN(kilograms) || math.IsInf(kilograms, 0) {
		return UnknownWeight()
	}
	return Weight{kilograms: kilograms, known: true}
}

// ParseWeight reads a decimal weight in kilograms, accepting a comma as decimal
// separator. Empty or non-numeric input yields an unknown weight.
func ParseWeight(raw string) Weight {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if raw == "" {
		return UnknownWeight()
	}
	kg, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return UnknownWeight()
	}
	return NewWeight(kg)
}

// UnknownWeight returns the weight used for missing input.
func UnknownWeight() Weight {
	return Weight{}
}

// IsKnown reports whether the weight carries a numeric value.
func (w Weight) IsKnown() bool {
	return w.known
}

// Kilograms returns the weight in kilograms and whether it is known.
func (w Weight) Kilograms() (float64, bool) {
	return w.kilograms, w.known
}

// Pounds returns the weight converted with PoundsPerKilogram and whether it is known.
func (w Weight) Pounds() (float64, bool) {
	return w.kilograms * PoundsPerKilogram, w.known
}

func (w Weight) String() string {
	if !w.known {
		return "unknown"
	}
	return strconv.FormatFloat(w.kilograms, 'f', -1, 64) + "kg"
}
