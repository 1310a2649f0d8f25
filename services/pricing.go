package services

import (
	"math"
)

// AdvanceRate is the default fraction of the total collected up front.
const AdvanceRate = 0.30

// ComputeSubtotal prices one configured service line. Pure function: same
// inputs always give the same subtotal.
//
// Dropdown selections add the delta of the chosen label; an unknown or
// missing label adds nothing. Checkbox selections add their delta only when
// checked. The sum of base price and additions is scaled by quantity.
func ComputeSubtotal(basePrice float64, options []OptionSpec, selections map[string]interface{}, quantity int) (float64, error) {
	if quantity < 1 {
		return 0, NewValidationError("quantity", "must be at least 1")
	}

	additions := 0.0
	for _, opt := range options {
		switch mod := opt.Modifier.(type) {
		case DropdownModifier:
			if choice, ok := selections[opt.Name].(string); ok {
				additions += mod.Choices[choice]
			}
		case CheckboxModifier:
			if checked, ok := selections[opt.Name].(bool); ok && checked {
				additions += mod.PriceIfTrue
			}
		}
	}

	return (basePrice + additions) * float64(quantity), nil
}

// DefaultAdvance is the suggested advance payment: 30% of the total,
// ceiling-rounded. A display default only; the user may override it.
func DefaultAdvance(total float64) float64 {
	return math.Ceil(total * AdvanceRate)
}
