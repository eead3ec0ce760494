package pricing

import "strings"

const (
	baseFee = 49

	// DefaultMinPrice and DefaultMaxPrice are the deployed floor/ceiling
	// pair. Both are overridable through config; earlier deployments ran a
	// lower floor.
	DefaultMinPrice = 199
	DefaultMaxPrice = 1499
)

// Engine maps (distance, weight, risk tier) to a clamped quote. It is a pure
// function of its inputs: no state, no side effects, same price for the same
// request every time.
type Engine struct {
	MinPrice int64
	MaxPrice int64
}

func NewEngine(minPrice, maxPrice int64) *Engine {
	return &Engine{MinPrice: minPrice, MaxPrice: maxPrice}
}

func (e *Engine) Quote(distanceKm, weightKg float64, itemType string) int64 {
	total := int64(baseFee) + distanceFee(distanceKm) + weightFee(weightKg) + riskFee(itemType)

	if total < e.MinPrice {
		return e.MinPrice
	}
	if total > e.MaxPrice {
		return e.MaxPrice
	}
	return total
}

func distanceFee(distanceKm float64) int64 {
	switch {
	case distanceKm <= 200:
		return 40
	case distanceKm <= 500:
		return 80
	case distanceKm <= 1000:
		return 140
	case distanceKm <= 1500:
		return 200
	default:
		return 260
	}
}

func weightFee(weightKg float64) int64 {
	switch {
	case weightKg <= 1:
		return 0
	case weightKg <= 5:
		return 75
	case weightKg <= 10:
		return 200
	default:
		return 400
	}
}

// riskFee is the handling surcharge per item category. Unrecognized
// categories carry no surcharge.
func riskFee(itemType string) int64 {
	switch strings.ToLower(itemType) {
	case "documents":
		return 40
	case "fragile":
		return 150
	case "electronics":
		return 200
	default:
		return 0
	}
}
