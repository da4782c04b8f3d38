package ranking

// CategoryPriceSnapshot carries the min and max price among unsold listings
// in one category for the duration of a single recommendation request.
// Comparable reports whether the lookup produced usable bounds; a failed or
// empty lookup leaves it false and the price scorer falls back to neutral
// credit instead of propagating the fault.
type CategoryPriceSnapshot struct {
	MinPrice   float64
	MaxPrice   float64
	Comparable bool
}

func NewCategoryPriceSnapshot(prices []float64) CategoryPriceSnapshot {
	if len(prices) == 0 {
		return CategoryPriceSnapshot{}
	}

	minPrice, maxPrice := prices[0], prices[0]
	for _, p := range prices[1:] {
		if p < minPrice {
			minPrice = p
		}
		if p > maxPrice {
			maxPrice = p
		}
	}

	return CategoryPriceSnapshot{
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		Comparable: true,
	}
}
