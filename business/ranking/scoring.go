package ranking

import (
	"math"
)

// Engine computes explainable ranking scores from a fixed configuration.
// It is stateless apart from the config; concurrent use is safe.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

func (e *Engine) Config() Config {
	return e.cfg
}

// KeywordRelevance maps the 0-100 keyword score onto its weight allocation.
func (e *Engine) KeywordRelevance(keywordScore float64) float64 {
	w := e.cfg.Weights.KeywordRelevance
	normalized := (keywordScore / 100.0) * w
	return clamp(normalized, 0, w)
}

// Engagement scores click-through rate in tiers:
// no views yet gets partial neutral credit, CTR at or above the
// high-interest threshold gets full credit, CTR between the thresholds gets
// proportional credit, and CTR below the engaged threshold gets a heavily
// discounted sliver. Threshold values belong to the higher tier.
func (e *Engine) Engagement(views, clicks int64) float64 {
	w := e.cfg.Weights.Engagement

	if views == 0 {
		// no views means no engagement data; don't punish new listings
		return w * unmeasuredEngagementFactor
	}

	ctr := float64(clicks) / float64(views)

	switch {
	case ctr >= e.cfg.HighInterestThreshold:
		return w
	case ctr >= e.cfg.CTRThreshold:
		return w * (ctr / e.cfg.HighInterestThreshold)
	default:
		return w * (ctr / e.cfg.CTRThreshold) * 0.5
	}
}

// PriceCompetitiveness ranks the price against the category's unsold price
// range: cheapest gets full credit, most expensive gets zero. Categories
// without a usable range yield neutral credit.
func (e *Engine) PriceCompetitiveness(price float64, snapshot CategoryPriceSnapshot) float64 {
	w := e.cfg.Weights.PriceCompetitiveness

	if !snapshot.Comparable {
		return w * neutralPriceFactor
	}

	if snapshot.MinPrice == snapshot.MaxPrice {
		// all prices equal in category; no discriminating signal
		return w * neutralPriceFactor
	}

	percentile := 1.0 - (price-snapshot.MinPrice)/(snapshot.MaxPrice-snapshot.MinPrice)
	percentile = clamp(percentile, 0, 1)

	return w * percentile
}

// ConversionSignal starts from the conversion weight and applies at most one
// bonus: sold proof wins over high interest. The result never exceeds
// 120% of the weight.
func (e *Engine) ConversionSignal(isSold bool, clicks, views int64) float64 {
	w := e.cfg.Weights.ConversionSignal
	score := w

	if isSold {
		score *= 1 + e.cfg.Bonuses.Sold
	} else if views > 0 {
		ctr := float64(clicks) / float64(views)
		if ctr >= e.cfg.HighInterestThreshold {
			score *= 1 + e.cfg.Bonuses.HighInterest
		}
	}

	return math.Min(score, w*conversionCapFactor)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
