package ranking

// Weights control the importance of each ranking component. Their sum stays
// at or below 100 to leave room for bonuses.
type Weights struct {
	KeywordRelevance     float64
	Engagement           float64
	PriceCompetitiveness float64
	ConversionSignal     float64
}

// Bonuses are multipliers applied on top of the conversion base when the
// matching condition holds. Only one bonus applies per listing.
type Bonuses struct {
	Sold         float64
	HighInterest float64
}

// Config is the full scoring configuration. It is built once at startup and
// passed into the engine; nothing mutates it at runtime.
type Config struct {
	Weights Weights
	Bonuses Bonuses

	// CTR at or above which a listing counts as engaged
	CTRThreshold float64
	// CTR at or above which a listing counts as high interest
	HighInterestThreshold float64
}

const (
	defaultWeightKeywordRelevance     = 30
	defaultWeightEngagement           = 25
	defaultWeightPriceCompetitiveness = 25
	defaultWeightConversionSignal     = 15

	defaultBonusSold         = 0.10
	defaultBonusHighInterest = 0.08

	defaultCTRThreshold          = 0.05
	defaultHighInterestThreshold = 0.15

	// hard ceiling on the conversion component relative to its weight,
	// regardless of bonus configuration
	conversionCapFactor = 1.2

	// engagement credit granted when a listing has no views yet
	unmeasuredEngagementFactor = 0.3

	// price credit when a category carries no discriminating signal
	neutralPriceFactor = 0.5

	// keyword score at or above which the explanation notes strong relevance
	strongKeywordThreshold = 80
)

func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			KeywordRelevance:     defaultWeightKeywordRelevance,
			Engagement:           defaultWeightEngagement,
			PriceCompetitiveness: defaultWeightPriceCompetitiveness,
			ConversionSignal:     defaultWeightConversionSignal,
		},
		Bonuses: Bonuses{
			Sold:         defaultBonusSold,
			HighInterest: defaultBonusHighInterest,
		},
		CTRThreshold:          defaultCTRThreshold,
		HighInterestThreshold: defaultHighInterestThreshold,
	}
}

func (c Config) WeightSum() float64 {
	return c.Weights.KeywordRelevance +
		c.Weights.Engagement +
		c.Weights.PriceCompetitiveness +
		c.Weights.ConversionSignal
}

func (c Config) MaxBonus() float64 {
	if c.Bonuses.Sold > c.Bonuses.HighInterest {
		return c.Bonuses.Sold
	}
	return c.Bonuses.HighInterest
}

// MaxPossible is the theoretical score ceiling: the weight sum plus the
// conversion weight scaled by the single largest bonus. It is the fixed
// denominator used to normalize totals to 0-100.
func (c Config) MaxPossible() float64 {
	return c.WeightSum() + c.Weights.ConversionSignal*c.MaxBonus()
}

func (c Config) WeightMap() map[string]float64 {
	return map[string]float64{
		"keyword_relevance":     c.Weights.KeywordRelevance,
		"engagement":            c.Weights.Engagement,
		"price_competitiveness": c.Weights.PriceCompetitiveness,
		"conversion_signal":     c.Weights.ConversionSignal,
	}
}

func (c Config) BonusMap() map[string]float64 {
	return map[string]float64{
		"sold":          c.Bonuses.Sold,
		"high_interest": c.Bonuses.HighInterest,
	}
}
