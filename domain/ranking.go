package domain

// ComponentScores is the per-component breakdown of a ranking score, each
// contribution rounded to 2 decimals.
type ComponentScores struct {
	KeywordRelevance     float64 `json:"keyword_relevance"`
	Engagement           float64 `json:"engagement"`
	PriceCompetitiveness float64 `json:"price_competitiveness"`
	ConversionSignal     float64 `json:"conversion_signal"`
}

// ScoreResult is the outcome of ranking one listing: a normalized 0-100
// total, the component breakdown, and a human-readable explanation. It is
// computed on demand and never persisted.
type ScoreResult struct {
	TotalScore  float64         `json:"total_score"`
	Scores      ComponentScores `json:"scores"`
	Explanation string          `json:"explanation"`
}

// RankedListing is one recommendation entry: the listing fields, its CTR
// (rounded to 4 decimals), and the score result.
type RankedListing struct {
	ID           uint64      `json:"id"`
	DomainName   string      `json:"domain_name"`
	Category     string      `json:"category"`
	Price        float64     `json:"price"`
	KeywordScore float64     `json:"keyword_score"`
	Views        int64       `json:"views"`
	Clicks       int64       `json:"clicks"`
	CTR          float64     `json:"ctr"`
	Ranking      ScoreResult `json:"ranking"`
}

// RecommendationQuery holds the candidate filters for one recommendation
// request. Nil fields are ignored; bounds are inclusive.
type RecommendationQuery struct {
	Limit    int
	PriceMin *float64
	PriceMax *float64
	Category *string
}

// ScoringExplanation is the read-only view of the scoring configuration
// echoed alongside recommendation responses so callers can see why scores
// look the way they do.
type ScoringExplanation struct {
	Weights           map[string]float64 `json:"weights"`
	Bonuses           map[string]float64 `json:"bonuses"`
	ScoringComponents []string           `json:"scoring_components"`
}
