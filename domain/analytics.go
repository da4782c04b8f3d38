package domain

// Analytics result types. All values are computed fresh from SQL
// aggregations; no derived metric is ever stored.

type GlobalKPIs struct {
	TotalDomains   int64   `json:"total_domains"`
	SoldDomains    int64   `json:"sold_domains"`
	ConversionRate float64 `json:"conversion_rate"`
	AveragePrice   float64 `json:"average_price"`
}

type CategoryStats struct {
	Category       string  `json:"category"`
	Count          int64   `json:"count"`
	SoldCount      int64   `json:"sold_count"`
	ConversionRate float64 `json:"conversion_rate"`
	AveragePrice   float64 `json:"average_price"`
}

type AnalyticsSummary struct {
	Global     GlobalKPIs      `json:"global"`
	Categories []CategoryStats `json:"categories"`
}

type HighInterestListing struct {
	ID           uint64  `json:"id"`
	DomainName   string  `json:"domain_name"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	Views        int64   `json:"views"`
	Clicks       int64   `json:"clicks"`
	KeywordScore float64 `json:"keyword_score"`
}

type PriceBandStats struct {
	PriceBand     string  `json:"price_band"`
	Count         int64   `json:"count"`
	AveragePrice  float64 `json:"average_price"`
	AverageViews  float64 `json:"average_views"`
	AverageClicks float64 `json:"average_clicks"`
}

type DemandIndicators struct {
	HighInterestDomains      []HighInterestListing `json:"high_interest_domains"`
	PriceEngagement          []PriceBandStats      `json:"price_engagement"`
	BenchmarkAvgClicksUnsold float64               `json:"benchmark_avg_clicks_unsold"`
}
