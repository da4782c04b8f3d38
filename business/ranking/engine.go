package ranking

import (
	"fmt"
	"math"
	"strings"

	"dmars/domain"
)

// Rank computes the full score result for one listing against its category
// price snapshot: the four component scores, the total normalized to 0-100
// against the fixed theoretical maximum, and the explanation string.
func (e *Engine) Rank(listing domain.Listing, snapshot CategoryPriceSnapshot) domain.ScoreResult {
	keyword := e.KeywordRelevance(listing.KeywordScore)
	engagement := e.Engagement(listing.Views, listing.Clicks)
	price := e.PriceCompetitiveness(listing.Price, snapshot)
	conversion := e.ConversionSignal(listing.IsSold, listing.Clicks, listing.Views)

	total := keyword + engagement + price + conversion
	normalized := math.Min(100, (total/e.cfg.MaxPossible())*100)

	return domain.ScoreResult{
		TotalScore: round2(normalized),
		Scores: domain.ComponentScores{
			KeywordRelevance:     round2(keyword),
			Engagement:           round2(engagement),
			PriceCompetitiveness: round2(price),
			ConversionSignal:     round2(conversion),
		},
		Explanation: e.explain(listing),
	}
}

// explain assembles the user-facing summary. Part ordering and phrasing are
// an API contract: keyword relevance first, then engagement, then sold
// proof, joined with "; ".
func (e *Engine) explain(listing domain.Listing) string {
	ctr := listing.CTR()
	parts := make([]string, 0, 3)

	if listing.KeywordScore >= strongKeywordThreshold {
		parts = append(parts, fmt.Sprintf("Strong keyword relevance (%g/100)", listing.KeywordScore))
	}

	if ctr >= e.cfg.HighInterestThreshold {
		parts = append(parts, fmt.Sprintf("High engagement (%.1f%% CTR)", ctr*100))
	} else if ctr >= e.cfg.CTRThreshold {
		parts = append(parts, fmt.Sprintf("Moderate engagement (%.1f%% CTR)", ctr*100))
	}

	if listing.IsSold {
		parts = append(parts, "Proven conversion (sold)")
	}

	if len(parts) == 0 {
		return "Baseline domain"
	}

	return strings.Join(parts, "; ")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
