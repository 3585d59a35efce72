package normalize

import "github.com/docstream/docstream/internal/entity"

// field weights for the heuristic score when the model omits its own
// confidence; vendor and total matter most, date breaks ties
const (
	weightVendor = 0.4
	weightTotal  = 0.3
	weightDate   = 0.3

	anomalyPenalty = 0.9
)

// scoreConfidence prefers the model's self-reported confidence when present,
// falls back to a presence heuristic otherwise, then discounts for every
// anomaly flag. Result is clamped to [0, 1].
func scoreConfidence(reported any, p *entity.ExtractionPayload, flags []string) float32 {
	var score float64
	if v, ok := reported.(float64); ok {
		score = v
	} else {
		if p.VendorName != nil {
			score += weightVendor
		}
		if p.TotalAmount != nil {
			score += weightTotal
		}
		if p.InvoiceDate != nil {
			score += weightDate
		}
	}
	for range flags {
		score *= anomalyPenalty
	}
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return float32(score)
}
