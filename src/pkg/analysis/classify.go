package analysis

import "math"

/*
Tier is the three-step status ladder a metric lands on after classification.
*/
type Tier int

const (
	TierGood Tier = iota
	TierWarn
	TierBad
)

/*
Classify places a value on the tier ladder against one or two thresholds.

higherIsBetter selects the comparison direction. Passing math.NaN() as warn
disables the middle tier, leaving only TierGood and TierBad reachable.
The function is total: any float input lands on exactly one tier.
*/
func Classify(value float64, good float64, warn float64, higherIsBetter bool) Tier {
	hasWarn := !math.IsNaN(warn)

	if higherIsBetter {
		if value >= good {
			return TierGood
		}
		if hasWarn && value >= warn {
			return TierWarn
		}
		return TierBad
	}

	if value <= good {
		return TierGood
	}
	if hasWarn && value <= warn {
		return TierWarn
	}
	return TierBad
}

/*
TierLabels holds the display word for each tier of one metric row.

Metrics use different vocabularies (GOOD/AVERAGE/LOW, STRONG/MARGINAL/WEAK,
PASS/FAIL), so the labels travel with the row instead of living in Classify.
*/
type TierLabels struct {
	Good string
	Warn string
	Bad  string
}

/*
Label returns the display word for the given tier.
*/
func (labels TierLabels) Label(tier Tier) string {
	switch tier {
	case TierGood:
		return labels.Good
	case TierWarn:
		return labels.Warn
	}
	return labels.Bad
}
