package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_HigherIsBetter(t *testing.T) {
	// Cap rate thresholds: >= 8% good, >= 6% average.
	assert.Equal(t, TierGood, Classify(0.09, 0.08, 0.06, true))
	assert.Equal(t, TierGood, Classify(0.08, 0.08, 0.06, true)) // boundary is inclusive
	assert.Equal(t, TierWarn, Classify(0.07, 0.08, 0.06, true))
	assert.Equal(t, TierWarn, Classify(0.06, 0.08, 0.06, true))
	assert.Equal(t, TierBad, Classify(0.059, 0.08, 0.06, true))
	assert.Equal(t, TierBad, Classify(0, 0.08, 0.06, true))
}

func TestClassify_LowerIsBetter(t *testing.T) {
	// GRM: <= 12 good, no middle tier.
	assert.Equal(t, TierGood, Classify(10, 12, math.NaN(), false))
	assert.Equal(t, TierGood, Classify(12, 12, math.NaN(), false))
	assert.Equal(t, TierBad, Classify(12.01, 12, math.NaN(), false))
}

func TestClassify_NaNWarnDisablesMiddleTier(t *testing.T) {
	// 1% rule: >= 1% pass, everything else fail.
	assert.Equal(t, TierGood, Classify(0.011, 0.01, math.NaN(), true))
	assert.Equal(t, TierBad, Classify(0.009, 0.01, math.NaN(), true))
	assert.Equal(t, TierBad, Classify(0.005, 0.01, math.NaN(), true))
}

func TestTierLabels_Label(t *testing.T) {
	labels := TierLabels{Good: "STRONG", Warn: "MARGINAL", Bad: "WEAK"}

	assert.Equal(t, "STRONG", labels.Label(TierGood))
	assert.Equal(t, "MARGINAL", labels.Label(TierWarn))
	assert.Equal(t, "WEAK", labels.Label(TierBad))
}

func TestTierLabels_TwoTierVocabulary(t *testing.T) {
	labels := TierLabels{Good: "PASS", Bad: "FAIL"}

	assert.Equal(t, "PASS", labels.Label(TierGood))
	assert.Equal(t, "FAIL", labels.Label(TierBad))
	// TierWarn is unreachable for two-tier metrics, but Label stays total.
	assert.Equal(t, "", labels.Label(TierWarn))
}
