package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-analyzer/src/pkg/analysis"
)

func testTheme() Theme {
	return ThemeFromConfig(DefaultValueConfig())
}

func testInput() analysis.Input {
	return analysis.Input{
		"userName":  "Jordan Ellis",
		"userEmail": "jordan@example.com",

		"propertyAddress": "123 Main St",
		"propertyCity":    "Boca Raton",
		"propertyZip":     "33432",
		"propertyType":    "Duplex",
		"numUnits":        float64(2),
		"bedrooms":        float64(4),
		"bathrooms":       float64(3),
		"sqft":            float64(2450),
		"yearBuilt":       float64(1998),
		"lotSize":         0.25,

		"purchasePrice":   float64(250000),
		"downPayment":     float64(62500),
		"closingCosts":    float64(7500),
		"rehabCosts":      float64(15000),
		"loanAmount":      float64(187500),
		"totalCashNeeded": float64(85000),

		"grossRentMonthly":       float64(2500),
		"vacancyRate":            0.05,
		"otherIncomeMonthly":     float64(100),
		"effectiveIncomeMonthly": float64(2475),
		"totalExpensesMonthly":   float64(900),
		"noiMonthly":             float64(1575),

		"capRate":        0.085,
		"cashOnCash":     0.12,
		"dscr":           1.35,
		"grm":            10.5,
		"onePercentRule": 0.011,

		"monthlyCashFlow": float64(450),
		"annualCashFlow":  float64(5400),

		"rule1Pass":            true,
		"rule2Pass":            false,
		"rule50Pass":           false,
		"rule70Pass":           true,
		"cashFlowPositivePass": true,

		"verdict": "STRONG BUY",

		"interestRate":       0.0675,
		"loanTermYears":      float64(30),
		"downPaymentPercent": 0.25,
		"monthlyPayment":     float64(1216),
		"annualDebtService":  float64(14592),
	}
}

func TestBuildSections_FixedSequence(t *testing.T) {
	theme := testTheme()
	sections := BuildSections(testInput(), theme, time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC))

	require.Len(t, sections, 9)

	kinds := make([]SectionKind, 0, len(sections))
	for _, section := range sections {
		kinds = append(kinds, section.Kind)
	}
	assert.Equal(t, []SectionKind{
		KindParagraphs, // header
		KindKeyValue,   // property summary
		KindLedger,     // financial snapshot
		KindBanner,     // cash flow
		KindGrid,       // key metrics
		KindGrid,       // rules check
		KindBanner,     // verdict
		KindKeyValue,   // financing
		KindParagraphs, // footer
	}, kinds)
}

func TestBuildSections_Header(t *testing.T) {
	theme := testTheme()
	sections := BuildSections(testInput(), theme, time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC))

	header := sections[0]
	require.Len(t, header.Paragraphs, 5)
	assert.Equal(t, theme.BrandName, header.Paragraphs[0].Text)
	assert.Equal(t, theme.BrandTagline, header.Paragraphs[1].Text)
	assert.Equal(t, theme.ReportTitle, header.Paragraphs[2].Text)
	assert.Equal(t, "Prepared for: Jordan Ellis", header.Paragraphs[3].Text)
	assert.Equal(t, "Date: March 15, 2026", header.Paragraphs[4].Text)
}

func TestBuildSections_PropertySummary(t *testing.T) {
	sections := BuildSections(testInput(), testTheme(), time.Now())

	summary := sections[1]
	assert.Equal(t, "PROPERTY SUMMARY", summary.Title)
	require.Len(t, summary.KV, 7)
	assert.Equal(t, "123 Main St, Boca Raton, FL 33432", summary.KV[0].Value)
	assert.Equal(t, "2", summary.KV[2].Value)
	assert.Equal(t, "4 / 3", summary.KV[3].Value)
	assert.Equal(t, "2,450 SF", summary.KV[4].Value)
	assert.Equal(t, "0.25 acres", summary.KV[6].Value)
}

func TestBuildSections_FinancialSnapshotSigns(t *testing.T) {
	sections := BuildSections(testInput(), testTheme(), time.Now())

	snapshot := sections[2]
	require.Len(t, snapshot.Ledger, 7)

	// 2500 * 0.05 vacancy shows as an outflow.
	assert.Equal(t, "Vacancy Loss:", snapshot.Ledger[1].RightLabel)
	assert.Equal(t, "-$125", snapshot.Ledger[1].RightValue)

	assert.Equal(t, "Operating Expenses:", snapshot.Ledger[4].RightLabel)
	assert.Equal(t, "-$900", snapshot.Ledger[4].RightValue)

	assert.Equal(t, "Mortgage Payment:", snapshot.Ledger[6].RightLabel)
	assert.Equal(t, "-$1,216", snapshot.Ledger[6].RightValue)

	assert.Equal(t, "Purchase Price:", snapshot.Ledger[0].LeftLabel)
	assert.Equal(t, "$250,000", snapshot.Ledger[0].LeftValue)
}

func TestBuildSections_CashFlowTint(t *testing.T) {
	theme := testTheme()

	positive := BuildSections(testInput(), theme, time.Now())[3]
	require.Len(t, positive.Banner, 2)
	assert.Equal(t, "$450", positive.Banner[0].Value)
	assert.Equal(t, theme.Success, positive.Banner[0].ValueColor)
	assert.Equal(t, theme.Success, positive.Banner[1].ValueColor)

	input := testInput()
	input["monthlyCashFlow"] = float64(-200)
	input["annualCashFlow"] = float64(0)
	negative := BuildSections(input, theme, time.Now())[3]
	assert.Equal(t, "-$200", negative.Banner[0].Value)
	assert.Equal(t, theme.Danger, negative.Banner[0].ValueColor)
	// Zero cash flow is not positive.
	assert.Equal(t, theme.Danger, negative.Banner[1].ValueColor)
}

func TestBuildSections_KeyMetricsStatuses(t *testing.T) {
	theme := testTheme()
	metrics := BuildSections(testInput(), theme, time.Now())[4]

	require.NotNil(t, metrics.Grid)
	require.Len(t, metrics.Grid.Rows, 5)

	statusAt := func(row int) GridCell { return metrics.Grid.Rows[row][3] }

	assert.Equal(t, "GOOD", statusAt(0).Text)   // cap rate 8.5%
	assert.Equal(t, "GOOD", statusAt(1).Text)   // cash-on-cash 12%
	assert.Equal(t, "STRONG", statusAt(2).Text) // dscr 1.35
	assert.Equal(t, "GOOD", statusAt(3).Text)   // grm 10.5
	assert.Equal(t, "PASS", statusAt(4).Text)   // 1% rule 1.1%

	for row := 0; row < 5; row += 1 {
		require.NotNil(t, statusAt(row).Color)
		assert.Equal(t, theme.Success, *statusAt(row).Color)
	}

	assert.Equal(t, "8.50%", metrics.Grid.Rows[0][1].Text)
	assert.Equal(t, "1.35", metrics.Grid.Rows[2][1].Text)
}

func TestBuildSections_KeyMetricsMiddleAndBottomTiers(t *testing.T) {
	theme := testTheme()
	input := testInput()
	input["capRate"] = 0.07         // average
	input["cashOnCash"] = 0.04      // low
	input["dscr"] = 1.1             // marginal
	input["grm"] = 14.0             // high
	input["onePercentRule"] = 0.008 // fail

	metrics := BuildSections(input, theme, time.Now())[4]
	require.NotNil(t, metrics.Grid)

	assert.Equal(t, "AVERAGE", metrics.Grid.Rows[0][3].Text)
	assert.Equal(t, theme.Warning, *metrics.Grid.Rows[0][3].Color)
	assert.Equal(t, "LOW", metrics.Grid.Rows[1][3].Text)
	assert.Equal(t, theme.Danger, *metrics.Grid.Rows[1][3].Color)
	assert.Equal(t, "MARGINAL", metrics.Grid.Rows[2][3].Text)
	assert.Equal(t, "HIGH", metrics.Grid.Rows[3][3].Text)
	assert.Equal(t, theme.Danger, *metrics.Grid.Rows[3][3].Color)
	assert.Equal(t, "FAIL", metrics.Grid.Rows[4][3].Text)
}

func TestBuildSections_RulesCheck(t *testing.T) {
	theme := testTheme()
	rules := BuildSections(testInput(), theme, time.Now())[5]

	require.NotNil(t, rules.Grid)
	require.Len(t, rules.Grid.Rows, 5)

	resultAt := func(row int) GridCell { return rules.Grid.Rows[row][1] }

	assert.Equal(t, "PASS", resultAt(0).Text)
	assert.Equal(t, theme.Success, *resultAt(0).Color)

	assert.Equal(t, "FAIL", resultAt(1).Text)
	assert.Equal(t, theme.Danger, *resultAt(1).Color)

	// The 50% rule fails soft: REVIEW on the warning color, not FAIL.
	assert.Equal(t, "REVIEW", resultAt(2).Text)
	assert.Equal(t, theme.Warning, *resultAt(2).Color)

	assert.Equal(t, "PASS", resultAt(3).Text)
	assert.Equal(t, "YES", resultAt(4).Text)
	assert.Equal(t, theme.Success, *resultAt(4).Color)
}

func TestBuildSections_Verdict(t *testing.T) {
	theme := testTheme()
	verdict := BuildSections(testInput(), theme, time.Now())[6]

	require.Len(t, verdict.Banner, 1)
	assert.Equal(t, "DEAL VERDICT", verdict.Banner[0].Label)
	assert.Equal(t, "STRONG BUY", verdict.Banner[0].Value)
	assert.Equal(t, theme.Success, verdict.Banner[0].ValueColor)

	// Absent verdict falls back to REVIEW.
	input := testInput()
	delete(input, "verdict")
	fallback := BuildSections(input, theme, time.Now())[6]
	assert.Equal(t, "REVIEW", fallback.Banner[0].Value)
	assert.Equal(t, theme.Warning, fallback.Banner[0].ValueColor)
}

func TestVerdictColor(t *testing.T) {
	theme := testTheme()

	assert.Equal(t, theme.Success, VerdictColor("STRONG BUY", theme))
	assert.Equal(t, theme.Accent, VerdictColor("CONSIDER", theme))
	assert.Equal(t, theme.Warning, VerdictColor("REVIEW", theme))
	assert.Equal(t, theme.Danger, VerdictColor("PASS (AVOID)", theme))
	assert.Equal(t, theme.Danger, VerdictColor("anything else", theme))
}

func TestBuildSections_Financing(t *testing.T) {
	financing := BuildSections(testInput(), testTheme(), time.Now())[7]

	assert.Equal(t, "FINANCING DETAILS", financing.Title)
	assert.Equal(t, "R", financing.KVValueAlign)
	require.Len(t, financing.KV, 6)

	assert.Equal(t, "6.75%", financing.KV[0].Value)
	assert.Equal(t, "30 years", financing.KV[1].Value)
	assert.Equal(t, "25%", financing.KV[2].Value)
	assert.Equal(t, "75%", financing.KV[3].Value)
	assert.Equal(t, "$1,216", financing.KV[4].Value)
	assert.Equal(t, "$14,592", financing.KV[5].Value)
}

func TestBuildSections_FinancingLTVClamped(t *testing.T) {
	input := testInput()
	input["downPaymentPercent"] = 1.4 // over-collateralized intake typo

	financing := BuildSections(input, testTheme(), time.Now())[7]
	assert.Equal(t, "0%", financing.KV[3].Value)
}

func TestBuildSections_Footer(t *testing.T) {
	theme := testTheme()
	footer := BuildSections(testInput(), theme, time.Now())[8]

	require.GreaterOrEqual(t, len(footer.Paragraphs), 4)
	assert.True(t, footer.Paragraphs[0].Divider)
	assert.Equal(t, theme.FooterLines[0], footer.Paragraphs[1].Text)

	last := footer.Paragraphs[len(footer.Paragraphs)-1]
	assert.Equal(t, theme.Disclaimer, last.Text)
	assert.True(t, last.Italic)
}
