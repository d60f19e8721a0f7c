package report

import (
	"fmt"
	"math"
	"time"

	"property-analyzer/src/pkg/analysis"
	"property-analyzer/src/pkg/util"
)

/*
SectionKind selects how the renderer lays a section out.
*/
type SectionKind int

const (
	// KindParagraphs renders free-standing styled lines (header, footer).
	KindParagraphs SectionKind = iota
	// KindKeyValue renders a two-column bold-label table.
	KindKeyValue
	// KindLedger renders a four-column label/value pair table.
	KindLedger
	// KindBanner renders emphasized rows on a navy background.
	KindBanner
	// KindGrid renders a table with a header row and per-cell styling.
	KindGrid
)

/*
Paragraph is one styled line in a KindParagraphs section.
*/
type Paragraph struct {
	Text       string
	Size       float64
	Bold       bool
	Italic     bool
	Color      RGB
	SpaceAfter float64
	// Divider draws a horizontal rule instead of text.
	Divider bool
}

/*
KVRow is one row of a KindKeyValue section.
*/
type KVRow struct {
	Label string
	Value string
}

/*
LedgerRow is one row of the four-column financial snapshot.
*/
type LedgerRow struct {
	LeftLabel  string
	LeftValue  string
	RightLabel string
	RightValue string
}

/*
BannerRow is one emphasized row of a navy banner section.

ValueColor is decided by the builder (sign or verdict tint); the renderer
draws exactly that color.
*/
type BannerRow struct {
	Label      string
	Value      string
	ValueColor RGB
	ValueSize  float64
}

/*
GridCell is one table cell with its styling already decided.

A nil Color means the section's default text color.
*/
type GridCell struct {
	Text  string
	Color *RGB
	Bold  bool
}

/*
Grid is the body of a KindGrid section.
*/
type Grid struct {
	Header []string
	Widths []float64
	// Aligns holds one fpdf alignment letter per column ("L", "C", "R").
	Aligns []string
	Rows   [][]GridCell
}

/*
Section is one ordered unit of the report. Exactly one of the body fields is
populated, matching Kind.
*/
type Section struct {
	Kind         SectionKind
	Title        string
	Paragraphs   []Paragraph
	KV           []KVRow
	KVWidths     [2]float64
	KVValueAlign string
	Ledger       []LedgerRow
	Banner       []BannerRow
	Grid         *Grid
}

/*
BuildSections assembles the full fixed section sequence for one report.

The order is not configurable: header, property summary, financial snapshot,
cash-flow highlight, key metrics, rules check, verdict, financing details,
footer. All classification and tinting happens here so the renderer never
revisits a constructed row.
*/
func BuildSections(input analysis.Input, theme Theme, generatedAt time.Time) []Section {
	sections := make([]Section, 0, 9)

	sections = append(sections, buildHeaderSection(input, theme, generatedAt))
	sections = append(sections, buildPropertySummarySection(input))
	sections = append(sections, buildFinancialSnapshotSection(input))
	sections = append(sections, buildCashFlowSection(input, theme))
	sections = append(sections, buildKeyMetricsSection(input, theme))
	sections = append(sections, buildRulesCheckSection(input, theme))
	sections = append(sections, buildVerdictSection(input, theme))
	sections = append(sections, buildFinancingSection(input))
	sections = append(sections, buildFooterSection(theme))

	return sections
}

func buildHeaderSection(input analysis.Input, theme Theme, generatedAt time.Time) Section {
	preparedFor := fmt.Sprintf("Prepared for: %s", input.Str("userName"))
	reportDate := fmt.Sprintf("Date: %s", generatedAt.Format("January 02, 2006"))

	return Section{
		Kind: KindParagraphs,
		Paragraphs: []Paragraph{
			{Text: theme.BrandName, Size: 24, Bold: true, Color: theme.Navy, SpaceAfter: 6},
			{Text: theme.BrandTagline, Size: 12, Color: theme.DarkGray, SpaceAfter: 30},
			{Text: theme.ReportTitle, Size: 20, Bold: true, Color: theme.Accent, SpaceAfter: 10},
			{Text: preparedFor, Size: 10, Color: theme.DarkGray, SpaceAfter: 2},
			{Text: reportDate, Size: 10, Color: theme.DarkGray, SpaceAfter: 30},
		},
	}
}

func buildPropertySummarySection(input analysis.Input) Section {
	address := fmt.Sprintf(
		"%s, %s, %s %s",
		input.Str("propertyAddress"), input.Str("propertyCity"),
		input.Str("propertyState"), input.Str("propertyZip"),
	)

	sqft := int64(math.Round(input.Num("sqft")))

	return Section{
		Kind:     KindKeyValue,
		Title:    "PROPERTY SUMMARY",
		KVWidths: [2]float64{144, 324},
		KV: []KVRow{
			{Label: "Address:", Value: address},
			{Label: "Property Type:", Value: input.Str("propertyType")},
			{Label: "Units:", Value: input.Str("numUnits")},
			{Label: "Bedrooms / Bathrooms:", Value: fmt.Sprintf("%s / %s", input.Str("bedrooms"), input.Str("bathrooms"))},
			{Label: "Square Footage:", Value: fmt.Sprintf("%s SF", analysis.FormatIntHuman(sqft))},
			{Label: "Year Built:", Value: input.Str("yearBuilt")},
			{Label: "Lot Size:", Value: fmt.Sprintf("%s acres", input.Str("lotSize"))},
		},
	}
}

func buildFinancialSnapshotSection(input analysis.Input) Section {
	vacancyLoss := input.Num("grossRentMonthly") * input.Num("vacancyRate") * -1

	return Section{
		Kind:  KindLedger,
		Title: "FINANCIAL SNAPSHOT",
		Ledger: []LedgerRow{
			{
				LeftLabel: "Purchase Price:", LeftValue: analysis.FormatCurrency(input.Num("purchasePrice")),
				RightLabel: "Monthly Rent:", RightValue: analysis.FormatCurrency(input.Num("grossRentMonthly")),
			},
			{
				LeftLabel: "Down Payment:", LeftValue: analysis.FormatCurrency(input.Num("downPayment")),
				RightLabel: "Vacancy Loss:", RightValue: analysis.FormatCurrency(vacancyLoss),
			},
			{
				LeftLabel: "Closing Costs:", LeftValue: analysis.FormatCurrency(input.Num("closingCosts")),
				RightLabel: "Other Income:", RightValue: analysis.FormatCurrency(input.Num("otherIncomeMonthly")),
			},
			{
				LeftLabel: "Rehab Costs:", LeftValue: analysis.FormatCurrency(input.Num("rehabCosts")),
				RightLabel: "Effective Income:", RightValue: analysis.FormatCurrency(input.Num("effectiveIncomeMonthly")),
			},
			{
				LeftLabel: "Loan Amount:", LeftValue: analysis.FormatCurrency(input.Num("loanAmount")),
				RightLabel: "Operating Expenses:", RightValue: analysis.FormatCurrency(input.Num("totalExpensesMonthly") * -1),
			},
			{
				LeftLabel: "Total Cash Needed:", LeftValue: analysis.FormatCurrency(input.Num("totalCashNeeded")),
				RightLabel: "NOI (Monthly):", RightValue: analysis.FormatCurrency(input.Num("noiMonthly")),
			},
			{
				RightLabel: "Mortgage Payment:", RightValue: analysis.FormatCurrency(input.Num("monthlyPayment") * -1),
			},
		},
	}
}

func buildCashFlowSection(input analysis.Input, theme Theme) Section {
	monthly := input.Num("monthlyCashFlow")
	annual := input.Num("annualCashFlow")

	// Tint strictly by sign: zero is not positive cash flow.
	monthlyColor := theme.Danger
	if monthly > 0 {
		monthlyColor = theme.Success
	}
	annualColor := theme.Danger
	if annual > 0 {
		annualColor = theme.Success
	}

	return Section{
		Kind: KindBanner,
		Banner: []BannerRow{
			{Label: "MONTHLY CASH FLOW", Value: analysis.FormatCurrency(monthly), ValueColor: monthlyColor, ValueSize: 12},
			{Label: "ANNUAL CASH FLOW", Value: analysis.FormatCurrency(annual), ValueColor: annualColor, ValueSize: 12},
		},
	}
}

func buildKeyMetricsSection(input analysis.Input, theme Theme) Section {
	type metricSpec struct {
		name           string
		value          float64
		display        string
		target         string
		good           float64
		warn           float64
		higherIsBetter bool
		labels         analysis.TierLabels
	}

	capRate := input.Num("capRate")
	cashOnCash := input.Num("cashOnCash")
	dscr := input.Num("dscr")
	grm := input.Num("grm")
	onePercent := input.Num("onePercentRule")

	metrics := []metricSpec{
		{
			name: "Cap Rate", value: capRate, display: analysis.FormatPercent(capRate),
			target: ">= 8%", good: 0.08, warn: 0.06, higherIsBetter: true,
			labels: analysis.TierLabels{Good: "GOOD", Warn: "AVERAGE", Bad: "LOW"},
		},
		{
			name: "Cash-on-Cash Return", value: cashOnCash, display: analysis.FormatPercent(cashOnCash),
			target: ">= 10%", good: 0.10, warn: 0.06, higherIsBetter: true,
			labels: analysis.TierLabels{Good: "GOOD", Warn: "AVERAGE", Bad: "LOW"},
		},
		{
			name: "Debt Service Coverage Ratio", value: dscr, display: analysis.FormatRatio(dscr),
			target: ">= 1.25x", good: 1.25, warn: 1.0, higherIsBetter: true,
			labels: analysis.TierLabels{Good: "STRONG", Warn: "MARGINAL", Bad: "WEAK"},
		},
		{
			name: "Gross Rent Multiplier", value: grm, display: analysis.FormatRatio(grm),
			target: "<= 12", good: 12, warn: math.NaN(), higherIsBetter: false,
			labels: analysis.TierLabels{Good: "GOOD", Bad: "HIGH"},
		},
		{
			name: "1% Rule", value: onePercent, display: analysis.FormatPercent(onePercent),
			target: ">= 1%", good: 0.01, warn: math.NaN(), higherIsBetter: true,
			labels: analysis.TierLabels{Good: "PASS", Bad: "FAIL"},
		},
	}

	rows := make([][]GridCell, 0, len(metrics))
	for _, metric := range metrics {
		tier := analysis.Classify(metric.value, metric.good, metric.warn, metric.higherIsBetter)
		statusColor := tierColor(tier, theme)

		rows = append(rows, []GridCell{
			{Text: metric.name},
			{Text: metric.display},
			{Text: metric.target},
			{Text: metric.labels.Label(tier), Color: &statusColor},
		})
	}

	return Section{
		Kind:  KindGrid,
		Title: "KEY INVESTMENT METRICS",
		Grid: &Grid{
			Header: []string{"Metric", "Value", "Target", "Status"},
			Widths: []float64{180, 90, 90, 108},
			Aligns: []string{"L", "C", "C", "C"},
			Rows:   rows,
		},
	}
}

func buildRulesCheckSection(input analysis.Input, theme Theme) Section {
	type ruleSpec struct {
		name        string
		passed      bool
		passLabel   string
		failLabel   string
		failColor   RGB
		description string
	}

	rules := []ruleSpec{
		{
			name: "1% Rule", passed: input.Bool("rule1Pass"),
			passLabel: "PASS", failLabel: "FAIL", failColor: theme.Danger,
			description: "Monthly rent should be >= 1% of purchase price",
		},
		{
			name: "2% Rule", passed: input.Bool("rule2Pass"),
			passLabel: "PASS", failLabel: "FAIL", failColor: theme.Danger,
			description: "Monthly rent should be >= 2% of purchase price (strong cash flow)",
		},
		{
			// The 50% rule failing is a prompt to look closer, not a dealbreaker.
			name: "50% Rule", passed: input.Bool("rule50Pass"),
			passLabel: "PASS", failLabel: "REVIEW", failColor: theme.Warning,
			description: "Operating expenses should be <= 50% of rent",
		},
		{
			name: "70% Rule (Flip)", passed: input.Bool("rule70Pass"),
			passLabel: "PASS", failLabel: "FAIL", failColor: theme.Danger,
			description: "Purchase + rehab should be <= 70% of ARV",
		},
		{
			name: "Cash Flow Positive", passed: input.Bool("cashFlowPositivePass"),
			passLabel: "YES", failLabel: "NO", failColor: theme.Danger,
			description: "Property generates positive cash flow after all expenses",
		},
	}

	rows := make([][]GridCell, 0, len(rules))
	for _, rule := range rules {
		label := rule.failLabel
		color := rule.failColor
		if rule.passed {
			label = rule.passLabel
			color = theme.Success
		}
		resultColor := color

		rows = append(rows, []GridCell{
			{Text: rule.name},
			{Text: label, Color: &resultColor, Bold: true},
			{Text: rule.description},
		})
	}

	return Section{
		Kind:  KindGrid,
		Title: "QUICK RULES CHECK",
		Grid: &Grid{
			Header: []string{"Rule", "Result", "Description"},
			Widths: []float64{100, 68, 336},
			Aligns: []string{"L", "C", "L"},
			Rows:   rows,
		},
	}
}

func buildVerdictSection(input analysis.Input, theme Theme) Section {
	verdict := input.Str("verdict")

	return Section{
		Kind: KindBanner,
		Banner: []BannerRow{
			{Label: "DEAL VERDICT", Value: verdict, ValueColor: VerdictColor(verdict, theme), ValueSize: 18},
		},
	}
}

/*
VerdictColor maps the literal verdict string onto the report palette.

Exactly four outcomes exist: STRONG BUY is favorable, CONSIDER informational,
REVIEW cautionary, and any other string lands on the unfavorable color.
*/
func VerdictColor(verdict string, theme Theme) RGB {
	switch verdict {
	case "STRONG BUY":
		return theme.Success
	case "CONSIDER":
		return theme.Accent
	case "REVIEW":
		return theme.Warning
	}
	return theme.Danger
}

func buildFinancingSection(input analysis.Input) Section {
	downPercent := input.Num("downPaymentPercent")
	ltvPercent := util.Clamp(1-downPercent, 0, 1)

	return Section{
		Kind:         KindKeyValue,
		Title:        "FINANCING DETAILS",
		KVWidths:     [2]float64{144, 144},
		KVValueAlign: "R",
		KV: []KVRow{
			{Label: "Interest Rate:", Value: analysis.FormatPercent(input.Num("interestRate"))},
			{Label: "Loan Term:", Value: fmt.Sprintf("%s years", input.Str("loanTermYears"))},
			{Label: "Down Payment:", Value: analysis.FormatWholePercent(downPercent)},
			{Label: "LTV Ratio:", Value: analysis.FormatWholePercent(ltvPercent)},
			{Label: "Monthly P&I:", Value: analysis.FormatCurrency(input.Num("monthlyPayment"))},
			{Label: "Annual Debt Service:", Value: analysis.FormatCurrency(input.Num("annualDebtService"))},
		},
	}
}

func buildFooterSection(theme Theme) Section {
	paragraphs := []Paragraph{
		{Divider: true, Color: theme.DarkGray, SpaceAfter: 12},
	}

	for _, line := range theme.FooterLines {
		paragraphs = append(paragraphs, Paragraph{Text: line, Size: 9, Color: theme.DarkGray, SpaceAfter: 5})
	}

	paragraphs = append(paragraphs,
		Paragraph{Text: theme.Website, Size: 9, Color: theme.Accent, SpaceAfter: 14},
		Paragraph{Text: theme.Disclaimer, Size: 7, Italic: true, Color: RGB{R: 136, G: 136, B: 136}},
	)

	return Section{
		Kind:       KindParagraphs,
		Paragraphs: paragraphs,
	}
}

func tierColor(tier analysis.Tier, theme Theme) RGB {
	switch tier {
	case analysis.TierGood:
		return theme.Success
	case analysis.TierWarn:
		return theme.Warning
	}
	return theme.Danger
}
