package email

import (
	"fmt"
	"strings"

	"property-analyzer/src/pkg/analysis"
	"property-analyzer/src/pkg/report"
)

/*
ComposeReportMessage builds the subject and plain-text body for a report
delivery email from the same input mapping the report was rendered from.

The body is a fixed template referencing the recipient name and property
address; the rendered PDF travels as an attachment built by the caller.
*/
func ComposeReportMessage(input analysis.Input) (subject string, textBody string) {
	userName := input.Str("userName")
	propertyAddress := input.Str("propertyAddress")

	subject = fmt.Sprintf("Your Investment Property Analysis - %s", propertyAddress)

	lines := []string{
		fmt.Sprintf("Dear %s,", userName),
		"",
		fmt.Sprintf("Thank you for using the %s Investment Property Analyzer!", brandSignature()),
		"",
		"Please find attached your comprehensive investment analysis for:",
		propertyAddress,
		"",
		"This report includes:",
		"- Property summary and financial snapshot",
		"- Key investment metrics (Cap Rate, Cash-on-Cash, DSCR, GRM)",
		"- Quick rules check (1%, 2%, 50%, 70% rules)",
		"- Cash flow analysis",
		"- Deal verdict and recommendation",
		"",
		"If you have any questions about this analysis or would like to discuss investment opportunities, please don't hesitate to reach out.",
		"",
		"Best regards,",
		"",
		brandSignature(),
		report.Cfg.Website,
	}

	lines = append(lines, "", "---")
	lines = append(lines, report.Cfg.FooterLines...)

	textBody = strings.Join(lines, "\n")
	return subject, textBody
}

/*
brandSignature renders the configured brand name in sentence form rather than
the all-caps banner used inside the PDF.
*/
func brandSignature() string {
	brandName := strings.TrimSpace(report.Cfg.BrandName)
	if brandName == "" {
		return "our"
	}

	words := strings.Fields(strings.ToLower(brandName))
	for index, word := range words {
		words[index] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
