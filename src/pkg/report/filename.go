package report

import (
	"fmt"
	"strings"

	"property-analyzer/src/pkg/analysis"
)

// fallback stem when the input carries no usable address
const defaultAddressStem = "Investment_Property"

const maxAddressStemLen = 30

/*
SanitizeAddress turns a property address into a filename-safe stem.

Spaces become underscores, commas and periods are stripped, and the result is
truncated to 30 characters. An empty address falls back to a fixed stem.
*/
func SanitizeAddress(address string) string {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" || trimmed == "N/A" {
		trimmed = defaultAddressStem
	}

	safe := strings.ReplaceAll(trimmed, " ", "_")
	safe = strings.ReplaceAll(safe, ",", "")
	safe = strings.ReplaceAll(safe, ".", "")

	runes := []rune(safe)
	if len(runes) > maxAddressStemLen {
		runes = runes[:maxAddressStemLen]
	}

	return string(runes)
}

/*
AttachmentFilename builds the download/attachment filename for one report.

Example: "Investment_Analysis_123_Main_St_Apt_#4.pdf".
*/
func AttachmentFilename(input analysis.Input) string {
	address := input.Str("propertyAddress")
	return fmt.Sprintf("Investment_Analysis_%s.pdf", SanitizeAddress(address))
}
