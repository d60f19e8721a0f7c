package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"property-analyzer/src/pkg/analysis"
)

func TestComposeReportMessage(t *testing.T) {
	input := analysis.Input{
		"userName":        "Jordan Ellis",
		"propertyAddress": "123 Main St",
	}

	subject, textBody := ComposeReportMessage(input)

	assert.Equal(t, "Your Investment Property Analysis - 123 Main St", subject)
	assert.True(t, strings.HasPrefix(textBody, "Dear Jordan Ellis,"))
	assert.Contains(t, textBody, "123 Main St")
	assert.Contains(t, textBody, "This report includes:")
	assert.Contains(t, textBody, "Key investment metrics (Cap Rate, Cash-on-Cash, DSCR, GRM)")
	assert.Contains(t, textBody, "Best regards,")
	assert.Contains(t, textBody, "The Edmund Bogen Team")
	assert.Contains(t, textBody, "www.bogenhomes.com")
}

func TestComposeReportMessage_Defaults(t *testing.T) {
	subject, textBody := ComposeReportMessage(analysis.Input{})

	assert.Equal(t, "Your Investment Property Analysis - N/A", subject)
	assert.True(t, strings.HasPrefix(textBody, "Dear N/A,"))
}
