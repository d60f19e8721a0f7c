package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$0", FormatCurrency(0))
	assert.Equal(t, "$500", FormatCurrency(500))
	assert.Equal(t, "$1,850", FormatCurrency(1850))
	assert.Equal(t, "$1,234,567", FormatCurrency(1234567))
	assert.Equal(t, "-$500", FormatCurrency(-500))
	assert.Equal(t, "-$1,250", FormatCurrency(-1250))
}

func TestFormatCurrency_RoundsToWholeDollars(t *testing.T) {
	assert.Equal(t, "$1,500", FormatCurrency(1500.49))
	assert.Equal(t, "$1,000", FormatCurrency(999.5))
	assert.Equal(t, "-$125", FormatCurrency(-124.6))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "0.00%", FormatPercent(0))
	assert.Equal(t, "8.25%", FormatPercent(0.0825))
	assert.Equal(t, "100.00%", FormatPercent(1))
	assert.Equal(t, "-3.50%", FormatPercent(-0.035))
}

func TestFormatWholePercent(t *testing.T) {
	assert.Equal(t, "25%", FormatWholePercent(0.25))
	assert.Equal(t, "0%", FormatWholePercent(0))
	assert.Equal(t, "80%", FormatWholePercent(0.8))
}

func TestFormatRatio(t *testing.T) {
	assert.Equal(t, "1.26", FormatRatio(1.256))
	assert.Equal(t, "0.00", FormatRatio(0))
	assert.Equal(t, "12.00", FormatRatio(12))
}

func TestFormatIntHuman(t *testing.T) {
	assert.Equal(t, "0", FormatIntHuman(0))
	assert.Equal(t, "999", FormatIntHuman(999))
	assert.Equal(t, "1,850", FormatIntHuman(1850))
	assert.Equal(t, "1,234,567", FormatIntHuman(1234567))
	assert.Equal(t, "-42", FormatIntHuman(-42))
	assert.Equal(t, "-5,000", FormatIntHuman(-5000))
}
