/*
Package analysis holds the flat report input mapping and the pure helpers
that turn raw figures into display strings and status classifications.

All financial metrics arrive pre-computed from the intake form; nothing in
this package does financial math.
*/
package analysis

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/tuumbleweed/xerr"
)

/*
Input is the flat field->value mapping for one report request.

It is intentionally permissive: unknown fields are ignored, and every known
field has a documented default in defaultValues that is applied at read time.
Treat it as read-only once constructed.
*/
type Input map[string]any

/*
defaultValues is the single source of truth for field defaults.

Every consumer reads through the typed getters below, so a missing or
malformed field can never fail a request; it resolves here instead.
*/
var defaultValues = map[string]any{
	"userName":  "N/A",
	"userEmail": "",

	"propertyAddress": "N/A",
	"propertyCity":    "",
	"propertyState":   "FL",
	"propertyZip":     "",
	"propertyType":    "N/A",
	"numUnits":        float64(1),
	"bedrooms":        "N/A",
	"bathrooms":       "N/A",
	"sqft":            float64(0),
	"yearBuilt":       "N/A",
	"lotSize":         float64(0),

	"purchasePrice":   float64(0),
	"downPayment":     float64(0),
	"closingCosts":    float64(0),
	"rehabCosts":      float64(0),
	"loanAmount":      float64(0),
	"totalCashNeeded": float64(0),

	"grossRentMonthly":       float64(0),
	"vacancyRate":            float64(0),
	"otherIncomeMonthly":     float64(0),
	"effectiveIncomeMonthly": float64(0),
	"totalExpensesMonthly":   float64(0),
	"noiMonthly":             float64(0),

	"capRate":        float64(0),
	"cashOnCash":     float64(0),
	"dscr":           float64(0),
	"grm":            float64(0),
	"onePercentRule": float64(0),

	"monthlyCashFlow": float64(0),
	"annualCashFlow":  float64(0),

	"rule1Pass":            false,
	"rule2Pass":            false,
	"rule50Pass":           false,
	"rule70Pass":           false,
	"cashFlowPositivePass": false,

	"verdict": "REVIEW",

	"interestRate":       float64(0),
	"loanTermYears":      float64(30),
	"downPaymentPercent": float64(0),
	"monthlyPayment":     float64(0),
	"annualDebtService":  float64(0),
}

/*
ParseInput unmarshals a JSON payload into an Input.

Only a non-object payload is an error; individual fields are never validated
here because every getter substitutes a default.
*/
func ParseInput(payload []byte) (input Input, e *xerr.Error) {
	unmarshalErr := json.Unmarshal(payload, &input)
	if unmarshalErr != nil {
		e = xerr.NewError(unmarshalErr, "unmarshal report input JSON", string(payload))
		return input, e
	}
	if input == nil {
		input = Input{}
	}
	return input, e
}

/*
Str returns the field as a string, falling back to the documented default.

Numbers are rendered without a trailing ".0" so a JSON 3 displays as "3".
*/
func (input Input) Str(field string) string {
	value, present := input[field]
	if !present || value == nil {
		return defaultString(field)
	}

	switch typed := value.(type) {
	case string:
		trimmed := strings.TrimSpace(typed)
		if trimmed == "" {
			return defaultString(field)
		}
		return trimmed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(typed)
	}

	return defaultString(field)
}

/*
Num returns the field as a float64, falling back to the documented default.

Numeric strings are accepted because intake forms sometimes post them.
*/
func (input Input) Num(field string) float64 {
	value, present := input[field]
	if !present || value == nil {
		return defaultNumber(field)
	}

	switch typed := value.(type) {
	case float64:
		return typed
	case string:
		parsed, parseErr := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if parseErr == nil {
			return parsed
		}
	}

	return defaultNumber(field)
}

/*
Bool returns the field as a bool; anything that is not a JSON true is false.
*/
func (input Input) Bool(field string) bool {
	value, present := input[field]
	if !present || value == nil {
		return false
	}

	typed, isBool := value.(bool)
	if !isBool {
		return false
	}
	return typed
}

func defaultString(field string) string {
	fallback, known := defaultValues[field]
	if !known {
		return ""
	}

	switch typed := fallback.(type) {
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	}
	return ""
}

func defaultNumber(field string) float64 {
	fallback, known := defaultValues[field]
	if !known {
		return 0
	}

	typed, isNumber := fallback.(float64)
	if !isNumber {
		return 0
	}
	return typed
}
