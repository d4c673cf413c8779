package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrencyINR(t *testing.T) {
	assert.Equal(t, "₹0.00", FormatCurrencyINR(0))
	assert.Equal(t, "₹85.00", FormatCurrencyINR(85))
	assert.Equal(t, "₹999.50", FormatCurrencyINR(999.5))
	assert.Equal(t, "₹1,000.00", FormatCurrencyINR(1000))
	assert.Equal(t, "₹12,345.00", FormatCurrencyINR(12345))
	assert.Equal(t, "₹12,34,567.50", FormatCurrencyINR(1234567.5))
	assert.Equal(t, "-₹1,234.00", FormatCurrencyINR(-1234))
}
