package output

import (
	"github.com/shopspring/decimal"

	pkgdecimal "github.com/lifeline/savings-calculator/pkg/decimal"
)

// FormatCurrency formats a decimal as USD currency with comma-grouped
// thousands and 2 decimals. Kept here so it can be reused by multiple
// formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return pkgdecimal.NewMoneyFromDecimal(amount).Format()
}

// FormatPercent formats a decimal percentage value with 2 decimals.
func FormatPercent(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

// FormatRate formats a fractional rate (0.105) as a percentage ("10.50%").
func FormatRate(rate decimal.Decimal) string {
	return FormatPercent(rate.Mul(decimal.NewFromInt(100)))
}
