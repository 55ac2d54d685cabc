package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

// HorizonYears is the fixed projection horizon.
const HorizonYears = 30

// MonthsPerYear is the number of simulated months in a full year.
const MonthsPerYear = 12

// CharityRate is the fixed annual charitable deduction, applied to each
// year's starting principal.
var CharityRate = decimal.NewFromFloat(0.025)

// CalculationEngine runs projections and break-even analysis. It carries no
// state between calls; concurrent use from multiple goroutines is safe.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine with a no-op logger.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided,
// a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// MonthlyRate converts a nominal annual return to the effective monthly
// compounding rate: (1 + annual)^(1/12) - 1. Compounding the result twelve
// times reproduces the annual rate, unlike a plain annual/12 split.
//
// An annual return at or below -100% has no real twelfth root; it is treated
// as total loss (monthly rate of -1), which zeroes the balance in the first
// simulated month.
func MonthlyRate(annualReturn decimal.Decimal) decimal.Decimal {
	base := annualReturn.InexactFloat64() + 1
	if base <= 0 {
		return decimal.NewFromInt(-1)
	}
	return decimal.NewFromFloat(math.Pow(base, 1.0/float64(MonthsPerYear)) - 1)
}
