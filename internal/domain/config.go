package domain

import (
	"github.com/shopspring/decimal"
)

// Configuration holds the user-supplied inputs for a calculator run.
// The charity rate and projection horizon are fixed by the engine and are
// deliberately not part of the configuration surface.
type Configuration struct {
	Principal      decimal.Decimal `yaml:"principal" json:"principal"`
	AnnualReturn   decimal.Decimal `yaml:"annual_return" json:"annual_return"`
	MonthlyExpense decimal.Decimal `yaml:"monthly_expense" json:"monthly_expense"`
}

// DefaultConfiguration returns the documented defaults: a 1.5M principal,
// 10% annual return, and 10,000 monthly expense.
func DefaultConfiguration() Configuration {
	return Configuration{
		Principal:      decimal.NewFromInt(1500000),
		AnnualReturn:   decimal.NewFromFloat(0.10),
		MonthlyExpense: decimal.NewFromInt(10000),
	}
}

// Input converts the configuration into the engine's input record.
func (c Configuration) Input() ProjectionInput {
	return ProjectionInput{
		Principal:      c.Principal,
		AnnualReturn:   c.AnnualReturn,
		MonthlyExpense: c.MonthlyExpense,
	}
}
