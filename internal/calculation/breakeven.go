package calculation

import (
	"errors"
	"fmt"

	"github.com/lifeline/savings-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidInput is returned when a break-even formula is asked to divide
// by a zero principal.
var ErrInvalidInput = errors.New("invalid input")

// SustainableExpense computes the maximum monthly expense the principal can
// sustain indefinitely at the given annual return, after the charity
// deduction: principal * (annualReturn - charityRate) / 12.
//
// The result is negative when the annual return is below the charity rate;
// callers must report that as "not sustainable" rather than spend it.
func SustainableExpense(principal, annualReturn decimal.Decimal) decimal.Decimal {
	return principal.Mul(annualReturn.Sub(CharityRate)).Div(decimal.NewFromInt(MonthsPerYear))
}

// RequiredReturn computes the minimum annual return needed to sustain the
// given monthly expense indefinitely: monthlyExpense*12/principal + charityRate.
// It fails with ErrInvalidInput when the principal is not positive, rather
// than propagating an infinite result.
func RequiredReturn(principal, monthlyExpense decimal.Decimal) (decimal.Decimal, error) {
	if !principal.GreaterThan(decimal.Zero) {
		return decimal.Decimal{}, fmt.Errorf("%w: required return needs a positive principal, got %s",
			ErrInvalidInput, principal.String())
	}
	return monthlyExpense.Mul(decimal.NewFromInt(MonthsPerYear)).Div(principal).Add(CharityRate), nil
}

// AnalyzeBreakEven computes both break-even thresholds for the given inputs.
// Both formulas are algebraic inversions of the steady-state condition that
// monthly returns exactly offset the monthly expense plus amortized charity;
// no simulation is involved.
func (ce *CalculationEngine) AnalyzeBreakEven(input domain.ProjectionInput) (*domain.BreakEvenSummary, error) {
	required, err := RequiredReturn(input.Principal, input.MonthlyExpense)
	if err != nil {
		return nil, err
	}
	sustainable := SustainableExpense(input.Principal, input.AnnualReturn)
	return &domain.BreakEvenSummary{
		SustainableExpense: sustainable,
		RequiredReturn:     required,
		Sustainable:        sustainable.GreaterThan(decimal.Zero),
	}, nil
}
