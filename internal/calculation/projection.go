package calculation

import (
	"github.com/lifeline/savings-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Project simulates the balance month by month for up to HorizonYears years
// and classifies the outcome. It accepts any numeric inputs: a zero or
// negative principal depletes immediately at month 0, negative returns model
// losses, and a zero expense leaves only the charity deduction as outflow.
func (ce *CalculationEngine) Project(input domain.ProjectionInput) domain.ProjectionResult {
	monthlyRate := MonthlyRate(input.AnnualReturn)
	balance := input.Principal
	months := 0
	depleted := !balance.GreaterThan(decimal.Zero)
	var snapshots []domain.YearlySnapshot

	for year := 1; year <= HorizonYears && balance.GreaterThan(decimal.Zero); year++ {
		startPrincipal := balance
		yearReturns := decimal.Zero
		yearExpenses := decimal.Zero

		for m := 0; m < MonthsPerYear; m++ {
			earned := balance.Mul(monthlyRate)
			balance = balance.Add(earned)
			yearReturns = yearReturns.Add(earned)

			// Never withdraw more than the balance holds; the accumulator
			// tracks cash actually paid, not the requested amount.
			paid := decimal.Min(input.MonthlyExpense, balance)
			balance = balance.Sub(paid)
			yearExpenses = yearExpenses.Add(paid)
			months++

			if !balance.GreaterThan(decimal.Zero) {
				balance = decimal.Zero
				depleted = true
				break
			}
		}

		// Charity owes 2.5% of the year-start principal, capped at whatever
		// is left. Applied at year close and at the depletion partial year.
		charity := decimal.Min(startPrincipal.Mul(CharityRate), balance)
		balance = balance.Sub(charity)

		snapshots = append(snapshots, domain.YearlySnapshot{
			Year:           year,
			StartPrincipal: startPrincipal,
			ReturnPercent:  realizedPercent(yearReturns, startPrincipal),
			TotalReturns:   yearReturns,
			CharityPaid:    charity,
			TotalExpenses:  yearExpenses,
			EndPrincipal:   balance,
		})
		ce.Logger.Debugf("year %d: start=%s returns=%s charity=%s expenses=%s end=%s",
			year, startPrincipal.StringFixed(2), yearReturns.StringFixed(2),
			charity.StringFixed(2), yearExpenses.StringFixed(2), balance.StringFixed(2))

		if depleted {
			break
		}
		if !balance.GreaterThan(decimal.Zero) {
			// The charity deduction drained the last of the balance at the
			// year boundary; the runway ends at the months simulated so far.
			balance = decimal.Zero
			depleted = true
			break
		}
	}

	if depleted {
		return domain.ProjectionResult{
			MonthsUntilDepletion: months,
			FullYears:            months / MonthsPerYear,
			RemainingMonths:      months % MonthsPerYear,
			FinalPrincipal:       decimal.Zero,
			IndefiniteGrowth:     false,
			Snapshots:            snapshots,
		}
	}

	return domain.ProjectionResult{
		MonthsUntilDepletion: domain.MonthsNotDepleted,
		FullYears:            HorizonYears,
		RemainingMonths:      0,
		FinalPrincipal:       balance,
		IndefiniteGrowth:     ce.isIndefiniteGrowth(balance, monthlyRate, input.MonthlyExpense, snapshots),
		Snapshots:            snapshots,
	}
}

// isIndefiniteGrowth classifies a horizon-surviving balance. Two conditions
// must both hold: the final year grew (observed trend), and at the horizon-end
// balance the monthly return exceeds the monthly expense plus the amortized
// charity burden (steady state). The trend alone can misclassify near the
// boundary; the steady-state test anchors the decision.
func (ce *CalculationEngine) isIndefiniteGrowth(balance, monthlyRate, monthlyExpense decimal.Decimal, snapshots []domain.YearlySnapshot) bool {
	if len(snapshots) == 0 {
		return false
	}
	last := snapshots[len(snapshots)-1]
	if !last.EndPrincipal.GreaterThan(last.StartPrincipal) {
		return false
	}
	monthlyReturn := balance.Mul(monthlyRate)
	monthlyBurden := monthlyExpense.Add(balance.Mul(CharityRate).Div(decimal.NewFromInt(MonthsPerYear)))
	return monthlyReturn.GreaterThan(monthlyBurden)
}

func realizedPercent(returns, startPrincipal decimal.Decimal) decimal.Decimal {
	if !startPrincipal.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	return returns.Div(startPrincipal).Mul(hundred)
}
