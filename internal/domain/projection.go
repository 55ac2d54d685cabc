package domain

import (
	"github.com/shopspring/decimal"
)

// MonthsNotDepleted is the sentinel value of MonthsUntilDepletion when the
// balance survives the full projection horizon.
const MonthsNotDepleted = -1

// ProjectionInput holds the three scalar inputs to a projection run.
// Values are supplied once and never mutated by the engine.
type ProjectionInput struct {
	Principal      decimal.Decimal `json:"principal" yaml:"principal"`
	AnnualReturn   decimal.Decimal `json:"annual_return" yaml:"annual_return"`
	MonthlyExpense decimal.Decimal `json:"monthly_expense" yaml:"monthly_expense"`
}

// YearlySnapshot aggregates one simulated year of balance activity.
// ReturnPercent is the realized percentage for the year (returns earned over
// the year-start principal), which differs from the nominal annual return in
// a partial or depleted year.
type YearlySnapshot struct {
	Year           int             `json:"year"`
	StartPrincipal decimal.Decimal `json:"start_principal"`
	ReturnPercent  decimal.Decimal `json:"return_percent"`
	TotalReturns   decimal.Decimal `json:"total_returns"`
	CharityPaid    decimal.Decimal `json:"charity_paid"`
	TotalExpenses  decimal.Decimal `json:"total_expenses"`
	EndPrincipal   decimal.Decimal `json:"end_principal"`
}

// ProjectionResult is the complete outcome of one projection run.
//
// Exactly one of three states holds:
//   - depleted: MonthsUntilDepletion >= 0, FinalPrincipal is zero
//   - indefinite growth: IndefiniteGrowth is true, FinalPrincipal is the
//     horizon-end balance
//   - outlives horizon: neither of the above; the runway is finite but longer
//     than the projection horizon
type ProjectionResult struct {
	MonthsUntilDepletion int              `json:"months_until_depletion"`
	FullYears            int              `json:"full_years"`
	RemainingMonths      int              `json:"remaining_months"`
	FinalPrincipal       decimal.Decimal  `json:"final_principal"`
	IndefiniteGrowth     bool             `json:"indefinite_growth"`
	Snapshots            []YearlySnapshot `json:"yearly_snapshots"`
}

// Depleted reports whether the balance ran out within the horizon.
func (pr *ProjectionResult) Depleted() bool {
	return pr.MonthsUntilDepletion != MonthsNotDepleted
}

// OutlivesHorizon reports whether the balance survived the horizon without
// meeting the indefinite-growth condition.
func (pr *ProjectionResult) OutlivesHorizon() bool {
	return !pr.Depleted() && !pr.IndefiniteGrowth
}

// BreakEvenSummary holds the two closed-form break-even thresholds.
// SustainableExpense can be negative when the annual return is below the
// charity rate; Sustainable is false in that case and the amount must not be
// treated as valid spending.
type BreakEvenSummary struct {
	SustainableExpense decimal.Decimal `json:"sustainable_expense"`
	RequiredReturn     decimal.Decimal `json:"required_return"`
	Sustainable        bool            `json:"sustainable"`
}

// Report is the envelope handed to output formatters: the inputs, the
// projection outcome, and the break-even analysis (nil when it could not be
// computed, e.g. zero principal).
type Report struct {
	Input     ProjectionInput   `json:"input"`
	Result    ProjectionResult  `json:"result"`
	BreakEven *BreakEvenSummary `json:"break_even,omitempty"`
}
