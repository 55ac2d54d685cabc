package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeline/savings-calculator/internal/domain"
)

func projectFloats(principal, annualReturn, monthlyExpense float64) domain.ProjectionResult {
	engine := NewCalculationEngine()
	return engine.Project(domain.ProjectionInput{
		Principal:      decimal.NewFromFloat(principal),
		AnnualReturn:   decimal.NewFromFloat(annualReturn),
		MonthlyExpense: decimal.NewFromFloat(monthlyExpense),
	})
}

// runwayMonths maps a result onto a single comparable scale: depletion month
// for depleted runs, one month past the horizon otherwise.
func runwayMonths(result domain.ProjectionResult) int {
	if result.Depleted() {
		return result.MonthsUntilDepletion
	}
	return HorizonYears*MonthsPerYear + 1
}

func TestProjectDepletionScenarios(t *testing.T) {
	tests := []struct {
		name            string
		principal       float64
		annualReturn    float64
		monthlyExpense  float64
		expectedMonths  int
		expectedYears   int
		expectedRemain  int
		expectedSnaps   int
	}{
		{
			name:           "1.5M at 5% with 10k expense lasts about 15 years",
			principal:      1500000,
			annualReturn:   0.05,
			monthlyExpense: 10000,
			expectedMonths: 178,
			expectedYears:  14,
			expectedRemain: 10,
			expectedSnaps:  15,
		},
		{
			name:           "500k at 5% with 10k expense lasts about 5 years",
			principal:      500000,
			annualReturn:   0.05,
			monthlyExpense: 10000,
			expectedMonths: 53,
			expectedYears:  4,
			expectedRemain: 5,
			expectedSnaps:  5,
		},
		{
			name:           "zero return depletes linearly",
			principal:      12000,
			annualReturn:   0.0,
			monthlyExpense: 1000,
			expectedMonths: 12,
			expectedYears:  1,
			expectedRemain: 0,
			expectedSnaps:  1,
		},
		{
			name:           "expense exceeding principal depletes in the first month",
			principal:      500,
			annualReturn:   0.05,
			monthlyExpense: 1000,
			expectedMonths: 1,
			expectedYears:  0,
			expectedRemain: 1,
			expectedSnaps:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := projectFloats(tt.principal, tt.annualReturn, tt.monthlyExpense)

			assert.True(t, result.Depleted())
			assert.False(t, result.IndefiniteGrowth)
			assert.Equal(t, tt.expectedMonths, result.MonthsUntilDepletion)
			assert.Equal(t, tt.expectedYears, result.FullYears)
			assert.Equal(t, tt.expectedRemain, result.RemainingMonths)
			assert.Equal(t, tt.expectedMonths, result.FullYears*MonthsPerYear+result.RemainingMonths)
			assert.True(t, result.FinalPrincipal.IsZero(),
				"depleted run must end at exactly zero, got %s", result.FinalPrincipal)
			assert.Len(t, result.Snapshots, tt.expectedSnaps)
		})
	}
}

func TestProjectIndefiniteGrowth(t *testing.T) {
	result := projectFloats(1500000, 0.10, 3000)

	require.True(t, result.IndefiniteGrowth)
	assert.Equal(t, domain.MonthsNotDepleted, result.MonthsUntilDepletion)
	assert.Equal(t, HorizonYears, result.FullYears)
	assert.Len(t, result.Snapshots, HorizonYears)
	assert.InDelta(t, 9242380.80, result.FinalPrincipal.InexactFloat64(), 5)
	assert.True(t, result.FinalPrincipal.GreaterThan(decimal.NewFromInt(1500000)))
}

func TestProjectOutlivesHorizon(t *testing.T) {
	// At 10% return a 10k expense shrinks the balance slowly: the horizon
	// ends with money left but a declining trend. Neither depleted nor
	// indefinite.
	result := projectFloats(1500000, 0.10, 10000)

	assert.False(t, result.Depleted())
	assert.False(t, result.IndefiniteGrowth)
	assert.True(t, result.OutlivesHorizon())
	assert.InDelta(t, 165592.85, result.FinalPrincipal.InexactFloat64(), 5)
	assert.Len(t, result.Snapshots, HorizonYears)
}

func TestProjectZeroPrincipal(t *testing.T) {
	result := projectFloats(0, 0.05, 1000)

	if !result.Depleted() {
		t.Fatalf("expected immediate depletion")
	}
	if result.MonthsUntilDepletion != 0 {
		t.Fatalf("expected depletion at month 0, got %d", result.MonthsUntilDepletion)
	}
	if len(result.Snapshots) != 0 {
		t.Fatalf("expected no snapshots, got %d", len(result.Snapshots))
	}
	if !result.FinalPrincipal.IsZero() {
		t.Fatalf("expected zero final principal, got %s", result.FinalPrincipal)
	}
}

func TestProjectZeroExpenseGrowsIndefinitely(t *testing.T) {
	result := projectFloats(100000, 0.05, 0)

	require.True(t, result.IndefiniteGrowth)
	require.Len(t, result.Snapshots, HorizonYears)

	// Year 1: 100000 * 1.05 = 105000, then charity 2500 -> 102500.
	year1 := result.Snapshots[0]
	assert.InDelta(t, 102500, year1.EndPrincipal.InexactFloat64(), 50)
}

func TestProjectZeroExpenseZeroReturnDecaysByCharityOnly(t *testing.T) {
	// Only the charity deduction drains the balance: 2.5% of each year's
	// start, so the balance shrinks geometrically but never reaches zero.
	result := projectFloats(100000, 0.0, 0)

	assert.True(t, result.OutlivesHorizon())
	assert.InDelta(t, 46788.43, result.FinalPrincipal.InexactFloat64(), 1)
	for _, snap := range result.Snapshots {
		assert.True(t, snap.TotalReturns.IsZero())
		assert.True(t, snap.TotalExpenses.IsZero())
	}
}

func TestCharityComputedOnYearStartPrincipal(t *testing.T) {
	result := projectFloats(1500000, 0.10, 3000)

	require.NotEmpty(t, result.Snapshots)
	for _, snap := range result.Snapshots {
		expected := snap.StartPrincipal.Mul(CharityRate)
		assert.True(t, snap.CharityPaid.Equal(expected),
			"year %d: charity %s should be 2.5%% of start %s", snap.Year, snap.CharityPaid, snap.StartPrincipal)
	}
}

func TestCharityCappedAtRemainingBalance(t *testing.T) {
	// Zero return, expenses exhaust the principal exactly at year end: the
	// charity owed on the year-start balance cannot be paid from nothing.
	result := projectFloats(12000, 0.0, 1000)

	require.Len(t, result.Snapshots, 1)
	snap := result.Snapshots[0]
	assert.True(t, snap.CharityPaid.IsZero(), "charity must not drive the balance negative, got %s", snap.CharityPaid)
	assert.True(t, result.FinalPrincipal.IsZero())
}

func TestExpenseAccumulatorTracksActualCash(t *testing.T) {
	// Month 1 pays the full 1000; month 2 has only 500 left. The accumulator
	// must show 1500 actually paid, not the 2000 requested.
	result := projectFloats(1500, 0.0, 1000)

	require.Len(t, result.Snapshots, 1)
	assert.True(t, result.Snapshots[0].TotalExpenses.Equal(decimal.NewFromInt(1500)),
		"expected 1500 actually paid, got %s", result.Snapshots[0].TotalExpenses)
	assert.Equal(t, 2, result.MonthsUntilDepletion)
}

func TestRealizedReturnPercentInDepletedYear(t *testing.T) {
	result := projectFloats(1500000, 0.05, 10000)

	require.NotEmpty(t, result.Snapshots)
	first := result.Snapshots[0]
	last := result.Snapshots[len(result.Snapshots)-1]

	// A full year realizes close to the nominal 5%; the depleted partial
	// year earns returns for only part of the year on a dwindling balance.
	assert.InDelta(t, 4.8, first.ReturnPercent.InexactFloat64(), 0.2)
	assert.Less(t, last.ReturnPercent.InexactFloat64(), first.ReturnPercent.InexactFloat64())
}

func TestProjectTerminatesWithNonNegativeBalance(t *testing.T) {
	inputs := []struct{ p, r, e float64 }{
		{0, 0, 0},
		{1, 0.05, 1000},
		{1000000, -0.05, 2000},
		{1000000, -2.0, 100},
		{100000, 1.0, 1000},
		{10000000, 0.08, 10000},
	}
	for _, in := range inputs {
		result := projectFloats(in.p, in.r, in.e)
		assert.False(t, result.FinalPrincipal.IsNegative(),
			"inputs (%v, %v, %v): final principal %s", in.p, in.r, in.e, result.FinalPrincipal)
		assert.LessOrEqual(t, len(result.Snapshots), HorizonYears)
		if result.Depleted() {
			assert.LessOrEqual(t, result.MonthsUntilDepletion, HorizonYears*MonthsPerYear)
		}
	}
}

func TestMonotonicityInMonthlyExpense(t *testing.T) {
	expenses := []float64{2000, 5000, 8000, 12000, 20000}
	previous := runwayMonths(projectFloats(500000, 0.06, expenses[0]))
	for _, expense := range expenses[1:] {
		current := runwayMonths(projectFloats(500000, 0.06, expense))
		assert.LessOrEqual(t, current, previous, "expense %v should not lengthen the runway", expense)
		previous = current
	}
}

func TestMonotonicityInAnnualReturn(t *testing.T) {
	returns := []float64{-0.05, 0.0, 0.03, 0.06, 0.10, 0.15}
	previous := runwayMonths(projectFloats(500000, returns[0], 5000))
	for _, annualReturn := range returns[1:] {
		current := runwayMonths(projectFloats(500000, annualReturn, 5000))
		assert.GreaterOrEqual(t, current, previous, "return %v should not shorten the runway", annualReturn)
		previous = current
	}

	// A high enough return flips the outcome to indefinite growth.
	low := projectFloats(500000, 0.03, 5000)
	high := projectFloats(500000, 0.20, 5000)
	assert.False(t, low.IndefiniteGrowth)
	assert.True(t, high.IndefiniteGrowth)
}

func TestNegativeReturnAcceleratesDepletion(t *testing.T) {
	positive := projectFloats(100000, 0.05, 2000)
	negative := projectFloats(100000, -0.05, 2000)

	require.True(t, positive.Depleted())
	require.True(t, negative.Depleted())
	assert.Greater(t, positive.MonthsUntilDepletion, negative.MonthsUntilDepletion)
}

func TestMonthlyRateCompoundConversion(t *testing.T) {
	rate := MonthlyRate(decimal.NewFromFloat(0.10))
	assert.InDelta(t, 0.007974, rate.InexactFloat64(), 0.000001)

	// Compounding the monthly rate twelve times must reproduce the annual
	// rate, which annual/12 does not.
	compounded := decimal.NewFromInt(1)
	factor := decimal.NewFromInt(1).Add(rate)
	for i := 0; i < MonthsPerYear; i++ {
		compounded = compounded.Mul(factor)
	}
	assert.InDelta(t, 1.10, compounded.InexactFloat64(), 1e-9)

	assert.True(t, MonthlyRate(decimal.Zero).IsZero())
	assert.True(t, MonthlyRate(decimal.NewFromFloat(-1.5)).Equal(decimal.NewFromInt(-1)),
		"a sub-total-loss annual return degrades to total monthly loss")
}
