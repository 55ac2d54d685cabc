package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"

	"github.com/lifeline/savings-calculator/internal/domain"
)

// promptForInputs runs the interactive form, pre-filled with the resolved
// configuration so Enter keeps each current value.
func promptForInputs(cfg *domain.Configuration) error {
	principal := cfg.Principal.String()
	annualReturn := cfg.AnnualReturn.String()
	monthlyExpense := cfg.MonthlyExpense.String()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Principal saving amount").
				Value(&principal).
				Validate(validateAmount),
			huh.NewInput().
				Title("Annual return rate").
				Description("As a decimal, e.g. 0.10 for 10%").
				Value(&annualReturn).
				Validate(validateRate),
			huh.NewInput().
				Title("Monthly expense").
				Value(&monthlyExpense).
				Validate(validateAmount),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	cfg.Principal, _ = decimal.NewFromString(principal)
	cfg.AnnualReturn, _ = decimal.NewFromString(annualReturn)
	cfg.MonthlyExpense, _ = decimal.NewFromString(monthlyExpense)
	return nil
}

func validateAmount(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if d.IsNegative() {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func validateRate(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("enter a decimal rate, e.g. 0.10")
	}
	if d.LessThan(decimal.NewFromInt(-1)) {
		return fmt.Errorf("cannot be below -1 (a total loss)")
	}
	return nil
}
