package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/lifeline/savings-calculator/internal/calculation"
	"github.com/lifeline/savings-calculator/internal/config"
	"github.com/lifeline/savings-calculator/internal/domain"
	"github.com/lifeline/savings-calculator/internal/output"
)

var (
	flagPrincipal      float64
	flagAnnualReturn   float64
	flagMonthlyExpense float64
	flagConfigFile     string
	flagFormat         string
	flagOutput         string
	flagInteractive    bool
	flagVerbose        bool
	flagNoColor        bool
)

var rootCmd = &cobra.Command{
	Use:   "lifeline",
	Short: "Project how long your savings will last",
	Long: "Simulate a principal balance under monthly compounding returns, monthly\n" +
		"expense withdrawals, and an annual charitable deduction, and compute the\n" +
		"break-even expense and return thresholds.",
	RunE: runProjection,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	defaults := domain.DefaultConfiguration()

	rootCmd.Flags().Float64VarP(&flagPrincipal, "principal", "p", defaults.Principal.InexactFloat64(), "Principal saving amount")
	rootCmd.Flags().Float64VarP(&flagAnnualReturn, "annual-return", "r", defaults.AnnualReturn.InexactFloat64(), "Annual return rate as a decimal, e.g. 0.10 for 10%")
	rootCmd.Flags().Float64VarP(&flagMonthlyExpense, "monthly-expense", "e", defaults.MonthlyExpense.InexactFloat64(), "Monthly expense")
	rootCmd.Flags().StringVarP(&flagConfigFile, "config", "c", "", "YAML configuration file")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "console", "Output format: console, csv, json")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write output to a file instead of stdout")
	rootCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Prompt for inputs interactively")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log per-year engine detail to stderr")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable styled terminal output")
}

// resolveConfiguration applies the input precedence:
// defaults < config file < explicit flags < interactive answers.
func resolveConfiguration(cmd *cobra.Command) (domain.Configuration, error) {
	cfg := domain.DefaultConfiguration()

	if flagConfigFile != "" {
		parser := config.NewInputParser()
		loaded, err := parser.LoadFromFile(flagConfigFile)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("principal") {
		cfg.Principal = decimal.NewFromFloat(flagPrincipal)
	}
	if cmd.Flags().Changed("annual-return") {
		cfg.AnnualReturn = decimal.NewFromFloat(flagAnnualReturn)
	}
	if cmd.Flags().Changed("monthly-expense") {
		cfg.MonthlyExpense = decimal.NewFromFloat(flagMonthlyExpense)
	}

	if flagInteractive {
		if err := promptForInputs(&cfg); err != nil {
			return cfg, err
		}
	}

	parser := config.NewInputParser()
	if err := parser.ValidateConfiguration(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runProjection(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfiguration(cmd)
	if err != nil {
		return err
	}

	engine := calculation.NewCalculationEngine()
	if flagVerbose {
		engine.SetLogger(newStderrLogger())
	}

	input := cfg.Input()
	result := engine.Project(input)

	breakEven, err := engine.AnalyzeBreakEven(input)
	if err != nil {
		// A zero principal makes the required-return formula undefined; the
		// projection itself is still valid, so render it without the section.
		fmt.Fprintf(os.Stderr, "warning: break-even analysis skipped: %v\n", err)
	}

	report := &domain.Report{
		Input:     input,
		Result:    result,
		BreakEven: breakEven,
	}

	format := flagFormat
	if format == "console" && flagNoColor {
		format = "console-plain"
	}
	return output.WriteFormatted(format, report, flagOutput)
}

// stderrLogger adapts the engine's Logger interface to stderr lines.
type stderrLogger struct{}

func newStderrLogger() stderrLogger { return stderrLogger{} }

func (stderrLogger) Debugf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "debug: "+format+"\n", args...)
}
func (stderrLogger) Infof(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "info: "+format+"\n", args...)
}
func (stderrLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warn: "+format+"\n", args...)
}
func (stderrLogger) Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
