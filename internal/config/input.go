package config

import (
	"fmt"
	"os"

	"github.com/lifeline/savings-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config := domain.DefaultConfiguration()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Principal.LessThan(decimal.Zero) {
		return fmt.Errorf("principal cannot be negative")
	}
	if config.MonthlyExpense.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly expense cannot be negative")
	}
	// Allow losses down to a total wipeout but reject nonsense rates
	if config.AnnualReturn.LessThan(decimal.NewFromInt(-1)) {
		return fmt.Errorf("annual return cannot be less than -100%%")
	}
	if config.AnnualReturn.GreaterThan(decimal.NewFromInt(10)) {
		return fmt.Errorf("annual return above 1000%% is not supported")
	}
	return nil
}

// WriteExampleConfig writes an example configuration with the documented
// defaults to the given path.
func (ip *InputParser) WriteExampleConfig(filename string) error {
	config := domain.DefaultConfiguration()
	b, err := yaml.Marshal(&config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
