package input

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"growth-projector/domain"
)

// scenario is the on-disk shape of a single projection.
type scenario struct {
	Principal           float64   `yaml:"principal" toml:"principal"`
	AnnualRatePercent   float64   `yaml:"annual_rate_percent" toml:"annual_rate_percent"`
	CompoundsPerYear    compounds `yaml:"compounds_per_year" toml:"compounds_per_year"`
	Years               float64   `yaml:"years" toml:"years"`
	MonthlyContribution float64   `yaml:"monthly_contribution" toml:"monthly_contribution"`
}

// compounds accepts either a number or a frequency name.
type compounds int

func (c *compounds) UnmarshalYAML(node *yaml.Node) error {
	n, err := ParseCompounds(node.Value)
	if err != nil {
		return err
	}
	*c = compounds(n)
	return nil
}

func (c *compounds) UnmarshalTOML(v any) error {
	switch value := v.(type) {
	case int64:
		*c = compounds(value)
		return nil
	case string:
		n, err := ParseCompounds(value)
		if err != nil {
			return err
		}
		*c = compounds(n)
		return nil
	}
	return domain.NewInputError(domain.FieldCompoundsPerYear, v, "is not a whole number or frequency name")
}

// LoadScenario reads one projection from a YAML or TOML file, chosen by
// extension.
func LoadScenario(path string) (domain.ProjectionInput, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ProjectionInput{}, fmt.Errorf("read scenario: %w", err)
	}

	var s scenario
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &s); err != nil {
			return domain.ProjectionInput{}, fmt.Errorf("%w: YAML parse error: %v", domain.ErrInvalidInput, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(content), &s); err != nil {
			return domain.ProjectionInput{}, fmt.Errorf("%w: TOML parse error: %v", domain.ErrInvalidInput, err)
		}
	default:
		return domain.ProjectionInput{}, fmt.Errorf("%w: unsupported scenario format %q", domain.ErrInvalidInput, filepath.Ext(path))
	}

	return domain.NewProjectionInput(
		s.Principal,
		s.AnnualRatePercent,
		int(s.CompoundsPerYear),
		s.Years,
		s.MonthlyContribution,
	)
}
