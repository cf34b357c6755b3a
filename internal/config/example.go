package config

import (
	"fmt"
	"io"

	"github.com/iwvelando/sip-forecast/pkg/constants"
	"gopkg.in/yaml.v3"
)

// ExampleConfiguration returns a configuration covering both projection modes.
func ExampleConfiguration() Configuration {
	return Configuration{
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Output:  OutputConfig{Format: constants.OutputFormatPretty},
		Scenarios: []Scenario{
			{
				Name:             "monthly sip",
				Active:           true,
				Mode:             constants.ModeSIP,
				Amount:           constants.DefaultSIPAmount,
				AnnualReturnRate: constants.DefaultAnnualReturnRate,
				Years:            constants.DefaultYears,
			},
			{
				Name:             "one-time investment",
				Active:           true,
				Mode:             constants.ModeLumpsum,
				Amount:           constants.DefaultLumpsumAmount,
				AnnualReturnRate: constants.DefaultAnnualReturnRate,
				Years:            constants.DefaultYears,
			},
			{
				Name:             "conservative sip",
				Active:           false,
				Mode:             constants.ModeSIP,
				Amount:           10000,
				AnnualReturnRate: 7,
				Years:            20,
			},
		},
	}
}

// WriteYAML serializes the configuration in the format LoadConfiguration reads.
func (c Configuration) WriteYAML(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	return encoder.Close()
}
