package config

import (
	"fmt"
	"strings"

	"github.com/iwvelando/sip-forecast/pkg/finance"
)

// Scenario holds the parameters of one projection.
type Scenario struct {
	Name             string  `yaml:"name"`
	Active           bool    `yaml:"active"`
	Mode             string  `yaml:"mode,omitempty"` // sip (default) or lumpsum
	Amount           float64 `yaml:"amount"`
	AnnualReturnRate float64 `yaml:"annualReturnRate"`
	Years            int     `yaml:"years"`
}

// ProjectionMode resolves the scenario's mode. An empty mode means SIP.
func (s Scenario) ProjectionMode() (finance.Mode, error) {
	if strings.TrimSpace(s.Mode) == "" {
		return finance.ModeSIP, nil
	}
	return finance.ParseMode(s.Mode)
}

// Input converts the scenario into engine input.
func (s Scenario) Input() finance.ProjectionInput {
	return finance.ProjectionInput{
		Amount:            s.Amount,
		AnnualRatePercent: s.AnnualReturnRate,
		Years:             s.Years,
	}
}

// Label names the scenario for warnings and errors; index is its position in the file.
func (s Scenario) Label(index int) string {
	if name := strings.TrimSpace(s.Name); name != "" {
		return fmt.Sprintf("Scenario '%s'", name)
	}
	return fmt.Sprintf("Scenario %d", index+1)
}
