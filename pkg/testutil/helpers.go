// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"

	"github.com/iwvelando/sip-forecast/internal/forecast"
	"github.com/iwvelando/sip-forecast/pkg/constants"
	"github.com/iwvelando/sip-forecast/pkg/mathutil"
)

// FindScenario finds a scenario by name in the results slice.
// Returns a pointer to the forecast if found, nil otherwise.
func FindScenario(results []forecast.Forecast, name string) *forecast.Forecast {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// AssertClose fails the test when actual differs from expected by more than
// the relative tolerance used for projection comparisons.
func AssertClose(t testing.TB, expected, actual float64) {
	t.Helper()
	if !mathutil.WithinRelativeTolerance(expected, actual, constants.RelativeTolerance) {
		t.Errorf("expected %v, got %v (relative tolerance %g)", expected, actual, constants.RelativeTolerance)
	}
}
