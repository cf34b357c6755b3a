// Package forecast evaluates configured scenarios through the projection
// engine.
package forecast

import (
	"context"
	"fmt"

	"github.com/iwvelando/sip-forecast/internal/config"
	"github.com/iwvelando/sip-forecast/pkg/finance"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Forecast holds the projection computed for a specific scenario.
type Forecast struct {
	Name   string                   `json:"name" yaml:"name"`
	Mode   finance.Mode             `json:"mode" yaml:"mode"`
	Input  finance.ProjectionInput  `json:"input" yaml:"input"`
	Result finance.ProjectionResult `json:"result" yaml:"result"`
}

// Project computes a single named projection.
func Project(name string, mode finance.Mode, in finance.ProjectionInput) (Forecast, error) {
	result, err := finance.Compute(mode, in)
	if err != nil {
		return Forecast{}, err
	}
	return Forecast{Name: name, Mode: mode, Input: in, Result: result}, nil
}

// GetForecast processes the Forecasts for all active Scenarios. Scenarios are
// evaluated concurrently; results keep the order of the configuration.
func GetForecast(ctx context.Context, logger *zap.Logger, conf config.Configuration) ([]Forecast, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	type job struct {
		index    int
		scenario config.Scenario
	}

	var jobs []job
	for i, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "forecast.GetForecast"),
			)
			continue
		}
		jobs = append(jobs, job{index: i, scenario: scenario})
	}

	results := make([]Forecast, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	for slot, j := range jobs {
		slot, j := slot, j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			label := j.scenario.Label(j.index)
			mode, err := j.scenario.ProjectionMode()
			if err != nil {
				return fmt.Errorf("%s: %w", label, err)
			}

			result, err := Project(j.scenario.Name, mode, j.scenario.Input())
			if err != nil {
				return fmt.Errorf("%s: %w", label, err)
			}

			logger.Debug("scenario projected",
				zap.String("op", "forecast.GetForecast"),
				zap.String("scenario", j.scenario.Name),
				zap.String("mode", string(mode)),
				zap.Float64("totalValue", result.Result.TotalValue),
			)
			results[slot] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
