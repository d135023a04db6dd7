package calculator

import (
	"math"

	"distill/model"
)

const (
	// EnergyPerGram is the heat needed to bring one gram of water from tap
	// temperature to vapor, J/g.
	EnergyPerGram = 2594.0

	warmUpRate = 0.5 // 1/min
)

var flowLayout = layout{
	{name: "time", places: 0},
	{name: "flowRate", places: 2},    // mL/min
	{name: "totalVolume", places: 3}, // L
}

// MaxFlowRate is the steady distillate rate in mL/min for a heater of the
// given power (W) and efficiency, taking 1 g of distillate as 1 mL.
func MaxFlowRate(power, efficiency float64) float64 {
	return power * efficiency / EnergyPerGram * 60
}

// GenerateFlow models the distillate rate ramping up to MaxFlowRate and the
// volume collected so far.
//
// totalVolume at minute t is the sum of the rates of minutes 0..t-1 (a left
// Riemann sum). On the rising warm-up curve this reads low compared with the
// exact integral; the gap grows with the warm-up rate. Good enough for the
// shape of the curve, not for metering.
func GenerateFlow(p model.FlowParams) (model.Series, error) {
	const op = "calculator.flow"
	if err := requireFinite(op, arg{"power", p.Power}, arg{"efficiency", p.Efficiency}); err != nil {
		return nil, err
	}
	if p.Power <= 0 {
		return nil, invalidf(op, "power must be > 0, got %v", p.Power)
	}
	if p.Efficiency <= 0 || p.Efficiency > 1 {
		return nil, invalidf(op, "efficiency must be in (0, 1], got %v", p.Efficiency)
	}
	duration, err := resolveDuration(op, p.Duration)
	if err != nil {
		return nil, err
	}

	maxFlow := MaxFlowRate(p.Power, p.Efficiency)
	series := make(model.Series, 0, duration+1)
	totalVol := 0.0 // mL
	for t := 0; t <= duration; t++ {
		flow := 0.0
		if t > 0 {
			flow = maxFlow * (1 - math.Exp(-warmUpRate*float64(t)))
		}
		point, err := flowLayout.point(op, float64(t), flow, totalVol/1000)
		if err != nil {
			return nil, err
		}
		series = append(series, point)
		totalVol += flow
	}
	return series, nil
}
