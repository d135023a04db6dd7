package calculator

import "distill/model"

var powerLayout = layout{
	{name: "time", places: 0},
	{name: "energy", places: 3}, // kWh
	{name: "cost", places: 3},
}

// Energy returns the kWh drawn by a constant load of power W after minutes.
func Energy(power float64, minutes float64) float64 {
	return power * (minutes / 60) / 1000
}

// GeneratePower reports energy use and its cost minute by minute. Each point
// is computed from zero; nothing is carried between points.
func GeneratePower(p model.PowerParams) (model.Series, error) {
	const op = "calculator.power"
	if err := requireFinite(op, arg{"power", p.Power}, arg{"cost_per_kwh", p.CostPerKwh}); err != nil {
		return nil, err
	}
	if p.Power < 0 {
		return nil, invalidf(op, "power must be >= 0, got %v", p.Power)
	}
	if p.CostPerKwh < 0 {
		return nil, invalidf(op, "cost_per_kwh must be >= 0, got %v", p.CostPerKwh)
	}
	duration, err := resolveDuration(op, p.Duration)
	if err != nil {
		return nil, err
	}

	series := make(model.Series, 0, duration+1)
	for t := 0; t <= duration; t++ {
		kwh := Energy(p.Power, float64(t))
		point, err := powerLayout.point(op, float64(t), kwh, kwh*p.CostPerKwh)
		if err != nil {
			return nil, err
		}
		series = append(series, point)
	}
	return series, nil
}
