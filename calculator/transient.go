package calculator

import (
	"math"

	"distill/model"
)

// Relaxation is the first-order law value(t) = target + (initial − target)·e^(−k·t).
func Relaxation(initial, target, k, t float64) float64 {
	return target + (initial-target)*math.Exp(-k*t)
}

// firstOrder emits one point per whole minute from 0 to duration.
func firstOrder(op, field string, initial, target, k float64, duration int) (model.Series, error) {
	if err := requireFinite(op, arg{"initial", initial}, arg{"target", target}, arg{"k", k}); err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, invalidf(op, "k must be > 0, got %v", k)
	}
	duration, err := resolveDuration(op, duration)
	if err != nil {
		return nil, err
	}

	l := layout{
		{name: "time", places: 0},
		{name: field, places: 2},
	}
	series := make(model.Series, 0, duration+1)
	for t := 0; t <= duration; t++ {
		point, err := l.point(op, float64(t), Relaxation(initial, target, k, float64(t)))
		if err != nil {
			return nil, err
		}
		series = append(series, point)
	}
	return series, nil
}

// GenerateHeating models the still warming from T0 towards TMax.
func GenerateHeating(p model.HeatingParams) (model.Series, error) {
	return firstOrder("calculator.heating", "temperature", p.T0, p.TMax, p.K, p.Duration)
}

// GenerateConductivity models the distillate conductivity settling from
// Initial to Final as the system flushes.
func GenerateConductivity(p model.ConductivityParams) (model.Series, error) {
	return firstOrder("calculator.conductivity", "conductivity", p.Initial, p.Final, p.K, p.Duration)
}
