package calculator

import (
	"math"

	"distill/model"
	"distill/substance"
)

// Antoine 曲线固定 50 个步长, 51 个点
const antoineSteps = 50

var antoineLayout = layout{
	{name: "temperature", places: 1},
	{name: "pressure", places: 2},
}

// VaporPressure returns the vapor pressure in mmHg at t °C,
// P = 10^(A − B/(T + C)). It fails when T + C is zero or the result is not finite.
func VaporPressure(t float64, s substance.Substance) (float64, error) {
	const op = "calculator.vapor_pressure"
	d := t + s.C
	if d == 0 {
		return 0, numericf(op, "%s: T + C = 0 at T = %v", s.Name, t)
	}
	p := math.Pow(10, s.A-s.B/d)
	if !finite(p) {
		return 0, numericf(op, "%s: pressure at T = %v is not finite", s.Name, t)
	}
	return p, nil
}

// AntoineCurve samples the vapor pressure of s over [minT, maxT]. The range
// must lie above the pole at T = −C: a range touching or crossing it is a
// numeric error, one entirely below it is an invalid parameter.
func AntoineCurve(s substance.Substance, minT, maxT float64) (model.Series, error) {
	const op = "calculator.antoine"
	if err := requireFinite(op, arg{"min_t", minT}, arg{"max_t", maxT}); err != nil {
		return nil, err
	}
	if minT >= maxT {
		return nil, invalidf(op, "min_t (%v) must be below max_t (%v)", minT, maxT)
	}
	if minT+s.C <= 0 {
		if maxT+s.C >= 0 {
			return nil, numericf(op, "%s: [%v, %v] reaches T + C = 0 at T = %v", s.Name, minT, maxT, -s.C)
		}
		return nil, invalidf(op, "%s: [%v, %v] lies below T = %v", s.Name, minT, maxT, -s.C)
	}

	step := (maxT - minT) / antoineSteps
	series := make(model.Series, 0, antoineSteps+1)
	for i := 0; i <= antoineSteps; i++ {
		t := minT + float64(i)*step
		if i == antoineSteps {
			t = maxT
		}
		p, err := VaporPressure(t, s)
		if err != nil {
			return nil, err
		}
		point, err := antoineLayout.point(op, t, p)
		if err != nil {
			return nil, err
		}
		series = append(series, point)
	}
	return series, nil
}

// GenerateAntoine resolves the substance in cat (the built-in catalog when
// nil) and samples its vapor-pressure curve.
func GenerateAntoine(cat *substance.Catalog, p model.AntoineParams) (model.Series, error) {
	if cat == nil {
		cat = substance.Default()
	}
	s, err := cat.Lookup(p.Substance)
	if err != nil {
		return nil, &OpError{Op: "calculator.antoine", Kind: KindNotFound, Err: err}
	}
	return AntoineCurve(s, p.MinT, p.MaxT)
}
