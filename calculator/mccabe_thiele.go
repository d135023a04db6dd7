package calculator

import "distill/model"

const (
	mcCabeSteps = 50 // x 步长 0.02
	xTolerance  = 1e-9
)

var mcCabeLayout = layout{
	{name: "x", places: 2},
	{name: "yEq", places: 3},
	{name: "yOp", places: 3, nullable: true},
	{name: "xLine", places: 2},
}

// OperatingLine is the rectifying-section operating line at x.
func OperatingLine(x, r, xD float64) float64 {
	return r/(r+1)*x + xD/(r+1)
}

// GenerateMcCabeThiele samples the equilibrium curve, the diagonal and the
// rectifying operating line for x in [0, 1]. The operating line is only
// drawn up to the distillate composition; beyond it yOp is null.
func GenerateMcCabeThiele(p model.McCabeThieleParams) (model.Series, error) {
	const op = "calculator.mccabe_thiele"
	if err := requireFinite(op, arg{"alpha", p.Alpha}, arg{"reflux_ratio", p.RefluxRatio}, arg{"xd", p.XD}); err != nil {
		return nil, err
	}
	if p.Alpha <= 1 {
		return nil, invalidf(op, "alpha must be > 1, got %v", p.Alpha)
	}
	if p.RefluxRatio <= -1 {
		return nil, invalidf(op, "reflux_ratio must be > -1, got %v", p.RefluxRatio)
	}
	if p.XD <= 0 || p.XD > 1 {
		return nil, invalidf(op, "xd must be in (0, 1], got %v", p.XD)
	}

	series := make(model.Series, 0, mcCabeSteps+1)
	for i := 0; i <= mcCabeSteps; i++ {
		x := float64(i) / mcCabeSteps
		yOp := absent
		if x <= p.XD+xTolerance {
			yOp = OperatingLine(x, p.RefluxRatio, p.XD)
		}
		point, err := mcCabeLayout.point(op, x, Equilibrium(x, p.Alpha), yOp, x)
		if err != nil {
			return nil, err
		}
		series = append(series, point)
	}
	return series, nil
}
