package calculator

import "distill/model"

const (
	rayleighSteps  = 50   // 整个投料量分 50 步
	rayleighCutoff = 0.95 // 蒸出 95% 后停止
)

var rayleighLayout = layout{
	{name: "percentDistilled", places: 1},
	{name: "residueComposition", places: 3},
	{name: "distillateComposition", places: 3},
}

// batchState is the still content during one simulation.
type batchState struct {
	w float64 // 釜液质量
	x float64 // 釜液易挥发组分摩尔分数
}

// next boils off step and returns the new state along with the vapor
// composition that left. Composition is clamped at zero.
func (s batchState) next(step, alpha float64) (batchState, float64) {
	y := Equilibrium(s.x, alpha)
	w := s.w - step
	x := (s.x*s.w - y*step) / w
	if x < 0 {
		x = 0
	}
	return batchState{w: w, x: x}, y
}

// GenerateRayleigh simulates a simple batch distillation with forward-Euler
// steps of the Rayleigh balance ln(F/W) = ∫ dx/(y−x).
//
// The run stops once 95% of the charge has been distilled. The update divides
// by the remaining mass, so going further would blow up as W approaches zero.
func GenerateRayleigh(p model.RayleighParams) (model.Series, error) {
	const op = "calculator.rayleigh"
	if err := requireFinite(op, arg{"alpha", p.Alpha}, arg{"initial_f", p.InitialF}, arg{"initial_xf", p.InitialXf}); err != nil {
		return nil, err
	}
	if p.Alpha <= 1 {
		return nil, invalidf(op, "alpha must be > 1, got %v", p.Alpha)
	}
	if p.InitialF <= 0 {
		return nil, invalidf(op, "initial_f must be > 0, got %v", p.InitialF)
	}
	if p.InitialXf <= 0 || p.InitialXf >= 1 {
		return nil, invalidf(op, "initial_xf must be in (0, 1), got %v", p.InitialXf)
	}

	step := p.InitialF / rayleighSteps
	if step <= 0 {
		return nil, invalidf(op, "initial_f %v is too small to step", p.InitialF)
	}
	state := batchState{w: p.InitialF, x: p.InitialXf}

	first, err := rayleighLayout.point(op, 0, state.x, Equilibrium(state.x, p.Alpha))
	if err != nil {
		return nil, err
	}
	series := model.Series{first}

	// 用步数计算已蒸出量, 避免累加误差
	for n := 0; float64(n)*step < rayleighCutoff*p.InitialF; n++ {
		var y float64
		state, y = state.next(step, p.Alpha)
		distilled := float64(n+1) * step
		point, err := rayleighLayout.point(op, distilled/p.InitialF*100, state.x, y)
		if err != nil {
			return nil, err
		}
		series = append(series, point)
	}
	return series, nil
}
