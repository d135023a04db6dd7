package calculator

// Equilibrium returns the vapor mole fraction in equilibrium with a liquid of
// mole fraction x at constant relative volatility alpha:
//
//	y = alpha·x / (1 + (alpha−1)·x)
//
// Callers must keep x in [0,1] and alpha > 0; separation needs alpha > 1.
// Nothing is checked here.
func Equilibrium(x, alpha float64) float64 {
	return alpha * x / (1 + (alpha-1)*x)
}
