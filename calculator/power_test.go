package calculator

import (
	"testing"

	"distill/model"
)

func TestPower(t *testing.T) {
	p := model.PowerParams{Power: 1200, CostPerKwh: 0.27, Duration: 90}
	series, err := GeneratePower(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(series) != 91 {
		t.Fatalf("len = %d, want 91", len(series))
	}
	expectFields(t, series, "time", "energy", "cost")

	for i, pt := range series {
		kwh := field(t, pt, "energy")
		if want := round(Energy(p.Power, float64(i)), 3); kwh != want {
			t.Fatalf("energy at %d = %v, want %v", i, kwh, want)
		}
		cost := field(t, pt, "cost")
		if want := round(Energy(p.Power, float64(i))*p.CostPerKwh, 3); cost != want {
			t.Fatalf("cost at %d = %v, want %v", i, cost, want)
		}
		if !near(cost, kwh*p.CostPerKwh, 0.001) {
			t.Fatalf("cost at %d = %v, energy·tariff = %v", i, cost, kwh*p.CostPerKwh)
		}
	}
	if got := field(t, series[60], "energy"); got != 1.2 {
		t.Fatalf("energy after one hour = %v, want 1.2", got)
	}
}

func TestPowerRejectsInvalid(t *testing.T) {
	cases := map[string]model.PowerParams{
		"negative power":  {Power: -1, CostPerKwh: 0.2},
		"negative tariff": {Power: 1000, CostPerKwh: -0.2},
		"duration < 0":    {Power: 1000, CostPerKwh: 0.2, Duration: -1},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := GeneratePower(p)
			expectInvalid(t, err)
		})
	}
}
