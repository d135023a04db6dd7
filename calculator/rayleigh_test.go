package calculator

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"distill/model"
)

func TestRayleighScenario(t *testing.T) {
	series, err := GenerateRayleigh(model.RayleighParams{Alpha: 3.0, InitialF: 100, InitialXf: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	expectFields(t, series, "percentDistilled", "residueComposition", "distillateComposition")
	if len(series) != 49 {
		t.Fatalf("len = %d, want 49", len(series))
	}

	first := series[0]
	if field(t, first, "percentDistilled") != 0 || field(t, first, "residueComposition") != 0.5 {
		t.Fatal("first point must be the undistilled charge")
	}
	if got := field(t, first, "distillateComposition"); got != 0.75 {
		t.Fatalf("first distillate = %v, want 0.75", got)
	}

	for i := 1; i < len(series); i++ {
		prev, cur := field(t, series[i-1], "residueComposition"), field(t, series[i], "residueComposition")
		if cur >= prev {
			t.Fatalf("residue did not decrease at %d: %v -> %v", i, prev, cur)
		}
	}
	last := field(t, series[len(series)-1], "percentDistilled")
	if last >= 100 || last < 95 {
		t.Fatalf("last percent distilled = %v, want in [95, 100)", last)
	}
}

func TestRayleighProperties(t *testing.T) {
	cases := []model.RayleighParams{
		{Alpha: 1.05, InitialF: 100, InitialXf: 0.5},
		{Alpha: 2.5, InitialF: 1, InitialXf: 0.1},
		{Alpha: 8, InitialF: 250, InitialXf: 0.9},
		{Alpha: 50, InitialF: 100, InitialXf: 0.05},
		{Alpha: 1e6, InitialF: 3, InitialXf: 0.999},
	}
	for _, p := range cases {
		series, err := GenerateRayleigh(p)
		if err != nil {
			t.Fatalf("%+v: %v", p, err)
		}
		if len(series) == 0 || len(series) > 51 {
			t.Fatalf("%+v: len = %d", p, len(series))
		}
		for i, pt := range series {
			x := field(t, pt, "residueComposition")
			if x < 0 || math.IsNaN(x) {
				t.Fatalf("%+v: residue %v at %d", p, x, i)
			}
			if i > 0 && x > field(t, series[i-1], "residueComposition") {
				t.Fatalf("%+v: residue increased at %d", p, i)
			}
		}
	}
}

func TestRayleighClampsAtZero(t *testing.T) {
	series, err := GenerateRayleigh(model.RayleighParams{Alpha: 50, InitialF: 100, InitialXf: 0.05})
	if err != nil {
		t.Fatal(err)
	}
	hitZero := false
	for _, pt := range series {
		x := field(t, pt, "residueComposition")
		if hitZero && x != 0 {
			t.Fatalf("residue left zero after depletion: %v", x)
		}
		if x == 0 {
			hitZero = true
		}
	}
	if !hitZero {
		t.Fatal("expected the residue to deplete to zero")
	}
}

func TestRayleighRejectsInvalid(t *testing.T) {
	cases := map[string]model.RayleighParams{
		"alpha one":   {Alpha: 1, InitialF: 100, InitialXf: 0.5},
		"alpha below": {Alpha: 0.5, InitialF: 100, InitialXf: 0.5},
		"no charge":   {Alpha: 2, InitialF: 0, InitialXf: 0.5},
		"negative F":  {Alpha: 2, InitialF: -10, InitialXf: 0.5},
		"xf zero":     {Alpha: 2, InitialF: 100, InitialXf: 0},
		"xf one":      {Alpha: 2, InitialF: 100, InitialXf: 1},
		"nan alpha":   {Alpha: math.NaN(), InitialF: 100, InitialXf: 0.5},
		"inf charge":  {Alpha: 2, InitialF: math.Inf(1), InitialXf: 0.5},
		"denormal":    {Alpha: 2, InitialF: 5e-324, InitialXf: 0.5},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := GenerateRayleigh(p)
			expectInvalid(t, err)
		})
	}
}

func TestGeneratorsAreDeterministic(t *testing.T) {
	run := func() []byte {
		s, err := GenerateRayleigh(model.RayleighParams{Alpha: 2.2, InitialF: 80, InitialXf: 0.4})
		if err != nil {
			t.Fatal(err)
		}
		b, err := json.Marshal(s)
		if err != nil {
			t.Fatal(err)
		}
		return b
	}
	if a, b := run(), run(); !bytes.Equal(a, b) {
		t.Fatalf("two runs differ:\n%s\n%s", a, b)
	}
}
