package still

import (
	"testing"

	"distill/calculator"
	"distill/config"
)

func TestStillImplementsDefaults(t *testing.T) {
	var _ calculator.Defaults = (*Still)(nil)
}

func TestDefaultsFollowConfig(t *testing.T) {
	cfg := config.Default().Still
	s := NewStill(cfg)

	flow := s.FlowParams()
	if flow.Power != cfg.HeaterPower || flow.Efficiency != cfg.Efficiency || flow.Duration != cfg.Duration {
		t.Fatalf("flow params = %+v", flow)
	}
	ray := s.RayleighParams()
	if ray.Alpha != cfg.Alpha || ray.InitialF != cfg.ChargeMass || ray.InitialXf != cfg.FeedComposition {
		t.Fatalf("rayleigh params = %+v", ray)
	}
	mc := s.McCabeThieleParams()
	if mc.XD != cfg.DistillatePurity || mc.RefluxRatio != cfg.RefluxRatio {
		t.Fatalf("mccabe params = %+v", mc)
	}

	// every default record must be accepted by its generator
	for _, name := range calculator.Models {
		if _, err := calculator.Generate(name, nil, s, nil); err != nil {
			t.Fatalf("%s from defaults: %v", name, err)
		}
	}
}

func TestSetters(t *testing.T) {
	s := NewStill(config.Default().Still)

	if err := s.SetHeaterPower(1200); err != nil {
		t.Fatal(err)
	}
	if got := s.PowerParams().Power; got != 1200 {
		t.Fatalf("power = %v, want 1200", got)
	}
	if err := s.SetCostPerKwh(0.3); err != nil {
		t.Fatal(err)
	}
	if err := s.SetDuration(30); err != nil {
		t.Fatal(err)
	}
	if got := s.HeatingParams().Duration; got != 30 {
		t.Fatalf("duration = %d, want 30", got)
	}

	if err := s.SetEfficiency(1.5); err == nil {
		t.Fatal("expected error for efficiency above 1")
	}
	if got := s.FlowParams().Efficiency; got != config.Default().Still.Efficiency {
		t.Fatalf("rejected efficiency was applied: %v", got)
	}
	if err := s.SetHeaterPower(-1); err == nil {
		t.Fatal("expected error for negative power")
	}
}

func TestSetConfig(t *testing.T) {
	s := NewStill(config.Default().Still)
	cfg := s.Config()
	cfg.Name = "lab"
	cfg.ChargeMass = 40
	if err := s.SetConfig(cfg); err != nil {
		t.Fatal(err)
	}
	if s.Config().Name != "lab" || s.RayleighParams().InitialF != 40 {
		t.Fatalf("config = %+v", s.Config())
	}

	cfg.Duration = -1
	if err := s.SetConfig(cfg); err == nil {
		t.Fatal("expected error for negative duration")
	}
}

func TestSetConfigRejectsUnusableDefaults(t *testing.T) {
	cases := []struct {
		name  string
		apply func(cfg *config.Still)
	}{
		{"zero power", func(cfg *config.Still) { cfg.HeaterPower = 0 }},
		{"negative heating rate", func(cfg *config.Still) { cfg.HeatingRate = -1 }},
		{"zero cleanup rate", func(cfg *config.Still) { cfg.CleanupRate = 0 }},
		{"alpha below 1", func(cfg *config.Still) { cfg.Alpha = 0.5 }},
		{"reflux at -1", func(cfg *config.Still) { cfg.RefluxRatio = -1 }},
		{"purity above 1", func(cfg *config.Still) { cfg.DistillatePurity = 1.2 }},
		{"empty charge", func(cfg *config.Still) { cfg.ChargeMass = 0 }},
		{"pure feed", func(cfg *config.Still) { cfg.FeedComposition = 1 }},
		{"duration too long", func(cfg *config.Still) { cfg.Duration = 2000 }},
		{"no substance", func(cfg *config.Still) { cfg.Substance = " " }},
		{"inverted curve range", func(cfg *config.Still) { cfg.MinTemperature, cfg.MaxCurveTemperature = 100, 20 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStill(config.Default().Still)
			cfg := s.Config()
			tc.apply(&cfg)
			if err := s.SetConfig(cfg); err == nil {
				t.Fatal("expected error")
			}
			if s.Config() != config.Default().Still {
				t.Fatalf("rejected config was applied: %+v", s.Config())
			}
		})
	}
}
