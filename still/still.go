package still

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"distill/calculator"
	"distill/config"
	"distill/model"
)

// 蒸馏水机规格 + 运行参数配置

// Still holds the operating configuration of one distillation unit and hands
// out default parameter records for the generators. It is safe for
// concurrent use.
type Still struct {
	mu  sync.RWMutex
	cfg config.Still
}

func NewStill(cfg config.Still) *Still {
	return &Still{cfg: cfg}
}

func (s *Still) Config() config.Still {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// SetConfig replaces the whole operating configuration.
func (s *Still) SetConfig(cfg config.Still) error {
	if err := validate(cfg); err != nil {
		return err
	}
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	log.WithFields(log.Fields{
		"Name":        cfg.Name,
		"HeaterPower": cfg.HeaterPower,
		"Efficiency":  cfg.Efficiency,
		"CostPerKwh":  cfg.CostPerKwh,
		"Duration":    cfg.Duration,
		"Alpha":       cfg.Alpha,
		"RefluxRatio": cfg.RefluxRatio,
		"ChargeMass":  cfg.ChargeMass,
	}).Info("设置运行参数")
	return nil
}

func (s *Still) update(field string, value interface{}, f func(cfg *config.Still)) error {
	s.mu.Lock()
	next := s.cfg
	f(&next)
	if err := validate(next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.cfg = next
	s.mu.Unlock()
	log.WithFields(log.Fields{
		field: value,
	}).Info("设置运行参数")
	return nil
}

// 运行参数单独设置
func (s *Still) SetHeaterPower(power float64) error {
	return s.update("HeaterPower", power, func(cfg *config.Still) { cfg.HeaterPower = power })
}

func (s *Still) SetEfficiency(efficiency float64) error {
	return s.update("Efficiency", efficiency, func(cfg *config.Still) { cfg.Efficiency = efficiency })
}

func (s *Still) SetCostPerKwh(cost float64) error {
	return s.update("CostPerKwh", cost, func(cfg *config.Still) { cfg.CostPerKwh = cost })
}

func (s *Still) SetDuration(minutes int) error {
	return s.update("Duration", minutes, func(cfg *config.Still) { cfg.Duration = minutes })
}

// validate accepts a configuration only if every model can be generated
// from it. The Antoine curve is checked on its range alone since the
// substance is resolved against the caller's catalog.
func validate(cfg config.Still) error {
	switch {
	case cfg.HeaterPower <= 0:
		return fmt.Errorf("heater power must be > 0, got %v", cfg.HeaterPower)
	case cfg.Efficiency <= 0 || cfg.Efficiency > 1:
		return fmt.Errorf("efficiency must be in (0, 1], got %v", cfg.Efficiency)
	case cfg.CostPerKwh < 0:
		return fmt.Errorf("cost per kWh must be >= 0, got %v", cfg.CostPerKwh)
	case cfg.Duration < 0:
		return fmt.Errorf("duration must be >= 0, got %d", cfg.Duration)
	case strings.TrimSpace(cfg.Substance) == "":
		return errors.New("substance must not be empty")
	case !(cfg.MinTemperature < cfg.MaxCurveTemperature):
		return fmt.Errorf("min temperature (%v) must be below max curve temperature (%v)",
			cfg.MinTemperature, cfg.MaxCurveTemperature)
	}

	trial := &Still{cfg: cfg}
	for _, name := range calculator.Models {
		if name == calculator.ModelAntoine {
			continue
		}
		if _, err := calculator.Generate(name, nil, trial, nil); err != nil {
			return err
		}
	}
	return nil
}

func (s *Still) AntoineParams() model.AntoineParams {
	cfg := s.Config()
	return model.AntoineParams{
		Substance: cfg.Substance,
		MinT:      cfg.MinTemperature,
		MaxT:      cfg.MaxCurveTemperature,
	}
}

func (s *Still) McCabeThieleParams() model.McCabeThieleParams {
	cfg := s.Config()
	return model.McCabeThieleParams{
		Alpha:       cfg.Alpha,
		RefluxRatio: cfg.RefluxRatio,
		XD:          cfg.DistillatePurity,
	}
}

func (s *Still) HeatingParams() model.HeatingParams {
	cfg := s.Config()
	return model.HeatingParams{
		T0:       cfg.StartTemperature,
		TMax:     cfg.MaxTemperature,
		K:        cfg.HeatingRate,
		Duration: cfg.Duration,
	}
}

func (s *Still) ConductivityParams() model.ConductivityParams {
	cfg := s.Config()
	return model.ConductivityParams{
		Initial:  cfg.InitialConductivity,
		Final:    cfg.FinalConductivity,
		K:        cfg.CleanupRate,
		Duration: cfg.Duration,
	}
}

func (s *Still) FlowParams() model.FlowParams {
	cfg := s.Config()
	return model.FlowParams{
		Power:      cfg.HeaterPower,
		Efficiency: cfg.Efficiency,
		Duration:   cfg.Duration,
	}
}

func (s *Still) PowerParams() model.PowerParams {
	cfg := s.Config()
	return model.PowerParams{
		Power:      cfg.HeaterPower,
		CostPerKwh: cfg.CostPerKwh,
		Duration:   cfg.Duration,
	}
}

func (s *Still) RayleighParams() model.RayleighParams {
	cfg := s.Config()
	return model.RayleighParams{
		Alpha:     cfg.Alpha,
		InitialF:  cfg.ChargeMass,
		InitialXf: cfg.FeedComposition,
	}
}
