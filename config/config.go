package config

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

const DefaultPath = "conf/config.ini"

type Config struct {
	Addr        string
	HistorySize int

	LogLevel string

	Still Still

	SubstanceFile string
}

// 蒸馏水机默认运行参数
type Still struct {
	Name string `json:"name"`

	HeaterPower float64 `json:"heater_power"` // 加热功率 W
	Efficiency  float64 `json:"efficiency"`   // 热效率
	CostPerKwh  float64 `json:"cost_per_kwh"` // 电价
	Duration    int     `json:"duration"`     // 模拟时长 min

	StartTemperature float64 `json:"start_temperature"`
	MaxTemperature   float64 `json:"max_temperature"`
	HeatingRate      float64 `json:"heating_rate"`

	InitialConductivity float64 `json:"initial_conductivity"`
	FinalConductivity   float64 `json:"final_conductivity"`
	CleanupRate         float64 `json:"cleanup_rate"`

	Alpha            float64 `json:"alpha"`
	RefluxRatio      float64 `json:"reflux_ratio"`
	DistillatePurity float64 `json:"distillate_purity"`

	ChargeMass      float64 `json:"charge_mass"`
	FeedComposition float64 `json:"feed_composition"`

	Substance           string  `json:"substance"`
	MinTemperature      float64 `json:"min_temperature"`
	MaxCurveTemperature float64 `json:"max_curve_temperature"`
}

// Load reads the ini file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		log.WithFields(log.Fields{
			"path": path,
		}).Warn("配置文件不存在, 使用默认配置")
		file = ini.Empty()
	}
	return loadCfg(file), nil
}

// Default is the configuration used when no file is given.
func Default() *Config {
	return loadCfg(ini.Empty())
}

func loadCfg(file *ini.File) *Config {
	server := file.Section("server")
	still := file.Section("still")
	return &Config{
		Addr:        server.Key("Addr").MustString(":9000"),
		HistorySize: server.Key("HistorySize").MustInt(16),

		LogLevel: file.Section("log").Key("Level").MustString("info"),

		Still: Still{
			Name:        still.Key("Name").MustString("still"),
			HeaterPower: still.Key("HeaterPower").MustFloat64(750),
			Efficiency:  still.Key("Efficiency").MustFloat64(0.85),
			CostPerKwh:  still.Key("CostPerKwh").MustFloat64(0.15),
			Duration:    still.Key("Duration").MustInt(60),

			StartTemperature: still.Key("StartTemperature").MustFloat64(20),
			MaxTemperature:   still.Key("MaxTemperature").MustFloat64(100),
			HeatingRate:      still.Key("HeatingRate").MustFloat64(0.1),

			InitialConductivity: still.Key("InitialConductivity").MustFloat64(50),
			FinalConductivity:   still.Key("FinalConductivity").MustFloat64(1.5),
			CleanupRate:         still.Key("CleanupRate").MustFloat64(0.08),

			Alpha:            still.Key("Alpha").MustFloat64(2.5),
			RefluxRatio:      still.Key("RefluxRatio").MustFloat64(2.0),
			DistillatePurity: still.Key("DistillatePurity").MustFloat64(0.95),

			ChargeMass:      still.Key("ChargeMass").MustFloat64(100),
			FeedComposition: still.Key("FeedComposition").MustFloat64(0.5),

			Substance:           still.Key("Substance").MustString("Water"),
			MinTemperature:      still.Key("MinTemperature").MustFloat64(20),
			MaxCurveTemperature: still.Key("MaxCurveTemperature").MustFloat64(100),
		},

		SubstanceFile: file.Section("substances").Key("File").String(),
	}
}

// SetupLogging applies the configured log level.
func (c *Config) SetupLogging() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(level)
	return nil
}
