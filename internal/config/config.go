package config

import (
	"sync/atomic"
)

var configValue atomic.Value

func GetConfig() *Config {
	return configValue.Load().(*Config)
}

func SetConfig(cfg *Config) {
	configValue.Store(cfg)
}

type Config struct {
	Version     string          `mapstructure:"version"`
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Ozone       OzoneConfig     `mapstructure:"ozone"`
	Model       ModelConfig     `mapstructure:"model"`
	Logging     LoggingConfig   `mapstructure:"logging"`
	Telemetry   TelemetryConfig `mapstructure:"telemetry"`
}

type ServerConfig struct {
	Port         int    `mapstructure:"port"`
	Host         string `mapstructure:"host"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	IdleTimeout  int    `mapstructure:"idle_timeout"`
}

// OzoneConfig drives the live ozone lookup against the air-pollution API.
type OzoneConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Timeout int    `mapstructure:"timeout"`
	// UgM3PerDU converts the API's micrograms-per-cubic-meter reading
	// into Dobson Units.
	UgM3PerDU float64 `mapstructure:"ugm3_per_du"`
}

// ModelConfig holds the constants of the UV and risk-curve formulas.
// They live in configuration rather than as package globals so a single
// immutable struct owns every tunable of the simulation.
type ModelConfig struct {
	BaseUVIndex   float64 `mapstructure:"base_uv_index"`
	OzoneBaseDU   float64 `mapstructure:"ozone_base_du"`
	AltitudeBoost float64 `mapstructure:"altitude_boost"`
	CloudBlock    float64 `mapstructure:"cloud_block"`

	CurveDomainMinutes     int     `mapstructure:"curve_domain_minutes"`
	CurveStepMinutes       float64 `mapstructure:"curve_step_minutes"`
	CurveTransitionMinutes float64 `mapstructure:"curve_transition_minutes"`
}

type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type TelemetryConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
}

func NewDefaultConfig() *Config {
	return &Config{
		Version:     "1.0.0",
		Environment: "development",
		Server: ServerConfig{
			Port:         8080,
			Host:         "0.0.0.0",
			ReadTimeout:  30,
			WriteTimeout: 30,
			IdleTimeout:  60,
		},
		Ozone: OzoneConfig{
			Enabled:   true,
			BaseURL:   "https://api.openweathermap.org/data/2.5",
			APIKey:    "",
			Timeout:   10,
			UgM3PerDU: 2.1415,
		},
		Model: ModelConfig{
			BaseUVIndex:   8,
			OzoneBaseDU:   300,
			AltitudeBoost: 0.1,
			CloudBlock:    0.75,

			CurveDomainMinutes:     180,
			CurveStepMinutes:       1,
			CurveTransitionMinutes: 10,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			OutputPath: "",
		},
		Telemetry: TelemetryConfig{
			Enabled:  false,
			Endpoint: "tempo:4317",
		},
	}
}
