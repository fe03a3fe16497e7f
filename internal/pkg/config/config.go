package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	OpenWBCfg *OpenWBConfig
	MqttCfg   *MqttConfig
	HTTPAddr  string
	LogLevel  string
}

type OpenWBConfig struct {
	Host         string
	DeviceName   string
	PollInterval time.Duration
}

// MqttConfig is populated from the environment only; broker credentials are
// deployment concerns and never appear on the command line.
type MqttConfig struct {
	Host     string `env:"MQTT_HOST"`
	Port     int    `env:"MQTT_PORT" envDefault:"1883"`
	Username string `env:"MQTT_USER"`
	Password string `env:"MQTT_PASS"`
}

// FromEnv builds a Config with environment-derived defaults. Flag values are
// layered on top by the caller.
func FromEnv() (*Config, error) {
	mqttCfg := &MqttConfig{}
	if err := env.Parse(mqttCfg); err != nil {
		return nil, err
	}
	return &Config{
		OpenWBCfg: &OpenWBConfig{},
		MqttCfg:   mqttCfg,
	}, nil
}
