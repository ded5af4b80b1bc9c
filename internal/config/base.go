package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type BaseConfig struct {
	Scan   ScanConfig   `mapstructure:"scan"   yaml:"scan"`
	Export ExportConfig `mapstructure:"export" yaml:"export"`
	Log    LogConfig    `mapstructure:"log"    yaml:"log"`
}

func LoadConfig() (*BaseConfig, error) {
	cfg := &BaseConfig{}

	setDefaults()

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}
