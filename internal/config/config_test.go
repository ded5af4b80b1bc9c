package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestGetDefault(t *testing.T) {
	cfg := GetDefault()
	if cfg.Scan.Hash != "none" {
		t.Errorf("default hash = %q", cfg.Scan.Hash)
	}
	if len(cfg.Export.Formats) != 1 || cfg.Export.Formats[0] != "csv" {
		t.Errorf("default formats = %v", cfg.Export.Formats)
	}
	if cfg.Log.Level != "INFO" || cfg.Log.TimeFormat == "" {
		t.Errorf("default log config = %+v", cfg.Log)
	}
}

func TestLoadConfig_appliesDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Scan.Root != "." || cfg.Export.Output != "." {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Log.Rotation.MaxBackups != 5 {
		t.Errorf("rotation = %+v", cfg.Log.Rotation)
	}
}

func TestLoadConfig_overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("scan.root", "/data")
	viper.Set("scan.hash", "both")
	viper.Set("export.formats", []string{"sqlite"})

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Scan.Root != "/data" || cfg.Scan.Hash != "both" {
		t.Errorf("scan = %+v", cfg.Scan)
	}
	if len(cfg.Export.Formats) != 1 || cfg.Export.Formats[0] != "sqlite" {
		t.Errorf("formats = %v", cfg.Export.Formats)
	}
}
