package main

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// config holds the runner settings. Flags override whatever the YAML file
// set, which overrides the defaults.
type config struct {
	Model      string `koanf:"model"`
	MaxRetries int    `koanf:"max_retries"`
	PauseSecs  int    `koanf:"pause_seconds"`
	Verbose    bool   `koanf:"verbose"`
}

func defaultConfig() config {
	return config{
		Model:      "gemini-2.0-flash",
		MaxRetries: 3,
		PauseSecs:  1,
	}
}

// loadConfig overlays the YAML file at path onto the defaults. An empty
// path means defaults only.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config %s: %w", path, err)
	}
	return cfg, nil
}
