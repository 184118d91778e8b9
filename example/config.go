package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"example.com/serenumexample/job"
)

// Config is loaded from a YAML file:
//
//	addr: ":8080"
//	default_status: todo
//	default_priority: normal
type Config struct {
	Addr            string       `yaml:"addr"`
	DefaultStatus   job.Status   `yaml:"default_status"`
	DefaultPriority job.Priority `yaml:"default_priority"`
}

func defaultConfig() Config {
	return Config{
		Addr:            ":8080",
		DefaultStatus:   job.StatusTodo,
		DefaultPriority: job.PriorityNormal,
	}
}

// loadConfig reads the config file at path. Enum fields are decoded by their
// generated UnmarshalText methods, so an unknown text fails here.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decoding config %s: %w", path, err)
	}
	return cfg, nil
}
