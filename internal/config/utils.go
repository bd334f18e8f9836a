package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

func Load(logger *log.Logger) *Config {
	cfg := &Config{
		WorkspaceRoot: ".",
		Font:          DefaultFont,
		JPEGQuality:   DefaultJPEGQuality,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		fileCfg, err := fromFile(path, cfg)
		if err != nil {
			logger.Fatalf("failed to load config file: %v", err)
		}
		cfg = fileCfg
	}

	// Only the location is taken from the environment; the image itself is
	// fixed unless a config file says otherwise.
	cfg.WorkspaceRoot = getEnv(logger, "WORKSPACE_ROOT", cfg.WorkspaceRoot, parseString)
	cfg.JPEGQuality = clampQuality(logger, cfg.JPEGQuality)

	return cfg
}

// fromFile overlays the keys present in the YAML file on top of defaults.
func fromFile(path string, defaults *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := *defaults
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func getEnv[T any](logger *log.Logger, key string, defaultValue T, parser func(string) (T, error)) T {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}

	parsed, err := parser(val)
	if err != nil {
		logger.Printf("[WARN]: invalid value for %s (%s). Using default: %v\n", key, val, defaultValue)
		return defaultValue
	}

	return parsed
}

func clampQuality(logger *log.Logger, q int) int {
	if q < 1 || q > 100 {
		logger.Printf("[WARN]: jpeg quality %d out of range. Using default: %d\n", q, DefaultJPEGQuality)
		return DefaultJPEGQuality
	}
	return q
}

func parseString(val string) (string, error) {
	return val, nil
}
