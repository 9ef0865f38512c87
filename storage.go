package main

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type Config struct {
	Theme string `json:"theme"`
	Ghost bool   `json:"ghost"`
	Scale int    `json:"scale"`
}

func defaultConfig() Config {
	return Config{
		Theme: themes[0].Name,
		Ghost: true,
		Scale: 1,
	}
}

// loadConfig reads the saved config, falling back to defaults when the
// file is missing or the directory is unavailable.
func loadConfig() (Config, error) {
	config := defaultConfig()
	path, err := configPath()
	if err != nil {
		return config, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config, nil
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return defaultConfig(), err
	}
	config.Scale = clampScale(config.Scale)
	return config, nil
}

func saveConfig(config Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tetris-wasm", "config.json"), nil
}
