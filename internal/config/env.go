// Package config loads and validates the game tunables and the process
// settings that come from the environment.
package config

import "os"

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Environment keys shared by the binaries.
const (
	EnvConfigPath = "LOGASTROIDS_CONFIG"
	EnvScoresPath = "LOGASTROIDS_SCORES"
)

// LoadFromEnv loads the file named by flagPath, or by LOGASTROIDS_CONFIG when
// the flag is empty, and lets LOGASTROIDS_SCORES override the score path.
func LoadFromEnv(flagPath string) (Config, error) {
	if flagPath == "" {
		flagPath = GetEnv(EnvConfigPath, "")
	}
	cfg, err := Load(flagPath)
	if err != nil {
		return Config{}, err
	}
	cfg.Scores.Path = GetEnv(EnvScoresPath, cfg.Scores.Path)
	return cfg, nil
}
