package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel = "NUMGRID_LOG_LEVEL"
	EnvLocale   = "NUMGRID_LOCALE"
	EnvSeed     = "NUMGRID_SEED"
)

// LoadDotEnv loads a .env file from the working directory if there is one.
// Variables already set in the environment win.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// ApplyEnv overrides config fields from the environment.
// Unparseable values are left for Validate or ignored.
func ApplyEnv(c *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLocale); v != "" {
		c.Locale = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = seed
		}
	}
}
