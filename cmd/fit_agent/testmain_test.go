package main

import (
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/jonathan/fit-estimator/internal/config"
)

// TestMain loads .env like main does, then clears the fit_agent overrides so
// command tests only see the flags and files they set themselves.
func TestMain(m *testing.M) {
	_ = godotenv.Load()

	for _, key := range []string{config.EnvChart, config.EnvChartFile, config.EnvWorkers} {
		_ = os.Unsetenv(key)
	}

	os.Exit(m.Run())
}
