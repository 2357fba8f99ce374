package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/fit-estimator/internal/fitting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"chart": "women-shirt",
		"rig_file": "rig.json",
		"workers": 8,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "women-shirt", cfg.Chart)
	assert.Equal(t, "rig.json", cfg.RigFile)
	assert.Equal(t, 8, cfg.Workers)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvChart:   "women-shirt",
		EnvWorkers: "12",
	}
	cfg := Defaults()
	require.NoError(t, cfg.ApplyEnv(func(k string) string { return env[k] }))

	assert.Equal(t, "women-shirt", cfg.Chart)
	assert.Equal(t, 12, cfg.Workers)
	assert.Empty(t, cfg.ChartFile)
}

func TestApplyEnv_BadWorkers(t *testing.T) {
	cfg := Defaults()
	err := cfg.ApplyEnv(func(k string) string {
		if k == EnvWorkers {
			return "many"
		}
		return ""
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvWorkers)
}

func TestValidate_UnknownChart(t *testing.T) {
	cfg := &Config{Chart: "kids-pants"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown size chart category")
}

func TestValidate_NegativeWorkers(t *testing.T) {
	cfg := &Config{Workers: -1}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers")
}

func TestValidate_MissingFiles(t *testing.T) {
	cfg := &Config{ChartFile: "/nonexistent/chart.yaml"}
	assert.ErrorContains(t, cfg.Validate(), "chart file not found")

	cfg = &Config{RigFile: "/nonexistent/rig.json"}
	assert.ErrorContains(t, cfg.Validate(), "rig file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := Defaults()
	assert.NoError(t, cfg.Validate())
}

func TestDefaults_WorkersFollowBatchDefault(t *testing.T) {
	assert.Equal(t, fitting.DefaultWorkers, Defaults().Workers)

	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, fitting.DefaultWorkers, merged.Workers)
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{RigFile: "mesh.yaml"}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "men-shirt", merged.Chart)
	assert.Equal(t, "mesh.yaml", merged.RigFile)
	assert.Equal(t, fitting.DefaultWorkers, merged.Workers)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := &Config{Chart: "women-shirt", Workers: 2}
	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "women-shirt", merged.Chart)
	assert.Equal(t, 2, merged.Workers)
}

func TestResolveChart(t *testing.T) {
	cfg := &Config{}
	chart, err := cfg.ResolveChart()
	require.NoError(t, err)
	assert.Equal(t, "men-shirt", chart.Category())

	cfg = &Config{Chart: "men-shirt", ChartFile: filepath.Join("..", "..", "testdata", "valid", "chart_kids.yaml")}
	chart, err = cfg.ResolveChart()
	require.NoError(t, err)
	assert.Equal(t, "kids-shirt", chart.Category())
}
