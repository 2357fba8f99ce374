package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunArchetypes_Table(t *testing.T) {
	archetypesJSON = false
	cmd, stdout, _ := newTestCommand()
	require.NoError(t, runArchetypes(cmd, nil))

	assert.Contains(t, stdout.String(), "inverted-triangle")
	assert.Contains(t, stdout.String(), "hourglass")
}

func TestRunArchetypes_JSON(t *testing.T) {
	archetypesJSON = true
	t.Cleanup(func() { archetypesJSON = false })

	cmd, stdout, _ := newTestCommand()
	require.NoError(t, runArchetypes(cmd, nil))

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	require.Len(t, out, 6)
	assert.Equal(t, "inverted-triangle", out[0]["key"])
}

func TestRunCharts_AllBuiltins(t *testing.T) {
	chartsName, chartsFile, chartsJSON = "", "", true
	t.Cleanup(func() { chartsName, chartsFile, chartsJSON = "", "", false })

	cmd, stdout, _ := newTestCommand()
	require.NoError(t, runCharts(cmd, nil))

	var out []struct {
		Category string `json:"category"`
		Sizes    []struct {
			Label string `json:"label"`
		} `json:"sizes"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "men-shirt", out[0].Category)
	assert.Equal(t, "XS", out[0].Sizes[0].Label)
	assert.Equal(t, "XXL", out[0].Sizes[5].Label)
	assert.Equal(t, "women-shirt", out[1].Category)
}

func TestRunCharts_File(t *testing.T) {
	chartsName, chartsFile, chartsJSON = "", testdataPath("valid", "chart_kids.yaml"), false
	t.Cleanup(func() { chartsName, chartsFile, chartsJSON = "", "", false })

	cmd, stdout, _ := newTestCommand()
	require.NoError(t, runCharts(cmd, nil))
	assert.Contains(t, stdout.String(), "SIZE CHART: kids-shirt")
}

func TestRunCharts_InvalidFile(t *testing.T) {
	chartsName, chartsFile, chartsJSON = "", testdataPath("invalid", "chart_negative.json"), false
	t.Cleanup(func() { chartsName, chartsFile, chartsJSON = "", "", false })

	cmd, _, _ := newTestCommand()
	err := runCharts(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load chart")
}

func TestRunCharts_UnknownBuiltin(t *testing.T) {
	chartsName, chartsFile, chartsJSON = "socks", "", false
	t.Cleanup(func() { chartsName, chartsFile, chartsJSON = "", "", false })

	cmd, _, _ := newTestCommand()
	assert.Error(t, runCharts(cmd, nil))
}
