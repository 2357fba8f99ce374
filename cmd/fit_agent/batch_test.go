package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/fit-estimator/internal/fitting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBatch_YAML(t *testing.T) {
	resetBatchFlags()
	t.Cleanup(resetBatchFlags)

	batchInput = testdataPath("valid", "profiles.yaml")
	batchOutput = filepath.Join(t.TempDir(), "results.json")
	batchWorkers = 2

	cmd, stdout, _ := newTestCommand()
	require.NoError(t, runBatch(cmd, nil))
	assert.Contains(t, stdout.String(), "Processed 4 profiles (1 failed)")

	content, err := os.ReadFile(batchOutput)
	require.NoError(t, err)

	var items []fitting.BatchItem
	require.NoError(t, json.Unmarshal(content, &items))
	require.Len(t, items, 4)

	assert.Equal(t, "alice", items[0].ID)
	require.NotNil(t, items[0].Result)
	assert.Equal(t, "XXL", items[0].Result.Recommendation.Size)

	assert.Equal(t, "dave", items[3].ID)
	assert.Nil(t, items[3].Result)
	assert.Contains(t, items[3].Error, "weight")
}

func TestRunBatch_ChartFromFileOverriddenByFlag(t *testing.T) {
	resetBatchFlags()
	t.Cleanup(resetBatchFlags)

	dir := t.TempDir()
	batchInput = filepath.Join(dir, "in.json")
	batchOutput = filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(batchInput, []byte(`{
		"chart": "women-shirt",
		"profiles": [{"id": "x", "height": 165, "weight": 55, "archetype": "hourglass"}]
	}`), 0644))

	cmd, _, _ := newTestCommand()
	require.NoError(t, runBatch(cmd, nil))

	var items []fitting.BatchItem
	content, err := os.ReadFile(batchOutput)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(content, &items))
	assert.Equal(t, "women-shirt", items[0].Result.Chart)

	batchChart = "men-shirt"
	require.NoError(t, runBatch(cmd, nil))
	content, err = os.ReadFile(batchOutput)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(content, &items))
	assert.Equal(t, "men-shirt", items[0].Result.Chart)
}

func TestRunBatch_SchemaInvalidInput(t *testing.T) {
	resetBatchFlags()
	t.Cleanup(resetBatchFlags)

	dir := t.TempDir()
	batchInput = filepath.Join(dir, "in.json")
	batchOutput = filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(batchInput, []byte(`{"profiles": [{"height": 170}]}`), 0644))

	cmd, _, _ := newTestCommand()
	err := runBatch(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is invalid")
}

func TestRunBatch_MissingFile(t *testing.T) {
	resetBatchFlags()
	t.Cleanup(resetBatchFlags)

	batchInput = "nonexistent_profiles.json"
	batchOutput = filepath.Join(t.TempDir(), "out.json")

	cmd, _, _ := newTestCommand()
	err := runBatch(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read batch file")
}
