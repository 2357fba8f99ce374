package main

import (
	"bytes"
	"path/filepath"

	"github.com/spf13/cobra"
)

// newTestCommand returns a bare command whose stdout and stderr are captured.
func newTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	return cmd, &stdout, &stderr
}

// testdataPath resolves a file under the repository testdata directory.
func testdataPath(parts ...string) string {
	return filepath.Join(append([]string{"..", "..", "testdata"}, parts...)...)
}

func resetEstimateFlags() {
	estimateHeight = 0
	estimateWeight = 0
	estimateArchetype = ""
	estimateChart = ""
	estimateChartFile = ""
	estimateRig = ""
	estimateConfig = ""
	estimateOutput = ""
	estimateVerbose = false
}

func resetResolveFlags() {
	resolveArchetype = ""
	resolveHeight = 0
	resolveWeight = 0
	resolveRig = ""
	resolveOutput = ""
	resolveVerbose = false
}

func resetBatchFlags() {
	batchInput = ""
	batchOutput = ""
	batchChart = ""
	batchConfig = ""
	batchWorkers = 0
}
