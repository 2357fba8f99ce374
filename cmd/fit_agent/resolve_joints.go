package main

import (
	"fmt"

	"github.com/jonathan/fit-estimator/internal/archetypes"
	"github.com/jonathan/fit-estimator/internal/estimation"
	"github.com/jonathan/fit-estimator/internal/joints"
	"github.com/jonathan/fit-estimator/internal/observability"
	"github.com/jonathan/fit-estimator/internal/profile"
	"github.com/jonathan/fit-estimator/internal/types"
	"github.com/spf13/cobra"
)

var resolveJointsCmd = &cobra.Command{
	Use:   "resolve-joints",
	Short: "Resolve per-joint mesh scales for an archetype",
	Long:  "Maps an archetype's scale vector onto the garment rig joints. With --height and --weight the uniform model scale is included; with --rig the scales are applied to the mesh joint list and missing joints are reported.",
	RunE:  runResolveJoints,
}

var (
	resolveArchetype string
	resolveHeight    float64
	resolveWeight    float64
	resolveRig       string
	resolveOutput    string
	resolveVerbose   bool
)

// jointsOutput is the JSON written by resolve-joints.
type jointsOutput struct {
	Archetype   archetypes.Key        `json:"archetype"`
	Deformation types.DeformationPlan `json:"deformation"`
	Rig         *types.ApplyReport    `json:"rig,omitempty"`
	Pose        types.JointScaleMap   `json:"pose,omitempty"`
}

func init() {
	resolveJointsCmd.Flags().StringVarP(&resolveArchetype, "archetype", "a", "", "Body-shape archetype key (required)")
	resolveJointsCmd.Flags().Float64Var(&resolveHeight, "height", 0, "Height in cm; requires --weight")
	resolveJointsCmd.Flags().Float64Var(&resolveWeight, "weight", 0, "Weight in kg; requires --height")
	resolveJointsCmd.Flags().StringVar(&resolveRig, "rig", "", "Path to the garment mesh joint list (JSON or YAML)")
	resolveJointsCmd.Flags().StringVarP(&resolveOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	resolveJointsCmd.Flags().BoolVarP(&resolveVerbose, "verbose", "v", false, "Print human-readable summaries")

	if err := resolveJointsCmd.MarkFlagRequired("archetype"); err != nil {
		panic(fmt.Sprintf("failed to mark archetype flag as required: %v", err))
	}

	rootCmd.AddCommand(resolveJointsCmd)
}

func runResolveJoints(cmd *cobra.Command, _ []string) error {
	key, err := archetypes.Parse(resolveArchetype)
	if err != nil {
		return err
	}
	vector, err := archetypes.Lookup(key)
	if err != nil {
		return err
	}

	// Model scale is neutral unless a body is given
	modelScale := 1.0
	if resolveHeight != 0 || resolveWeight != 0 {
		p, err := profile.New(resolveHeight, resolveWeight, key)
		if err != nil {
			return fmt.Errorf("failed to build profile: %w", err)
		}
		modelScale = estimation.ComputeOverallScale(p.Height, p.Weight)
	}

	out := jointsOutput{
		Archetype:   key,
		Deformation: joints.PlanDeformation(vector, modelScale),
	}

	if resolveRig != "" {
		rig, err := joints.LoadRig(resolveRig)
		if err != nil {
			return fmt.Errorf("failed to load rig: %w", err)
		}
		out.Rig = joints.Apply(rig, out.Deformation.Joints, commandLogger(cmd))
		out.Pose = rigPose(rig)
	}

	if resolveVerbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintDeformation(out.Deformation)
		printer.PrintApplyReport(out.Rig)
	}

	return writeJSON(cmd, resolveOutput, out)
}

// rigPose is the scale of every rig joint after Apply, including joints no binding touches.
func rigPose(rig *joints.Rig) types.JointScaleMap {
	pose := make(types.JointScaleMap)
	for _, name := range rig.Joints() {
		if scale, ok := rig.Scale(name); ok {
			pose[name] = scale
		}
	}
	return pose
}
