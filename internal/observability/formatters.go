// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/fit-estimator/internal/archetypes"
	"github.com/jonathan/fit-estimator/internal/fitting"
	"github.com/jonathan/fit-estimator/internal/joints"
	"github.com/jonathan/fit-estimator/internal/sizechart"
	"github.com/jonathan/fit-estimator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// fmt pads by rune count, so wrapped lines stay aligned with multi-byte glyphs.
		for _, part := range wrapLine(line, boxWidth-4) {
			fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, part)
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// wrapLine splits line on spaces into pieces of at most width runes.
// Continuation lines are indented to the original line's indentation.
// A single word longer than width is split mid-word.
func wrapLine(line string, width int) []string {
	if utf8.RuneCountInString(line) <= width {
		return []string{line}
	}

	indent := line[:len(line)-len(strings.TrimLeft(line, " "))]
	if len(indent) >= width/2 {
		indent = ""
	}
	var out []string
	current := indent
	for _, word := range strings.Fields(line) {
		for utf8.RuneCountInString(word) > width-len(indent) {
			if strings.TrimSpace(current) != "" {
				out = append(out, current)
			}
			runes := []rune(word)
			cut := width - len(indent)
			out = append(out, indent+string(runes[:cut]))
			word = string(runes[cut:])
			current = indent
		}
		switch {
		case strings.TrimSpace(current) == "":
			current = indent + word
		case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) <= width:
			current += " " + word
		default:
			out = append(out, current)
			current = indent + word
		}
	}
	if strings.TrimSpace(current) != "" {
		out = append(out, current)
	}
	return out
}

// PrintFitResult outputs the profile, estimated measurements and recommendation of a session.
func (p *Printer) PrintFitResult(result *fitting.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Session:   %s\n", result.SessionID))
	sb.WriteString(fmt.Sprintf("Height:    %.1f cm\n", result.Profile.Height))
	sb.WriteString(fmt.Sprintf("Weight:    %.1f kg\n", result.Profile.Weight))
	sb.WriteString(fmt.Sprintf("Archetype: %s (%s)\n", result.ArchetypeName, result.Profile.Archetype))
	sb.WriteString(fmt.Sprintf("Scale:     %.4f", result.OverallScale))
	p.printBox("FITTING PROFILE", sb.String())

	p.PrintMeasurements(result.Measurements)
	p.PrintDeformation(result.Deformation)
	p.PrintRecommendation(result.Chart, result.Recommendation)
	if result.Rig != nil {
		p.PrintApplyReport(result.Rig)
	}
}

// PrintMeasurements outputs estimated body measurements.
func (p *Printer) PrintMeasurements(m types.GarmentMeasurement) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Shoulder:   %6.1f cm\n", m.Shoulder))
	sb.WriteString(fmt.Sprintf("Chest:      %6.1f cm\n", m.Chest))
	sb.WriteString(fmt.Sprintf("Waist:      %6.1f cm\n", m.Waist))
	sb.WriteString(fmt.Sprintf("Length:     %6.1f cm\n", m.Length))
	sb.WriteString(fmt.Sprintf("Arm length: %6.1f cm", m.ArmLength))
	p.printBox("ESTIMATED MEASUREMENTS", sb.String())
}

// PrintDeformation outputs the model scale and per-joint scales in rig order.
func (p *Printer) PrintDeformation(plan types.DeformationPlan) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Model scale: %.4f\n\n", plan.ModelScale))
	for _, name := range joints.Names() {
		s, ok := plan.Joints[name]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-11s x=%.3f y=%.3f z=%.3f\n", name, s.X, s.Y, s.Z))
	}
	p.printBox("DEFORMATION PLAN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendation outputs the recommended size and per-region verdicts.
func (p *Printer) PrintRecommendation(chart string, rec *types.SizeRecommendation) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Chart:    %s\n", chart))
	sb.WriteString(fmt.Sprintf("Size:     %s\n", rec.Size))
	sb.WriteString(fmt.Sprintf("Distance: %.2f\n\n", rec.Distance))
	for _, region := range types.Regions {
		sb.WriteString(fmt.Sprintf("  • %-9s %s\n", region, rec.Fit[region]))
	}
	if rec.Notes != "" {
		sb.WriteString("\n")
		sb.WriteString(rec.Notes)
	}
	p.printBox("SIZE RECOMMENDATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintApplyReport outputs which joints reached the mesh.
func (p *Printer) PrintApplyReport(report *types.ApplyReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Applied: %d  Skipped: %d\n", report.Applied(), report.Skipped()))
	if skipped := report.SkippedJoints(); len(skipped) > 0 {
		sb.WriteString(fmt.Sprintf("Missing in mesh: %s", strings.Join(skipped, ", ")))
	}
	p.printBox("RIG", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintArchetypes outputs the archetype table.
func (p *Printer) PrintArchetypes(all []archetypes.Archetype) {
	var sb strings.Builder
	for i, a := range all {
		s := a.Scale
		sb.WriteString(fmt.Sprintf("%s: %s\n", a.Key, a.Name))
		sb.WriteString(fmt.Sprintf("    %s\n", a.Description))
		sb.WriteString(fmt.Sprintf("    sh=%.2f ch=%.2f wa=%.2f hi=%.2f ar=%.2f le=%.2f\n",
			s.Shoulder, s.Chest, s.Waist, s.Hip, s.Arm, s.Leg))
		if i < len(all)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("ARCHETYPES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintChart outputs a size chart in its iteration order.
func (p *Printer) PrintChart(chart *sizechart.Chart) {
	if chart == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-5s %6s %6s %6s %6s %6s\n", "Size", "Shldr", "Chest", "Waist", "Len", "Arm"))
	for _, e := range chart.Entries() {
		m := e.Measurement
		sb.WriteString(fmt.Sprintf("%-5s %6.1f %6.1f %6.1f %6.1f %6.1f\n",
			e.Label, m.Shoulder, m.Chest, m.Waist, m.Length, m.ArmLength))
	}
	p.printBox("SIZE CHART: "+chart.Category(), strings.TrimSuffix(sb.String(), "\n"))
}
