package summary

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/sawkit/pkg/bootstrap"
	"github.com/arthur-debert/sawkit/pkg/style"
)

// RenderReportText renders a pipeline report as plain text, one step
// per line followed by any warnings
func RenderReportText(r *bootstrap.Report) string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	for _, step := range r.Steps {
		status := style.Status(step.Status)
		fmt.Fprintf(&b, "  %s %-15s %s\n", style.PlainIndicator(status), step.Name, stepDetail(step))
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "  ! %s\n", w)
	}
	return b.String()
}

// RenderReportTerminal renders a pipeline report with status colors
func RenderReportTerminal(r *bootstrap.Report) string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	for _, step := range r.Steps {
		b.WriteString(style.RenderStep(step.Name, style.Status(step.Status), stepDetail(step)) + "\n")
	}
	for _, w := range r.Warnings {
		b.WriteString("  " + style.WarningIndicator + " " + style.WarningStyle.Render(w) + "\n")
	}
	return b.String()
}

func stepDetail(step bootstrap.StepReport) string {
	if step.Status == bootstrap.StatusFailed && step.Error != "" {
		return step.Description + ": " + step.Error
	}
	return step.Description
}
