package style

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Status is the display state of one step or check
type Status string

const (
	StatusDone    Status = "done"    // Step ran to completion
	StatusFailed  Status = "failed"  // Step returned an error
	StatusSkipped Status = "skipped" // Step did not run
	StatusPlanned Status = "planned" // Dry run: step would run
	StatusWarning Status = "warning" // Completed with a soft failure
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusDone:
		return pterm.NewStyle(pterm.FgGreen)
	case StatusFailed:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	case StatusPlanned:
		return pterm.NewStyle(pterm.FgCyan)
	case StatusWarning:
		return pterm.NewStyle(pterm.FgYellow)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// Indicator returns the one-character marker for a status
func Indicator(status Status) string {
	switch status {
	case StatusDone:
		return SuccessIndicator
	case StatusFailed:
		return ErrorIndicator
	case StatusPlanned:
		return PendingIndicator
	case StatusWarning:
		return WarningIndicator
	default:
		return SkippedIndicator
	}
}

// PlainIndicator is Indicator without colors
func PlainIndicator(status Status) string {
	switch status {
	case StatusDone:
		return "✓"
	case StatusFailed:
		return "✗"
	case StatusPlanned:
		return "○"
	case StatusWarning:
		return "!"
	default:
		return "-"
	}
}

// RenderStep renders a single step line: indicator, padded name, description
func RenderStep(name string, status Status, description string) string {
	styledName := StatusStyle(status).Sprint(fmt.Sprintf("%-15s", name))
	return fmt.Sprintf("  %s %s %s", Indicator(status), styledName, description)
}
