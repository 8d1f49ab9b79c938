// Package report turns per-server outcomes into one-line summaries.
package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"mcpack/internal/reconcile"
)

// AddSummary builds the summary line for an add operation. softSkipped
// is the number of servers dropped by the soft prerequisite check.
func AddSummary(o *reconcile.AddOutcome, softSkipped int) string {
	var parts []string

	if n := len(o.Installed); n > 0 {
		parts = append(parts, color.GreenString("%d installed", n))
	}
	if n := len(o.AlreadyInstalled); n > 0 {
		parts = append(parts, fmt.Sprintf("%d already installed", n))
	}
	if softSkipped > 0 {
		parts = append(parts, color.YellowString("%d skipped (docker unavailable)", softSkipped))
	}
	if n := len(o.Failed); n > 0 {
		parts = append(parts, color.RedString("%d failed", n))
	}

	if len(parts) == 0 {
		return "Nothing to do"
	}
	return strings.Join(parts, ", ")
}

// RemoveSummary builds the summary line for a remove operation.
func RemoveSummary(o *reconcile.RemoveOutcome) string {
	var parts []string

	if n := len(o.Removed); n > 0 {
		parts = append(parts, color.GreenString("%d removed", n))
	}
	if n := len(o.NotInstalled); n > 0 {
		parts = append(parts, color.YellowString("%d not installed", n))
	}

	if len(parts) == 0 {
		return "Nothing to do"
	}
	return strings.Join(parts, ", ")
}
