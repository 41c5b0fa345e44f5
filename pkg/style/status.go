package style

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/rbedit/pkg/engine"
)

// OutcomeStyle returns the badge style for a keyword outcome
func OutcomeStyle(outcome engine.Outcome) *pterm.Style {
	switch outcome {
	case engine.OutcomeUpdated:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case engine.OutcomeRemoved:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case engine.OutcomeFailed:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// OutcomeBadge renders the outcome name padded to a fixed width
func OutcomeBadge(outcome engine.Outcome) string {
	return OutcomeStyle(outcome).Sprint(fmt.Sprintf(" %-7s ", outcome))
}

// Summary is a one-line count of the outcomes of a run
func Summary(result *engine.Result) string {
	return fmt.Sprintf("%d keywords: %d updated, %d removed, %d skipped, %d failed, %d lines changed",
		result.TotalKeywords,
		result.UpdatedCount,
		result.RemovedCount,
		result.SkippedCount,
		result.FailedCount,
		result.LinesChanged,
	)
}
