package style

import (
	"github.com/charmbracelet/lipgloss"
)

// adaptive picks the light or dark variant from the terminal background.
func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	keywordColor = adaptive("#005F87", "#5FAFFF")
	addedColor   = adaptive("#1E7B34", "#5FD787")
	removedColor = adaptive("#B02A37", "#FF7A85")
	warnColor    = adaptive("#9A6700", "#FFD75F")
	hunkColor    = adaptive("#0E7490", "#5FD7D7")
	dimColor     = adaptive("#6C757D", "#9E9E9E")
	fileColor    = adaptive("#1F2328", "#EEEEEE")
)

// Styles used by the terminal renderer. Diff lines reuse the added and
// removed colors so a report reads the same as its diff.
var (
	TitleStyle       = lipgloss.NewStyle().Foreground(fileColor).Bold(true).Underline(true)
	MutedStyle       = lipgloss.NewStyle().Foreground(dimColor)
	SuccessStyle     = lipgloss.NewStyle().Foreground(addedColor).Bold(true)
	ErrorStyle       = lipgloss.NewStyle().Foreground(removedColor).Bold(true)
	WarningStyle     = lipgloss.NewStyle().Foreground(warnColor).Bold(true)
	InfoStyle        = lipgloss.NewStyle().Foreground(hunkColor)
	CodeStyle        = lipgloss.NewStyle().Foreground(keywordColor)
	AddedLineStyle   = lipgloss.NewStyle().Foreground(addedColor)
	RemovedLineStyle = lipgloss.NewStyle().Foreground(removedColor)
	HunkStyle        = lipgloss.NewStyle().Foreground(hunkColor).Faint(true)
)

// Indent pads every line of s by two spaces per level.
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}
