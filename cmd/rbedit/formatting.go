package rbedit

import (
	"os"
	"strings"
	"text/template"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/rbedit/pkg/style"
)

// helpFuncs returns the functions used by the usage template. Headings are
// only emboldened when styled is set.
func helpFuncs(styled bool) template.FuncMap {
	bold := func(s string) string {
		if !styled {
			return s
		}
		return pterm.Bold.Sprint(s)
	}
	return template.FuncMap{
		"bold":      bold,
		"upper":     strings.ToUpper,
		"boldUpper": func(s string) string { return bold(strings.ToUpper(s)) },
	}
}

func initTemplateFormatting() {
	cobra.AddTemplateFuncs(helpFuncs(style.DetectFormat(os.Stdout) == style.FormatTerminal))
}
