package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/rbedit/pkg/engine"
)

// terminalRenderer writes styled output for interactive terminals
type terminalRenderer struct {
	output io.Writer
}

func (r *terminalRenderer) RenderReport(report Report) error {
	var b strings.Builder

	title := TitleStyle.Render(report.Path)
	if report.DryRun {
		title += " " + MutedStyle.Render("(dry run)")
	}
	b.WriteString(title + "\n\n")

	if report.Result != nil {
		for _, kr := range report.Result.Keywords {
			line := fmt.Sprintf("%s %s", OutcomeBadge(kr.Outcome), CodeStyle.Render(kr.Keyword))
			switch {
			case kr.Err != nil:
				line += " " + ErrorStyle.Render(kr.Err.Error())
			case kr.Reason != "":
				line += " " + MutedStyle.Render(kr.Reason)
			}
			b.WriteString(line + "\n")
			for _, edit := range kr.Edits {
				b.WriteString(Indent(renderEdit(edit), 5) + "\n")
			}
		}
	}

	if report.Diff != "" {
		b.WriteString("\n" + RenderDiff(report.Diff))
	}

	if report.Result != nil {
		summary := Summary(report.Result)
		switch {
		case report.Result.HasFailures():
			summary = WarningStyle.Render(summary)
		case report.Written:
			summary = SuccessStyle.Render(summary)
		default:
			summary = InfoStyle.Render(summary)
		}
		b.WriteString("\n" + summary + "\n")
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *terminalRenderer) RenderChecks(checks []Check) error {
	var b strings.Builder
	for _, c := range checks {
		v := newCheckView(c)
		if !v.Valid {
			b.WriteString(ErrorStyle.Render("✗ ") + CodeStyle.Render(v.Rule) + "\n")
			b.WriteString(Indent(ErrorStyle.Render(v.ErrorCode)+" "+v.Error, 1) + "\n")
			continue
		}
		b.WriteString(SuccessStyle.Render("✓ ") + CodeStyle.Render(v.Rule) + "\n")
		lines := strings.Split(strings.TrimRight(checkText(v), "\n"), "\n")[1:]
		for _, line := range lines {
			b.WriteString(MutedStyle.Render(line) + "\n")
		}
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *terminalRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, ErrorStyle.Render("Error: ")+err.Error())
	return werr
}

func (r *terminalRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func renderEdit(edit engine.Edit) string {
	if edit.Kind == engine.RemoveLine {
		return WarningStyle.Render("#") + " " + MutedStyle.Render("comment out "+edit.Keyword)
	}
	return strings.TrimRight(strings.ReplaceAll(edit.Line, "\t", " "), " ")
}

// RenderDiff colours a unified diff
func RenderDiff(diff string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		text := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(text, "+++"), strings.HasPrefix(text, "---"):
			b.WriteString(TitleStyle.Render(text))
		case strings.HasPrefix(text, "@@"):
			b.WriteString(HunkStyle.Render(text))
		case strings.HasPrefix(text, "+"):
			b.WriteString(AddedLineStyle.Render(text))
		case strings.HasPrefix(text, "-"):
			b.WriteString(RemovedLineStyle.Render(text))
		default:
			b.WriteString(text)
		}
		b.WriteString("\n")
	}
	return b.String()
}
