package style

import (
	"fmt"
	"io"
	"strings"
)

// textRenderer writes plain output without escape sequences
type textRenderer struct {
	output io.Writer
}

func (r *textRenderer) RenderReport(report Report) error {
	var b strings.Builder
	view := newReportView(report)

	fmt.Fprintf(&b, "%s%s\n", report.Path, dryRunSuffix(report.DryRun))
	for _, kv := range view.Keywords {
		fmt.Fprintf(&b, "  %-8s %s%s\n", kv.Outcome, kv.Keyword, detail(kv))
		for _, ev := range kv.Edits {
			fmt.Fprintf(&b, "           %s\n", editText(ev))
		}
	}
	if report.Diff != "" {
		b.WriteString("\n")
		b.WriteString(report.Diff)
		if !strings.HasSuffix(report.Diff, "\n") {
			b.WriteString("\n")
		}
	}
	if report.Result != nil {
		fmt.Fprintf(&b, "%s\n", Summary(report.Result))
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *textRenderer) RenderChecks(checks []Check) error {
	var b strings.Builder
	for _, c := range checks {
		b.WriteString(checkText(newCheckView(c)))
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *textRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

func (r *textRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func dryRunSuffix(dryRun bool) string {
	if dryRun {
		return " (dry run)"
	}
	return ""
}

func detail(kv keywordView) string {
	switch {
	case kv.Error != "":
		return ": " + kv.Error
	case kv.Reason != "":
		return " (" + kv.Reason + ")"
	default:
		return ""
	}
}

func editText(ev editView) string {
	if ev.Kind == "remove" {
		return fmt.Sprintf("comment out %s [%s]", ev.Keyword, ev.LineFormat)
	}
	return strings.TrimRight(strings.ReplaceAll(ev.Line, "\t", " "), " ")
}

func checkText(v checkView) string {
	if !v.Valid {
		return fmt.Sprintf("%s\n  invalid [%s]: %s\n", v.Rule, v.ErrorCode, v.Error)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", v.Rule)
	if v.Condition != "" {
		neg := ""
		if v.Negate {
			neg = "!"
		}
		fmt.Fprintf(&b, "  condition:     %s%s\n", neg, v.Condition)
	}
	if v.Attribute == "" {
		fmt.Fprintf(&b, "  attribute:     (none, bare keyword)\n")
	} else {
		fmt.Fprintf(&b, "  attribute:     %s\n", v.Attribute)
		fmt.Fprintf(&b, "  option sets:   %s\n", strings.Join(v.OptionSets, ", "))
	}
	fmt.Fprintf(&b, "  line format:   %s\n", v.LineFormat)
	fmt.Fprintf(&b, "  value format:  %s\n", v.ValueFormat)
	fmt.Fprintf(&b, "  value options: %s\n", v.ValueOptions)
	return b.String()
}
