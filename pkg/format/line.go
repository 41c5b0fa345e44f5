package format

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/rbedit/pkg/errors"
	"github.com/arthur-debert/rbedit/pkg/rules"
)

// GeneratedLineMarker is appended to ShVar and EnvVar lines written by the editor
const GeneratedLineMarker = "\t\t# Line generated by Quattor"

var whitespaceRun = regexp.MustCompile(`\s+`)

// FormatLine renders keyword and an already formatted value as a line
func FormatLine(keyword, value string, lf rules.LineFormat) (string, error) {
	switch lf {
	case rules.ShVar:
		return keyword + "=" + value, nil
	case rules.EnvVar:
		return "export " + keyword + "=" + value, nil
	case rules.KeyValSetenv:
		return "setenv " + keyword + " = " + value, nil
	case rules.KeyValSet:
		return "set " + keyword + " = " + value, nil
	case rules.KeyVal:
		line := keyword
		if value != "" {
			line += " " + value
		}
		line = whitespaceRun.ReplaceAllLiteralString(line, " ")
		return strings.TrimRight(line, " "), nil
	default:
		return "", errors.Newf(errors.ErrInvalidLineFormat, "unknown line format %d", int(lf))
	}
}

// WithMarker appends the generated-line marker for the formats that carry it
func WithMarker(line string, lf rules.LineFormat) string {
	if lf.Quoted() {
		return line + GeneratedLineMarker
	}
	return line
}
