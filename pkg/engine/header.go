package engine

import (
	"regexp"

	"github.com/arthur-debert/rbedit/pkg/types"
)

const (
	// HeaderText is the banner every managed file starts with
	HeaderText = "# This file is managed by Quattor - DO NOT EDIT lines generated by Quattor"

	headerSeparator = "#"
)

var (
	headerPattern = regexp.MustCompile(`^# This file is managed by Quattor`)
	exactHeader   = regexp.MustCompile(`^` + regexp.QuoteMeta(HeaderText) + `$`)
)

// EnsureHeader inserts the banner at the top of doc when no line carries it
// and normalises an existing banner line. It reports whether doc changed.
func EnsureHeader(doc types.Document) bool {
	for _, line := range doc.Lines() {
		if headerPattern.MatchString(line) {
			return doc.AddOrReplaceLines(headerPattern, exactHeader, HeaderText, types.BeginningOfFile) > 0
		}
	}
	doc.SetLines(append([]string{HeaderText, headerSeparator}, doc.Lines()...))
	return true
}
