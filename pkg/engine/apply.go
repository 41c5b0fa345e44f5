package engine

import (
	"regexp"

	"github.com/arthur-debert/rbedit/pkg/errors"
	"github.com/arthur-debert/rbedit/pkg/format"
	"github.com/arthur-debert/rbedit/pkg/types"
)

// ApplyEdit applies one edit to doc and returns the number of lines written
func ApplyEdit(doc types.Document, edit Edit) (int, error) {
	match, err := edit.Pattern()
	if err != nil {
		return 0, err
	}

	switch edit.Kind {
	case UpdateLine:
		good, err := regexp.Compile(`^` + regexp.QuoteMeta(edit.Line) + `$`)
		if err != nil {
			return 0, errors.Wrapf(err, errors.ErrInternal, "cannot build pattern for %q", edit.Line)
		}
		return doc.AddOrReplaceLines(match, good, edit.Line, types.EndOfFile), nil
	case RemoveLine:
		return CommentOut(doc, match), nil
	default:
		return 0, errors.Newf(errors.ErrInternal, "unknown edit kind %d", int(edit.Kind))
	}
}

// CommentOut prefixes every line matching match with "#", leaving lines that
// are already commented alone. It returns the number of lines changed.
func CommentOut(doc types.Document, match *regexp.Regexp) int {
	var lines []string
	changed := 0

	doc.SeekBegin()
	for {
		line, ok := doc.ReadLine()
		if !ok {
			break
		}
		if match.MatchString(line) && !format.CommentedPattern.MatchString(line) {
			line = "#" + line
			changed++
		}
		lines = append(lines, line)
	}

	if changed > 0 {
		doc.SetLines(lines)
	}
	return changed
}
