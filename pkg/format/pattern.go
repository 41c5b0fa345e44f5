package format

import (
	"regexp"

	"github.com/arthur-debert/rbedit/pkg/errors"
	"github.com/arthur-debert/rbedit/pkg/rules"
)

// commentedOrActive allows leading whitespace and a single comment mark
const commentedOrActive = `^\s*#?\s*`

// valueEnd stops an anchored value from matching a longer value
const valueEnd = `(?:\s|$)`

// LinePattern matches existing lines for keyword, active or commented out
func LinePattern(keyword string, lf rules.LineFormat) (*regexp.Regexp, error) {
	return buildPattern(keyword, lf, "", false)
}

// ValuePattern matches existing lines for keyword holding exactly value. It is
// used when several lines share a keyword and each is told apart by its value.
func ValuePattern(keyword string, lf rules.LineFormat, value string) (*regexp.Regexp, error) {
	return buildPattern(keyword, lf, value, true)
}

// CommentedPattern matches lines that are already commented out
var CommentedPattern = regexp.MustCompile(`^\s*#`)

func buildPattern(keyword string, lf rules.LineFormat, value string, anchored bool) (*regexp.Regexp, error) {
	kw := escape(keyword)

	var expr string
	switch lf {
	case rules.ShVar:
		expr = kw + `=`
	case rules.EnvVar:
		expr = `export\s+` + kw + `=`
	case rules.KeyValSetenv:
		expr = `setenv\s+` + kw + `\s*=\s*`
	case rules.KeyValSet:
		expr = `set\s+` + kw + `\s*=\s*`
	case rules.KeyVal:
		expr = kw
		if anchored && value != "" {
			expr += `\s+`
		} else {
			expr += valueEnd
		}
	default:
		return nil, errors.Newf(errors.ErrInvalidLineFormat, "unknown line format %d", int(lf))
	}

	if anchored && value != "" {
		expr += escape(value) + valueEnd
	}

	re, err := regexp.Compile(commentedOrActive + expr)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "cannot compile line pattern for %q", keyword)
	}
	return re, nil
}

// escape quotes regexp metacharacters and lets whitespace runs match any
// amount of whitespace
func escape(s string) string {
	return whitespaceRun.ReplaceAllLiteralString(regexp.QuoteMeta(s), `\s+`)
}
