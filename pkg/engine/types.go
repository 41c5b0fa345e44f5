package engine

import (
	"fmt"
	"regexp"

	"github.com/arthur-debert/rbedit/pkg/format"
	"github.com/arthur-debert/rbedit/pkg/rules"
)

// InstancePlaceholder is replaced by the upper-cased instance name in
// keywords of InstanceParams rules
const InstancePlaceholder = "%%INSTANCE%%"

// Options control rule selection for a whole run
type Options struct {
	// AlwaysRulesOnly keeps only rules whose condition is exactly ALWAYS
	AlwaysRulesOnly bool

	// RemoveIfUndef comments out lines whose condition or attribute is
	// undefined. The "?" keyword prefix turns it on for a single keyword.
	RemoveIfUndef bool
}

// EditKind tells UpdateLine and RemoveLine edits apart
type EditKind int

const (
	// UpdateLine writes Line, replacing lines that match the keyword
	UpdateLine EditKind = iota
	// RemoveLine comments out lines that match the keyword
	RemoveLine
)

// String returns the string representation of the edit kind
func (k EditKind) String() string {
	switch k {
	case UpdateLine:
		return "update"
	case RemoveLine:
		return "remove"
	default:
		return "unknown"
	}
}

// Edit is one line-level change produced for a keyword
type Edit struct {
	Kind       EditKind
	Keyword    string
	LineFormat rules.LineFormat

	// Value is the formatted value, quoted as it appears in Line
	Value string

	// Line is the full line written by an UpdateLine, marker included
	Line string

	// Anchored edits only match lines carrying Value, so several lines can
	// share a keyword
	Anchored bool
}

// Pattern returns the regexp locating the lines this edit applies to
func (e Edit) Pattern() (*regexp.Regexp, error) {
	if e.Anchored {
		return format.ValuePattern(e.Keyword, e.LineFormat, e.Value)
	}
	return format.LinePattern(e.Keyword, e.LineFormat)
}

// String describes the edit for logs and plans
func (e Edit) String() string {
	if e.Kind == RemoveLine {
		return fmt.Sprintf("remove %s (%s)", e.Keyword, e.LineFormat)
	}
	return fmt.Sprintf("update %s", e.Line)
}

// Outcome is the tagged result of processing one keyword
type Outcome int

const (
	// OutcomeUpdated means at least one UpdateLine was produced
	OutcomeUpdated Outcome = iota
	// OutcomeRemoved means the keyword's lines are commented out
	OutcomeRemoved
	// OutcomeSkipped means the keyword produced no edit
	OutcomeSkipped
	// OutcomeFailed means the rule could not be parsed or formatted
	OutcomeFailed
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeUpdated:
		return "updated"
	case OutcomeRemoved:
		return "removed"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// KeywordResult records what happened to one rule set entry
type KeywordResult struct {
	// Keyword is the rule set key, prefix included
	Keyword string
	// Name is the literal keyword written in the document
	Name    string
	Rule    string
	Outcome Outcome

	// Reason explains skips and removals
	Reason string
	Edits  []Edit

	// LinesChanged counts document lines written by Apply
	LinesChanged int
	Err          error
}

// Result contains the outcome of a run
type Result struct {
	Keywords []KeywordResult

	// HeaderChanged is set when Apply inserted or rewrote the banner
	HeaderChanged bool

	TotalKeywords int
	UpdatedCount  int
	RemovedCount  int
	SkippedCount  int
	FailedCount   int
	LinesChanged  int
}

// Edits returns every edit of the run in application order
func (r *Result) Edits() []Edit {
	var edits []Edit
	for _, kr := range r.Keywords {
		edits = append(edits, kr.Edits...)
	}
	return edits
}

// HasFailures reports whether any keyword failed
func (r *Result) HasFailures() bool {
	return r.FailedCount > 0
}

func (r *Result) tally() {
	r.TotalKeywords = len(r.Keywords)
	r.UpdatedCount, r.RemovedCount, r.SkippedCount, r.FailedCount, r.LinesChanged = 0, 0, 0, 0, 0
	for _, kr := range r.Keywords {
		switch kr.Outcome {
		case OutcomeUpdated:
			r.UpdatedCount++
		case OutcomeRemoved:
			r.RemovedCount++
		case OutcomeSkipped:
			r.SkippedCount++
		case OutcomeFailed:
			r.FailedCount++
		}
		r.LinesChanged += kr.LinesChanged
	}
}
