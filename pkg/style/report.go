package style

import (
	"github.com/arthur-debert/rbedit/pkg/engine"
	"github.com/arthur-debert/rbedit/pkg/errors"
	"github.com/arthur-debert/rbedit/pkg/rules"
)

// Report is what apply and plan print for one file
type Report struct {
	Path string `json:"path"`

	// DryRun is set by plan and apply --dry-run
	DryRun bool `json:"dryRun"`

	// Written reports whether the file was saved
	Written bool `json:"written"`

	Result *engine.Result `json:"-"`
	Diff   string         `json:"diff,omitempty"`
}

// Check is the outcome of parsing one rule string
type Check struct {
	Rule   string
	Parsed rules.ParsedRule
	Err    error
}

// keywordView is the JSON shape of an engine.KeywordResult
type keywordView struct {
	Keyword      string     `json:"keyword"`
	Name         string     `json:"name"`
	Rule         string     `json:"rule"`
	Outcome      string     `json:"outcome"`
	Reason       string     `json:"reason,omitempty"`
	LinesChanged int        `json:"linesChanged"`
	Error        string     `json:"error,omitempty"`
	Edits        []editView `json:"edits,omitempty"`
}

type editView struct {
	Kind       string `json:"kind"`
	Keyword    string `json:"keyword"`
	LineFormat string `json:"lineFormat"`
	Line       string `json:"line,omitempty"`
	Anchored   bool   `json:"anchored,omitempty"`
}

type summaryView struct {
	Keywords      int  `json:"keywords"`
	Updated       int  `json:"updated"`
	Removed       int  `json:"removed"`
	Skipped       int  `json:"skipped"`
	Failed        int  `json:"failed"`
	LinesChanged  int  `json:"linesChanged"`
	HeaderChanged bool `json:"headerChanged"`
}

type reportView struct {
	Report
	Summary  summaryView   `json:"summary"`
	Keywords []keywordView `json:"keywords"`
}

type checkView struct {
	Rule         string   `json:"rule"`
	Valid        bool     `json:"valid"`
	Error        string   `json:"error,omitempty"`
	ErrorCode    string   `json:"errorCode,omitempty"`
	Condition    string   `json:"condition,omitempty"`
	Negate       bool     `json:"negate,omitempty"`
	Attribute    string   `json:"attribute,omitempty"`
	OptionSets   []string `json:"optionSets,omitempty"`
	LineFormat   string   `json:"lineFormat,omitempty"`
	ValueFormat  string   `json:"valueFormat,omitempty"`
	ValueOptions string   `json:"valueOptions,omitempty"`
}

func newReportView(report Report) reportView {
	view := reportView{Report: report}
	result := report.Result
	if result == nil {
		return view
	}

	view.Summary = summaryView{
		Keywords:      result.TotalKeywords,
		Updated:       result.UpdatedCount,
		Removed:       result.RemovedCount,
		Skipped:       result.SkippedCount,
		Failed:        result.FailedCount,
		LinesChanged:  result.LinesChanged,
		HeaderChanged: result.HeaderChanged,
	}
	for _, kr := range result.Keywords {
		kv := keywordView{
			Keyword:      kr.Keyword,
			Name:         kr.Name,
			Rule:         kr.Rule,
			Outcome:      kr.Outcome.String(),
			Reason:       kr.Reason,
			LinesChanged: kr.LinesChanged,
		}
		if kr.Err != nil {
			kv.Error = kr.Err.Error()
		}
		for _, edit := range kr.Edits {
			kv.Edits = append(kv.Edits, editView{
				Kind:       edit.Kind.String(),
				Keyword:    edit.Keyword,
				LineFormat: edit.LineFormat.String(),
				Line:       edit.Line,
				Anchored:   edit.Anchored,
			})
		}
		view.Keywords = append(view.Keywords, kv)
	}
	return view
}

func newCheckView(check Check) checkView {
	view := checkView{Rule: check.Rule, Valid: check.Err == nil}
	if check.Err != nil {
		view.Error = check.Err.Error()
		view.ErrorCode = string(errors.GetErrorCode(check.Err))
		return view
	}
	p := check.Parsed
	view.Condition = p.Condition
	view.Negate = p.Negate
	view.Attribute = p.Attribute
	view.OptionSets = p.OptionSets
	view.LineFormat = p.LineFormat.String()
	view.ValueFormat = p.ValueFormat.String()
	view.ValueOptions = p.ValueOptions.String()
	return view
}
