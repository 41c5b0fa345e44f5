package engine

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/rbedit/pkg/errors"
	"github.com/arthur-debert/rbedit/pkg/logging"
	"github.com/arthur-debert/rbedit/pkg/rules"
	"github.com/arthur-debert/rbedit/pkg/types"
)

// Engine turns a rule set and a configuration tree into line edits
type Engine struct {
	opts   Options
	logger zerolog.Logger
}

// New creates an engine with the given options
func New(opts Options) *Engine {
	return &Engine{
		opts:   opts,
		logger: logging.GetLogger("engine"),
	}
}

// Plan computes the edits for every keyword of ruleSet, in lexicographic
// keyword order, without touching any document.
func (e *Engine) Plan(ruleSet types.RuleSet, tree types.ConfigTree) (*Result, error) {
	if ruleSet == nil {
		return nil, errors.New(errors.ErrArgumentMissing, "rule set is required")
	}
	if tree == nil {
		return nil, errors.New(errors.ErrArgumentMissing, "configuration tree is required")
	}

	e.logger.Debug().
		Int("keywords", len(ruleSet)).
		Bool("alwaysRulesOnly", e.opts.AlwaysRulesOnly).
		Bool("removeIfUndef", e.opts.RemoveIfUndef).
		Msg("Planning rule set")

	result := &Result{}
	for _, keyword := range ruleSet.Keywords() {
		kr := e.planKeyword(keyword, ruleSet[keyword], tree)
		e.logKeyword(kr)
		result.Keywords = append(result.Keywords, kr)
	}
	result.tally()
	return result, nil
}

// Apply ensures the banner is present and applies the planned edits to doc.
// Per-keyword failures are recorded in the Result; the returned error is only
// set when a required argument is missing, in which case doc is untouched.
func (e *Engine) Apply(doc types.Document, ruleSet types.RuleSet, tree types.ConfigTree) (*Result, error) {
	if doc == nil {
		return nil, errors.New(errors.ErrArgumentMissing, "document is required")
	}

	result, err := e.Plan(ruleSet, tree)
	if err != nil {
		return nil, err
	}

	result.HeaderChanged = EnsureHeader(doc)

	for i := range result.Keywords {
		kr := &result.Keywords[i]
		for _, edit := range kr.Edits {
			n, err := ApplyEdit(doc, edit)
			if err != nil {
				kr.Outcome = OutcomeFailed
				kr.Err = err
				e.logger.Warn().Err(err).Str("keyword", kr.Keyword).Msg("Failed to apply edit")
				break
			}
			kr.LinesChanged += n
		}
	}
	result.tally()

	e.logger.Info().
		Int("keywords", result.TotalKeywords).
		Int("updated", result.UpdatedCount).
		Int("removed", result.RemovedCount).
		Int("skipped", result.SkippedCount).
		Int("failed", result.FailedCount).
		Int("linesChanged", result.LinesChanged).
		Msg("Rule set applied")
	return result, nil
}

func (e *Engine) planKeyword(raw, rule string, tree types.ConfigTree) KeywordResult {
	kw := rules.ParseKeyword(raw)
	kr := KeywordResult{Keyword: raw, Name: kw.Name, Rule: rule}

	if kw.CommentOut {
		kr.Edits = []Edit{removeEdit(kw.Name, commentOutLineFormat(rule))}
		kr.Outcome = OutcomeRemoved
		kr.Reason = "comment-out keyword"
		return kr
	}

	opts := rules.Options{
		AlwaysRulesOnly: e.opts.AlwaysRulesOnly,
		RemoveIfUndef:   e.opts.RemoveIfUndef || kw.RemoveIfUndef,
	}

	decision, err := rules.Decide(rule, tree, opts)
	if err != nil {
		kr.Outcome = OutcomeFailed
		kr.Err = err
		return kr
	}

	switch decision.Action {
	case rules.ActionSkip:
		kr.Outcome = OutcomeSkipped
		kr.Reason = "not an ALWAYS rule"

	case rules.ActionRemove:
		if !opts.RemoveIfUndef {
			kr.Outcome = OutcomeSkipped
			kr.Reason = "condition not met"
			break
		}
		kr.Edits = []Edit{removeEdit(kw.Name, decision.Rule.LineFormat)}
		kr.Outcome = OutcomeRemoved
		kr.Reason = "condition not met"

	case rules.ActionUpdate:
		edits, outcome, err := resolve(kw.Name, decision.Rule, tree, opts.RemoveIfUndef)
		kr.Edits, kr.Outcome, kr.Err = edits, outcome, err
		if outcome == OutcomeSkipped || outcome == OutcomeRemoved {
			kr.Reason = "attribute not defined"
		}
	}
	return kr
}

// commentOutLineFormat picks the line format of a "-" keyword. The rule is
// otherwise ignored, so a rule that does not parse falls back to the default.
func commentOutLineFormat(rule string) rules.LineFormat {
	parsed, err := rules.Parse(rule)
	if err != nil {
		return rules.DefaultLineFormat
	}
	return parsed.LineFormat
}

func (e *Engine) logKeyword(kr KeywordResult) {
	switch kr.Outcome {
	case OutcomeFailed:
		e.logger.Warn().
			Err(kr.Err).
			Str("keyword", kr.Keyword).
			Str("rule", kr.Rule).
			Msg("Skipping keyword")
	default:
		e.logger.Debug().
			Str("keyword", kr.Keyword).
			Str("outcome", kr.Outcome.String()).
			Str("reason", kr.Reason).
			Int("edits", len(kr.Edits)).
			Msg("Keyword resolved")
	}
}
