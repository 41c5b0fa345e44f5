package rules

import (
	"strings"

	"github.com/arthur-debert/rbedit/pkg/errors"
	"github.com/arthur-debert/rbedit/pkg/types"
)

const (
	conditionSeparator = "->"
	fieldSeparator     = ";"
	partSeparator      = ":"
	listSeparator      = ","
	negationMark       = "!"

	commentOutPrefix    = "-"
	removeIfUndefPrefix = "?"
)

// ParseKeyword strips the keyword prefix and records what it means
func ParseKeyword(raw string) Keyword {
	kw := Keyword{Raw: raw, Name: raw}
	switch {
	case strings.HasPrefix(raw, commentOutPrefix):
		kw.CommentOut = true
		kw.Name = strings.TrimPrefix(raw, commentOutPrefix)
	case strings.HasPrefix(raw, removeIfUndefPrefix):
		kw.RemoveIfUndef = true
		kw.Name = strings.TrimPrefix(raw, removeIfUndefPrefix)
	}
	return kw
}

// Parse turns a rule string into a ParsedRule. It does not look at any
// configuration tree. A missing line format means DefaultLineFormat and an
// empty attribute means the keyword is written alone.
func Parse(rule string) (ParsedRule, error) {
	var parsed ParsedRule
	cond, negate, body, hasCond := splitCondition(rule)

	if hasCond {
		if err := validateCondition(cond); err != nil {
			return ParsedRule{}, withRule(err, rule)
		}
		parsed.Condition = cond
		parsed.Negate = negate
	} else if strings.HasPrefix(body, negationMark) {
		return ParsedRule{}, withRule(errors.New(errors.ErrRuleParse, "negation without a condition"), rule)
	}

	fields := strings.Split(body, fieldSeparator)
	if len(fields) > 3 {
		return ParsedRule{}, withRule(errors.Newf(errors.ErrRuleParse, "too many fields (%d)", len(fields)), rule)
	}

	attribute, optionSets, err := parseAttribute(fields[0])
	if err != nil {
		return ParsedRule{}, withRule(err, rule)
	}
	parsed.Attribute = attribute
	parsed.OptionSets = optionSets

	parsed.LineFormat = DefaultLineFormat
	if len(fields) > 1 && strings.TrimSpace(fields[1]) != "" {
		lineFormat, err := ParseLineFormat(fields[1])
		if err != nil {
			return ParsedRule{}, withRule(err, rule)
		}
		parsed.LineFormat = lineFormat
	}

	parsed.ValueFormat = AsIs
	if len(fields) == 3 {
		valueFormat, valueOptions, err := parseValueField(fields[2])
		if err != nil {
			return ParsedRule{}, withRule(err, rule)
		}
		parsed.ValueFormat = valueFormat
		parsed.ValueOptions = valueOptions
	}

	return parsed, nil
}

// splitCondition separates the condition in front of "->" from the rest of
// the rule. The condition comes back without its negation mark.
func splitCondition(rule string) (cond string, negate bool, body string, ok bool) {
	body = strings.TrimSpace(rule)
	idx := strings.Index(body, conditionSeparator)
	if idx < 0 {
		return "", false, body, false
	}
	cond = strings.TrimSpace(body[:idx])
	body = strings.TrimSpace(body[idx+len(conditionSeparator):])
	if strings.HasPrefix(cond, negationMark) {
		negate = true
		cond = strings.TrimSpace(strings.TrimPrefix(cond, negationMark))
	}
	return cond, negate, body, true
}

// Decide parses rule and evaluates its condition against tree.
//
// In always-rules-only mode a rule whose condition is not exactly ALWAYS is
// skipped before the rest of it is parsed, so a malformed rule is dropped
// rather than reported. An unmet condition asks for removal; the caller
// decides whether to honour it.
func Decide(rule string, tree types.ConfigTree, opts Options) (Decision, error) {
	if opts.AlwaysRulesOnly {
		if cond, negate, _, _ := splitCondition(rule); cond != AlwaysCondition || negate {
			return Decision{Action: ActionSkip}, nil
		}
	}

	parsed, err := Parse(rule)
	if err != nil {
		return Decision{Action: ActionSkip}, err
	}

	if !parsed.ConditionSatisfied(tree) {
		return Decision{Action: ActionRemove, Rule: parsed}, nil
	}

	return Decision{Action: ActionUpdate, Rule: parsed}, nil
}

func parseAttribute(field string) (string, []string, error) {
	parts := strings.Split(field, partSeparator)
	if len(parts) > 2 {
		return "", nil, errors.Newf(errors.ErrRuleParse, "attribute %q has more than one option set list", strings.TrimSpace(field))
	}

	attribute := strings.TrimSpace(parts[0])
	if len(parts) == 1 {
		if attribute == "" {
			return "", nil, nil
		}
		return attribute, []string{types.GlobalOptionSet}, nil
	}

	if attribute == "" {
		return "", nil, errors.New(errors.ErrRuleParse, "option sets given without an attribute")
	}

	var optionSets []string
	for _, set := range strings.Split(parts[1], listSeparator) {
		set = strings.TrimSpace(set)
		if set == "" {
			return "", nil, errors.Newf(errors.ErrRuleParse, "empty option set name for attribute %q", attribute)
		}
		optionSets = append(optionSets, set)
	}
	return attribute, optionSets, nil
}

func parseValueField(field string) (ValueFormat, ValueOption, error) {
	parts := strings.Split(field, partSeparator)
	if len(parts) > 2 {
		return 0, None, errors.Newf(errors.ErrRuleParse, "value format %q has more than one option list", strings.TrimSpace(field))
	}

	format := AsIs
	if code := strings.TrimSpace(parts[0]); code != "" {
		var err error
		if format, err = ParseValueFormat(code); err != nil {
			return 0, None, err
		}
	}

	var opts ValueOption
	if len(parts) == 2 {
		var err error
		if opts, err = ParseValueOptions(parts[1]); err != nil {
			return 0, None, err
		}
	}
	return format, opts, nil
}

func withRule(err error, rule string) error {
	var editorErr *errors.EditorError
	if e, ok := err.(*errors.EditorError); ok {
		editorErr = e
	} else {
		editorErr = errors.Wrap(err, errors.ErrRuleParse, "invalid rule")
	}
	return editorErr.WithDetail("rule", rule)
}
