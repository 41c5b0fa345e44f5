package rules

import (
	"strings"

	"github.com/arthur-debert/rbedit/pkg/errors"
	"github.com/arthur-debert/rbedit/pkg/types"
)

// validateCondition checks the shape of a condition without its negation mark
func validateCondition(cond string) error {
	if cond == "" {
		return errors.New(errors.ErrRuleParse, "empty condition")
	}
	parts := strings.Split(cond, partSeparator)
	if len(parts) > 2 {
		return errors.Newf(errors.ErrRuleParse, "condition %q has too many parts", cond)
	}
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return errors.Newf(errors.ErrRuleParse, "condition %q has an empty part", cond)
		}
	}
	return nil
}

// splitCondition returns the attribute (possibly empty) and option set named
// by a condition
func splitCondition(cond string) (attribute, optionSet string) {
	if idx := strings.Index(cond, partSeparator); idx >= 0 {
		return strings.TrimSpace(cond[:idx]), strings.TrimSpace(cond[idx+1:])
	}
	return "", strings.TrimSpace(cond)
}

// ConditionSatisfied evaluates the rule condition against tree. A rule
// without condition is always satisfied.
func (r ParsedRule) ConditionSatisfied(tree types.ConfigTree) bool {
	if r.Condition == "" {
		return true
	}
	return EvaluateCondition(r.Condition, tree) != r.Negate
}

// EvaluateCondition tests a condition without negation mark. Only existence is
// tested: an option set, or an attribute inside an option set.
func EvaluateCondition(cond string, tree types.ConfigTree) bool {
	if cond == AlwaysCondition {
		return true
	}
	attribute, optionSet := splitCondition(cond)
	if attribute == "" {
		return tree.HasOptionSet(optionSet)
	}
	_, ok := tree.Lookup(optionSet, attribute)
	return ok
}
