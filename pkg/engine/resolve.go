package engine

import (
	"strings"

	"github.com/arthur-debert/rbedit/pkg/errors"
	"github.com/arthur-debert/rbedit/pkg/format"
	"github.com/arthur-debert/rbedit/pkg/rules"
	"github.com/arthur-debert/rbedit/pkg/types"
)

// accumulator collects the contributions of each option set for one keyword.
// add returns a new value; the loop in resolve threads it explicitly.
type accumulator struct {
	found bool
	items []interface{}
	parts []string
	edits []Edit
}

func (a accumulator) add(keyword string, rule rules.ParsedRule, value interface{}) (accumulator, error) {
	next := accumulator{
		found: true,
		items: append([]interface{}(nil), a.items...),
		parts: append([]string(nil), a.parts...),
		edits: append([]Edit(nil), a.edits...),
	}

	switch rule.ValueFormat {
	case rules.Array:
		next.items = append(next.items, types.AsList(value)...)

	case rules.InstanceParams:
		edits, err := instanceEdits(keyword, rule.LineFormat, value)
		if err != nil {
			return a, err
		}
		next.edits = append(next.edits, edits...)

	case rules.StringHash:
		edits, err := stringHashEdits(keyword, rule.LineFormat, value)
		if err != nil {
			return a, err
		}
		next.edits = append(next.edits, edits...)

	default:
		text, err := format.RenderValue(value, rule.ValueFormat, rule.ValueOptions)
		if err != nil {
			return a, err
		}
		next.parts = append(next.parts, text)
	}
	return next, nil
}

func (a accumulator) finish(keyword string, rule rules.ParsedRule) ([]Edit, error) {
	lf := rule.LineFormat

	switch rule.ValueFormat {
	case rules.InstanceParams, rules.StringHash:
		return a.edits, nil

	case rules.Array:
		values, err := format.ArrayValues(a.items, rule.ValueOptions)
		if err != nil {
			return nil, err
		}
		if !rule.ValueOptions.Has(rules.Single) {
			edit, err := updateEdit(keyword, lf, format.QuoteValue(strings.Join(values, " "), lf, rules.Array), false)
			if err != nil {
				return nil, err
			}
			return []Edit{edit}, nil
		}
		edits := make([]Edit, 0, len(values))
		for _, v := range values {
			edit, err := updateEdit(keyword, lf, format.QuoteValue(v, lf, rules.AsIs), true)
			if err != nil {
				return nil, err
			}
			edits = append(edits, edit)
		}
		return edits, nil

	default:
		text := format.QuoteValue(strings.Join(a.parts, " "), lf, rule.ValueFormat)
		edit, err := updateEdit(keyword, lf, text, false)
		if err != nil {
			return nil, err
		}
		return []Edit{edit}, nil
	}
}

// resolve computes the edits for a keyword whose rule condition holds.
// It reads tree and nothing else.
func resolve(keyword string, rule rules.ParsedRule, tree types.ConfigTree, removeIfUndef bool) ([]Edit, Outcome, error) {
	if rule.Attribute == "" {
		edit, err := updateEdit(keyword, rule.LineFormat, "", false)
		if err != nil {
			return nil, OutcomeFailed, err
		}
		return []Edit{edit}, OutcomeUpdated, nil
	}

	var acc accumulator
	for _, set := range rule.OptionSets {
		value, ok := tree.Lookup(set, rule.Attribute)
		if !ok {
			if removeIfUndef {
				return []Edit{removeEdit(keyword, rule.LineFormat)}, OutcomeRemoved, nil
			}
			continue
		}

		next, err := acc.add(keyword, rule, value)
		if err != nil {
			return nil, OutcomeFailed, err
		}
		acc = next
	}

	if !acc.found {
		return nil, OutcomeSkipped, nil
	}

	edits, err := acc.finish(keyword, rule)
	if err != nil {
		return nil, OutcomeFailed, err
	}
	if len(edits) == 0 {
		return nil, OutcomeSkipped, nil
	}
	return edits, OutcomeUpdated, nil
}

func instanceEdits(keyword string, lf rules.LineFormat, value interface{}) ([]Edit, error) {
	instances, ok := types.AsMap(value)
	if !ok {
		return nil, errors.Newf(errors.ErrInvalidValue, "%s expects a map of instances, got %T", rules.InstanceParams, value).
			WithDetail("keyword", keyword)
	}

	edits := make([]Edit, 0, len(instances))
	for _, name := range types.SortedKeys(instances) {
		params, ok := types.AsMap(instances[name])
		if !ok && instances[name] != nil {
			return nil, errors.Newf(errors.ErrInvalidValue, "instance %q expects a map of parameters, got %T", name, instances[name]).
				WithDetail("keyword", keyword)
		}
		instanceKeyword := strings.ReplaceAll(keyword, InstancePlaceholder, strings.ToUpper(name))
		text := format.QuoteValue(format.RenderInstanceParams(params), lf, rules.InstanceParams)
		edit, err := updateEdit(instanceKeyword, lf, text, false)
		if err != nil {
			return nil, err
		}
		edits = append(edits, edit)
	}
	return edits, nil
}

func stringHashEdits(keyword string, lf rules.LineFormat, value interface{}) ([]Edit, error) {
	entries, ok := types.AsMap(value)
	if !ok {
		return nil, errors.Newf(errors.ErrInvalidValue, "%s expects a map, got %T", rules.StringHash, value).
			WithDetail("keyword", keyword)
	}

	edits := make([]Edit, 0, len(entries))
	for _, key := range types.SortedKeys(entries) {
		v, ok := format.Scalar(entries[key])
		if !ok {
			return nil, errors.Newf(errors.ErrInvalidValue, "%s entry %q is not a scalar", rules.StringHash, key).
				WithDetail("keyword", keyword)
		}
		text := format.QuoteValue(format.Unescape(key)+" "+v, lf, rules.StringHash)
		edit, err := updateEdit(keyword, lf, text, true)
		if err != nil {
			return nil, err
		}
		edits = append(edits, edit)
	}
	return edits, nil
}

func updateEdit(keyword string, lf rules.LineFormat, value string, anchored bool) (Edit, error) {
	line, err := format.FormatLine(keyword, value, lf)
	if err != nil {
		return Edit{}, err
	}
	return Edit{
		Kind:       UpdateLine,
		Keyword:    keyword,
		LineFormat: lf,
		Value:      value,
		Line:       format.WithMarker(line, lf),
		Anchored:   anchored,
	}, nil
}

func removeEdit(keyword string, lf rules.LineFormat) Edit {
	return Edit{Kind: RemoveLine, Keyword: keyword, LineFormat: lf}
}
