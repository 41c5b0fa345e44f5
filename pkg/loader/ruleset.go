package loader

import (
	"fmt"

	"github.com/arthur-debert/rbedit/pkg/errors"
	"github.com/arthur-debert/rbedit/pkg/logging"
	"github.com/arthur-debert/rbedit/pkg/types"
)

const rulesTable = "rules"

// LoadRuleSet reads a rule set file
func LoadRuleSet(fsys types.FS, path string) (types.RuleSet, error) {
	logger := logging.GetLogger("loader").With().Str("path", path).Logger()

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRuleSetLoad, "failed to read rule set %s", path).WithDetail("path", path)
	}

	ruleSet, err := ParseRuleSet(data, format)
	if err != nil {
		if e, ok := err.(*errors.EditorError); ok {
			return nil, e.WithDetail("path", path)
		}
		return nil, err
	}

	logger.Debug().Int("keywords", len(ruleSet)).Msg("Rule set loaded")
	return ruleSet, nil
}

// ParseRuleSet decodes a keyword to rule string mapping
func ParseRuleSet(data []byte, format Format) (types.RuleSet, error) {
	if format == FormatXML {
		return nil, errors.New(errors.ErrRuleSetLoad, "rule sets cannot be written in XML")
	}

	raw, err := decodeMap(data, format, errors.ErrRuleSetLoad)
	if err != nil {
		return nil, err
	}

	if nested, ok := raw[rulesTable]; ok && len(raw) == 1 {
		table, ok := types.AsMap(nested)
		if !ok {
			return nil, errors.Newf(errors.ErrRuleSetLoad, "%q must be a table", rulesTable)
		}
		raw = table
	}

	ruleSet := make(types.RuleSet, len(raw))
	for keyword, value := range raw {
		switch v := value.(type) {
		case nil:
			ruleSet[keyword] = ""
		case string:
			ruleSet[keyword] = v
		default:
			return nil, errors.Newf(errors.ErrRuleSetLoad, "rule for %q must be a string, got %s", keyword, describe(v)).
				WithDetail("keyword", keyword)
		}
	}
	return ruleSet, nil
}

func describe(v interface{}) string {
	if _, ok := types.AsMap(v); ok {
		return "a table"
	}
	return fmt.Sprintf("%T", v)
}
