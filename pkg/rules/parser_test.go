// pkg/rules/parser_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test rule string parsing, keyword prefixes and format codes

package rules_test

import (
	"testing"

	"github.com/arthur-debert/rbedit/pkg/errors"
	"github.com/arthur-debert/rbedit/pkg/rules"
	"github.com/arthur-debert/rbedit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		rule     string
		expected rules.ParsedRule
	}{
		{
			name: "boolean_by_name",
			rule: "allowCoreDump:dpm;ShVar;Boolean",
			expected: rules.ParsedRule{
				Attribute:   "allowCoreDump",
				OptionSets:  []string{"dpm"},
				LineFormat:  rules.ShVar,
				ValueFormat: rules.Boolean,
			},
		},
		{
			name: "numeric_codes",
			rule: "allowCoreDump:dpm;1;1",
			expected: rules.ParsedRule{
				Attribute:   "allowCoreDump",
				OptionSets:  []string{"dpm"},
				LineFormat:  rules.ShVar,
				ValueFormat: rules.Boolean,
			},
		},
		{
			name: "array_with_options",
			rule: "diskFlags:dpm,dpns;KeyVal;Array:Unique|Single",
			expected: rules.ParsedRule{
				Attribute:    "diskFlags",
				OptionSets:   []string{"dpm", "dpns"},
				LineFormat:   rules.KeyVal,
				ValueFormat:  rules.Array,
				ValueOptions: rules.Unique | rules.Single,
			},
		},
		{
			name: "numeric_option_bits",
			rule: "diskFlags:dpm;3;3:6",
			expected: rules.ParsedRule{
				Attribute:    "diskFlags",
				OptionSets:   []string{"dpm"},
				LineFormat:   rules.KeyVal,
				ValueFormat:  rules.Array,
				ValueOptions: rules.Unique | rules.Sorted,
			},
		},
		{
			name: "conditional",
			rule: "dpm->port:dpm;EnvVar",
			expected: rules.ParsedRule{
				Condition:   "dpm",
				Attribute:   "port",
				OptionSets:  []string{"dpm"},
				LineFormat:  rules.EnvVar,
				ValueFormat: rules.AsIs,
			},
		},
		{
			name: "negated_attribute_condition",
			rule: "!globusThreadModel:dpm->threads:GLOBAL;KeyValSetenv",
			expected: rules.ParsedRule{
				Condition:   "globusThreadModel:dpm",
				Negate:      true,
				Attribute:   "threads",
				OptionSets:  []string{"GLOBAL"},
				LineFormat:  rules.KeyValSetenv,
				ValueFormat: rules.AsIs,
			},
		},
		{
			name: "attribute_without_option_set_reads_global",
			rule: "hostname;KeyValSet",
			expected: rules.ParsedRule{
				Attribute:   "hostname",
				OptionSets:  []string{"GLOBAL"},
				LineFormat:  rules.KeyValSet,
				ValueFormat: rules.AsIs,
			},
		},
		{
			name: "line_format_defaults_to_sh_var",
			rule: "allowCoreDump:dpm",
			expected: rules.ParsedRule{
				Attribute:   "allowCoreDump",
				OptionSets:  []string{"dpm"},
				LineFormat:  rules.ShVar,
				ValueFormat: rules.AsIs,
			},
		},
		{
			name: "empty_rule_is_bare_keyword",
			rule: "",
			expected: rules.ParsedRule{
				LineFormat:  rules.ShVar,
				ValueFormat: rules.AsIs,
			},
		},
		{
			name: "flag_only_line",
			rule: "ALWAYS->;KeyVal",
			expected: rules.ParsedRule{
				Condition:   "ALWAYS",
				LineFormat:  rules.KeyVal,
				ValueFormat: rules.AsIs,
			},
		},
		{
			name: "whitespace_is_tolerated",
			rule: " dpm -> diskFlags : dpm , dpns ; KeyVal ; Array : Sorted ",
			expected: rules.ParsedRule{
				Condition:    "dpm",
				Attribute:    "diskFlags",
				OptionSets:   []string{"dpm", "dpns"},
				LineFormat:   rules.KeyVal,
				ValueFormat:  rules.Array,
				ValueOptions: rules.Sorted,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := rules.Parse(tt.rule)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, parsed)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		rule string
		code errors.ErrorCode
	}{
		{"too_many_fields", "a:b;1;1;1", errors.ErrRuleParse},
		{"unknown_line_format_number", "a:b;9", errors.ErrInvalidLineFormat},
		{"unknown_line_format_name", "a:b;Yaml", errors.ErrInvalidLineFormat},
		{"zero_line_format", "a:b;0", errors.ErrInvalidLineFormat},
		{"unknown_value_format", "a:b;1;42", errors.ErrInvalidValueFormat},
		{"unknown_value_format_name", "a:b;1;Matrix", errors.ErrInvalidValueFormat},
		{"unknown_option_name", "a:b;1;Array:Shuffled", errors.ErrRuleParse},
		{"unknown_option_bits", "a:b;1;Array:8", errors.ErrRuleParse},
		{"empty_condition", "->a:b;1", errors.ErrRuleParse},
		{"negation_without_condition", "!a:b;1", errors.ErrRuleParse},
		{"empty_option_set", "a:b,,c;1", errors.ErrRuleParse},
		{"option_sets_without_attribute", ":dpm;1", errors.ErrRuleParse},
		{"condition_with_empty_part", "dpm:->a:b;1", errors.ErrRuleParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rules.Parse(tt.rule)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			assert.Equal(t, tt.rule, errors.GetErrorDetails(err)["rule"])
		})
	}
}

func TestParseKeyword(t *testing.T) {
	tests := []struct {
		raw      string
		expected rules.Keyword
	}{
		{"DPM_HOST", rules.Keyword{Raw: "DPM_HOST", Name: "DPM_HOST"}},
		{"-GLOBUS_THREAD_MODEL", rules.Keyword{Raw: "-GLOBUS_THREAD_MODEL", Name: "GLOBUS_THREAD_MODEL", CommentOut: true}},
		{"?RUN_DPMDAEMON", rules.Keyword{Raw: "?RUN_DPMDAEMON", Name: "RUN_DPMDAEMON", RemoveIfUndef: true}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, rules.ParseKeyword(tt.raw))
		})
	}
}

func TestDecide(t *testing.T) {
	tree := types.ConfigTree{
		"dpm":      map[string]interface{}{"allowCoreDump": true, "port": 0},
		"hostname": "grid01",
	}

	tests := []struct {
		name   string
		rule   string
		opts   rules.Options
		action rules.Action
	}{
		{"no_condition_updates", "allowCoreDump:dpm;ShVar;Boolean", rules.Options{}, rules.ActionUpdate},
		{"option_set_exists", "dpm->port:dpm;ShVar", rules.Options{}, rules.ActionUpdate},
		{"option_set_missing", "dpns->port:dpm;ShVar", rules.Options{}, rules.ActionRemove},
		{"zero_attribute_counts_as_present", "port:dpm->port:dpm;ShVar", rules.Options{}, rules.ActionUpdate},
		{"negated_present", "!dpm->port:dpm;ShVar", rules.Options{}, rules.ActionRemove},
		{"global_attribute", "hostname:GLOBAL->hostname;KeyVal", rules.Options{}, rules.ActionUpdate},
		{"always_only_drops_plain", "allowCoreDump:dpm;ShVar;Boolean", rules.Options{AlwaysRulesOnly: true}, rules.ActionSkip},
		{"always_only_drops_other_condition", "dpm->port:dpm;ShVar", rules.Options{AlwaysRulesOnly: true}, rules.ActionSkip},
		{"always_only_keeps_always", "ALWAYS->port:dpm;ShVar", rules.Options{AlwaysRulesOnly: true}, rules.ActionUpdate},
		{"always_only_drops_negated_always", "!ALWAYS->port:dpm;ShVar", rules.Options{AlwaysRulesOnly: true}, rules.ActionSkip},
		{"always_outside_mode_is_no_condition", "ALWAYS->port:dpm;ShVar", rules.Options{}, rules.ActionUpdate},
		{"always_only_drops_malformed_conditional", "dpm->port:dpm;9", rules.Options{AlwaysRulesOnly: true}, rules.ActionSkip},
		{"always_only_drops_malformed_unconditional", "port:dpm;ShVar;Nope", rules.Options{AlwaysRulesOnly: true}, rules.ActionSkip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := rules.Decide(tt.rule, tree, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.action, decision.Action)
		})
	}

	t.Run("always_only_still_reports_malformed_always_rule", func(t *testing.T) {
		_, err := rules.Decide("ALWAYS->port:dpm;9", tree, rules.Options{AlwaysRulesOnly: true})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidLineFormat))
	})

	t.Run("parse_error_is_returned", func(t *testing.T) {
		decision, err := rules.Decide("port:dpm;7", tree, rules.Options{})
		require.Error(t, err)
		assert.Equal(t, rules.ActionSkip, decision.Action)
	})
}

func TestValueOptionString(t *testing.T) {
	assert.Equal(t, "None", rules.None.String())
	assert.Equal(t, "Single|Sorted", (rules.Single | rules.Sorted).String())
	assert.Equal(t, "ShVar", rules.ShVar.String())
	assert.Equal(t, "LineFormat(7)", rules.LineFormat(7).String())
	assert.Equal(t, []string{"ShVar", "EnvVar", "KeyVal", "KeyValSetenv", "KeyValSet"}, rules.LineFormatNames())
	assert.Equal(t, []string{"AsIs", "Boolean", "InstanceParams", "Array", "HashKeys", "StringHash"}, rules.ValueFormatNames())
}
