// pkg/engine/engine_test.go
// TEST TYPE: Unit Test, Property Test
// DEPENDENCIES: gopter, go-cmp
// PURPOSE: Test planning of edits per keyword, ordering and error isolation

package engine_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/rbedit/pkg/engine"
	"github.com/arthur-debert/rbedit/pkg/errors"
	"github.com/arthur-debert/rbedit/pkg/format"
	"github.com/arthur-debert/rbedit/pkg/rules"
	"github.com/arthur-debert/rbedit/pkg/types"
)

const marker = format.GeneratedLineMarker

func plan(t *testing.T, opts engine.Options, ruleSet types.RuleSet, tree types.ConfigTree) *engine.Result {
	t.Helper()
	result, err := engine.New(opts).Plan(ruleSet, tree)
	require.NoError(t, err)
	return result
}

func TestPlan_BooleanShVar(t *testing.T) {
	result := plan(t, engine.Options{},
		types.RuleSet{"ALLOW_COREDUMP": "allowCoreDump:dpm;ShVar;Boolean"},
		types.ConfigTree{"dpm": map[string]interface{}{"allowCoreDump": true}},
	)

	expected := []engine.Edit{{
		Kind:       engine.UpdateLine,
		Keyword:    "ALLOW_COREDUMP",
		LineFormat: rules.ShVar,
		Value:      `"yes"`,
		Line:       `ALLOW_COREDUMP="yes"` + marker,
	}}
	if diff := cmp.Diff(expected, result.Edits()); diff != "" {
		t.Errorf("edits mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, result.UpdatedCount)
}

func TestPlan_ArrayUnique(t *testing.T) {
	result := plan(t, engine.Options{},
		types.RuleSet{"DISK_FLAGS": "diskFlags:dpm;ShVar;Array:Unique"},
		types.ConfigTree{"dpm": map[string]interface{}{"diskFlags": []interface{}{"b", "a", "b"}}},
	)

	edits := result.Edits()
	require.Len(t, edits, 1)
	assert.Equal(t, `"a b"`, edits[0].Value)
	assert.Equal(t, `DISK_FLAGS="a b"`+marker, edits[0].Line)
	assert.False(t, edits[0].Anchored)
}

func TestPlan_InstanceParams(t *testing.T) {
	tree := types.ConfigTree{
		"svc": map[string]interface{}{
			"instances": map[string]interface{}{
				"foo": map[string]interface{}{"logFile": "/x"},
			},
		},
	}

	t.Run("key_val", func(t *testing.T) {
		result := plan(t, engine.Options{}, types.RuleSet{"%%INSTANCE%%_OPTS": "instances:svc;KeyVal;InstanceParams"}, tree)

		edits := result.Edits()
		require.Len(t, edits, 1)
		assert.Equal(t, "FOO_OPTS", edits[0].Keyword)
		assert.Equal(t, "-l /x", edits[0].Value)
		assert.Equal(t, "FOO_OPTS -l /x", edits[0].Line)
	})

	t.Run("sh_var_is_quoted", func(t *testing.T) {
		result := plan(t, engine.Options{}, types.RuleSet{"%%INSTANCE%%_OPTS": "instances:svc;ShVar;InstanceParams"}, tree)

		edits := result.Edits()
		require.Len(t, edits, 1)
		assert.Equal(t, "FOO_OPTS", edits[0].Keyword)
		assert.Equal(t, `"-l /x"`, edits[0].Value)
	})

	t.Run("instances_in_sorted_order", func(t *testing.T) {
		tree := types.ConfigTree{
			"svc": map[string]interface{}{
				"instances": map[string]interface{}{
					"redir": map[string]interface{}{"configFile": "/etc/r.cfg", "logKeep": 7},
					"disk":  map[string]interface{}{},
				},
			},
		}
		result := plan(t, engine.Options{}, types.RuleSet{"XROOTD_%%INSTANCE%%_OPTIONS": "instances:svc;KeyVal;InstanceParams"}, tree)

		edits := result.Edits()
		require.Len(t, edits, 2)
		assert.Equal(t, "XROOTD_DISK_OPTIONS", edits[0].Line)
		assert.Equal(t, "XROOTD_REDIR_OPTIONS -c /etc/r.cfg -k 7", edits[1].Line)
	})
}

func TestPlan_StringHash(t *testing.T) {
	tree := types.ConfigTree{
		"xrootd": map[string]interface{}{
			"exports": map[string]interface{}{
				"admin":  "x  y",
				"_2fdpm": "r",
			},
		},
	}
	result := plan(t, engine.Options{}, types.RuleSet{"all.export": "exports:xrootd;KeyVal;StringHash"}, tree)

	expected := []engine.Edit{
		{Kind: engine.UpdateLine, Keyword: "all.export", LineFormat: rules.KeyVal, Value: "/dpm r", Line: "all.export /dpm r", Anchored: true},
		{Kind: engine.UpdateLine, Keyword: "all.export", LineFormat: rules.KeyVal, Value: "admin x  y", Line: "all.export admin x y", Anchored: true},
	}
	if diff := cmp.Diff(expected, result.Edits()); diff != "" {
		t.Errorf("edits mismatch (-want +got):\n%s", diff)
	}
}

func TestPlan_ArraySingleFansOut(t *testing.T) {
	tree := types.ConfigTree{
		"a": map[string]interface{}{"managers": []interface{}{"m2", "m1"}},
		"b": map[string]interface{}{"managers": []interface{}{"m1"}},
	}
	result := plan(t, engine.Options{}, types.RuleSet{"all.manager": "managers:a,b;KeyVal;Array:Single|Unique"}, tree)

	edits := result.Edits()
	require.Len(t, edits, 2)
	assert.Equal(t, "all.manager m1", edits[0].Line)
	assert.Equal(t, "all.manager m2", edits[1].Line)
	for _, edit := range edits {
		assert.True(t, edit.Anchored)
	}
}

func TestPlan_AggregatesOptionSets(t *testing.T) {
	tree := types.ConfigTree{
		"a": map[string]interface{}{"flags": []interface{}{"x", "y"}, "host": "h1"},
		"b": map[string]interface{}{"flags": "z", "host": "h2"},
		"c": map[string]interface{}{},
	}

	result := plan(t, engine.Options{}, types.RuleSet{
		"FLAGS": "flags:a,c,b;KeyVal;Array",
		"HOSTS": "host:a,c,b;ShVar",
	}, tree)

	edits := result.Edits()
	require.Len(t, edits, 2)
	assert.Equal(t, "FLAGS x y z", edits[0].Line)
	assert.Equal(t, `HOSTS="h1 h2"`+marker, edits[1].Line)
}

func TestPlan_BareKeyword(t *testing.T) {
	result := plan(t, engine.Options{}, types.RuleSet{
		"daemonize": ";KeyVal",
		"VERBOSE":   "",
	}, types.ConfigTree{})

	edits := result.Edits()
	require.Len(t, edits, 2)
	assert.Equal(t, "VERBOSE="+marker, edits[0].Line)
	assert.Equal(t, "daemonize", edits[1].Line)
}

func TestPlan_CommentOutKeyword(t *testing.T) {
	result := plan(t, engine.Options{}, types.RuleSet{
		"-GLOBUS_THREAD_MODEL": "globusThreadModel:globus;EnvVar",
		"-LEGACY":              "not a valid rule;Bogus",
	}, types.ConfigTree{"globus": map[string]interface{}{"globusThreadModel": "pthread"}})

	expected := []engine.Edit{
		{Kind: engine.RemoveLine, Keyword: "GLOBUS_THREAD_MODEL", LineFormat: rules.EnvVar},
		{Kind: engine.RemoveLine, Keyword: "LEGACY", LineFormat: rules.ShVar},
	}
	if diff := cmp.Diff(expected, result.Edits()); diff != "" {
		t.Errorf("edits mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, result.RemovedCount)
	assert.Zero(t, result.FailedCount)
}

func TestPlan_RemoveIfUndef(t *testing.T) {
	tree := types.ConfigTree{"dpm": map[string]interface{}{"host": "h1"}}

	tests := []struct {
		name     string
		opts     engine.Options
		ruleSet  types.RuleSet
		expected engine.Outcome
	}{
		{"unmet_condition_is_noop", engine.Options{}, types.RuleSet{"X": "dns->host:dpm;ShVar"}, engine.OutcomeSkipped},
		{"unmet_condition_removes_by_default", engine.Options{RemoveIfUndef: true}, types.RuleSet{"X": "dns->host:dpm;ShVar"}, engine.OutcomeRemoved},
		{"unmet_condition_removes_with_prefix", engine.Options{}, types.RuleSet{"?X": "dns->host:dpm;ShVar"}, engine.OutcomeRemoved},
		{"missing_attribute_is_noop", engine.Options{}, types.RuleSet{"X": "port:dpm;ShVar"}, engine.OutcomeSkipped},
		{"missing_attribute_removes", engine.Options{}, types.RuleSet{"?X": "port:dpm;ShVar"}, engine.OutcomeRemoved},
		{"partial_attribute_removes", engine.Options{RemoveIfUndef: true}, types.RuleSet{"X": "host:dpm,dns;ShVar"}, engine.OutcomeRemoved},
		{"partial_attribute_aggregates", engine.Options{}, types.RuleSet{"X": "host:dpm,dns;ShVar"}, engine.OutcomeUpdated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := plan(t, tt.opts, tt.ruleSet, tree)
			require.Len(t, result.Keywords, 1)

			kr := result.Keywords[0]
			assert.Equal(t, tt.expected, kr.Outcome)
			assert.Equal(t, "X", kr.Name)
			switch tt.expected {
			case engine.OutcomeRemoved:
				require.Len(t, kr.Edits, 1)
				assert.Equal(t, engine.RemoveLine, kr.Edits[0].Kind)
			case engine.OutcomeSkipped:
				assert.Empty(t, kr.Edits)
			}
		})
	}
}

func TestPlan_AlwaysRulesOnly(t *testing.T) {
	tree := types.ConfigTree{"dpm": map[string]interface{}{"host": "h1"}}
	result := plan(t, engine.Options{AlwaysRulesOnly: true, RemoveIfUndef: true}, types.RuleSet{
		"A": "ALWAYS->host:dpm;ShVar",
		"B": "host:dpm;ShVar",
		"C": "dpm->host:dpm;ShVar",
		"D": "!ALWAYS->host:dpm;ShVar",
		"E": "dpm->x:dpm;9",
		"F": "host:dpm;ShVar;Nope",
	}, tree)

	outcomes := map[string]engine.Outcome{}
	for _, kr := range result.Keywords {
		outcomes[kr.Keyword] = kr.Outcome
	}
	assert.Equal(t, map[string]engine.Outcome{
		"A": engine.OutcomeUpdated,
		"B": engine.OutcomeSkipped,
		"C": engine.OutcomeSkipped,
		"D": engine.OutcomeSkipped,
		"E": engine.OutcomeSkipped,
		"F": engine.OutcomeSkipped,
	}, outcomes)
	assert.False(t, result.HasFailures())
}

func TestPlan_ErrorsAreIsolated(t *testing.T) {
	tree := types.ConfigTree{"dpm": map[string]interface{}{
		"host":  "h1",
		"nodes": []interface{}{"n1"},
	}}
	result := plan(t, engine.Options{}, types.RuleSet{
		"A": "host:dpm;Bogus",
		"B": "host:dpm;ShVar;Bogus",
		"C": "!host:dpm;ShVar",
		"D": "nodes:dpm;ShVar",
		"E": "host:dpm;ShVar",
	}, tree)

	require.Len(t, result.Keywords, 5)
	codes := []errors.ErrorCode{
		errors.ErrInvalidLineFormat,
		errors.ErrInvalidValueFormat,
		errors.ErrRuleParse,
		errors.ErrInvalidValue,
	}
	for i, code := range codes {
		kr := result.Keywords[i]
		assert.Equal(t, engine.OutcomeFailed, kr.Outcome, kr.Keyword)
		assert.True(t, errors.IsErrorCode(kr.Err, code), "%s: got %v", kr.Keyword, kr.Err)
	}
	assert.Equal(t, engine.OutcomeUpdated, result.Keywords[4].Outcome)
	assert.Equal(t, 4, result.FailedCount)
	assert.True(t, result.HasFailures())
}

func TestPlan_MissingArguments(t *testing.T) {
	e := engine.New(engine.Options{})

	_, err := e.Plan(nil, types.ConfigTree{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrArgumentMissing))

	_, err = e.Plan(types.RuleSet{}, nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrArgumentMissing))
}

func TestPlan_KeywordOrder(t *testing.T) {
	result := plan(t, engine.Options{}, types.RuleSet{
		"b":  "",
		"a":  "",
		"-c": "",
		"?d": "",
		"B":  "",
	}, types.ConfigTree{})

	var got []string
	for _, kr := range result.Keywords {
		got = append(got, kr.Keyword)
	}
	assert.Equal(t, []string{"-c", "?d", "B", "a", "b"}, got)
}

func TestPlan_KeywordOrderProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("keywords are processed in lexicographic order", prop.ForAll(
		func(ruleSet map[string]string) bool {
			result, err := engine.New(engine.Options{}).Plan(types.RuleSet(ruleSet), types.ConfigTree{})
			if err != nil || len(result.Keywords) != len(ruleSet) {
				return false
			}
			keywords := make([]string, 0, len(result.Keywords))
			for _, kr := range result.Keywords {
				keywords = append(keywords, kr.Keyword)
			}
			return sort.StringsAreSorted(keywords)
		},
		gen.MapOf(gen.Identifier(), gen.Const("")),
	))

	properties.TestingRun(t)
}
