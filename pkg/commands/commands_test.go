// TEST TYPE: Integration Test
// DEPENDENCIES: afero MemMapFs via testutil
// PURPOSE: Test the edit, plan and check commands end to end

package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/rbedit/pkg/commands"
	"github.com/arthur-debert/rbedit/pkg/document"
	"github.com/arthur-debert/rbedit/pkg/engine"
	rberrors "github.com/arthur-debert/rbedit/pkg/errors"
	"github.com/arthur-debert/rbedit/pkg/testutil"
)

const (
	rulesToml = `DPM_HOST = "host:dpm;ShVar"
ALLOW_COREDUMP = "allowCoreDump:dpm;ShVar;Boolean"
`
	profileYaml = `dpm:
  host: dpm01.example.org
  allowCoreDump: true
`
	target = "/etc/sysconfig/dpm"
)

func inputs(t *testing.T, files map[string]string) commands.InputOptions {
	t.Helper()
	all := map[string]string{
		"/work/rules.toml":   rulesToml,
		"/work/profile.yaml": profileYaml,
	}
	for k, v := range files {
		all[k] = v
	}
	return commands.InputOptions{
		FS:          testutil.MemFS(t, all),
		RulesPath:   "/work/rules.toml",
		ProfilePath: "/work/profile.yaml",
	}
}

func TestEditFile_WritesFile(t *testing.T) {
	in := inputs(t, map[string]string{target: "DPM_HOST=old\n"})

	res, err := commands.EditFile(commands.EditFileOptions{
		InputOptions: in,
		FilePath:     target,
		Save:         document.SaveOptions{Backup: true},
	})
	require.NoError(t, err)

	assert.True(t, res.Written)
	assert.Equal(t, 2, res.Result.UpdatedCount)
	assert.Contains(t, res.Diff, "-DPM_HOST=old")

	content := testutil.MustRead(t, in.FS, target)
	assert.Contains(t, content, engine.HeaderText+"\n#\n")
	assert.Contains(t, content, "DPM_HOST=dpm01.example.org\t\t# Line generated by Quattor\n")
	assert.Contains(t, content, "ALLOW_COREDUMP=\"yes\"\t\t# Line generated by Quattor\n")
	assert.Equal(t, "DPM_HOST=old\n", testutil.MustRead(t, in.FS, target+".old"))
}

func TestEditFile_SecondRunIsNoop(t *testing.T) {
	in := inputs(t, nil)
	opts := commands.EditFileOptions{InputOptions: in, FilePath: target}

	first, err := commands.EditFile(opts)
	require.NoError(t, err)
	assert.True(t, first.Written)

	second, err := commands.EditFile(opts)
	require.NoError(t, err)
	assert.False(t, second.Written)
	assert.Empty(t, second.Diff)
}

func TestEditFile_DryRunDoesNotWrite(t *testing.T) {
	in := inputs(t, nil)

	res, err := commands.EditFile(commands.EditFileOptions{
		InputOptions: in,
		FilePath:     target,
		DryRun:       true,
	})
	require.NoError(t, err)

	assert.False(t, res.Written)
	assert.True(t, res.DryRun)
	assert.Contains(t, res.Diff, "+DPM_HOST=dpm01.example.org")
	_, err = in.FS.Stat(target)
	assert.Error(t, err)
}

func TestEditFile_Errors(t *testing.T) {
	t.Run("missing file path", func(t *testing.T) {
		_, err := commands.EditFile(commands.EditFileOptions{InputOptions: inputs(t, nil)})
		assert.True(t, rberrors.IsErrorCode(err, rberrors.ErrArgumentMissing))
	})

	t.Run("missing rules", func(t *testing.T) {
		in := inputs(t, nil)
		in.RulesPath = "/work/none.toml"
		_, err := commands.EditFile(commands.EditFileOptions{InputOptions: in, FilePath: target})
		assert.True(t, rberrors.IsErrorCode(err, rberrors.ErrRuleSetLoad))
	})

	t.Run("write failure", func(t *testing.T) {
		in := inputs(t, nil)
		in.FS = testutil.NewFailingFS(in.FS).WithError(target, errors.New("read-only"))
		_, err := commands.EditFile(commands.EditFileOptions{InputOptions: in, FilePath: target})
		require.Error(t, err)
	})
}

func TestEditFile_KeywordFailuresAreReported(t *testing.T) {
	in := inputs(t, map[string]string{"/work/rules.toml": `DPM_HOST = "host:dpm;Nope"`})

	res, err := commands.EditFile(commands.EditFileOptions{InputOptions: in, FilePath: target})
	require.NoError(t, err)
	assert.True(t, res.Result.HasFailures())
}

func TestPlanEdits(t *testing.T) {
	res, err := commands.PlanEdits(commands.PlanEditsOptions{InputOptions: inputs(t, nil)})
	require.NoError(t, err)

	edits := res.Edits()
	require.Len(t, edits, 2)
	assert.Equal(t, "ALLOW_COREDUMP", edits[0].Keyword)
	assert.Equal(t, "DPM_HOST", edits[1].Keyword)
}

func TestPlanEdits_Root(t *testing.T) {
	in := inputs(t, map[string]string{
		"/work/profile.yaml": "software:\n  components:\n    dpmlfc:\n" +
			"      dpm:\n        host: h1\n        allowCoreDump: false\n",
	})
	in.Root = "/software/components/dpmlfc"

	res, err := commands.PlanEdits(commands.PlanEditsOptions{InputOptions: in})
	require.NoError(t, err)
	assert.Equal(t, 2, res.UpdatedCount)
}

func TestCheckRules(t *testing.T) {
	checks := commands.CheckRules([]string{"host:dpm;ShVar", "x;Bogus", "!flag"})

	require.Len(t, checks, 3)
	assert.NoError(t, checks[0].Err)
	assert.Equal(t, "host", checks[0].Parsed.Attribute)
	assert.True(t, rberrors.IsErrorCode(checks[1].Err, rberrors.ErrInvalidLineFormat))
	assert.True(t, rberrors.IsErrorCode(checks[2].Err, rberrors.ErrRuleParse))
}
