// pkg/document/save_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero MemMapFs
// PURPOSE: Test writing documents back with backups and diffs

package document_test

import (
	"testing"

	"github.com/arthur-debert/rbedit/pkg/document"
	"github.com/arthur-debert/rbedit/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave_UnchangedDoesNotWrite(t *testing.T) {
	doc, fsys := openWith(t, "A=1\n")

	written, err := doc.Save(document.SaveOptions{Backup: true})
	require.NoError(t, err)
	assert.False(t, written)

	_, err = fsys.Stat("/etc/sysconfig/dpm.old")
	assert.Error(t, err, "no backup expected for an unchanged file")
}

func TestSave_WritesAndKeepsMode(t *testing.T) {
	doc, fsys := openWith(t, "A=1\n")
	doc.SetLines([]string{"A=2"})

	written, err := doc.Save(document.SaveOptions{})
	require.NoError(t, err)
	assert.True(t, written)
	assert.False(t, doc.Changed())

	data, err := fsys.ReadFile("/etc/sysconfig/dpm")
	require.NoError(t, err)
	assert.Equal(t, "A=2\n", string(data))

	_, err = fsys.Stat("/etc/sysconfig/dpm.rbedit-tmp")
	assert.Error(t, err, "temporary file must be renamed away")
}

func TestSave_Backup(t *testing.T) {
	doc, fsys := openWith(t, "A=1\n")
	doc.SetLines([]string{"A=2"})

	_, err := doc.Save(document.SaveOptions{Backup: true})
	require.NoError(t, err)

	backup, err := fsys.ReadFile("/etc/sysconfig/dpm.old")
	require.NoError(t, err)
	assert.Equal(t, "A=1\n", string(backup))
}

func TestSave_BackupCustomSuffix(t *testing.T) {
	doc, fsys := openWith(t, "A=1\n")
	doc.SetLines([]string{"A=2"})

	_, err := doc.Save(document.SaveOptions{Backup: true, BackupSuffix: ".orig"})
	require.NoError(t, err)

	_, err = fsys.Stat("/etc/sysconfig/dpm.orig")
	assert.NoError(t, err)
}

func TestSave_CreatesMissingFile(t *testing.T) {
	fsys := filesystem.NewMemory()
	doc, err := document.Open(fsys, "/etc/xrootd/xrootd.cfg")
	require.NoError(t, err)

	doc.SetLines([]string{"all.role server"})
	written, err := doc.Save(document.SaveOptions{Backup: true, Mode: 0600})
	require.NoError(t, err)
	assert.True(t, written)

	data, err := fsys.ReadFile("/etc/xrootd/xrootd.cfg")
	require.NoError(t, err)
	assert.Equal(t, "all.role server\n", string(data))

	info, err := fsys.Stat("/etc/xrootd/xrootd.cfg")
	require.NoError(t, err)
	assert.Equal(t, "-rw-------", info.Mode().Perm().String())

	_, err = fsys.Stat("/etc/xrootd/xrootd.cfg.old")
	assert.Error(t, err, "nothing to back up for a new file")
}

func TestDiff(t *testing.T) {
	doc, _ := openWith(t, "A=1\nB=2\n")

	diff, err := doc.Diff()
	require.NoError(t, err)
	assert.Empty(t, diff)

	doc.SetLines([]string{"A=1", "B=3"})
	diff, err = doc.Diff()
	require.NoError(t, err)
	assert.Contains(t, diff, "--- /etc/sysconfig/dpm (current)")
	assert.Contains(t, diff, "+++ /etc/sysconfig/dpm (updated)")
	assert.Contains(t, diff, "-B=2")
	assert.Contains(t, diff, "+B=3")
}
