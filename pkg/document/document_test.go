// pkg/document/document_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero MemMapFs
// PURPOSE: Test line buffer loading and editing primitives

package document_test

import (
	"regexp"
	"testing"

	"github.com/arthur-debert/rbedit/pkg/document"
	"github.com/arthur-debert/rbedit/pkg/errors"
	"github.com/arthur-debert/rbedit/pkg/filesystem"
	"github.com/arthur-debert/rbedit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openWith(t *testing.T, content string) (*document.Document, types.FS) {
	t.Helper()
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/etc/sysconfig", 0755))
	require.NoError(t, fsys.WriteFile("/etc/sysconfig/dpm", []byte(content), 0640))
	doc, err := document.Open(fsys, "/etc/sysconfig/dpm")
	require.NoError(t, err)
	return doc, fsys
}

func TestOpen_MissingFileIsEmpty(t *testing.T) {
	fsys := filesystem.NewMemory()

	doc, err := document.Open(fsys, "/etc/new.conf")
	require.NoError(t, err)
	assert.False(t, doc.Exists())
	assert.Empty(t, doc.Lines())
	assert.False(t, doc.Changed())
}

func TestOpen_Directory(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/etc", 0755))

	_, err := document.Open(fsys, "/etc")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))
}

func TestReadLine(t *testing.T) {
	doc, _ := openWith(t, "a\nb\n")

	var got []string
	doc.SeekBegin()
	for {
		line, ok := doc.ReadLine()
		if !ok {
			break
		}
		got = append(got, line)
	}
	assert.Equal(t, []string{"a", "b"}, got)

	doc.SeekBegin()
	line, ok := doc.ReadLine()
	assert.True(t, ok)
	assert.Equal(t, "a", line)
}

func TestAddOrReplaceLines(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		match    string
		good     string
		line     string
		whence   types.Whence
		expected []string
		written  int
	}{
		{
			name:     "replace_matching_line",
			content:  "A=1\nB=2\n",
			match:    `^A=`,
			good:     `^A=3$`,
			line:     "A=3",
			whence:   types.EndOfFile,
			expected: []string{"A=3", "B=2"},
			written:  1,
		},
		{
			name:     "good_line_is_kept",
			content:  "A=3\nB=2\n",
			match:    `^A=`,
			good:     `^A=3$`,
			line:     "A=3",
			whence:   types.EndOfFile,
			expected: []string{"A=3", "B=2"},
			written:  0,
		},
		{
			name:     "every_match_is_replaced",
			content:  "A=1\n#A=2\nB=2\n",
			match:    `^#?A=`,
			good:     `^A=3$`,
			line:     "A=3",
			whence:   types.EndOfFile,
			expected: []string{"A=3", "A=3", "B=2"},
			written:  2,
		},
		{
			name:     "append_when_nothing_matches",
			content:  "B=2\n",
			match:    `^A=`,
			good:     `^A=3$`,
			line:     "A=3",
			whence:   types.EndOfFile,
			expected: []string{"B=2", "A=3"},
			written:  1,
		},
		{
			name:     "insert_at_beginning",
			content:  "B=2\n",
			match:    `^A=`,
			good:     `^A=3$`,
			line:     "A=3",
			whence:   types.BeginningOfFile,
			expected: []string{"A=3", "B=2"},
			written:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, _ := openWith(t, tt.content)

			written := doc.AddOrReplaceLines(regexp.MustCompile(tt.match), regexp.MustCompile(tt.good), tt.line, tt.whence)

			assert.Equal(t, tt.written, written)
			assert.Equal(t, tt.expected, doc.Lines())
		})
	}
}

func TestChangedAndString(t *testing.T) {
	doc, _ := openWith(t, "A=1\nB=2\n")
	assert.False(t, doc.Changed())

	doc.SetLines([]string{"A=1", "B=3"})
	assert.True(t, doc.Changed())
	assert.Equal(t, "A=1\nB=3\n", doc.String())
	assert.Equal(t, "A=1\nB=2\n", doc.Original())

	doc.SetLines([]string{"A=1", "B=2"})
	assert.False(t, doc.Changed())
}

func TestString_KeepsMissingTrailingNewline(t *testing.T) {
	doc, _ := openWith(t, "A=1")
	doc.SetLines([]string{"A=2"})
	assert.Equal(t, "A=2", doc.String())
}

func TestFromString(t *testing.T) {
	doc := document.FromString("x\ny\n")
	assert.Equal(t, []string{"x", "y"}, doc.Lines())

	_, err := doc.Save(document.SaveOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
}
