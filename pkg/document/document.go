package document

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/rbedit/pkg/errors"
	"github.com/arthur-debert/rbedit/pkg/logging"
	"github.com/arthur-debert/rbedit/pkg/types"
)

// DefaultMode is used when a new file is created without an explicit mode
const DefaultMode fs.FileMode = 0644

// Document implements types.Document on top of a types.FS
type Document struct {
	fs       types.FS
	path     string
	original []string
	lines    []string
	cursor   int
	exists   bool
	mode     fs.FileMode

	// trailingNewline records whether the file ended with a newline
	trailingNewline bool
}

var _ types.Document = (*Document)(nil)

// Open reads path from fsys. A missing file yields an empty document that
// will be created on Save.
func Open(fsys types.FS, path string) (*Document, error) {
	logger := logging.GetLogger("document")

	d := &Document{fs: fsys, path: path, mode: DefaultMode, trailingNewline: true}

	info, err := fsys.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("File does not exist, starting empty")
			return d, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot stat %s", path).WithDetail("path", path)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrFileRead, "%s is a directory", path).WithDetail("path", path)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", path).WithDetail("path", path)
	}

	d.exists = true
	d.mode = info.Mode().Perm()
	var trailing bool
	d.original, trailing = splitLines(string(data))
	d.trailingNewline = trailing || len(data) == 0
	d.lines = append([]string(nil), d.original...)

	logger.Debug().
		Str("path", path).
		Int("lines", len(d.lines)).
		Msg("Document loaded")
	return d, nil
}

// FromString builds a document that is not backed by any file. Save on such
// a document fails.
func FromString(content string) *Document {
	lines, trailing := splitLines(content)
	return &Document{
		original:        lines,
		lines:           append([]string(nil), lines...),
		mode:            DefaultMode,
		trailingNewline: trailing || content == "",
	}
}

// Path returns the file the document was opened from
func (d *Document) Path() string {
	return d.path
}

// Exists reports whether the file existed when the document was opened
func (d *Document) Exists() bool {
	return d.exists
}

// SeekBegin rewinds the line cursor
func (d *Document) SeekBegin() {
	d.cursor = 0
}

// ReadLine returns the line under the cursor and advances it
func (d *Document) ReadLine() (string, bool) {
	if d.cursor >= len(d.lines) {
		return "", false
	}
	line := d.lines[d.cursor]
	d.cursor++
	return line, true
}

// Lines returns a copy of the current content
func (d *Document) Lines() []string {
	return append([]string(nil), d.lines...)
}

// SetLines replaces the content and rewinds the cursor
func (d *Document) SetLines(lines []string) {
	d.lines = append([]string(nil), lines...)
	d.cursor = 0
}

// AddOrReplaceLines replaces lines matching match but not good with line.
// When no line matches match, line is inserted at whence.
func (d *Document) AddOrReplaceLines(match, good *regexp.Regexp, line string, whence types.Whence) int {
	matched := false
	written := 0
	for i, current := range d.lines {
		if !match.MatchString(current) {
			continue
		}
		matched = true
		if good != nil && good.MatchString(current) {
			continue
		}
		d.lines[i] = line
		written++
	}

	if matched {
		return written
	}

	switch whence {
	case types.BeginningOfFile:
		d.lines = append([]string{line}, d.lines...)
	default:
		d.lines = append(d.lines, line)
	}
	d.cursor = 0
	return 1
}

// Changed reports whether the content differs from what was loaded
func (d *Document) Changed() bool {
	if len(d.lines) != len(d.original) {
		return true
	}
	for i := range d.lines {
		if d.lines[i] != d.original[i] {
			return true
		}
	}
	return false
}

// String renders the current content as it would be written
func (d *Document) String() string {
	return joinLines(d.lines, d.trailingNewline)
}

// Original renders the content as it was loaded
func (d *Document) Original() string {
	return joinLines(d.original, d.trailingNewline)
}

func splitLines(content string) ([]string, bool) {
	if content == "" {
		return nil, false
	}
	trailing := strings.HasSuffix(content, "\n")
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n"), trailing
}

func joinLines(lines []string, trailing bool) string {
	if len(lines) == 0 {
		return ""
	}
	out := strings.Join(lines, "\n")
	if trailing {
		out += "\n"
	}
	return out
}

func (d *Document) dir() string {
	return filepath.Dir(d.path)
}
