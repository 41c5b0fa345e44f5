package types

import (
	"io/fs"
	"regexp"
)

// FS is the filesystem interface required for document operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Other operations
	Remove(name string) error
	Rename(oldpath, newpath string) error
}

// Whence selects where AddOrReplaceLines inserts a line that matched nothing
type Whence int

const (
	// BeginningOfFile inserts the line before the first line of the document
	BeginningOfFile Whence = iota
	// EndOfFile appends the line after the last line of the document
	EndOfFile
)

// String returns the string representation of the insertion anchor
func (w Whence) String() string {
	switch w {
	case BeginningOfFile:
		return "beginning"
	case EndOfFile:
		return "end"
	default:
		return "unknown"
	}
}

// Document is the line buffer the rule engine edits.
// A Document is bound to a single file and is not safe for concurrent use.
type Document interface {
	// SeekBegin rewinds the line cursor used by ReadLine
	SeekBegin()

	// ReadLine returns the next line and false once the end is reached
	ReadLine() (string, bool)

	// Lines returns a copy of the current content, one entry per line
	Lines() []string

	// SetLines replaces the whole content
	SetLines(lines []string)

	// AddOrReplaceLines replaces every line matching match that does not
	// also match good with line. If no line matches match, line is inserted
	// at whence. It returns the number of lines written.
	AddOrReplaceLines(match, good *regexp.Regexp, line string, whence Whence) int
}
