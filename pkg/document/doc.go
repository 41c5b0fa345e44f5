// Package document provides the line buffer rbedit edits.
//
// A Document is loaded from a types.FS, edited in memory through the
// types.Document interface and written back only when its content changed.
// The original content is kept so callers can show a unified diff before
// saving.
package document
