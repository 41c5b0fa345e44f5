// Package filesystem backs types.FS with spf13/afero.
//
// The CLI edits through the OS filesystem, tests through an in-memory one,
// and commands that must not write (plan) through a read-only view of
// either.
package filesystem
