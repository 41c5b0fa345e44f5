package document

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Diff returns a unified diff from the loaded content to the current one.
// It is empty when nothing changed.
func (d *Document) Diff() (string, error) {
	if !d.Changed() {
		return "", nil
	}
	name := d.path
	if name == "" {
		name = "document"
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(d.Original()),
		B:        difflib.SplitLines(d.String()),
		FromFile: name + " (current)",
		ToFile:   name + " (updated)",
		Context:  3,
	})
}
