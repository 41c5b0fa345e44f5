// Package engine applies a rule set to a line-oriented configuration file.
//
// A run walks the rule set keywords in lexicographic order. Each keyword is
// resolved against the configuration tree into a list of edits: UpdateLine
// writes a managed line, RemoveLine comments out lines for the keyword. Plan
// computes those edits without touching any document; Apply makes sure the
// managed-file banner is present and then applies the edits to a
// types.Document.
//
// Errors are isolated per keyword. A rule that fails to parse or format is
// reported with OutcomeFailed in the Result and the run continues with the
// next keyword. Only a missing rule set, configuration tree or document
// aborts a run, before any edit is made.
package engine
