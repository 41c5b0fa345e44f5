// Package rules implements the rule language of the line editor.
//
// A rule set maps keywords (the literal token that identifies a line in the
// edited file) to rule strings. This package parses one rule string into a
// ParsedRule and decides, against a configuration tree, whether the keyword
// must be updated, commented out, or left alone.
//
// # Rule Grammar
//
//	[ "!" ] [ condition "->" ] attribute [ ":" option_set ("," option_set)* ] [ ";" line_format [ ";" value_format [ ":" value_options ] ] ]
//
// The condition is one of:
//
//   - `option_set` - satisfied when the option set exists in the tree
//   - `attribute:option_set` - satisfied when the option set contains the attribute
//   - `ALWAYS` - always satisfied; the only condition kept in always-rules-only mode
//
// A leading `!` negates the condition. Existence is what is tested: an
// attribute set to 0 or to the empty string satisfies the condition.
//
// Line and value formats are given by number or by name:
//
//	allowCoreDump:dpm;1;1
//	allowCoreDump:dpm;ShVar;Boolean
//	dpm->diskFlags:dpm,dpns;ShVar;Array:Unique|Sorted
//
// The option set GLOBAL reads attributes from the top level of the tree. A rule
// without option sets reads from GLOBAL.
//
// # Keywords
//
// A keyword starting with `-` comments out matching lines whatever the rule
// says. A keyword starting with `?` turns on remove-if-undefined for that rule.
package rules
