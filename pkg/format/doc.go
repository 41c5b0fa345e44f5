// Package format renders attribute values and keyword lines, and builds the
// regular expressions that find an existing line for a keyword.
//
// Rendering happens in three steps. RenderValue turns a raw attribute value
// into text according to a value format. QuoteValue applies the shell quoting
// pass for ShVar and EnvVar lines. FormatLine assembles keyword and value
// according to the line format.
//
// LinePattern and ValuePattern match both active and commented-out lines, so
// the same expression serves to replace a line and to comment it out.
package format
