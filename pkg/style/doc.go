// Package style renders rbedit results for humans and machines.
//
// Three renderers share the Renderer interface: a terminal renderer with
// adaptive lipgloss colours and pterm badges, a plain text renderer for pipes
// and NO_COLOR, and a JSON renderer. FormatAuto picks between terminal and
// text by looking at the output file.
package style
