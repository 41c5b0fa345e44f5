package topics

import (
	"github.com/charmbracelet/glamour"
)

// Renderer turns a topic body into what the help command prints. ext is the
// topic file extension, including the dot.
type Renderer interface {
	Render(content, ext string) string
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(content, ext string) string

func (f RendererFunc) Render(content, ext string) string { return f(content, ext) }

// Plain prints topics verbatim.
var Plain Renderer = RendererFunc(func(content, _ string) string { return content })

// Markdown renders ".md" topics with glamour. Style is a glamour standard
// style name ("dark", "light", "notty"); empty picks one from the terminal
// background. Width wraps text when positive.
type Markdown struct {
	Style string
	Width int
}

func (m Markdown) options() []glamour.TermRendererOption {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if m.Style != "" {
		opts[0] = glamour.WithStandardStyle(m.Style)
	}
	if m.Width > 0 {
		opts = append(opts, glamour.WithWordWrap(m.Width))
	}
	return opts
}

// Render falls back to the raw content for other extensions and when glamour
// fails.
func (m Markdown) Render(content, ext string) string {
	if ext != ".md" {
		return content
	}
	tr, err := glamour.NewTermRenderer(m.options()...)
	if err != nil {
		return content
	}
	out, err := tr.Render(content)
	if err != nil {
		return content
	}
	return out
}
