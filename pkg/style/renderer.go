package style

import (
	"io"

	"github.com/arthur-debert/rbedit/pkg/errors"
)

// Renderer writes command results in one output format.
type Renderer interface {
	// RenderReport writes the outcome of apply or plan for one file
	RenderReport(report Report) error
	// RenderChecks writes the parse result of each rule given to check
	RenderChecks(checks []Check) error
	RenderError(err error) error
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format. FormatAuto is resolved against
// output with DetectFormat.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		return NewRenderer(DetectFormat(output), output)
	case FormatTerminal:
		return &terminalRenderer{output: output}, nil
	case FormatText:
		return &textRenderer{output: output}, nil
	case FormatJSON:
		return newJSONRenderer(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
