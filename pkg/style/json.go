package style

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/rbedit/pkg/errors"
)

// jsonRenderer provides JSON output for machine consumption
type jsonRenderer struct {
	encoder *json.Encoder
}

func newJSONRenderer(output io.Writer) *jsonRenderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &jsonRenderer{encoder: encoder}
}

func (r *jsonRenderer) RenderReport(report Report) error {
	return r.encoder.Encode(newReportView(report))
}

func (r *jsonRenderer) RenderChecks(checks []Check) error {
	views := make([]checkView, 0, len(checks))
	for _, c := range checks {
		views = append(views, newCheckView(c))
	}
	return r.encoder.Encode(views)
}

func (r *jsonRenderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	})
}

func (r *jsonRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
