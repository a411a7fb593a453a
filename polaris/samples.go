package polaris

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/jcs/anatomy"
	"go.viam.com/jcs/knee"
)

// ToolMapping names the tool tracking each bone. An empty name means the bone is not tracked.
type ToolMapping struct {
	Femur   string `json:"femur"`
	Tibia   string `json:"tibia"`
	Patella string `json:"patella,omitempty"`
}

// Samples converts every row into a knee sample, multiplying translations by scale. Every tool named
// in m must appear in the recording.
func (rec *Recording) Samples(m ToolMapping, scale float64) ([]knee.Sample, error) {
	known := map[string]bool{}
	for _, tool := range rec.Tools {
		known[tool] = true
	}
	var errs error
	for _, tool := range []string{m.Femur, m.Tibia, m.Patella} {
		if tool != "" && !known[tool] {
			errs = multierr.Append(errs, errors.Errorf("tool %q not in recording", tool))
		}
	}
	if errs != nil {
		return nil, errs
	}

	samples := make([]knee.Sample, 0, len(rec.Rows))
	for _, row := range rec.Rows {
		samples = append(samples, knee.Sample{
			Frame:   row.Frame,
			Femur:   datum[anatomy.Femur](row, m.Femur, scale),
			Tibia:   datum[anatomy.Tibia](row, m.Tibia, scale),
			Patella: datum[anatomy.Patella](row, m.Patella, scale),
		})
	}
	return samples, nil
}

func datum[B anatomy.Bone](row Row, tool string, scale float64) *anatomy.Datum[B] {
	if tool == "" {
		return nil
	}
	p, ok := row.Readings[tool]
	if !ok {
		return nil
	}
	return anatomy.NewDatum[B](row.Frame, p.Scaled(scale))
}
