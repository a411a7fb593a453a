package anatomy

import (
	"fmt"

	"go.viam.com/jcs/referenceframe"
)

// Datum is one motion-capture sample of bone B's tracker.
type Datum[B Bone] struct {
	frame int
	probe ProbeData
}

// NewDatum wraps the tracker reading taken at the given frame index.
func NewDatum[B Bone](frame int, p ProbeData) *Datum[B] {
	return &Datum[B]{frame: frame, probe: p}
}

// Frame returns the capture frame index.
func (d *Datum[B]) Frame() int {
	return d.frame
}

// Probe returns the raw reading.
func (d *Datum[B]) Probe() ProbeData {
	return d.probe
}

// Pose returns the tracker's pose in the global frame.
func (d *Datum[B]) Pose() referenceframe.Transform[referenceframe.Global, referenceframe.Tracker[B]] {
	q := d.probe.orientation
	return referenceframe.NewTransformFromPose[referenceframe.Global, referenceframe.Tracker[B]](&q, d.probe.translation)
}

func (d *Datum[B]) String() string {
	return fmt.Sprintf("frame %d %s: %s", d.frame, referenceframe.Name[referenceframe.Tracker[B]](), d.probe)
}
