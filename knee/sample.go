package knee

import (
	"go.viam.com/jcs/anatomy"
	"go.viam.com/jcs/jcs"
)

// Sample holds the tracker readings captured in one frame. A nil datum means the tracker was not
// visible in that frame.
type Sample struct {
	Frame   int
	Femur   *anatomy.Datum[anatomy.Femur]
	Tibia   *anatomy.Datum[anatomy.Tibia]
	Patella *anatomy.Datum[anatomy.Patella]
}

// Result is the joint motion computed for one sample. Motions are nil when undefined, with the
// reason in Err.
type Result struct {
	Frame          int
	Tibiofemoral   *jcs.Motion
	Patellofemoral *jcs.Motion
	Err            error
}

// Defined reports whether the sample produced tibiofemoral motion.
func (r Result) Defined() bool {
	return r.Tibiofemoral != nil
}
