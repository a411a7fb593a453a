// Package referenceframe defines the coordinate frames used in joint kinematics and the frame-typed
// rigid transform algebra between them.
//
// Frames are zero-size tag types. A Transform carries its source and target frames as type parameters,
// so composing a Transform[A, G] with anything other than a Transform[G, B] does not compile.
// Frame identity is purely a compile-time property: the algebra never inspects tags at runtime.
package referenceframe

// Frame is implemented by every frame tag. FrameName is only used for logs and printing.
type Frame interface {
	FrameName() string
}

// Global is the fixed laboratory frame the motion-capture system reports poses in.
type Global struct{}

// FrameName returns "global".
func (Global) FrameName() string {
	return "global"
}

// Tracker is the frame of the rigid marker cluster attached to body B.
type Tracker[B Frame] struct{}

// FrameName returns the body's name suffixed with "_tracker".
func (Tracker[B]) FrameName() string {
	return Name[B]() + "_tracker"
}

// Probe is the frame of the calibration probe used to digitize landmarks.
type Probe struct{}

// FrameName returns "probe".
func (Probe) FrameName() string {
	return "probe"
}

// Name returns the name of frame F.
func Name[F Frame]() string {
	var f F
	return f.FrameName()
}
