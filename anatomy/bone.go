package anatomy

import (
	"github.com/golang/geo/r3"

	"go.viam.com/jcs/referenceframe"
)

// Role is the anatomical role a landmark plays in building a bone's fixed frame.
type Role interface {
	RoleName() string
}

// Medial landmark, e.g. the medial epicondyle.
type Medial struct{}

// RoleName returns "medial".
func (Medial) RoleName() string { return "medial" }

// Lateral landmark, e.g. the lateral epicondyle.
type Lateral struct{}

// RoleName returns "lateral".
func (Lateral) RoleName() string { return "lateral" }

// Distal landmark, the far end of a bone whose frame origin is proximal.
type Distal struct{}

// RoleName returns "distal".
func (Distal) RoleName() string { return "distal" }

// Proximal landmark, the far end of a bone whose frame origin is distal.
type Proximal struct{}

// RoleName returns "proximal".
func (Proximal) RoleName() string { return "proximal" }

// Bone is an anatomical frame tag that knows how its fixed frame is oriented.
type Bone interface {
	referenceframe.Frame
	// FarRole is the role of the landmark at the opposite end of the bone from the frame origin.
	FarRole() Role
	// LongAxis returns the unnormalized provisional shaft axis.
	LongAxis(origin, far r3.Vector) r3.Vector
	// MediolateralAxis returns the unnormalized i axis for the given side.
	MediolateralAxis(medial, lateral r3.Vector, side Side) r3.Vector
}

// Femur is the thigh bone. Its frame origin is at the knee and its far landmark is proximal (hip).
type Femur struct{}

// FrameName returns "femur".
func (Femur) FrameName() string { return "femur" }

// FarRole returns Proximal.
func (Femur) FarRole() Role { return Proximal{} }

// LongAxis points from the knee towards the hip.
func (Femur) LongAxis(origin, far r3.Vector) r3.Vector {
	return far.Sub(origin)
}

// MediolateralAxis is medial - lateral on the right and lateral - medial on the left, the opposite of
// the tibia and patella.
func (Femur) MediolateralAxis(medial, lateral r3.Vector, side Side) r3.Vector {
	if side == Right {
		return medial.Sub(lateral)
	}
	return lateral.Sub(medial)
}

// Tibia is the shin bone. Its frame origin is at the knee and its far landmark is distal (ankle).
type Tibia struct{}

// FrameName returns "tibia".
func (Tibia) FrameName() string { return "tibia" }

// FarRole returns Distal.
func (Tibia) FarRole() Role { return Distal{} }

// LongAxis points from the ankle towards the knee.
func (Tibia) LongAxis(origin, far r3.Vector) r3.Vector {
	return origin.Sub(far)
}

// MediolateralAxis is lateral - medial on the right, medial - lateral on the left.
func (Tibia) MediolateralAxis(medial, lateral r3.Vector, side Side) r3.Vector {
	return tibialMediolateral(medial, lateral, side)
}

// Patella is the kneecap. It follows the tibia's conventions with a distal far landmark.
type Patella struct{}

// FrameName returns "patella".
func (Patella) FrameName() string { return "patella" }

// FarRole returns Distal.
func (Patella) FarRole() Role { return Distal{} }

// LongAxis points from the distal pole upwards.
func (Patella) LongAxis(origin, far r3.Vector) r3.Vector {
	return origin.Sub(far)
}

// MediolateralAxis is lateral - medial on the right, medial - lateral on the left.
func (Patella) MediolateralAxis(medial, lateral r3.Vector, side Side) r3.Vector {
	return tibialMediolateral(medial, lateral, side)
}

func tibialMediolateral(medial, lateral r3.Vector, side Side) r3.Vector {
	if side == Right {
		return lateral.Sub(medial)
	}
	return medial.Sub(lateral)
}
