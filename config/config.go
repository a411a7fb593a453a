// Package config reads the JSON description of a knee capture session: which side was measured, how
// the tracker export maps to bones, and every bone's calibration readings.
package config

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/jcs/anatomy"
	"go.viam.com/jcs/knee"
	"go.viam.com/jcs/logging"
	"go.viam.com/jcs/polaris"
)

// Config is a knee capture session.
type Config struct {
	Side string `json:"side" jsonschema:"enum=right,enum=left"`
	// TranslationScale converts input translations into output units. Zero means 1.
	TranslationScale float64 `json:"translation_scale,omitempty"`
	// Parallelism bounds concurrent sample solving. Zero means one per CPU.
	Parallelism int                 `json:"parallelism,omitempty"`
	Tools       polaris.ToolMapping `json:"tools"`

	Femur   *BoneCalibration `json:"femur"`
	Tibia   *BoneCalibration `json:"tibia"`
	Patella *BoneCalibration `json:"patella,omitempty"`

	// ConfigFilePath is where the config was read from, if anywhere.
	ConfigFilePath string `json:"-"`
}

// BoneCalibration holds the readings taken while calibrating one bone. Far is the landmark at the
// opposite end from the knee: proximal for the femur, distal for the tibia and patella.
type BoneCalibration struct {
	Medial  *ProbeReading `json:"medial"`
	Lateral *ProbeReading `json:"lateral"`
	Far     *ProbeReading `json:"far"`
	Tracker *ProbeReading `json:"tracker"`
}

// ProbeReading is a raw quaternion and translation as reported by the tracking system.
type ProbeReading struct {
	Name  string  `json:"name,omitempty"`
	Label string  `json:"label,omitempty"`
	Q0    float64 `json:"q0"`
	Qx    float64 `json:"qx"`
	Qy    float64 `json:"qy"`
	Qz    float64 `json:"qz"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
}

// Validate ensures all parts of the config are valid. Every problem found is reported.
func (cfg *Config) Validate() error {
	var errs error
	if _, err := anatomy.ParseSide(cfg.Side); err != nil {
		errs = multierr.Append(errs, NewFieldError("", "side", err))
	}
	if cfg.TranslationScale < 0 {
		errs = multierr.Append(errs, NewFieldError("", "translation_scale",
			errors.Errorf("must not be negative, got %v", cfg.TranslationScale)))
	}
	if cfg.Parallelism < 0 {
		errs = multierr.Append(errs, NewFieldError("", "parallelism",
			errors.Errorf("must not be negative, got %d", cfg.Parallelism)))
	}
	if cfg.Tools.Femur == "" {
		errs = multierr.Append(errs, NewFieldRequiredError("tools", "femur"))
	}
	if cfg.Tools.Tibia == "" {
		errs = multierr.Append(errs, NewFieldRequiredError("tools", "tibia"))
	}

	if cfg.Femur == nil {
		errs = multierr.Append(errs, NewFieldRequiredError("", "femur"))
	} else {
		errs = multierr.Append(errs, cfg.Femur.Validate("femur"))
	}
	if cfg.Tibia == nil {
		errs = multierr.Append(errs, NewFieldRequiredError("", "tibia"))
	} else {
		errs = multierr.Append(errs, cfg.Tibia.Validate("tibia"))
	}
	if cfg.Patella != nil {
		errs = multierr.Append(errs, cfg.Patella.Validate("patella"))
		if cfg.Tools.Patella == "" {
			errs = multierr.Append(errs, NewFieldRequiredError("tools", "patella"))
		}
	}
	return errs
}

// Validate ensures every reading is present and has a usable quaternion.
func (bc *BoneCalibration) Validate(path string) error {
	var errs error
	for _, r := range []struct {
		field   string
		reading *ProbeReading
	}{
		{"medial", bc.Medial},
		{"lateral", bc.Lateral},
		{"far", bc.Far},
		{"tracker", bc.Tracker},
	} {
		if r.reading == nil {
			errs = multierr.Append(errs, NewFieldRequiredError(path, r.field))
			continue
		}
		if _, err := r.reading.ProbeData(1); err != nil {
			errs = multierr.Append(errs, NewFieldError(path, r.field, err))
		}
	}
	return errs
}

// ProbeData converts the reading, multiplying its translation by scale.
func (pr *ProbeReading) ProbeData(scale float64) (anatomy.ProbeData, error) {
	p, err := anatomy.NewProbeData(pr.Name, pr.Label, pr.Q0, pr.Qx, pr.Qy, pr.Qz, r3.Vector{X: pr.X, Y: pr.Y, Z: pr.Z})
	if err != nil {
		return anatomy.ProbeData{}, err
	}
	return p.Scaled(scale), nil
}

// Scale returns the translation scale, defaulting to 1.
func (cfg *Config) Scale() float64 {
	if cfg.TranslationScale == 0 {
		return 1
	}
	return cfg.TranslationScale
}

// Session calibrates every configured bone and returns the knee session.
func (cfg *Config) Session(logger logging.Logger) (*knee.Session, error) {
	side, err := anatomy.ParseSide(cfg.Side)
	if err != nil {
		return nil, err
	}
	scale := cfg.Scale()

	femur, err := buildBody[anatomy.Femur, anatomy.Proximal](cfg.Femur, side, scale)
	if err != nil {
		return nil, err
	}
	tibia, err := buildBody[anatomy.Tibia, anatomy.Distal](cfg.Tibia, side, scale)
	if err != nil {
		return nil, err
	}
	var patella *anatomy.RigidBody[anatomy.Patella]
	if cfg.Patella != nil {
		if patella, err = buildBody[anatomy.Patella, anatomy.Distal](cfg.Patella, side, scale); err != nil {
			return nil, err
		}
	}

	return knee.NewSession(knee.Config{
		Side:        side,
		Femur:       femur,
		Tibia:       tibia,
		Patella:     patella,
		Parallelism: cfg.Parallelism,
	}, logger.Sublogger("knee"))
}

// buildBody calibrates bone B whose far landmark plays role Far. Absent readings are left out of the
// builder so that Build reports them.
func buildBody[B anatomy.Bone, Far anatomy.Role](
	bc *BoneCalibration, side anatomy.Side, scale float64,
) (*anatomy.RigidBody[B], error) {
	b := anatomy.NewBuilder[B]().WithSide(side)
	if bc == nil {
		bc = &BoneCalibration{}
	}
	var errs error
	probe := func(r *ProbeReading, set func(anatomy.ProbeData)) {
		if r == nil {
			return
		}
		p, err := r.ProbeData(scale)
		if err != nil {
			errs = multierr.Append(errs, err)
			return
		}
		set(p)
	}
	probe(bc.Medial, func(p anatomy.ProbeData) { b = b.WithMedial(anatomy.NewLandmark[B, anatomy.Medial](p)) })
	probe(bc.Lateral, func(p anatomy.ProbeData) { b = b.WithLateral(anatomy.NewLandmark[B, anatomy.Lateral](p)) })
	probe(bc.Far, func(p anatomy.ProbeData) { b = b.WithFar(anatomy.NewLandmark[B, Far](p)) })
	probe(bc.Tracker, func(p anatomy.ProbeData) { b = b.WithTrackerProbe(p) })
	if errs != nil {
		return nil, errs
	}
	return b.Build()
}
