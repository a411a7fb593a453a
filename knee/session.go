// Package knee runs the calibrated femur, tibia and patella of one knee through every motion-capture
// sample and reports the joint motion per sample.
package knee

import (
	"context"
	"runtime"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"go.viam.com/jcs/anatomy"
	"go.viam.com/jcs/jcs"
	"go.viam.com/jcs/logging"
)

// Config describes a calibrated knee. Femur and Tibia are required for tibiofemoral motion; Patella is
// optional. A nil body is treated as uncalibrated and every sample that needs it is undefined.
type Config struct {
	Side    anatomy.Side
	Femur   *anatomy.RigidBody[anatomy.Femur]
	Tibia   *anatomy.RigidBody[anatomy.Tibia]
	Patella *anatomy.RigidBody[anatomy.Patella]

	// Parallelism bounds the number of samples solved at once. Zero means GOMAXPROCS.
	Parallelism int

	// Clock times each Solve call. Nil means the wall clock.
	Clock clock.Clock
}

// Validate checks that the side is set and agrees with every calibrated body.
func (cfg *Config) Validate() error {
	if !cfg.Side.Valid() {
		return errors.Errorf("invalid side %d", cfg.Side)
	}
	var errs error
	check := func(name string, side anatomy.Side) {
		if side != cfg.Side {
			errs = multierr.Append(errs, errors.Errorf("%s calibrated for the %s side, session is %s", name, side, cfg.Side))
		}
	}
	if cfg.Femur != nil {
		check("femur", cfg.Femur.Side())
	}
	if cfg.Tibia != nil {
		check("tibia", cfg.Tibia.Side())
	}
	if cfg.Patella != nil {
		check("patella", cfg.Patella.Side())
	}
	if cfg.Parallelism < 0 {
		errs = multierr.Append(errs, errors.Errorf("parallelism must not be negative, got %d", cfg.Parallelism))
	}
	return errs
}

// Session solves samples for one knee. It holds no mutable state and may be shared.
type Session struct {
	side        anatomy.Side
	femur       *anatomy.RigidBody[anatomy.Femur]
	tibia       *anatomy.RigidBody[anatomy.Tibia]
	patella     *anatomy.RigidBody[anatomy.Patella]
	parallelism int
	clock       clock.Clock
	logger      logging.Logger
}

// NewSession validates cfg and returns a session.
func NewSession(cfg Config, logger logging.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid knee session")
	}
	parallelism := cfg.Parallelism
	if parallelism == 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	if cfg.Femur == nil || cfg.Tibia == nil {
		logger.Warnw("knee not fully calibrated, tibiofemoral motion will be undefined",
			"femur", cfg.Femur != nil, "tibia", cfg.Tibia != nil)
	}
	return &Session{
		side:        cfg.Side,
		femur:       cfg.Femur,
		tibia:       cfg.Tibia,
		patella:     cfg.Patella,
		parallelism: parallelism,
		clock:       clk,
		logger:      logger,
	}, nil
}

// Side returns the side of the body the knee is on.
func (s *Session) Side() anatomy.Side {
	return s.side
}

// Femur returns the calibrated femur, or nil.
func (s *Session) Femur() *anatomy.RigidBody[anatomy.Femur] {
	return s.femur
}

// Tibia returns the calibrated tibia, or nil.
func (s *Session) Tibia() *anatomy.RigidBody[anatomy.Tibia] {
	return s.tibia
}

// Patella returns the calibrated patella, or nil.
func (s *Session) Patella() *anatomy.RigidBody[anatomy.Patella] {
	return s.patella
}

// SolveSample resolves every bone for one sample and decomposes the joint motion. A motion whose
// inputs are undefined is nil and the cause is recorded in Result.Err.
func (s *Session) SolveSample(sample Sample) Result {
	res := Result{Frame: sample.Frame}

	femur, femurErr := s.femur.Resolve(sample.Femur)
	tibia, err := s.tibia.Resolve(sample.Tibia)
	if err = multierr.Combine(femurErr, err); err == nil {
		m, err := jcs.Tibiofemoral().Solve(femur, tibia, s.side)
		if err == nil {
			res.Tibiofemoral = &m
		}
		res.Err = multierr.Append(res.Err, err)
	} else {
		res.Err = multierr.Append(res.Err, errors.Wrap(err, "tibiofemoral"))
	}

	if s.patella != nil {
		patella, err := s.patella.Resolve(sample.Patella)
		if err = multierr.Combine(femurErr, err); err == nil {
			m, err := jcs.Patellofemoral().Solve(femur, patella, s.side)
			if err == nil {
				res.Patellofemoral = &m
			}
			res.Err = multierr.Append(res.Err, err)
		} else {
			res.Err = multierr.Append(res.Err, errors.Wrap(err, "patellofemoral"))
		}
	}

	if res.Err != nil {
		s.logger.Debugw("sample undefined", "frame", sample.Frame, "error", res.Err)
	}
	return res
}

// Solve solves all samples in parallel and returns results in input order. Undefined samples are
// reported per result; only cancellation of ctx fails the whole call.
func (s *Session) Solve(ctx context.Context, samples []Sample) ([]Result, error) {
	run := uuid.New().String()
	start := s.clock.Now()
	results := make([]Result, len(samples))
	s.logger.Debugw("solving samples", "run", run, "samples", len(samples), "parallelism", s.parallelism)

	errs, gctx := errgroup.WithContext(ctx)
	errs.SetLimit(s.parallelism)
	for i := range samples {
		if gctx.Err() != nil {
			break
		}
		errs.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.SolveSample(samples[i])
			return nil
		})
	}
	if err := errs.Wait(); err != nil {
		return nil, errors.Wrap(err, "solving samples")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "solving samples")
	}

	undefined := lo.CountBy(results, func(r Result) bool { return !r.Defined() })
	s.logger.Infow("solved samples",
		"run", run, "samples", len(samples), "undefined", undefined, "duration", s.clock.Since(start))
	return results, nil
}

// TibiofemoralMotions returns the defined tibiofemoral motions of results, in order.
func TibiofemoralMotions(results []Result) []jcs.Motion {
	return lo.FilterMap(results, func(r Result, _ int) (jcs.Motion, bool) {
		if r.Tibiofemoral == nil {
			return jcs.Motion{}, false
		}
		return *r.Tibiofemoral, true
	})
}
