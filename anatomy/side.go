// Package anatomy turns digitized landmarks and tracker readings into bone-fixed anatomical frames and
// resolves those frames in the global frame for every motion-capture sample.
package anatomy

import (
	"strings"

	"github.com/pkg/errors"
)

// Side is the side of the body a joint is on. It selects the sign of mediolateral axes.
type Side int

const (
	// Right side of the body.
	Right Side = iota + 1
	// Left side of the body.
	Left
)

// ParseSide parses "right"/"r" or "left"/"l", case insensitively.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right", "r":
		return Right, nil
	case "left", "l":
		return Left, nil
	default:
		return 0, errors.Errorf("unknown side %q, expected right or left", s)
	}
}

// Valid reports whether s is Right or Left.
func (s Side) Valid() bool {
	return s == Right || s == Left
}

func (s Side) String() string {
	switch s {
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}
