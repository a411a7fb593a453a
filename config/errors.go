package config

import (
	"github.com/pkg/errors"
)

// NewFieldRequiredError returns an error for a required field missing at path.
func NewFieldRequiredError(path, field string) error {
	return errors.Errorf("error validating %q: %q is required", path, field)
}

// NewFieldError wraps err as a validation failure of field at path.
func NewFieldError(path, field string, err error) error {
	return errors.Wrapf(err, "error validating %q: field %q", path, field)
}
