package config

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/cjdinger/lint-sasjs/errors"
)

// CheckVersion reports whether current satisfies the semver constraint.
// Constraints use the Masterminds syntax, e.g. ">=1.2.0 <2.0.0" or "^1.0".
//
// Returns a CodeInvalidConfig error if the constraint is malformed, a
// CodeInvalidInput error if current is not a version, and a
// CodeVersionMismatch error if the constraint is not met.
func CheckVersion(constraint, current string) error {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return errors.Wrap(err, errors.CodeInvalidConfig, fmt.Sprintf("invalid requiredVersion %q", constraint))
	}

	v, err := semver.NewVersion(current)
	if err != nil {
		return errors.Wrap(err, errors.CodeInvalidInput, fmt.Sprintf("invalid linter version %q", current))
	}

	if !c.Check(v) {
		return errors.New(
			errors.CodeVersionMismatch,
			fmt.Sprintf("sasjslint %s does not satisfy requiredVersion %q", current, constraint),
		)
	}
	return nil
}

func validConstraint(constraint string) bool {
	_, err := semver.NewConstraint(constraint)
	return err == nil
}
