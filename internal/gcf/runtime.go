package gcf

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// supportedPython is the range of Python versions with a Cloud Functions runtime.
var supportedPython = mustConstraint(">= 3.8, < 4.0")

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

// RuntimeID maps a Python version such as "3.10" or "v3.12.1" to the
// Cloud Functions runtime identifier ("python310", "python312").
func RuntimeID(pythonVersion string) (string, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(pythonVersion, "v"))
	if err != nil {
		return "", fmt.Errorf("%w: parsing %q: %v", ErrUnsupportedRuntime, pythonVersion, err)
	}
	if !supportedPython.Check(v) {
		return "", fmt.Errorf("%w: python %s (need %s)", ErrUnsupportedRuntime, v, supportedPython)
	}
	return fmt.Sprintf("python%d%d", v.Major(), v.Minor()), nil
}
