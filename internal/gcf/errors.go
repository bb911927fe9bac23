package gcf

import "errors"

var (
	// ErrMissingPrerequisite indicates requirements.txt or main.py is absent.
	ErrMissingPrerequisite = errors.New("missing prerequisite file")

	// ErrDeployFailed indicates the deploy command exited with a non-zero status.
	ErrDeployFailed = errors.New("deployment failed")

	// ErrUnsupportedRuntime indicates a Python version with no Cloud Functions runtime.
	ErrUnsupportedRuntime = errors.New("unsupported python runtime")
)
