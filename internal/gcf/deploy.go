package gcf

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Files that must exist in the project directory before deploying.
const (
	RequirementsFile = "requirements.txt"
	EntryPointFile   = "main.py"
)

// DeployOptions configures a single deploy invocation.
type DeployOptions struct {
	ProjectDir   string
	FunctionName string
	EntryPoint   string
	Runtime      string // Cloud Functions runtime id, e.g. "python310".
	Region       string
	Command      string // Deploy binary, normally "gcloud".
}

// BuildDeployArgs returns the gcloud arguments for opts.
func BuildDeployArgs(opts DeployOptions) []string {
	return []string{
		"functions",
		"deploy",
		opts.FunctionName,
		"--runtime", opts.Runtime,
		"--trigger-http",
		"--allow-unauthenticated",
		"--region", opts.Region,
		"--source", opts.ProjectDir,
		"--entry-point", opts.EntryPoint,
	}
}

// CheckPrerequisites verifies that the dependency manifest and the entry
// point exist in projectDir, in that order.
func CheckPrerequisites(projectDir string) error {
	if _, err := os.Stat(filepath.Join(projectDir, RequirementsFile)); err != nil {
		return fmt.Errorf("%w: %s not found", ErrMissingPrerequisite, RequirementsFile)
	}
	if _, err := os.Stat(filepath.Join(projectDir, EntryPointFile)); err != nil {
		return fmt.Errorf("%w: %s not found in %s", ErrMissingPrerequisite, EntryPointFile, projectDir)
	}
	return nil
}

// Deployer runs the deploy command through a Runner.
type Deployer struct {
	runner Runner
	out    io.Writer
}

// NewDeployer creates a Deployer. A nil out discards progress messages.
func NewDeployer(runner Runner, out io.Writer) *Deployer {
	if out == nil {
		out = io.Discard
	}
	return &Deployer{runner: runner, out: out}
}

// Deploy checks prerequisites and invokes the deploy command once. The
// runner is not called when a prerequisite is missing.
func (d *Deployer) Deploy(ctx context.Context, opts DeployOptions) (*Output, error) {
	if err := CheckPrerequisites(opts.ProjectDir); err != nil {
		return nil, err
	}

	command := opts.Command
	if command == "" {
		command = "gcloud"
	}

	fmt.Fprintf(d.out, "Deploying function '%s' from %s...\n", opts.FunctionName, opts.ProjectDir)

	output, err := d.runner.Run(ctx, command, BuildDeployArgs(opts))
	if err != nil {
		return output, fmt.Errorf("%w: %v", ErrDeployFailed, err)
	}
	if output.ExitCode != 0 {
		return output, fmt.Errorf("%w: %s exited with status %d", ErrDeployFailed, command, output.ExitCode)
	}

	fmt.Fprintf(d.out, "Function '%s' deployed successfully!\n", opts.FunctionName)
	return output, nil
}
