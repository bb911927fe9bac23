package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/cloudfn-labs/cloud-function-framework/internal/gcf"
	"github.com/spf13/cobra"
)

var (
	deployFunction string
	deployRegion   string
)

func init() {
	deployCmd.Flags().StringVar(&deployFunction, "function", "", "Function name (defaults to the function_name setting)")
	deployCmd.Flags().StringVar(&deployRegion, "region", "", "Region (defaults to the region setting)")
	rootCmd.AddCommand(deployCmd)
}

var deployCmd = &cobra.Command{
	Use:   "deploy [project_dir]",
	Short: "Deploy a project with gcloud",
	Long: `Deploy a generated project as an HTTP-triggered Cloud Function. The project
directory must contain requirements.txt and main.py. Defaults to the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDeploy,
}

func runDeploy(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving project directory %s: %w", dir, err)
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	runtime, err := gcf.RuntimeID(settings.PythonVersion)
	if err != nil {
		return err
	}

	opts := gcf.DeployOptions{
		ProjectDir:   absDir,
		FunctionName: settings.FunctionName,
		EntryPoint:   settings.EntryPoint,
		Runtime:      runtime,
		Region:       settings.Region,
		Command:      settings.DeployCommand,
	}
	if deployFunction != "" {
		opts.FunctionName = deployFunction
	}
	if deployRegion != "" {
		opts.Region = deployRegion
	}

	logger.Debug("deploying", "dir", opts.ProjectDir, "function", opts.FunctionName, "command", opts.Command)

	out := cmd.OutOrStdout()
	runner := &gcf.ExecRunner{Stdout: out, Stderr: cmd.ErrOrStderr()}
	if _, err := gcf.NewDeployer(runner, out).Deploy(cmd.Context(), opts); err != nil {
		if errors.Is(err, gcf.ErrDeployFailed) {
			fmt.Fprintln(out, "Error during deployment.")
		}
		return err
	}
	return nil
}
