package cli

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/cloudfn-labs/cloud-function-framework/internal/branding"
	"github.com/cloudfn-labs/cloud-function-framework/internal/config"
	"github.com/cloudfn-labs/cloud-function-framework/internal/gcf"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the local environment",
	Long: `Report whether the tools needed to test and deploy generated projects are
installed, and whether the ` + branding.DisplayName() + ` settings are valid.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		config.Load()
		settings := config.Current()

		fmt.Fprintln(out, "Runtime check:")
		checkBinary(out, settings.DeployCommand)
		checkBinary(out, "python3")

		fmt.Fprintln(out, "Settings check:")
		if runtime, err := gcf.RuntimeID(settings.PythonVersion); err != nil {
			fmt.Fprintf(out, "  [FAIL] %v\n", err)
		} else {
			fmt.Fprintf(out, "  [ OK ] python %s deploys as %s\n", settings.PythonVersion, runtime)
		}

		return runConfigCheck(cmd, config.FilePath())
	},
}

func checkBinary(out io.Writer, name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(out, "  [MISS] %s not found\n", name)
		return
	}
	fmt.Fprintf(out, "  [ OK ] %s found at %s\n", name, path)
}
