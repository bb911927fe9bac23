package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/cloudfn-labs/cloud-function-framework/internal/config"
	"github.com/cloudfn-labs/cloud-function-framework/internal/gcf"
	"github.com/cloudfn-labs/cloud-function-framework/internal/scaffold"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// errNoProjectName is returned when no name is given and stdin is not a terminal.
var errNoProjectName = errors.New("project name is required: usage bootstrap <project_name>")

func init() {
	rootCmd.AddCommand(bootstrapCmd)
}

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap <project_name>",
	Short: "Create a new Cloud Functions project",
	Long: `Create a Google Cloud Functions (Python) project in a directory named after
the project. main.py and service.py are regenerated on every run; requirements.txt
and the helper scripts under scripts/ are only written when missing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBootstrap,
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	name, err := projectName(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initializing project: %s\n", name)

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	data, err := templateData(name, settings)
	if err != nil {
		return err
	}

	s := scaffold.New(
		scaffold.WithBaseDir(settings.BaseDir),
		scaffold.WithOutput(out),
		scaffold.WithLogger(logger),
	)
	res, err := s.ScaffoldProject(cmd.Context(), name, data)
	if err != nil {
		return fmt.Errorf("bootstrapping %s: %w", name, err)
	}

	for _, w := range res.Warnings {
		cliWarn(cmd.ErrOrStderr(), "%s", w)
	}

	details := []string{
		detail("Location", res.OutputDir),
		detail("Written", fmt.Sprintf("%d file(s)", len(res.Written))),
		detail("Kept", fmt.Sprintf("%d file(s)", len(res.Skipped))),
	}
	if f, ok := scaffold.FileForRole(scaffold.CloudFunctionFiles, scaffold.RoleLocalServer); ok {
		details = append(details, detail("Test locally", "python "+f.Path))
	}
	if f, ok := scaffold.FileForRole(scaffold.CloudFunctionFiles, scaffold.RoleDeploy); ok {
		details = append(details, detail("Deploy", "python "+f.Path))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, successCard("Project "+name+" ready", details...))
	return nil
}

// projectName takes the name from args or, on a terminal, prompts for it.
func projectName(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return "", errNoProjectName
	}

	var name string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Project name").
			Description("Directory created in the base directory").
			Value(&name).
			Validate(scaffold.ValidateProjectName),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", errors.New("bootstrap cancelled")
		}
		return "", fmt.Errorf("prompting for project name: %w", err)
	}
	return strings.TrimSpace(name), nil
}

func templateData(name string, s config.Settings) (scaffold.TemplateData, error) {
	runtime, err := gcf.RuntimeID(s.PythonVersion)
	if err != nil {
		return scaffold.TemplateData{}, err
	}
	return scaffold.TemplateData{
		ProjectName:  name,
		FunctionName: s.FunctionName,
		EntryPoint:   s.EntryPoint,
		Runtime:      runtime,
		Region:       s.Region,
		Host:         s.Host,
		Port:         s.Port,
		Dependency:   s.Dependency,
	}, nil
}
