package scaffold

// TemplateData holds all variables available to the project templates.
type TemplateData struct {
	ProjectName  string
	FunctionName string // Deployed function name.
	EntryPoint   string // Python function invoked by Cloud Functions.
	Runtime      string // e.g., "python310"
	Region       string // e.g., "us-central1"
	Host         string // Local test server bind address.
	Port         int    // Local test server port.
	Dependency   string // Sole line of requirements.txt.
}

// DefaultTemplateData returns the data used when no settings override it.
func DefaultTemplateData(projectName string) TemplateData {
	return TemplateData{
		ProjectName:  projectName,
		FunctionName: "hello_world",
		EntryPoint:   "hello_world",
		Runtime:      "python310",
		Region:       "us-central1",
		Host:         "127.0.0.1",
		Port:         8080,
		Dependency:   "flask",
	}
}
