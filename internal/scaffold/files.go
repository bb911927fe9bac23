package scaffold

import (
	"embed"
	"io/fs"
	"os"

	"github.com/cloudfn-labs/cloud-function-framework/internal/platform"
)

//go:embed templates
var templatesFS embed.FS

// Policy decides what happens when a generated file already exists.
type Policy int

const (
	// PolicyOverwrite rewrites the file on every run.
	PolicyOverwrite Policy = iota
	// PolicyWriteOnce leaves an existing file untouched.
	PolicyWriteOnce
)

func (p Policy) String() string {
	switch p {
	case PolicyOverwrite:
		return "overwrite"
	case PolicyWriteOnce:
		return "write-once"
	default:
		return "unknown"
	}
}

// Role names the purpose of a generated file.
type Role string

const (
	RoleEntryPoint  Role = "entry-point"
	RoleHandler     Role = "handler"
	RoleManifest    Role = "dependency-manifest"
	RoleLocalServer Role = "local-server"
	RoleDeploy      Role = "deploy-script"
)

// TemplateFile maps a file role to its template and idempotency policy.
type TemplateFile struct {
	Role     Role
	Path     string // Slash-separated, relative to the project directory.
	Template string // Path inside the template set.
	Policy   Policy
	Mode     os.FileMode
}

// CloudFunctionFiles is the generated file set, in emission order.
var CloudFunctionFiles = []TemplateFile{
	{Role: RoleEntryPoint, Path: "main.py", Template: "main.py.tmpl", Policy: PolicyOverwrite, Mode: platform.FileMode},
	{Role: RoleHandler, Path: "service.py", Template: "service.py.tmpl", Policy: PolicyOverwrite, Mode: platform.FileMode},
	{Role: RoleManifest, Path: "requirements.txt", Template: "requirements.txt.tmpl", Policy: PolicyWriteOnce, Mode: platform.FileMode},
	{Role: RoleLocalServer, Path: "scripts/test_local.py", Template: "scripts/test_local.py.tmpl", Policy: PolicyWriteOnce, Mode: platform.ExecutableMode},
	{Role: RoleDeploy, Path: "scripts/deploy_to_gcp.py", Template: "scripts/deploy_to_gcp.py.tmpl", Policy: PolicyWriteOnce, Mode: platform.ExecutableMode},
}

// FilesByPolicy returns the entries of files with policy p, preserving order.
func FilesByPolicy(files []TemplateFile, p Policy) []TemplateFile {
	var out []TemplateFile
	for _, f := range files {
		if f.Policy == p {
			out = append(out, f)
		}
	}
	return out
}

// FileForRole returns the entry with the given role.
func FileForRole(files []TemplateFile, r Role) (TemplateFile, bool) {
	for _, f := range files {
		if f.Role == r {
			return f, true
		}
	}
	return TemplateFile{}, false
}

// CloudFunctionTemplates returns the embedded Cloud Functions template set.
func CloudFunctionTemplates() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates/cloudfunction")
	if err != nil {
		// The directory is embedded at build time.
		panic(err)
	}
	return sub
}
