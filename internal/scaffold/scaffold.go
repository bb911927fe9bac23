package scaffold

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	"github.com/cloudfn-labs/cloud-function-framework/internal/platform"
)

// Result summarizes one ScaffoldProject run.
type Result struct {
	OutputDir  string
	DirCreated bool
	Written    []string // Project-relative paths that were (re)written.
	Skipped    []string // Write-once paths left untouched.
	Warnings   []string
}

// Scaffolder renders a template set into a project directory.
type Scaffolder struct {
	fsys    fs.FS
	files   []TemplateFile
	baseDir string
	out     io.Writer
	logger  *slog.Logger
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithOutput sets the writer that receives progress messages.
func WithOutput(w io.Writer) Option {
	return func(s *Scaffolder) { s.out = w }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scaffolder) { s.logger = l }
}

// WithBaseDir sets the directory project directories are created in.
// Empty means the current working directory.
func WithBaseDir(dir string) Option {
	return func(s *Scaffolder) { s.baseDir = dir }
}

// WithTemplates replaces the template set and file table.
func WithTemplates(fsys fs.FS, files []TemplateFile) Option {
	return func(s *Scaffolder) {
		s.fsys = fsys
		s.files = files
	}
}

// New creates a Scaffolder using the embedded Cloud Functions templates.
func New(opts ...Option) *Scaffolder {
	s := &Scaffolder{
		fsys:  CloudFunctionTemplates(),
		files: CloudFunctionFiles,
		out:   io.Discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.out == nil {
		s.out = io.Discard
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// EnsureDirectory creates path if it does not exist and reports whether it did.
func (s *Scaffolder) EnsureDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("creating directory %s: path exists and is not a directory", path)
		}
		fmt.Fprintf(s.out, "Directory '%s' already exists.\n", path)
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("checking directory %s: %w", path, err)
	}

	if err := os.MkdirAll(path, platform.DirMode); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", path, err)
	}
	fmt.Fprintf(s.out, "Directory '%s' created.\n", path)
	return true, nil
}

// WriteFile writes content to path, creating parent directories as needed.
// When overwrite is false and path exists the file is left untouched.
func (s *Scaffolder) WriteFile(path string, content []byte, overwrite bool, perm os.FileMode) (bool, error) {
	if !overwrite {
		// Lstat so a dangling symlink counts as existing and is never written through.
		_, err := os.Lstat(path)
		if err == nil {
			fmt.Fprintf(s.out, "  [SKIP] %s already exists\n", path)
			return false, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("checking %s: %w", path, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), platform.DirMode); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, perm); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	// WriteFile keeps the mode of an existing file and is subject to umask.
	if err := platform.Chmod(path, perm); err != nil {
		return false, fmt.Errorf("setting permissions on %s: %w", path, err)
	}

	fmt.Fprintf(s.out, "  [ OK ] Generated %s\n", path)
	return true, nil
}

// ScaffoldProject creates the project directory for name and generates
// every file of the template table into it.
func (s *Scaffolder) ScaffoldProject(ctx context.Context, name string, data TemplateData) (*Result, error) {
	dir, err := ResolveOutputDir(s.baseDir, name)
	if err != nil {
		return nil, err
	}
	if data.ProjectName == "" {
		data.ProjectName = name
	}

	s.logger.Debug("scaffolding project", "name", name, "dir", dir, "files", len(s.files))

	created, err := s.EnsureDirectory(dir)
	if err != nil {
		return nil, err
	}
	res := &Result{OutputDir: dir, DirCreated: created}

	if err := s.generate(ctx, dir, FilesByPolicy(s.files, PolicyOverwrite), data, res); err != nil {
		return res, err
	}
	fmt.Fprintf(s.out, "Project structure created at %s.\n", dir)

	if err := s.generate(ctx, dir, FilesByPolicy(s.files, PolicyWriteOnce), data, res); err != nil {
		return res, err
	}
	fmt.Fprintf(s.out, "Scripts generated in %s.\n", filepath.Join(dir, "scripts"))

	fmt.Fprintf(s.out, "Project setup complete. Navigate to '%s' to start working.\n", dir)
	return res, nil
}

func (s *Scaffolder) generate(ctx context.Context, dir string, files []TemplateFile, data TemplateData, res *Result) error {
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		dest, err := validateRelPath(dir, f.Path)
		if err != nil {
			return err
		}

		content, err := s.render(f.Template, data)
		if err != nil {
			return err
		}

		written, err := s.WriteFile(dest, content, f.Policy == PolicyOverwrite, f.Mode)
		if err != nil {
			return err
		}
		if written {
			res.Written = append(res.Written, f.Path)
			s.logger.Debug("generated file", "path", f.Path, "policy", f.Policy.String())
			continue
		}

		res.Skipped = append(res.Skipped, f.Path)
		if existing, err := os.ReadFile(dest); err == nil && !bytes.Equal(existing, content) {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s differs from the generated version and was kept", f.Path))
		}
		if f.Mode&0o111 != 0 {
			if ok, err := platform.IsExecutable(dest); err == nil && !ok {
				res.Warnings = append(res.Warnings, fmt.Sprintf("%s is not executable; run chmod +x on it", f.Path))
			}
		}
	}
	return nil
}

func (s *Scaffolder) render(name string, data TemplateData) ([]byte, error) {
	raw, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingTemplateKey, name, err)
	}
	return buf.Bytes(), nil
}
