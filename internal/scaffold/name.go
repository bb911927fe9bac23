package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateProjectName rejects names that are not a single directory entry.
// There is no restriction on character set or length beyond that.
func ValidateProjectName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidProjectName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q refers to an existing directory", ErrInvalidProjectName, name)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: %q contains a NUL byte", ErrInvalidProjectName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidProjectName, name)
	case filepath.IsAbs(name) || filepath.VolumeName(name) != "":
		return fmt.Errorf("%w: %q is an absolute path", ErrInvalidProjectName, name)
	}
	return nil
}

// ResolveOutputDir joins baseDir and name into an absolute project directory.
// An empty baseDir means the current working directory.
func ResolveOutputDir(baseDir, name string) (string, error) {
	if err := ValidateProjectName(name); err != nil {
		return "", err
	}

	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		baseDir = wd
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("resolve base directory %q: %w", baseDir, err)
	}

	dir := filepath.Join(absBase, name)
	if err := checkContained(absBase, dir); err != nil {
		return "", err
	}
	return dir, nil
}

// validateRelPath ensures a generated file path stays inside projectDir.
func validateRelPath(projectDir, relPath string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}
	dest := filepath.Join(projectDir, cleaned)
	if err := checkContained(projectDir, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// checkContained requires path to be strictly below base. base may be a
// filesystem root.
func checkContained(base, path string) error {
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == "." || rel == ".." || filepath.IsAbs(rel) ||
		strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q is outside %q", ErrPathTraversal, path, base)
	}
	return nil
}
