package scaffold

import "errors"

var (
	// ErrInvalidProjectName indicates a project name that cannot be used as a directory name.
	ErrInvalidProjectName = errors.New("invalid project name")

	// ErrPathTraversal indicates a path that would escape its base directory.
	ErrPathTraversal = errors.New("path escapes base directory")

	// ErrTemplateNotFound indicates a template missing from the embedded set.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMissingTemplateKey indicates a template referenced data that was not provided.
	ErrMissingTemplateKey = errors.New("template execution failed")
)
