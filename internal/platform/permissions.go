package platform

import (
	"os"
	"runtime"
)

// Permission modes for generated project files.
const (
	DirMode        os.FileMode = 0o755
	FileMode       os.FileMode = 0o644
	ExecutableMode os.FileMode = 0o755
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// IsExecutable reports whether any execute bit is set on path.
// Always true on Windows.
func IsExecutable(path string) (bool, error) {
	if runtime.GOOS == "windows" {
		return true, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.Mode().Perm()&0o111 != 0, nil
}
