package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/cloudfn-labs/cloud-function-framework/internal/config"
)

// loadSettings reads the config file and environment and validates the
// result. The file itself is validated first so that type errors (an
// unquoted python_version, say) are reported against the file.
func loadSettings() (config.Settings, error) {
	config.Load()

	path := config.FilePath()
	if _, err := os.Stat(path); err == nil {
		result, err := config.ValidateFile(path)
		if err != nil {
			return config.Settings{}, err
		}
		if !result.Valid {
			return config.Settings{}, issuesError(path, result.Issues)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return config.Settings{}, fmt.Errorf("checking config file %s: %w", path, err)
	}

	settings := config.Current()
	result, err := config.ValidateSettings(settings)
	if err != nil {
		return config.Settings{}, err
	}
	if !result.Valid {
		return config.Settings{}, issuesError("effective settings", result.Issues)
	}
	return settings, nil
}

func issuesError(source string, issues []config.ValidationIssue) error {
	msgs := make([]string, len(issues))
	for i, issue := range issues {
		msgs[i] = issue.String()
	}
	return fmt.Errorf("invalid configuration in %s: %s", source, strings.Join(msgs, "; "))
}
