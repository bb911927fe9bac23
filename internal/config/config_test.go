package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

// isolate points the config directory at a temp dir and resets viper state.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("CFF_HOME", dir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return dir
}

func TestDirOverride(t *testing.T) {
	dir := isolate(t)
	if got := Dir(); got != dir {
		t.Errorf("Dir() = %q, want %q", got, dir)
	}
	if got := FilePath(); got != filepath.Join(dir, "config.yaml") {
		t.Errorf("FilePath() = %q", got)
	}
}

func TestCurrentDefaults(t *testing.T) {
	isolate(t)
	Load()

	got := Current()
	if got != Defaults() {
		t.Errorf("Current() = %+v, want %+v", got, Defaults())
	}
}

func TestEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("CFF_REGION", "europe-west1")
	t.Setenv("CFF_PORT", "9090")
	Load()

	got := Current()
	if got.Region != "europe-west1" {
		t.Errorf("Region = %q, want europe-west1", got.Region)
	}
	if got.Port != 9090 {
		t.Errorf("Port = %d, want 9090", got.Port)
	}
}

func TestSetPersists(t *testing.T) {
	dir := isolate(t)
	Load()

	if err := Set(KeyRegion, "asia-east1"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := Set(KeyPort, "5000"); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	// Reload from disk.
	viper.Reset()
	Load()
	if got := Get(KeyRegion); got != "asia-east1" {
		t.Errorf("Get(region) = %q, want asia-east1", got)
	}
	if got := Current().Port; got != 5000 {
		t.Errorf("Port = %d, want 5000", got)
	}

	result, err := ValidateFile(FilePath())
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if !result.Valid {
		t.Errorf("written config should validate, got %v", result.Issues)
	}
}

func TestSetRejects(t *testing.T) {
	isolate(t)
	Load()

	if err := Set("runtime", "python310"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Set(runtime) error = %v, want ErrUnknownKey", err)
	}
	if err := Set(KeyPort, "eighty"); err == nil {
		t.Error("expected error for non-integer port")
	}
}
