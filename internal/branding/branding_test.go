package branding

import "testing"

func TestEmbeddedIdentity(t *testing.T) {
	if got := CLIName(); got != "cloud-function-framework" {
		t.Errorf("CLIName() = %q, want %q", got, "cloud-function-framework")
	}
	if got := HomeDir(); got != ".cloud-function-framework" {
		t.Errorf("HomeDir() = %q, want %q", got, ".cloud-function-framework")
	}
	if got := GitHubRepo(); got != "cloudfn-labs/cloud-function-framework" {
		t.Errorf("GitHubRepo() = %q", got)
	}
	if DisplayName() == "" || Description() == "" {
		t.Error("display name and description should not be empty")
	}
}

func TestEnvVar(t *testing.T) {
	tests := []struct {
		suffix string
		want   string
	}{
		{"HOME", "CFF_HOME"},
		{"region", "CFF_REGION"},
		{"base_dir", "CFF_BASE_DIR"},
	}
	for _, tt := range tests {
		if got := EnvVar(tt.suffix); got != tt.want {
			t.Errorf("EnvVar(%q) = %q, want %q", tt.suffix, got, tt.want)
		}
	}
}
