package gcf

import (
	"errors"
	"testing"
)

func TestRuntimeID(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"3.10", "python310"},
		{"3.8", "python38"},
		{"v3.12.1", "python312"},
		{"3.13.0", "python313"},
	}
	for _, tt := range tests {
		got, err := RuntimeID(tt.version)
		if err != nil {
			t.Errorf("RuntimeID(%q) error: %v", tt.version, err)
			continue
		}
		if got != tt.want {
			t.Errorf("RuntimeID(%q) = %q, want %q", tt.version, got, tt.want)
		}
	}
}

func TestRuntimeID_Unsupported(t *testing.T) {
	for _, v := range []string{"2.7", "3.7", "4.0", "latest", ""} {
		if _, err := RuntimeID(v); !errors.Is(err, ErrUnsupportedRuntime) {
			t.Errorf("RuntimeID(%q) error = %v, want ErrUnsupportedRuntime", v, err)
		}
	}
}
