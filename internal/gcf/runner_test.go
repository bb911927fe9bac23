package gcf

import (
	"bytes"
	"context"
	"os/exec"
	"runtime"
	"strings"
	"testing"
)

func TestExecRunner_CapturesOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}

	var stdout, stderr bytes.Buffer
	r := &ExecRunner{Stdout: &stdout, Stderr: &stderr}

	out, err := r.Run(context.Background(), "sh", []string{"-c", "echo deployed; echo warn >&2; exit 3"})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if out.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", out.ExitCode)
	}
	if strings.TrimSpace(out.Stdout) != "deployed" {
		t.Errorf("Stdout = %q", out.Stdout)
	}
	if strings.TrimSpace(out.Stderr) != "warn" {
		t.Errorf("Stderr = %q", out.Stderr)
	}
	if stdout.String() != out.Stdout {
		t.Errorf("streamed stdout %q != captured %q", stdout.String(), out.Stdout)
	}
}

func TestExecRunner_MissingBinary(t *testing.T) {
	r := &ExecRunner{}
	if _, err := r.Run(context.Background(), "definitely-not-a-real-binary-cff", nil); err == nil {
		t.Fatal("expected error for missing binary")
	}
}
