package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestChmod(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "deploy_to_gcp.py")
	if err := os.WriteFile(path, []byte("print('hi')"), FileMode); err != nil {
		t.Fatal(err)
	}

	if err := Chmod(path, ExecutableMode); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != ExecutableMode {
			t.Errorf("permissions = %o, want %o", perm, ExecutableMode)
		}
	}
}

func TestIsExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not tracked on Windows")
	}
	tmp := t.TempDir()
	plain := filepath.Join(tmp, "main.py")
	script := filepath.Join(tmp, "test_local.py")
	for _, p := range []string{plain, script} {
		if err := os.WriteFile(p, []byte("x"), FileMode); err != nil {
			t.Fatal(err)
		}
	}
	if err := Chmod(script, ExecutableMode); err != nil {
		t.Fatal(err)
	}

	if ok, err := IsExecutable(plain); err != nil || ok {
		t.Errorf("IsExecutable(main.py) = %v, %v; want false, nil", ok, err)
	}
	if ok, err := IsExecutable(script); err != nil || !ok {
		t.Errorf("IsExecutable(test_local.py) = %v, %v; want true, nil", ok, err)
	}
	if _, err := IsExecutable(filepath.Join(tmp, "missing.py")); err == nil {
		t.Error("expected error for missing file")
	}
}
