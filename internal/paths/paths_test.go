package paths

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestResolveConfigDir_FlagWins(t *testing.T) {
	t.Setenv(EnvConfigDir, "/env/saltuser")

	dir, err := ResolveConfigDir("flag-dir")
	if err != nil {
		t.Fatalf("ResolveConfigDir failed: %v", err)
	}
	abs, _ := filepath.Abs("flag-dir")
	if dir != abs {
		t.Errorf("expected %q, got %q", abs, dir)
	}
}

func TestResolveConfigDir_EnvOverDefault(t *testing.T) {
	t.Setenv(EnvConfigDir, "/env/saltuser")

	dir, err := ResolveConfigDir("")
	if err != nil {
		t.Fatalf("ResolveConfigDir failed: %v", err)
	}
	if dir != "/env/saltuser" {
		t.Errorf("expected /env/saltuser, got %q", dir)
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG resolution is Linux-only")
	}
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv(EnvConfigDir, "")

	dir, err := DefaultConfigDir()
	if err != nil {
		t.Fatalf("DefaultConfigDir failed: %v", err)
	}
	if dir != filepath.Join("/xdg", "saltuser") {
		t.Errorf("expected /xdg/saltuser, got %q", dir)
	}
}

func TestDefaultConfigDir_HomeFallback(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("home fallback is Linux-only")
	}
	t.Setenv("XDG_CONFIG_HOME", "")

	orig := platformDir.homeDir
	platformDir.homeDir = func() (string, error) { return "/home/salt", nil }
	t.Cleanup(func() { platformDir.homeDir = orig })

	dir, err := DefaultConfigDir()
	if err != nil {
		t.Fatalf("DefaultConfigDir failed: %v", err)
	}
	if dir != "/home/salt/.config/saltuser" {
		t.Errorf("expected /home/salt/.config/saltuser, got %q", dir)
	}
}
