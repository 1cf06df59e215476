package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ohadaerp/erp/internal/config"
)

func TestPathsFollowHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("OHADAERP_HOME", home)

	if got := ConfigPath(); got != filepath.Join(home, "config.toml") {
		t.Errorf("ConfigPath() = %q", got)
	}
	want := filepath.Join(home, "workspaces", "main", "logs", "erptui.log")
	if got := LogPath("main", "erptui"); got != want {
		t.Errorf("LogPath() = %q, want %q", got, want)
	}
}

func TestEnsureDir(t *testing.T) {
	t.Setenv("OHADAERP_HOME", t.TempDir())

	if err := EnsureDir("test"); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	info, err := os.Stat(LogDir("test"))
	if err != nil {
		t.Fatalf("log dir not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("log dir is not a directory")
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "main", false},
		{"digits", "dakar2024", false},
		{"hyphen", "siege-abidjan", false},
		{"underscore", "siege_abidjan", false},
		{"empty", "", true},
		{"uppercase", "Main", true},
		{"space", "mon espace", true},
		{"dot", "a.b", true},
		{"slash", "a/b", true},
		{"accent", "siège", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	cfg := &config.Config{Workspace: "compta"}
	if got := Resolve("rh", cfg); got != "rh" {
		t.Errorf("flag: got %q", got)
	}
	if got := Resolve("", cfg); got != "compta" {
		t.Errorf("config: got %q", got)
	}
	if got := Resolve("", nil); got != DefaultName {
		t.Errorf("default: got %q", got)
	}
	if got := Resolve("", &config.Config{}); got != DefaultName {
		t.Errorf("empty config: got %q", got)
	}
}

func TestLockExclusive(t *testing.T) {
	dir := t.TempDir()

	l1, err := Acquire(dir)
	if err != nil {
		t.Fatalf("first Acquire() error = %v", err)
	}

	_, err = Acquire(dir)
	var held *LockHeldError
	if !errors.As(err, &held) {
		t.Fatalf("second Acquire() error = %v, want LockHeldError", err)
	}
	if held.PID != os.Getpid() {
		t.Errorf("PID = %d, want %d", held.PID, os.Getpid())
	}

	if err := l1.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if err := l1.Release(); err != nil {
		t.Errorf("second Release() error = %v", err)
	}

	l2, err := Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire() after release error = %v", err)
	}
	_ = l2.Release()
}

func TestReleaseNil(t *testing.T) {
	var l *Lock
	if err := l.Release(); err != nil {
		t.Errorf("nil Release() error = %v", err)
	}
}
