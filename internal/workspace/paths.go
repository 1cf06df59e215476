// Package workspace resolves the on-disk layout of a named workspace:
// its log files and the single-instance lock held by the terminal UI.
package workspace

import (
	"os"
	"path/filepath"
)

// BaseDir returns ~/.ohadaerp, or $OHADAERP_HOME when set.
func BaseDir() string {
	if dir := os.Getenv("OHADAERP_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".ohadaerp")
}

// ConfigPath returns the global config file path.
func ConfigPath() string {
	return filepath.Join(BaseDir(), "config.toml")
}

// Dir returns the workspace-specific directory.
func Dir(name string) string {
	return filepath.Join(BaseDir(), "workspaces", name)
}

// LogDir returns the log directory for a workspace.
func LogDir(name string) string {
	return filepath.Join(Dir(name), "logs")
}

// LogPath returns the log file of one binary, e.g. logs/erptui.log.
func LogPath(name, binary string) string {
	return filepath.Join(LogDir(name), binary+".log")
}

// EnsureDir creates the workspace directory tree.
func EnsureDir(name string) error {
	for _, d := range []string{Dir(name), LogDir(name)} {
		if err := os.MkdirAll(d, 0700); err != nil {
			return err
		}
	}
	return nil
}
