package workspace

import "github.com/ohadaerp/erp/internal/config"

const DefaultName = "main"

// Resolve picks the active workspace:
// 1. flagOverride (--workspace flag)
// 2. the config's workspace key
// 3. "main"
func Resolve(flagOverride string, cfg *config.Config) string {
	if flagOverride != "" {
		return flagOverride
	}
	if cfg != nil && cfg.Workspace != "" {
		return cfg.Workspace
	}
	return DefaultName
}
