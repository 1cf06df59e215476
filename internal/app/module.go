// Package app wires the shared services of the ohadaerp binaries with fx.
package app

import (
	"context"

	"github.com/ohadaerp/erp/internal/bus"
	"github.com/ohadaerp/erp/internal/catalog"
	"github.com/ohadaerp/erp/internal/config"
	"github.com/ohadaerp/erp/internal/fixtures"
	"github.com/ohadaerp/erp/internal/logging"
	"github.com/ohadaerp/erp/internal/route"
	"github.com/ohadaerp/erp/internal/workspace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params holds the command-line choices passed to the fx module.
type Params struct {
	WorkspaceFlag string
	// Binary names the log file, e.g. "erptui".
	Binary  string
	Console bool

	// Optional overrides; empty means the workspace default.
	ConfigPath   string
	LogPath      string
	FixturesPath string
}

// Workspace is the resolved, validated workspace name.
type Workspace string

// Module returns the fx module shared by erptui and erpctl.
func Module(p Params) fx.Option {
	return fx.Module("app",
		fx.Supply(p),
		fx.Provide(
			provideConfig,
			provideWorkspace,
			provideLogger,
			provideBus,
			provideCatalog,
			provideRouter,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideConfig(p Params) (*config.Config, error) {
	path := p.ConfigPath
	if path == "" {
		path = workspace.ConfigPath()
	}
	return config.LoadOrDefault(path)
}

func provideWorkspace(p Params, cfg *config.Config) (Workspace, error) {
	name := workspace.Resolve(p.WorkspaceFlag, cfg)
	if err := workspace.ValidateName(name); err != nil {
		return "", err
	}
	return Workspace(name), nil
}

func provideLogger(p Params, cfg *config.Config, ws Workspace) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	path := p.LogPath
	if path == "" {
		path = workspace.LogPath(string(ws), p.Binary)
	}
	return logging.New(logging.Options{
		Path:      path,
		Workspace: string(ws),
		Level:     level,
		Console:   p.Console,
	})
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideCatalog(b *bus.Bus, logger *zap.Logger) *catalog.Catalog {
	return catalog.New(b, logger)
}

func provideRouter(cfg *config.Config) route.Router {
	return route.Router{BaseURL: cfg.DetailBaseURL}
}

func registerLifecycle(lc fx.Lifecycle, p Params, cfg *config.Config, cat *catalog.Catalog, b *bus.Bus, logger *zap.Logger) {
	var stopAudit func()

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			stopAudit = startAudit(b, logger)

			path := p.FixturesPath
			if path == "" {
				path = cfg.FixturesPath
			}
			n, err := fixtures.Load(cat, path)
			if err != nil {
				logger.Error("loading fixtures failed", zap.String("path", path), zap.Error(err))
				stopAudit()
				return err
			}
			logger.Info("fixtures loaded",
				zap.Int("records", n),
				zap.Int("kinds", len(cat.Kinds())),
				zap.Bool("embedded", path == ""),
			)
			return nil
		},
		OnStop: func(_ context.Context) error {
			if stopAudit != nil {
				stopAudit()
			}
			logger.Info("stopped")
			_ = logger.Sync()
			return nil
		},
	})
}
