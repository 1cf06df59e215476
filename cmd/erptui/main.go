package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ohadaerp/erp/internal/app"
	"github.com/ohadaerp/erp/internal/bus"
	"github.com/ohadaerp/erp/internal/catalog"
	"github.com/ohadaerp/erp/internal/config"
	"github.com/ohadaerp/erp/internal/route"
	"github.com/ohadaerp/erp/internal/tui"
	"github.com/ohadaerp/erp/internal/workspace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	workspaceFlag := flag.String("workspace", "", "workspace name (overrides config default)")
	fixturesFlag := flag.String("fixtures", "", "YAML fixtures file (defaults to the built-in data set)")
	moduleFlag := flag.String("module", "", "view opened at start, e.g. customers")
	flag.Parse()

	if err := run(*workspaceFlag, *fixturesFlag, *moduleFlag); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(workspaceFlag, fixturesPath, module string) error {
	var (
		ws     app.Workspace
		cfg    *config.Config
		cat    *catalog.Catalog
		router route.Router
		b      *bus.Bus
		logger *zap.Logger
	)
	fxApp := fx.New(
		app.Module(app.Params{
			WorkspaceFlag: workspaceFlag,
			Binary:        "erptui",
			FixturesPath:  fixturesPath,
		}),
		fx.NopLogger,
		fx.Populate(&ws, &cfg, &cat, &router, &b, &logger),
	)
	if err := fxApp.Err(); err != nil {
		return err
	}

	if err := workspace.EnsureDir(string(ws)); err != nil {
		return err
	}
	lock, err := workspace.Acquire(workspace.Dir(string(ws)))
	if err != nil {
		return err
	}
	defer func() { _ = lock.Release() }()

	startCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := fxApp.Start(startCtx); err != nil {
		return err
	}

	if module == "" {
		module = cfg.DefaultModule
	}
	ui := tui.NewApp(tui.Options{
		Catalog:       cat,
		Router:        router,
		Bus:           b,
		Logger:        logger,
		Workspace:     string(ws),
		DefaultModule: module,
	})
	runErr := ui.Run()
	ui.Stop()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelStop()
	if err := fxApp.Stop(stopCtx); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
