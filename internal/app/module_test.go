package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ohadaerp/erp/internal/catalog"
	"github.com/ohadaerp/erp/internal/route"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func testParams(t *testing.T) Params {
	t.Helper()
	dir := t.TempDir()
	return Params{
		WorkspaceFlag: "test",
		Binary:        "erptest",
		ConfigPath:    filepath.Join(dir, "config.toml"),
		LogPath:       filepath.Join(dir, "erptest.log"),
	}
}

func TestModuleLoadsEmbeddedFixtures(t *testing.T) {
	p := testParams(t)

	var (
		cat    *catalog.Catalog
		router route.Router
		ws     Workspace
	)
	app := fxtest.New(t, Module(p), fx.Populate(&cat, &router, &ws), fx.NopLogger)
	app.RequireStart()

	if cat.Total() == 0 {
		t.Error("catalog is empty after start")
	}
	if ws != "test" {
		t.Errorf("workspace = %q, want test", ws)
	}
	if router.BaseURL == "" {
		t.Error("router has no base URL")
	}

	r, _ := cat.Resource("customers")
	prompt, err := r.RequestDelete("cu-001")
	if err != nil {
		t.Fatalf("RequestDelete() error = %v", err)
	}
	if prompt.Message == "" {
		t.Error("empty prompt message")
	}
	if err := r.ConfirmDelete(); err != nil {
		t.Fatalf("ConfirmDelete() error = %v", err)
	}

	app.RequireStop()

	data, err := os.ReadFile(p.LogPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	log := string(data)
	for _, want := range []string{"fixtures loaded", "record deleted", "cu-001", "stopped"} {
		if !strings.Contains(log, want) {
			t.Errorf("log missing %q", want)
		}
	}
}

func TestModuleUsesConfigFile(t *testing.T) {
	p := testParams(t)
	p.WorkspaceFlag = ""
	cfg := "workspace = \"compta\"\ndetail_base_url = \"https://erp.sotrac.ci\"\n"
	if err := os.WriteFile(p.ConfigPath, []byte(cfg), 0600); err != nil {
		t.Fatal(err)
	}

	var (
		router route.Router
		ws     Workspace
	)
	app := fxtest.New(t, Module(p), fx.Populate(&router, &ws), fx.NopLogger)
	app.RequireStart()
	defer app.RequireStop()

	if ws != "compta" {
		t.Errorf("workspace = %q, want compta", ws)
	}
	if router.BaseURL != "https://erp.sotrac.ci" {
		t.Errorf("BaseURL = %q", router.BaseURL)
	}
}

func TestModuleRejectsBadWorkspace(t *testing.T) {
	p := testParams(t)
	p.WorkspaceFlag = "Bad Name"

	app := fx.New(Module(p), fx.NopLogger, fx.Invoke(func(*catalog.Catalog) {}))
	if app.Err() == nil {
		t.Error("expected error for invalid workspace name")
	}
}

func TestModuleFailsOnBadFixtures(t *testing.T) {
	p := testParams(t)
	p.FixturesPath = filepath.Join(t.TempDir(), "fixtures.yaml")
	if err := os.WriteFile(p.FixturesPath, []byte("unknown: 1\n"), 0600); err != nil {
		t.Fatal(err)
	}

	var cat *catalog.Catalog
	app := fxtest.New(t, Module(p), fx.Populate(&cat), fx.NopLogger)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	if err := app.Start(ctx); err == nil {
		t.Error("Start() expected error for invalid fixtures file")
	}
}
