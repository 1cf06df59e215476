package main

import (
	"context"
	"time"

	"github.com/ohadaerp/erp/internal/app"
	"github.com/ohadaerp/erp/internal/catalog"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type globalParams struct {
	Workspace string
	Fixtures  string
	Verbose   bool
}

func newRootCmd() *cobra.Command {
	params := &globalParams{}
	cmd := &cobra.Command{
		Use:           "erpctl",
		Short:         "Consulter et gérer les enregistrements de l'ERP",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().StringVarP(&params.Workspace, "workspace", "w", "", "workspace name (overrides config default)")
	cmd.PersistentFlags().StringVar(&params.Fixtures, "fixtures", "", "YAML fixtures file (defaults to the built-in data set)")
	cmd.PersistentFlags().BoolVarP(&params.Verbose, "verbose", "v", false, "also log to stderr")

	cmd.AddCommand(newKindsCmd(params))
	cmd.AddCommand(newListCmd(params))
	cmd.AddCommand(newShowCmd(params))
	cmd.AddCommand(newDeleteCmd(params))

	return cmd
}

// withCatalog starts the shared services, runs fn against the loaded
// catalog and stops them again.
func withCatalog(params *globalParams, fn func(cat *catalog.Catalog, logger *zap.Logger) error) error {
	var (
		cat    *catalog.Catalog
		logger *zap.Logger
	)
	fxApp := fx.New(
		app.Module(app.Params{
			WorkspaceFlag: params.Workspace,
			Binary:        "erpctl",
			Console:       params.Verbose,
			FixturesPath:  params.Fixtures,
		}),
		fx.NopLogger,
		fx.Populate(&cat, &logger),
	)
	if err := fxApp.Err(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := fxApp.Start(ctx); err != nil {
		return err
	}

	runErr := fn(cat, logger)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelStop()
	if err := fxApp.Stop(stopCtx); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
