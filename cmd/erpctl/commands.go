package main

import (
	"github.com/fatih/color"
	"github.com/ohadaerp/erp/internal/catalog"
	"github.com/ohadaerp/erp/internal/record"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newKindsCmd(params *globalParams) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "Lister les vues disponibles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withCatalog(params, func(cat *catalog.Catalog, _ *zap.Logger) error {
				writeKinds(cmd.OutOrStdout(), cat.Resources())
				return nil
			})
		},
	}
}

type listParams struct {
	Search  string
	Filters []string
	JSON    bool
}

func newListCmd(params *globalParams) *cobra.Command {
	lp := listParams{}
	cmd := &cobra.Command{
		Use:     "list <kind>",
		Aliases: []string{"ls"},
		Short:   "Lister les enregistrements d'une vue",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(params, func(cat *catalog.Catalog, _ *zap.Logger) error {
				res, err := cat.Lookup(args[0])
				if err != nil {
					return err
				}
				filters, err := parseFilters(res, lp.Filters)
				if err != nil {
					return err
				}
				rows, err := res.Query(record.Query{Term: lp.Search, Filters: filters})
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if lp.JSON {
					return writeRowsJSON(out, res.Columns(), rows)
				}
				color.New(color.FgCyan).Fprintf(out, "\n  %s (%d/%d)\n\n", res.Title(), len(rows), res.Len())
				return writeRows(out, res.Columns(), rows)
			})
		},
	}
	cmd.Flags().StringVarP(&lp.Search, "search", "s", "", "search term")
	cmd.Flags().StringArrayVarP(&lp.Filters, "filter", "f", nil, "field=value constraint, repeatable")
	cmd.Flags().BoolVar(&lp.JSON, "json", false, "print JSON")
	return cmd
}

func newShowCmd(params *globalParams) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show <kind> <id>",
		Short: "Afficher un enregistrement",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(params, func(cat *catalog.Catalog, _ *zap.Logger) error {
				res, err := cat.Lookup(args[0])
				if err != nil {
					return err
				}
				fields, err := res.Detail(args[1])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if asJSON {
					return writeFieldsJSON(out, fields)
				}
				return writeFields(out, fields)
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newDeleteCmd(params *globalParams) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:     "delete <kind> <id>",
		Aliases: []string{"rm"},
		Short:   "Supprimer un enregistrement après confirmation",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalog(params, func(cat *catalog.Catalog, logger *zap.Logger) error {
				res, err := cat.Lookup(args[0])
				if err != nil {
					return err
				}
				in := cmd.InOrStdin()
				if yes {
					in = nil
				}
				return deleteRecord(cmd.OutOrStdout(), in, res, args[1], logger)
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation question")
	return cmd
}
