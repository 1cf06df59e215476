package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/ohadaerp/erp/internal/catalog"
	"go.uber.org/zap"
)

func writeKinds(out io.Writer, resources []catalog.Resource) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  KIND\tMODULE\tVUE\tENREGISTREMENTS")
	for _, res := range resources {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%d\n", res.Kind(), res.Module(), res.Title(), res.Len())
	}
	_ = w.Flush()
}

// parseFilters turns field=value pairs into query filters, checking both
// sides against the filters res declares.
func parseFilters(res catalog.Resource, raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	known := make(map[string]catalog.Filter, len(res.Filters()))
	names := make([]string, 0, len(res.Filters()))
	for _, f := range res.Filters() {
		known[f.Field] = f
		names = append(names, f.Field)
	}

	filters := make(map[string]string, len(raw))
	for _, kv := range raw {
		field, value, ok := strings.Cut(kv, "=")
		field = strings.TrimSpace(field)
		value = strings.TrimSpace(value)
		if !ok || field == "" || value == "" {
			return nil, fmt.Errorf("filter %q: expected field=value", kv)
		}
		f, ok := known[field]
		if !ok {
			if len(names) == 0 {
				return nil, fmt.Errorf("%s has no filters", res.Kind())
			}
			return nil, fmt.Errorf("unknown filter %q for %s (use %s)", field, res.Kind(), strings.Join(names, ", "))
		}
		if !f.Table.Has(value) {
			return nil, fmt.Errorf("invalid %s %q (use %s)", field, value, strings.Join(f.Table.Values(), ", "))
		}
		filters[field] = value
	}
	return filters, nil
}

func writeRows(out io.Writer, cols []catalog.Column, rows []catalog.Row) error {
	if len(rows) == 0 {
		fmt.Fprintln(out, "  (aucun enregistrement)")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	header := make([]string, 0, len(cols)+1)
	header = append(header, "ID")
	for _, c := range cols {
		header = append(header, c.Title)
	}
	fmt.Fprintln(w, "  "+strings.Join(header, "\t"))

	for _, r := range rows {
		cells := make([]string, 0, len(r.Cells)+1)
		cells = append(cells, r.ID)
		for _, c := range r.Cells {
			cells = append(cells, flatten(c.Text))
		}
		fmt.Fprintln(w, "  "+strings.Join(cells, "\t"))
	}
	return w.Flush()
}

type jsonRow struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Fields map[string]string `json:"fields"`
}

func writeRowsJSON(out io.Writer, cols []catalog.Column, rows []catalog.Row) error {
	items := make([]jsonRow, 0, len(rows))
	for _, r := range rows {
		item := jsonRow{ID: r.ID, Name: r.Name, Fields: make(map[string]string, len(cols))}
		for i, c := range cols {
			if i < len(r.Cells) {
				item.Fields[c.Title] = r.Cells[i].Text
			}
		}
		items = append(items, item)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

func writeFields(out io.Writer, fields []catalog.DetailField) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	label := color.New(color.FgCyan)
	for _, f := range fields {
		fmt.Fprintf(w, "  %s\t%s\n", label.Sprint(f.Label), flatten(f.Value))
	}
	return w.Flush()
}

func writeFieldsJSON(out io.Writer, fields []catalog.DetailField) error {
	type field struct {
		Label string `json:"label"`
		Value string `json:"value"`
	}
	items := make([]field, 0, len(fields))
	for _, f := range fields {
		items = append(items, field{Label: f.Label, Value: f.Value})
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// deleteRecord runs the confirmation flow of res for id. A nil in skips
// the question.
func deleteRecord(out io.Writer, in io.Reader, res catalog.Resource, id string, logger *zap.Logger) error {
	p, err := res.RequestDelete(id)
	if err != nil {
		return err
	}

	color.New(color.FgYellow, color.Bold).Fprintf(out, "\n  %s\n", p.Title)
	fmt.Fprintf(out, "  %s\n\n", p.Message)

	if in != nil && !askConfirm(out, in) {
		if err := res.CancelDelete(); err != nil {
			return err
		}
		fmt.Fprintln(out, "  Suppression annulée.")
		return nil
	}

	if err := res.ConfirmDelete(); err != nil {
		logger.Warn("delete failed", zap.String("kind", res.Kind()), zap.String("id", id), zap.Error(err))
		_ = res.CancelDelete()
		return err
	}
	color.New(color.FgGreen).Fprintf(out, "  ✓ %s « %s » supprimé\n", p.ItemType, p.ItemName)
	return nil
}

// askConfirm reads one answer line; only an explicit yes confirms.
func askConfirm(out io.Writer, in io.Reader) bool {
	fmt.Fprint(out, "  Confirmer ? [o/N] ")
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		fmt.Fprintln(out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "o", "oui", "y", "yes":
		return true
	}
	return false
}

func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
