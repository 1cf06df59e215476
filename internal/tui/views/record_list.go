package views

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/ohadaerp/erp/internal/catalog"
	"github.com/ohadaerp/erp/internal/tui/model"
	"github.com/ohadaerp/erp/internal/tui/ui"
	"github.com/rivo/tview"
)

// RecordList is the table of one record kind.
type RecordList struct {
	*tview.Table
	theme *ui.Theme
	list  *model.List
	lines []model.Line
}

// NewRecordList creates an empty record table.
func NewRecordList(theme *ui.Theme) *RecordList {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false).
		SetFixed(1, 0)
	table.SetBorder(true)
	table.SetBorderColor(theme.BorderColor)
	table.SetBackgroundColor(theme.BgColor)
	table.SetSelectedStyle(tcell.StyleDefault.
		Foreground(theme.TableCursorFg).
		Background(theme.TableCursorBg))
	table.SetTitleColor(theme.TitleColor)

	return &RecordList{
		Table: table,
		theme: theme,
	}
}

// Name implements ui.Component.
func (rl *RecordList) Name() string {
	if rl.list == nil {
		return "Liste"
	}
	return rl.list.Resource().Title()
}

// Model returns the list being shown.
func (rl *RecordList) Model() *model.List { return rl.list }

// Bind shows l and moves the cursor to the first row.
func (rl *RecordList) Bind(l *model.List) {
	rl.list = l
	rl.Render()
	rl.Select(1, 0)
	rl.ScrollToBeginning()
}

// Render redraws the table from the model, keeping the cursor on the
// same record when it is still visible.
func (rl *RecordList) Render() {
	selected := rl.SelectedID()
	rl.Clear()
	if rl.list == nil {
		return
	}
	res := rl.list.Resource()

	for col, c := range res.Columns() {
		cell := tview.NewTableCell(" " + c.Title).
			SetSelectable(false).
			SetTextColor(rl.theme.TableHeaderFg).
			SetBackgroundColor(rl.theme.TableHeaderBg).
			SetAttributes(tcell.AttrBold).
			SetExpansion(c.Expansion)
		if c.AlignEnd {
			cell.SetAlign(tview.AlignRight)
		}
		rl.SetCell(0, col, cell)
	}

	rl.lines = rl.list.Lines()
	cursor := 0
	for i, line := range rl.lines {
		row := i + 1
		if line.Summary {
			rl.renderSummary(row, line.Row)
			continue
		}
		if line.Row.ID == selected && cursor == 0 {
			cursor = row
		}
		rl.renderRow(row, res.Columns(), line.Row)
	}

	title := fmt.Sprintf(" %s (%d) ", res.Title(), len(rl.list.Rows()))
	if f := rl.list.FilterText(); f != "" {
		title = fmt.Sprintf(" %s (%d/%d) %s ", res.Title(), len(rl.list.Rows()), res.Len(), tview.Escape(f))
	}
	rl.SetTitle(title)
	rl.SetTitleColor(rl.theme.ModuleColor(res.Module()))

	switch {
	case cursor > 0:
		rl.Select(cursor, 0)
	case len(rl.lines) > 0:
		r, _ := rl.GetSelection()
		if r < 1 || r > len(rl.lines) {
			rl.Select(1, 0)
		}
	}
}

func (rl *RecordList) renderRow(row int, cols []catalog.Column, r catalog.Row) {
	marker := "▸"
	if rl.list.IsExpanded(r.ID) {
		marker = "▾"
	}
	for col, c := range r.Cells {
		text := " " + tview.Escape(cellText(c.Text))
		if col == 0 {
			text = marker + text
		}
		cell := tview.NewTableCell(text).
			SetTextColor(rl.theme.LabelColor(c.Style)).
			SetReference(r.ID)
		if col < len(cols) {
			cell.SetExpansion(cols[col].Expansion)
			if cols[col].AlignEnd {
				cell.SetAlign(tview.AlignRight)
			}
		}
		rl.SetCell(row, col, cell)
	}
}

func (rl *RecordList) renderSummary(row int, r catalog.Row) {
	text := r.Summary
	if text == "" {
		text = r.Name
	}
	rl.SetCell(row, 0, tview.NewTableCell("   └ "+tview.Escape(cellText(text))).
		SetTextColor(rl.theme.SummaryFg).
		SetAttributes(tcell.AttrItalic).
		SetReference(r.ID))
}

// SelectedID returns the id of the record under the cursor. Summary lines
// select their record.
func (rl *RecordList) SelectedID() string {
	row, _ := rl.GetSelection()
	idx := row - 1
	if idx < 0 || idx >= len(rl.lines) {
		return ""
	}
	return rl.lines[idx].Row.ID
}

// SelectedRow returns the record under the cursor.
func (rl *RecordList) SelectedRow() (catalog.Row, bool) {
	row, _ := rl.GetSelection()
	idx := row - 1
	if idx < 0 || idx >= len(rl.lines) {
		return catalog.Row{}, false
	}
	return rl.lines[idx].Row, true
}
