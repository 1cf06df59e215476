package views

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/ohadaerp/erp/internal/catalog"
	"github.com/ohadaerp/erp/internal/tui/ui"
	"github.com/rivo/tview"
)

// ModuleMenu lists every record kind grouped by module.
type ModuleMenu struct {
	*tview.Table
	theme *ui.Theme
	kinds []string
}

// NewModuleMenu creates the menu table.
func NewModuleMenu(theme *ui.Theme) *ModuleMenu {
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
	table.SetTitle(" Modules ")
	table.SetTitleColor(theme.TitleColor)

	return &ModuleMenu{
		Table: table,
		theme: theme,
	}
}

// Name implements ui.Component.
func (mm *ModuleMenu) Name() string { return "Accueil" }

// Update lists resources in the given order.
func (mm *ModuleMenu) Update(resources []catalog.Resource) {
	mm.Clear()
	mm.kinds = mm.kinds[:0]

	headers := []struct {
		text string
		exp  int
	}{
		{" #", 0},
		{" MODULE", 1},
		{" VUE", 2},
		{" COMMANDE", 1},
		{" ENREGISTREMENTS", 0},
	}
	for col, h := range headers {
		mm.SetCell(0, col, tview.NewTableCell(h.text).
			SetSelectable(false).
			SetTextColor(mm.theme.TableHeaderFg).
			SetBackgroundColor(mm.theme.TableHeaderBg).
			SetAttributes(tcell.AttrBold).
			SetExpansion(h.exp))
	}

	for i, r := range resources {
		row := i + 1
		mm.kinds = append(mm.kinds, r.Kind())
		mm.SetCell(row, 0, tview.NewTableCell(" "+strconv.Itoa(row)).SetTextColor(mm.theme.JumpKeyColor))
		mm.SetCell(row, 1, tview.NewTableCell(" "+r.Module()).SetExpansion(1).SetTextColor(mm.theme.ModuleColor(r.Module())))
		mm.SetCell(row, 2, tview.NewTableCell(" "+r.Title()).SetExpansion(2).SetTextColor(mm.theme.FgColor))
		mm.SetCell(row, 3, tview.NewTableCell(" :"+r.Kind()).SetExpansion(1).SetTextColor(mm.theme.MenuKeyColor))
		mm.SetCell(row, 4, tview.NewTableCell(strconv.Itoa(r.Len())+" ").SetAlign(tview.AlignRight).SetTextColor(mm.theme.CounterColor))
	}
	mm.SetTitle(fmt.Sprintf(" Modules (%d) ", len(resources)))
}

// SelectedKind returns the kind under the cursor.
func (mm *ModuleMenu) SelectedKind() string {
	row, _ := mm.GetSelection()
	return mm.KindByIndex(row)
}

// KindByIndex returns the Nth kind (1-based), or "" when out of range.
func (mm *ModuleMenu) KindByIndex(n int) string {
	if n < 1 || n > len(mm.kinds) {
		return ""
	}
	return mm.kinds[n-1]
}
