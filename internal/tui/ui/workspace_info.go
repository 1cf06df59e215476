package ui

import (
	"fmt"

	"github.com/rivo/tview"
)

// WorkspaceData holds what the header shows about the running instance.
type WorkspaceData struct {
	Workspace string
	Module    string
	View      string
	Records   int
	Total     int
}

// WorkspaceInfo displays workspace metadata in the header.
type WorkspaceInfo struct {
	*tview.TextView
	theme *Theme
}

// NewWorkspaceInfo creates a new workspace info panel.
func NewWorkspaceInfo(theme *Theme) *WorkspaceInfo {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(0, 0, 1, 1)

	return &WorkspaceInfo{
		TextView: tv,
		theme:    theme,
	}
}

// Update renders the workspace info.
func (wi *WorkspaceInfo) Update(data *WorkspaceData) {
	wi.Clear()
	if data == nil {
		return
	}

	fg := Tag(wi.theme.FgColor)
	ct := Tag(wi.theme.CounterColor)

	module, mc := data.Module, ct
	if module == "" {
		module = "-"
	} else {
		mc = Tag(wi.theme.ModuleColor(module))
	}
	view := data.View
	if view == "" {
		view = "-"
	}

	_, _ = fmt.Fprintf(wi,
		"[%s::b]Espace:[-:-:-]  [%s]%s[-]\n"+
			"[%s::b]Module:[-:-:-]  [%s]%s[-]\n"+
			"[%s::b]Vue:[-:-:-]     [%s]%s[-]\n"+
			"[%s::b]Lignes:[-:-:-]  [%s]%d[-]\n"+
			"[%s::b]Total:[-:-:-]   [%s]%d[-]",
		fg, ct, data.Workspace,
		fg, mc, module,
		fg, ct, view,
		fg, ct, data.Records,
		fg, ct, data.Total,
	)
}
