package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
)

// MenuHint is one key shortcut shown in the header.
type MenuHint struct {
	Key         string
	Description string
	// Jump marks the numeric shortcuts of the module menu.
	Jump bool
}

const (
	menuRows  = 5
	menuWidth = 22
)

// Menu lays the key hints of the current page out in columns.
type Menu struct {
	*tview.TextView
	theme *Theme
}

// NewMenu creates the hint panel.
func NewMenu(theme *Theme) *Menu {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(0, 0, 2, 0)
	return &Menu{TextView: tv, theme: theme}
}

// Update fills the columns top to bottom, then left to right.
func (m *Menu) Update(hints []MenuHint) {
	m.Clear()
	_, _ = fmt.Fprint(m, layoutHints(hints, Tag(m.theme.MenuKeyColor), Tag(m.theme.JumpKeyColor)))
}

func layoutHints(hints []MenuHint, keyTag, jumpTag string) string {
	lines := make([]strings.Builder, min(menuRows, len(hints)))
	for i, h := range hints {
		tag := keyTag
		if h.Jump {
			tag = jumpTag
		}
		plain := fmt.Sprintf("<%s> %s", h.Key, h.Description)
		line := &lines[i%menuRows]
		if line.Len() > 0 {
			line.WriteString(" ")
		}
		fmt.Fprintf(line, "[%s::b]<%s>[-:-:-] %s", tag, tview.Escape(h.Key), h.Description)
		if pad := menuWidth - len([]rune(plain)); pad > 0 && i+menuRows < len(hints) {
			line.WriteString(strings.Repeat(" ", pad))
		}
	}

	out := make([]string, len(lines))
	for i := range lines {
		out[i] = lines[i].String()
	}
	return strings.Join(out, "\n")
}
