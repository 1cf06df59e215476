package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
)

// crumbMax is the widest a crumb label is drawn, in runes.
const crumbMax = 28

// Crumbs shows the navigation trail, the current page highlighted.
type Crumbs struct {
	*tview.TextView
	theme *Theme
}

// NewCrumbs creates the trail bar.
func NewCrumbs(theme *Theme) *Crumbs {
	tv := tview.NewTextView().SetDynamicColors(true)
	tv.SetBackgroundColor(theme.BgColor)
	return &Crumbs{TextView: tv, theme: theme}
}

// Update redraws the bar from trail, root first.
func (c *Crumbs) Update(trail []string) {
	c.Clear()
	_, _ = fmt.Fprint(c, c.render(trail))
}

func (c *Crumbs) render(trail []string) string {
	active := fmt.Sprintf("[%s:%s:b]", Tag(c.theme.CrumbActiveFg), Tag(c.theme.CrumbActiveBg))
	inactive := fmt.Sprintf("[%s:%s:]", Tag(c.theme.CrumbInactiveFg), Tag(c.theme.CrumbInactiveBg))

	parts := make([]string, len(trail))
	for i, label := range trail {
		style := inactive
		if i == len(trail)-1 {
			style = active
		}
		parts[i] = style + " " + tview.Escape(shorten(label, crumbMax)) + " [-:-:-]"
	}
	return strings.Join(parts, " › ")
}

// shorten cuts s to n runes, ending with an ellipsis when cut.
func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
