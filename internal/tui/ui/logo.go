package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
)

var logoLines = []string{
	"╔═╗╦═╗╔═╗",
	"║╣ ╠╦╝╠═╝",
	"╚═╝╩╚═╩  ",
}

const logoCaption = "OHADA · XOF"

// NewLogo returns the header logo: the ERP mark over the region and
// currency caption.
func NewLogo(theme *Theme) *tview.TextView {
	tv := tview.NewTextView().SetDynamicColors(true)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(1, 0, 1, 0)

	mark := Tag(theme.TitleColor)
	var b strings.Builder
	for _, line := range logoLines {
		fmt.Fprintf(&b, "[%s::b]%s[-:-:-]\n", mark, line)
	}
	fmt.Fprintf(&b, "[%s]%s[-]", Tag(theme.FgColor), logoCaption)
	_, _ = fmt.Fprint(tv, b.String())
	return tv
}
